package blackjack

import (
	"testing"

	"blackjack-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func handFromString(t *testing.T, s string) *Hand {
	t.Helper()

	hand := NewHand(100)
	for _, card := range deck.CardsFromString(s) {
		hand.AddCard(card)
	}

	return hand
}

func TestHand_Value(t *testing.T) {
	test := func(t *testing.T, cards string, expected int) {
		t.Helper()
		assert.Equal(t, expected, handFromString(t, cards).Value(), cards)
	}

	test(t, "", 0)
	test(t, "2c,3d", 5)
	test(t, "13c,12d", 20)
	test(t, "10c,11d", 20)

	// soft hands
	test(t, "14c,5d", 16)
	test(t, "14c,13d", 21)
	test(t, "14c,14d", 12)
	test(t, "14c,14d,9c", 21)
	test(t, "14c,14d,14h,14s", 14)
	test(t, "14c,5d,9c", 15)

	// busted
	test(t, "13c,12d,5c", 27)
	test(t, "14c,13d,14h,13s", 25)
}

func TestHand_IsBlackjack(t *testing.T) {
	a := assert.New(t)

	a.True(handFromString(t, "14c,13d").IsBlackjack())
	a.True(handFromString(t, "10c,14d").IsBlackjack())
	a.False(handFromString(t, "10c,11d").IsBlackjack())

	// 21 with three cards is not a natural
	a.False(handFromString(t, "7c,7d,7h").IsBlackjack())
	a.False(handFromString(t, "14c").IsBlackjack())
}

func TestHand_IsPair(t *testing.T) {
	a := assert.New(t)

	a.True(handFromString(t, "8c,8d").IsPair())
	a.True(handFromString(t, "14c,14d").IsPair())

	// same value, different rank
	a.False(handFromString(t, "13c,12d").IsPair())
	a.False(handFromString(t, "8c,8d,8h").IsPair())
	a.False(handFromString(t, "8c").IsPair())
}

func TestHand_Reset(t *testing.T) {
	a := assert.New(t)

	hand := handFromString(t, "13c,12d,5c")
	hand.Status = HandStatusBusted

	hand.Reset()
	a.Equal(0, len(hand.Cards))
	a.Equal(float64(0), hand.BetAmount)
	a.Equal(HandStatusPlaying, hand.Status)
}

func TestNewHand(t *testing.T) {
	a := assert.New(t)

	hand := NewHand(25)
	a.Equal(float64(25), hand.BetAmount)
	a.Equal(HandStatusPlaying, hand.Status)
	a.Equal(0, len(hand.Cards))
	a.False(hand.IsBlackjack())
}
