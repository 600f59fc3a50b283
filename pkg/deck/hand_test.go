package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHand(t *testing.T) {
	a := assert.New(t)

	hand := Hand{}
	a.Nil(hand.FirstCard())
	a.Nil(hand.LastCard())

	hand.AddCard(CardFromString("2c"))
	hand.AddCard(CardFromString("14s"))
	hand.AddCard(CardFromString("11d"))

	a.Equal(Card{Rank: 2, Suit: Clubs}, *hand.FirstCard())
	a.Equal(Card{Rank: Jack, Suit: Diamonds}, *hand.LastCard())
	a.Equal("2c,14s,11d", hand.String())
}
