package blackjack

import (
	"blackjack-server/pkg/deck"
)

// HandStatus is the lifecycle state of a single hand
type HandStatus string

// hand status constants
const (
	HandStatusPlaying   HandStatus = "PLAYING"
	HandStatusStood     HandStatus = "STOOD"
	HandStatusBusted    HandStatus = "BUSTED"
	HandStatusBlackjack HandStatus = "BLACKJACK"
)

// Hand is a staked blackjack hand
type Hand struct {
	Cards     deck.Hand  `json:"cards"`
	BetAmount float64    `json:"betAmount"`
	Status    HandStatus `json:"status"`
}

// NewHand returns a new playing hand staked with the bet
func NewHand(bet float64) *Hand {
	return &Hand{
		Cards:     deck.Hand{},
		BetAmount: bet,
		Status:    HandStatusPlaying,
	}
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *deck.Card) {
	h.Cards.AddCard(card)
}

// Value returns the blackjack total of the hand.
// Each ace starts at eleven and is reduced to one while the total exceeds 21.
func (h *Hand) Value() int {
	value := 0
	aces := 0
	for _, card := range h.Cards {
		value += card.Value()
		if card.Rank == deck.Ace {
			aces++
		}
	}

	for value > 21 && aces > 0 {
		value -= 10
		aces--
	}

	return value
}

// IsBlackjack returns true for a natural: exactly two cards totaling 21
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// IsPair returns true if the hand is exactly two cards of the same rank
func (h *Hand) IsPair() bool {
	return len(h.Cards) == 2 && h.Cards[0].Rank == h.Cards[1].Rank
}

// Reset clears the cards and zeroes the bet
func (h *Hand) Reset() {
	h.Cards = deck.Hand{}
	h.BetAmount = 0
	h.Status = HandStatusPlaying
}
