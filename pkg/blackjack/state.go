package blackjack

import (
	"blackjack-server/pkg/deck"
)

// RoundState is the complete state of one player session.
// This shape, minus the shoe, is what the transport layer serializes to the
// client. The engine never retains a RoundState between calls; the caller
// owns persistence.
type RoundState struct {
	Shoe             *deck.Shoe `json:"-"`
	DealerHand       *Hand      `json:"dealerHand"`
	PlayerHands      []*Hand    `json:"playerHands"`
	PlayerBalance    float64    `json:"playerBalance"`
	Message          string     `json:"message"`
	RoundOver        bool       `json:"roundOver"`
	AvailableActions []Action   `json:"availableActions"`
}

// InsurancePending reports whether the round is waiting on an insurance
// decision
func (s *RoundState) InsurancePending() bool {
	for _, action := range s.AvailableActions {
		if action == ActionBuyInsurance {
			return true
		}
	}

	return false
}
