package mux

import (
	"fmt"
	"net/http"

	"blackjack-server/pkg/blackjack"
)

type betRequest struct {
	Amount float64 `json:"amount"`
}

type insuranceRequest struct {
	Buy bool `json:"buy"`
}

type handRequest struct {
	HandIndex int `json:"handIndex"`
}

// getState returns the session's state, creating one on first contact
func (m *Mux) getState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var result *blackjack.RoundState
		m.store.Update(sessionID(r), func(state *blackjack.RoundState) *blackjack.RoundState {
			if state == nil {
				state = m.game.StartGame()
			}

			result = state
			return state
		})

		writeJSON(w, http.StatusOK, result)
	}
}

// postBet starts a new round. A bet is always accepted as a request; the
// engine decides whether the amount is valid.
func (m *Mux) postBet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload betRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		var result *blackjack.RoundState
		var opErr error
		m.store.Update(sessionID(r), func(state *blackjack.RoundState) *blackjack.RoundState {
			if state == nil {
				state = m.game.StartGame()
			}

			opErr = m.game.PlaceBet(state, payload.Amount)
			result = state
			return state
		})

		writeStateOrError(w, result, opErr)
	}
}

// postInsurance settles the pending insurance decision
func (m *Mux) postInsurance() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload insuranceRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		var result *blackjack.RoundState
		var opErr error
		m.store.Update(sessionID(r), func(state *blackjack.RoundState) *blackjack.RoundState {
			if state == nil {
				state = m.game.StartGame()
				result = state
				return state
			}

			// an insurance reply only means something while the offer is open
			if !state.InsurancePending() {
				result = state
				return state
			}

			opErr = m.game.ResolveInsurance(state, payload.Buy)
			result = state
			return state
		})

		writeStateOrError(w, result, opErr)
	}
}

// postHandAction adapts a per-hand engine operation to an HTTP handler.
// The hand index is bounds-checked here; an out-of-range index is the
// caller's mistake, not an engine condition.
func (m *Mux) postHandAction(op func(state *blackjack.RoundState, handIndex int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload handRequest
		if !decodeRequest(w, r, &payload) {
			return
		}

		var result *blackjack.RoundState
		var opErr error
		badIndex := false
		m.store.Update(sessionID(r), func(state *blackjack.RoundState) *blackjack.RoundState {
			if state == nil {
				state = m.game.StartGame()
				result = state
				return state
			}

			// no hand actions once the round is settled
			if state.RoundOver {
				result = state
				return state
			}

			if payload.HandIndex < 0 || payload.HandIndex >= len(state.PlayerHands) {
				badIndex = true
				return state
			}

			opErr = op(state, payload.HandIndex)
			result = state
			return state
		})

		if badIndex {
			writeJSONError(w, http.StatusBadRequest, fmt.Errorf("handIndex %d is out of range", payload.HandIndex))
			return
		}

		writeStateOrError(w, result, opErr)
	}
}
