package session

import (
	"sync"
	"testing"

	"blackjack-server/pkg/blackjack"

	"github.com/stretchr/testify/assert"
)

func TestNewID(t *testing.T) {
	a := assert.New(t)

	id := NewID()
	a.NotEqual("", id)
	a.NotEqual(id, NewID())
}

func TestMemoryStore_Update(t *testing.T) {
	a := assert.New(t)

	store := NewMemoryStore()
	a.Equal(0, store.Len())

	store.Update("session-1", func(state *blackjack.RoundState) *blackjack.RoundState {
		a.Nil(state)
		return &blackjack.RoundState{PlayerBalance: 1000}
	})
	a.Equal(1, store.Len())

	store.Update("session-1", func(state *blackjack.RoundState) *blackjack.RoundState {
		a.Equal(float64(1000), state.PlayerBalance)
		state.PlayerBalance = 500
		return state
	})

	// sessions do not see each other's states
	store.Update("session-2", func(state *blackjack.RoundState) *blackjack.RoundState {
		a.Nil(state)
		return &blackjack.RoundState{}
	})
	a.Equal(2, store.Len())

	store.Update("session-1", func(state *blackjack.RoundState) *blackjack.RoundState {
		a.Equal(float64(500), state.PlayerBalance)
		return state
	})
}

func TestMemoryStore_concurrentSessions(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			id := NewID()
			for j := 0; j < 10; j++ {
				store.Update(id, func(state *blackjack.RoundState) *blackjack.RoundState {
					if state == nil {
						state = &blackjack.RoundState{}
					}

					state.PlayerBalance++
					return state
				})
			}

			store.Update(id, func(state *blackjack.RoundState) *blackjack.RoundState {
				assert.Equal(t, float64(10), state.PlayerBalance)
				return state
			})
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, store.Len())
}
