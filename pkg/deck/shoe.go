package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyShoe is an error when Draw() is attempted and there are no more cards
var ErrEmptyShoe = errors.New("shoe is empty")

// Shoe is a drawing deck built from one or more standard 52-card decks.
// It is depleted by sequential draws until the engine replaces it.
type Shoe struct {
	Cards []*Card `json:"cards"`
	decks int
	seed  int64
	rng   *rand.Rand
}

// NewShoe returns a new shoe built from the specified number of decks.
// Important! this shoe is unshuffled. You must call the Shuffle() method to shuffle the cards
func NewShoe(decks int) *Shoe {
	if decks <= 0 {
		panic("decks must be > 0")
	}

	s := &Shoe{
		decks: decks,
		seed:  -1,
	}

	s.buildShoe()
	return s
}

// SetSeed will set the seed
// This should only be used by tests. Setting the seed is normally handled when you call Shuffle()
func (s *Shoe) SetSeed(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *Shoe) buildShoe() {
	cards := make([]*Card, 0, s.decks*52)
	for i := 0; i < s.decks; i++ {
		for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
			for rank := 2; rank <= 14; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	s.Cards = cards
}

// Shuffle will shuffle the cards remaining in the shoe using a Fisher-Yates permutation.
// You can manually specify the seed, or you can leave it as 0 for a time-based seed.
func (s *Shoe) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.SetSeed(seed)

	for j := len(s.Cards) - 1; j > 0; j-- {
		i := s.rng.Intn(j + 1)

		s.Cards[i], s.Cards[j] = s.Cards[j], s.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the shoe
func (s *Shoe) GetSeed() int64 {
	return s.seed
}

// Draw will draw the next card
// If there are no more cards, an ErrEmptyShoe is returned along with a nil card.
func (s *Shoe) Draw() (*Card, error) {
	if len(s.Cards) <= 0 {
		return nil, ErrEmptyShoe
	}

	card := s.Cards[0]
	s.Cards = s.Cards[1:]

	return card, nil
}

// CardsLeft returns the number of cards left in the shoe
func (s *Shoe) CardsLeft() int {
	return len(s.Cards)
}

// NeedsReshuffle returns true if fewer than ratio of the full shoe remains
func (s *Shoe) NeedsReshuffle(ratio float64) bool {
	return float64(s.CardsLeft()) < float64(s.decks*52)*ratio
}
