package blackjack

// Options configures a blackjack game engine
type Options struct {
	// Decks is how many 52-card decks make up the shoe
	Decks int

	// StartingBalance is the balance a new session begins with
	StartingBalance float64

	// ReshuffleRatio is the fraction of the full shoe below which a fresh
	// shoe is built at the start of the next bet. 1 rebuilds on every bet.
	ReshuffleRatio float64

	// DealerStandValue is the total the dealer stands on (soft totals included)
	DealerStandValue int
}

// DefaultOptions returns the standard options for blackjack
func DefaultOptions() Options {
	return Options{
		Decks:            8,
		StartingBalance:  1000,
		ReshuffleRatio:   0.4,
		DealerStandValue: 17,
	}
}
