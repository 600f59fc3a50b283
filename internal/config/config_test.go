package config

import (
	"testing"

	"blackjack-server/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("BJ_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("BJ_GAME_DECKS", "4")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.Equal([]string{"https://blackjack.example.com"}, cfg.CORS.AllowedOrigins)

	// environment wins over the file
	a.Equal(4, cfg.Game.Decks)

	// the file wins over the defaults
	a.Equal(float64(2500), cfg.Game.StartingBalance)

	// untouched keys keep their defaults
	a.Equal(0.4, cfg.Game.ReshuffleRatio)
	a.Equal(17, cfg.Game.DealerStandValue)

	// ensure we aren't using a pointer
	cfg.Game.Decks = 99
	a.Equal(4, Instance().Game.Decks)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("BJ_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal(8, cfg.Game.Decks)
	a.Equal(float64(1000), cfg.Game.StartingBalance)
	a.Equal([]string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)

	opts := cfg.GameOptions()
	a.Equal(8, opts.Decks)
	a.Equal(0.4, opts.ReshuffleRatio)
}
