package config

import (
	"os"

	"blackjack-server/internal/util"
	"blackjack-server/pkg/blackjack"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`

	Game struct {
		Decks            int     `yaml:"decks" envconfig:"decks"`
		StartingBalance  float64 `yaml:"startingBalance" envconfig:"starting_balance"`
		ReshuffleRatio   float64 `yaml:"reshuffleRatio" envconfig:"reshuffle_ratio"`
		DealerStandValue int     `yaml:"dealerStandValue" envconfig:"dealer_stand_value"`
	} `yaml:"game"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var cfg Config
	cfg.CORS.AllowedOrigins = []string{"http://localhost:5173"}

	opts := blackjack.DefaultOptions()
	cfg.Game.Decks = opts.Decks
	cfg.Game.StartingBalance = opts.StartingBalance
	cfg.Game.ReshuffleRatio = opts.ReshuffleRatio
	cfg.Game.DealerStandValue = opts.DealerStandValue

	return cfg
}

// GameOptions returns the engine options from the configuration
func (c Config) GameOptions() blackjack.Options {
	return blackjack.Options{
		Decks:            c.Game.Decks,
		StartingBalance:  c.Game.StartingBalance,
		ReshuffleRatio:   c.Game.ReshuffleRatio,
		DealerStandValue: c.Game.DealerStandValue,
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration.
// The config file is optional; environment variables always apply on top.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
