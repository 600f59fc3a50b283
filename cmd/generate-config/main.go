package main

import (
	"os"

	"blackjack-server/internal/config"

	"gopkg.in/yaml.v2"
)

// generate-config writes the default config.yaml to stdout
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
