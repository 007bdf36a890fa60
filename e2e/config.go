package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_COLOURS enables colorized step headers for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
	// E2E_LOG_LEVEL is the level of the logger handed to the broker
	LogLevel string `envconfig:"E2E_LOG_LEVEL" default:"DEBUG"`
	// E2E_PEERS is the number of participants in the fan-out scenario
	Peers int `envconfig:"E2E_PEERS" default:"5"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
