package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BADGER_DIR / E2E_BLUGE_DIR point the scenario at persistent
	// directories; when empty each run uses fresh temp dirs.
	BadgerDir string `envconfig:"E2E_BADGER_DIR"`
	BlugeDir  string `envconfig:"E2E_BLUGE_DIR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
