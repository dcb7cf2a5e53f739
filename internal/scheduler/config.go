package scheduler

import (
	"time"

	appconfig "github.com/wavelog/waveport/internal/config"
)

// Config controls the refresh schedule poll loop.
type Config struct {
	Enabled      bool
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		PollInterval: time.Hour,
	}
}

func (c Config) withDefaults() Config {
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultConfig().PollInterval
	}
	return c
}

func ProvideConfig(cfg appconfig.Config) Config {
	return Config{
		Enabled:      cfg.Scheduler.Enabled,
		PollInterval: cfg.Scheduler.PollInterval,
	}
}
