package proc

import "time"

// Config carries the execution defaults bound from the environment.
type Config struct {
	// TimeoutSeconds bounds a captured run; zero means no limit.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"0"`
}

// Timeout returns the configured limit as a duration, zero when unbounded.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds < 1 {
		return 0
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
