package version

// Config carries the resolver defaults bound from the environment.
type Config struct {
	Padding int `mapstructure:"padding" default:"3"`
}

// Normalized returns the configured padding, or [DefaultPadding] when the
// configured value is not positive.
func (c Config) Normalized() int {
	if c.Padding < 1 {
		return DefaultPadding
	}
	return c.Padding
}
