package bridgebeam

import "github.com/rs/zerolog"

// Option configures a Builder or an Assembler.
type Option func(*config)

type config struct {
	log zerolog.Logger
}

func newConfig(opts []Option) config {
	c := config{log: zerolog.Nop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}
