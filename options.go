package markov

import (
	"log/slog"
	"time"
)

// Options configures Tabulate and Flatten.
type Options struct {
	// MaxWordLength bounds words in runes. Zero means DefaultMaxWordLength.
	MaxWordLength int
	// Multiprocess runs the command as a three-stage concurrent pipeline.
	Multiprocess bool
	// Seed seeds the sampler. Zero seeds from the clock.
	Seed uint64
	// Logger receives progress and failure records. Nil discards them.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.MaxWordLength <= 0 {
		o.MaxWordLength = DefaultMaxWordLength
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
