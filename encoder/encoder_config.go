package encoder

import (
	"log/slog"

	"github.com/arloliu/nibmidi/internal/options"
)

// config collects the settings applied by Option values.
type config struct {
	logger         *slog.Logger
	dropObserver   func(DroppedRecord)
	strictCoverage bool
}

func defaultConfig() *config {
	return &config{
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures an Encoder.
type Option = options.Option[*config]

// WithLogger sets the structured logger. A nil logger keeps the default, which
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithDropObserver registers fn to be called for every incomplete record that is
// discarded during finalization. It is called synchronously, in record order,
// from the goroutine running the assembly call.
func WithDropObserver(fn func(DroppedRecord)) Option {
	return options.NoError(func(c *config) {
		c.dropObserver = fn
	})
}

// WithStrictCoverage makes New reject patterns that do not name every field
// kind, since such a pattern can never produce an event.
func WithStrictCoverage(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.strictCoverage = enabled
	})
}
