package event

// Option configures an event Bus.
type Option func(*busConfig)

// busConfig contains configuration for the event bus.
type busConfig struct {
	// debug enables registration and emission reports through the sink.
	debug bool

	// warnOnNoListeners warns when an event is emitted with no handlers.
	warnOnNoListeners bool

	// catchErrors isolates handler failures during synchronous emission.
	catchErrors bool

	// maxListeners is the soft per-event listener cap. Zero means unbounded.
	maxListeners int
}

// defaultConfig returns sensible default configuration.
func defaultConfig() busConfig {
	return busConfig{
		debug:             false,
		warnOnNoListeners: true,
		catchErrors:       true,
		maxListeners:      0,
	}
}

// WithDebug enables or disables debug reporting through the sink.
func WithDebug(enabled bool) Option {
	return func(c *busConfig) {
		c.debug = enabled
	}
}

// WithWarnOnNoListeners controls warning on emissions with no handlers.
func WithWarnOnNoListeners(enabled bool) Option {
	return func(c *busConfig) {
		c.warnOnNoListeners = enabled
	}
}

// WithCatchErrors controls per-handler failure isolation during Emit.
// When disabled, the first failure aborts the emission and is returned
// to the caller.
func WithCatchErrors(enabled bool) Option {
	return func(c *busConfig) {
		c.catchErrors = enabled
	}
}

// WithMaxListeners sets the soft per-event listener cap.
// Exceeding the cap warns through the sink but never refuses registration.
func WithMaxListeners(n int) Option {
	return func(c *busConfig) {
		if n >= 0 {
			c.maxListeners = n
		}
	}
}
