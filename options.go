package teststat

// Level is a verbosity level attached to a name at registration time.
// The registry tracks it as opaque metadata, independent of the value stores.
type Level int

type registryConfig struct {
	// maxStats bounds the number of retained samples per series.
	// Non-positive means unbounded. Default: unbounded.
	maxStats int
	logger   logger
}

// Option configures a Registry constructed by New.
type Option func(*registryConfig)

// WithMaxStats bounds every sampled series to the n most-recent values
// (a sliding window). n <= 0 keeps the default unbounded retention.
func WithMaxStats(n int) Option {
	return func(cfg *registryConfig) { cfg.maxStats = n }
}

// WithLogger installs a logger used for invariant-violation reporting.
// The default logger discards everything.
func WithLogger(l logger) Option {
	return func(cfg *registryConfig) { cfg.logger = l }
}

// regConfig carries optional per-registration metadata.
type regConfig struct {
	verbosity    Level
	hasVerbosity bool
}

// RegOption mutates regConfig.
type RegOption func(*regConfig)

// WithVerbosity attaches a verbosity level to the registered name.
// Registering the same name again with this option overwrites the level.
func WithVerbosity(lvl Level) RegOption {
	return func(c *regConfig) {
		c.verbosity = lvl
		c.hasVerbosity = true
	}
}

// applyRegOptions builds regConfig from options.
func applyRegOptions(opts []RegOption) regConfig {
	var cfg regConfig
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
