package learngl

import "github.com/sirupsen/logrus"

// Option configures a Program.
type Option func(*config)

type config struct {
	logger        logrus.FieldLogger
	locationCache bool
}

func defaultConfig() config {
	return config{
		logger:        logrus.StandardLogger(),
		locationCache: true,
	}
}

// WithLogger sets the logger used for compile warnings and link events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) { c.logger = logger }
}

// WithLocationCache controls whether uniform locations are cached per name.
// Disabling it resolves the name on every setter call; the observable result
// is the same.
func WithLocationCache(enabled bool) Option {
	return func(c *config) { c.locationCache = enabled }
}
