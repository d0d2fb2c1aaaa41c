package store

import "github.com/rs/zerolog"

// Option configures a GoalStore or SettingsStore.
type Option func(*options)

type options struct {
	log zerolog.Logger
	key string
}

func newOptions(key string, opts []Option) options {
	o := options{log: zerolog.Nop(), key: key}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for load warnings and write failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// WithKey overrides the backend key the store reads and writes.
func WithKey(key string) Option {
	return func(o *options) {
		if key != "" {
			o.key = key
		}
	}
}
