package noted

import (
	"log/slog"

	"github.com/aretw0/noted/pkg/core"
)

// options holds the internal configuration for the noted service.
type options struct {
	mustExist  bool
	clock      core.Clock
	repository core.Repository
	logger     *slog.Logger
}

// Option defines a functional option for configuring noted.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		mustExist:  false,
		clock:      core.SystemClock,
		repository: nil,
		logger:     nil,
	}
}

// WithMustExist refuses to create a missing store directory.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.mustExist = must
	}
}

// WithClock replaces the wall clock used to pick today's date.
func WithClock(clock core.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. mock).
// If provided, the default filesystem adapter will be skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}
