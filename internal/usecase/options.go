package usecase

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option customises a use case.
type Option func(*options)

// WithLogger sets the structured logger. A nil logger discards output.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator replaces the time-ordered UUID generator.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, newID: newTimeOrderedID}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	return o
}

func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
