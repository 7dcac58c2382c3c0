package service

import (
	"time"

	"github.com/google/uuid"
)

// Option customizes a service. Unset options fall back to the wall clock,
// random UUIDs and a no-op observer.
type Option func(*options)

type options struct {
	now      func() time.Time
	newID    func() string
	observer UseCaseObserver
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		if newID != nil {
			o.newID = newID
		}
	}
}

func WithObserver(observer UseCaseObserver) Option {
	return func(o *options) {
		if observer != nil {
			o.observer = observer
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now:      func() time.Time { return time.Now().UTC() },
		newID:    func() string { return uuid.New().String() },
		observer: NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
