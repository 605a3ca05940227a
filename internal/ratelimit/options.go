package ratelimit

import "time"

type Options struct {
	// IdleTimeout is the delay after which a silent client's bucket is
	// dropped. Zero keeps every bucket forever.
	IdleTimeout time.Duration
	Clock       func() time.Time
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		IdleTimeout: DefaultIdleTimeout,
		Clock:       time.Now,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithIdleTimeout(timeout time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.IdleTimeout = timeout
	}
}

func WithClock(clock func() time.Time) OptionFunc {
	return func(opts *Options) {
		opts.Clock = clock
	}
}
