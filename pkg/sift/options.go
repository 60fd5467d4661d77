package sift

type options struct {
	seed    int64
	workers int
}

// Option configures an Evaluate call.
type Option func(*options)

// WithSeed fixes the seed driving both the shuffle and the weight
// initialization. Default: 1.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithWorkers bounds the goroutines used per numeric stage.
// Default: one per CPU.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func defaultOptions() options {
	return options{seed: 1}
}
