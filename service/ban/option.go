package ban

import (
	"time"
)

type coordinatorOptions struct {
	now         func() time.Time
	channels    []string
	cache       StatusCache
	cacheTTL    time.Duration
	lockStripes int
}

func defaultCoordinatorOptions() coordinatorOptions {
	return coordinatorOptions{
		now:         func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		cache:       noopStatusCache{},
		cacheTTL:    0,
		lockStripes: 256,
	}
}

func newCoordinatorOptions(options ...Option) coordinatorOptions {
	opts := defaultCoordinatorOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// Option ...
type Option func(opts *coordinatorOptions)

// WithNowFunc ...
func WithNowFunc(now func() time.Time) Option {
	return func(opts *coordinatorOptions) {
		opts.now = now
	}
}

// WithNotifyChannels sets the channels every transition notification is sent over
func WithNotifyChannels(channels ...string) Option {
	return func(opts *coordinatorOptions) {
		opts.channels = channels
	}
}

// WithStatusCache caches GetCustomerStatus results for at most ttl, a zero ttl disables caching.
// Only this process invalidates the cache on transitions.
func WithStatusCache(cache StatusCache, ttl time.Duration) Option {
	return func(opts *coordinatorOptions) {
		opts.cache = cache
		opts.cacheTTL = ttl
	}
}

// WithLockStripes sets the number of in-process lock stripes, must be a power of two
func WithLockStripes(n int) Option {
	return func(opts *coordinatorOptions) {
		opts.lockStripes = n
	}
}
