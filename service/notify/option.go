package notify

import (
	"time"
)

type channelEntry struct {
	channel Channel
	timeout time.Duration
}

type dispatcherOptions struct {
	channels map[string]channelEntry
	now      func() time.Time
}

func defaultDispatcherOptions() dispatcherOptions {
	return dispatcherOptions{
		channels: map[string]channelEntry{},
		now:      time.Now,
	}
}

func newDispatcherOptions(options ...DispatcherOption) dispatcherOptions {
	opts := defaultDispatcherOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// DispatcherOption ...
type DispatcherOption func(opts *dispatcherOptions)

// DefaultChannelTimeout is used when a channel is registered with a zero timeout
const DefaultChannelTimeout = 10 * time.Second

// WithChannel registers a channel under its name, every send attempt is bounded by timeout
func WithChannel(ch Channel, timeout time.Duration) DispatcherOption {
	return func(opts *dispatcherOptions) {
		if timeout <= 0 {
			timeout = DefaultChannelTimeout
		}
		opts.channels[ch.Name()] = channelEntry{
			channel: ch,
			timeout: timeout,
		}
	}
}

// WithNowFunc ...
func WithNowFunc(now func() time.Time) DispatcherOption {
	return func(opts *dispatcherOptions) {
		opts.now = now
	}
}

type notifierOptions struct {
	initialInterval time.Duration
	maxInterval     time.Duration
	maxAttempts     int
}

func defaultNotifierOptions() notifierOptions {
	return notifierOptions{
		initialInterval: 500 * time.Millisecond,
		maxInterval:     30 * time.Second,
		maxAttempts:     5,
	}
}

func newNotifierOptions(options ...NotifierOption) notifierOptions {
	opts := defaultNotifierOptions()
	for _, fn := range options {
		fn(&opts)
	}
	return opts
}

// NotifierOption ...
type NotifierOption func(opts *notifierOptions)

// WithRetry configures exponential backoff between attempts, maxAttempts includes the first attempt
func WithRetry(initial time.Duration, maxInterval time.Duration, maxAttempts int) NotifierOption {
	return func(opts *notifierOptions) {
		if initial > 0 {
			opts.initialInterval = initial
		}
		if maxInterval > 0 {
			opts.maxInterval = maxInterval
		}
		if maxAttempts > 0 {
			opts.maxAttempts = maxAttempts
		}
	}
}
