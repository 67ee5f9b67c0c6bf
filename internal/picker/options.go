package picker

import (
	"math/rand/v2"
	"time"
)

const (
	// DefaultHistoryCap is the maximum number of entries kept in the selection history
	DefaultHistoryCap = 29

	// DefaultBlurDelay is how long the dropdown stays open after the input loses focus
	DefaultBlurDelay = 200 * time.Millisecond
)

// Option is a functional option for configuring a SelectionState
type Option func(*options)

// options holds the tunables for a SelectionState
type options struct {
	historyCap           int
	blurDelay            time.Duration
	rng                  *rand.Rand
	cancelCloseOnRefocus bool
}

func defaultOptions() options {
	return options{
		historyCap: DefaultHistoryCap,
		blurDelay:  DefaultBlurDelay,
	}
}

// WithHistoryCap sets the maximum history length.
// Values below 1 keep the default.
func WithHistoryCap(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.historyCap = n
		}
	}
}

// WithBlurDelay sets the delay between blur and the dropdown closing.
// Non-positive values keep the default.
func WithBlurDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.blurDelay = d
		}
	}
}

// WithRand sets the random source used by GetRandomID
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithCancelCloseOnRefocus makes a focus event invalidate any close scheduled by an earlier blur.
// When disabled (the default) a scheduled close always fires, even if focus came back.
func WithCancelCloseOnRefocus(enabled bool) Option {
	return func(o *options) {
		o.cancelCloseOnRefocus = enabled
	}
}
