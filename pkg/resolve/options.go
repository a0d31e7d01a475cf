package resolve

import "context"

// DefaultMaxPlacements bounds the names one allocation may place when no
// [MaxPlacements] option is given.
const DefaultMaxPlacements = 1 << 20

type settings struct {
	ctx           context.Context
	maxPlacements int
}

// Option tunes a single resolution.
type Option func(*settings)

// MaxPlacements caps how many names one allocation may place. Exceeding it
// is a resolution error. Values below 1 keep [DefaultMaxPlacements].
func MaxPlacements(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.maxPlacements = n
		}
	}
}

// WithContext stops fill sweeps once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{ctx: context.Background(), maxPlacements: DefaultMaxPlacements}
	for _, o := range opts {
		o(&s)
	}
	return s
}
