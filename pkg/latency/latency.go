// Package latency emulates network round-trip delay for the in-process
// storefront. The stores themselves stay pure; callers decide where the
// simulated delay applies.
package latency

import (
	"context"
	"math/rand/v2"
	"time"
)

type Simulator struct {
	base time.Duration
}

// New returns a Simulator waiting base plus up to half of base as jitter.
// A zero base disables waiting entirely.
func New(base time.Duration) Simulator {
	return Simulator{base}
}

func (s Simulator) Wait(ctx context.Context) error {
	if s.base <= 0 {
		return nil
	}

	wait := s.base + time.Duration(rand.Int64N(int64(s.base)/2+1))
	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
