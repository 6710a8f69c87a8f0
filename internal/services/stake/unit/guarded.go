package unit

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/louisbranch/stakeledger/internal/services/stake/domain"
	"github.com/sony/gobreaker"
)

// BreakerConfig tunes the circuit breaker around one unit.
type BreakerConfig struct {
	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
	// Interval clears closed-state counts; zero never clears them.
	Interval time.Duration
	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration
	// FailureThreshold trips the breaker after this many consecutive failures.
	FailureThreshold uint32
	// OnStateChange observes breaker transitions.
	OnStateChange func(address domain.Address, from, to gobreaker.State)
}

// Guarded fails calls to a unit fast once it keeps failing. Business
// rejections such as an insufficient allowance do not count as failures.
type Guarded struct {
	address domain.Address
	inner   Unit
	breaker *gobreaker.CircuitBreaker
}

// Guard wraps inner in a circuit breaker named after address.
func Guard(address domain.Address, inner Unit, cfg BreakerConfig) *Guarded {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	settings := gobreaker.Settings{
		Name:        string(address),
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || IsRejection(err) || errors.Is(err, context.Canceled)
		},
	}
	if cfg.OnStateChange != nil {
		settings.OnStateChange = func(_ string, from, to gobreaker.State) {
			cfg.OnStateChange(address, from, to)
		}
	}
	return &Guarded{
		address: address,
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// State reports the breaker state.
func (g *Guarded) State() gobreaker.State { return g.breaker.State() }

// Unwrap returns the guarded unit.
func (g *Guarded) Unwrap() Unit { return g.inner }

func (g *Guarded) PullTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, g.inner.PullTransfer(ctx, from, to, amount)
	})
	return err
}

func (g *Guarded) PushTransfer(ctx context.Context, from, to domain.Identity, amount *big.Int) error {
	_, err := g.breaker.Execute(func() (interface{}, error) {
		return nil, g.inner.PushTransfer(ctx, from, to, amount)
	})
	return err
}

func (g *Guarded) BalanceOf(ctx context.Context, who domain.Identity) (*big.Int, error) {
	value, err := g.breaker.Execute(func() (interface{}, error) {
		return g.inner.BalanceOf(ctx, who)
	})
	if err != nil {
		return nil, err
	}
	return value.(*big.Int), nil
}

// IsOpen reports whether err came from a breaker refusing the call.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

var (
	_ Unit      = (*Guarded)(nil)
	_ Unwrapper = (*Guarded)(nil)
)
