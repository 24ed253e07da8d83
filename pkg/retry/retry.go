// Package retry runs an operation under a backoff policy. The
// operation stays pure; classification of retryable failures and the
// sleep between attempts are injected so callers and tests never
// simulate real delays.
package retry

import (
	"context"
	"time"
)

// Policy describes how many times to attempt an operation and how long
// to wait between attempts.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64

	// Sleep is swapped out in tests. Nil means time.Sleep.
	Sleep func(time.Duration)
}

// DefaultPolicy matches the store-write contract: three attempts, five
// seconds base, doubling.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: 3, BaseDelay: 5 * time.Second, Multiplier: 2}
}

// FixedPolicy retries at a constant interval.
func FixedPolicy(attempts int, delay time.Duration) Policy {
	return Policy{MaxAttempts: attempts, BaseDelay: delay, Multiplier: 1}
}

// Do runs op until it succeeds, fails non-retryably, exhausts the
// attempt budget, or the context is cancelled. The last error seen is
// returned. A nil retryable predicate retries every error.
func (p Policy) Do(ctx context.Context, op func() error, retryable func(error) bool) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := p.BaseDelay
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = op(); err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		sleep(delay)
		delay = time.Duration(float64(delay) * p.Multiplier)
	}
	return err
}
