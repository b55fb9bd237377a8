package service

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// backoffPolicy gates the next attempt of a failed mutation. The delay is
// applied between passes, never as a sleep inside one.
type backoffPolicy struct {
	base    time.Duration
	ceiling time.Duration
}

// delay returns min(base*2^(attempts-1), cap).
func (b backoffPolicy) delay(attempts int) time.Duration {
	bo := retry.WithCappedDuration(b.ceiling, retry.NewExponential(b.base))

	var d time.Duration
	for range max(attempts, 1) {
		d, _ = bo.Next()
	}
	return d
}

// nextAttemptAt applies the delay for attempts to now. A larger server hint
// (Retry-After) wins.
func (b backoffPolicy) nextAttemptAt(now time.Time, attempts int, hint time.Duration) time.Time {
	return now.Add(max(b.delay(attempts), hint))
}
