// Package leaktest checks that tests leave no goroutines behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	// DefaultWait bounds how long Check waits for goroutines to exit
	DefaultWait = time.Second
)

// GoroutineChecker compares the goroutine count against a baseline taken
// when it was created.
type GoroutineChecker struct {
	before int
	wait   time.Duration
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		wait:   DefaultWait,
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines are still running
// after the wait period. Goroutines that exit during the wait are not
// reported.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	after := waitForCount(g.before+tolerance, g.wait)
	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("goroutine leak: before=%d after=%d leaked=%d tolerance=%d",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it leaves goroutines running.
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// waitForCount polls until at most target goroutines run or timeout passes,
// and returns the last observed count.
func waitForCount(target int, timeout time.Duration) int {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target || time.Now().After(deadline) {
			return n
		}
		time.Sleep(pollInterval)
	}
}
