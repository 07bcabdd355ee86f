// Package retry runs persistence operations under a per-attempt timeout and
// retries the ones that failed for transient database reasons.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/ClassPoint_Go/internal/logger"
)

// Postgres error codes worth retrying.
const (
	CodeSerializationFailure = "40001"
	CodeDeadlockDetected     = "40P01"
	CodeTooManyConnections   = "53300"
	CodeAdminShutdown        = "57P01"
)

// Policy bounds how an operation is attempted.
type Policy struct {
	// MaxAttempts includes the first attempt.
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	// Timeout applies to each attempt separately. Zero disables it.
	Timeout time.Duration
	// Transient decides whether a failure is retried. Defaults to IsTransient.
	Transient func(error) bool
}

// DefaultPolicy returns 3 attempts, 50ms initial backoff and a 5s timeout.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		MaxDelay:     DefaultMaxDelay,
		Timeout:      DefaultTimeout,
		Transient:    IsTransient,
	}
}

// Runner executes operations according to a Policy.
type Runner struct {
	policy Policy
}

// New creates a Runner, filling zero fields of p from DefaultPolicy.
func New(p Policy) *Runner {
	def := DefaultPolicy()
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = def.MaxAttempts
	}
	if p.InitialDelay <= 0 {
		p.InitialDelay = def.InitialDelay
	}
	if p.MaxDelay <= 0 {
		p.MaxDelay = def.MaxDelay
	}
	if p.Transient == nil {
		p.Transient = def.Transient
	}
	return &Runner{policy: p}
}

// Policy returns the effective policy.
func (r *Runner) Policy() Policy {
	return r.policy
}

// Do runs fn until it succeeds, fails permanently, runs out of attempts or
// ctx is done. The error of the last attempt is returned unchanged.
func (r *Runner) Do(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	log := logger.FromContext(ctx)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = r.policy.InitialDelay
	b.MaxInterval = r.policy.MaxDelay
	b.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++
		err := r.attempt(ctx, fn)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || isPermanent(err) || !r.policy.Transient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, delay time.Duration) {
		log.Warn(LogMsgRetrying, "operation", op, "attempt", attempt, "delay", delay, "error", err)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(r.policy.MaxAttempts-1)), ctx)
	err := backoff.RetryNotify(operation, policy, notify)
	if err != nil && attempt > 1 {
		log.Error(LogMsgRetriesExhausted, "operation", op, "attempts", attempt, "error", err)
	}
	return err
}

// permanentError marks a failure Do must not retry whatever its cause.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent stops Do from retrying err. The wrapped error stays visible to
// errors.Is and errors.As.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// CommitFailed classifies an error returned by COMMIT. A server error means
// the transaction was rolled back and a COMMIT the driver never sent changed
// nothing; both follow the normal retry rules. Any other failure leaves the
// outcome unknown, so it is never retried.
func CommitFailed(commitErr, wrapped error) error {
	var pgErr *pgconn.PgError
	if errors.As(commitErr, &pgErr) || pgconn.SafeToRetry(commitErr) {
		return wrapped
	}
	return Permanent(wrapped)
}

func (r *Runner) attempt(ctx context.Context, fn func(ctx context.Context) error) error {
	if r.policy.Timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, r.policy.Timeout)
	defer cancel()
	return fn(attemptCtx)
}

// IsTransient reports whether err is a database failure that may succeed on
// a later attempt: serialization failures, deadlocks, dropped or refused
// connections and per-attempt timeouts.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case CodeSerializationFailure, CodeDeadlockDetected, CodeTooManyConnections, CodeAdminShutdown:
			return true
		}
		return false
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	return pgconn.SafeToRetry(err) || pgconn.Timeout(err)
}
