package retry

import "time"

// Policy defaults
const (
	DefaultMaxAttempts  = 3
	DefaultInitialDelay = 50 * time.Millisecond
	DefaultMaxDelay     = time.Second
	DefaultTimeout      = 5 * time.Second
)

// Log messages
const (
	LogMsgRetrying         = "Transient database failure, retrying"
	LogMsgRetriesExhausted = "Database operation failed after retries"
)
