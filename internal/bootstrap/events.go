package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/ClassPoint_Go/internal/config"
	"github.com/osse101/ClassPoint_Go/internal/event"
)

// InitializeEventSystem creates the in-memory bus and the resilient
// publisher that retries failed deliveries and dead-letters the rest.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	bus := event.NewMemoryBus()

	if err := os.MkdirAll(filepath.Dir(cfg.DeadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	reportPendingDeadLetters(cfg.DeadLetterPath)

	publisher, err := event.NewResilientPublisher(bus, EventDefaultMaxRetries, EventDefaultRetryDelay, cfg.DeadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay,
		"deadletter_path", cfg.DeadLetterPath)

	return bus, publisher, nil
}

// reportPendingDeadLetters warns about events a previous run could not deliver
func reportPendingDeadLetters(path string) {
	entries, skipped, err := event.ReadDeadLetters(path)
	if err != nil {
		slog.Warn(LogMsgDeadLetterScanFailed, "path", path, "error", err)
		return
	}
	if len(entries) == 0 && skipped == 0 {
		return
	}

	byType := make(map[event.Type]int)
	for _, e := range entries {
		byType[e.Event.Type]++
	}
	slog.Warn(LogMsgDeadLettersPending, "path", path, "entries", len(entries), "unreadable", skipped, "by_type", byType)
}
