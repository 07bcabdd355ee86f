package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/ClassPoint_Go/internal/database"
	"github.com/osse101/ClassPoint_Go/internal/event"
)

type stoppable interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds everything that needs an orderly stop.
type ShutdownComponents struct {
	Server             stoppable
	ResilientPublisher *event.ResilientPublisher
	DBPool             database.Pool
}

// GracefulShutdown stops accepting requests, flushes pending events and
// then closes the database pool. Errors are logged and do not stop the
// sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
