package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/logger"
	"github.com/osse101/ClassPoint_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector and the activity
// logger to the bus.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	bus.Subscribe(event.LevelUp, logLevelUp)
	bus.Subscribe(event.RewardRedeemed, logRewardRedeemed)
	bus.Subscribe(event.ThresholdsUpdated, logThresholdsUpdated)
	slog.Info(LogMsgActivityLoggerRegistered)

	return nil
}

func logLevelUp(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.LevelUpPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgLevelUp,
		"student_id", p.StudentID,
		"student_name", p.StudentName,
		"old_level", p.OldLevel,
		"new_level", p.NewLevel)
	return nil
}

func logRewardRedeemed(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.RewardRedeemedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRewardRedeemed,
		"student_id", p.StudentID,
		"reward_name", p.RewardName,
		"points_spent", p.PointsSpent)
	return nil
}

func logThresholdsUpdated(ctx context.Context, evt event.Event) error {
	p, err := event.DecodePayload[event.ThresholdsUpdatedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgThresholdsChanged, "version", p.Version, "thresholds", p.Thresholds)
	return nil
}
