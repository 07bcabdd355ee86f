package metrics

import (
	"context"

	"github.com/osse101/ClassPoint_Go/internal/event"
	"github.com/osse101/ClassPoint_Go/internal/logger"
)

// EventMetricsCollector subscribes to ledger events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PointsChanged,
		event.LevelUp,
		event.RewardRedeemed,
		event.StudentsImported,
		event.ThresholdsUpdated,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PointsChanged:
		var p event.PointsChangedPayloadV1
		if p, err = event.DecodePayload[event.PointsChangedPayloadV1](evt.Payload); err == nil {
			if p.Change > 0 {
				PointsAwarded.Add(float64(p.Change))
			} else if p.Change < 0 {
				PointsDeducted.Add(float64(-p.Change))
			}
		}

	case event.LevelUp:
		var p event.LevelUpPayloadV1
		if p, err = event.DecodePayload[event.LevelUpPayloadV1](evt.Payload); err == nil {
			LevelUps.WithLabelValues(string(p.NewLevel)).Inc()
		}

	case event.RewardRedeemed:
		var p event.RewardRedeemedPayloadV1
		if p, err = event.DecodePayload[event.RewardRedeemedPayloadV1](evt.Payload); err == nil {
			RewardsRedeemed.Inc()
			PointsSpent.Add(float64(p.PointsSpent))
		}

	case event.StudentsImported:
		var p event.StudentsImportedPayloadV1
		if p, err = event.DecodePayload[event.StudentsImportedPayloadV1](evt.Payload); err == nil {
			StudentsImported.Add(float64(p.Imported))
			ImportGroupFailures.Add(float64(p.FailedGroups))
		}

	case event.ThresholdsUpdated:
		ThresholdUpdates.Inc()
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
