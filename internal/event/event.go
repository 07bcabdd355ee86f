package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Ledger event types
const (
	PointsChanged     Type = domain.EventTypePointsChanged
	LevelUp           Type = domain.EventTypeLevelUp
	RewardRedeemed    Type = domain.EventTypeRewardRedeemed
	StudentsImported  Type = domain.EventTypeStudentsImported
	ThresholdsUpdated Type = domain.EventTypeThresholdsUpdated
)

// PointsChangedPayloadV1 is the typed payload for point adjustments
type PointsChangedPayloadV1 struct {
	StudentID   string  `json:"student_id"`
	ClassID     string  `json:"class_id"`
	Change      int     `json:"change"`
	PointsAfter int     `json:"points_after"`
	Reason      *string `json:"reason,omitempty"`
}

// LevelUpPayloadV1 is the typed payload for level-up events
type LevelUpPayloadV1 struct {
	StudentID   string       `json:"student_id"`
	StudentName string       `json:"student_name"`
	OldLevel    domain.Level `json:"old_level"`
	NewLevel    domain.Level `json:"new_level"`
}

// RewardRedeemedPayloadV1 is the typed payload for redemptions
type RewardRedeemedPayloadV1 struct {
	StudentID   string `json:"student_id"`
	RewardID    string `json:"reward_id"`
	RewardName  string `json:"reward_name"`
	PointsSpent int    `json:"points_spent"`
}

// StudentsImportedPayloadV1 is the typed payload for bulk imports
type StudentsImportedPayloadV1 struct {
	Imported     int `json:"imported"`
	Groups       int `json:"groups"`
	FailedGroups int `json:"failed_groups"`
}

// ThresholdsUpdatedPayloadV1 is the typed payload for saved thresholds
type ThresholdsUpdatedPayloadV1 struct {
	Thresholds domain.LevelThresholds `json:"thresholds"`
	Version    int64                  `json:"version"`
}

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// NewPointsChangedEvent creates a points changed event from a committed history entry
func NewPointsChangedEvent(student *domain.Student, entry *domain.PointHistoryEntry) Event {
	return newEvent(PointsChanged, PointsChangedPayloadV1{
		StudentID:   student.ID,
		ClassID:     student.ClassID,
		Change:      entry.Change,
		PointsAfter: entry.PointsAfter,
		Reason:      entry.Reason,
	})
}

// NewLevelUpEvent creates a level-up event
func NewLevelUpEvent(lu *domain.LevelUpEvent) Event {
	return newEvent(LevelUp, LevelUpPayloadV1{
		StudentID:   lu.StudentID,
		StudentName: lu.StudentName,
		OldLevel:    lu.OldLevel,
		NewLevel:    lu.NewLevel,
	})
}

// NewRewardRedeemedEvent creates a redemption event
func NewRewardRedeemedEvent(r *domain.RewardRedemption) Event {
	return newEvent(RewardRedeemed, RewardRedeemedPayloadV1{
		StudentID:   r.StudentID,
		RewardID:    r.RewardID,
		RewardName:  r.RewardName,
		PointsSpent: r.PointsSpent,
	})
}

// NewStudentsImportedEvent summarizes an import, partial or not
func NewStudentsImportedEvent(result *domain.ImportResult) Event {
	return newEvent(StudentsImported, StudentsImportedPayloadV1{
		Imported:     result.TotalImported,
		Groups:       len(result.Groups),
		FailedGroups: len(result.Failed()),
	})
}

// NewThresholdsUpdatedEvent creates a thresholds updated event
func NewThresholdsUpdatedEvent(cfg domain.ThresholdConfig) Event {
	return newEvent(ThresholdsUpdated, ThresholdsUpdatedPayloadV1{
		Thresholds: cfg.Thresholds,
		Version:    cfg.Version,
	})
}

// DecodePayload returns the payload as T. In-process events already carry
// the struct; payloads read back from the dead-letter file are JSON maps.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Publisher accepts events without making the caller wait on delivery.
type Publisher interface {
	PublishWithRetry(ctx context.Context, event Event)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
