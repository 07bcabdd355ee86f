package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypePointsChanged is published after every committed point adjustment
	EventTypePointsChanged = "ledger.points_changed"

	// EventTypeLevelUp is published when a positive adjustment raises a student's level
	EventTypeLevelUp = "ledger.level_up"

	// EventTypeRewardRedeemed is published after a committed redemption
	EventTypeRewardRedeemed = "ledger.reward_redeemed"

	// EventTypeStudentsImported is published after a bulk import, including partial ones
	EventTypeStudentsImported = "ledger.students_imported"

	// EventTypeThresholdsUpdated is published when level thresholds are saved
	EventTypeThresholdsUpdated = "settings.thresholds_updated"
)
