package domain

import "time"

// Class groups students and rewards. Deleting a class requires it to be empty.
type Class struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClassSummary is a class together with its current roster size.
type ClassSummary struct {
	Class
	StudentCount int `json:"student_count"`
}

// Student is a member of a class whose balance is owned by the ledger.
type Student struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"class_id"`
	Name        string    `json:"name"`
	OrderNumber int       `json:"order_number"`
	Avatar      *string   `json:"avatar,omitempty"`
	TotalPoints int       `json:"total_points"`
	Level       Level     `json:"level"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StudentSort selects the ordering of a class roster.
type StudentSort string

const (
	SortByPoints StudentSort = "points"
	SortByName   StudentSort = "name"
	SortByOrder  StudentSort = "order"
)

// Valid reports whether s is a supported sort mode.
func (s StudentSort) Valid() bool {
	switch s {
	case SortByPoints, SortByName, SortByOrder:
		return true
	}
	return false
}

// PointHistoryEntry is one append-only record of a balance change.
// Change is the requested delta; PointsAfter is the clamped balance.
type PointHistoryEntry struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"student_id"`
	Change      int       `json:"change"`
	Reason      *string   `json:"reason,omitempty"`
	PointsAfter int       `json:"points_after"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsPositive reports whether the entry added points.
func (e PointHistoryEntry) IsPositive() bool {
	return e.Change > 0
}

// PointChangeResult is returned by a successful point adjustment.
type PointChangeResult struct {
	Student *Student           `json:"student"`
	Entry   *PointHistoryEntry `json:"entry"`
	LevelUp *LevelUpEvent      `json:"level_up,omitempty"`
}

// LevelUpEvent signals that a positive adjustment moved a student up a level.
type LevelUpEvent struct {
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	OldLevel    Level  `json:"old_level"`
	NewLevel    Level  `json:"new_level"`
}

// StudentSummary aggregates a student's ledger for the detail view.
type StudentSummary struct {
	Student         *Student      `json:"student"`
	Progress        LevelProgress `json:"progress"`
	TotalAdded      int           `json:"total_added"`
	TotalDeducted   int           `json:"total_deducted"`
	RedemptionCount int           `json:"redemption_count"`
	TotalSpent      int           `json:"total_spent"`
}
