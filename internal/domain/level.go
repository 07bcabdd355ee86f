package domain

import "time"

// Level is a student's progression stage. Levels are totally ordered from
// LevelHat (lowest) to LevelCayTo (highest).
type Level string

const (
	LevelHat    Level = "hat"
	LevelNayMam Level = "nay_mam"
	LevelCayCon Level = "cay_con"
	LevelCayTo  Level = "cay_to"
)

type levelInfo struct {
	level       Level
	displayName string
	icon        string
}

// levelTable holds every level in ascending order.
var levelTable = []levelInfo{
	{LevelHat, "Hạt", "🌰"},
	{LevelNayMam, "Nảy mầm", "🌱"},
	{LevelCayCon, "Cây con", "🌿"},
	{LevelCayTo, "Cây to", "🌳"},
}

// AllLevels returns the levels from lowest to highest.
func AllLevels() []Level {
	levels := make([]Level, len(levelTable))
	for i, info := range levelTable {
		levels[i] = info.level
	}
	return levels
}

// Index returns the level's position in the total order, or -1 when unknown.
func (l Level) Index() int {
	for i, info := range levelTable {
		if info.level == l {
			return i
		}
	}
	return -1
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l.Index() >= 0
}

// IsMax reports whether l is the highest level.
func (l Level) IsMax() bool {
	return l.Index() == len(levelTable)-1
}

// Next returns the level above l. ok is false at the top level.
func (l Level) Next() (Level, bool) {
	idx := l.Index()
	if idx < 0 || idx+1 >= len(levelTable) {
		return "", false
	}
	return levelTable[idx+1].level, true
}

// Previous returns the level below l. ok is false at the bottom level.
func (l Level) Previous() (Level, bool) {
	idx := l.Index()
	if idx <= 0 {
		return "", false
	}
	return levelTable[idx-1].level, true
}

// Above reports whether l ranks strictly higher than other.
func (l Level) Above(other Level) bool {
	return l.Index() > other.Index()
}

func (l Level) DisplayName() string {
	if idx := l.Index(); idx >= 0 {
		return levelTable[idx].displayName
	}
	return string(l)
}

func (l Level) Icon() string {
	if idx := l.Index(); idx >= 0 {
		return levelTable[idx].icon
	}
	return ""
}

// LevelThresholds holds the minimum points required for each level.
// A valid set satisfies 0 = Hat < NayMam < CayCon < CayTo.
type LevelThresholds struct {
	Hat    int `json:"hat"`
	NayMam int `json:"nay_mam"`
	CayCon int `json:"cay_con"`
	CayTo  int `json:"cay_to"`
}

// DefaultThresholds are used when nothing has been persisted yet.
var DefaultThresholds = LevelThresholds{Hat: 0, NayMam: 50, CayCon: 100, CayTo: 200}

// For returns the threshold of the given level.
func (t LevelThresholds) For(level Level) int {
	switch level {
	case LevelNayMam:
		return t.NayMam
	case LevelCayCon:
		return t.CayCon
	case LevelCayTo:
		return t.CayTo
	default:
		return t.Hat
	}
}

// ThresholdConfig is the persisted, versioned threshold set.
type ThresholdConfig struct {
	Thresholds LevelThresholds `json:"thresholds"`
	Version    int64           `json:"version"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// LevelProgress describes how far a student is toward the next level.
type LevelProgress struct {
	Current      int `json:"current"`
	Span         int `json:"span"`
	Percentage   int `json:"percentage"`
	PointsNeeded int `json:"points_needed"`
}
