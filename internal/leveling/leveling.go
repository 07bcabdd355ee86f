// Package leveling maps point totals to levels and progress toward the next one.
package leveling

import "github.com/osse101/ClassPoint_Go/internal/domain"

// LevelFor returns the highest level whose threshold is at or below points.
// Thresholds are scanned from the top so a malformed set still resolves
// deterministically.
func LevelFor(points int, thresholds domain.LevelThresholds) domain.Level {
	levels := domain.AllLevels()
	for i := len(levels) - 1; i > 0; i-- {
		if points >= thresholds.For(levels[i]) {
			return levels[i]
		}
	}
	return domain.LevelHat
}

// Progress reports how far points are from the level after level.
// At the top level the result is 100% with nothing left to earn.
func Progress(points int, level domain.Level, thresholds domain.LevelThresholds) domain.LevelProgress {
	next, ok := level.Next()
	if !ok {
		return domain.LevelProgress{Percentage: 100}
	}

	floor := thresholds.For(level)
	ceiling := thresholds.For(next)
	span := ceiling - floor
	current := points - floor

	percentage := 100
	if span > 0 {
		percentage = min(100, max(0, current*100/span))
	}

	return domain.LevelProgress{
		Current:      current,
		Span:         span,
		Percentage:   percentage,
		PointsNeeded: max(0, ceiling-points),
	}
}

// Changed reports whether a balance change crossed a level boundary and,
// if it moved upward, returns the level-up event. Only positive deltas can
// produce a level-up.
func Changed(student *domain.Student, oldLevel domain.Level, delta int) *domain.LevelUpEvent {
	if delta <= 0 || !student.Level.Above(oldLevel) {
		return nil
	}
	return &domain.LevelUpEvent{
		StudentID:   student.ID,
		StudentName: student.Name,
		OldLevel:    oldLevel,
		NewLevel:    student.Level,
	}
}
