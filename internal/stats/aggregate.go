package stats

import (
	"math"
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

// LevelDistribution counts students per level. Every level is present,
// lowest first, even when its count is zero.
func LevelDistribution(students []domain.Student) []domain.LevelCount {
	counts := make(map[domain.Level]int, len(domain.AllLevels()))
	for _, s := range students {
		counts[s.Level]++
	}

	out := make([]domain.LevelCount, 0, len(domain.AllLevels()))
	for _, level := range domain.AllLevels() {
		out = append(out, domain.LevelCount{
			Level:       level,
			DisplayName: level.DisplayName(),
			Icon:        level.Icon(),
			Count:       counts[level],
		})
	}
	return out
}

// TopReasons groups the positive (or negative) entries by reason and
// returns the n most frequent. Entries without a reason are grouped under
// the default label for their sign. Zero changes are ignored.
func TopReasons(history []domain.PointHistoryEntry, positive bool, n int) []domain.ReasonStat {
	byReason := make(map[string]*domain.ReasonStat)
	for _, e := range history {
		if e.Change == 0 || (e.Change > 0) != positive {
			continue
		}
		label := reasonLabel(e)
		stat, ok := byReason[label]
		if !ok {
			stat = &domain.ReasonStat{Reason: label}
			byReason[label] = stat
		}
		stat.Count++
		stat.TotalPoints += abs(e.Change)
	}

	out := make([]domain.ReasonStat, 0, len(byReason))
	for _, stat := range byReason {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].Reason < out[j].Reason
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func reasonLabel(e domain.PointHistoryEntry) string {
	if e.Reason != nil && *e.Reason != "" {
		return *e.Reason
	}
	if e.Change > 0 {
		return domain.DefaultPositiveReason
	}
	return domain.DefaultNegativeReason
}

type dayBucket struct {
	day   time.Time
	sum   int
	count int
}

// DailyTrend averages PointsAfter per calendar day in loc and returns the
// most recent days, oldest first.
func DailyTrend(history []domain.PointHistoryEntry, loc *time.Location, days int) []domain.DailyPoint {
	if loc == nil {
		loc = time.UTC
	}

	buckets := make(map[time.Time]*dayBucket)
	for _, e := range history {
		t := e.CreatedAt.In(loc)
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		b, ok := buckets[day]
		if !ok {
			b = &dayBucket{day: day}
			buckets[day] = b
		}
		b.sum += e.PointsAfter
		b.count++
	}

	ordered := make([]*dayBucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].day.Before(ordered[j].day) })

	if days > 0 && len(ordered) > days {
		ordered = ordered[len(ordered)-days:]
	}

	out := make([]domain.DailyPoint, len(ordered))
	for i, b := range ordered {
		out[i] = domain.DailyPoint{
			Date:          b.day.Format(domain.TrendDateLayout),
			AveragePoints: int(math.Round(float64(b.sum) / float64(b.count))),
			Entries:       b.count,
		}
	}
	return out
}

// PointTotals sums all positive changes and the absolute value of all
// negative ones.
func PointTotals(history []domain.PointHistoryEntry) domain.PointTotals {
	var totals domain.PointTotals
	for _, e := range history {
		if e.Change > 0 {
			totals.Positive += e.Change
		} else {
			totals.Negative -= e.Change
		}
	}
	return totals
}

// Leaderboard ranks students by points, highest first. Ties are broken by
// name in Vietnamese collation, the order the roster uses.
func Leaderboard(students []domain.Student, limit int) []domain.LeaderboardEntry {
	col := collate.New(language.Vietnamese)
	ranked := append([]domain.Student(nil), students...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalPoints != ranked[j].TotalPoints {
			return ranked[i].TotalPoints > ranked[j].TotalPoints
		}
		return col.CompareString(ranked[i].Name, ranked[j].Name) < 0
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]domain.LeaderboardEntry, len(ranked))
	for i, s := range ranked {
		out[i] = domain.LeaderboardEntry{
			Rank:        i + 1,
			StudentID:   s.ID,
			Name:        s.Name,
			TotalPoints: s.TotalPoints,
			Level:       s.Level,
		}
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
