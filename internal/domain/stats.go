package domain

// LevelCount is the number of students currently at a level.
type LevelCount struct {
	Level       Level  `json:"level"`
	DisplayName string `json:"display_name"`
	Icon        string `json:"icon"`
	Count       int    `json:"count"`
}

// ReasonStat groups history entries sharing a reason.
// TotalPoints is the sum of absolute changes.
type ReasonStat struct {
	Reason      string `json:"reason"`
	Count       int    `json:"count"`
	TotalPoints int    `json:"total_points"`
}

// DailyPoint is the average balance recorded on one calendar day.
type DailyPoint struct {
	Date          string `json:"date"`
	AveragePoints int    `json:"average_points"`
	Entries       int    `json:"entries"`
}

// PointTotals sums positive and negative changes. Negative is an absolute value.
type PointTotals struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// ClassOverview is the statistics screen of one class.
type ClassOverview struct {
	ClassID           string       `json:"class_id"`
	StudentCount      int          `json:"student_count"`
	LevelDistribution []LevelCount `json:"level_distribution"`
	TopPositive       []ReasonStat `json:"top_positive"`
	TopNegative       []ReasonStat `json:"top_negative"`
	DailyTrend        []DailyPoint `json:"daily_trend"`
	Totals            PointTotals  `json:"totals"`
}

// LeaderboardEntry is one ranked student.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	StudentID   string `json:"student_id"`
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
	Level       Level  `json:"level"`
}
