package domain

// Default labels and values shown to teachers.
const (
	DefaultClassName      = "Lớp học của tôi"
	RedemptionReason      = "Đổi quà"
	DefaultRewardIcon     = "🎁"
	DefaultPositiveReason = "Cộng điểm"
	DefaultNegativeReason = "Trừ điểm"
)

// Limits
const (
	StudentHistoryLimit     = 50
	TopReasonsLimit         = 5
	DailyTrendDays          = 14
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// DefaultTimezone is the location used to bucket history into calendar days.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// TrendDateLayout formats trend days as dd/mm/yyyy.
const TrendDateLayout = "02/01/2006"
