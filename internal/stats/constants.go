package stats

// Operation names
const (
	OpOverview       = "class_overview"
	OpLeaderboard    = "leaderboard"
	OpStudentSummary = "student_summary"
)

const (
	ErrMsgStudentIDFmt = "%w (student %s)"
	ErrMsgClassIDFmt   = "%w (class %s)"
)

// Log messages
const (
	LogMsgOverviewBuilt = "Class overview built"
	LogMsgQueryFailed   = "Statistics query failed"
)
