package handler

// Client-facing error messages. Internal details are never echoed for
// persistence failures.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgInvalidActiveFlag     = "Invalid active parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again."
	ErrMsgImportPartial      = "Some groups could not be imported"
)

// Success messages
const (
	MsgClassDeleted    = "Class deleted"
	MsgStudentDeleted  = "Student deleted"
	MsgRewardDeleted   = "Reward deleted"
	MsgStudentsCleared = "Students removed"
)

// Path and query parameter names
const (
	ParamClassID   = "classID"
	ParamStudentID = "studentID"
	ParamRewardID  = "rewardID"

	QueryParamSort   = "sort"
	QueryParamLimit  = "limit"
	QueryParamActive = "active"
)

// Operation names used in logs and the ledger error metric
const (
	OpListClasses        = "list_classes"
	OpCreateClass        = "create_class"
	OpRenameClass        = "rename_class"
	OpDeleteClass        = "delete_class"
	OpDeleteAllStudents  = "delete_all_students"
	OpListStudents       = "list_students"
	OpAddStudent         = "add_student"
	OpGetStudent         = "get_student"
	OpDeleteStudent      = "delete_student"
	OpImportStudents     = "import_students"
	OpApplyPoints        = "apply_points"
	OpRedeemReward       = "redeem_reward"
	OpStudentHistory     = "student_history"
	OpStudentRedemptions = "student_redemptions"
	OpStudentSummary     = "student_summary"
	OpListRewards        = "list_rewards"
	OpAddReward          = "add_reward"
	OpUpdateReward       = "update_reward"
	OpDeleteReward       = "delete_reward"
	OpGetThresholds      = "get_thresholds"
	OpSetThresholds      = "set_thresholds"
	OpClassOverview      = "class_overview"
	OpLeaderboard        = "leaderboard"
)

// Error kind labels for the ledger error metric
const (
	KindNotFound            = "not_found"
	KindValidation          = "validation"
	KindInsufficientBalance = "insufficient_balance"
	KindPersistence         = "persistence"
	KindConflict            = "conflict"
	KindUnknown             = "unknown"
)
