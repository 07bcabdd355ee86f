package ledger

// Operation names used for retries, logs and error context
const (
	OpApplyPointChange   = "apply_point_change"
	OpRedeemReward       = "redeem_reward"
	OpAddStudent         = "add_student"
	OpDeleteStudent      = "delete_student"
	OpGetStudent         = "get_student"
	OpListStudents       = "list_students"
	OpStudentHistory     = "student_history"
	OpStudentRedemptions = "student_redemptions"
	OpImportGroup        = "import_group"
	OpListClasses        = "list_classes"
	OpCreateClass        = "create_class"
	OpRenameClass        = "rename_class"
	OpDeleteClass        = "delete_class"
	OpDeleteAllStudents  = "delete_all_students"
	OpEnsureDefaultClass = "ensure_default_class"
)

// Error messages
const (
	ErrMsgBeginTransactionFailed  = "begin transaction"
	ErrMsgCommitTransactionFailed = "commit transaction"
	ErrMsgLockStudentFailed       = "lock student"
	ErrMsgUpdateBalanceFailed     = "update balance"
	ErrMsgInsertHistoryFailed     = "insert history"
	ErrMsgInsertRedemptionFailed  = "insert redemption"
	ErrMsgGetRewardFailed         = "get reward"
	ErrMsgThresholdsFailed        = "load thresholds"

	ErrMsgStudentIDFmt      = "%w (student %s)"
	ErrMsgClassIDFmt        = "%w (class %s)"
	ErrMsgRewardIDFmt       = "%w (reward %s)"
	ErrMsgRowFmt            = "%w (row %d)"
	ErrMsgBalanceFmt        = "%w: student %s has %d points, reward %s costs %d"
	ErrMsgClassNotEmptyFmt  = "%w: class %s has %d students"
	ErrMsgRewardMismatchFmt = "%w: reward %s, student %s"
)

// Lock keys
const (
	studentLockPrefix = "student:"
	classesLockKey    = "classes"
)

// Log messages
const (
	LogMsgPointsChanged      = "Points changed"
	LogMsgLevelUp            = "Student leveled up"
	LogMsgRewardRedeemed     = "Reward redeemed"
	LogMsgRedeemRejected     = "Redemption rejected"
	LogMsgStudentAdded       = "Student added"
	LogMsgStudentDeleted     = "Student deleted"
	LogMsgImportGroupDone    = "Import group committed"
	LogMsgImportGroupFailed  = "Import group failed"
	LogMsgImportFinished     = "Student import finished"
	LogMsgClassCreated       = "Class created"
	LogMsgClassRenamed       = "Class renamed"
	LogMsgClassDeleted       = "Class deleted"
	LogMsgClassDeleteBlocked = "Class delete blocked, class not empty"
	LogMsgStudentsCleared    = "All students deleted from class"
	LogMsgDefaultClass       = "Default class created"
	LogMsgOperationFailed    = "Ledger operation failed"
)
