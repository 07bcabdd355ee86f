package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when deleting a class that still has students
	PgErrorCodeForeignKeyViolation = "23503"
)

// Settings keys
const (
	SettingsKeyLevelThresholds = "level_thresholds"
)

// Error message formats
const (
	ErrMsgQueryFailedFmt   = "failed to query %s: %w"
	ErrMsgScanFailedFmt    = "failed to scan %s: %w"
	ErrMsgInsertFailedFmt  = "failed to insert %s: %w"
	ErrMsgUpdateFailedFmt  = "failed to update %s: %w"
	ErrMsgDeleteFailedFmt  = "failed to delete %s: %w"
	ErrMsgRowIterationFmt  = "row iteration error for %s: %w"
	ErrMsgBeginTxFailedFmt = "failed to begin transaction: %w"
	ErrMsgEncodeFailedFmt  = "failed to encode %s: %w"
	ErrMsgDecodeFailedFmt  = "failed to decode %s: %w"
)
