package thresholds

// Error messages
const (
	ErrMsgLoadFailed = "load thresholds"
	ErrMsgSaveFailed = "save thresholds"
)

// Log messages
const (
	LogMsgLoaded          = "Level thresholds loaded"
	LogMsgSaved           = "Level thresholds saved"
	LogMsgAutoCorrected   = "Level thresholds auto-corrected"
	LogMsgStoredInvalid   = "Stored level thresholds invalid, normalizing"
	LogMsgVersionConflict = "Level thresholds changed concurrently, reloading"
)
