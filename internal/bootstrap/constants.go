package bootstrap

import "time"

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Session log files
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many older session files survive a restart
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingClassPoint  = "Starting ClassPoint"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// Event system defaults
const (
	EventDefaultMaxRetries = 5
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgDeadLettersPending             = "Undelivered events from a previous run"
	LogMsgDeadLetterScanFailed           = "Could not read dead-letter file"
	LogMsgEventSystemInitialized         = "Event system initialized"
	ErrMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgActivityLoggerRegistered   = "Activity logger registered"
	LogMsgLevelUp                    = "Student reached a new level"
	LogMsgRewardRedeemed             = "Reward redeemed"
	LogMsgThresholdsChanged          = "Level thresholds changed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// Service initialization
const (
	LogMsgThresholdsLoaded   = "Level thresholds loaded"
	LogMsgDefaultClassReady  = "Default class ready"
	ErrMsgFailedLoadSettings = "failed to load level thresholds"
	ErrMsgFailedDefaultClass = "failed to ensure default class"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgClosingDatabase            = "Closing database pool"
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
