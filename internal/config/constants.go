package config

import "time"

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvEnvironment       = "ENVIRONMENT"
	EnvVersion           = "VERSION"
	EnvAPIKey            = "API_KEY"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdle     = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvOperationTimeout  = "OPERATION_TIMEOUT"
	EnvRetryAttempts     = "RETRY_ATTEMPTS"
	EnvRetryInitialDelay = "RETRY_INITIAL_DELAY"
	EnvTimezone          = "TIMEZONE"
	EnvDefaultThresholds = "DEFAULT_THRESHOLDS"
	EnvRewardCacheSize   = "REWARD_CACHE_SIZE"
	EnvRewardCacheTTL    = "REWARD_CACHE_TTL"
	EnvDefaultClassName  = "DEFAULT_CLASS_NAME"
	EnvDeadLetterPath    = "DEAD_LETTER_PATH"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultEnvironment       = "dev"
	DefaultVersion           = "dev"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "classpoint"
	DefaultDBMaxConns        = 10
	DefaultDBMaxConnIdle     = 30 * time.Minute
	DefaultDBMaxConnLifetime = time.Hour
	DefaultOperationTimeout  = 5 * time.Second
	DefaultRetryAttempts     = 3
	DefaultRetryInitialDelay = 50 * time.Millisecond
	DefaultTimezone          = "Asia/Ho_Chi_Minh"
	DefaultThresholdsValue   = "50,100,200"
	DefaultRewardCacheSize   = 256
	DefaultRewardCacheTTL    = 5 * time.Minute
	DefaultClassName         = "Lớp học của tôi"
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
)

// Error messages
const (
	ErrMsgInvalidIntFmt        = "invalid %s value %q: %w"
	ErrMsgInvalidDurationFmt   = "invalid %s value %q: %w"
	ErrMsgInvalidThresholdsFmt = "invalid %s value %q: expected three comma-separated integers"
	ErrMsgThresholdOrderFmt    = "invalid %s value %q: %w"
	ErrMsgInvalidTimezoneFmt   = "invalid %s value %q: %w"
	ErrMsgAPIKeyRequired       = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfigFmt     = "invalid configuration: %w"
)
