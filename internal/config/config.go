package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/ClassPoint_Go/internal/domain"
	"github.com/osse101/ClassPoint_Go/internal/thresholds"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`
	Version     string
	APIKey      string

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string

	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBName            string `validate:"required"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdle     time.Duration
	DBMaxConnLifetime time.Duration

	// OperationTimeout bounds each persistence attempt
	OperationTimeout  time.Duration `validate:"gt=0"`
	RetryAttempts     int           `validate:"min=1,max=10"`
	RetryInitialDelay time.Duration

	Timezone          string `validate:"required"`
	DefaultThresholds domain.LevelThresholds
	RewardCacheSize   int           `validate:"min=1"`
	RewardCacheTTL    time.Duration `validate:"gt=0"`
	DefaultClassName  string        `validate:"required"`
	DeadLetterPath    string        `validate:"required"`

	location *time.Location
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env file is fine; real environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:           getEnv(EnvLogDir, DefaultLogDir),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		Version:          getEnv(EnvVersion, DefaultVersion),
		APIKey:           getEnv(EnvAPIKey, ""),
		DBUser:           getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:       getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:           getEnv(EnvDBHost, DefaultDBHost),
		DBPort:           getEnv(EnvDBPort, DefaultDBPort),
		DBName:           getEnv(EnvDBName, DefaultDBName),
		Timezone:         getEnv(EnvTimezone, DefaultTimezone),
		DefaultClassName: strings.TrimSpace(getEnv(EnvDefaultClassName, DefaultClassName)),
		DeadLetterPath:   getEnv(EnvDeadLetterPath, DefaultDeadLetterPath),
		TrustedProxies:   splitList(getEnv(EnvTrustedProxies, "")),
	}

	var err error
	if cfg.Port, err = getEnvAsInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdle, err = getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.OperationTimeout, err = getEnvAsDuration(EnvOperationTimeout, DefaultOperationTimeout); err != nil {
		return nil, err
	}
	if cfg.RetryAttempts, err = getEnvAsInt(EnvRetryAttempts, DefaultRetryAttempts); err != nil {
		return nil, err
	}
	if cfg.RetryInitialDelay, err = getEnvAsDuration(EnvRetryInitialDelay, DefaultRetryInitialDelay); err != nil {
		return nil, err
	}
	if cfg.RewardCacheSize, err = getEnvAsInt(EnvRewardCacheSize, DefaultRewardCacheSize); err != nil {
		return nil, err
	}
	if cfg.RewardCacheTTL, err = getEnvAsDuration(EnvRewardCacheTTL, DefaultRewardCacheTTL); err != nil {
		return nil, err
	}
	if cfg.DefaultThresholds, err = parseThresholds(getEnv(EnvDefaultThresholds, DefaultThresholdsValue)); err != nil {
		return nil, err
	}

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfigFmt, err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidTimezoneFmt, EnvTimezone, cfg.Timezone, err)
	}
	cfg.location = loc

	return cfg, nil
}

// Location returns the zone used for day boundaries in statistics.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when key is unset or empty.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidIntFmt, key, raw, err)
	}
	return v, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInvalidDurationFmt, key, raw, err)
	}
	return v, nil
}

// splitList splits a comma-separated value, dropping empty entries.
func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseThresholds reads "nay_mam,cay_con,cay_to"; the hat threshold is always 0.
func parseThresholds(raw string) (domain.LevelThresholds, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return domain.LevelThresholds{}, fmt.Errorf(ErrMsgInvalidThresholdsFmt, EnvDefaultThresholds, raw)
	}
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return domain.LevelThresholds{}, fmt.Errorf(ErrMsgInvalidThresholdsFmt, EnvDefaultThresholds, raw)
		}
		values[i] = v
	}
	t := domain.LevelThresholds{NayMam: values[0], CayCon: values[1], CayTo: values[2]}
	if err := thresholds.Validate(t); err != nil {
		return domain.LevelThresholds{}, fmt.Errorf(ErrMsgThresholdOrderFmt, EnvDefaultThresholds, raw, err)
	}
	return t, nil
}
