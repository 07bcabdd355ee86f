package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must be present before the ledger will start
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
	EnvAPIKey,
}

// exampleValue is a placeholder shipped in .env.example
type exampleValue struct {
	env, value, hint string
}

var exampleValues = []exampleValue{
	{EnvDBPassword, "change_this_secure_password", "please use a secure password"},
	{EnvAPIKey, "generate_with_openssl_rand_hex_32", "generate a secure key with: openssl rand -hex 32"},
}

// ValidateEnv rejects an outdated .env file and lists every missing variable
func ValidateEnv() error {
	switch v := os.Getenv(EnvSchemaVersion); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("%s is not set - please update your .env file to include this field (expected: %s)", EnvSchemaVersion, ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("%s mismatch: expected %s, got %s - your .env file may be outdated", EnvSchemaVersion, ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, name := range RequiredEnvVars {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// work but should not reach a school's production server.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, ex := range exampleValues {
		if os.Getenv(ex.env) == ex.value {
			warnings = append(warnings, fmt.Sprintf("%s appears to be using the example value - %s", ex.env, ex.hint))
		}
	}

	if os.Getenv(EnvEnvironment) == "prod" {
		if os.Getenv(EnvDBPassword) == DefaultDBPassword {
			warnings = append(warnings, "DB_PASSWORD is the default 'postgres' in prod")
		}
		if strings.EqualFold(os.Getenv(EnvLogFormat), "text") {
			warnings = append(warnings, "LOG_FORMAT=text in prod - json is easier to ship to a log collector")
		}
	}
	return warnings, nil
}
