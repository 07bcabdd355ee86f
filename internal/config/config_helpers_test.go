package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ClassPoint_Go/internal/domain"
)

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{"empty uses default", "", 42, false},
		{"valid", "100", 100, false},
		{"negative", "-10", -10, false},
		{"zero", "0", 0, false},
		{"surrounding spaces", " 7 ", 7, false},
		{"float", "42.5", 0, true},
		{"text", "not-a-number", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_VAR", tt.value)

			got, err := getEnvAsInt("TEST_INT_VAR", 42)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_INT_VAR")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"empty uses default", "", 5 * time.Minute, false},
		{"minutes", "10m", 10 * time.Minute, false},
		{"complex", "1h30m45s", time.Hour + 30*time.Minute + 45*time.Second, false},
		{"milliseconds", "500ms", 500 * time.Millisecond, false},
		{"plain number", "100", 0, true},
		{"garbage", "not-a-duration", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_VAR", tt.value)

			got, err := getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseThresholds(t *testing.T) {
	got, err := parseThresholds("50,100,200")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultThresholds, got)

	for _, raw := range []string{"", "1,2", "1,2,3,4", "0,1,2", "5,5,6", "a,b,c"} {
		t.Run(raw, func(t *testing.T) {
			_, err := parseThresholds(raw)
			assert.Error(t, err)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, splitList(" 10.0.0.1, ,10.0.0.2,"))
}
