package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CALENDAR_DAYS", "")
	t.Setenv("ALMA_BASE_URL", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("USER_REQUESTS_HORIZON_HOURS", "")

	cfg := Load()
	assert.Equal(t, 90, cfg.WindowDays())
	assert.Equal(t, 10000*time.Hour, cfg.UserRequestsHorizon)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://api-na.hosted.exlibrisgroup.com", cfg.AlmaBaseURL)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CALENDAR_DAYS", "28")
	t.Setenv("ALMA_BASE_URL", "http://alma.local/")
	t.Setenv("ALMA_TIMEOUT_SECONDS", "3")
	t.Setenv("AVAILABILITY_CACHE_TTL_SECONDS", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("ALMA_CIRC_DESK", "RESERVES_DESK")

	cfg := Load()
	assert.Equal(t, 28, cfg.WindowDays())
	assert.Equal(t, "http://alma.local", cfg.AlmaBaseURL)
	assert.Equal(t, 3*time.Second, cfg.AlmaTimeout)
	assert.Equal(t, time.Duration(0), cfg.AvailTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "RESERVES_DESK", cfg.AlmaCircDesk)
}
