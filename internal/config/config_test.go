package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
dbname = "hotel"
user = "hotel"
password = "from-file"

[auth]
jwt_secret = "secret"

[admin]
password = "Admin123!"

[booking]
allow_overlap_on_edit = true
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaultsAndFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Booking.CalendarDays)
	assert.True(t, cfg.Booking.AllowOverlapOnEdit)
	assert.Equal(t, "admin@hotel.com", cfg.Admin.Email)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 7000, cfg.Server.HTTPPort)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
}

func TestLoad_MissingSecret(t *testing.T) {
	_, err := Load(writeConfig(t, `
[database]
host = "localhost"
dbname = "hotel"
`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_BadPortEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")

	_, err := Load(writeConfig(t, sampleConfig))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
