package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/worktime/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates a test from any .env in the package directory.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	cfg, err := Load(filepath.Join(dir, "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "worktime.db", cfg.DBPath)
	assert.Equal(t, "Europe/Kiev", cfg.Timezone)
	assert.Equal(t, domain.MatchRecord, cfg.CheckoutMatch)
	assert.True(t, cfg.RecoverOpenSessions)
	assert.Equal(t, int64(0), cfg.AdminID)
	assert.NotEmpty(t, cfg.Vocabulary.CheckIn)
	require.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "worktime.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
admin_id: 1001
db_path: /var/lib/worktime/records.db
timezone: UTC
workers: 2
checkout_match: day
recover_open_sessions: false
vocabulary:
  check_in: [hello]
  check_out: [bye]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int64(1001), cfg.AdminID)
	assert.Equal(t, "/var/lib/worktime/records.db", cfg.DBPath)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, domain.MatchDay, cfg.CheckoutMatch)
	assert.False(t, cfg.RecoverOpenSessions)
	assert.Equal(t, []string{"hello"}, cfg.Vocabulary.CheckIn)
	assert.Equal(t, []string{"bye"}, cfg.Vocabulary.CheckOut)
	assert.Equal(t, 60, cfg.PollTimeoutSec, "unset keys keep defaults")
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [not a number"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)
	path := filepath.Join(dir, "worktime.yaml")
	require.NoError(t, os.WriteFile(path, []byte("admin_id: 1\ndb_path: file.db\n"), 0o600))

	t.Setenv("WORKTIME_ADMIN_ID", "77")
	t.Setenv("WORKTIME_DB", "env.db")
	t.Setenv("TELEGRAM_BOT_TOKEN", "legacy-token")
	t.Setenv("WORKTIME_RECOVER_OPEN_SESSIONS", "false")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(77), cfg.AdminID)
	assert.Equal(t, "env.db", cfg.DBPath)
	assert.Equal(t, "legacy-token", cfg.BotToken)
	assert.False(t, cfg.RecoverOpenSessions)
}

func TestLoad_LegacyAdminEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("ADMIN_ID", "555")

	cfg, err := Load(filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, int64(555), cfg.AdminID)
}

func TestLoad_InvalidEnvValues(t *testing.T) {
	tests := []struct {
		env, value string
	}{
		{"WORKTIME_ADMIN_ID", "boss"},
		{"WORKTIME_WORKERS", "many"},
		{"WORKTIME_RECOVER_OPEN_SESSIONS", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			dir := chdirTemp(t)
			t.Setenv(tt.env, tt.value)

			_, err := Load(filepath.Join(dir, "none.yaml"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.value)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORKTIME_TIMEZONE=UTC\n"), 0o600))
	t.Setenv("WORKTIME_TIMEZONE", "")
	os.Unsetenv("WORKTIME_TIMEZONE")

	cfg, err := Load(filepath.Join(dir, "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "UTC", cfg.Timezone)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative poll timeout", func(c *Config) { c.PollTimeoutSec = -1 }},
		{"unknown checkout match", func(c *Config) { c.CheckoutMatch = "nearest" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
