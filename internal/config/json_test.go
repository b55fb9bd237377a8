package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeJSONFile(t, `{
		"app": {"headless": true, "log_level": "debug"},
		"adapter": {
			"http_address": "https://api.repairminder.com",
			"request_timeout": "20s",
			"user_agent": "Agent/1",
			"probe_interval": "3s",
			"probe_path": "/ping"
		},
		"storage": {"db": {"dsn": "/var/lib/sync.db"}, "session_secret": "from-json"},
		"workers": {
			"sync_interval": "1m",
			"max_concurrency": 5,
			"max_attempts": 2,
			"backoff_base": "500ms",
			"backoff_cap": "10s",
			"completed_reset": "1s"
		},
		"server": {"http_address": "127.0.0.1:8089"}
	}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.True(t, cfg.App.Headless)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "https://api.repairminder.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "Agent/1", cfg.Adapter.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.Adapter.ProbeInterval)
	assert.Equal(t, "/ping", cfg.Adapter.ProbePath)
	assert.Equal(t, "/var/lib/sync.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "from-json", cfg.Storage.SessionSecret)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 5, cfg.Workers.MaxConcurrency)
	assert.Equal(t, 2, cfg.Workers.MaxAttempts)
	assert.Equal(t, 500*time.Millisecond, cfg.Workers.BackoffBase)
	assert.Equal(t, 10*time.Second, cfg.Workers.BackoffCap)
	assert.Equal(t, time.Second, cfg.Workers.CompletedReset)
	assert.Equal(t, "127.0.0.1:8089", cfg.Server.HTTPAddress)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeJSONFile(t, `{"adapter": `)

	_, err := parseJSON(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeJSONFile(t, `{"workers": {"sync_interval": "soon"}}`)

	_, err := parseJSON(path)

	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeJSONFile(t, `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeJSONFile(t, `{}`)

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
