package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("SMSCLI_SESSION_CONNECT_TIMEOUT", "7s")
	t.Setenv("SMSCLI_SESSION_MAX_CHUNK_SIZE", "140")
	t.Setenv("SMSCLI_SESSION_CHUNK_DELAY", "1s")
	t.Setenv("SMSCLI_SESSION_CONNECT", "10.0.0.9:5000")
	t.Setenv("SMSCLI_UI_MAX_VIEWS", "9")
	t.Setenv("SMSCLI_UI_DISABLE_NOTIFICATIONS", "true")
	t.Setenv("SMSCLI_UI_MESSAGE_WIDTH_PERCENT", "60")
	t.Setenv("SMSCLI_LOG_FILE", "/var/log/smscli")
	t.Setenv("SMSCLI_CONFIG", "/etc/smscli.yaml")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, 7*time.Second, cfg.Session.ConnectTimeout)
	assert.Equal(t, 140, cfg.Session.MaxChunkSize)
	assert.Equal(t, time.Second, cfg.Session.ChunkDelay)
	assert.Equal(t, "10.0.0.9:5000", cfg.Session.Connect)
	assert.Equal(t, 9, cfg.UI.MaxViews)
	assert.True(t, cfg.UI.DisableNotifications)
	assert.Equal(t, 60, cfg.UI.MessageWidthPercent)
	assert.Equal(t, "/var/log/smscli", cfg.Log.File)
	assert.Equal(t, "/etc/smscli.yaml", cfg.FilePath)
}

// TestParseEnv_IgnoresUnprefixed verifies that variables without the SMSCLI_
// prefix are not picked up.
func TestParseEnv_IgnoresUnprefixed(t *testing.T) {
	t.Setenv("SESSION_MAX_CHUNK_SIZE", "140")
	t.Setenv("CONFIG", "/etc/other.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Zero(t, cfg.Session.MaxChunkSize)
	assert.Empty(t, cfg.FilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SMSCLI_SESSION_CONNECT_TIMEOUT", "forever")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
