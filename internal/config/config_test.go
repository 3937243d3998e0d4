package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Pose.FollowThroughBuffer)
	assert.Equal(t, "gemini-2.0-flash", cfg.Narrative.Model)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Empty(t, cfg.Auth.JWTSecret)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: ":9090"
database:
  path: /tmp/attempts.db
pose:
  worker: python3 pose_worker.py
  follow_through_buffer: 12
rate_limit:
  requests: 5
  window: 10s
`), 0o644))

	t.Setenv("PORT", ":7070")
	t.Setenv("GEMINI_API_KEY", "key")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Port, "env wins over file")
	assert.Equal(t, "/tmp/attempts.db", cfg.Database.Path)
	assert.Equal(t, "python3 pose_worker.py", cfg.Pose.Worker)
	assert.Equal(t, 12, cfg.Pose.FollowThroughBuffer)
	assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "key", cfg.Narrative.APIKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("FOLLOW_THROUGH_BUFFER", "many")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("FOLLOW_THROUGH_BUFFER", "0")
	_, err = Load("")
	assert.ErrorContains(t, err, "follow-through buffer")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}
