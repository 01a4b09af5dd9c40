package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SALUTE_CLIENT_ID", "id")
	t.Setenv("SALUTE_CLIENT_SECRET", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "SALUTE_SPEECH_PERS", cfg.OAuth.Scope)
	assert.Equal(t, "https://ngw.devices.sberbank.ru:9443/api/v2/oauth", cfg.OAuth.URL)
	assert.Equal(t, 10*time.Second, cfg.OAuth.Timeout)
	assert.Equal(t, "smartspeech.sber.ru:443", cfg.Salute.Endpoint)
	assert.Equal(t, "smartspeech.sber.ru", cfg.Salute.Authority)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.OAuth.InsecureSkipVerify)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
oauth:
  client_id: yaml-id
  client_secret: yaml-secret
  scope: SALUTE_SPEECH_CORP
salute:
  endpoint: sandbox.example.com:443
  authority: sandbox.example.com
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "yaml-id", cfg.OAuth.ClientID)
	assert.Equal(t, "SALUTE_SPEECH_CORP", cfg.OAuth.Scope)
	assert.Equal(t, "sandbox.example.com:443", cfg.Salute.Endpoint)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, `
oauth:
  client_id: yaml-id
  client_secret: yaml-secret
server:
  port: 8080
`)

	t.Setenv("SALUTE_CLIENT_ID", "env-id")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-id", cfg.OAuth.ClientID)
	assert.Equal(t, "yaml-secret", cfg.OAuth.ClientSecret)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("SALUTE_CLIENT_ID", "id")
	t.Setenv("SALUTE_CLIENT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "id", cfg.OAuth.ClientID)
}

func TestValidate(t *testing.T) {
	t.Run("missing client id", func(t *testing.T) {
		t.Setenv("SALUTE_CLIENT_ID", "")
		t.Setenv("SALUTE_CLIENT_SECRET", "secret")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SALUTE_CLIENT_ID")
	})

	t.Run("missing client secret", func(t *testing.T) {
		t.Setenv("SALUTE_CLIENT_ID", "id")
		t.Setenv("SALUTE_CLIENT_SECRET", "")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SALUTE_CLIENT_SECRET")
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("SALUTE_CLIENT_ID", "id")
		t.Setenv("SALUTE_CLIENT_SECRET", "secret")
		t.Setenv("PORT", "70000")
		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Load(path)
	require.Error(t, err)
}
