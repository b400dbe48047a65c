package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "cleaned_data.csv", cfg.Data.CleanedPath)
	assert.Equal(t, "contacts.db", cfg.Contact.DBPath)
	assert.Equal(t, 2500, cfg.Splash.DurationMillis)
	assert.Equal(t, 50, cfg.Charts.TopFireAreas)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
data:
  cleaned_path: /data/clean.csv
splash:
  duration_millis: 100
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/clean.csv", cfg.Data.CleanedPath)
	assert.Equal(t, "the_Carbonivore.csv", cfg.Data.RawPath, "unset fields keep defaults")
	assert.Equal(t, 100, cfg.Splash.DurationMillis)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(": not yaml ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Firebase.APIKey)
}

func TestConfigFileKeyOverridesEnvironment(t *testing.T) {
	t.Setenv(APIKeyEnv, "env-key")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("firebase:\n  api_key: file-key\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.Firebase.APIKey)
}
