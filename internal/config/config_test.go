package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "usuarios.json", c.FilePath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, "text", c.LogFormat)
	assert.False(t, c.HashPasswords)
	assert.True(t, c.CreateIfMissing)
	assert.Equal(t, 5*time.Second, c.LockTimeout)
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func stubEnv(t *testing.T, env map[string]string) {
	t.Helper()
	orig := lookupEnv
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	t.Cleanup(func() { lookupEnv = orig })
}

func TestLoadConfig_NoSources(t *testing.T) {
	chdir(t, t.TempDir())
	stubEnv(t, nil)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"file": "from-file.json", "log_level": "debug"}`), 0o600))

	stubEnv(t, map[string]string{"USERREGISTRY_FILE": "from-env.json"})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.FilePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	stubEnv(t, nil)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
