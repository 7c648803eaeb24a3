package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{
		"BOOKSHOP_LOG_LEVEL", "BOOKSHOP_LOG_OUTPUT", "BOOKSHOP_COLOR", "BOOKSHOP_PAUSE_SCALE",
		"BOOKSHOP_ADMIN_ADDR", "BOOKSHOP_METRICS_TOKEN", "BOOKSHOP_ADMIN_RATE",
	} {
		t.Setenv(k, "")
	}

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, config{
		LogLevel:   "warn",
		LogOutput:  "stderr",
		Color:      "auto",
		PauseScale: 1,
		AdminRate:  120,
	}, cfg)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BOOKSHOP_LOG_LEVEL", "debug")
	t.Setenv("BOOKSHOP_COLOR", "never")
	t.Setenv("BOOKSHOP_PAUSE_SCALE", "0")
	t.Setenv("BOOKSHOP_ADMIN_ADDR", "127.0.0.1:9090")
	t.Setenv("BOOKSHOP_METRICS_TOKEN", "tok")
	t.Setenv("BOOKSHOP_ADMIN_RATE", "0")

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "never", cfg.Color)
	assert.Zero(t, cfg.PauseScale)
	assert.Equal(t, "127.0.0.1:9090", cfg.AdminAddr)
	assert.Equal(t, "tok", cfg.MetricsToken)
	assert.Zero(t, cfg.AdminRate)
	assert.Nil(t, scaledSleep(cfg.PauseScale))
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("BOOKSHOP_COLOR", "rainbow")
	_, err := loadConfig()
	assert.Error(t, err)

	t.Setenv("BOOKSHOP_COLOR", "")
	t.Setenv("BOOKSHOP_PAUSE_SCALE", "-2")
	_, err = loadConfig()
	assert.Error(t, err)

	t.Setenv("BOOKSHOP_PAUSE_SCALE", "")
	t.Setenv("BOOKSHOP_ADMIN_RATE", "lots")
	_, err = loadConfig()
	assert.Error(t, err)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"),
		[]byte("BOOKSHOP_LOG_LEVEL=error\nBOOKSHOP_METRICS_TOKEN=from_file\n"), 0o644))
	chdir(t, tmp)

	t.Setenv("BOOKSHOP_LOG_LEVEL", "info")
	t.Setenv("BOOKSHOP_METRICS_TOKEN", "")
	require.NoError(t, os.Unsetenv("BOOKSHOP_METRICS_TOKEN"))

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel, "existing env must win")
	assert.Equal(t, "from_file", cfg.MetricsToken)
}
