package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "./enum", cfg.EnumDir)
	assert.Equal(t, filepath.Join("./enum", "nmap_sv_sc.nmap"), cfg.DefaultInput)
	assert.Equal(t, filepath.Join("./enum", "surface_map.csv"), cfg.DefaultOutput)
	assert.Equal(t, "Tablecruncher", cfg.ViewerCommand)
	assert.True(t, cfg.HistoryEnabled)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ENUM_DIR", "/tmp/assessment")
	t.Setenv("VIEWER_COMMAND", "xdg-open")
	t.Setenv("HISTORY_ENABLED", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/assessment", cfg.EnumDir)
	assert.Equal(t, filepath.Join("/tmp/assessment", "nmap_sv_sc.nmap"), cfg.DefaultInput)
	assert.Equal(t, "xdg-open", cfg.ViewerCommand)
	assert.False(t, cfg.HistoryEnabled)
}

func TestResolveOutputPath(t *testing.T) {
	cfg := &Config{DefaultOutput: "./enum/surface_map.csv"}

	// Explicit -o always wins.
	assert.Equal(t, "out.csv", cfg.ResolveOutputPath("scan.nmap", "out.csv", false))

	// Bare invocation uses the configured default.
	assert.Equal(t, "./enum/surface_map.csv", cfg.ResolveOutputPath("./enum/nmap_sv_sc.nmap", "", true))

	// Explicit input without -o lands next to the input.
	assert.Equal(t, "scan.nmap.csv", cfg.ResolveOutputPath("scan.nmap", "", false))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("HISTORY_ENABLED", "yes")
	assert.True(t, getEnvBool("HISTORY_ENABLED", false))

	t.Setenv("HISTORY_ENABLED", "0")
	assert.False(t, getEnvBool("HISTORY_ENABLED", true))

	t.Setenv("HISTORY_ENABLED", "nonsense")
	assert.True(t, getEnvBool("HISTORY_ENABLED", true))
}
