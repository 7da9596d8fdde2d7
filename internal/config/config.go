package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every key is optional; the
// zero-setup defaults reproduce the conventional ./enum working layout.
type Config struct {
	EnumDir        string // Directory alternative output filenames are saved under
	DefaultInput   string // Input used when the CLI is invoked with no arguments
	DefaultOutput  string // Output used when the CLI is invoked with no arguments
	ViewerCommand  string // External table viewer launched on the written CSV
	SQLitePath     string // Import history database location
	HistoryEnabled bool   // Record conversion runs in the history database
}

// LoadConfig reads an optional .env file and environment overrides
func LoadConfig() (*Config, error) {
	// A missing .env is fine; environment variables still apply.
	_ = godotenv.Load()

	enumDir := getEnv("ENUM_DIR", "./enum")

	cfg := &Config{
		EnumDir:        enumDir,
		DefaultInput:   getEnv("DEFAULT_INPUT", filepath.Join(enumDir, "nmap_sv_sc.nmap")),
		DefaultOutput:  getEnv("DEFAULT_OUTPUT", filepath.Join(enumDir, "surface_map.csv")),
		ViewerCommand:  getEnv("VIEWER_COMMAND", "Tablecruncher"),
		SQLitePath:     getEnv("SQLITE_PATH", filepath.Join(enumDir, "nmap2csv.db")),
		HistoryEnabled: getEnvBool("HISTORY_ENABLED", true),
	}

	return cfg, nil
}

// ResolveOutputPath applies the output defaulting rule: an explicit -o
// path wins; a bare invocation falls back to the configured default;
// otherwise the output sits next to the input as <input>.csv.
func (c *Config) ResolveOutputPath(inputPath, explicitOutput string, noArgs bool) string {
	if explicitOutput != "" {
		return explicitOutput
	}
	if noArgs {
		return c.DefaultOutput
	}
	return inputPath + ".csv"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
