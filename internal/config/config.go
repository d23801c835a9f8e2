package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything the storefront needs: where the backend lives,
// how long a cached catalog stays fresh, and where state is persisted. The
// TTL trades staleness against request volume and is always a parameter,
// never a constant in the refresh logic.
type Config struct {
	BaseURL  string
	CacheTTL time.Duration
	DataDir  string
	LogLevel string
	LogJSON  bool
}

const (
	defaultConfigPath = "~/.config/icecore/config.toml"
	defaultBaseURL    = "http://localhost:8080/api"
	defaultCacheTTL   = time.Hour
	defaultDataDir    = "~/.local/share/icecore"
	defaultLogLevel   = "info"
)

// envPrefix namespaces environment overrides: ICECORE_BASE_URL,
// ICECORE_CACHE_TTL, ICECORE_DATA_DIR, ICECORE_LOG_LEVEL, ICECORE_LOG_JSON.
const envPrefix = "icecore"

// Load reads the TOML config file, then applies environment overrides. A
// missing file falls back to defaults; a malformed file or duration is an
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		BaseURL:  defaultBaseURL,
		CacheTTL: defaultCacheTTL,
		DataDir:  defaultDataDir,
		LogLevel: defaultLogLevel,
	}

	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if cfg.CacheTTL < 0 {
		cfg.CacheTTL = 0
	}
	cfg.DataDir = mustExpand(cfg.DataDir)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL  string `toml:"base_url"`
		CacheTTL string `toml:"cache_ttl"`
		DataDir  string `toml:"data_dir"`
		LogLevel string `toml:"log_level"`
		LogJSON  bool   `toml:"log_json"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(raw.CacheTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse cache_ttl %q: %w", raw.CacheTTL, err)
		}
		cfg.CacheTTL = ttl
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogJSON = raw.LogJSON
	return nil
}

func applyEnv(cfg *Config) error {
	var env struct {
		BaseURL  string         `envconfig:"BASE_URL"`
		CacheTTL *time.Duration `envconfig:"CACHE_TTL"`
		DataDir  string         `envconfig:"DATA_DIR"`
		LogLevel string         `envconfig:"LOG_LEVEL"`
		LogJSON  *bool          `envconfig:"LOG_JSON"`
	}
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}

	if v := strings.TrimSpace(env.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if env.CacheTTL != nil {
		cfg.CacheTTL = *env.CacheTTL
	}
	if v := strings.TrimSpace(env.DataDir); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(env.LogLevel); v != "" {
		cfg.LogLevel = v
	}
	if env.LogJSON != nil {
		cfg.LogJSON = *env.LogJSON
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
