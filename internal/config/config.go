package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything tempwatch reads at startup. Nothing in the
// program writes it back; runtime style changes live and die with the
// process.
type Config struct {
	LogFile         string
	RefreshInterval time.Duration
	FontSize        int
	Background      string
	DebugLog        string
}

const (
	defaultConfigPath = "~/.config/tempwatch/config.toml"
	defaultInterval   = 3 * time.Minute
	defaultFontSize   = 10
	defaultBackground = "white"
)

// Load locates and parses the tempwatch config, falling back to defaults
// when the file is missing. Field values are trimmed, paths are expanded,
// and empty fields take their defaults. A file that exists but does not
// parse, or that carries an invalid interval or font size, is a startup
// error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RefreshInterval: defaultInterval,
		FontSize:        defaultFontSize,
		Background:      defaultBackground,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		LogFile         string `toml:"log_file"`
		RefreshInterval string `toml:"refresh_interval"`
		FontSize        *int   `toml:"font_size"`
		Background      string `toml:"background"`
		DebugLog        string `toml:"debug_log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if interval := strings.TrimSpace(raw.RefreshInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: invalid refresh_interval %q: %w", interval, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse config: refresh_interval must be positive, got %q", interval)
		}
		cfg.RefreshInterval = d
	}

	if raw.FontSize != nil {
		if *raw.FontSize < 1 {
			return Config{}, fmt.Errorf("parse config: font_size must be at least 1, got %d", *raw.FontSize)
		}
		cfg.FontSize = *raw.FontSize
	}

	if bg := strings.TrimSpace(raw.Background); bg != "" {
		cfg.Background = bg
	}

	if debugLog := strings.TrimSpace(raw.DebugLog); debugLog != "" {
		cfg.DebugLog = mustExpand(debugLog)
	}

	return cfg, nil
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
