/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package config holds the user-editable application configuration,
// persisted as YAML in the per-user config directory. Environment
// variables are read-only overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields are ignored on unmarshal, so forward edits survive.

type GeneralConfig struct {
	Theme    string `yaml:"theme"` // "system" | "light" | "dark"
	Autosave bool   `yaml:"autosave"`
}

// EditorConfig tunes the input gestures of the editor.
type EditorConfig struct {
	// DoubleTapWindowMs is the double-press window for the space/alt/shift
	// shortcuts. 0 keeps the built-in 500ms.
	DoubleTapWindowMs int `yaml:"double_tap_window_ms"`
	// SwipeThresholdPx is the horizontal drag distance a fullscreen swipe
	// must exceed. 0 keeps the built-in 50px.
	SwipeThresholdPx float64 `yaml:"swipe_threshold_px"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Editor        EditorConfig  `yaml:"editor"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Theme: "system", Autosave: true},
		Editor:        EditorConfig{DoubleTapWindowMs: 500, SwipeThresholdPx: 50},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvTheme           = "GDW_THEME"
	EnvAutosave        = "GDW_AUTOSAVE"
	EnvDoubleTapWindow = "GDW_DOUBLE_TAP_WINDOW_MS"
	EnvSwipeThreshold  = "GDW_SWIPE_THRESHOLD_PX"
	EnvLogLevel        = "GDW_LOG_LEVEL"
	EnvLogFormat       = "GDW_LOG_FORMAT"
	EnvLogSource       = "GDW_LOG_SOURCE"
	EnvLogFile         = "GDW_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "GoDeckWriter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoDeckWriter")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "godeckwriter")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and
// merges environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	// booleans: copy directly from src (file) so user preferences persist
	dst.General.Autosave = src.General.Autosave
	if src.Editor.DoubleTapWindowMs != 0 {
		dst.Editor.DoubleTapWindowMs = src.Editor.DoubleTapWindowMs
	}
	if src.Editor.SwipeThresholdPx != 0 {
		dst.Editor.SwipeThresholdPx = src.Editor.SwipeThresholdPx
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.General.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvAutosave)); v != "" {
		cfg.General.Autosave = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDoubleTapWindow)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Editor.DoubleTapWindowMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvSwipeThreshold)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Editor.SwipeThresholdPx = f
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = parseBool(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// EnvOverrideFor returns the env var name if the field is overridden by
// environment variables, so the settings UI can mark it read-only.
func EnvOverrideFor(key string) (string, bool) {
	var name string
	switch key {
	case "general.theme":
		name = EnvTheme
	case "general.autosave":
		name = EnvAutosave
	case "editor.double_tap_window_ms":
		name = EnvDoubleTapWindow
	case "editor.swipe_threshold_px":
		name = EnvSwipeThreshold
	case "logging.level":
		name = EnvLogLevel
	case "logging.format":
		name = EnvLogFormat
	case "logging.source":
		name = EnvLogSource
	case "logging.file":
		name = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}
