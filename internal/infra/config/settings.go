package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/YoshitsuguKoike/propbrief/internal/app/config"
)

// SettingFile is the settings file name inside the home directory
const SettingFile = "setting.json"

// RawSettings represents the structure of setting.json file.
// JSON tags are used for marshaling/unmarshaling.
type RawSettings struct {
	// Core settings
	Home *string `json:"home"`

	// Submission
	SubmitEndpoint   *string `json:"submit_endpoint"`
	SubmitTimeoutSec *int    `json:"submit_timeout_sec"`
	OutboxDir        *string `json:"outbox_dir"`

	// Reference data
	RatesPath   *string `json:"rates_path"`
	RegionsPath *string `json:"regions_path"`

	// Serving and logging
	ListenAddr  *string `json:"listen_addr"`
	StderrLevel *string `json:"stderr_level"`
}

// LoadSettings loads configuration from setting.json in baseDir.
// Priority: setting.json > defaults
func LoadSettings(fs afero.Fs, baseDir string) (*config.AppConfig, error) {
	settings := &RawSettings{}
	configSource := "default"
	settingPath := ""

	jsonPath := filepath.Join(baseDir, SettingFile)
	data, err := afero.ReadFile(fs, jsonPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", jsonPath, err)
		}
		configSource = "json"
		settingPath = jsonPath
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read %s: %w", jsonPath, err)
	}

	if settings.Home == nil {
		settings.Home = &baseDir
	}
	applyDefaults(settings)

	if err := validate(settings); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", jsonPath, err)
	}

	return buildAppConfig(settings, configSource, settingPath), nil
}

// applyDefaults fills in default values for any nil fields
func applyDefaults(settings *RawSettings) {
	if settings.Home == nil {
		v := DefaultHome
		settings.Home = &v
	}

	if settings.SubmitEndpoint == nil {
		v := "" // empty selects the outbox submitter
		settings.SubmitEndpoint = &v
	}
	if settings.SubmitTimeoutSec == nil {
		v := 15
		settings.SubmitTimeoutSec = &v
	}
	if settings.OutboxDir == nil {
		v := "outbox"
		settings.OutboxDir = &v
	}

	if settings.RatesPath == nil {
		v := ""
		settings.RatesPath = &v
	}
	if settings.RegionsPath == nil {
		v := ""
		settings.RegionsPath = &v
	}

	if settings.ListenAddr == nil {
		v := ":8080"
		settings.ListenAddr = &v
	}
	if settings.StderrLevel == nil {
		v := "warn" // Default to WARN level
		settings.StderrLevel = &v
	}
}

func validate(settings *RawSettings) error {
	if *settings.SubmitTimeoutSec <= 0 {
		return fmt.Errorf("submit_timeout_sec must be positive, got %d", *settings.SubmitTimeoutSec)
	}
	if ep := *settings.SubmitEndpoint; ep != "" && !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
		return fmt.Errorf("submit_endpoint must be an http(s) URL, got %q", ep)
	}
	switch strings.ToLower(*settings.StderrLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown stderr_level %q", *settings.StderrLevel)
	}
	return nil
}

// buildAppConfig converts RawSettings to AppConfig
func buildAppConfig(settings *RawSettings, configSource, settingPath string) *config.AppConfig {
	return config.NewAppConfig(
		*settings.Home,
		*settings.SubmitEndpoint,
		*settings.SubmitTimeoutSec,
		*settings.OutboxDir,
		*settings.RatesPath,
		*settings.RegionsPath,
		*settings.ListenAddr,
		*settings.StderrLevel,
		configSource,
		settingPath,
	)
}

// CreateDefaultSettings creates a default setting.json content
func CreateDefaultSettings() []byte {
	settings := &RawSettings{}
	applyDefaults(settings)

	data, _ := json.MarshalIndent(settings, "", "  ")
	return data
}
