package config

import (
	"path/filepath"
	"time"
)

// Config provides read-only access to application configuration.
// This interface abstracts the configuration source (JSON, defaults)
// and ensures the app layer doesn't depend on infrastructure details.
type Config interface {
	// Core settings
	Home() string // Base directory for propbrief (PROPBRIEF_HOME)

	// Submission
	SubmitEndpoint() string       // Remote submission URL; empty selects the outbox
	SubmitTimeoutSec() int        // Submission timeout in seconds
	SubmitTimeout() time.Duration // Submission timeout as Duration
	OutboxDir() string            // Directory the outbox submitter writes to

	// Reference data
	RatesPath() string   // Commission rate table (YAML); empty uses built-in rates
	RegionsPath() string // State/LGA/area gazetteer (YAML); empty uses the embedded one

	// Serving and logging
	ListenAddr() string  // HTTP API listen address
	StderrLevel() string // Stderr log level

	// Metadata
	ConfigSource() string // Source of configuration: "json" or "default"
	SettingPath() string  // Path to setting.json if loaded from file
}

// AppConfig is the concrete implementation of Config interface.
type AppConfig struct {
	home string

	submitEndpoint   string
	submitTimeoutSec int
	outboxDir        string

	ratesPath   string
	regionsPath string

	listenAddr  string
	stderrLevel string

	configSource string
	settingPath  string
}

// Home returns the base directory
func (c *AppConfig) Home() string {
	return c.home
}

// SubmitEndpoint returns the remote submission URL
func (c *AppConfig) SubmitEndpoint() string {
	return c.submitEndpoint
}

// SubmitTimeoutSec returns the submission timeout in seconds
func (c *AppConfig) SubmitTimeoutSec() int {
	return c.submitTimeoutSec
}

// SubmitTimeout returns the submission timeout as a Duration
func (c *AppConfig) SubmitTimeout() time.Duration {
	return time.Duration(c.submitTimeoutSec) * time.Second
}

// OutboxDir returns the outbox directory, relative paths resolved against Home
func (c *AppConfig) OutboxDir() string {
	if c.outboxDir == "" || filepath.IsAbs(c.outboxDir) {
		return c.outboxDir
	}
	return filepath.Join(c.home, c.outboxDir)
}

// RatesPath returns the rate table path
func (c *AppConfig) RatesPath() string {
	return c.ratesPath
}

// RegionsPath returns the gazetteer path
func (c *AppConfig) RegionsPath() string {
	return c.regionsPath
}

// ListenAddr returns the HTTP listen address
func (c *AppConfig) ListenAddr() string {
	return c.listenAddr
}

// StderrLevel returns the stderr log level
func (c *AppConfig) StderrLevel() string {
	return c.stderrLevel
}

// ConfigSource returns the source of configuration
func (c *AppConfig) ConfigSource() string {
	return c.configSource
}

// SettingPath returns the path to setting.json if loaded from file
func (c *AppConfig) SettingPath() string {
	return c.settingPath
}

// NewAppConfig creates a new AppConfig with the given values.
// This is typically called by the infrastructure layer after loading the settings file.
func NewAppConfig(
	home string,
	submitEndpoint string, submitTimeoutSec int, outboxDir string,
	ratesPath, regionsPath string,
	listenAddr, stderrLevel string,
	configSource, settingPath string,
) *AppConfig {
	return &AppConfig{
		home:             home,
		submitEndpoint:   submitEndpoint,
		submitTimeoutSec: submitTimeoutSec,
		outboxDir:        outboxDir,
		ratesPath:        ratesPath,
		regionsPath:      regionsPath,
		listenAddr:       listenAddr,
		stderrLevel:      stderrLevel,
		configSource:     configSource,
		settingPath:      settingPath,
	}
}
