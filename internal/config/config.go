// Package config loads the HCL configuration file for the card house. Every
// setting has a default, so running without a config file always works.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration
type Config struct {
	Session SessionSettings `hcl:"session,block"`
	UI      UISettings      `hcl:"ui,block"`
}

// SessionSettings control the chip ledger and deal randomness
type SessionSettings struct {
	StartingBalance int   `hcl:"starting_balance,optional"`
	Seed            int64 `hcl:"seed,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel        string `hcl:"log_level,optional"`
	LogFile         string `hcl:"log_file,optional"`
	Theme           string `hcl:"theme,optional"`
	OpponentDelayMS int    `hcl:"opponent_delay_ms,optional"`
	ConfirmActions  bool   `hcl:"confirm_actions,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Session: SessionSettings{
			StartingBalance: 10000,
			Seed:            0, // 0 means seed from the clock
		},
		UI: UISettings{
			LogLevel:        "warn",
			LogFile:         "cardhouse.log",
			Theme:           "default",
			OpponentDelayMS: 600,
			ConfirmActions:  false,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults; a malformed one is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if config.Session.StartingBalance == 0 {
		config.Session.StartingBalance = defaults.Session.StartingBalance
	}
	if config.UI.LogLevel == "" {
		config.UI.LogLevel = defaults.UI.LogLevel
	}
	if config.UI.LogFile == "" {
		config.UI.LogFile = defaults.UI.LogFile
	}
	if config.UI.Theme == "" {
		config.UI.Theme = defaults.UI.Theme
	}
	if config.UI.OpponentDelayMS == 0 {
		config.UI.OpponentDelayMS = defaults.UI.OpponentDelayMS
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Session.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive")
	}

	if c.UI.OpponentDelayMS < 0 {
		return fmt.Errorf("opponent delay cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validThemes := map[string]bool{
		"default": true,
		"dark":    true,
		"light":   true,
	}
	if !validThemes[c.UI.Theme] {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	return nil
}
