package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/patience/internal/patience"
)

// Config represents the complete patience configuration
type Config struct {
	LogLevel string        `hcl:"log_level,optional"`
	Rules    *RulesConfig  `hcl:"rules,block"`
	Survey   *SurveyConfig `hcl:"survey,block"`
}

// RulesConfig selects the game variant
type RulesConfig struct {
	Build       string `hcl:"build,optional"`
	EmptyColumn string `hcl:"empty_column,optional"`
	Draw        int    `hcl:"draw,optional"`
}

// SurveyConfig controls batch surveys of dealt games
type SurveyConfig struct {
	Deals   int   `hcl:"deals,optional"`
	Workers int   `hcl:"workers,optional"`
	Seed    int64 `hcl:"seed,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Rules: &RulesConfig{
			Build:       "alternate",
			EmptyColumn: "king",
			Draw:        1,
		},
		Survey: &SurveyConfig{
			Deals:   1000,
			Workers: 4,
			Seed:    1,
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
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

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	if c.Rules == nil {
		c.Rules = defaults.Rules
	}
	if c.Rules.Build == "" {
		c.Rules.Build = defaults.Rules.Build
	}
	if c.Rules.EmptyColumn == "" {
		c.Rules.EmptyColumn = defaults.Rules.EmptyColumn
	}
	if c.Rules.Draw == 0 {
		c.Rules.Draw = defaults.Rules.Draw
	}

	if c.Survey == nil {
		c.Survey = defaults.Survey
	}
	if c.Survey.Deals == 0 {
		c.Survey.Deals = defaults.Survey.Deals
	}
	if c.Survey.Workers == 0 {
		c.Survey.Workers = defaults.Survey.Workers
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}

	if _, err := c.GameRules(); err != nil {
		return err
	}

	if c.Survey.Deals <= 0 {
		return fmt.Errorf("survey: deals must be positive")
	}
	if c.Survey.Workers <= 0 {
		return fmt.Errorf("survey: workers must be positive")
	}
	return nil
}

// GameRules converts the rules block into patience.Rules
func (c *Config) GameRules() (patience.Rules, error) {
	build, err := patience.ParseBuildRule(c.Rules.Build)
	if err != nil {
		return patience.Rules{}, fmt.Errorf("rules: %w", err)
	}
	empty, err := patience.ParseEmptyColumnRule(c.Rules.EmptyColumn)
	if err != nil {
		return patience.Rules{}, fmt.Errorf("rules: %w", err)
	}
	rules := patience.Rules{Build: build, EmptyColumn: empty, Draw: c.Rules.Draw}
	if err := rules.Validate(); err != nil {
		return patience.Rules{}, fmt.Errorf("rules: %w", err)
	}
	return rules, nil
}
