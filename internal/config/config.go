package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/frherrer/adfsync/internal/domain"
)

// Config is the top-level configuration struct (adfsync.yaml).
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Conversion ConversionConfig `yaml:"conversion"`
	Logging    LoggingConfig    `yaml:"logging"`
	DryRun     bool             `yaml:"dry_run"`
}

type InputConfig struct {
	Directories []string `yaml:"directories"`
	Include     []string `yaml:"include"`
	Exclude     []string `yaml:"exclude"`
	Recursive   *bool    `yaml:"recursive"` // pointer to distinguish unset from false
}

type OutputConfig struct {
	Directory         string `yaml:"directory"`
	MarkdownExtension string `yaml:"markdown_extension"`
	DocumentExtension string `yaml:"document_extension"`
}

type ConversionConfig struct {
	// SeparatorSpacing toggles the empty-paragraph insertion before rules
	// and h2+ headings on the Markdown→ADF path.
	SeparatorSpacing *bool `yaml:"separator_spacing"`
	// DefaultLanguage is applied to fenced code blocks without a language tag.
	DefaultLanguage string `yaml:"default_language"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads a YAML configuration file and returns a Config with defaults
// applied for any unset field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewSyncError("config", path, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewSyncError("config", path, "failed to parse config file", err)
	}

	return cfg, nil
}
