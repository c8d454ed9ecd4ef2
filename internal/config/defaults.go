package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	recursive := true
	spacing := true
	return &Config{
		Input: InputConfig{
			Directories: []string{"pages"},
			Include:     []string{"*.md", "*.adf.json"},
			Exclude:     []string{"vendor/**", "node_modules/**"},
			Recursive:   &recursive,
		},
		Output: OutputConfig{
			Directory:         "out",
			MarkdownExtension: ".md",
			DocumentExtension: ".adf.json",
		},
		Conversion: ConversionConfig{
			SeparatorSpacing: &spacing,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		DryRun: false,
	}
}
