package config

import (
	"fmt"
	"strings"

	"github.com/frherrer/adfsync/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if len(cfg.Input.Directories) == 0 {
		errs = append(errs, "input.directories must not be empty")
	}
	if len(cfg.Input.Include) == 0 {
		errs = append(errs, "input.include must not be empty")
	}

	if cfg.Output.Directory == "" {
		errs = append(errs, "output.directory must not be empty")
	}
	if !strings.HasPrefix(cfg.Output.MarkdownExtension, ".") {
		errs = append(errs, "output.markdown_extension must start with a dot")
	}
	if !strings.HasPrefix(cfg.Output.DocumentExtension, ".") {
		errs = append(errs, "output.document_extension must start with a dot")
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewSyncError("config", "", fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
