// Package pipeline wires discovery, conversion and output into the batch
// sync flow behind the CLI.
package pipeline

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/frherrer/adfsync/internal/config"
	"github.com/frherrer/adfsync/internal/domain"
	"github.com/frherrer/adfsync/internal/scanner"
)

// Pipeline is the top-level orchestrator: scan → convert → write.
type Pipeline struct {
	scanner  scanner.Scanner
	registry Registry
	log      *logrus.Logger
}

// New creates a Pipeline with all dependencies.
func New(s scanner.Scanner, r Registry, log *logrus.Logger) *Pipeline {
	return &Pipeline{scanner: s, registry: r, log: log}
}

// Run converts every discovered file and writes the results to the output
// directory. Files without a registered converter are skipped with a
// warning; a conversion failure aborts the run so a bad edit is never
// half-synced.
func (p *Pipeline) Run(cfg *config.Config) error {
	var allFiles []string
	for _, dir := range cfg.Input.Directories {
		p.log.Debugf("Scanning directory: %s", dir)
		files, err := p.scanner.Scan(dir, cfg.Input.Include, cfg.Input.Exclude)
		if err != nil {
			p.log.Warnf("Failed to scan directory %s: %v", dir, err)
			continue
		}
		allFiles = append(allFiles, files...)
	}

	if len(allFiles) == 0 {
		p.log.Warn("No content files found")
		return nil
	}
	p.log.Infof("Found %d content file(s)", len(allFiles))

	var results []*Result
	for _, path := range allFiles {
		conv, err := p.registry.ConverterFor(path)
		if err != nil {
			p.log.Warnf("Skipping %s: %v", path, err)
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return domain.NewSyncError("convert", path, "failed to read file", err)
		}

		p.log.Debugf("Converting: %s", path)
		result, err := conv.Convert(path, content)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		p.log.Warn("Nothing to write")
		return nil
	}

	if !cfg.DryRun {
		if err := os.MkdirAll(cfg.Output.Directory, 0755); err != nil {
			return domain.NewSyncError("write", cfg.Output.Directory, "failed to create output directory", err)
		}
	}

	for _, result := range results {
		outPath := filepath.Join(cfg.Output.Directory, result.OutputName)
		if cfg.DryRun {
			p.log.Infof("[DRY-RUN] Would write: %s", outPath)
			continue
		}
		p.log.Infof("Writing: %s", outPath)
		if err := os.WriteFile(outPath, result.Content, 0644); err != nil {
			return domain.NewSyncError("write", outPath, "failed to write output file", err)
		}
	}

	p.log.Info("Sync complete")
	return nil
}
