package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frherrer/adfsync/internal/config"
	"github.com/frherrer/adfsync/internal/pipeline"
	"github.com/frherrer/adfsync/internal/scanner"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Batch-convert every configured content file",
	Long:  `Scans the configured directories and converts each file to its opposite representation: ADF documents become Markdown, Markdown becomes ADF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("config validation failed: %w", err)
		}
		if dryRun {
			cfg.DryRun = true
		}
		applyLogLevel(cfg.Logging.Level)

		log.Info("Configuration loaded successfully")
		log.Infof("Scanning directories: %v", cfg.Input.Directories)
		log.Infof("Output directory: %s", cfg.Output.Directory)

		return runSync(cfg)
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// runSync wires all components and runs the pipeline.
func runSync(cfg *config.Config) error {
	recursive := true
	if cfg.Input.Recursive != nil {
		recursive = *cfg.Input.Recursive
	}
	s := scanner.NewScanner(recursive)

	registry := pipeline.NewRegistry()
	registry.Register(pipeline.NewExportConverter(cfg))
	registry.Register(pipeline.NewPublishConverter(cfg))

	return pipeline.New(s, registry, log).Run(cfg)
}
