package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frherrer/adfsync/internal/config"
	"github.com/frherrer/adfsync/internal/pipeline"
)

var convertOutput string

var tomdCmd = &cobra.Command{
	Use:   "tomd <file.adf.json>",
	Short: "Convert an ADF document file to Markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadOrDefaultConfig()
		return runConvert(args[0], pipeline.NewExportConverter(cfg))
	},
}

var toadfCmd = &cobra.Command{
	Use:   "toadf <file.md>",
	Short: "Convert a Markdown file to an ADF document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadOrDefaultConfig()
		return runConvert(args[0], pipeline.NewPublishConverter(cfg))
	},
}

func init() {
	for _, cmd := range []*cobra.Command{tomdCmd, toadfCmd} {
		cmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file (default stdout)")
		rootCmd.AddCommand(cmd)
	}
}

// runConvert converts a single file and writes the result to --output or
// stdout.
func runConvert(path string, conv pipeline.Converter) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := conv.Convert(path, content)
	if err != nil {
		return err
	}

	if convertOutput == "" {
		_, err = os.Stdout.Write(result.Content)
		return err
	}
	log.Infof("Writing: %s", convertOutput)
	return os.WriteFile(convertOutput, result.Content, 0644)
}

// loadOrDefaultConfig loads the configured file when present and falls back
// to defaults otherwise, so single-file conversions work without a config.
func loadOrDefaultConfig() *config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Debugf("Using default config: %v", err)
		cfg = config.DefaultConfig()
	}
	applyLogLevel(cfg.Logging.Level)
	return cfg
}
