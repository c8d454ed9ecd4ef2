package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frherrer/adfsync/internal/preview"
	"github.com/frherrer/adfsync/internal/sidecar"
)

var previewOutput string

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>",
	Short: "Render a Markdown file to an HTML preview page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		meta, body, err := sidecar.Strip(content)
		if err != nil {
			return err
		}
		title := meta.Title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}

		page, err := preview.Render([]byte(body), title)
		if err != nil {
			return err
		}

		if previewOutput == "" {
			_, err = os.Stdout.Write(page)
			return err
		}
		log.Infof("Writing: %s", previewOutput)
		return os.WriteFile(previewOutput, page, 0644)
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(previewCmd)
}
