package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/frherrer/adfsync/internal/adf"
	"github.com/frherrer/adfsync/internal/domain"
)

var checkCmd = &cobra.Command{
	Use:   "check <file.adf.json>...",
	Short: "Validate ADF document files",
	Long: `Decodes each document file and runs structural validation. A failed
check blocks any update upstream; the error names the offending block.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := 0
		for _, path := range args {
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			doc, err := adf.Decode(content)
			if err == nil {
				err = domain.Validate(doc)
			}
			if err != nil {
				failed++
				log.Errorf("%s: %v", path, err)
				continue
			}
			log.Infof("%s: ok (%d blocks)", path, len(doc.Blocks))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d file(s) failed validation", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
