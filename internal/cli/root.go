package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	dryRun  bool
	log     = logrus.New()
)

// rootCmd is the base command for adfsync.
var rootCmd = &cobra.Command{
	Use:   "adfsync",
	Short: "Convert between ADF documents and editable Markdown",
	Long: `adfsync moves Confluence page content and Jira issue text between
its rich-document JSON form (Atlassian Document Format) and an editable
Markdown file with a frontmatter sidecar.

Single files are converted with "tomd" and "toadf"; "sync" batch-converts
everything configured in adfsync.yaml.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "adfsync.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "convert but don't write files")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func applyLogLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	if !verbose {
		log.SetLevel(parsed)
	}
}
