// Package cli implements the obsync command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/verdant-labs/obsync-cli/internal/logger"
)

// version is the release version, overridable at build time via
// -ldflags "-X .../cli.version=...".
var version = "0.1.0"

var (
	verboseFlag   bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "obsync",
	Short: "Synchronise iNaturalist observations into Hugo content files",
	Long: `obsync mirrors a user's iNaturalist observations into a directory of
Hugo markdown content files, one file per observation.

Each run lists the user's observation ids newest-first, fetches every
observation's detail, and writes a content file when an observation is
new or its metadata changed. Existing files are never deleted.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"configuration directory (default ~/.obsync)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
