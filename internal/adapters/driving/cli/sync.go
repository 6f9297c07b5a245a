package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronise observations from iNaturalist",
	Long: `Runs one synchronisation pass: lists the configured user's observation
ids newest-first, fetches each observation's detail, and writes a Hugo
content file for every observation that is new or changed.

Per-observation fetch and write failures are reported and skipped; a
listing failure aborts the run.`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	service, cleanup, err := newSyncService(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cleanup()

	run, err := service.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if run.Writes() == 0 {
		cmd.Printf("Up to date: %d observations, no changes.\n", run.Unchanged)
	}
	return nil
}
