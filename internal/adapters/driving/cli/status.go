package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdant-labs/obsync-cli/internal/core/domain"
)

// timeRounding keeps run durations readable in status output.
const timeRounding = 100 * time.Millisecond

var statusLimit int

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show recent synchronisation runs",
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().IntVarP(&statusLimit, "limit", "n", 10, "number of runs to show")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	runs, cleanup, err := openRunStore()
	if err != nil {
		return err
	}
	defer cleanup()

	history, err := runs.ListRuns(cmd.Context(), statusLimit)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("list runs: %w", err)
	}

	if len(history) == 0 {
		cmd.Println("No synchronisation runs recorded yet.")
		return nil
	}

	for _, run := range history {
		errCount := run.FetchErrors + run.ReadErrors + run.WriteErrors
		cmd.Printf("%s  user=%s listed=%d fetched=%d created=%d updated=%d unchanged=%d errors=%d (%s)\n",
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.UserID, run.IDsListed, run.Fetched,
			run.Created, run.Updated, run.Unchanged, errCount,
			run.FinishedAt.Sub(run.StartedAt).Round(timeRounding))
	}
	return nil
}
