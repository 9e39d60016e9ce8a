package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var (
	logsStart  string
	logsEnd    string
	logsItem   string
	logsUser   string
	logsAction string
	logsXLSX   string
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Query the action log",
	Long: `Query the append-only action log, with optional filters on date
range, item, user, and action type (spec.md §6's Logs operation).`,
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().StringVar(&logsStart, "start", "", "only entries on or after this date (YYYY-MM-DD)")
	logsCmd.Flags().StringVar(&logsEnd, "end", "", "only entries on or before this date (YYYY-MM-DD)")
	logsCmd.Flags().StringVar(&logsItem, "item", "", "filter by item id")
	logsCmd.Flags().StringVar(&logsUser, "user", "", "filter by user id")
	logsCmd.Flags().StringVar(&logsAction, "action", "", "filter by action type (placement, retrieval, disposal)")
	logsCmd.Flags().StringVar(&logsXLSX, "xlsx", "", "write matching entries to this xlsx path instead of printing")
}

func runLogs(cmd *cobra.Command, args []string) error {
	logs, err := project.LoadLogStore(logPath())
	if err != nil {
		return err
	}

	var filter project.LogFilter
	if logsStart != "" {
		t, err := time.Parse("2006-01-02", logsStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		filter.StartDate = t
	}
	if logsEnd != "" {
		t, err := time.Parse("2006-01-02", logsEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		// Last instant of the given day, so the whole day is included.
		filter.EndDate = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	filter.ItemID = logsItem
	filter.UserID = logsUser
	filter.ActionType = project.ActionType(logsAction)

	entries := logs.Query(filter)

	if logsXLSX != "" {
		return project.ExportLogsXLSX(logsXLSX, entries)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tUSER\tACTION\tITEM")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Timestamp.Format(time.RFC3339), e.UserID, e.ActionType, e.ItemID)
	}
	w.Flush()
	fmt.Printf("\ntotal: %d entr(ies)\n", len(entries))
	return nil
}
