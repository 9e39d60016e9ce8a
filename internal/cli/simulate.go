package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var simulateUsed string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Advance the simulated day, applying usage and expiry events",
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&simulateUsed, "used", "", "comma-separated item ids used on this day")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	var usedIDs []string
	if simulateUsed != "" {
		usedIDs = strings.Split(simulateUsed, ",")
	}

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}
	logs, err := project.LoadLogStore(logPath())
	if err != nil {
		return err
	}

	now, changes := e.SimulateDay(usedIDs)

	for _, c := range changes.Used {
		logs.Append(project.LogEntry{
			Timestamp: now, UserID: "cli", ActionType: project.ActionRetrieval, ItemID: c.ItemID,
			Details: map[string]string{"usesRemaining": fmt.Sprintf("%d", c.UsesRemaining)},
		})
	}
	for _, c := range changes.OutOfUses {
		logs.Append(project.LogEntry{
			Timestamp: now, UserID: "cli", ActionType: project.ActionDisposal, ItemID: c.ItemID,
			Details: map[string]string{"reason": "out of uses"},
		})
	}
	for _, c := range changes.Expired {
		logs.Append(project.LogEntry{
			Timestamp: now, UserID: "cli", ActionType: project.ActionDisposal, ItemID: c.ItemID,
			Details: map[string]string{"reason": "expired"},
		})
	}

	if err := project.SaveEngineState(statePath(), e); err != nil {
		return err
	}
	if err := project.SaveLogStore(logPath(), logs); err != nil {
		return err
	}

	fmt.Printf("advanced to %s\n", now.Format("2006-01-02"))
	fmt.Printf("used: %d, newly out of uses: %d, expired: %d\n", len(changes.Used), len(changes.OutOfUses), len(changes.Expired))
	return nil
}
