package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve <item-id>",
	Short: "Record a retrieval, decrementing the item's remaining uses",
	Args:  cobra.ExactArgs(1),
	RunE:  runRetrieve,
}

func runRetrieve(cmd *cobra.Command, args []string) error {
	itemID := args[0]

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}
	logs, err := project.LoadLogStore(logPath())
	if err != nil {
		return err
	}

	if err := e.Retrieve(itemID); err != nil {
		return err
	}
	it, _ := e.Item(itemID)

	logs.Append(project.LogEntry{
		Timestamp: e.Now(), UserID: "cli", ActionType: project.ActionRetrieval, ItemID: itemID,
	})

	if err := project.SaveEngineState(statePath(), e); err != nil {
		return err
	}
	if err := project.SaveLogStore(logPath(), logs); err != nil {
		return err
	}

	fmt.Printf("retrieved %s, %d use(s) remaining\n", itemID, it.UsesRemaining)
	return nil
}
