package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var (
	searchID   string
	searchName string
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Locate an item by id or name and print its retrieval steps",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchID, "id", "", "item id")
	searchCmd.Flags().StringVar(&searchName, "name", "", "item name (used if id is absent)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}

	result, err := e.Search(searchID, searchName)
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Println("not found")
		return nil
	}

	fmt.Printf("found %s (%s) in container %q\n", result.Item.ID, result.Item.Name, result.Item.ContainerID)
	for _, step := range result.RetrievalSteps {
		fmt.Printf("  %d. %s %s\n", step.Number, step.Action, step.ItemID)
	}
	return nil
}
