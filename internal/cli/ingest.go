package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/ingest"
	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load items or containers from CSV",
}

var ingestItemsCmd = &cobra.Command{
	Use:   "items <file.csv>",
	Short: "Register items from a CSV file (unplaced)",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngestItems,
}

var ingestContainersCmd = &cobra.Command{
	Use:   "containers <file.csv>",
	Short: "Register containers from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngestContainers,
}

func init() {
	ingestCmd.AddCommand(ingestItemsCmd)
	ingestCmd.AddCommand(ingestContainersCmd)
}

func runIngestItems(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	result, err := ingest.ImportItems(f)
	if err != nil {
		return err
	}
	for _, rerr := range result.Errors {
		fmt.Fprintln(os.Stderr, "stowctl: skipped row:", rerr)
	}

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}
	for _, it := range result.Items {
		e.AddItem(it)
	}
	if err := project.SaveEngineState(statePath(), e); err != nil {
		return err
	}
	fmt.Printf("registered %d item(s), %d error(s)\n", len(result.Items), len(result.Errors))
	return nil
}

func runIngestContainers(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	result, err := ingest.ImportContainers(f)
	if err != nil {
		return err
	}
	for _, rerr := range result.Errors {
		fmt.Fprintln(os.Stderr, "stowctl: skipped row:", rerr)
	}

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}
	for _, c := range result.Containers {
		e.AddContainer(c)
	}
	if err := project.SaveEngineState(statePath(), e); err != nil {
		return err
	}
	fmt.Printf("registered %d container(s), %d error(s)\n", len(result.Containers), len(result.Errors))
	return nil
}
