package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/export"
	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var (
	wastePlanUndock    string
	wastePlanMaxWeight float64
	wastePlanPDF       string
)

var wasteCmd = &cobra.Command{
	Use:   "waste",
	Short: "Identify and plan the return of waste items",
}

var wasteIdentifyCmd = &cobra.Command{
	Use:   "identify",
	Short: "List items currently classified as waste",
	RunE:  runWasteIdentify,
}

var wastePlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a mass-capped waste return plan",
	RunE:  runWastePlan,
}

var wasteUndockCmd = &cobra.Command{
	Use:   "undock <container-id>",
	Short: "Complete undocking, removing all items from a container",
	Args:  cobra.ExactArgs(1),
	RunE:  runWasteUndock,
}

func init() {
	wasteCmd.AddCommand(wasteIdentifyCmd)
	wasteCmd.AddCommand(wastePlanCmd)
	wasteCmd.AddCommand(wasteUndockCmd)

	wastePlanCmd.Flags().StringVar(&wastePlanUndock, "undock", "", "undocking container id")
	wastePlanCmd.Flags().Float64Var(&wastePlanMaxWeight, "max-weight", 0, "maximum mass, in kg, to load (default: the configured default-max-weight)")
	wastePlanCmd.Flags().StringVar(&wastePlanPDF, "pdf", "", "write a return manifest PDF to this path")
	_ = wastePlanCmd.MarkFlagRequired("undock")
}

func runWasteIdentify(cmd *cobra.Command, args []string) error {
	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}

	waste := e.IdentifyWaste()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tNAME\tREASON\tCONTAINER")
	for _, entry := range waste {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", entry.ItemID, entry.Name, entry.Reason, entry.ContainerID)
	}
	w.Flush()
	fmt.Printf("\ntotal: %d waste item(s)\n", len(waste))
	return nil
}

func runWastePlan(cmd *cobra.Command, args []string) error {
	maxWeight := wastePlanMaxWeight
	if !cmd.Flags().Changed("max-weight") {
		maxWeight = appConfig.DefaultMaxWeight
	}
	if maxWeight <= 0 {
		return fmt.Errorf("--max-weight must be set (no positive default-max-weight configured)")
	}

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}
	logs, err := project.LoadLogStore(logPath())
	if err != nil {
		return err
	}

	plan, steps, manifest, err := e.CreateWasteReturnPlan(wastePlanUndock, maxWeight)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tITEM\tFROM\tTO")
	for _, s := range plan {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Step, s.ItemID, s.FromContainer, s.ToContainer)
		logs.Append(project.LogEntry{
			Timestamp: e.Now(), UserID: "cli", ActionType: project.ActionDisposal, ItemID: s.ItemID,
			Details: map[string]string{"toContainer": s.ToContainer},
		})
	}
	w.Flush()
	fmt.Printf("\nretrieval steps to clear the path: %d\n", len(steps))
	fmt.Printf("manifest total mass: %.2f kg, total volume: %d cm3\n", manifest.TotalWeight, manifest.TotalVolume)

	if err := project.SaveLogStore(logPath(), logs); err != nil {
		return err
	}

	if wastePlanPDF != "" {
		c, ok := e.Container(wastePlanUndock)
		if !ok {
			return fmt.Errorf("unknown undocking container %q", wastePlanUndock)
		}
		if err := export.WriteManifestPDF(wastePlanPDF, manifest, c); err != nil {
			return err
		}
	}
	return nil
}

func runWasteUndock(cmd *cobra.Command, args []string) error {
	containerID := args[0]

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}

	removed, err := e.CompleteUndocking(containerID)
	if err != nil {
		return err
	}

	if err := project.SaveEngineState(statePath(), e); err != nil {
		return err
	}

	fmt.Printf("undocked %s, removed %d item(s)\n", containerID, removed)
	return nil
}
