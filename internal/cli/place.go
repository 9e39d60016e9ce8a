package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/ingest"
	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var (
	placeExportPath string
	placeZone       string
)

var placeCmd = &cobra.Command{
	Use:   "place <new-items.csv>",
	Short: "Find and commit placements for new items",
	Long: `Reads new items from a CSV file in the spec's items format and finds
the best-scoring placement for each across all registered containers.
Items that cannot be placed are reported but not treated as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlace,
}

func init() {
	placeCmd.Flags().StringVar(&placeExportPath, "export", "", "write the resulting arrangement to this CSV path")
	placeCmd.Flags().StringVar(&placeZone, "zone", "", "preferred zone to assign items that don't specify one (default: the configured default-zone)")
}

func runPlace(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open %s: %w", args[0], err)
	}
	defer f.Close()

	imported, err := ingest.ImportItems(f)
	if err != nil {
		return err
	}
	for _, rerr := range imported.Errors {
		fmt.Fprintln(os.Stderr, "stowctl: skipped row:", rerr)
	}

	zone := placeZone
	if zone == "" {
		zone = appConfig.DefaultZone
	}
	if zone != "" {
		for i := range imported.Items {
			if imported.Items[i].PreferredZone == "" {
				imported.Items[i].PreferredZone = zone
			}
		}
	}

	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}
	logs, err := project.LoadLogStore(logPath())
	if err != nil {
		return err
	}

	placements, unplaceable, err := e.RequestPlacement(imported.Items)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ITEM\tCONTAINER\tPOSITION")
	for _, p := range placements {
		fmt.Fprintf(w, "%s\t%s\t(%d,%d,%d)-(%d,%d,%d)\n", p.ItemID, p.ContainerID,
			p.Box.Start.W, p.Box.Start.D, p.Box.Start.H, p.Box.End.W, p.Box.End.D, p.Box.End.H)
		logs.Append(project.LogEntry{
			Timestamp: e.Now(), UserID: "cli", ActionType: project.ActionPlacement, ItemID: p.ItemID,
			Details: map[string]string{"toContainer": p.ContainerID},
		})
	}
	w.Flush()
	if len(unplaceable) > 0 {
		fmt.Printf("unplaceable: %v\n", unplaceable)
	}

	if err := project.SaveEngineState(statePath(), e); err != nil {
		return err
	}
	if err := project.SaveLogStore(logPath(), logs); err != nil {
		return err
	}

	if placeExportPath != "" {
		out, err := os.Create(placeExportPath)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := ingest.ExportArrangement(out, e.Items()); err != nil {
			return err
		}
	}
	return nil
}
