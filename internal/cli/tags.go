package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ninaadsaxena/csms-nsh/internal/export"
	"github.com/ninaadsaxena/csms-nsh/internal/project"
)

var tagsOutPath string

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Generate a sheet of QR-coded item tags",
	RunE:  runTags,
}

func init() {
	tagsCmd.Flags().StringVar(&tagsOutPath, "out", "tags.pdf", "output PDF path")
}

func runTags(cmd *cobra.Command, args []string) error {
	e, err := project.LoadEngineState(statePath(), time.Now())
	if err != nil {
		return err
	}

	items := e.Items()
	if err := export.WriteItemTags(tagsOutPath, items); err != nil {
		return err
	}

	fmt.Printf("wrote %d tag(s) to %s\n", len(items), tagsOutPath)
	return nil
}
