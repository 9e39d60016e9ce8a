// Command stowctl is the CLI host for the cargo stowage management
// system: it wraps internal/engine with CSV ingest, persisted state, an
// action log, and report exporters. The teacher's own cmd/ entrypoints
// launch a Fyne desktop GUI, which has no analogue in this headless spec;
// the thin main-delegates-to-Execute shape here is grounded in
// evalgo-org-graphium's cmd/graphium/main.go instead.
package main

import (
	"fmt"
	"os"

	"github.com/ninaadsaxena/csms-nsh/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "stowctl: %v\n", err)
		os.Exit(1)
	}
}
