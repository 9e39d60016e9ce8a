// Package ingest implements the CSV import/export adapter described in
// spec.md §6. It is deliberately thin: it parses rows into engine.Item and
// engine.Container values (or records a per-row error and continues,
// spec.md §7) and leaves all placement/retrieval/waste semantics to the
// engine package. Grounded in the teacher's internal/importer package
// (delimiter-tolerant CSV reading) and in original_source/backend/routes
// /import_export.py (exact header names and per-row error accumulation).
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ninaadsaxena/csms-nsh/internal/engine"
)

// RowError is one failed row of a CSV import; the batch continues past it.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// ItemsHeader is the canonical header row for the items CSV format.
var ItemsHeader = []string{
	"Item ID", "Name", "Width (cm)", "Depth (cm)", "Height (cm)",
	"Mass (kg)", "Priority (1-100)", "Expiry Date (ISO Format)",
	"Usage Limit", "Preferred Zone",
}

// ContainersHeader is the canonical header row for the containers CSV
// format. The last column's header ("Height(height)") is preserved
// verbatim for compatibility with spec.md §6's documented quirk.
var ContainersHeader = []string{
	"Container ID", "Zone", "Width(cm)", "Depth(cm)", "Height(height)",
}

// ArrangementHeader is the header row for the arrangement export CSV.
var ArrangementHeader = []string{
	"Item ID", "Container ID", "Coordinates (W1,D1,H1),(W2,D2,H2)",
}

// ItemsImportResult holds the outcome of ImportItems.
type ItemsImportResult struct {
	Items  []engine.Item
	Errors []RowError
}

// ImportItems parses an items CSV per spec.md §6. Malformed rows are
// recorded in Errors and skipped; the batch does not abort.
func ImportItems(r io.Reader) (ItemsImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return ItemsImportResult{}, nil
		}
		return ItemsImportResult{}, err
	}
	col := indexHeader(header)

	var result ItemsImportResult
	rowNum := 1 // header is row 1; data rows start at 2, as in the original.
	for {
		rowNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		item, perr := parseItemRow(col, record)
		if perr != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: perr.Error()})
			continue
		}
		result.Items = append(result.Items, item)
	}
	return result, nil
}

func parseItemRow(col map[string]int, record []string) (engine.Item, error) {
	itemID := field(col, record, "Item ID")
	if itemID == "" {
		return engine.Item{}, fmt.Errorf("missing Item ID")
	}

	width, err := atoiField(col, record, "Width (cm)")
	if err != nil {
		return engine.Item{}, err
	}
	depth, err := atoiField(col, record, "Depth (cm)")
	if err != nil {
		return engine.Item{}, err
	}
	height, err := atoiField(col, record, "Height (cm)")
	if err != nil {
		return engine.Item{}, err
	}
	mass, err := atofField(col, record, "Mass (kg)")
	if err != nil {
		return engine.Item{}, err
	}
	priority := 50
	if raw := field(col, record, "Priority (1-100)"); raw != "" {
		p, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return engine.Item{}, fmt.Errorf("invalid Priority (1-100): %q", raw)
		}
		priority = p
	}
	usageLimit := 1
	if raw := field(col, record, "Usage Limit"); raw != "" {
		u, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return engine.Item{}, fmt.Errorf("invalid Usage Limit: %q", raw)
		}
		usageLimit = u
	}

	expiry, err := parseExpiry(field(col, record, "Expiry Date (ISO Format)"))
	if err != nil {
		return engine.Item{}, err
	}

	return engine.Item{
		ID:            itemID,
		Name:          field(col, record, "Name"),
		Width:         width,
		Depth:         depth,
		Height:        height,
		Mass:          mass,
		Priority:      priority,
		ExpiryDate:    expiry,
		UsageLimit:    usageLimit,
		UsesRemaining: usageLimit,
		PreferredZone: field(col, record, "Preferred Zone"),
	}, nil
}

// parseExpiry translates the "N/A"/empty sentinel into a nil expiry date,
// matching spec.md §6: "the sentinel N/A denotes no expiry".
func parseExpiry(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "N/A") {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		t, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid Expiry Date (ISO Format): %q", raw)
		}
	}
	return &t, nil
}

// ContainersImportResult holds the outcome of ImportContainers.
type ContainersImportResult struct {
	Containers []*engine.Container
	Errors     []RowError
}

// ImportContainers parses a containers CSV per spec.md §6.
func ImportContainers(r io.Reader) (ContainersImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return ContainersImportResult{}, nil
		}
		return ContainersImportResult{}, err
	}
	col := indexHeader(header)

	var result ContainersImportResult
	rowNum := 1
	for {
		rowNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: err.Error()})
			continue
		}

		containerID := field(col, record, "Container ID")
		if containerID == "" {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: "missing Container ID"})
			continue
		}
		width, werr := atoiField(col, record, "Width(cm)")
		depth, derr := atoiField(col, record, "Depth(cm)")
		height, herr := atoiField(col, record, "Height(height)")
		if werr != nil || derr != nil || herr != nil {
			result.Errors = append(result.Errors, RowError{Row: rowNum, Message: "invalid dimension"})
			continue
		}

		result.Containers = append(result.Containers, engine.NewContainer(
			containerID, field(col, record, "Zone"), width, depth, height,
		))
	}
	return result, nil
}

// ExportArrangement writes the arrangement export CSV for every currently
// placed item, per spec.md §6's single-cell coordinate format.
func ExportArrangement(w io.Writer, items []engine.Item) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ArrangementHeader); err != nil {
		return err
	}
	for _, it := range items {
		if !it.IsPlaced() {
			continue
		}
		b := it.Placement
		coords := fmt.Sprintf("(%d,%d,%d),(%d,%d,%d)",
			b.Start.W, b.Start.D, b.Start.H, b.End.W, b.End.D, b.End.H)
		if err := writer.Write([]string{it.ID, it.ContainerID, coords}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	return idx
}

func field(col map[string]int, record []string, name string) string {
	i, ok := col[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func atoiField(col map[string]int, record []string, name string) (int, error) {
	raw := field(col, record, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}

func atofField(col map[string]int, record []string, name string) (float64, error) {
	raw := field(col, record, name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return v, nil
}
