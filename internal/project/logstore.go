package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ActionType enumerates the log entry action kinds from spec.md §3.
type ActionType string

const (
	ActionPlacement ActionType = "placement"
	ActionRetrieval ActionType = "retrieval"
	ActionDisposal  ActionType = "disposal"
)

// LogEntry is the append-only audit record described in spec.md §3. Details
// is a free-form bag of action-specific fields (e.g. "fromContainer",
// "toContainer", "reason"), mirroring the original's loosely-typed details
// object.
type LogEntry struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	UserID     string            `json:"user_id"`
	ActionType ActionType        `json:"action_type"`
	ItemID     string            `json:"item_id"`
	Details    map[string]string `json:"details,omitempty"`
}

// LogStore is an in-memory, append-only log with JSON persistence, grounded
// in the teacher's internal/project/inventory.go load/save pattern.
type LogStore struct {
	entries []LogEntry
}

// NewLogStore returns an empty LogStore.
func NewLogStore() *LogStore {
	return &LogStore{}
}

// Append records a new log entry, assigning it an id if the caller left
// one unset.
func (s *LogStore) Append(entry LogEntry) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()[:8]
	}
	s.entries = append(s.entries, entry)
}

// DefaultLogPath returns the default file path for the log store, at
// ~/.stowctl/logs.json.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), "logs.json")
}

// SaveLogStore writes the store to path as indented JSON, creating parent
// directories as needed.
func SaveLogStore(path string, s *LogStore) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create log dir")
	}
	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal log entries")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write log store")
}

// LoadLogStore reads the store from path. If the file does not exist it
// returns an empty LogStore with no error.
func LoadLogStore(path string) (*LogStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewLogStore(), nil
		}
		return nil, errors.Wrap(err, "read log store")
	}
	var entries []LogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(err, "unmarshal log entries")
	}
	return &LogStore{entries: entries}, nil
}

// LogFilter selects a subset of entries, per spec.md §6's Logs operation.
// Zero-value fields are treated as "unconstrained" for that dimension; the
// original_source/backend/routes/logs.py implementation only ever applied
// startDate, leaving endDate/itemId/userId/actionType unfiltered — this is
// a supplemented completion of that operation (SPEC_FULL.md §6).
type LogFilter struct {
	StartDate  time.Time
	EndDate    time.Time
	ItemID     string
	UserID     string
	ActionType ActionType
}

// Query returns entries matching filter, oldest first.
func (s *LogStore) Query(filter LogFilter) []LogEntry {
	var out []LogEntry
	for _, e := range s.entries {
		if !filter.StartDate.IsZero() && e.Timestamp.Before(filter.StartDate) {
			continue
		}
		if !filter.EndDate.IsZero() && e.Timestamp.After(filter.EndDate) {
			continue
		}
		if filter.ItemID != "" && e.ItemID != filter.ItemID {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		if filter.ActionType != "" && e.ActionType != filter.ActionType {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// ExportLogsXLSX writes entries to an xlsx workbook at path, one row per
// entry, grounded in the teacher's internal/importer.go excelize usage
// (SPEC_FULL.md §2 H2).
func ExportLogsXLSX(path string, entries []LogEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Logs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return errors.Wrap(err, "create sheet")
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	header := []string{"ID", "Timestamp", "User ID", "Action Type", "Item ID", "Details"}
	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, entry := range entries {
		r := row + 2
		f.SetCellValue(sheet, mustCell(1, r), entry.ID)
		f.SetCellValue(sheet, mustCell(2, r), entry.Timestamp.Format(time.RFC3339))
		f.SetCellValue(sheet, mustCell(3, r), entry.UserID)
		f.SetCellValue(sheet, mustCell(4, r), string(entry.ActionType))
		f.SetCellValue(sheet, mustCell(5, r), entry.ItemID)
		f.SetCellValue(sheet, mustCell(6, r), detailsString(entry.Details))
	}

	return errors.Wrap(f.SaveAs(path), "save xlsx")
}

func mustCell(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func detailsString(details map[string]string) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	s := ""
	for i, k := range keys {
		if i > 0 {
			s += "; "
		}
		s += k + "=" + details[k]
	}
	return s
}
