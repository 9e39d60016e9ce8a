package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func sampleEntries() []LogEntry {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []LogEntry{
		{Timestamp: base, UserID: "astro1", ActionType: ActionPlacement, ItemID: "001"},
		{Timestamp: base.AddDate(0, 0, 1), UserID: "astro2", ActionType: ActionRetrieval, ItemID: "002",
			Details: map[string]string{"fromContainer": "contA"}},
		{Timestamp: base.AddDate(0, 0, 2), UserID: "astro1", ActionType: ActionDisposal, ItemID: "001"},
	}
}

func TestLogStore_AppendAndQueryUnfiltered(t *testing.T) {
	s := NewLogStore()
	for _, e := range sampleEntries() {
		s.Append(e)
	}

	got := s.Query(LogFilter{})
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
}

func TestLogStore_AppendAssignsIDWhenUnset(t *testing.T) {
	s := NewLogStore()
	s.Append(LogEntry{UserID: "astro1", ActionType: ActionPlacement, ItemID: "001"})

	got := s.Query(LogFilter{})
	if len(got) != 1 || got[0].ID == "" {
		t.Fatalf("expected assigned id, got %+v", got)
	}
}

func TestLogStore_QueryFiltersByStartAndEndDate(t *testing.T) {
	s := NewLogStore()
	for _, e := range sampleEntries() {
		s.Append(e)
	}

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := s.Query(LogFilter{StartDate: base.AddDate(0, 0, 1), EndDate: base.AddDate(0, 0, 1)})
	if len(got) != 1 || got[0].ItemID != "002" {
		t.Fatalf("expected single entry 002, got %+v", got)
	}
}

func TestLogStore_QueryFiltersByItemUserAndAction(t *testing.T) {
	s := NewLogStore()
	for _, e := range sampleEntries() {
		s.Append(e)
	}

	got := s.Query(LogFilter{ItemID: "001"})
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for item 001, got %d", len(got))
	}

	got = s.Query(LogFilter{UserID: "astro2"})
	if len(got) != 1 || got[0].UserID != "astro2" {
		t.Fatalf("expected single entry for astro2, got %+v", got)
	}

	got = s.Query(LogFilter{ActionType: ActionDisposal})
	if len(got) != 1 || got[0].ActionType != ActionDisposal {
		t.Fatalf("expected single disposal entry, got %+v", got)
	}
}

func TestSaveAndLoadLogStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs.json")

	s := NewLogStore()
	for _, e := range sampleEntries() {
		s.Append(e)
	}
	if err := SaveLogStore(path, s); err != nil {
		t.Fatalf("SaveLogStore failed: %v", err)
	}

	loaded, err := LoadLogStore(path)
	if err != nil {
		t.Fatalf("LoadLogStore failed: %v", err)
	}
	if len(loaded.Query(LogFilter{})) != 3 {
		t.Fatalf("expected 3 entries after reload, got %d", len(loaded.Query(LogFilter{})))
	}
}

func TestLoadLogStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "logs.json")
	s, err := LoadLogStore(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if len(s.Query(LogFilter{})) != 0 {
		t.Fatal("expected empty log store")
	}
}

func TestExportLogsXLSX_WritesOneRowPerEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs.xlsx")

	if err := ExportLogsXLSX(path, sampleEntries()); err != nil {
		t.Fatalf("ExportLogsXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen xlsx: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Logs")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	// header + 3 data rows
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows (header + 3), got %d", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Timestamp" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[2][5] != "fromContainer=contA" {
		t.Errorf("unexpected details cell: %q", rows[2][5])
	}
}
