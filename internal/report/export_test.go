package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// ============================================================
// CSV
// ============================================================

func TestToCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	if err := ToCSV(sampleSummary(), path); err != nil {
		t.Fatalf("ToCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	// Header + 4 breakdown rows
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	header := records[0]
	if header[0] != "Date" || header[5] != "Hours" {
		t.Fatalf("unexpected header: %v", header)
	}

	first := records[1]
	if first[0] != "2024-01-01" || first[1] != "Acme" || first[2] != "Website" || first[5] != "3.5" {
		t.Fatalf("unexpected first row: %v", first)
	}

	// Row order follows date order, then client order within a date.
	last := records[4]
	if last[0] != "2024-01-02" || last[1] != "Acme" {
		t.Fatalf("unexpected last row: %v", last)
	}
	if last[2] != "" || last[3] != "" {
		t.Fatalf("missing fields should be empty in CSV: %v", last)
	}
}

// ============================================================
// JSON
// ============================================================

func TestToJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	if err := ToJSON(sampleSummary(), path); err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		ExportedAt string `json:"exported_at"`
		Count      int    `json:"count"`
		Entries    []struct {
			Date   string  `json:"date"`
			Client string  `json:"client"`
			Hours  float64 `json:"hours"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.ExportedAt == "" {
		t.Fatal("exported_at should be set")
	}
	if out.Count != 4 || len(out.Entries) != 4 {
		t.Fatalf("expected 4 entries, got count=%d len=%d", out.Count, len(out.Entries))
	}
	if out.Entries[0].Date != "2024-01-01" || out.Entries[0].Client != "Acme" || out.Entries[0].Hours != 3.5 {
		t.Fatalf("unexpected first entry: %+v", out.Entries[0])
	}
}

// ============================================================
// Dispatch
// ============================================================

func TestExportDispatch(t *testing.T) {
	dir := t.TempDir()

	if err := Export(sampleSummary(), filepath.Join(dir, "r.csv")); err != nil {
		t.Fatalf("csv export: %v", err)
	}
	if err := Export(sampleSummary(), filepath.Join(dir, "r.json")); err != nil {
		t.Fatalf("json export: %v", err)
	}
	if err := Export(sampleSummary(), filepath.Join(dir, "r.xlsx")); err == nil {
		t.Fatal("unsupported extension should error")
	}
}
