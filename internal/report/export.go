package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sadopc/harvestctl/internal/timesheet"
)

// exportRow is one flattened breakdown line.
type exportRow struct {
	Date    string
	Client  string
	Project string
	Task    string
	Notes   string
	Hours   float64
}

func flatten(s timesheet.Summary) []exportRow {
	var rows []exportRow
	for _, date := range s.Dates {
		day, ok := s.Days[date]
		if !ok {
			continue
		}
		for _, client := range day.Clients {
			for _, item := range day.Items[client] {
				rows = append(rows, exportRow{
					Date:    date,
					Client:  client,
					Project: item.Project,
					Task:    item.Task,
					Notes:   item.Notes,
					Hours:   item.Hours,
				})
			}
		}
	}
	return rows
}

// Export writes the breakdown to path, picking the format from the file
// extension (.csv or .json).
func Export(s timesheet.Summary, path string) error {
	switch filepath.Ext(path) {
	case ".csv":
		return ToCSV(s, path)
	case ".json":
		return ToJSON(s, path)
	default:
		return fmt.Errorf("unsupported export format %q (use .csv or .json)", filepath.Ext(path))
	}
}

// ToCSV writes the flattened breakdown as CSV.
func ToCSV(s timesheet.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Client", "Project", "Task", "Notes", "Hours"}); err != nil {
		return err
	}

	for _, row := range flatten(s) {
		record := []string{
			row.Date,
			row.Client,
			row.Project,
			row.Task,
			row.Notes,
			FormatHours(row.Hours),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	return w.Error()
}

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Entries    []jsonEntry `json:"entries"`
}

type jsonEntry struct {
	Date    string  `json:"date"`
	Client  string  `json:"client"`
	Project string  `json:"project,omitempty"`
	Task    string  `json:"task,omitempty"`
	Notes   string  `json:"notes,omitempty"`
	Hours   float64 `json:"hours"`
}

// ToJSON writes the flattened breakdown as indented JSON.
func ToJSON(s timesheet.Summary, path string) error {
	rows := flatten(s)

	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(rows),
	}
	for _, row := range rows {
		export.Entries = append(export.Entries, jsonEntry{
			Date:    row.Date,
			Client:  row.Client,
			Project: row.Project,
			Task:    row.Task,
			Notes:   row.Notes,
			Hours:   row.Hours,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
