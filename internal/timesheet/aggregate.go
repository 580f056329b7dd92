// Package timesheet folds raw Harvest time entries into per-date
// summaries and plans filler entries for days short of a target.
package timesheet

import "github.com/sadopc/harvestctl/internal/harvest"

// Item is one breakdown line under a client: a single countable entry.
type Item struct {
	Task    string
	Notes   string
	Project string
	Hours   float64
}

// DayDetail is the per-client breakdown of a single date.
type DayDetail struct {
	Clients []string          // first-seen order
	Items   map[string][]Item // client name -> entries, in source order
	Total   float64           // sum of hours across all items
}

// Summary is the result of aggregating a sequence of time entries.
// Dates preserves the order dates were first seen in the input; Totals
// always counts every countable entry, independent of the billable
// filter applied to the breakdown.
type Summary struct {
	Dates  []string
	Totals map[string]float64
	Days   map[string]*DayDetail
}

// Aggregate folds entries into per-date totals and a per-date/client
// breakdown in a single forward pass.
//
// Entries without a spent date or with zero hours are skipped entirely.
// Every remaining entry counts toward Totals. The breakdown additionally
// requires a non-empty client name and, when onlyBillable is set, a
// billable entry — non-billable hours still count toward the day total.
func Aggregate(entries []harvest.TimeEntry, onlyBillable bool) Summary {
	s := Summary{
		Totals: make(map[string]float64),
		Days:   make(map[string]*DayDetail),
	}

	for _, e := range entries {
		if e.SpentDate == "" || e.Hours == 0 {
			continue
		}

		if _, seen := s.Totals[e.SpentDate]; !seen {
			s.Dates = append(s.Dates, e.SpentDate)
		}
		s.Totals[e.SpentDate] += e.Hours

		if onlyBillable && !e.Billable {
			continue
		}
		client := e.ClientName()
		if client == "" {
			continue
		}

		day := s.Days[e.SpentDate]
		if day == nil {
			day = &DayDetail{Items: make(map[string][]Item)}
			s.Days[e.SpentDate] = day
		}
		if _, seen := day.Items[client]; !seen {
			day.Clients = append(day.Clients, client)
		}
		day.Items[client] = append(day.Items[client], Item{
			Task:    e.TaskName(),
			Notes:   e.Notes,
			Project: e.ProjectName(),
			Hours:   e.Hours,
		})
		day.Total += e.Hours
	}

	return s
}
