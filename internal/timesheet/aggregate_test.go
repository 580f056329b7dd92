package timesheet

import (
	"reflect"
	"testing"

	"github.com/sadopc/harvestctl/internal/harvest"
)

func entry(date string, hours float64, client string) harvest.TimeEntry {
	e := harvest.TimeEntry{SpentDate: date, Hours: hours}
	if client != "" {
		e.Client = &harvest.Ref{ID: 1, Name: client}
	}
	return e
}

func billableEntry(date string, hours float64, client string) harvest.TimeEntry {
	e := entry(date, hours, client)
	e.Billable = true
	return e
}

// ============================================================
// Daily totals
// ============================================================

func TestAggregateAccumulatesSameDate(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		entry("2024-01-01", 3, "Acme"),
		entry("2024-01-01", 2, "Acme"),
	}, false)

	if s.Totals["2024-01-01"] != 5 {
		t.Fatalf("expected 5 hours, got %v", s.Totals["2024-01-01"])
	}
	if len(s.Dates) != 1 {
		t.Fatalf("expected 1 date, got %v", s.Dates)
	}
}

func TestAggregatePreservesDateOrder(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		entry("2024-01-03", 1, ""),
		entry("2024-01-01", 1, ""),
		entry("2024-01-02", 1, ""),
		entry("2024-01-01", 2, ""),
	}, false)

	want := []string{"2024-01-03", "2024-01-01", "2024-01-02"}
	if !reflect.DeepEqual(s.Dates, want) {
		t.Fatalf("dates = %v, want first-seen order %v", s.Dates, want)
	}
}

func TestAggregateSkipsUncountableEntries(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		{SpentDate: "", Hours: 4},           // no date
		{SpentDate: "2024-01-01", Hours: 0}, // zero hours
		entry("2024-01-01", 2, "Acme"),
	}, false)

	if s.Totals["2024-01-01"] != 2 {
		t.Fatalf("expected 2 hours, got %v", s.Totals["2024-01-01"])
	}
	if len(s.Dates) != 1 {
		t.Fatalf("skipped entries must not create date keys: %v", s.Dates)
	}
	if s.Days["2024-01-01"].Total != 2 {
		t.Fatalf("zero-hour entry leaked into breakdown: %+v", s.Days["2024-01-01"])
	}
}

func TestAggregateZeroHoursCreatesNoDateKey(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		{SpentDate: "2024-01-09", Hours: 0},
	}, false)

	if len(s.Dates) != 0 || len(s.Totals) != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}

func TestAggregateTotalsSumInvariant(t *testing.T) {
	entries := []harvest.TimeEntry{
		entry("2024-01-01", 1.5, "Acme"),
		billableEntry("2024-01-01", 2.25, ""),
		entry("2024-01-02", 3, "Globex"),
		{SpentDate: "", Hours: 99},
		{SpentDate: "2024-01-02", Hours: 0},
	}

	for _, onlyBillable := range []bool{false, true} {
		s := Aggregate(entries, onlyBillable)

		var totalsSum float64
		for _, h := range s.Totals {
			totalsSum += h
		}
		var countable float64
		for _, e := range entries {
			if e.SpentDate != "" && e.Hours != 0 {
				countable += e.Hours
			}
		}
		if totalsSum != countable {
			t.Fatalf("onlyBillable=%v: totals sum %v, want %v", onlyBillable, totalsSum, countable)
		}
	}
}

// ============================================================
// Client breakdown
// ============================================================

func TestAggregateBreakdownRequiresClient(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		entry("2024-01-01", 4, ""),
		entry("2024-01-01", 2, "Acme"),
	}, false)

	if s.Totals["2024-01-01"] != 6 {
		t.Fatalf("clientless entry should still count toward the day total, got %v", s.Totals["2024-01-01"])
	}
	day := s.Days["2024-01-01"]
	if day == nil || day.Total != 2 {
		t.Fatalf("breakdown should only hold the Acme entry: %+v", day)
	}
	if len(day.Items["Acme"]) != 1 {
		t.Fatalf("expected 1 Acme item, got %+v", day.Items)
	}
}

func TestAggregateBillableFilterAsymmetry(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		billableEntry("2024-01-01", 4, "Acme"),
		entry("2024-01-01", 2, "Acme"), // not billable
	}, true)

	if s.Totals["2024-01-01"] != 6 {
		t.Fatalf("day total should count both entries, got %v", s.Totals["2024-01-01"])
	}
	if s.Days["2024-01-01"].Total != 4 {
		t.Fatalf("breakdown total should count only the billable entry, got %v", s.Days["2024-01-01"].Total)
	}
}

func TestAggregateBreakdownTotalInvariant(t *testing.T) {
	s := Aggregate([]harvest.TimeEntry{
		entry("2024-01-01", 1, "Acme"),
		entry("2024-01-01", 2, "Globex"),
		entry("2024-01-01", 0.5, "Acme"),
		entry("2024-01-02", 3, "Acme"),
	}, false)

	for date, day := range s.Days {
		var sum float64
		for _, items := range day.Items {
			for _, item := range items {
				sum += item.Hours
			}
		}
		if sum != day.Total {
			t.Fatalf("%s: items sum %v != total %v", date, sum, day.Total)
		}
	}
}

func TestAggregateClientOrderAndItemFields(t *testing.T) {
	e := harvest.TimeEntry{
		SpentDate: "2024-01-01",
		Hours:     2,
		Notes:     "standup",
		Client:    &harvest.Ref{Name: "Globex"},
		Project:   &harvest.ProjectRef{Name: "Migration"},
		Task:      &harvest.Ref{Name: "Meetings"},
	}
	s := Aggregate([]harvest.TimeEntry{
		entry("2024-01-01", 1, "Acme"),
		e,
		entry("2024-01-01", 1, "Acme"),
	}, false)

	day := s.Days["2024-01-01"]
	if !reflect.DeepEqual(day.Clients, []string{"Acme", "Globex"}) {
		t.Fatalf("client order = %v", day.Clients)
	}

	item := day.Items["Globex"][0]
	if item.Task != "Meetings" || item.Project != "Migration" || item.Notes != "standup" || item.Hours != 2 {
		t.Fatalf("unexpected item: %+v", item)
	}

	// Absent refs come through as empty strings for the renderer.
	bare := s.Days["2024-01-01"].Items["Acme"][0]
	if bare.Task != "" || bare.Project != "" {
		t.Fatalf("absent task/project should be empty: %+v", bare)
	}
}

// ============================================================
// Edge cases
// ============================================================

func TestAggregateEmptyInput(t *testing.T) {
	s := Aggregate(nil, false)
	if len(s.Dates) != 0 || len(s.Totals) != 0 || len(s.Days) != 0 {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	entries := []harvest.TimeEntry{
		billableEntry("2024-01-01", 3, "Acme"),
		entry("2024-01-02", 2, "Globex"),
		entry("2024-01-01", 1, ""),
	}

	a := Aggregate(entries, true)
	b := Aggregate(entries, true)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("aggregating the same input twice should yield identical results")
	}
}
