// Package report renders aggregated timesheet summaries for the
// terminal and exports them to files.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sadopc/harvestctl/internal/timesheet"
)

// NoEntriesMessage is printed when an aggregation yields nothing to show.
// That is a normal state, not an error.
const NoEntriesMessage = "No time entries were found!"

// FormatHours renders an hour count without trailing zeros, rounded to
// two decimals.
func FormatHours(h float64) string {
	return strconv.FormatFloat(math.Round(h*100)/100, 'f', -1, 64)
}

// Oneline returns one condensed line per date with a breakdown:
// "<total>H - <unique project names>".
func Oneline(s timesheet.Summary) []string {
	var lines []string
	for _, date := range s.Dates {
		day, ok := s.Days[date]
		if !ok {
			continue
		}

		seen := make(map[string]bool)
		var projects []string
		for _, client := range day.Clients {
			for _, item := range day.Items[client] {
				if item.Project == "" || seen[item.Project] {
					continue
				}
				seen[item.Project] = true
				projects = append(projects, item.Project)
			}
		}

		line := strings.TrimSpace(fmt.Sprintf("%sH - %s", FormatHours(day.Total), strings.Join(projects, ", ")))
		lines = append(lines, line)
	}
	return lines
}

// Tables renders one bordered table per date: Client/Project, Task,
// Notes, Hours, closed by a Total Hours row.
func Tables(s timesheet.Summary) string {
	var sections []string
	for _, date := range s.Dates {
		day, ok := s.Days[date]
		if !ok {
			continue
		}
		sections = append(sections, renderDay(date, day))
	}
	return strings.Join(sections, "\n\n")
}

func renderDay(date string, day *timesheet.DayDetail) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Client/Project", "Task", "Notes", "Hours").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle.Width(32)
			case col == 2:
				return cellStyle.Width(32)
			default:
				return cellStyle
			}
		})

	for _, client := range day.Clients {
		for _, item := range day.Items[client] {
			t.Row(
				client+"/"+orNA(item.Project),
				orNA(item.Task),
				orNA(item.Notes),
				FormatHours(item.Hours),
			)
		}
	}
	t.Row(totalStyle.Render("Total Hours"), "", "", totalStyle.Render(FormatHours(day.Total)))

	return titleStyle.Render(date) + "\n" + t.Render()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
