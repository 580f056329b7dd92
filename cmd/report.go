package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/sadopc/harvestctl/internal/report"
	"github.com/sadopc/harvestctl/internal/timesheet"
	"github.com/sadopc/harvestctl/internal/timeutil"
)

var (
	reportOnlyBillable bool
	reportOneline      bool
	reportCopy         bool
	reportChart        bool
	reportExport       string
)

var reportCmd = &cobra.Command{
	Use:   "report [timespan]",
	Short: "Show the time entries stored in Harvest",
	Long: `Fetches your time entries from the given timespan onward (default
'today') and shows them per day, broken down by client.

Timespan accepts 'today', 'yesterday', '-N days', '-N weeks',
'-N months', or an absolute date (YYYY-MM-DD).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportOnlyBillable, "only-billable", false,
		"Only show time entries that are billable in the report")
	reportCmd.Flags().BoolVar(&reportOneline, "oneline", false,
		"Show each day as a condensed line")
	reportCmd.Flags().BoolVar(&reportCopy, "copy", false,
		"Copy the output to the clipboard (only with --oneline)")
	reportCmd.Flags().BoolVar(&reportChart, "chart", false,
		"Show a bar chart of hours per day")
	reportCmd.Flags().StringVar(&reportExport, "export", "",
		"Write the report to a .csv or .json file")
}

func runReport(cmd *cobra.Command, args []string) error {
	timespan := "today"
	if len(args) > 0 {
		timespan = args[0]
	}
	from, err := timeutil.ParseTimespan(timespan, time.Now())
	if err != nil {
		return err
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.client.ListTimeEntries(from)
	if err != nil {
		return err
	}
	summary := timesheet.Aggregate(entries, reportOnlyBillable)

	if reportChart {
		if len(summary.Dates) == 0 {
			fmt.Println(report.NoEntriesMessage)
			return nil
		}
		fmt.Println(report.Chart(summary))
		return nil
	}

	if len(summary.Days) == 0 {
		fmt.Println(report.NoEntriesMessage)
		return nil
	}

	if reportOneline {
		out := strings.Join(report.Oneline(summary), "\n")
		if reportCopy {
			if err := clipboard.WriteAll(out); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
		}
		fmt.Println(out)
	} else {
		fmt.Println(report.Tables(summary))
	}

	if reportExport != "" {
		if err := report.Export(summary, reportExport); err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", reportExport)
	}
	return nil
}
