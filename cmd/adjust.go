package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/harvestctl/internal/harvest"
	"github.com/sadopc/harvestctl/internal/report"
	"github.com/sadopc/harvestctl/internal/timesheet"
	"github.com/sadopc/harvestctl/internal/timeutil"
)

var adjustMaxHours float64

var adjustCmd = &cobra.Command{
	Use:   "adjust [timespan]",
	Short: "Top short days up to the target number of hours",
	Long: `Walks every day in the given timespan (default 'today') whose
recorded hours fall short of --max-hours, asks which project and task
the missing time belongs to, and creates a filler time entry for the
difference. A confirmed project/task choice can be reused for the rest
of the run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdjust,
}

func init() {
	adjustCmd.Flags().Float64Var(&adjustMaxHours, "max-hours", 8,
		"The required amount of hours per day")
}

func runAdjust(cmd *cobra.Command, args []string) error {
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
	summary := timesheet.Aggregate(entries, false)

	catalog := timesheet.NewCatalog(s.client, s.cache)
	planner := timesheet.NewPlanner(catalog)

	plan, err := planner.Plan(summary, adjustMaxHours, promptResolver{})
	if err != nil {
		return err
	}
	if len(plan) == 0 {
		fmt.Println("No adjustments were made.")
		return nil
	}

	// Each entry is submitted on its own; a failure does not roll back
	// entries already created.
	failed := 0
	for _, adj := range plan {
		_, err := s.client.CreateTimeEntry(harvest.NewTimeEntry{
			ProjectID: adj.ProjectID,
			TaskID:    adj.TaskID,
			SpentDate: adj.SpentDate,
			Hours:     adj.Hours,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", adj.SpentDate, err)
			failed++
			continue
		}
		fmt.Printf("Logged %s hour(s) on %s\n", report.FormatHours(adj.Hours), adj.SpentDate)
	}

	if failed > 0 {
		return fmt.Errorf("%d adjustment(s) could not be created", failed)
	}
	return nil
}
