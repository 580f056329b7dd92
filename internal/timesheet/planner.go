package timesheet

import (
	"errors"
	"fmt"
)

// ErrProjectNotFound is returned when a chosen project code resolves to
// no assignment. It aborts the rest of an adjust run.
var ErrProjectNotFound = errors.New("project not found")

// Resolver answers the interactive questions an adjust run raises. The
// production implementation prompts the operator; tests script it.
type Resolver interface {
	ConfirmAdjustment(date string, missing float64) (bool, error)
	ChooseProject(codes []string) (string, error)
	ChooseTask(names []string) (string, error)
	ConfirmSticky() (bool, error)
}

// ProjectSource is the slice of the project catalog the planner needs.
type ProjectSource interface {
	Codes() ([]string, error)
	Project(code string) (Project, bool, error)
}

// Adjustment is a filler time entry to be created for a short day.
type Adjustment struct {
	SpentDate string
	Hours     float64
	ProjectID int64
	TaskID    int64
}

// Planner walks daily totals against a target and turns confirmed
// deficits into adjustment requests. A planner holds the run's sticky
// project/task choice and must not be reused across runs.
type Planner struct {
	projects ProjectSource
	sticky   *stickyChoice
}

type stickyChoice struct {
	projectID int64
	taskID    int64
}

func NewPlanner(projects ProjectSource) *Planner {
	return &Planner{projects: projects}
}

// Plan iterates the summary's dates in first-seen order and emits one
// adjustment per confirmed deficit. Declining a date skips it without
// aborting later dates. Once the operator confirms a sticky choice, all
// later deficits reuse it without further prompting.
func (p *Planner) Plan(s Summary, targetHours float64, r Resolver) ([]Adjustment, error) {
	var plan []Adjustment

	for _, date := range s.Dates {
		total := s.Totals[date]
		if total >= targetHours {
			continue
		}
		missing := targetHours - total

		ok, err := r.ConfirmAdjustment(date, missing)
		if err != nil {
			return plan, err
		}
		if !ok {
			continue
		}

		var projectID, taskID int64
		if p.sticky != nil {
			projectID, taskID = p.sticky.projectID, p.sticky.taskID
		} else {
			projectID, taskID, err = p.choose(r)
			if err != nil {
				return plan, err
			}
		}

		plan = append(plan, Adjustment{
			SpentDate: date,
			Hours:     missing,
			ProjectID: projectID,
			TaskID:    taskID,
		})
	}

	return plan, nil
}

func (p *Planner) choose(r Resolver) (projectID, taskID int64, err error) {
	codes, err := p.projects.Codes()
	if err != nil {
		return 0, 0, err
	}

	code, err := r.ChooseProject(codes)
	if err != nil {
		return 0, 0, err
	}

	project, found, err := p.projects.Project(code)
	if err != nil {
		return 0, 0, err
	}
	if !found {
		return 0, 0, fmt.Errorf("unable to find a project for %q: %w", code, ErrProjectNotFound)
	}

	name, err := r.ChooseTask(project.TaskNames())
	if err != nil {
		return 0, 0, err
	}
	taskID = project.TaskID(name)

	sticky, err := r.ConfirmSticky()
	if err != nil {
		return 0, 0, err
	}
	if sticky {
		p.sticky = &stickyChoice{projectID: project.ID, taskID: taskID}
	}

	return project.ID, taskID, nil
}
