package harvest

// Ref is a nested id/name reference as Harvest embeds it in other records.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectRef is a nested project reference carrying the project code.
type ProjectRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// TimeEntry is a time entry record as returned by the Harvest API.
// Nested references may be absent and stay nil.
type TimeEntry struct {
	ID        int64       `json:"id"`
	SpentDate string      `json:"spent_date"`
	Hours     float64     `json:"hours"`
	Billable  bool        `json:"billable"`
	Notes     string      `json:"notes"`
	Client    *Ref        `json:"client"`
	Project   *ProjectRef `json:"project"`
	Task      *Ref        `json:"task"`
}

// ClientName returns the client name, or "" when no client is attached.
func (e TimeEntry) ClientName() string {
	if e.Client == nil {
		return ""
	}
	return e.Client.Name
}

// ProjectName returns the project name, or "" when no project is attached.
func (e TimeEntry) ProjectName() string {
	if e.Project == nil {
		return ""
	}
	return e.Project.Name
}

// TaskName returns the task name, or "" when no task is attached.
func (e TimeEntry) TaskName() string {
	if e.Task == nil {
		return ""
	}
	return e.Task.Name
}

// ProjectAssignment is a current-user project assignment record.
// IsActive is a pointer so that only an explicit false marks the
// assignment inactive.
type ProjectAssignment struct {
	ID              int64            `json:"id"`
	IsActive        *bool            `json:"is_active"`
	Client          *Ref             `json:"client"`
	Project         *ProjectRef      `json:"project"`
	TaskAssignments []TaskAssignment `json:"task_assignments"`
}

// TaskAssignment is a task nested under a project assignment.
type TaskAssignment struct {
	IsActive *bool `json:"is_active"`
	Task     *Ref  `json:"task"`
}

// NewTimeEntry is the request body for creating a time entry.
type NewTimeEntry struct {
	ProjectID int64   `json:"project_id"`
	TaskID    int64   `json:"task_id"`
	SpentDate string  `json:"spent_date"`
	Hours     float64 `json:"hours"`
}
