package timesheet

import (
	"fmt"
	"sort"
	"time"

	"github.com/sadopc/harvestctl/internal/cache"
	"github.com/sadopc/harvestctl/internal/harvest"
)

const (
	projectsCacheKey = "harvest.projects"
	projectsCacheTTL = 24 * time.Hour
)

// AssignmentLister is the slice of the Harvest API the catalog needs.
type AssignmentLister interface {
	ListProjectAssignments() ([]harvest.ProjectAssignment, error)
}

// Project is an active project assignment keyed by its project code.
type Project struct {
	ID     int64            `json:"id"`
	Code   string           `json:"code"`
	Name   string           `json:"name"`
	Client string           `json:"client"`
	Tasks  map[int64]string `json:"tasks"`
}

// TaskNames returns the project's task names ordered by task ID.
func (p Project) TaskNames() []string {
	ids := make([]int64, 0, len(p.Tasks))
	for id := range p.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = p.Tasks[id]
	}
	return names
}

// TaskID resolves a task name back to its ID. On duplicate names the
// lowest ID wins. Returns 0 when the name is unknown.
func (p Project) TaskID(name string) int64 {
	ids := make([]int64, 0, len(p.Tasks))
	for id := range p.Tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if p.Tasks[id] == name {
			return id
		}
	}
	return 0
}

// Catalog serves the current user's active project assignments, cached
// for 24 hours so repeated commands avoid a network round trip.
type Catalog struct {
	api   AssignmentLister
	cache *cache.Cache
}

func NewCatalog(api AssignmentLister, c *cache.Cache) *Catalog {
	return &Catalog{api: api, cache: c}
}

// Projects returns the catalog keyed by project code, fetching from the
// API only when the cached copy is missing or expired.
func (c *Catalog) Projects() (map[string]Project, error) {
	return cache.GetOrCompute(c.cache, projectsCacheKey, projectsCacheTTL, c.fetch)
}

// Codes returns the available project codes in sorted order.
func (c *Catalog) Codes() ([]string, error) {
	projects, err := c.Projects()
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(projects))
	for code := range projects {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

// Project looks up a project by code. An unknown code is reported via
// the boolean, not an error.
func (c *Catalog) Project(code string) (Project, bool, error) {
	projects, err := c.Projects()
	if err != nil {
		return Project{}, false, err
	}
	p, ok := projects[code]
	return p, ok, nil
}

func (c *Catalog) fetch() (map[string]Project, error) {
	assignments, err := c.api.ListProjectAssignments()
	if err != nil {
		return nil, fmt.Errorf("fetch project assignments: %w", err)
	}

	projects := make(map[string]Project)
	for _, a := range assignments {
		if a.IsActive != nil && !*a.IsActive {
			continue
		}
		if a.Project == nil || a.Project.ID == 0 {
			continue
		}

		p := Project{
			ID:    a.Project.ID,
			Code:  a.Project.Code,
			Name:  a.Project.Name,
			Tasks: make(map[int64]string),
		}
		if a.Client != nil {
			p.Client = a.Client.Name
		}

		for _, ta := range a.TaskAssignments {
			if ta.Task == nil || ta.Task.Name == "" {
				continue
			}
			if ta.IsActive != nil && !*ta.IsActive {
				continue
			}
			p.Tasks[ta.Task.ID] = ta.Task.Name
		}

		projects[p.Code] = p
	}
	return projects, nil
}
