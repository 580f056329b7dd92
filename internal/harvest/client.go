package harvest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the Harvest v2 REST API root.
const DefaultBaseURL = "https://api.harvestapp.com/v2"

const userAgent = "harvestctl"

// Client is a blocking HTTP client for the Harvest API.
type Client struct {
	baseURL    string
	accountID  string
	token      string
	httpClient *http.Client
}

// New creates an API client authenticated with an account ID and a
// personal access token.
func New(accountID, token string) *Client {
	return &Client{
		baseURL:   DefaultBaseURL,
		accountID: accountID,
		token:     token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListTimeEntries returns all time entries from the given date onward,
// following pagination.
func (c *Client) ListTimeEntries(from time.Time) ([]TimeEntry, error) {
	var entries []TimeEntry

	page := 1
	for {
		query := url.Values{}
		query.Set("from", from.Format("2006-01-02"))
		query.Set("page", strconv.Itoa(page))

		var resp struct {
			TimeEntries []TimeEntry `json:"time_entries"`
			NextPage    *int        `json:"next_page"`
		}
		if err := c.get("/time_entries", query, &resp); err != nil {
			return nil, fmt.Errorf("list time entries: %w", err)
		}
		entries = append(entries, resp.TimeEntries...)

		if resp.NextPage == nil {
			return entries, nil
		}
		page = *resp.NextPage
	}
}

// ListProjectAssignments returns the current user's project assignments,
// following pagination.
func (c *Client) ListProjectAssignments() ([]ProjectAssignment, error) {
	var assignments []ProjectAssignment

	page := 1
	for {
		query := url.Values{}
		query.Set("page", strconv.Itoa(page))

		var resp struct {
			ProjectAssignments []ProjectAssignment `json:"project_assignments"`
			NextPage           *int                `json:"next_page"`
		}
		if err := c.get("/users/me/project_assignments", query, &resp); err != nil {
			return nil, fmt.Errorf("list project assignments: %w", err)
		}
		assignments = append(assignments, resp.ProjectAssignments...)

		if resp.NextPage == nil {
			return assignments, nil
		}
		page = *resp.NextPage
	}
}

// CreateTimeEntry creates a new time entry and returns the created record.
func (c *Client) CreateTimeEntry(entry NewTimeEntry) (*TimeEntry, error) {
	var created TimeEntry
	if err := c.post("/time_entries", entry, &created); err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}
	return &created, nil
}

func (c *Client) get(path string, query url.Values, v any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, v)
}

func (c *Client) post(path string, body, v any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, v)
}

func (c *Client) do(req *http.Request, v any) error {
	req.Header.Set("Harvest-Account-Id", c.accountID)
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message != "" {
			return fmt.Errorf("server returned status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if v == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
