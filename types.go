package githubapi

import (
	"encoding/json"
	"time"
)

// User is a GitHub account as embedded in issues, comments and events.
type User struct {
	Login   string `json:"login"`
	ID      int64  `json:"id"`
	HTMLURL string `json:"html_url"`
}

// Label is a repository label.
type Label struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// Milestone is a repository milestone.
type Milestone struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	State  string `json:"state"`
}

// IssueType is the organization-level issue type assigned to an issue.
type IssueType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PullRequestLinks is present on issues that are pull requests.
type PullRequestLinks struct {
	URL     string `json:"url"`
	HTMLURL string `json:"html_url"`
}

// Issue is an issue as returned by the issues endpoints.
type Issue struct {
	// Identification
	ID     int64 `json:"id"`
	Number int   `json:"number"`

	// Content
	Title string `json:"title"`
	Body  string `json:"body"`

	// State and metadata
	State       string            `json:"state"`
	StateReason string            `json:"state_reason,omitempty"`
	User        *User             `json:"user,omitempty"`
	Labels      []Label           `json:"labels"`
	Assignees   []User            `json:"assignees"`
	Milestone   *Milestone        `json:"milestone,omitempty"`
	Type        *IssueType        `json:"type,omitempty"`
	Comments    int               `json:"comments"`
	PullRequest *PullRequestLinks `json:"pull_request,omitempty"`

	// URL
	HTMLURL string `json:"html_url"`

	// Timestamps
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}

// LabelNames returns the names of the issue's labels.
// The result is never nil.
func (i *Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, label := range i.Labels {
		names = append(names, label.Name)
	}
	return names
}

// AssigneeLogins returns the logins of the issue's assignees.
// The result is never nil.
func (i *Issue) AssigneeLogins() []string {
	logins := make([]string, 0, len(i.Assignees))
	for _, assignee := range i.Assignees {
		logins = append(logins, assignee.Login)
	}
	return logins
}

// IsPullRequest reports whether the issue is a pull request.
// The list endpoint returns pull requests alongside issues.
func (i *Issue) IsPullRequest() bool {
	return i.PullRequest != nil
}

// IssueComment is a comment posted on an issue.
type IssueComment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	User      *User     `json:"user,omitempty"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimelineSource is the referencing issue of a cross-referenced event.
type TimelineSource struct {
	Type  string `json:"type"`
	Issue *Issue `json:"issue,omitempty"`
}

// TimelineEvent is one entry of an issue timeline.
//
// Only the common fields are decoded. Raw holds the complete event so callers
// can decode event-specific payloads themselves.
type TimelineEvent struct {
	ID        int64           `json:"id"`
	Event     string          `json:"event"`
	Actor     *User           `json:"actor,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	Body      string          `json:"body,omitempty"`
	CommitID  string          `json:"commit_id,omitempty"`
	Label     *Label          `json:"label,omitempty"`
	Assignee  *User           `json:"assignee,omitempty"`
	User      *User           `json:"user,omitempty"`
	Source    *TimelineSource `json:"source,omitempty"`
	Raw       json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the common fields and keeps the full event in Raw.
func (e *TimelineEvent) UnmarshalJSON(data []byte) error {
	type event TimelineEvent
	var decoded event
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*e = TimelineEvent(decoded)
	e.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// ContentFile describes a file written through the contents endpoint.
type ContentFile struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	SHA         string `json:"sha"`
	Size        int    `json:"size"`
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
}

// Commit is the commit created by a content upload.
type Commit struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	HTMLURL string `json:"html_url"`
}

// UploadResult is the decoded response of a content upload.
type UploadResult struct {
	Content *ContentFile    `json:"content"`
	Commit  *Commit         `json:"commit"`
	Raw     json.RawMessage `json:"-"`
}

// State constants for issues.
const (
	// StateOpen indicates an issue is open.
	StateOpen = "open"

	// StateClosed indicates an issue is closed.
	StateClosed = "closed"

	// StateAll is used for filtering to include all states.
	StateAll = "all"
)

// State reasons accepted when closing or reopening an issue.
const (
	StateReasonCompleted  = "completed"
	StateReasonNotPlanned = "not_planned"
	StateReasonReopened   = "reopened"
)
