package githubapi

import (
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"
)

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request and upload logging.
// A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Upload defaults.
const (
	DefaultCommitMessage = "Add Issue image via API"
	DefaultBranch        = "main"
)

// UploadOptions configures a content upload.
type UploadOptions struct {
	// CommitMessage is the message of the commit that adds the file.
	CommitMessage string

	// Branch is the target branch. It is created from the default branch
	// when it does not exist.
	Branch string
}

// UploadOption configures a content upload.
type UploadOption func(*UploadOptions)

// WithCommitMessage sets the commit message for an upload.
func WithCommitMessage(message string) UploadOption {
	return func(opts *UploadOptions) {
		opts.CommitMessage = message
	}
}

// WithBranch sets the target branch for an upload.
func WithBranch(branch string) UploadOption {
	return func(opts *UploadOptions) {
		opts.Branch = branch
	}
}

func newUploadOptions(opts []UploadOption) (UploadOptions, error) {
	options := UploadOptions{
		CommitMessage: DefaultCommitMessage,
		Branch:        DefaultBranch,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.CommitMessage == "" {
		return options, newInvalidInputError("commit message", "must not be empty")
	}
	if options.Branch == "" {
		return options, newInvalidInputError("branch", "must not be empty")
	}
	return options, nil
}

// PublisherOption configures a ContentPublisher.
type PublisherOption func(*ContentPublisher)

// WithFilesystem sets the filesystem local files are read from.
// Defaults to the host filesystem.
func WithFilesystem(fs billy.Basic) PublisherOption {
	return func(p *ContentPublisher) {
		if fs != nil {
			p.fs = fs
		}
	}
}

// IssueRequest is the payload of an issue create or update.
//
// Labels and assignees are always sent and replace the issue's current sets.
type IssueRequest struct {
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Labels      []string `json:"labels"`
	Assignees   []string `json:"assignees"`
	State       string   `json:"state,omitempty"`
	StateReason string   `json:"state_reason,omitempty"`
	Milestone   *int     `json:"milestone,omitempty"`
	Type        string   `json:"type,omitempty"`
}

// IssueOption configures an issue create or update.
type IssueOption func(*IssueRequest)

// WithTitle sets the issue title.
func WithTitle(title string) IssueOption {
	return func(req *IssueRequest) {
		req.Title = title
	}
}

// WithBody sets the issue body.
func WithBody(body string) IssueOption {
	return func(req *IssueRequest) {
		req.Body = body
	}
}

// WithLabels replaces the issue's labels. Calling it with no labels clears them.
func WithLabels(labels ...string) IssueOption {
	return func(req *IssueRequest) {
		req.Labels = append([]string{}, labels...)
	}
}

// WithAssignees replaces the issue's assignees. Calling it with no logins clears them.
func WithAssignees(assignees ...string) IssueOption {
	return func(req *IssueRequest) {
		req.Assignees = append([]string{}, assignees...)
	}
}

// WithIssueState sets the issue state ("open" or "closed").
func WithIssueState(state string) IssueOption {
	return func(req *IssueRequest) {
		req.State = state
	}
}

// WithStateReason sets the reason for a state change.
func WithStateReason(reason string) IssueOption {
	return func(req *IssueRequest) {
		req.StateReason = reason
	}
}

// WithMilestone sets the issue milestone by number.
func WithMilestone(number int) IssueOption {
	return func(req *IssueRequest) {
		req.Milestone = &number
	}
}

// WithIssueType sets the organization issue type by name.
func WithIssueType(name string) IssueOption {
	return func(req *IssueRequest) {
		req.Type = name
	}
}

// ListIssuesOptions holds the filters of an issue listing.
// Unset fields are omitted from the query.
type ListIssuesOptions struct {
	State     string     `url:"state,omitempty"`
	Labels    []string   `url:"labels,comma,omitempty"`
	Sort      string     `url:"sort,omitempty"`
	Direction string     `url:"direction,omitempty"`
	PerPage   int        `url:"per_page,omitempty"`
	Page      int        `url:"page,omitempty"`
	Milestone string     `url:"milestone,omitempty"`
	Assignee  string     `url:"assignee,omitempty"`
	Type      string     `url:"type,omitempty"`
	Creator   string     `url:"creator,omitempty"`
	Mentioned string     `url:"mentioned,omitempty"`
	Since     *time.Time `url:"since,omitempty"`
}

// ListOption configures issue filtering.
type ListOption func(*ListIssuesOptions)

// WithState filters issues by state ("open", "closed", "all").
func WithState(state string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.State = state
	}
}

// WithIssueLabels filters issues by labels (all must match).
func WithIssueLabels(labels ...string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Labels = labels
	}
}

// WithSort orders issues by "created", "updated" or "comments".
func WithSort(sort string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Sort = sort
	}
}

// WithDirection sets the sort direction ("asc" or "desc").
func WithDirection(direction string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Direction = direction
	}
}

// WithPerPage sets the page size.
func WithPerPage(perPage int) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.PerPage = perPage
	}
}

// WithPage selects the page to fetch.
func WithPage(page int) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Page = page
	}
}

// WithMilestoneFilter filters by milestone number, "*" or "none".
func WithMilestoneFilter(milestone string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Milestone = milestone
	}
}

// WithAssignee filters issues by assignee username.
func WithAssignee(assignee string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Assignee = assignee
	}
}

// WithTypeFilter filters issues by issue type name.
func WithTypeFilter(issueType string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Type = issueType
	}
}

// WithCreator filters issues by author.
func WithCreator(creator string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Creator = creator
	}
}

// WithMentioned filters issues mentioning a user.
func WithMentioned(user string) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Mentioned = user
	}
}

// WithSince only returns issues updated at or after t.
func WithSince(t time.Time) ListOption {
	return func(opts *ListIssuesOptions) {
		opts.Since = &t
	}
}
