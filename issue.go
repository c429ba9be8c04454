package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/go-querystring/query"
	"github.com/rabierabit/githubapi/errors"
)

// IssueService lists, creates and edits issues of one repository.
//
// A service starts unbound. SetIssueNumber or a successful CreateIssue binds it
// to one issue and caches that issue; UpdateIssue, Comment and Timeline act on
// the bound issue and fail with CodeIssueNotBound otherwise. Rebinding replaces
// the cache. There is no way back to the unbound state.
//
// An IssueService is not safe for concurrent use. Use one service per
// goroutine or synchronize access externally.
type IssueService struct {
	client *Client
	bound  *issueBinding
}

// issueBinding is the bound state: the issue number and its cached data.
type issueBinding struct {
	number int
	issue  *Issue
}

type commentRequest struct {
	Body string `json:"body"`
}

// SetIssueNumber fetches issue number and binds the service to it.
// On failure the previous binding, if any, is kept.
func (s *IssueService) SetIssueNumber(ctx context.Context, number int) error {
	if number < 1 {
		return newInvalidInputError("issue number", "must be positive")
	}

	resp, err := s.client.do(ctx, http.MethodGet, s.issuePath(number), nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return newUnexpectedResponseError(resp, fmt.Sprintf("failed to get issue #%d", number))
	}

	issue := &Issue{}
	if err := decodeResponse(resp, issue, "issue"); err != nil {
		return err
	}

	s.bind(number, issue)
	return nil
}

// List returns issues matching the filters.
//
// Example:
//
//	issues, err := client.Issues().List(ctx,
//	    githubapi.WithState(githubapi.StateOpen),
//	    githubapi.WithPerPage(10),
//	)
func (s *IssueService) List(ctx context.Context, opts ...ListOption) ([]*Issue, error) {
	filters := &ListIssuesOptions{}
	for _, opt := range opts {
		opt(filters)
	}

	values, err := query.Values(filters)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to encode issue filters")
	}

	path := s.client.repo.apiPath("issues")
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := s.client.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newUnexpectedResponseError(resp, "failed to list issues")
	}

	var issues []*Issue
	if err := decodeResponse(resp, &issues, "issues"); err != nil {
		return nil, err
	}
	return issues, nil
}

// CreateIssue creates an issue and binds the service to it.
// Labels and assignees are sent as empty lists unless set through options.
func (s *IssueService) CreateIssue(ctx context.Context, title, body string, opts ...IssueOption) (*Issue, error) {
	req := &IssueRequest{
		Title:     title,
		Body:      body,
		Labels:    []string{},
		Assignees: []string{},
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := s.client.do(ctx, http.MethodPost, s.client.repo.apiPath("issues"), req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, newUnexpectedResponseError(resp, "failed to create issue")
	}

	issue := &Issue{}
	if err := decodeResponse(resp, issue, "issue"); err != nil {
		return nil, err
	}
	if issue.Number < 1 {
		return nil, newMalformedResponseError("number", resp.StatusCode)
	}

	s.bind(issue.Number, issue)
	return issue, nil
}

// UpdateIssue edits the bound issue.
//
// The payload starts from the cached title, body, label names and assignee
// logins; options replace only the fields they set. With no options the cached
// values are sent back unchanged. On success the cache holds the returned issue.
func (s *IssueService) UpdateIssue(ctx context.Context, opts ...IssueOption) (*Issue, error) {
	if err := s.requireBound("update issue"); err != nil {
		return nil, err
	}

	cached := s.bound.issue
	req := &IssueRequest{
		Title:     cached.Title,
		Body:      cached.Body,
		Labels:    cached.LabelNames(),
		Assignees: cached.AssigneeLogins(),
	}
	for _, opt := range opts {
		opt(req)
	}

	number := s.bound.number
	resp, err := s.client.do(ctx, http.MethodPatch, s.issuePath(number), req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newUnexpectedResponseError(resp, fmt.Sprintf("failed to update issue #%d", number))
	}

	issue := &Issue{}
	if err := decodeResponse(resp, issue, "issue"); err != nil {
		return nil, err
	}

	s.bind(number, issue)
	return issue, nil
}

// Comment posts text as a comment on the bound issue.
// Both 200 and 201 are accepted as success.
func (s *IssueService) Comment(ctx context.Context, text string) (*IssueComment, error) {
	if err := s.requireBound("comment"); err != nil {
		return nil, err
	}

	number := s.bound.number
	resp, err := s.client.do(ctx, http.MethodPost, s.issuePath(number, "comments"), commentRequest{Body: text})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, newUnexpectedResponseError(resp, fmt.Sprintf("failed to comment on issue #%d", number))
	}

	comment := &IssueComment{}
	if err := decodeResponse(resp, comment, "comment"); err != nil {
		return nil, err
	}
	return comment, nil
}

// Timeline returns the events of the bound issue.
func (s *IssueService) Timeline(ctx context.Context) ([]*TimelineEvent, error) {
	if err := s.requireBound("get timeline"); err != nil {
		return nil, err
	}

	number := s.bound.number
	resp, err := s.client.do(ctx, http.MethodGet, s.issuePath(number, "timeline"), nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newUnexpectedResponseError(resp, fmt.Sprintf("failed to get timeline of issue #%d", number))
	}

	var events []*TimelineEvent
	if err := decodeResponse(resp, &events, "timeline"); err != nil {
		return nil, err
	}
	return events, nil
}

// AvailableLabels returns the names of all labels defined in the repository.
func (s *IssueService) AvailableLabels(ctx context.Context) ([]string, error) {
	resp, err := s.client.do(ctx, http.MethodGet, s.client.repo.apiPath("labels"), nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newUnexpectedResponseError(resp, "failed to list labels")
	}

	var labels []Label
	if err := decodeResponse(resp, &labels, "labels"); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.Name)
	}
	return names, nil
}

// Labels returns the label names of the bound issue, or nil when unbound.
func (s *IssueService) Labels() []string {
	if s.bound == nil {
		return nil
	}
	return s.bound.issue.LabelNames()
}

// Assignees returns the assignee logins of the bound issue, or nil when unbound.
func (s *IssueService) Assignees() []string {
	if s.bound == nil {
		return nil
	}
	return s.bound.issue.AssigneeLogins()
}

// Number returns the bound issue number, or 0 when unbound.
func (s *IssueService) Number() int {
	if s.bound == nil {
		return 0
	}
	return s.bound.number
}

// Issue returns the cached issue, or nil when unbound.
func (s *IssueService) Issue() *Issue {
	if s.bound == nil {
		return nil
	}
	return s.bound.issue
}

// IsBound reports whether the service is bound to an issue.
func (s *IssueService) IsBound() bool {
	return s.bound != nil
}

func (s *IssueService) bind(number int, issue *Issue) {
	s.bound = &issueBinding{number: number, issue: issue}
}

func (s *IssueService) requireBound(operation string) error {
	if s.bound != nil {
		return nil
	}
	err := errors.New(errors.CodeIssueNotBound,
		fmt.Sprintf("cannot %s: no issue number set, call SetIssueNumber or CreateIssue first", operation))
	return errors.WithContext(err, "operation", operation)
}

func (s *IssueService) issuePath(number int, segments ...string) string {
	return s.client.repo.apiPath(append([]string{"issues", strconv.Itoa(number)}, segments...)...)
}
