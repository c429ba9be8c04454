package githubapi

import (
	"context"
	"log/slog"

	"github.com/rabierabit/githubapi/errors"
)

// Client is the entry point for one repository.
// It holds the repository identity and the Transport every service sends through.
//
// Example usage:
//
//	transport, err := sdk.NewTransport(sdk.WithToken(os.Getenv("GITHUB_TOKEN")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := githubapi.NewClient("https://github.com/octo/hello", transport)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	issue, err := client.Issues().CreateIssue(ctx, "Bug", "repro steps")
type Client struct {
	transport Transport
	repo      Repository
	logger    *slog.Logger
}

// NewClient creates a client for the repository at repoURL.
//
// Returns an error with CodeInvalidRepositoryURL if the URL has no owner/name
// path, or CodeInvalidInput if transport is nil.
func NewClient(repoURL string, transport Transport, opts ...Option) (*Client, error) {
	if transport == nil {
		return nil, newInvalidInputError("transport", "must not be nil")
	}

	repo, err := ParseRepositoryURL(repoURL)
	if err != nil {
		return nil, err
	}

	c := &Client{
		transport: transport,
		repo:      repo,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Issues returns an IssueService that is not bound to any issue.
func (c *Client) Issues() *IssueService {
	return &IssueService{client: c}
}

// Issue returns an IssueService bound to issue number.
// The issue is fetched once to populate the cache.
func (c *Client) Issue(ctx context.Context, number int) (*IssueService, error) {
	svc := c.Issues()
	if err := svc.SetIssueNumber(ctx, number); err != nil {
		return nil, err
	}
	return svc, nil
}

// Branches returns a BranchResolver for the repository.
func (c *Client) Branches() *BranchResolver {
	return &BranchResolver{client: c}
}

// Content returns a ContentPublisher for the repository.
func (c *Client) Content(opts ...PublisherOption) *ContentPublisher {
	return newContentPublisher(c, opts...)
}

// Repository returns the repository identity.
func (c *Client) Repository() Repository {
	return c.repo
}

// Owner returns the repository owner.
func (c *Client) Owner() string {
	return c.repo.Owner
}

// Name returns the repository name.
func (c *Client) Name() string {
	return c.repo.Name
}

// FullName returns "owner/name".
func (c *Client) FullName() string {
	return c.repo.FullName()
}

// Transport returns the underlying Transport.
// This is an escape hatch for endpoints not covered by the services.
func (c *Client) Transport() Transport {
	return c.transport
}

// do sends a single request. The owner name is used as the User-Agent.
// A non-nil error means no response was received.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Response, error) {
	resp, err := c.transport.Do(ctx, &Request{
		Method:    method,
		Path:      path,
		Body:      body,
		UserAgent: c.repo.Owner,
	})
	if err == nil && resp == nil {
		err = errors.New(errors.CodeNetwork, "transport returned no response")
	}
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)

		var apiErr errors.Error
		if errors.As(err, &apiErr) {
			return nil, errors.WithContext(apiErr, "path", path)
		}
		wrapped := errors.Wrapf(err, errors.CodeNetwork, "%s %s failed", method, path)
		return nil, errors.WithContext(wrapped, "path", path)
	}

	c.logger.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode)
	return resp, nil
}
