package githubapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// BranchResolver looks up and creates branches.
type BranchResolver struct {
	client *Client
}

type branchResponse struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

type repositoryResponse struct {
	DefaultBranch string `json:"default_branch"`
}

type createRefRequest struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// LatestCommitSHA returns the SHA of the head commit of branch.
// A 404 answer means the branch does not exist and is reported as found == false
// with a nil error.
func (b *BranchResolver) LatestCommitSHA(ctx context.Context, branch string) (sha string, found bool, err error) {
	if branch == "" {
		return "", false, newInvalidInputError("branch", "must not be empty")
	}

	resp, err := b.client.do(ctx, http.MethodGet, b.client.repo.apiPath("branches", url.PathEscape(branch)), nil)
	if err != nil {
		return "", false, err
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, newUnexpectedResponseError(resp, fmt.Sprintf("failed to get branch %s", branch))
	}

	var data branchResponse
	if err := decodeResponse(resp, &data, "branch"); err != nil {
		return "", false, err
	}
	if data.Commit.SHA == "" {
		return "", false, newMalformedResponseError("commit.sha", resp.StatusCode)
	}

	return data.Commit.SHA, true, nil
}

// DefaultBranch returns the repository's default branch name.
func (b *BranchResolver) DefaultBranch(ctx context.Context) (string, error) {
	resp, err := b.client.do(ctx, http.MethodGet, b.client.repo.apiPath(), nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", newUnexpectedResponseError(resp, "failed to get repository")
	}

	var data repositoryResponse
	if err := decodeResponse(resp, &data, "repository"); err != nil {
		return "", err
	}
	if data.DefaultBranch == "" {
		return "", newMalformedResponseError("default_branch", resp.StatusCode)
	}

	return data.DefaultBranch, nil
}

// CreateBranch creates branch name pointing at commit sha.
func (b *BranchResolver) CreateBranch(ctx context.Context, name, sha string) error {
	if name == "" {
		return newInvalidInputError("branch", "must not be empty")
	}
	if sha == "" {
		return newInvalidInputError("sha", "must not be empty")
	}

	resp, err := b.client.do(ctx, http.MethodPost, b.client.repo.apiPath("git", "refs"), createRefRequest{
		Ref: "refs/heads/" + name,
		SHA: sha,
	})
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		return newUnexpectedResponseError(resp, fmt.Sprintf("failed to create branch %s", name))
	}

	return nil
}
