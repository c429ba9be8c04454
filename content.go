package githubapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/rabierabit/githubapi/errors"
)

// ContentPublisher writes files to the repository through the contents API.
// Each upload is a single commit on the target branch; the branch is created
// from the default branch's head commit when it does not exist yet.
type ContentPublisher struct {
	client   *Client
	branches *BranchResolver
	fs       billy.Basic
}

type putContentRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
}

func newContentPublisher(c *Client, opts ...PublisherOption) *ContentPublisher {
	p := &ContentPublisher{
		client:   c,
		branches: c.Branches(),
		fs:       osfs.Default,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// UploadFile reads localPath and commits it to repoPath.
//
// Example:
//
//	result, err := client.Content().UploadFile(ctx, "shot.png", "images/shot.png",
//	    githubapi.WithBranch("images"),
//	)
func (p *ContentPublisher) UploadFile(ctx context.Context, localPath, repoPath string, opts ...UploadOption) (*UploadResult, error) {
	data, err := util.ReadFile(p.fs, localPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err := errors.Wrap(err, errors.CodeFileNotFound, fmt.Sprintf("file not found: %s", localPath))
			return nil, errors.WithContext(err, "path", localPath)
		}
		err := errors.Wrap(err, errors.CodeFileRead, fmt.Sprintf("failed to read file: %s", localPath))
		return nil, errors.WithContext(err, "path", localPath)
	}

	return p.Upload(ctx, data, repoPath, opts...)
}

// Upload commits content to repoPath.
//
// The sequence is: ensure the target branch exists (creating it from the
// default branch when absent), then PUT the base64 encoded content. A failure
// stops the sequence. A branch created before a failed PUT is not removed.
func (p *ContentPublisher) Upload(ctx context.Context, content []byte, repoPath string, opts ...UploadOption) (*UploadResult, error) {
	options, err := newUploadOptions(opts)
	if err != nil {
		return nil, err
	}

	repoPath = strings.Trim(repoPath, "/")
	if repoPath == "" {
		return nil, newInvalidInputError("repository path", "must not be empty")
	}

	created, err := p.ensureBranch(ctx, options.Branch)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.do(ctx, http.MethodPut, p.client.repo.apiPath("contents", escapePath(repoPath)), putContentRequest{
		Message: options.CommitMessage,
		Content: base64.StdEncoding.EncodeToString(content),
		Branch:  options.Branch,
	})
	if err == nil && resp.StatusCode != http.StatusCreated {
		err = newUnexpectedResponseError(resp, fmt.Sprintf("failed to upload %s", repoPath))
	}
	if err != nil {
		if created {
			p.client.logger.Warn("upload failed after creating branch, branch left in place",
				"branch", options.Branch, "path", repoPath, "error", err)
		}
		return nil, err
	}

	result := &UploadResult{}
	if err := decodeResponse(resp, result, "upload result"); err != nil {
		return nil, err
	}
	result.Raw = resp.Body

	p.client.logger.Info("uploaded content",
		"repository", p.client.repo.FullName(), "branch", options.Branch, "path", repoPath, "bytes", len(content))

	return result, nil
}

// ensureBranch creates branch from the default branch's head when it does
// not exist. It reports whether the branch was created.
func (p *ContentPublisher) ensureBranch(ctx context.Context, branch string) (bool, error) {
	_, found, err := p.branches.LatestCommitSHA(ctx, branch)
	if err != nil {
		return false, err
	}
	if found {
		return false, nil
	}

	defaultBranch, err := p.branches.DefaultBranch(ctx)
	if err != nil {
		return false, err
	}

	sha, found, err := p.branches.LatestCommitSHA(ctx, defaultBranch)
	if err != nil {
		err := errors.Wrap(err, errors.CodeBranchBootstrapFailed,
			fmt.Sprintf("failed to resolve head of default branch %s", defaultBranch))
		return false, errors.WithContext(err, "branch", branch)
	}
	if !found {
		err := errors.New(errors.CodeBranchBootstrapFailed,
			fmt.Sprintf("default branch %s has no commit to create %s from", defaultBranch, branch))
		return false, errors.WithContextMap(err, map[string]interface{}{
			"branch":         branch,
			"default_branch": defaultBranch,
		})
	}

	if err := p.branches.CreateBranch(ctx, branch, sha); err != nil {
		return false, err
	}

	p.client.logger.Info("created branch",
		"repository", p.client.repo.FullName(), "branch", branch, "from", defaultBranch, "sha", sha)

	return true, nil
}

// escapePath escapes each segment of a slash separated path.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
