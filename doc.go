// Package githubapi is a small client for the GitHub REST API covering issue
// management and content upload for a single repository.
//
// # Architecture
//
// Every remote call goes through the Transport interface, which sends one
// authenticated JSON request and returns the status code and raw body. Two
// implementations are provided:
//
//   - providers/sdk sends requests with google/go-github (token, oauth2 token
//     source or GitHub App installation auth)
//   - providers/cli sends requests with "gh api", inheriting the gh login
//
// Services interpret status codes and decode bodies. Transports never retry and
// never treat a 4xx or 5xx answer as an error.
//
// # Core Types
//
// Client holds the repository identity parsed from a URL and hands out services.
//
// IssueService lists, creates, updates and comments on issues. It is either
// unbound or bound to one issue whose data it caches; UpdateIssue uses the cache
// to fill in fields the caller does not override.
//
// ContentPublisher uploads a file as a single commit. When the target branch is
// missing it is created from the head of the default branch first.
//
// BranchResolver reads and creates branches.
//
// # Usage
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
//	issues := client.Issues()
//	if _, err := issues.CreateIssue(ctx, "Bug", "repro steps"); err != nil {
//	    log.Fatal(err)
//	}
//	if _, err := issues.Comment(ctx, "fixed"); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.Content().UploadFile(ctx, "shot.png", "images/shot.png",
//	    githubapi.WithBranch("images"),
//	)
//
// # Error Handling
//
// All errors carry an errors.ErrorCode:
//
//	_, err := issues.UpdateIssue(ctx)
//	switch errors.GetCode(err) {
//	case errors.CodeIssueNotBound:
//	    // call SetIssueNumber first
//	case errors.CodeUnexpectedResponse:
//	    status, _ := githubapi.StatusCode(err)
//	    log.Printf("GitHub answered %d", status)
//	}
//
// Unexpected 429 and 5xx answers and transport failures are classified as
// retryable (errors.IsRetryable). The library itself never retries.
//
// # Thread Safety
//
// Client and ContentPublisher hold no mutable state and may be shared.
// IssueService caches the bound issue and is not safe for concurrent use.
package githubapi
