package githubapi

import "context"

//go:generate go run github.com/matryer/moq@latest -out mocks/transport.go -pkg mocks . Transport

// MediaTypeV3 is the versioned JSON media type sent in every Accept header.
const MediaTypeV3 = "application/vnd.github.v3+json"

// Transport sends one authenticated JSON request to the GitHub REST API.
// Implementations include sdk.Transport (go-github) and cli.Transport (gh CLI).
//
// A Transport must:
//   - set the authorization header from its configured credentials
//   - set User-Agent to Request.UserAgent when it is non-empty
//   - set Accept to MediaTypeV3
//   - JSON-encode Request.Body with Content-Type application/json when it is non-nil
//
// A Transport must not retry and must not interpret status codes: every
// completed round trip, including 4xx and 5xx answers, is returned as a
// Response with a nil error. An error is returned only when no response was
// received at all.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Request describes a single API call.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string

	// Path is relative to the API base URL, without a leading slash, and may
	// carry an encoded query string (e.g. "repos/octo/hello/issues?state=open").
	Path string

	// Body is encoded as JSON when non-nil.
	Body interface{}

	// UserAgent overrides the transport's default User-Agent when non-empty.
	UserAgent string
}

// Response is the status code and raw body of a completed round trip.
type Response struct {
	StatusCode int
	Body       []byte
}
