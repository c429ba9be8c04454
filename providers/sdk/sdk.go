// Package sdk provides a githubapi.Transport backed by the go-github SDK.
//
// Requests are built with github.Client.NewRequest, which resolves paths
// against the client's base URL and JSON-encodes bodies, and sent with
// github.Client.BareDo, which applies authentication and rate limit
// bookkeeping. Error statuses are returned as responses, not errors.
package sdk

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v67/github"
	"github.com/rabierabit/githubapi"
	"github.com/rabierabit/githubapi/errors"
	"golang.org/x/oauth2"
)

// Transport implements githubapi.Transport using the go-github SDK.
type Transport struct {
	client *github.Client
}

var _ githubapi.Transport = (*Transport)(nil)

// NewTransport creates a transport using the GitHub SDK.
//
// Example with token authentication:
//
//	transport, err := sdk.NewTransport(sdk.WithToken("ghp_..."))
//
// Example with a GitHub App installation:
//
//	transport, err := sdk.NewTransport(sdk.WithAppInstallation(appID, installationID, pem))
//
// Example with a custom client:
//
//	httpClient := &http.Client{Timeout: 30 * time.Second}
//	transport, err := sdk.NewTransport(sdk.WithClient(github.NewClient(httpClient)))
func NewTransport(opts ...Option) (*Transport, error) {
	cfg := &config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	client := cfg.client
	if client == nil {
		switch {
		case cfg.httpClient != nil:
			client = github.NewClient(cfg.httpClient)
		case cfg.token != "":
			client = github.NewClient(nil)
		default:
			err := errors.New(errors.CodeInvalidInput, "either token, HTTP client or client must be provided")
			return nil, errors.WithContext(err, "field", "token or client")
		}
		if cfg.token != "" {
			client = client.WithAuthToken(cfg.token)
		}
	}

	if cfg.baseURL != nil {
		client.BaseURL = cfg.baseURL
		if cfg.installation != nil {
			cfg.installation.BaseURL = strings.TrimSuffix(cfg.baseURL.String(), "/")
		}
	}

	return &Transport{
		client: client,
	}, nil
}

// NewClient creates a githubapi.Client for repoURL authenticated with token.
func NewClient(repoURL, token string, opts ...githubapi.Option) (*githubapi.Client, error) {
	transport, err := NewTransport(WithToken(token))
	if err != nil {
		return nil, err
	}
	return githubapi.NewClient(repoURL, transport, opts...)
}

// config holds configuration for Transport.
type config struct {
	client       *github.Client
	httpClient   *http.Client
	token        string
	baseURL      *url.URL
	installation *ghinstallation.Transport
}

// Option configures the SDK transport.
type Option func(*config) error

// WithToken sets the authentication token sent as a bearer token.
func WithToken(token string) Option {
	return func(cfg *config) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		cfg.token = token
		return nil
	}
}

// WithClient sets a custom GitHub client.
// This allows full control over the HTTP client configuration,
// authentication, and other advanced settings.
func WithClient(client *github.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			err := errors.New(errors.CodeInvalidInput, "client cannot be nil")
			return errors.WithContext(err, "field", "client")
		}
		cfg.client = client
		return nil
	}
}

// WithHTTPClient sets the HTTP client the SDK client is built on.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(cfg *config) error {
		if httpClient == nil {
			err := errors.New(errors.CodeInvalidInput, "HTTP client cannot be nil")
			return errors.WithContext(err, "field", "http_client")
		}
		cfg.httpClient = httpClient
		return nil
	}
}

// WithTokenSource authenticates with tokens from ts, refreshing them as needed.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(cfg *config) error {
		if ts == nil {
			err := errors.New(errors.CodeInvalidInput, "token source cannot be nil")
			return errors.WithContext(err, "field", "token_source")
		}
		cfg.httpClient = oauth2.NewClient(context.Background(), ts)
		return nil
	}
}

// WithAppInstallation authenticates as a GitHub App installation.
// privateKey is the App's PEM encoded private key.
func WithAppInstallation(appID, installationID int64, privateKey []byte) Option {
	return func(cfg *config) error {
		itr, err := ghinstallation.New(http.DefaultTransport, appID, installationID, privateKey)
		if err != nil {
			wrapped := errors.Wrap(err, errors.CodeInvalidInput, "failed to create GitHub App installation transport")
			return errors.WithContextMap(wrapped, map[string]interface{}{
				"app_id":          appID,
				"installation_id": installationID,
			})
		}
		cfg.installation = itr
		cfg.httpClient = &http.Client{Transport: itr}
		return nil
	}
}

// WithBaseURL sets the API base URL, e.g. https://ghe.example.com/api/v3/.
// A trailing slash is added if missing.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		u, err := url.Parse(baseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			err := errors.New(errors.CodeInvalidInput, "base URL must be an absolute URL")
			return errors.WithContext(err, "field", "base_url")
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		cfg.baseURL = u
		return nil
	}
}

// Client returns the underlying go-github client.
// This is an escape hatch for operations not covered by githubapi.
func (t *Transport) Client() *github.Client {
	return t.client
}

// Do sends req and returns its status and body. Error statuses are not errors.
func (t *Transport) Do(ctx context.Context, req *githubapi.Request) (*githubapi.Response, error) {
	var body interface{}
	if req.Body != nil {
		body = req.Body
	}

	httpReq, err := t.client.NewRequest(req.Method, req.Path, body)
	if err != nil {
		wrapped := errors.Wrap(err, errors.CodeInternal, "failed to build request")
		return nil, errors.WithContext(wrapped, "path", req.Path)
	}
	httpReq.Header.Set("Accept", githubapi.MediaTypeV3)
	if req.UserAgent != "" {
		httpReq.Header.Set("User-Agent", req.UserAgent)
	}

	resp, err := t.client.BareDo(ctx, httpReq)
	if resp == nil || resp.Response == nil {
		if err == nil {
			err = errors.New(errors.CodeNetwork, "no response received")
		}
		return nil, errors.Wrapf(err, errors.CodeNetwork, "%s %s failed", req.Method, req.Path)
	}
	defer resp.Body.Close()

	var data []byte
	var accepted *github.AcceptedError
	if errors.As(err, &accepted) {
		data = accepted.Raw
	} else {
		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeNetwork, "failed to read response body")
		}
	}

	return &githubapi.Response{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}
