//nolint:contextcheck // Context is properly passed via CommandWrapper.WithContext() but linter cannot verify
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/rabierabit/githubapi"
	"github.com/rabierabit/githubapi/errors"
	"github.com/rabierabit/githubapi/exec"
)

// exitCodeAuthRequired is the gh exit status when authentication is missing.
const exitCodeAuthRequired = 4

// Option configures the CLI transport.
type Option func(*Transport) error

// Transport implements githubapi.Transport using "gh api".
type Transport struct {
	wrapper  *exec.CommandWrapper
	env      map[string]string
	hostname string
}

var _ githubapi.Transport = (*Transport)(nil)

// NewTransport creates a transport using the gh CLI.
// Inherits authentication from gh CLI configuration unless WithToken is used.
// Uses the exec package for command execution.
//
// Example:
//
//	transport, err := cli.NewTransport()
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewTransport(opts ...Option) (*Transport, error) {
	// Default executor
	executor := exec.New(exec.WithInheritEnv())

	transport := &Transport{
		wrapper: exec.NewWrapper(executor, "gh"),
		env:     map[string]string{},
	}

	// Apply options (can override the wrapper)
	for _, opt := range opts {
		if err := opt(transport); err != nil {
			return nil, err
		}
	}

	// Verify gh is installed and authenticated
	args := []string{"auth", "status"}
	if transport.hostname != "" {
		args = append(args, "--hostname", transport.hostname)
	}
	result, err := transport.command().Run(args...)
	if err != nil {
		return nil, wrapAuthError(err, result)
	}

	return transport, nil
}

// WithExecutor sets a custom executor for the CLI transport.
// This is primarily useful for testing with a mock executor.
func WithExecutor(executor exec.Executor) Option {
	return func(t *Transport) error {
		if executor == nil {
			err := errors.New(errors.CodeInvalidInput, "executor cannot be nil")
			return errors.WithContext(err, "field", "executor")
		}
		t.wrapper = exec.NewWrapper(executor, "gh")
		return nil
	}
}

// WithToken authenticates gh with token instead of its stored login.
func WithToken(token string) Option {
	return func(t *Transport) error {
		if token == "" {
			err := errors.New(errors.CodeInvalidInput, "token cannot be empty")
			return errors.WithContext(err, "field", "token")
		}
		t.env["GH_TOKEN"] = token
		return nil
	}
}

// WithHostname targets a GitHub Enterprise Server host instead of github.com.
func WithHostname(hostname string) Option {
	return func(t *Transport) error {
		if hostname == "" {
			err := errors.New(errors.CodeInvalidInput, "hostname cannot be empty")
			return errors.WithContext(err, "field", "hostname")
		}
		t.hostname = hostname
		return nil
	}
}

// Do runs "gh api" for req and parses the status line and body from its
// --include output. gh exits non-zero on error statuses; those are still
// returned as responses.
func (t *Transport) Do(ctx context.Context, req *githubapi.Request) (*githubapi.Response, error) {
	args := []string{
		"api", req.Path,
		"--method", req.Method,
		"--include",
		"-H", "Accept: " + githubapi.MediaTypeV3,
	}
	if req.UserAgent != "" {
		args = append(args, "-H", "User-Agent: "+req.UserAgent)
	}
	if t.hostname != "" {
		args = append(args, "--hostname", t.hostname)
	}

	cmd := t.command().WithContext(ctx).WithDisableColors()
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			wrapped := errors.Wrap(err, errors.CodeInternal, "failed to encode request body")
			return nil, errors.WithContext(wrapped, "path", req.Path)
		}
		args = append(args, "-H", "Content-Type: application/json", "--input", "-")
		cmd = cmd.WithStdin(bytes.NewReader(data))
	}

	result, err := cmd.Run(args...)
	if result == nil {
		return nil, wrapCLIError(err, result, "failed to run gh api")
	}

	statusCode, body, ok := parseIncludeOutput(result.Stdout)
	if !ok {
		if err == nil {
			err = errors.New(errors.CodeExecutionFailed, "gh api output has no HTTP status line")
		}
		return nil, wrapCLIError(err, result, "failed to run gh api")
	}

	return &githubapi.Response{
		StatusCode: statusCode,
		Body:       body,
	}, nil
}

// command returns a fresh gh command carrying the transport's environment.
func (t *Transport) command() exec.Executor {
	cmd := t.wrapper.Clone()
	if len(t.env) > 0 {
		cmd = cmd.WithEnv(t.env)
	}
	return cmd
}

// parseIncludeOutput splits "gh api --include" output into the status code of
// the first line and the body after the blank line ending the headers.
func parseIncludeOutput(out string) (int, []byte, bool) {
	if !strings.HasPrefix(out, "HTTP/") {
		return 0, nil, false
	}

	head, body := out, ""
	crlf := strings.Index(out, "\r\n\r\n")
	lf := strings.Index(out, "\n\n")
	switch {
	case crlf >= 0 && (lf < 0 || crlf < lf):
		head, body = out[:crlf], out[crlf+4:]
	case lf >= 0:
		head, body = out[:lf], out[lf+2:]
	}

	statusLine, _, _ := strings.Cut(head, "\n")
	fields := strings.Fields(statusLine)
	if len(fields) < 2 {
		return 0, nil, false
	}
	statusCode, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, nil, false
	}

	return statusCode, []byte(strings.TrimSpace(body)), true
}

// wrapCLIError wraps a failed gh invocation, keeping stderr for diagnosis.
func wrapCLIError(err error, result *exec.Result, message string) error {
	if err == nil {
		err = errors.New(errors.CodeExecutionFailed, "gh produced no result")
	}

	code := errors.CodeExecutionFailed
	if result != nil && result.ExitCode == exitCodeAuthRequired {
		code = errors.CodeUnauthorized
	}

	wrappedErr := errors.Wrap(err, code, message)

	// Include stderr in error details if available
	if result != nil && result.Stderr != "" {
		wrappedErr = errors.WithContext(wrappedErr, "stderr", result.Stderr)
		wrappedErr = errors.WithContext(wrappedErr, "exit_code", result.ExitCode)
	}

	return wrappedErr
}

// wrapAuthError wraps authentication errors from gh CLI.
func wrapAuthError(err error, result *exec.Result) error {
	authErr := errors.Wrap(err, errors.CodeUnauthorized, "gh CLI not authenticated")
	authErr = errors.WithContext(authErr, "hint", "Run 'gh auth login' to authenticate")
	if result != nil && result.Stderr != "" {
		authErr = errors.WithContext(authErr, "stderr", result.Stderr)
	}
	return authErr
}
