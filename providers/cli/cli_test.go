package cli

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/rabierabit/githubapi"
	"github.com/rabierabit/githubapi/errors"
	"github.com/rabierabit/githubapi/exec"
	"github.com/rabierabit/githubapi/exec/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockExecutor creates a mock executor that returns itself from every
// fluent method and answers "auth status" successfully.
func setupMockExecutor(t *testing.T, runFunc func(args ...string) (*exec.Result, error)) *mocks.ExecutorMock {
	t.Helper()

	var mockExec *mocks.ExecutorMock
	mockExec = &mocks.ExecutorMock{
		WithEnvFunc: func(env map[string]string) exec.Executor {
			return mockExec
		},
		WithDirFunc: func(dir string) exec.Executor {
			return mockExec
		},
		WithContextFunc: func(ctx context.Context) exec.Executor {
			return mockExec
		},
		WithStdinFunc: func(r io.Reader) exec.Executor {
			return mockExec
		},
		WithDisableColorsFunc: func() exec.Executor {
			return mockExec
		},
		WithTimeoutFunc: func(timeout time.Duration) exec.Executor {
			return mockExec
		},
		WithInheritEnvFunc: func() exec.Executor {
			return mockExec
		},
		CloneFunc: func() exec.Executor {
			return mockExec
		},
		RunFunc: func(args ...string) (*exec.Result, error) {
			if len(args) >= 3 && args[1] == "auth" && args[2] == "status" {
				return &exec.Result{Stdout: "Logged in to github.com"}, nil
			}
			return runFunc(args...)
		},
	}

	return mockExec
}

func apiCalls(mock *mocks.ExecutorMock) [][]string {
	var calls [][]string
	for _, call := range mock.RunCalls() {
		if len(call.Args) > 1 && call.Args[1] == "api" {
			calls = append(calls, call.Args)
		}
	}
	return calls
}

func TestNewTransport(t *testing.T) {
	t.Parallel()

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, nil)

		transport, err := NewTransport(WithExecutor(mockExec))

		require.NoError(t, err)
		assert.NotNil(t, transport)
		require.Len(t, mockExec.RunCalls(), 1)
		assert.Equal(t, []string{"gh", "auth", "status"}, mockExec.RunCalls()[0].Args)
	})

	t.Run("not authenticated", func(t *testing.T) {
		t.Parallel()

		mockExec := &mocks.ExecutorMock{}
		mockExec.CloneFunc = func() exec.Executor { return mockExec }
		mockExec.RunFunc = func(args ...string) (*exec.Result, error) {
			result := &exec.Result{Stderr: "You are not logged into any GitHub hosts", ExitCode: 1}
			return result, &exec.ExecError{Command: args, ExitCode: 1, Stderr: result.Stderr}
		}

		_, err := NewTransport(WithExecutor(mockExec))

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})

	t.Run("token and hostname", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, nil)

		_, err := NewTransport(WithExecutor(mockExec), WithToken("secret"), WithHostname("ghe.example.com"))

		require.NoError(t, err)
		require.NotEmpty(t, mockExec.WithEnvCalls())
		assert.Equal(t, "secret", mockExec.WithEnvCalls()[0].Env["GH_TOKEN"])
		assert.Equal(t, []string{"gh", "auth", "status", "--hostname", "ghe.example.com"}, mockExec.RunCalls()[0].Args)
	})

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "nil executor", opts: []Option{WithExecutor(nil)}},
		{name: "empty token", opts: []Option{WithToken("")}},
		{name: "empty hostname", opts: []Option{WithHostname("")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewTransport(tt.opts...)

			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
		})
	}
}

func TestTransport_Do(t *testing.T) {
	t.Parallel()

	t.Run("GET", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{
				Stdout: "HTTP/2.0 200 OK\r\nContent-Type: application/json; charset=utf-8\r\n\r\n{\"default_branch\":\"main\"}\n",
			}, nil
		})
		transport, err := NewTransport(WithExecutor(mockExec))
		require.NoError(t, err)

		resp, err := transport.Do(context.Background(), &githubapi.Request{
			Method:    http.MethodGet,
			Path:      "repos/o/r",
			UserAgent: "o",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"default_branch":"main"}`, string(resp.Body))

		calls := apiCalls(mockExec)
		require.Len(t, calls, 1)
		assert.Equal(t, []string{
			"gh", "api", "repos/o/r",
			"--method", "GET",
			"--include",
			"-H", "Accept: application/vnd.github.v3+json",
			"-H", "User-Agent: o",
		}, calls[0])
		assert.Empty(t, mockExec.WithStdinCalls())
	})

	t.Run("POST sends body on stdin", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			return &exec.Result{Stdout: "HTTP/2.0 201 Created\nLocation: x\n\n{\"id\":1}"}, nil
		})
		transport, err := NewTransport(WithExecutor(mockExec))
		require.NoError(t, err)

		resp, err := transport.Do(context.Background(), &githubapi.Request{
			Method: http.MethodPost,
			Path:   "repos/o/r/issues/42/comments",
			Body:   map[string]string{"body": "fixed"},
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, `{"id":1}`, string(resp.Body))

		calls := apiCalls(mockExec)
		require.Len(t, calls, 1)
		assert.Contains(t, calls[0], "--input")
		assert.Contains(t, calls[0], "Content-Type: application/json")

		require.Len(t, mockExec.WithStdinCalls(), 1)
		data, err := io.ReadAll(mockExec.WithStdinCalls()[0].R)
		require.NoError(t, err)
		assert.JSONEq(t, `{"body":"fixed"}`, string(data))
	})

	t.Run("error status is a response", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			result := &exec.Result{
				Stdout:   "HTTP/2.0 404 Not Found\r\n\r\n{\"message\":\"Branch not found\"}",
				Stderr:   "gh: Branch not found (HTTP 404)",
				ExitCode: 1,
			}
			return result, &exec.ExecError{Command: args, ExitCode: 1, Stdout: result.Stdout, Stderr: result.Stderr}
		})
		transport, err := NewTransport(WithExecutor(mockExec))
		require.NoError(t, err)

		resp, err := transport.Do(context.Background(), &githubapi.Request{
			Method: http.MethodGet,
			Path:   "repos/o/r/branches/images",
		})

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.JSONEq(t, `{"message":"Branch not found"}`, string(resp.Body))
	})

	t.Run("no status line", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			result := &exec.Result{Stderr: "error connecting to api.github.com", ExitCode: 1}
			return result, &exec.ExecError{Command: args, ExitCode: 1, Stderr: result.Stderr}
		})
		transport, err := NewTransport(WithExecutor(mockExec))
		require.NoError(t, err)

		_, err = transport.Do(context.Background(), &githubapi.Request{Method: http.MethodGet, Path: "repos/o/r"})

		require.Error(t, err)
		assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))

		var apiErr errors.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "error connecting to api.github.com", apiErr.Context()["stderr"])
	})

	t.Run("auth required exit code", func(t *testing.T) {
		t.Parallel()

		mockExec := setupMockExecutor(t, func(args ...string) (*exec.Result, error) {
			result := &exec.Result{Stderr: "To get started with GitHub CLI, please run:  gh auth login", ExitCode: 4}
			return result, &exec.ExecError{Command: args, ExitCode: 4, Stderr: result.Stderr}
		})
		transport, err := NewTransport(WithExecutor(mockExec))
		require.NoError(t, err)

		_, err = transport.Do(context.Background(), &githubapi.Request{Method: http.MethodGet, Path: "repos/o/r"})

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnauthorized, errors.GetCode(err))
	})
}

func TestParseIncludeOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		out        string
		wantStatus int
		wantBody   string
		wantOK     bool
	}{
		{
			name:       "crlf headers",
			out:        "HTTP/2.0 200 OK\r\nX-A: 1\r\n\r\n[]",
			wantStatus: 200,
			wantBody:   "[]",
			wantOK:     true,
		},
		{
			name:       "lf headers",
			out:        "HTTP/1.1 422 Unprocessable Entity\nX-A: 1\n\n{\"message\":\"bad\"}\n",
			wantStatus: 422,
			wantBody:   `{"message":"bad"}`,
			wantOK:     true,
		},
		{
			name:       "no body",
			out:        "HTTP/2.0 204 No Content\r\n",
			wantStatus: 204,
			wantBody:   "",
			wantOK:     true,
		},
		{
			name: "not http",
			out:  "{\"message\":\"bad\"}",
		},
		{
			name: "bad status",
			out:  "HTTP/2.0 abc\r\n\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			status, body, ok := parseIncludeOutput(tt.out)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStatus, status)
				assert.Equal(t, tt.wantBody, string(body))
			}
		})
	}
}
