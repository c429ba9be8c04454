package exec_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rabierabit/githubapi/exec"
	"github.com/rabierabit/githubapi/exec/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapperWithMock(t *testing.T) {
	var mockExec *mocks.ExecutorMock
	mockExec = &mocks.ExecutorMock{
		WithEnvFunc:           func(env map[string]string) exec.Executor { return mockExec },
		WithDirFunc:           func(dir string) exec.Executor { return mockExec },
		WithContextFunc:       func(ctx context.Context) exec.Executor { return mockExec },
		WithStdinFunc:         func(r io.Reader) exec.Executor { return mockExec },
		WithDisableColorsFunc: func() exec.Executor { return mockExec },
		WithTimeoutFunc:       func(timeout time.Duration) exec.Executor { return mockExec },
		WithInheritEnvFunc:    func() exec.Executor { return mockExec },
		CloneFunc:             func() exec.Executor { return mockExec },
		RunFunc: func(args ...string) (*exec.Result, error) {
			return &exec.Result{Stdout: "HTTP/2.0 200 OK\r\n\r\n{}"}, nil
		},
	}

	wrapper := exec.NewWrapper(mockExec, "gh")

	result, err := wrapper.
		WithEnv(map[string]string{"GH_TOKEN": "secret"}).
		WithStdin(strings.NewReader("{}")).
		Run("api", "repos/octo/hello")

	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "200 OK")

	require.Len(t, mockExec.WithEnvCalls(), 1)
	assert.Equal(t, "secret", mockExec.WithEnvCalls()[0].Env["GH_TOKEN"])
	require.Len(t, mockExec.WithStdinCalls(), 1)

	require.Len(t, mockExec.RunCalls(), 1)
	assert.Equal(t, []string{"gh", "api", "repos/octo/hello"}, mockExec.RunCalls()[0].Args)
}

func TestWrapper_RealCommand(t *testing.T) {
	wrapper := exec.NewWrapper(exec.New(), "echo")

	result, err := wrapper.Clone().Run("hello")

	require.NoError(t, err)
	assert.Contains(t, result.Stdout, "hello")
}
