package githubapi_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rabierabit/githubapi"
	"github.com/rabierabit/githubapi/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchResolver_LatestCommitSHA(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		branch    string
		path      string
		resp      *githubapi.Response
		wantSHA   string
		wantFound bool
		wantCode  errors.ErrorCode
	}{
		{
			name:      "existing branch",
			branch:    "main",
			path:      "repos/o/r/branches/main",
			resp:      respond(http.StatusOK, `{"name":"main","commit":{"sha":"abc123"}}`),
			wantSHA:   "abc123",
			wantFound: true,
		},
		{
			name:   "missing branch is absent",
			branch: "images",
			path:   "repos/o/r/branches/images",
			resp:   respond(http.StatusNotFound, `{"message":"Branch not found"}`),
		},
		{
			name:   "branch name with slash is escaped",
			branch: "feature/x",
			path:   "repos/o/r/branches/feature%2Fx",
			resp:   respond(http.StatusOK, `{"commit":{"sha":"def456"}}`),

			wantSHA:   "def456",
			wantFound: true,
		},
		{
			name:     "server error",
			branch:   "main",
			path:     "repos/o/r/branches/main",
			resp:     respond(http.StatusInternalServerError, `{"message":"boom"}`),
			wantCode: errors.CodeUnexpectedResponse,
		},
		{
			name:     "missing commit sha",
			branch:   "main",
			path:     "repos/o/r/branches/main",
			resp:     respond(http.StatusOK, `{"name":"main"}`),
			wantCode: errors.CodeMalformedResponse,
		},
		{
			name:     "undecodable body",
			branch:   "main",
			path:     "repos/o/r/branches/main",
			resp:     respond(http.StatusOK, `not json`),
			wantCode: errors.CodeMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock := newRouter(t, routes{"GET " + tt.path: tt.resp})
			client := newTestClient(t, mock)

			sha, found, err := client.Branches().LatestCommitSHA(context.Background(), tt.branch)

			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantSHA, sha)
		})
	}
}

func TestBranchResolver_LatestCommitSHA_EmptyName(t *testing.T) {
	t.Parallel()

	mock := newRouter(t, routes{})
	client := newTestClient(t, mock)

	_, _, err := client.Branches().LatestCommitSHA(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.Empty(t, mock.DoCalls())
}

func TestBranchResolver_DefaultBranch(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{
			"GET repos/o/r": respond(http.StatusOK, `{"full_name":"o/r","default_branch":"trunk"}`),
		})
		client := newTestClient(t, mock)

		branch, err := client.Branches().DefaultBranch(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "trunk", branch)
	})

	t.Run("missing default branch", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{
			"GET repos/o/r": respond(http.StatusOK, `{"full_name":"o/r"}`),
		})
		client := newTestClient(t, mock)

		_, err := client.Branches().DefaultBranch(context.Background())

		require.Error(t, err)
		assert.Equal(t, errors.CodeMalformedResponse, errors.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{
			"GET repos/o/r": respond(http.StatusNotFound, `{"message":"Not Found"}`),
		})
		client := newTestClient(t, mock)

		_, err := client.Branches().DefaultBranch(context.Background())

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnexpectedResponse, errors.GetCode(err))

		status, ok := githubapi.StatusCode(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestBranchResolver_CreateBranch(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{
			"POST repos/o/r/git/refs": respond(http.StatusCreated, `{"ref":"refs/heads/images"}`),
		})
		client := newTestClient(t, mock)

		err := client.Branches().CreateBranch(context.Background(), "images", "abc123")

		require.NoError(t, err)
		assert.JSONEq(t, `{"ref":"refs/heads/images","sha":"abc123"}`, bodyJSON(t, mock, 0))
	})

	t.Run("already exists", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{
			"POST repos/o/r/git/refs": respond(http.StatusUnprocessableEntity, `{"message":"Reference already exists"}`),
		})
		client := newTestClient(t, mock)

		err := client.Branches().CreateBranch(context.Background(), "images", "abc123")

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnexpectedResponse, errors.GetCode(err))

		var respErr *githubapi.ResponseError
		require.ErrorAs(t, err, &respErr)
		assert.Equal(t, http.StatusUnprocessableEntity, respErr.StatusCode)
		assert.Equal(t, "Reference already exists", respErr.Message)
	})

	t.Run("200 is not success", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{
			"POST repos/o/r/git/refs": respond(http.StatusOK, `{}`),
		})
		client := newTestClient(t, mock)

		err := client.Branches().CreateBranch(context.Background(), "images", "abc123")

		require.Error(t, err)
		assert.Equal(t, errors.CodeUnexpectedResponse, errors.GetCode(err))
	})

	t.Run("empty sha", func(t *testing.T) {
		t.Parallel()

		mock := newRouter(t, routes{})
		client := newTestClient(t, mock)

		err := client.Branches().CreateBranch(context.Background(), "images", "")

		require.Error(t, err)
		assert.True(t, githubapi.IsInvalidArgument(err))
		assert.Empty(t, mock.DoCalls())
	})
}
