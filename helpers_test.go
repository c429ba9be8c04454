package githubapi_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/rabierabit/githubapi"
	"github.com/rabierabit/githubapi/mocks"
	"github.com/stretchr/testify/require"
)

const testRepoURL = "https://github.com/o/r"

// routes maps "METHOD path" to the response the fake transport returns.
type routes map[string]*githubapi.Response

func respond(status int, body string) *githubapi.Response {
	return &githubapi.Response{StatusCode: status, Body: []byte(body)}
}

// newRouter returns a transport that answers from r and fails the test on
// any request it has no route for.
func newRouter(t *testing.T, r routes) *mocks.TransportMock {
	t.Helper()

	return &mocks.TransportMock{
		DoFunc: func(_ context.Context, req *githubapi.Request) (*githubapi.Response, error) {
			key := req.Method + " " + req.Path
			resp, ok := r[key]
			if !ok {
				t.Errorf("unexpected request: %s", key)
				return respond(599, `{"message":"no route"}`), nil
			}
			return resp, nil
		},
	}
}

func newTestClient(t *testing.T, transport githubapi.Transport, opts ...githubapi.Option) *githubapi.Client {
	t.Helper()

	client, err := githubapi.NewClient(testRepoURL, transport, opts...)
	require.NoError(t, err)
	return client
}

// requestKeys lists the "METHOD path" of every request in order.
func requestKeys(mock *mocks.TransportMock) []string {
	calls := mock.DoCalls()
	keys := make([]string, 0, len(calls))
	for _, call := range calls {
		keys = append(keys, call.Req.Method+" "+call.Req.Path)
	}
	return keys
}

// bodyJSON returns the JSON encoding of the i-th request body.
func bodyJSON(t *testing.T, mock *mocks.TransportMock, i int) string {
	t.Helper()

	calls := mock.DoCalls()
	require.Greater(t, len(calls), i)

	data, err := json.Marshal(calls[i].Req.Body)
	require.NoError(t, err)
	return string(data)
}
