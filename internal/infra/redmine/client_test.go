package redmine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issuesJSON = `{
	"issues": [
		{"id": 2887, "subject": "Sync fails on bad metadata", "project": {"id": 1, "name": "Pulp"}},
		{"id": 2901, "subject": "Publish is slow", "project": {"id": 2, "name": "RPM Support"}},
		{"id": 2910, "subject": "Sync hangs", "project": {"id": 1, "name": "Pulp"}}
	],
	"total_count": 3
}`

func TestClient_FetchQuery(t *testing.T) {
	var gotPath, gotQuery, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotKey = r.Header.Get("X-Redmine-API-Key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(issuesJSON))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	issues, err := client.FetchQuery(context.Background(), 108)

	require.NoError(t, err)
	assert.Equal(t, "/issues.json", gotPath)
	assert.Equal(t, "query_id=108&limit=100", gotQuery)
	assert.Equal(t, "secret", gotKey)

	require.Len(t, issues, 3)
	assert.Equal(t, 2887, issues[0].ID)
	assert.Equal(t, "Sync fails on bad metadata", issues[0].Subject)
	assert.Equal(t, "Pulp", issues[0].Project)
	assert.Equal(t, srv.URL+"/issues/2887", issues[0].URL)
	assert.Equal(t, "RPM Support", issues[1].Project)
}

func TestClient_FetchQuery_MissingKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("request must not be made without a key")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "")
	_, err := client.FetchQuery(context.Background(), 108)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingAPIKey)
}

func TestClient_FetchQuery_QueryNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	_, err := client.FetchQuery(context.Background(), 9999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrQueryNotFound)
	assert.Contains(t, err.Error(), "9999")
}

func TestClient_FetchQuery_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	_, err := client.FetchQuery(context.Background(), 108)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestClient_FetchQuery_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret")
	_, err := client.FetchQuery(context.Background(), 108)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode issues")
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("https://pulp.plan.io/", "secret")
	assert.Equal(t, "https://pulp.plan.io", client.baseURL)
}
