package prsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ritikraj2425/mergeflow/config"
	"github.com/ritikraj2425/mergeflow/internal/domain"
)

func newTestServer(t *testing.T, repoCalls *int) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "is:pr author:octocat is:merged", r.URL.Query().Get("q"))
		require.Equal(t, "50", r.URL.Query().Get("per_page"))
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"total_count": 4,
			"items": []map[string]any{
				{
					"title":          "Fix scheduler race",
					"html_url":       "https://github.com/kube/kube/pull/1",
					"repository_url": srv.URL + "/repos/kube/kube",
					"closed_at":      "2025-01-02T10:00:00Z",
					"pull_request":   map[string]any{"merged_at": "2025-01-02T09:00:00Z"},
				},
				{
					"title":          "Docs typo",
					"html_url":       "https://github.com/kube/kube/pull/2",
					"repository_url": srv.URL + "/repos/kube/kube",
					"closed_at":      "2025-01-03T10:00:00Z",
				},
				{
					"title":          "Broken repo",
					"html_url":       "https://github.com/gone/away/pull/3",
					"repository_url": srv.URL + "/repos/gone/away",
				},
				{
					"title":          "Odd url",
					"html_url":       "https://github.com/x/y/pull/4",
					"repository_url": "not a repo",
				},
			},
		})
	})

	mux.HandleFunc("/repos/kube/kube", func(w http.ResponseWriter, r *http.Request) {
		*repoCalls++
		_ = json.NewEncoder(w).Encode(map[string]any{
			"full_name":        "kube/kube",
			"stargazers_count": 500,
			"private":          false,
			"owner":            map[string]any{"login": "kube"},
		})
	})

	mux.HandleFunc("/repos/gone/away", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestMergedPullRequests(t *testing.T) {
	var repoCalls int
	srv := newTestServer(t, &repoCalls)

	c, err := NewClient(config.GitHub{APIURL: srv.URL, Token: "secret"})
	require.NoError(t, err)

	prs, err := c.MergedPullRequests(context.Background(), "octocat")
	require.NoError(t, err)

	repo := domain.RepositorySnapshot{FullName: "kube/kube", Stars: 500, OwnerLogin: "kube"}
	require.Equal(t, []domain.PullRequestRecord{
		{
			Title:      "Fix scheduler race",
			URL:        "https://github.com/kube/kube/pull/1",
			Repository: repo,
			MergedAt:   time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC),
		},
		{
			Title:      "Docs typo",
			URL:        "https://github.com/kube/kube/pull/2",
			Repository: repo,
			MergedAt:   time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC),
		},
	}, prs)

	require.Equal(t, 1, repoCalls)
}

func TestMergedPullRequests_SearchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":"Validation Failed"}`))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(config.GitHub{APIURL: srv.URL})
	require.NoError(t, err)

	_, err = c.MergedPullRequests(context.Background(), "octocat")
	require.Error(t, err)
}

func TestRepoFromURL(t *testing.T) {
	owner, name, err := repoFromURL("https://api.github.com/repos/golang/go")
	require.NoError(t, err)
	require.Equal(t, "golang", owner)
	require.Equal(t, "go", name)

	_, _, err = repoFromURL("https://api.github.com/users/golang")
	require.Error(t, err)
}
