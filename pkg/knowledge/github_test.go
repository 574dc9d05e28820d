package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/models"
)

// fakeGitHub serves a Contents API listing plus raw file downloads for a
// fixed set of markdown runbooks.
func fakeGitHub(t *testing.T, files map[string]string) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var listCalls atomic.Int64

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/repos/acme/runbooks/contents/", func(w http.ResponseWriter, r *http.Request) {
		listCalls.Add(1)
		var items []map[string]any
		for name := range files {
			items = append(items, map[string]any{
				"name":         name,
				"path":         "docs/" + name,
				"type":         "file",
				"html_url":     fmt.Sprintf("https://github.com/acme/runbooks/blob/main/docs/%s", name),
				"download_url": server.URL + "/raw/" + name,
			})
		}
		require.NoError(t, json.NewEncoder(w).Encode(items))
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		name := r.URL.Path[len("/raw/"):]
		content, ok := files[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, content)
	})
	return server, &listCalls
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		owner   string
		repo    string
		ref     string
		path    string
		wantErr bool
	}{
		{name: "bare repo", url: "https://github.com/acme/runbooks", owner: "acme", repo: "runbooks", ref: "main"},
		{name: "tree with path", url: "https://github.com/acme/runbooks/tree/v2/docs/sre", owner: "acme", repo: "runbooks", ref: "v2", path: "docs/sre"},
		{name: "tree without path", url: "https://github.com/acme/runbooks/tree/release", owner: "acme", repo: "runbooks", ref: "release"},
		{name: "owner only", url: "https://github.com/acme", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, ref, path, err := parseRepoURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
			assert.Equal(t, tt.ref, ref)
			assert.Equal(t, tt.path, path)
		})
	}
}

func TestGitHubRetrieverRanksByOverlap(t *testing.T) {
	server, _ := fakeGitHub(t, map[string]string{
		"payments-db.md": "# Payments database exhaustion\n\nWhen the payments connection pool saturates, check pgbouncer.",
		"dns-issues.md":  "# DNS resolution failures\n\nCoreDNS restarts and upstream timeouts.",
		"onboarding.md":  "# Team onboarding\n\nLaptop setup and access requests.",
	})

	r, err := NewGitHubRetriever(GitHubConfig{
		RepoURL:    "https://github.com/acme/runbooks/tree/main/docs",
		APIBaseURL: server.URL,
	})
	require.NoError(t, err)

	bundle, err := r.Retrieve(context.Background(), models.KnowledgeQuery{
		Query:    "payments latency spike",
		Services: []string{"payments"},
		Symptoms: []string{"connection pool saturated"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, bundle.Runbooks)

	top := bundle.Runbooks[0]
	assert.Equal(t, "Payments database exhaustion", top.Title)
	assert.Equal(t, models.KnowledgeRunbook, top.Type)
	assert.Greater(t, top.Score, 0.0)
	assert.Contains(t, top.SourceURL, "payments-db.md")

	for _, item := range bundle.Runbooks {
		assert.NotEqual(t, "Team onboarding", item.Title, "unrelated doc should score zero")
	}
}

func TestGitHubRetrieverCachesListing(t *testing.T) {
	server, listCalls := fakeGitHub(t, map[string]string{
		"cache.md": "# Cache eviction storms\n\nRedis memory pressure playbook.",
	})

	r, err := NewGitHubRetriever(GitHubConfig{
		RepoURL:         "https://github.com/acme/runbooks",
		APIBaseURL:      server.URL,
		RefreshInterval: time.Hour,
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := r.Retrieve(context.Background(), models.KnowledgeQuery{Query: "redis cache eviction"})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(1), listCalls.Load())
}

func TestGitHubRetrieverBoundsResults(t *testing.T) {
	files := make(map[string]string)
	for i := 0; i < 8; i++ {
		files[fmt.Sprintf("checkout-%d.md", i)] = "# Checkout errors\n\ncheckout service playbook"
	}
	server, _ := fakeGitHub(t, files)

	r, err := NewGitHubRetriever(GitHubConfig{
		RepoURL:     "https://github.com/acme/runbooks",
		APIBaseURL:  server.URL,
		MaxRunbooks: 3,
	})
	require.NoError(t, err)

	bundle, err := r.Retrieve(context.Background(), models.KnowledgeQuery{Query: "checkout errors"})
	require.NoError(t, err)
	assert.Len(t, bundle.Runbooks, 3)
}

func TestGitHubRetrieverSurfacesListError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	r, err := NewGitHubRetriever(GitHubConfig{
		RepoURL:    "https://github.com/acme/runbooks",
		APIBaseURL: server.URL,
	})
	require.NoError(t, err)

	_, err = r.Retrieve(context.Background(), models.KnowledgeQuery{Query: "anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestDocTitle(t *testing.T) {
	assert.Equal(t, "Pool exhaustion", docTitle("pool.md", "# Pool exhaustion\n\nbody"))
	assert.Equal(t, "db failover", docTitle("db-failover.md", "no heading here"))
}
