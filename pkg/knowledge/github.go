package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rootline-ai/rootline/pkg/models"
)

// GitHubConfig points the retriever at a repository directory of markdown
// runbooks, e.g. https://github.com/acme/runbooks/tree/main/docs.
type GitHubConfig struct {
	RepoURL string
	Token   string // empty = unauthenticated (public repos, lower rate limits)

	// MaxRunbooks bounds how many documents one retrieval returns.
	// Zero means 5.
	MaxRunbooks int

	// RefreshInterval is how long the fetched document set stays fresh.
	// Zero means 5 minutes.
	RefreshInterval time.Duration

	// APIBaseURL overrides https://api.github.com. Tests point it at a
	// local server.
	APIBaseURL string
}

// GitHubRetriever implements Retriever over a GitHub repository of
// markdown runbooks. Documents are listed and downloaded through the
// Contents API, held in memory, and re-fetched lazily after the refresh
// interval. Scoring is plain token overlap — the repository is the
// knowledge base, not a vector store.
type GitHubRetriever struct {
	cfg        GitHubConfig
	httpClient *http.Client
	owner      string
	repo       string
	ref        string
	path       string

	mu        sync.Mutex
	docs      []githubDoc
	fetchedAt time.Time
}

type githubDoc struct {
	title   string
	content string
	url     string
}

type githubContentItem struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	HTMLURL     string `json:"html_url"`
	DownloadURL string `json:"download_url"`
}

// NewGitHubRetriever parses the repo URL and returns a ready retriever.
// No network traffic happens until the first Retrieve.
func NewGitHubRetriever(cfg GitHubConfig) (*GitHubRetriever, error) {
	owner, repo, ref, path, err := parseRepoURL(cfg.RepoURL)
	if err != nil {
		return nil, fmt.Errorf("parse repo URL: %w", err)
	}
	if cfg.MaxRunbooks <= 0 {
		cfg.MaxRunbooks = 5
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = 5 * time.Minute
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = "https://api.github.com"
	}
	return &GitHubRetriever{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		owner:      owner,
		repo:       repo,
		ref:        ref,
		path:       path,
	}, nil
}

// Retrieve returns the runbooks most relevant to the query, scored by
// token overlap with the query text, symptoms, and service names.
func (g *GitHubRetriever) Retrieve(ctx context.Context, query models.KnowledgeQuery) (*models.KnowledgeBundle, error) {
	docs, err := g.documents(ctx)
	if err != nil {
		return nil, err
	}

	terms := queryTerms(query)
	type scored struct {
		doc   githubDoc
		score float64
	}
	var candidates []scored
	for _, doc := range docs {
		s := overlapScore(terms, doc)
		if s > 0 {
			candidates = append(candidates, scored{doc: doc, score: s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > g.cfg.MaxRunbooks {
		candidates = candidates[:g.cfg.MaxRunbooks]
	}

	bundle := &models.KnowledgeBundle{}
	for i, c := range candidates {
		bundle.Runbooks = append(bundle.Runbooks, models.KnowledgeItem{
			ID:         fmt.Sprintf("gh-%d", i+1),
			DocumentID: c.doc.url,
			Title:      c.doc.title,
			Content:    c.doc.content,
			Type:       models.KnowledgeRunbook,
			Score:      c.score,
			SourceURL:  c.doc.url,
		})
	}
	return bundle, nil
}

// documents returns the cached document set, re-fetching when stale. A
// fetch failure with a warm cache serves the stale copy.
func (g *GitHubRetriever) documents(ctx context.Context) ([]githubDoc, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.docs != nil && time.Since(g.fetchedAt) < g.cfg.RefreshInterval {
		return g.docs, nil
	}

	docs, err := g.fetchAll(ctx, g.path)
	if err != nil {
		if g.docs != nil {
			return g.docs, nil
		}
		return nil, err
	}
	g.docs = docs
	g.fetchedAt = time.Now()
	return docs, nil
}

func (g *GitHubRetriever) fetchAll(ctx context.Context, path string) ([]githubDoc, error) {
	items, err := g.listContents(ctx, path)
	if err != nil {
		return nil, err
	}

	var docs []githubDoc
	for _, item := range items {
		switch item.Type {
		case "file":
			if !strings.HasSuffix(strings.ToLower(item.Name), ".md") {
				continue
			}
			content, err := g.download(ctx, item.DownloadURL)
			if err != nil {
				return nil, fmt.Errorf("download %s: %w", item.Path, err)
			}
			docs = append(docs, githubDoc{
				title:   docTitle(item.Name, content),
				content: content,
				url:     item.HTMLURL,
			})
		case "dir":
			sub, err := g.fetchAll(ctx, item.Path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, sub...)
		}
	}
	return docs, nil
}

func (g *GitHubRetriever) listContents(ctx context.Context, path string) ([]githubContentItem, error) {
	apiURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s?ref=%s",
		g.cfg.APIBaseURL, g.owner, g.repo, path, g.ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	g.setAuthHeader(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list contents at %q: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned HTTP %d for path %q", resp.StatusCode, path)
	}

	var items []githubContentItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode contents response: %w", err)
	}
	return items, nil
}

func (g *GitHubRetriever) download(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}
	g.setAuthHeader(req)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (g *GitHubRetriever) setAuthHeader(req *http.Request) {
	if g.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.cfg.Token)
	}
}

// parseRepoURL accepts https://github.com/{owner}/{repo}[/tree/{ref}[/{path}]].
func parseRepoURL(rawURL string) (owner, repo, ref, path string, err error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", "", "", "", err
	}
	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", "", "", fmt.Errorf("not a repository URL: %q", rawURL)
	}
	owner, repo = parts[0], parts[1]
	ref = "main"
	if len(parts) >= 4 && (parts[2] == "tree" || parts[2] == "blob") {
		ref = parts[3]
		if len(parts) > 4 {
			path = strings.Join(parts[4:], "/")
		}
	}
	return owner, repo, ref, path, nil
}

// docTitle prefers the first markdown heading over the file name.
func docTitle(fileName, content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
		if line != "" {
			break
		}
	}
	name := strings.TrimSuffix(fileName, ".md")
	return strings.ReplaceAll(name, "-", " ")
}

func queryTerms(q models.KnowledgeQuery) map[string]bool {
	terms := make(map[string]bool)
	add := func(text string) {
		for _, tok := range strings.Fields(strings.ToLower(text)) {
			tok = strings.Trim(tok, ".,:;?!\"'()[]")
			if len(tok) > 2 {
				terms[tok] = true
			}
		}
	}
	add(q.Query)
	for _, s := range q.Services {
		add(s)
	}
	for _, s := range q.Symptoms {
		add(s)
	}
	for _, s := range q.ErrorMessages {
		add(s)
	}
	return terms
}

// overlapScore weighs title hits over body hits and normalizes to 0..1.
func overlapScore(terms map[string]bool, doc githubDoc) float64 {
	if len(terms) == 0 {
		return 0
	}
	title := strings.ToLower(doc.title)
	body := strings.ToLower(doc.content)

	var hits float64
	for term := range terms {
		switch {
		case strings.Contains(title, term):
			hits += 2
		case strings.Contains(body, term):
			hits++
		}
	}
	score := hits / float64(2*len(terms))
	if score > 1 {
		score = 1
	}
	return score
}
