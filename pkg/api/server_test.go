package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/session"
)

// instantLLM answers every chat immediately.
type instantLLM struct{}

func (instantLLM) Chat(context.Context, *agent.ChatRequest) (*agent.ChatResponse, error) {
	return &agent.ChatResponse{Content: "nothing is on fire"}, nil
}

// stuckLLM blocks until its context is cancelled.
type stuckLLM struct{}

func (stuckLLM) Chat(ctx context.Context, _ *agent.ChatRequest) (*agent.ChatResponse, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func newTestServer(t *testing.T, llm agent.LLMClient) (*Server, *session.Manager) {
	t.Helper()
	cfg, err := config.Initialize(context.Background(), "")
	require.NoError(t, err)
	cfg.Scratchpad.Dir = t.TempDir()

	manager := session.NewManager()
	pool := queue.NewPool(queue.Deps{
		Config:  cfg,
		LLM:     llm,
		Tools:   agent.NewRegistry(),
		Manager: manager,
	}, queue.Options{Workers: 1})
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	return NewServer(Deps{Manager: manager, Pool: pool}), manager
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func waitForStatus(t *testing.T, manager *session.Manager, id string, want session.Status) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		if run := manager.Get(id); run != nil && run.Snapshot().Status == want {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("run %s never reached %s", id, want)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func submit(t *testing.T, router http.Handler, body string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/v1/investigations", body)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var resp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestCreateInvestigationValidation(t *testing.T) {
	server, _ := newTestServer(t, instantLLM{})
	router := server.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/investigations", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/investigations",
		`{"query":"q","mode":"prophet"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAndGetInvestigation(t *testing.T) {
	server, manager := newTestServer(t, instantLLM{})
	router := server.Router()

	id := submit(t, router, `{"query":"why is checkout slow","mode":"assistant"}`)
	waitForStatus(t, manager, id, session.StatusCompleted)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/investigations/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp sessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "completed", resp.Status)
	assert.True(t, resp.Live)
	assert.Equal(t, "nothing is on fire", resp.Answer)
}

func TestGetUnknownInvestigation(t *testing.T) {
	server, _ := newTestServer(t, instantLLM{})
	rec := doJSON(t, server.Router(), http.MethodGet, "/api/v1/investigations/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListInvestigationsWithoutDatabase(t *testing.T) {
	server, manager := newTestServer(t, instantLLM{})
	router := server.Router()

	first := submit(t, router, `{"query":"q one","mode":"assistant"}`)
	second := submit(t, router, `{"query":"q two","mode":"assistant"}`)
	waitForStatus(t, manager, first, session.StatusCompleted)
	waitForStatus(t, manager, second, session.StatusCompleted)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/investigations", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Investigations []sessionResponse `json:"investigations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Investigations, 2)
}

func TestCancelInvestigation(t *testing.T) {
	server, manager := newTestServer(t, stuckLLM{})
	router := server.Router()

	id := submit(t, router, `{"query":"stuck","mode":"assistant"}`)
	waitForStatus(t, manager, id, session.StatusRunning)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/investigations/"+id+"/cancel", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	waitForStatus(t, manager, id, session.StatusCancelled)

	rec = doJSON(t, router, http.MethodPost, "/api/v1/investigations/unknown/cancel", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStreamEventsReplaysFinishedRun(t *testing.T) {
	server, manager := newTestServer(t, instantLLM{})
	router := server.Router()

	id := submit(t, router, `{"query":"quick one","mode":"assistant"}`)
	waitForStatus(t, manager, id, session.StatusCompleted)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/investigations/"+id+"/events", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "event: init")
	assert.Contains(t, body, "event: done")
	assert.True(t, strings.Index(body, "event: init") < strings.Index(body, "event: done"))
}

func TestHealthWithoutDatabase(t *testing.T) {
	server, _ := newTestServer(t, instantLLM{})
	rec := doJSON(t, server.Router(), http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.NotNil(t, resp["pool"])
}

func TestSecurityHeaders(t *testing.T) {
	server, _ := newTestServer(t, instantLLM{})
	rec := doJSON(t, server.Router(), http.MethodGet, "/healthz", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}
