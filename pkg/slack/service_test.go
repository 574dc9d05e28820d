package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyInvestigationStarted is no-op", func(t *testing.T) {
		result := s.NotifyInvestigationStarted(context.Background(), InvestigationStartedInput{
			RunID:      "run-1",
			IncidentID: "PD-12345",
		})
		assert.Empty(t, result)
	})

	t.Run("NotifyInvestigationConcluded is no-op", func(_ *testing.T) {
		// Should not panic
		s.NotifyInvestigationConcluded(context.Background(), InvestigationConcludedInput{
			RunID:  "run-1",
			Status: "completed",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "C123"}))
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		assert.Nil(t, NewService(ServiceConfig{Token: "xoxb-test", Channel: ""}))
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://rootline.example.com",
		})
		assert.NotNil(t, svc)
	})
}

// mockSlackAPI serves the two endpoints the client uses. History returns a
// pager message carrying PD-12345; posted messages are recorded.
func mockSlackAPI(t *testing.T) (*httptest.Server, *[]map[string]string) {
	t.Helper()
	var posted []map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, _ *http.Request) {
		resp := map[string]any{
			"ok": true,
			"messages": []map[string]any{
				{"type": "message", "ts": "1724660000.000100",
					"text": "Incident triggered: PD-12345 checkout-api high latency"},
				{"type": "message", "ts": "1724650000.000100",
					"text": "unrelated chatter"},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	})
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted = append(posted, map[string]string{
			"thread_ts": r.Form.Get("thread_ts"),
			"blocks":    r.Form.Get("blocks"),
		})
		require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"ok": true, "ts": "1724660001.000100",
		}))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &posted
}

func TestNotifyInvestigationStarted_ThreadsUnderPagerMessage(t *testing.T) {
	server, posted := mockSlackAPI(t)
	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "https://rootline.example.com")

	threadTS := svc.NotifyInvestigationStarted(context.Background(), InvestigationStartedInput{
		RunID:      "run-1",
		Query:      "why is checkout latency elevated",
		IncidentID: "PD-12345",
	})

	assert.Equal(t, "1724660000.000100", threadTS)
	require.Len(t, *posted, 1)
	assert.Equal(t, "1724660000.000100", (*posted)[0]["thread_ts"])
	assert.Contains(t, (*posted)[0]["blocks"], "Investigation started")
}

func TestNotifyInvestigationConcluded_ReusesThread(t *testing.T) {
	server, posted := mockSlackAPI(t)
	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	svc := NewServiceWithClient(client, "https://rootline.example.com")

	svc.NotifyInvestigationConcluded(context.Background(), InvestigationConcludedInput{
		RunID:            "run-1",
		IncidentID:       "PD-12345",
		Status:           "completed",
		RootCause:        "connection pool exhaustion in checkout-api",
		Confidence:       "high",
		AffectedServices: []string{"checkout-api"},
		ThreadTS:         "1724660000.000100",
	})

	require.Len(t, *posted, 1)
	assert.Equal(t, "1724660000.000100", (*posted)[0]["thread_ts"])
	assert.Contains(t, (*posted)[0]["blocks"], "connection pool exhaustion")
}
