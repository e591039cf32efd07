package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.APIKey = "test-key"
	return cfg
}

func completionBody(text string) map[string]any {
	return map[string]any{
		"model": "gpt-4",
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": text}},
		},
	}
}

func TestChatClient_Analyze_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "You are a productivity analyst.", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "analyze this", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("Cut your standups in half."))
	}))
	defer srv.Close()

	client := NewChatClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.Analyze(context.Background(), "analyze this")

	require.NoError(t, err)
	assert.Equal(t, "Cut your standups in half.", resp.Text)
	assert.Equal(t, "gpt-4", resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestChatClient_Analyze_NoAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIKey = ""

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestChatClient_Analyze_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestChatClient_Analyze_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewChatClient(cfg, NoopObserver{})
	resp, err := client.Analyze(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestChatClient_Analyze_RetryExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestChatClient_Analyze_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"gpt-4","choices":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 0

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestChatClient_Analyze_Unavailable(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1") // nothing listening
	cfg.MaxRetries = 0

	client := NewChatClient(cfg, NoopObserver{})
	_, err := client.Analyze(context.Background(), "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) {
	o.events = append(o.events, e)
}

func TestChatClient_ObserverSeesOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionBody("ok"))
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewChatClient(testConfig(srv.URL), obs)
	_, err := client.Analyze(context.Background(), "prompt")

	require.NoError(t, err)
	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, "gpt-4", obs.events[0].Model)
}
