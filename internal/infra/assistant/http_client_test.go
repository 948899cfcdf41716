package assistant

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agriconnect/config"
	"agriconnect/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssistant(t *testing.T, handler http.HandlerFunc) service.AssistantService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Remote: &config.RemoteConfig{
			AssistantURL: server.URL,
			Timeout:      5 * time.Second,
		},
	}

	return NewHTTPClient(cfg, slog.New(slog.DiscardHandler))
}

func TestAsk(t *testing.T) {
	client := newAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "When should I sow wheat?", payload["prompt"])

		json.NewEncoder(w).Encode(map[string]string{"reply": "Early November works best."})
	})

	reply, err := client.Ask(context.Background(), "When should I sow wheat?")
	require.NoError(t, err)
	assert.Equal(t, "Early November works best.", reply)
}

func TestAsk_NoEndpointConfigured(t *testing.T) {
	cfg := &config.Config{Remote: &config.RemoteConfig{Timeout: time.Second}}
	client := NewHTTPClient(cfg, slog.New(slog.DiscardHandler))

	reply, err := client.Ask(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestAsk_EndpointErrorFallsBack(t *testing.T) {
	client := newAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	reply, err := client.Ask(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestAsk_EmptyReplyFallsBack(t *testing.T) {
	client := newAssistant(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"reply": ""})
	})

	reply, err := client.Ask(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestAsk_UnreachableEndpointFallsBack(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{
		Remote: &config.RemoteConfig{
			AssistantURL: server.URL,
			Timeout:      time.Second,
		},
	}
	client := NewHTTPClient(cfg, slog.New(slog.DiscardHandler))

	reply, err := client.Ask(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, FallbackReply, reply)
}
