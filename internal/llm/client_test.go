package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	cfg := DefaultConfig("test-key")
	cfg.BaseURL = serverURL
	cfg.Referer = "http://localhost:5173"
	cfg.Title = "Tour Recommendation Chatbot"
	return NewClient(cfg)
}

func TestGenerate(t *testing.T) {
	var gotReq chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "http://localhost:5173", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "Tour Recommendation Chatbot", r.Header.Get("X-Title"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  Chào bạn!  "}},
			},
		})
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL).Generate(context.Background(), "system text", "user text")
	require.NoError(t, err)
	assert.Equal(t, "Chào bạn!", reply)

	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.InDelta(t, 0.7, gotReq.Temperature, 0.001)
}

func TestGenerateMissingAPIKey(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://example.invalid"})
	_, err := client.Generate(context.Background(), "s", "u")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateErrorClasses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorClass
	}{
		{"unauthorized", http.StatusUnauthorized, ClassAuth},
		{"forbidden", http.StatusForbidden, ClassAuth},
		{"rate limited", http.StatusTooManyRequests, ClassRateLimit},
		{"server error", http.StatusInternalServerError, ClassAPI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).Generate(context.Background(), "", "hi")
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Class)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	_, err := newTestClient(server.URL).Generate(context.Background(), "", "hi")
	class, ok := Classify(err)
	require.True(t, ok)
	assert.Equal(t, ClassTransport, class)
}

func TestGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Generate(context.Background(), "", "hi")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ClassAPI, apiErr.Class)
}

func TestClassifyPlainError(t *testing.T) {
	class, ok := Classify(errors.New("boom"))
	assert.True(t, ok)
	assert.Equal(t, ClassAPI, class)

	_, ok = Classify(nil)
	assert.False(t, ok)
}
