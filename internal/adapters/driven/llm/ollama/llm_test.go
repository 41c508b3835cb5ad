package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewLLMService(LLMConfig{BaseURL: server.URL, Model: "test-model"})
}

func collect(t *testing.T, stream driven.CompletionStream) []string {
	t.Helper()
	defer stream.Close()
	var out []string
	for stream.Next() {
		out = append(out, stream.Current())
	}
	return out
}

func TestNewLLMService_Defaults(t *testing.T) {
	svc := NewLLMService(LLMConfig{})

	assert.Equal(t, DefaultBaseURL, svc.baseURL)
	assert.Equal(t, DefaultLLMModel, svc.ModelName())
}

func TestLLMService_Generate(t *testing.T) {
	var captured generateRequest
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = io.WriteString(w, `{"response":"{\"intent\":\"find_restaurants\"}","done":true}`)
	})

	got, err := svc.Generate(context.Background(), "classify", driven.GenerateOptions{MaxTokens: 500, Temperature: 0.2})

	require.NoError(t, err)
	assert.Equal(t, `{"intent":"find_restaurants"}`, got)
	assert.False(t, captured.Stream)
	require.NotNil(t, captured.Options)
	assert.Equal(t, 500, captured.Options.NumPredict)
	assert.InDelta(t, 0.2, captured.Options.Temperature, 1e-9)
}

func TestLLMService_GenerateWithoutOptions(t *testing.T) {
	var raw map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, _ = io.WriteString(w, `{"response":"ok","done":true}`)
	})

	_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

	require.NoError(t, err)
	assert.NotContains(t, raw, "options")
}

func TestLLMService_Chat(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		_, _ = io.WriteString(w, `{"message":{"role":"assistant","content":"Hello!"},"done":true}`)
	})

	got, err := svc.Chat(context.Background(), []driven.ChatMessage{
		{Role: "system", Content: "be nice"},
		{Role: "user", Content: "hi"},
	}, driven.ChatOptions{})

	require.NoError(t, err)
	assert.Equal(t, "Hello!", got)
}

func TestLLMService_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		rateLimited bool
	}{
		{"server error", http.StatusInternalServerError, false},
		{"too many requests", http.StatusTooManyRequests, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, "model not loaded")
			})

			_, err := svc.Generate(context.Background(), "x", driven.GenerateOptions{})

			require.Error(t, err)
			assert.Contains(t, err.Error(), "model not loaded")
			assert.Equal(t, tt.rateLimited, errors.Is(err, domain.ErrRateLimited))
		})
	}
}

func TestLLMService_Stream(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr string
	}{
		{
			name: "fragments until done",
			body: "{\"response\":\"Your \",\"done\":false}\n\n{\"response\":\"table\",\"done\":false}\n" +
				"{\"response\":\"\",\"done\":true}\n",
			want: []string{"Your ", "table"},
		},
		{
			name: "final chunk carries text",
			body: "{\"response\":\"Hi\",\"done\":true}\n",
			want: []string{"Hi"},
		},
		{
			name:    "error line",
			body:    "{\"response\":\"A\",\"done\":false}\n{\"error\":\"out of memory\"}\n",
			want:    []string{"A"},
			wantErr: "out of memory",
		},
		{
			name:    "truncated stream",
			body:    "{\"response\":\"A\",\"done\":false}\n",
			want:    []string{"A"},
			wantErr: "unexpected EOF",
		},
		{
			name:    "garbage line",
			body:    "not json\n",
			wantErr: "decode stream chunk",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
				var req generateRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.True(t, req.Stream)
				w.Header().Set("Content-Type", "application/x-ndjson")
				_, _ = io.WriteString(w, tt.body)
			})

			stream, err := svc.Stream(context.Background(), "narrate", driven.GenerateOptions{})
			require.NoError(t, err)

			got := collect(t, stream)

			assert.Equal(t, tt.want, got)
			if tt.wantErr == "" {
				assert.NoError(t, stream.Err())
			} else {
				assert.ErrorContains(t, stream.Err(), tt.wantErr)
			}
		})
	}
}

func TestLLMService_StreamStatusError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "model missing")
	})

	stream, err := svc.Stream(context.Background(), "x", driven.GenerateOptions{})

	assert.Nil(t, stream)
	assert.ErrorContains(t, err, "status 404")
}

func TestLLMService_Ping(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			_, _ = io.WriteString(w, `{"models":[]}`)
		})
		assert.NoError(t, svc.Ping(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		svc := NewLLMService(LLMConfig{BaseURL: "http://127.0.0.1:1"})
		assert.Error(t, svc.Ping(context.Background()))
	})
}
