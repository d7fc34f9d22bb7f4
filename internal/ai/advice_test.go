package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angoleague/algtool/internal/league"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient("test-key")
	c.SetBaseURL(srv.URL)
	return c
}

func candidateResponse(text string) []byte {
	resp := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": text}},
				},
			},
		},
	}
	b, _ := json.Marshal(resp)
	return b
}

func TestMatchmakingAdvice(t *testing.T) {
	var prompt string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		prompt = req.Contents[0].Parts[0].Text
		w.Write(candidateResponse("1. Junta-te aos Estrelas da Maianga."))
	})

	profile := league.UserProfile{ID: "u1", Name: "Ana", Province: "Luanda"}
	teams := []league.Team{{ID: "t1", Name: "Estrelas da Maianga", Locality: "Maianga"}}
	got := c.MatchmakingAdvice(context.Background(), profile, teams)
	if got != "1. Junta-te aos Estrelas da Maianga." {
		t.Errorf("MatchmakingAdvice() = %q", got)
	}
	if !strings.Contains(prompt, "Ana") || !strings.Contains(prompt, "Estrelas da Maianga") {
		t.Errorf("prompt does not reference profile and teams: %q", prompt)
	}
}

func TestMatchmakingAdviceFallsBack(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	got := c.MatchmakingAdvice(context.Background(), league.UserProfile{Name: "Ana"}, nil)
	if got != AdviceFallback {
		t.Errorf("MatchmakingAdvice() = %q, want fallback", got)
	}
}

func TestLocalFeedPost(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(candidateResponse("O Cazenga tem um novo craque!"))
	})
	if got := c.LocalFeedPost(context.Background(), "Cazenga"); got != "O Cazenga tem um novo craque!" {
		t.Errorf("LocalFeedPost() = %q", got)
	}
}

func TestLocalFeedPostFallsBack(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "empty candidates",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)
			got := c.LocalFeedPost(context.Background(), "Maianga")
			if !strings.Contains(got, "Maianga") {
				t.Errorf("fallback does not reference the locality: %q", got)
			}
		})
	}
}
