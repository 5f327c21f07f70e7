package content

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatic(t *testing.T) {
	g := Static{Text: "| a | b |"}
	got, err := g.Generate(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "| a | b |" {
		t.Errorf("got %q", got)
	}
}

func TestGenerateAllConcatenates(t *testing.T) {
	calls := 0
	g := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		return prompt + "!", nil
	})

	got, err := GenerateAll(context.Background(), g, []string{"one", "two", "three"})
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if got != "one!\ntwo!\nthree!" {
		t.Errorf("got %q", got)
	}
	if calls != 3 {
		t.Errorf("generator called %d times, want 3", calls)
	}
}

func TestGenerateAllStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	g := generatorFunc(func(ctx context.Context, prompt string) (string, error) {
		calls++
		if calls == 2 {
			return "", boom
		}
		return "ok", nil
	})

	if _, err := GenerateAll(context.Background(), g, []string{"a", "b", "c"}); !errors.Is(err, boom) {
		t.Fatalf("error = %v, want boom", err)
	}
	if calls != 2 {
		t.Errorf("generator called %d times, want 2", calls)
	}
}

type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestChatClientGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sk-test" {
			t.Errorf("authorization = %q", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "gpt-4o-mini" || len(req.Messages) != 1 || req.Messages[0].Content != "list scores" {
			t.Errorf("request = %+v", req)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "|a|b|\n|--|--|\n|1|2|"}},
			},
		})
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "sk-test", "gpt-4o-mini")
	got, err := c.Generate(context.Background(), "list scores")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "|a|b|\n|--|--|\n|1|2|" {
		t.Errorf("got %q", got)
	}
}

func TestChatClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "", "m")
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestChatClientEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewChatClient(srv.URL, "", "m")
	if _, err := c.Generate(context.Background(), "p"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}
