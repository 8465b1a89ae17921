package websearch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/api/option"

	"voice-assistant/pkg/websearch"
)

func TestNew(t *testing.T) {
	if _, err := websearch.New(context.Background(), "", "cx"); err == nil {
		t.Fatalf("expected error for missing key")
	}
	if _, err := websearch.New(context.Background(), "key", ""); err == nil {
		t.Fatalf("expected error for missing engine id")
	}
}

func TestSearch(t *testing.T) {
	var gotNum string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/customsearch/v1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("cx") != "engine-1" || r.URL.Query().Get("key") != "test-key" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		gotNum = r.URL.Query().Get("num")
		if r.URL.Query().Get("q") == "fail" {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error":{"code":403,"message":"quota"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"title": "Go", "link": "https://go.dev", "snippet": " Build simple, secure, scalable systems. "},
				{"title": "Go Tour", "link": "https://go.dev/tour", "snippet": "A tour of Go."}
			]
		}`))
	}))
	defer ts.Close()

	client, err := websearch.New(context.Background(), "test-key", "engine-1",
		option.WithEndpoint(ts.URL+"/"),
		option.WithHTTPClient(ts.Client()),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		results, err := client.Search(context.Background(), "golang", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("expected 2 results, got %d", len(results))
		}
		if results[0].Snippet != "Build simple, secure, scalable systems." {
			t.Errorf("unexpected snippet: %q", results[0].Snippet)
		}
		if gotNum != "5" {
			t.Errorf("expected default num 5, got %s", gotNum)
		}
	})

	t.Run("Clamp", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "golang", 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotNum != "10" {
			t.Errorf("expected num clamped to 10, got %s", gotNum)
		}
	})

	t.Run("Empty query", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "  ", 5); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("API error", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "fail", 5); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestFormat(t *testing.T) {
	got := websearch.Format("go", []websearch.Result{{Title: "Go", Snippet: "Fast."}})
	want := "The search results for 'go' are:\n[start]\nTitle: Go\nDescription: Fast.\n\n[end]"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
	if !strings.HasSuffix(websearch.Format("x", nil), "[start]\n[end]") {
		t.Errorf("empty results should keep markers")
	}
}
