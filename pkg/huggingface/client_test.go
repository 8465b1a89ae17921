package huggingface_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-assistant/pkg/huggingface"
)

func TestHuggingFaceClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-hf-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"Invalid credentials in Authorization header"}`))
			return
		}
		if r.URL.Path != "/custom/model" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var req huggingface.TextToImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch req.Inputs {
		case "loading":
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"Model is currently loading","estimated_time":20.5}`))
		case "text":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		default:
			if req.Parameters == nil || req.Parameters.Seed != 42 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write([]byte{0xFF, 0xD8, 0xFF})
		}
	}))
	defer ts.Close()

	client, err := huggingface.New("test-hf-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	client.WithBaseURL(ts.URL).WithModel("custom/model")

	t.Run("Success Flow", func(t *testing.T) {
		img, err := client.TextToImage(context.Background(), "a red fox", 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(img) != 3 || img[0] != 0xFF {
			t.Errorf("unexpected image bytes: %v", img)
		}
	})

	t.Run("Model Loading Flow", func(t *testing.T) {
		_, err := client.TextToImage(context.Background(), "loading", 42)
		var apiErr *huggingface.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusServiceUnavailable || apiErr.EstimatedTime != 20.5 {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("Non Image Response", func(t *testing.T) {
		if _, err := client.TextToImage(context.Background(), "text", 42); err == nil {
			t.Fatalf("expected content type error")
		}
	})

	t.Run("Empty Prompt", func(t *testing.T) {
		if _, err := client.TextToImage(context.Background(), "  ", 1); err == nil {
			t.Fatalf("expected error for empty prompt")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := huggingface.New("bad-key")
		badClient.WithBaseURL(ts.URL).WithModel("custom/model")
		_, err := badClient.TextToImage(context.Background(), "a red fox", 42)
		var apiErr *huggingface.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 error, got %v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := huggingface.New(""); err == nil {
			t.Fatalf("expected error for empty key")
		}
	})
}
