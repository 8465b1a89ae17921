package proxy

import (
	"net/http"
	"testing"
)

func TestNewHTTPClient(t *testing.T) {
	t.Run("no proxy", func(t *testing.T) {
		c, err := NewHTTPClient("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Transport != nil {
			t.Error("expected default transport when no proxy is set")
		}
		if c.Timeout != DefaultTimeout {
			t.Errorf("expected %v timeout, got %v", DefaultTimeout, c.Timeout)
		}
	})

	t.Run("socks proxy", func(t *testing.T) {
		c, err := NewHTTPClient("127.0.0.1:1080")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := c.Transport.(*http.Transport); !ok {
			t.Errorf("expected *http.Transport, got %T", c.Transport)
		}
	})
}
