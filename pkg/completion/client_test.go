package completion_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"todochat/pkg/completion"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew(t *testing.T) {
	t.Run("Missing API Key", func(t *testing.T) {
		_, err := completion.New(completion.Config{})
		if err == nil {
			t.Fatal("expected error when api key is missing")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		cfg := completion.Config{APIKey: "test-key"}
		if _, err := completion.New(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestComplete(t *testing.T) {
	t.Run("Successful Completion", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there!"}}]}`))
		})

		c, err := completion.New(completion.Config{APIKey: "test-key", BaseURL: srv.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reply, err := c.Complete(context.Background(), []completion.Message{
			{Role: completion.RoleUser, Content: "hi"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if reply != "Hello there!" {
			t.Errorf("reply = %q, want %q", reply, "Hello there!")
		}
	})

	t.Run("Empty Choices", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		c, _ := completion.New(completion.Config{APIKey: "test-key", BaseURL: srv.URL})
		_, err := c.Complete(context.Background(), []completion.Message{
			{Role: completion.RoleUser, Content: "hi"},
		})
		if err == nil {
			t.Fatal("expected error for empty choices")
		}
	})

	t.Run("Timeout Is Bounded", func(t *testing.T) {
		srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte(`{"choices":[]}`))
		})

		c, _ := completion.New(completion.Config{
			APIKey:  "test-key",
			BaseURL: srv.URL,
			Timeout: 50 * time.Millisecond,
		})

		start := time.Now()
		_, err := c.Complete(context.Background(), []completion.Message{
			{Role: completion.RoleUser, Content: "hi"},
		})
		if err == nil {
			t.Fatal("expected timeout error")
		}
		if elapsed := time.Since(start); elapsed > time.Second {
			t.Errorf("call took %v, expected fail-fast", elapsed)
		}
	})
}

func TestIsSafetyBlocked(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"response blocked by safety filters","type":"invalid_request_error"}}`))
	})

	c, _ := completion.New(completion.Config{APIKey: "test-key", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), []completion.Message{
		{Role: completion.RoleUser, Content: "hi"},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if !completion.IsSafetyBlocked(err) {
		t.Errorf("IsSafetyBlocked(%v) = false, want true", err)
	}
}
