package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitReturnsServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/add" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		if r.PostFormValue("topic") != "T" || r.PostFormValue("subtopic") != "S" {
			t.Errorf("unexpected form values: %v", r.PostForm)
		}
		w.Write([]byte("Data added successfully!"))
	}))
	defer server.Close()

	message, err := NewHTTPClient(server.URL, server.Client()).Submit(context.Background(), "T", "S", "body")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if message != "Data added successfully!" {
		t.Fatalf("message = %q", message)
	}
}

func TestSubmitNon200IsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Failed to add subtopic: UNIQUE constraint failed", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewHTTPClient(server.URL, server.Client()).Submit(context.Background(), "T", "S", "body")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", apiErr.StatusCode)
	}
}

func TestSubmitUnreachableServer(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", nil)
	if _, err := c.Submit(context.Background(), "T", "S", "body"); err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
