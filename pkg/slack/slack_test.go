package slack_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github-workflow-automation/pkg/slack"
)

func TestPostMessage(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode error: %v", err)
		}
		if got["text"] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client, err := slack.New(slack.Config{WebhookURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		if err := client.PostMessage(context.Background(), "hello"); err != nil {
			t.Fatalf("PostMessage() error = %v", err)
		}
		if got["text"] != "hello" {
			t.Errorf("text = %v", got["text"])
		}
	})

	t.Run("Server error", func(t *testing.T) {
		if err := client.PostMessage(context.Background(), "cause_500"); err == nil {
			t.Error("expected error on 500")
		}
	})
}

func TestNew_RequiresURL(t *testing.T) {
	if _, err := slack.New(slack.Config{}); err == nil {
		t.Error("expected error for empty webhook url")
	}
}
