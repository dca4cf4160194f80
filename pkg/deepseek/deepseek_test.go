package deepseek_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github-workflow-automation/pkg/deepseek"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req deepseek.Request
		json.NewDecoder(r.Body).Decode(&req)

		if req.Messages[0].Content == "cause_error" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "bad prompt", "type": "invalid_request_error"}}`))
			return
		}
		if req.Model != deepseek.DefaultModel {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"message": "wrong model"}}`))
			return
		}
		w.Write([]byte(`{"choices": [{"message": {"role": "assistant", "content": "done"}}], "usage": {"total_tokens": 4}}`))
	}))
	defer ts.Close()

	client, err := deepseek.New(deepseek.Config{APIKey: "k", BaseURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	req := &deepseek.Request{Messages: []deepseek.Message{{Role: "user", Content: "hi"}}}
	resp, err := client.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if resp.Choices[0].Message.Content != "done" || resp.Usage.TotalTokens != 4 {
		t.Errorf("unexpected response: %+v", resp)
	}
	if req.Model != "" {
		t.Errorf("caller's request must not be mutated, Model = %q", req.Model)
	}

	_, err = client.GenerateContent(context.Background(), &deepseek.Request{
		Messages: []deepseek.Message{{Role: "user", Content: "cause_error"}},
	})
	if err == nil || !strings.Contains(err.Error(), "bad prompt") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestNew_RequiresKey(t *testing.T) {
	if _, err := deepseek.New(deepseek.Config{}); err == nil {
		t.Error("expected error for missing API key")
	}
}
