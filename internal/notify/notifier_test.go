package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github-workflow-automation/internal/summarizer"
	pkgLog "github-workflow-automation/pkg/log"
	"github-workflow-automation/pkg/slack"
)

type mockSummarizer struct {
	mu      sync.Mutex
	summary string
	err     error
	calls   int
	got     summarizer.Input
}

func (m *mockSummarizer) Summarize(ctx context.Context, input summarizer.Input) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.got = input
	return m.summary, m.err
}

type mockSink struct {
	mu    sync.Mutex
	name  string
	err   error
	posts []string
}

func (m *mockSink) Name() string { return m.name }

func (m *mockSink) Post(ctx context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = append(m.posts, text)
	return m.err
}

var mergedPR = MergedPR{
	Number:       42,
	Title:        "Refactor auth",
	Body:         "Splits the session store",
	Author:       "alice",
	URL:          "https://github.com/acme/widgets/pull/42",
	ChangedFiles: 4,
	Additions:    120,
	Deletions:    80,
}

func TestFormatMerged(t *testing.T) {
	want := "🎉 PR #42 \"Refactor auth\" has been merged!\nAuthor: alice\nURL: https://github.com/acme/widgets/pull/42"
	if got := FormatMerged(mergedPR, ""); got != want {
		t.Errorf("FormatMerged() without summary =\n%q\nwant\n%q", got, want)
	}

	withSummary := want + "\n\n🤖 AI Summary:\nRefactored auth module."
	if got := FormatMerged(mergedPR, "  Refactored auth module.\n"); got != withSummary {
		t.Errorf("FormatMerged() with summary =\n%q\nwant\n%q", got, withSummary)
	}
}

func TestNotifyMerged_WithSummary(t *testing.T) {
	sum := &mockSummarizer{summary: "Refactored auth module."}
	sink := &mockSink{name: "slack"}
	n := New(Config{Sinks: []Sink{sink}, Summarizer: sum, Logger: pkgLog.NewNop()})

	n.NotifyMerged(context.Background(), mergedPR)
	n.Wait()

	if len(sink.posts) != 1 {
		t.Fatalf("expected exactly 1 post, got %d", len(sink.posts))
	}
	post := sink.posts[0]
	for _, want := range []string{"#42", "Refactor auth", "alice", mergedPR.URL, "Refactored auth module."} {
		if !strings.Contains(post, want) {
			t.Errorf("post missing %q:\n%s", want, post)
		}
	}
	if sum.got.ChangedFiles != 4 || sum.got.Additions != 120 || sum.got.Deletions != 80 || sum.got.Body != mergedPR.Body {
		t.Errorf("summarizer got %+v", sum.got)
	}
}

func TestNotifyMerged_SummarizerFails(t *testing.T) {
	sum := &mockSummarizer{err: errors.New("model unavailable")}
	sink := &mockSink{name: "slack"}
	n := New(Config{Sinks: []Sink{sink}, Summarizer: sum, Logger: pkgLog.NewNop()})

	n.NotifyMerged(context.Background(), mergedPR)
	n.Wait()

	if len(sink.posts) != 1 {
		t.Fatalf("expected exactly 1 post, got %d", len(sink.posts))
	}
	if strings.Contains(sink.posts[0], "AI Summary") {
		t.Errorf("post should not contain a summary section:\n%s", sink.posts[0])
	}
}

func TestNotifyMerged_NoSinks(t *testing.T) {
	sum := &mockSummarizer{summary: "unused"}
	n := New(Config{Summarizer: sum, Logger: pkgLog.NewNop()})

	n.NotifyMerged(context.Background(), mergedPR)
	n.Wait()

	if sum.calls != 0 {
		t.Errorf("summarizer called %d times with no sink configured", sum.calls)
	}
}

func TestNotifyMerged_SinkFailureIsSwallowed(t *testing.T) {
	failing := &mockSink{name: "slack", err: errors.New("503")}
	ok := &mockSink{name: "telegram"}
	n := New(Config{Sinks: []Sink{failing, nil, ok}, Logger: pkgLog.NewNop()})

	n.NotifyMerged(context.Background(), mergedPR)
	n.Wait()

	if len(failing.posts) != 1 || len(ok.posts) != 1 {
		t.Errorf("expected one attempt per sink, got %d and %d", len(failing.posts), len(ok.posts))
	}
}

func TestNotifyMerged_OutlivesRequestContext(t *testing.T) {
	sink := &mockSink{name: "slack"}
	n := New(Config{Sinks: []Sink{sink}, Timeout: time.Second, Logger: pkgLog.NewNop()})

	ctx, cancel := context.WithCancel(context.Background())
	n.NotifyMerged(ctx, mergedPR)
	cancel()
	n.Wait()

	if len(sink.posts) != 1 {
		t.Errorf("announcement should survive request cancellation, got %d posts", len(sink.posts))
	}
}

func TestSlackSink_EndToEnd(t *testing.T) {
	var (
		mu    sync.Mutex
		texts []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Text string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		mu.Lock()
		texts = append(texts, body.Text)
		mu.Unlock()
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client, err := slack.New(slack.Config{WebhookURL: ts.URL, HTTPClient: ts.Client()})
	if err != nil {
		t.Fatalf("slack.New() error = %v", err)
	}

	n := New(Config{
		Sinks:      []Sink{NewSlackSink(client)},
		Summarizer: &mockSummarizer{summary: "Refactored auth module."},
		Logger:     pkgLog.NewNop(),
	})
	n.NotifyMerged(context.Background(), mergedPR)
	n.Wait()

	if len(texts) != 1 {
		t.Fatalf("expected exactly 1 webhook POST, got %d", len(texts))
	}
	if !strings.HasSuffix(texts[0], "🤖 AI Summary:\nRefactored auth module.") {
		t.Errorf("unexpected slack text:\n%s", texts[0])
	}
}
