package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github-workflow-automation/internal/automation"
	"github-workflow-automation/internal/notify"
	"github-workflow-automation/internal/reviewer"
	pkgLog "github-workflow-automation/pkg/log"
	pkgResponse "github-workflow-automation/pkg/response"
)

const testSecret = "s3cr3t"

type fakeGitHub struct {
	mu    sync.Mutex
	calls    []string
	err      error
	labelErr error
}

func (f *fakeGitHub) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeGitHub) AssignReviewers(ctx context.Context, prNumber int, usernames []string) error {
	return f.record(fmt.Sprintf("AssignReviewers(%d,%v)", prNumber, usernames))
}

func (f *fakeGitHub) AddLabel(ctx context.Context, number int, label string) error {
	if err := f.record(fmt.Sprintf("AddLabel(%d,%s)", number, label)); err != nil {
		return err
	}
	return f.labelErr
}

func (f *fakeGitHub) AssignIssue(ctx context.Context, issueNumber int, username string) error {
	return f.record(fmt.Sprintf("AssignIssue(%d,%s)", issueNumber, username))
}

type fakeNotifier struct {
	mu     sync.Mutex
	merged []notify.MergedPR
}

func (f *fakeNotifier) NotifyMerged(ctx context.Context, pr notify.MergedPR) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.merged = append(f.merged, pr)
}

func (f *fakeNotifier) Wait() {}

type testEnv struct {
	router   *gin.Engine
	gh       *fakeGitHub
	notifier *fakeNotifier
	rotator  reviewer.Rotator
}

func newTestEnv(t *testing.T, sec SecurityConfig) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rot, err := reviewer.New([]string{"alice", "bob"})
	if err != nil {
		t.Fatalf("reviewer.New() error = %v", err)
	}
	gh := &fakeGitHub{}
	n := &fakeNotifier{}
	l := pkgLog.NewNop()

	uc := automation.New(gh, rot, n, automation.Config{}, l)
	if sec.Secret == "" {
		sec.Secret = testSecret
	}
	h := NewHandler(uc, sec, l)

	r := gin.New()
	r.POST("/webhook", h.HandleGitHubWebhook)
	return &testEnv{router: r, gh: gh, notifier: n, rotator: rot}
}

type delivery struct {
	event     string
	body      string
	signature string
	header    string
	remote    string
}

func (e *testEnv) send(d delivery) (*httptest.ResponseRecorder, pkgResponse.Resp) {
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(d.body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(HeaderEvent, d.event)
	header := d.header
	if header == "" {
		header = HeaderSignature256
	}
	if d.signature != "" {
		req.Header.Set(header, d.signature)
	}
	if d.remote != "" {
		req.RemoteAddr = d.remote
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var resp pkgResponse.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func signed(event, body string) delivery {
	return delivery{event: event, body: body, signature: Sign(testSecret, []byte(body))}
}

func TestWebhook_PullRequestOpened(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})

	w, resp := env.send(signed("pull_request", `{"action":"opened","number":12,"pull_request":{"number":12,"title":"Add cache"}}`))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if resp.Message != MessageProcessed {
		t.Errorf("message = %q", resp.Message)
	}

	want := []string{"AssignReviewers(12,[alice])", "AddLabel(12,needs-review)"}
	if strings.Join(env.gh.calls, ";") != strings.Join(want, ";") {
		t.Errorf("calls = %v, want %v", env.gh.calls, want)
	}
	if next, _ := env.rotator.Next(); next != "bob" {
		t.Errorf("next reviewer = %s, want bob", next)
	}
}

func TestWebhook_MergedPullRequest(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})

	body := `{"action":"closed","number":42,"pull_request":{"number":42,"title":"Refactor auth","merged":true,
		"user":{"login":"alice"},"html_url":"https://github.com/acme/widgets/pull/42","changed_files":3}}`
	w, _ := env.send(signed("pull_request", body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(env.notifier.merged) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(env.notifier.merged))
	}
	if got := env.notifier.merged[0]; got.Number != 42 || got.Author != "alice" || got.ChangedFiles != 3 {
		t.Errorf("unexpected notification: %+v", got)
	}
	if len(env.gh.calls) != 0 {
		t.Errorf("unexpected github calls: %v", env.gh.calls)
	}
}

func TestWebhook_AssignMeComment(t *testing.T) {
	tests := []struct {
		body  string
		calls int
	}{
		{body: "Sure, /assign me please", calls: 1},
		{body: "assign someone", calls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			env := newTestEnv(t, SecurityConfig{})
			payload := fmt.Sprintf(`{"action":"created","issue":{"number":5},"comment":{"body":%q,"user":{"login":"dave"}}}`, tt.body)

			w, _ := env.send(signed("issue_comment", payload))
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}
			if len(env.gh.calls) != tt.calls {
				t.Fatalf("calls = %v", env.gh.calls)
			}
			if tt.calls == 1 && env.gh.calls[0] != "AssignIssue(5,dave)" {
				t.Errorf("call = %s", env.gh.calls[0])
			}
		})
	}
}

func TestWebhook_Signature(t *testing.T) {
	body := `{"action":"opened","issue":{"number":1}}`

	tests := []struct {
		name    string
		d       delivery
		status  int
		message string
	}{
		{
			name:    "missing",
			d:       delivery{event: "issues", body: body},
			status:  http.StatusUnauthorized,
			message: MessageNoSignature,
		},
		{
			name:    "wrong secret",
			d:       delivery{event: "issues", body: body, signature: Sign("other", []byte(body))},
			status:  http.StatusUnauthorized,
			message: MessageInvalidSignature,
		},
		{
			name:    "body tampered",
			d:       delivery{event: "issues", body: body + " ", signature: Sign(testSecret, []byte(body))},
			status:  http.StatusUnauthorized,
			message: MessageInvalidSignature,
		},
		{
			name:    "not hex",
			d:       delivery{event: "issues", body: body, signature: "sha256=zz"},
			status:  http.StatusUnauthorized,
			message: MessageInvalidSignature,
		},
		{
			name:   "legacy header",
			d:      delivery{event: "issues", body: body, signature: Sign(testSecret, []byte(body)), header: HeaderSignature},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, SecurityConfig{})
			w, resp := env.send(tt.d)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.message != "" && resp.Error != tt.message {
				t.Errorf("error = %q, want %q", resp.Error, tt.message)
			}
			if tt.status != http.StatusOK && len(env.gh.calls) != 0 {
				t.Errorf("collaborator called before authentication: %v", env.gh.calls)
			}
		})
	}
}

func TestWebhook_UnrecognizedEvent(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})

	w, resp := env.send(signed("push", `not even json`))
	if w.Code != http.StatusOK || resp.Message != MessageProcessed {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if len(env.gh.calls) != 0 {
		t.Errorf("unexpected calls: %v", env.gh.calls)
	}
}

func TestWebhook_InvalidPayload(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})

	w, resp := env.send(signed("issues", `{"action":`))
	if w.Code != http.StatusBadRequest || resp.Error != MessageInvalidPayload {
		t.Errorf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestWebhook_HandlerErrorIs500(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})
	env.gh.err = errors.New("github: 502")

	w, resp := env.send(signed("issues", `{"action":"opened","issue":{"number":1}}`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	if resp.Error != pkgResponse.DefaultErrorMessage {
		t.Errorf("error = %q", resp.Error)
	}
}

func TestWebhook_LabelFailureIs500(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})
	env.gh.labelErr = errors.New("403 resource not accessible by integration")

	w, resp := env.send(signed("pull_request", `{"action":"opened","number":12,"pull_request":{"number":12}}`))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if resp.Error != pkgResponse.DefaultErrorMessage {
		t.Errorf("error = %q", resp.Error)
	}

	want := []string{"AssignReviewers(12,[alice])", "AddLabel(12,needs-review)"}
	if strings.Join(env.gh.calls, ";") != strings.Join(want, ";") {
		t.Errorf("calls = %v, want %v", env.gh.calls, want)
	}
}

func TestWebhook_IPAllowlist(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{AllowedIPs: []string{"10.0.0.0/8"}})
	body := `{"action":"opened","issue":{"number":1}}`

	d := signed("issues", body)
	d.remote = "192.168.1.10:5000"
	if w, _ := env.send(d); w.Code != http.StatusForbidden {
		t.Errorf("outside allowlist: status = %d", w.Code)
	}

	d.remote = "10.1.2.3:5000"
	if w, _ := env.send(d); w.Code != http.StatusOK {
		t.Errorf("inside allowlist: status = %d", w.Code)
	}
}

func TestWebhook_RateLimit(t *testing.T) {
	// 10/min gives a burst of one.
	env := newTestEnv(t, SecurityConfig{RateLimitPerMin: 10})
	d := signed("push", `{}`)

	if w, _ := env.send(d); w.Code != http.StatusOK {
		t.Fatalf("first delivery: status = %d", w.Code)
	}
	w, resp := env.send(d)
	if w.Code != http.StatusTooManyRequests || resp.Error != pkgResponse.TooManyRequests {
		t.Errorf("second delivery: status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestWebhook_ConcurrentPullRequests(t *testing.T) {
	env := newTestEnv(t, SecurityConfig{})

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			env.send(signed("pull_request", fmt.Sprintf(`{"action":"opened","number":%d}`, n)))
		}(i)
	}
	wg.Wait()

	counts := map[string]int{}
	for _, c := range env.gh.calls {
		if strings.HasPrefix(c, "AssignReviewers") {
			counts[c[strings.Index(c, "[")+1:len(c)-2]]++
		}
	}
	if counts["alice"] != 10 || counts["bob"] != 10 {
		t.Errorf("uneven rotation under concurrency: %v", counts)
	}
}
