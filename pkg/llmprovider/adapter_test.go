package llmprovider

import (
	"context"
	"testing"

	"github-workflow-automation/pkg/deepseek"
	"github-workflow-automation/pkg/gemini"
	"github-workflow-automation/pkg/qwen"
)

type fakeGemini struct{ got *gemini.Request }

func (f *fakeGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	f.got = req
	return &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "from "}, {Text: "gemini"}}},
		Usage:   &gemini.Usage{TotalTokens: 3},
	}, nil
}
func (f *fakeGemini) Model() string { return "gemini-test" }

type fakeQwen struct{ got *qwen.Request }

func (f *fakeQwen) GenerateContent(ctx context.Context, req *qwen.Request) (*qwen.Response, error) {
	f.got = req
	return &qwen.Response{Content: qwen.Content{Parts: []qwen.Part{{Text: "from qwen"}}}}, nil
}
func (f *fakeQwen) Model() string { return "qwen-test" }

type fakeDeepSeek struct{ got *deepseek.Request }

func (f *fakeDeepSeek) GenerateContent(ctx context.Context, req *deepseek.Request) (*deepseek.Response, error) {
	f.got = req
	return &deepseek.Response{
		Choices: []deepseek.Choice{{Message: deepseek.Message{Role: "assistant", Content: "from deepseek"}}},
		Usage:   deepseek.Usage{TotalTokens: 5},
	}, nil
}
func (f *fakeDeepSeek) Model() string { return "deepseek-test" }

func TestAdapters(t *testing.T) {
	req := UserText("be brief", "summarize this")
	ctx := context.Background()

	g := &fakeGemini{}
	resp, err := NewGeminiAdapter(g).GenerateContent(ctx, req)
	if err != nil {
		t.Fatalf("gemini adapter error: %v", err)
	}
	if resp.Text() != "from gemini" || resp.ProviderName != "gemini" || resp.Usage.TotalTokens != 3 {
		t.Errorf("unexpected gemini response: %+v", resp)
	}
	if g.got.SystemInstruction.Parts[0].Text != "be brief" || g.got.Messages[0].Parts[0].Text != "summarize this" {
		t.Errorf("unexpected gemini request: %+v", g.got)
	}

	q := &fakeQwen{}
	resp, err = NewQwenAdapter(q).GenerateContent(ctx, req)
	if err != nil {
		t.Fatalf("qwen adapter error: %v", err)
	}
	if resp.Text() != "from qwen" || resp.ModelName != "qwen-test" || resp.Usage == nil {
		t.Errorf("unexpected qwen response: %+v", resp)
	}

	d := &fakeDeepSeek{}
	resp, err = NewDeepSeekAdapter(d).GenerateContent(ctx, req)
	if err != nil {
		t.Fatalf("deepseek adapter error: %v", err)
	}
	if resp.Text() != "from deepseek" || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected deepseek response: %+v", resp)
	}
	if len(d.got.Messages) != 2 || d.got.Messages[0].Role != "system" || d.got.Messages[1].Role != "user" {
		t.Errorf("unexpected deepseek messages: %+v", d.got.Messages)
	}
}

func TestResponseText_Nil(t *testing.T) {
	var r *Response
	if r.Text() != "" {
		t.Error("nil response should have empty text")
	}
}
