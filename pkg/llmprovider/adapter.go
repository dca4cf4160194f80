package llmprovider

import (
	"context"
	"fmt"

	"github-workflow-automation/pkg/deepseek"
	"github-workflow-automation/pkg/gemini"
	"github-workflow-automation/pkg/qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          make([]gemini.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i := range req.Messages {
		geminiReq.Messages = append(geminiReq.Messages, *convertToGeminiContent(&req.Messages[i]))
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: resp.Content.Role},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	for _, p := range resp.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          make([]qwen.Content, 0, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}
	for i := range req.Messages {
		qwenReq.Messages = append(qwenReq.Messages, *convertToQwenContent(&req.Messages[i]))
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, err
	}

	out := &Response{
		Content:      Message{Role: resp.Content.Role},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	for _, p := range resp.Content.Parts {
		out.Content.Parts = append(out.Content.Parts, Part{Text: p.Text})
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return "qwen"
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek to llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
}

// NewDeepSeekAdapter creates a new DeepSeek adapter
func NewDeepSeekAdapter(client deepseek.IDeepSeek) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	deepseekReq := &deepseek.Request{
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		deepseekReq.Messages = append(deepseekReq.Messages, deepseek.Message{
			Role:    "system",
			Content: joinParts(req.SystemInstruction.Parts),
		})
	}
	for _, msg := range req.Messages {
		role := msg.Role
		if role == "" {
			role = "user"
		}
		deepseekReq.Messages = append(deepseekReq.Messages, deepseek.Message{
			Role:    role,
			Content: joinParts(msg.Parts),
		})
	}

	resp, err := a.client.GenerateContent(ctx, deepseekReq)
	if err != nil {
		return nil, fmt.Errorf("deepseek: %w", err)
	}

	out := &Response{
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0].Message
		out.Content = Message{Role: choice.Role, Parts: []Part{{Text: choice.Content}}}
	}
	return out, nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return "deepseek"
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}

func joinParts(parts []Part) string {
	var out string
	for i, p := range parts {
		if i > 0 {
			out += "\n"
		}
		out += p.Text
	}
	return out
}
