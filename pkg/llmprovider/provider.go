package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized LLM generation request
type Request struct {
	SystemInstruction *Message
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role  string // "user", "assistant", "system"
	Parts []Part
}

// Part represents a text segment of a message
type Part struct {
	Text string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      Message
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Text joins the text parts of the response.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	texts := make([]string, 0, len(r.Content.Parts))
	for _, p := range r.Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "")
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserText builds a single-turn request from a system prompt and a user prompt.
func UserText(system, prompt string) *Request {
	req := &Request{
		Messages: []Message{{Role: "user", Parts: []Part{{Text: prompt}}}},
	}
	if system != "" {
		req.SystemInstruction = &Message{Role: "system", Parts: []Part{{Text: system}}}
	}
	return req
}
