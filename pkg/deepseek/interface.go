package deepseek

import "context"

const (
	DefaultBaseURL = "https://api.deepseek.com/v1"
	DefaultModel   = "deepseek-chat"
)

// IDeepSeek is implemented by *Client.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IDeepSeek = (*Client)(nil)
