package response

const (
	MessageSuccess      = "success"
	DefaultErrorMessage = "Internal server error"
	UnauthorizedMessage = "Unauthorized"
	ForbiddenMessage    = "Forbidden"
	TooManyRequests     = "Rate limit exceeded"
)

// Resp is the JSON body returned by every endpoint.
// Success bodies carry Message, failures carry Error.
type Resp struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Data    any    `json:"data,omitempty"`
}
