package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Message: MessageSuccess,
		Data:    data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Message sends 200 JSON carrying only a message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Resp{Message: msg})
}

// Error sends an error body with the given status.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, Resp{Error: msg})
}

// BadRequest sends 400 response.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context, err error) {
	Error(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, msg string) {
	if msg == "" {
		msg = UnauthorizedMessage
	}
	Error(c, http.StatusUnauthorized, msg)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	Error(c, http.StatusForbidden, ForbiddenMessage)
}

// TooMany sends 429 response.
func TooMany(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, TooManyRequests)
}
