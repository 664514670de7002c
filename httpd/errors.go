package httpd

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uhppoted/uhppoted-app-links/links"
)

type ErrorCode string

const (
	ErrorCodeInvalidRequest   ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidReference ErrorCode = "INVALID_REFERENCE"
	ErrorCodePrecondition     ErrorCode = "PRECONDITION_VIOLATION"
	ErrorCodeUnauthorised     ErrorCode = "UNAUTHORISED"
	ErrorCodeRemoteCall       ErrorCode = "REMOTE_CALL_FAILED"
	ErrorCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// APIError is the JSON error response.
type APIError struct {
	Error     string    `json:"error"`
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

func SendError(c *gin.Context, status int, code ErrorCode, message string) {
	response := APIError{
		Error:     "Request failed",
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}

	if v, ok := c.Get(RequestID); ok {
		if id, ok := v.(string); ok {
			response.RequestID = id
		}
	}

	c.AbortWithStatusJSON(status, response)
}

// sendServiceError maps the links error kinds to HTTP status codes.
func sendServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, links.ErrInvalidReference):
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidReference, err.Error())

	case errors.Is(err, links.ErrPrecondition):
		SendError(c, http.StatusConflict, ErrorCodePrecondition, err.Error())

	case errors.Is(err, links.ErrAuth):
		SendError(c, http.StatusUnauthorized, ErrorCodeUnauthorised, err.Error())

	case errors.Is(err, links.ErrRemoteCall):
		SendError(c, http.StatusBadGateway, ErrorCodeRemoteCall, err.Error())

	default:
		SendError(c, http.StatusInternalServerError, ErrorCodeInternalError, err.Error())
	}
}
