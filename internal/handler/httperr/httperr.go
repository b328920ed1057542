// Package httperr is the single error body every API failure is rendered with:
// {"error": {"message": ...}, "requestId": ..., "detail": ...}.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is where the logging middleware stores the request id.
const RequestIDKey = "request_id"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	// lets an operator match a failed booking to the server log line
	RequestID string `json:"requestId,omitempty"`
	Detail    any    `json:"detail,omitempty"`
}

func New(c *gin.Context, status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	if c != nil {
		resp.RequestID = c.GetString(RequestIDKey)
	}
	return resp
}

// AbortWithError records err on the context for the logging middleware and
// writes msg, which is what the client sees, in place of err.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := New(c, status, msg, detail)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
