package middleware

import (
	"log/slog"
	"net/http"

	"gpark/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error when a handler recorded one
// without writing a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		slog.Error("request finished without a response",
			"request_id", GetRequestID(c),
			"errors", c.Errors.String())

		c.JSON(http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				c.JSON(http.StatusInternalServerError, httperr.New(c, http.StatusInternalServerError, "Internal server error", nil))
				c.Abort()
			}
		}()
		c.Next()
	}
}
