package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"gamecatalog/backend/internal/apperror"
	"gamecatalog/backend/internal/logging"

	"github.com/gin-gonic/gin"
)

// timestampFormat matches JavaScript's Date.toISOString.
const timestampFormat = "2006-01-02T15:04:05.000Z"

// ErrorResponse is the body written for every failed request.
// Message is a string, or a list of strings for validation failures.
type ErrorResponse struct {
	Timestamp  string      `json:"timestamp" example:"2024-01-01T00:00:00.000Z"`
	StatusCode int         `json:"statusCode" example:"404"`
	Message    interface{} `json:"message" swaggertype:"string" example:"Game #1 not found"`
	Error      string      `json:"error,omitempty" example:"Not Found"`
}

// ErrorHandler renders the last error pushed with c.Error as an
// ErrorResponse. It must be registered before any middleware or handler
// whose errors it formats.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			logging.Error().Err(err).
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Unhandled error")
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, NewErrorResponse(status, message))
	}
}

// Recovery turns panics into errors handled by ErrorHandler.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}

// NotFound is the NoRoute handler.
func NotFound(c *gin.Context) {
	_ = c.Error(&apperror.HTTPError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("Cannot %s %s", c.Request.Method, c.Request.URL.Path),
	})
}

func NewErrorResponse(status int, message interface{}) ErrorResponse {
	return ErrorResponse{
		Timestamp:  time.Now().UTC().Format(timestampFormat),
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

func classify(err error) (int, interface{}) {
	var (
		notFound *apperror.NotFoundError
		conflict *apperror.ConflictError
		httpErr  *apperror.HTTPError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error()
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Message
	case errors.As(err, &httpErr):
		if len(httpErr.Messages) > 0 {
			return httpErr.Status, httpErr.Messages
		}
		return httpErr.Status, httpErr.Message
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
