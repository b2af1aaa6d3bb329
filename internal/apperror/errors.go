// Package apperror defines the errors that cross from the resource managers
// and handlers to the HTTP error filter.
package apperror

import (
	"fmt"
	"net/http"
)

// NotFoundError reports that no row of Resource exists with ID.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s #%d not found", e.Resource, e.ID)
}

func NotFound(resource string, id uint) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// ConflictError reports a write rejected by a uniqueness constraint.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// HTTPError carries an explicit status and message(s) to the client.
// Messages is used instead of Message when several problems are reported.
type HTTPError struct {
	Status   int
	Message  string
	Messages []string
}

func (e *HTTPError) Error() string {
	if len(e.Messages) > 0 {
		return fmt.Sprintf("%d: %v", e.Status, e.Messages)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// BadRequest returns a 400 error with a single message.
func BadRequest(message string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: message}
}

// ValidationFailed returns a 400 error listing every failed constraint.
func ValidationFailed(messages []string) error {
	return &HTTPError{Status: http.StatusBadRequest, Messages: messages}
}

func Unauthorized(message string) error {
	return &HTTPError{Status: http.StatusUnauthorized, Message: message}
}
