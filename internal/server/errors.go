// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/suggestions"
)

// ErrSessionNotFound indicates a session id with no live session
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// ErrUnknownSection indicates a section path segment that is not a list section
type ErrUnknownSection struct {
	Section string
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown section: %s", e.Section)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, suggestions.ErrUnavailable) {
		return http.StatusServiceUnavailable
	}

	var providerErr *suggestions.ProviderError
	if errors.As(err, &providerErr) {
		return http.StatusBadGateway
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity
	}

	switch err.(type) {
	case *ErrSessionNotFound, *ErrUnknownSection:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
