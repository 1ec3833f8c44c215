package session

import (
	"errors"

	"github.com/parlorgames/bingohall/internal/models"
)

// ErrSessionNotFound is returned when a connection has no binding
var ErrSessionNotFound = errors.New("session not found")

// BindSessionInput contains parameters for binding a connection
type BindSessionInput struct {
	// Session is the binding to store
	Session *models.Session
}

// GetSessionInput contains parameters for looking up a binding
type GetSessionInput struct {
	// ConnectionID is the unique identifier of the connection
	ConnectionID string
}

// DeleteSessionInput contains parameters for discarding a binding
type DeleteSessionInput struct {
	// ConnectionID is the unique identifier of the connection
	ConnectionID string
}
