package session

import (
	"context"

	"github.com/parlorgames/bingohall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/parlorgames/bingohall/internal/repositories/session Repository

// Repository defines the registry of live connection bindings. Sessions are
// transient routing metadata and are never persisted, so the only
// implementation is in-memory.
type Repository interface {
	// BindSession stores the binding for a connection, replacing any prior
	// binding for the same connection
	BindSession(ctx context.Context, input *BindSessionInput) error

	// GetSession retrieves the binding for a connection
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession discards the binding for a connection
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
