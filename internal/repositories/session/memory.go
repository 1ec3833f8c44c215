package session

import (
	"context"
	"errors"
	"sync"

	"github.com/parlorgames/bingohall/internal/models"
)

// memoryRepository implements the Repository interface with an in-memory map
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemory creates a new in-memory session registry
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// BindSession stores the binding keyed by connection ID
func (r *memoryRepository) BindSession(ctx context.Context, input *BindSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}
	if input.Session.ConnectionID == "" {
		return errors.New("connection ID cannot be empty")
	}

	r.mu.Lock()
	r.sessions[input.Session.ConnectionID] = input.Session
	r.mu.Unlock()

	return nil
}

// GetSession retrieves the binding for a connection
func (r *memoryRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.ConnectionID == "" {
		return nil, errors.New("input and connection ID cannot be empty")
	}

	r.mu.RLock()
	s, ok := r.sessions[input.ConnectionID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// DeleteSession discards the binding for a connection. Deleting a
// connection that was never bound is not an error.
func (r *memoryRepository) DeleteSession(ctx context.Context, input *DeleteSessionInput) error {
	if input == nil || input.ConnectionID == "" {
		return errors.New("input and connection ID cannot be empty")
	}

	r.mu.Lock()
	delete(r.sessions, input.ConnectionID)
	r.mu.Unlock()

	return nil
}
