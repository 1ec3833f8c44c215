package room

import (
	"context"
	"errors"
	"sync"

	"github.com/parlorgames/bingohall/internal/models"
)

// memoryRepository implements the Repository interface with a process-wide
// in-memory map. This is the default store: all state is volatile and lost
// on restart.
type memoryRepository struct {
	mu    sync.RWMutex
	rooms map[string]*models.Room
}

// NewMemory creates a new in-memory room repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		rooms: make(map[string]*models.Room),
	}
}

// SaveRoom stores the room by ID
func (r *memoryRepository) SaveRoom(ctx context.Context, input *SaveRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}
	if input.Room.ID == "" {
		return errors.New("room ID cannot be empty")
	}

	r.mu.Lock()
	r.rooms[input.Room.ID] = input.Room
	r.mu.Unlock()

	return nil
}

// GetRoom retrieves a room by ID
func (r *memoryRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	r.mu.RLock()
	room, ok := r.rooms[input.RoomID]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrRoomNotFound
	}

	return room, nil
}
