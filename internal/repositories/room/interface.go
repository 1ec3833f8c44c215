package room

import (
	"context"

	"github.com/parlorgames/bingohall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/parlorgames/bingohall/internal/repositories/room Repository

// Repository defines the storage interface for rooms
type Repository interface {
	// SaveRoom persists a room snapshot
	SaveRoom(ctx context.Context, input *SaveRoomInput) error

	// GetRoom retrieves a room by ID
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)
}
