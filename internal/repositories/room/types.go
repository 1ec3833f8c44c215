package room

import (
	"errors"

	"github.com/parlorgames/bingohall/internal/models"
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// SaveRoomInput contains parameters for persisting a room
type SaveRoomInput struct {
	// Room is the room to save
	Room *models.Room
}

// GetRoomInput contains parameters for retrieving a room
type GetRoomInput struct {
	// RoomID is the unique identifier of the room
	RoomID string
}
