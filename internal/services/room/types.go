package room

import (
	"github.com/parlorgames/bingohall/internal/caller"
	"github.com/parlorgames/bingohall/internal/card"
	"github.com/parlorgames/bingohall/internal/common/clock"
	"github.com/parlorgames/bingohall/internal/common/uuid"
	"github.com/parlorgames/bingohall/internal/models"
	roomRepo "github.com/parlorgames/bingohall/internal/repositories/room"
)

const (
	// DefaultCardSize is the number of numbers dealt per card when the
	// host does not choose one
	DefaultCardSize = 24

	// MaxNumber is the highest drawable number
	MaxNumber = 75
)

// Config holds configuration for the room service
type Config struct {
	// DefaultCardSize overrides the card size used when a room is created
	// without one
	DefaultCardSize int

	// Repository dependencies
	RoomRepo roomRepo.Repository

	// Service dependencies
	CardGenerator card.Generator
	NumberCaller  caller.Caller
	Broadcaster   Broadcaster
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	// HostName is the display name of the host creating the room
	HostName string

	// CardSize is the number of numbers per participant card. Zero means
	// the default.
	CardSize int
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// RoomID is the unique identifier for the created room
	RoomID string

	// Room is the created room
	Room *models.Room
}

// GetRoomInput contains parameters for fetching a room
type GetRoomInput struct {
	// RoomID is the unique identifier of the room
	RoomID string
}

// GetRoomOutput contains the fetched room
type GetRoomOutput struct {
	// Room is the room snapshot
	Room *models.Room
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	// RoomID is the unique identifier of the room to join
	RoomID string

	// ParticipantName is the display name of the joining player
	ParticipantName string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// ParticipantID is the server-generated identifier for the new
	// participant
	ParticipantID string

	// Participant is the new participant, card included
	Participant *models.Participant

	// Room is the room after the join
	Room *models.Room
}

// DrawNumberInput contains parameters for drawing a number
type DrawNumberInput struct {
	// RoomID is the unique identifier of the room
	RoomID string

	// Role is the caller's session role. Only the host may draw.
	Role models.SessionRole
}

// DrawNumberOutput contains the result of drawing a number
type DrawNumberOutput struct {
	// Number is the freshly drawn number
	Number int

	// DrawnNumbers is the full draw sequence, sorted ascending
	DrawnNumbers []int

	// TotalDrawn is the count of numbers drawn so far
	TotalDrawn int
}

// ResetDrawInput contains parameters for resetting a room's draw state
type ResetDrawInput struct {
	// RoomID is the unique identifier of the room
	RoomID string

	// Role is the caller's session role. Only the host may reset.
	Role models.SessionRole
}

// ResetDrawOutput contains the result of a reset
type ResetDrawOutput struct {
	// Room is the room after the reset
	Room *models.Room
}

// ToggleMarkInput contains parameters for toggling a mark
type ToggleMarkInput struct {
	// RoomID is the unique identifier of the room
	RoomID string

	// ParticipantID is the acting participant
	ParticipantID string

	// Number is the card number to toggle
	Number int
}

// ToggleMarkOutput contains the result of toggling a mark
type ToggleMarkOutput struct {
	// Number is the toggled number
	Number int

	// MarkedNumbers is the participant's marked set after the toggle
	MarkedNumbers []int

	// HasBingo reports whether every number on the card is now marked
	HasBingo bool
}
