package room

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/parlorgames/bingohall/internal/services/room Service

// Service defines the interface for room operations
type Service interface {
	// CreateRoom creates a new room hosted by the named caller
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// GetRoom returns a snapshot of an existing room
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// JoinRoom admits a participant and deals them a card
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// DrawNumber draws the next unique number for a room
	DrawNumber(ctx context.Context, input *DrawNumberInput) (*DrawNumberOutput, error)

	// ResetDraw clears the draw sequence and every participant's marks
	ResetDraw(ctx context.Context, input *ResetDrawInput) (*ResetDrawOutput, error)

	// ToggleMark toggles a number on a participant's card and evaluates
	// the win condition
	ToggleMark(ctx context.Context, input *ToggleMarkInput) (*ToggleMarkOutput, error)
}
