package room

import (
	"github.com/parlorgames/bingohall/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_broadcaster.go github.com/parlorgames/bingohall/internal/services/room Broadcaster

// EventType identifies a state-change notification
type EventType string

const (
	// EventParticipantJoined announces a new participant to the room
	EventParticipantJoined EventType = "participantJoined"

	// EventNumberDrawn announces a freshly drawn number and the full sequence
	EventNumberDrawn EventType = "numberDrawn"

	// EventBingo announces a participant whose card is fully marked
	EventBingo EventType = "bingo"

	// EventDrawReset announces that the host cleared the draw sequence
	EventDrawReset EventType = "drawReset"
)

// Event is a state-change notification fanned out to a room's subscribers
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}

// Broadcaster fans out state-change notifications to every connection
// subscribed to a room. Events for a given room must reach subscribers in
// the order they were published. The concrete transport lives in the
// handlers layer.
type Broadcaster interface {
	BroadcastToRoom(roomID string, event *Event)
}

// ParticipantJoinedPayload is the payload for EventParticipantJoined
type ParticipantJoinedPayload struct {
	Participant      *models.Participant `json:"participant"`
	ParticipantCount int                 `json:"participantCount"`
}

// NumberDrawnPayload is the payload for EventNumberDrawn
type NumberDrawnPayload struct {
	Number       int   `json:"number"`
	DrawnNumbers []int `json:"drawnNumbers"`
	TotalDrawn   int   `json:"totalDrawn"`
}

// BingoPayload is the payload for EventBingo
type BingoPayload struct {
	ParticipantID   string `json:"participantId"`
	ParticipantName string `json:"participantName"`
}

// DrawResetPayload is the payload for EventDrawReset
type DrawResetPayload struct {
	Room *models.Room `json:"room"`
}
