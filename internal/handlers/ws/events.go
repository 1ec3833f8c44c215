package ws

import (
	"encoding/json"

	"github.com/parlorgames/bingohall/internal/models"
	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

// Inbound event types
const (
	eventJoinAsHost        = "joinAsHost"
	eventJoinAsParticipant = "joinAsParticipant"
	eventDrawNumber        = "drawNumber"
	eventMarkNumber        = "markNumber"
	eventResetDraw         = "resetDraw"
	eventGetRoomState      = "getRoomState"
)

// Outbound unicast event types. Broadcast types live with the room service.
const (
	eventRoomJoined   roomService.EventType = "roomJoined"
	eventNumberMarked roomService.EventType = "numberMarked"
	eventRoomState    roomService.EventType = "roomState"
	eventError        roomService.EventType = "error"
)

// envelope is the wire format for inbound frames
type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// joinAsHostPayload identifies the room a host connection rejoins
type joinAsHostPayload struct {
	RoomID            string `json:"roomId"`
	HostParticipantID string `json:"hostParticipantId"`
}

// joinAsParticipantPayload identifies the room and participant a player
// connection acts as
type joinAsParticipantPayload struct {
	RoomID        string `json:"roomId"`
	ParticipantID string `json:"participantId"`
}

// roomIDPayload carries operations that only need a room
type roomIDPayload struct {
	RoomID string `json:"roomId"`
}

// markNumberPayload carries a mark toggle request
type markNumberPayload struct {
	RoomID        string `json:"roomId"`
	ParticipantID string `json:"participantId"`
	Number        int    `json:"number"`
}

// roomJoinedPayload confirms a join to the acting connection
type roomJoinedPayload struct {
	Room        *models.Room        `json:"room"`
	IsHost      bool                `json:"isHost"`
	Participant *models.Participant `json:"participant,omitempty"`
}

// numberMarkedPayload reports mark state to the acting connection
type numberMarkedPayload struct {
	Number        int   `json:"number"`
	MarkedNumbers []int `json:"markedNumbers"`
	HasBingo      bool  `json:"hasBingo"`
}

// roomStatePayload answers a state query for the acting connection
type roomStatePayload struct {
	Room        *models.Room        `json:"room"`
	IsHost      bool                `json:"isHost"`
	Participant *models.Participant `json:"participant,omitempty"`
}

// errorPayload carries a short human-readable failure description
type errorPayload struct {
	Message string `json:"message"`
}
