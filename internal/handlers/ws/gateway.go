package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/parlorgames/bingohall/internal/common/uuid"
	"github.com/parlorgames/bingohall/internal/models"
	sessionRepo "github.com/parlorgames/bingohall/internal/repositories/session"
	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

// Config holds configuration for the websocket gateway
type Config struct {
	// Hub fans broadcasts out to subscribed connections
	Hub *Hub

	// RoomService executes the game-state operations
	RoomService roomService.Service

	// SessionRepo is the connection-to-room registry
	SessionRepo sessionRepo.Repository

	// UUIDGenerator mints connection IDs
	UUIDGenerator uuid.UUID
}

// Gateway is the realtime event surface. It upgrades HTTP requests to
// websocket connections, dispatches inbound events to the room service, and
// unicasts responses and errors back to the acting connection. Failures are
// never broadcast.
type Gateway struct {
	hub           *Hub
	roomService   roomService.Service
	sessionRepo   sessionRepo.Repository
	uuidGenerator uuid.UUID
	upgrader      websocket.Upgrader
}

// New creates a new websocket gateway
func New(cfg *Config) (*Gateway, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}
	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}
	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	return &Gateway{
		hub:           cfg.Hub,
		roomService:   cfg.RoomService,
		sessionRepo:   cfg.SessionRepo,
		uuidGenerator: cfg.UUIDGenerator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Identity is a caller-supplied token; origin policy is not
			// part of this surface.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}, nil
}

// ServeHTTP upgrades the request and runs the connection's pumps
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := newClient(g.uuidGenerator.NewUUID(), g, conn)
	go c.writePump()
	go c.readPump()
}

// handleMessage dispatches one inbound frame. Every failure path ends in a
// unicast error to the acting connection; room state is untouched by then.
func (g *Gateway) handleMessage(c *Client, b []byte) {
	ctx := context.Background()

	var e envelope
	if err := json.Unmarshal(b, &e); err != nil {
		g.unicastError(c, fmt.Errorf("malformed event: %w", err))
		return
	}

	switch e.Type {
	case eventJoinAsHost:
		g.handleJoinAsHost(ctx, c, e.Payload)
	case eventJoinAsParticipant:
		g.handleJoinAsParticipant(ctx, c, e.Payload)
	case eventDrawNumber:
		g.handleDrawNumber(ctx, c, e.Payload)
	case eventMarkNumber:
		g.handleMarkNumber(ctx, c, e.Payload)
	case eventResetDraw:
		g.handleResetDraw(ctx, c, e.Payload)
	case eventGetRoomState:
		g.handleGetRoomState(ctx, c, e.Payload)
	default:
		g.unicastError(c, fmt.Errorf("unknown event type %q", e.Type))
	}
}

// handleDisconnect discards the session binding and fanout membership for a
// closed connection. Room and participant data are retained.
func (g *Gateway) handleDisconnect(c *Client) {
	g.hub.RemoveClient(c)
	if err := g.sessionRepo.DeleteSession(context.Background(), &sessionRepo.DeleteSessionInput{
		ConnectionID: c.id,
	}); err != nil {
		log.Printf("failed to discard session for connection %s: %v", c.id, err)
	}
}

func (g *Gateway) handleJoinAsHost(ctx context.Context, c *Client, raw json.RawMessage) {
	var p joinAsHostPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		g.unicastError(c, fmt.Errorf("malformed payload: %w", err))
		return
	}

	out, err := g.roomService.GetRoom(ctx, &roomService.GetRoomInput{RoomID: p.RoomID})
	if err != nil {
		g.unicastError(c, err)
		return
	}

	if err := g.sessionRepo.BindSession(ctx, &sessionRepo.BindSessionInput{
		Session: &models.Session{
			ConnectionID:  c.id,
			RoomID:        p.RoomID,
			ParticipantID: p.HostParticipantID,
			Role:          models.SessionRoleHost,
		},
	}); err != nil {
		g.unicastError(c, err)
		return
	}
	g.hub.Subscribe(p.RoomID, c)

	c.unicast(&roomService.Event{
		Type: eventRoomJoined,
		Payload: &roomJoinedPayload{
			Room:   out.Room,
			IsHost: true,
		},
	})
}

func (g *Gateway) handleJoinAsParticipant(ctx context.Context, c *Client, raw json.RawMessage) {
	var p joinAsParticipantPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		g.unicastError(c, fmt.Errorf("malformed payload: %w", err))
		return
	}

	out, err := g.roomService.GetRoom(ctx, &roomService.GetRoomInput{RoomID: p.RoomID})
	if err != nil {
		g.unicastError(c, err)
		return
	}

	participant, ok := out.Room.Participants[p.ParticipantID]
	if !ok {
		g.unicastError(c, roomService.ErrParticipantNotFound)
		return
	}

	if err := g.sessionRepo.BindSession(ctx, &sessionRepo.BindSessionInput{
		Session: &models.Session{
			ConnectionID:  c.id,
			RoomID:        p.RoomID,
			ParticipantID: p.ParticipantID,
			Role:          models.SessionRoleParticipant,
		},
	}); err != nil {
		g.unicastError(c, err)
		return
	}
	g.hub.Subscribe(p.RoomID, c)

	c.unicast(&roomService.Event{
		Type: eventRoomJoined,
		Payload: &roomJoinedPayload{
			Room:        out.Room,
			IsHost:      false,
			Participant: participant,
		},
	})
}

func (g *Gateway) handleDrawNumber(ctx context.Context, c *Client, raw json.RawMessage) {
	var p roomIDPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		g.unicastError(c, fmt.Errorf("malformed payload: %w", err))
		return
	}

	// The broadcast of the drawn number is the service's side effect; the
	// gateway only surfaces failures.
	if _, err := g.roomService.DrawNumber(ctx, &roomService.DrawNumberInput{
		RoomID: p.RoomID,
		Role:   g.sessionRole(ctx, c),
	}); err != nil {
		g.unicastError(c, err)
	}
}

func (g *Gateway) handleMarkNumber(ctx context.Context, c *Client, raw json.RawMessage) {
	var p markNumberPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		g.unicastError(c, fmt.Errorf("malformed payload: %w", err))
		return
	}

	out, err := g.roomService.ToggleMark(ctx, &roomService.ToggleMarkInput{
		RoomID:        p.RoomID,
		ParticipantID: p.ParticipantID,
		Number:        p.Number,
	})
	if err != nil {
		g.unicastError(c, err)
		return
	}

	c.unicast(&roomService.Event{
		Type: eventNumberMarked,
		Payload: &numberMarkedPayload{
			Number:        out.Number,
			MarkedNumbers: out.MarkedNumbers,
			HasBingo:      out.HasBingo,
		},
	})
}

func (g *Gateway) handleResetDraw(ctx context.Context, c *Client, raw json.RawMessage) {
	var p roomIDPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		g.unicastError(c, fmt.Errorf("malformed payload: %w", err))
		return
	}

	if _, err := g.roomService.ResetDraw(ctx, &roomService.ResetDrawInput{
		RoomID: p.RoomID,
		Role:   g.sessionRole(ctx, c),
	}); err != nil {
		g.unicastError(c, err)
	}
}

func (g *Gateway) handleGetRoomState(ctx context.Context, c *Client, raw json.RawMessage) {
	var p roomIDPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		g.unicastError(c, fmt.Errorf("malformed payload: %w", err))
		return
	}

	out, err := g.roomService.GetRoom(ctx, &roomService.GetRoomInput{RoomID: p.RoomID})
	if err != nil {
		g.unicastError(c, err)
		return
	}

	payload := &roomStatePayload{Room: out.Room}
	if s, err := g.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{ConnectionID: c.id}); err == nil {
		payload.IsHost = s.IsHost()
		if s.ParticipantID != "" {
			payload.Participant = out.Room.Participants[s.ParticipantID]
		}
	}

	c.unicast(&roomService.Event{
		Type:    eventRoomState,
		Payload: payload,
	})
}

// sessionRole resolves the connection's role; an unbound connection acts as
// an unprivileged participant and fails host-only operations downstream.
func (g *Gateway) sessionRole(ctx context.Context, c *Client) models.SessionRole {
	s, err := g.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{ConnectionID: c.id})
	if err != nil {
		return models.SessionRoleParticipant
	}
	return s.Role
}

// unicastError reports a failure to the acting connection only
func (g *Gateway) unicastError(c *Client, err error) {
	c.unicast(&roomService.Event{
		Type:    eventError,
		Payload: &errorPayload{Message: err.Error()},
	})
}
