package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/parlorgames/bingohall/internal/models"
	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

// Config holds configuration for the HTTP API handler
type Config struct {
	// RoomService executes the game-state operations
	RoomService roomService.Service
}

// Handler is the request/response surface: room creation, lookup, and join.
// Realtime traffic goes through the websocket gateway instead.
type Handler struct {
	roomService roomService.Service
}

// New creates a new HTTP API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}

	return &Handler{
		roomService: cfg.RoomService,
	}, nil
}

// Register mounts the API routes on a mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/rooms", h.createRoom)
	mux.HandleFunc("GET /api/rooms/{roomId}", h.getRoom)
	mux.HandleFunc("POST /api/rooms/{roomId}/join", h.joinRoom)
	mux.HandleFunc("GET /healthz", h.health)
}

type createRoomRequest struct {
	HostName string `json:"hostName"`
	CardSize int    `json:"cardSize"`
}

type createRoomResponse struct {
	RoomID string       `json:"roomId"`
	Room   *models.Room `json:"room"`
}

func (h *Handler) createRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.roomService.CreateRoom(r.Context(), &roomService.CreateRoomInput{
		HostName: req.HostName,
		CardSize: req.CardSize,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, &createRoomResponse{
		RoomID: out.RoomID,
		Room:   out.Room,
	})
}

type getRoomResponse struct {
	Room *models.Room `json:"room"`
}

func (h *Handler) getRoom(w http.ResponseWriter, r *http.Request) {
	out, err := h.roomService.GetRoom(r.Context(), &roomService.GetRoomInput{
		RoomID: r.PathValue("roomId"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &getRoomResponse{Room: out.Room})
}

type joinRoomRequest struct {
	ParticipantName string `json:"participantName"`
}

type joinRoomResponse struct {
	ParticipantID string              `json:"participantId"`
	Participant   *models.Participant `json:"participant"`
	Room          *models.Room        `json:"room"`
}

func (h *Handler) joinRoom(w http.ResponseWriter, r *http.Request) {
	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	out, err := h.roomService.JoinRoom(r.Context(), &roomService.JoinRoomInput{
		RoomID:          r.PathValue("roomId"),
		ParticipantName: req.ParticipantName,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, &joinRoomResponse{
		ParticipantID: out.ParticipantID,
		Participant:   out.Participant,
		Room:          out.Room,
	})
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeServiceError maps the service error taxonomy onto status codes
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		validationErr    roomService.ValidationError
		notFoundErr      roomService.NotFoundError
		authorizationErr roomService.AuthorizationError
		exhaustedErr     roomService.ExhaustedError
	)

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &authorizationErr):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &exhaustedErr):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
