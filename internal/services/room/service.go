package room

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/parlorgames/bingohall/internal/caller"
	"github.com/parlorgames/bingohall/internal/card"
	"github.com/parlorgames/bingohall/internal/common/clock"
	"github.com/parlorgames/bingohall/internal/common/uuid"
	"github.com/parlorgames/bingohall/internal/models"
	roomRepo "github.com/parlorgames/bingohall/internal/repositories/room"
)

// service implements the Service interface
type service struct {
	defaultCardSize int
	roomRepo        roomRepo.Repository
	cardGenerator   card.Generator
	numberCaller    caller.Caller
	broadcaster     Broadcaster
	clock           clock.Clock
	uuidGenerator   uuid.UUID

	// Per-room mutexes serialize every operation on a room, reads
	// included, so the HTTP and websocket goroutines never interleave
	// read-modify-write cycles. Broadcasts happen under the lock, which
	// keeps per-room notification order equal to mutation order. Rooms
	// leave an operation only as deep-copied snapshots; no alias of
	// mutable room state escapes the lock.
	lockMu    sync.Mutex
	roomLocks map[string]*sync.Mutex
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.RoomRepo == nil {
		return nil, errors.New("room repository cannot be nil")
	}
	if cfg.CardGenerator == nil {
		return nil, errors.New("card generator cannot be nil")
	}
	if cfg.NumberCaller == nil {
		return nil, errors.New("number caller cannot be nil")
	}
	if cfg.Broadcaster == nil {
		return nil, errors.New("broadcaster cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}
	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	defaultCardSize := cfg.DefaultCardSize
	if defaultCardSize == 0 {
		defaultCardSize = DefaultCardSize
	}

	return &service{
		defaultCardSize: defaultCardSize,
		roomRepo:        cfg.RoomRepo,
		cardGenerator:   cfg.CardGenerator,
		numberCaller:    cfg.NumberCaller,
		broadcaster:     cfg.Broadcaster,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		roomLocks:       make(map[string]*sync.Mutex),
	}, nil
}

// roomLock returns the mutex guarding a room's mutations, creating it on
// first use. Locks are never removed; rooms live for the process lifetime.
func (s *service) roomLock(roomID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	l, ok := s.roomLocks[roomID]
	if !ok {
		l = &sync.Mutex{}
		s.roomLocks[roomID] = l
	}
	return l
}

// getRoom loads a room, translating the repository's miss into the
// service-level not-found error.
func (s *service) getRoom(ctx context.Context, roomID string) (*models.Room, error) {
	rm, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{
		RoomID: roomID,
	})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

// CreateRoom creates a new room hosted by the named caller
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.HostName == "" {
		return nil, ErrHostNameRequired
	}

	cardSize := input.CardSize
	if cardSize == 0 {
		cardSize = s.defaultCardSize
	}
	if cardSize < 1 || cardSize > MaxNumber {
		return nil, ErrCardSizeInvalid
	}

	rm := &models.Room{
		ID:           s.uuidGenerator.NewUUID(),
		HostName:     input.HostName,
		CardSize:     cardSize,
		DrawnNumbers: []int{},
		Participants: make(map[string]*models.Participant),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: rm}); err != nil {
		return nil, err
	}

	return &CreateRoomOutput{
		RoomID: rm.ID,
		Room:   rm.Snapshot(),
	}, nil
}

// GetRoom returns a snapshot of an existing room
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, ErrRoomNotFound
	}

	lock := s.roomLock(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	rm, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: rm.Snapshot()}, nil
}

// JoinRoom admits a participant, deals them a card sized by the room's
// configuration, and announces the join to the room's subscribers.
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.ParticipantName == "" {
		return nil, ErrParticipantNameRequired
	}

	lock := s.roomLock(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	rm, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	participantCard, err := s.cardGenerator.Generate(rm.CardSize)
	if err != nil {
		return nil, ValidationError(err.Error())
	}

	participant := &models.Participant{
		ID:            s.uuidGenerator.NewUUID(),
		Name:          input.ParticipantName,
		Card:          participantCard,
		MarkedNumbers: []int{},
		JoinedAt:      s.clock.Now(),
	}
	rm.Participants[participant.ID] = participant

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: rm}); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastToRoom(rm.ID, &Event{
		Type: EventParticipantJoined,
		Payload: &ParticipantJoinedPayload{
			Participant:      participant,
			ParticipantCount: len(rm.Participants),
		},
	})

	return &JoinRoomOutput{
		ParticipantID: participant.ID,
		Participant:   participant.Snapshot(),
		Room:          rm.Snapshot(),
	}, nil
}

// DrawNumber draws the next unique number for a room. Only the host may
// draw. The new number and full sequence are broadcast to the room.
func (s *service) DrawNumber(ctx context.Context, input *DrawNumberInput) (*DrawNumberOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}
	if input.Role != models.SessionRoleHost {
		return nil, ErrHostRequired
	}

	lock := s.roomLock(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	rm, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	if len(rm.DrawnNumbers) >= MaxNumber {
		return nil, ErrNumbersExhausted
	}

	// Rejection sampling over the unseen remainder. The exhaustion check
	// above bounds the loop.
	number := s.numberCaller.Call(MaxNumber)
	for rm.HasDrawn(number) {
		number = s.numberCaller.Call(MaxNumber)
	}

	rm.DrawnNumbers = append(rm.DrawnNumbers, number)
	sort.Ints(rm.DrawnNumbers)
	now := s.clock.Now()
	rm.LastDrawAt = &now

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: rm}); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastToRoom(rm.ID, &Event{
		Type: EventNumberDrawn,
		Payload: &NumberDrawnPayload{
			Number:       number,
			DrawnNumbers: rm.DrawnNumbers,
			TotalDrawn:   len(rm.DrawnNumbers),
		},
	})

	drawn := make([]int, len(rm.DrawnNumbers))
	copy(drawn, rm.DrawnNumbers)

	return &DrawNumberOutput{
		Number:       number,
		DrawnNumbers: drawn,
		TotalDrawn:   len(drawn),
	}, nil
}

// ResetDraw clears the draw sequence, the last-draw timestamp, and every
// participant's marks. Cards are kept. Only the host may reset.
func (s *service) ResetDraw(ctx context.Context, input *ResetDrawInput) (*ResetDrawOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}
	if input.Role != models.SessionRoleHost {
		return nil, ErrHostRequired
	}

	lock := s.roomLock(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	rm, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	rm.DrawnNumbers = []int{}
	rm.LastDrawAt = nil
	for _, p := range rm.Participants {
		p.MarkedNumbers = []int{}
		p.BingoAnnounced = false
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: rm}); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastToRoom(rm.ID, &Event{
		Type:    EventDrawReset,
		Payload: &DrawResetPayload{Room: rm},
	})

	return &ResetDrawOutput{Room: rm.Snapshot()}, nil
}

// ToggleMark toggles a number on a participant's card. Marking every number
// on the card wins; the win is announced to the room once per draw cycle.
func (s *service) ToggleMark(ctx context.Context, input *ToggleMarkInput) (*ToggleMarkOutput, error) {
	if input == nil {
		return nil, ErrRoomNotFound
	}

	lock := s.roomLock(input.RoomID)
	lock.Lock()
	defer lock.Unlock()

	rm, err := s.getRoom(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	participant, ok := rm.Participants[input.ParticipantID]
	if !ok {
		return nil, ErrParticipantNotFound
	}

	if !participant.Card.Contains(input.Number) {
		return nil, ErrNumberNotOnCard
	}

	if participant.HasMarked(input.Number) {
		marked := make([]int, 0, len(participant.MarkedNumbers)-1)
		for _, n := range participant.MarkedNumbers {
			if n != input.Number {
				marked = append(marked, n)
			}
		}
		participant.MarkedNumbers = marked
	} else {
		participant.MarkedNumbers = append(participant.MarkedNumbers, input.Number)
	}

	hasBingo := participant.HasBingo()
	announce := hasBingo && !participant.BingoAnnounced
	if announce {
		participant.BingoAnnounced = true
	}

	if err := s.roomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: rm}); err != nil {
		return nil, err
	}

	if announce {
		s.broadcaster.BroadcastToRoom(rm.ID, &Event{
			Type: EventBingo,
			Payload: &BingoPayload{
				ParticipantID:   participant.ID,
				ParticipantName: participant.Name,
			},
		})
	}

	marked := make([]int, len(participant.MarkedNumbers))
	copy(marked, participant.MarkedNumbers)

	return &ToggleMarkOutput{
		Number:        input.Number,
		MarkedNumbers: marked,
		HasBingo:      hasBingo,
	}, nil
}
