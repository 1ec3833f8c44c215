package ws

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/parlorgames/bingohall/internal/common/uuid"
	"github.com/parlorgames/bingohall/internal/models"
	sessionRepo "github.com/parlorgames/bingohall/internal/repositories/session"
	roomService "github.com/parlorgames/bingohall/internal/services/room"
	serviceMocks "github.com/parlorgames/bingohall/internal/services/room/mocks"
)

type GatewayTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *serviceMocks.MockService
	sessions    sessionRepo.Repository
	gateway     *Gateway
	client      *Client
	ctx         context.Context

	testRoom *models.Room
}

func (s *GatewayTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = serviceMocks.NewMockService(s.mockCtrl)
	s.sessions = sessionRepo.NewMemory()
	s.ctx = context.Background()

	gateway, err := New(&Config{
		Hub:           NewHub(),
		RoomService:   s.mockService,
		SessionRepo:   s.sessions,
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)
	s.gateway = gateway
	s.client = newClient("test-connection-id", gateway, nil)

	s.testRoom = &models.Room{
		ID:           "test-room-id",
		HostName:     "Ana",
		CardSize:     24,
		DrawnNumbers: []int{},
		Participants: map[string]*models.Participant{
			"test-participant-id": {
				ID:            "test-participant-id",
				Name:          "Bruno",
				Card:          &models.Card{Numbers: []int{3, 17, 33}},
				MarkedNumbers: []int{},
			},
		},
	}
}

func (s *GatewayTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

// receive pops one queued unicast frame for the test client
func (s *GatewayTestSuite) receive() envelope {
	select {
	case b := <-s.client.send:
		var e envelope
		s.Require().NoError(json.Unmarshal(b, &e))
		return e
	default:
		s.FailNow("no frame queued")
		return envelope{}
	}
}

func (s *GatewayTestSuite) expectGetRoom() {
	s.mockService.EXPECT().GetRoom(gomock.Any(), &roomService.GetRoomInput{
		RoomID: "test-room-id",
	}).Return(&roomService.GetRoomOutput{Room: s.testRoom}, nil)
}

func (s *GatewayTestSuite) joinAsHost() {
	s.expectGetRoom()
	s.gateway.handleMessage(s.client, []byte(`{"type":"joinAsHost","payload":{"roomId":"test-room-id"}}`))

	e := s.receive()
	s.Require().Equal(string(eventRoomJoined), e.Type)
}

func (s *GatewayTestSuite) TestJoinAsHost() {
	s.expectGetRoom()
	s.gateway.handleMessage(s.client, []byte(`{"type":"joinAsHost","payload":{"roomId":"test-room-id"}}`))

	e := s.receive()
	s.Equal(string(eventRoomJoined), e.Type)

	var p roomJoinedPayload
	s.Require().NoError(json.Unmarshal(e.Payload, &p))
	s.True(p.IsHost)
	s.Nil(p.Participant)

	bound, err := s.sessions.GetSession(s.ctx, &sessionRepo.GetSessionInput{
		ConnectionID: "test-connection-id",
	})
	s.Require().NoError(err)
	s.True(bound.IsHost())
	s.Equal("test-room-id", bound.RoomID)
}

func (s *GatewayTestSuite) TestJoinAsHostUnknownRoom() {
	s.mockService.EXPECT().GetRoom(gomock.Any(), gomock.Any()).
		Return(nil, roomService.ErrRoomNotFound)

	s.gateway.handleMessage(s.client, []byte(`{"type":"joinAsHost","payload":{"roomId":"missing"}}`))

	e := s.receive()
	s.Equal(string(eventError), e.Type)

	var p errorPayload
	s.Require().NoError(json.Unmarshal(e.Payload, &p))
	s.Equal("room not found", p.Message)
}

func (s *GatewayTestSuite) TestJoinAsParticipant() {
	s.expectGetRoom()
	s.gateway.handleMessage(s.client, []byte(`{"type":"joinAsParticipant","payload":{"roomId":"test-room-id","participantId":"test-participant-id"}}`))

	e := s.receive()
	s.Equal(string(eventRoomJoined), e.Type)

	var p roomJoinedPayload
	s.Require().NoError(json.Unmarshal(e.Payload, &p))
	s.False(p.IsHost)
	s.Require().NotNil(p.Participant)
	s.Equal("Bruno", p.Participant.Name)
}

func (s *GatewayTestSuite) TestJoinAsParticipantUnknownParticipant() {
	s.expectGetRoom()
	s.gateway.handleMessage(s.client, []byte(`{"type":"joinAsParticipant","payload":{"roomId":"test-room-id","participantId":"missing"}}`))

	e := s.receive()
	s.Equal(string(eventError), e.Type)
}

func (s *GatewayTestSuite) TestDrawNumberUsesSessionRole() {
	s.joinAsHost()

	s.mockService.EXPECT().DrawNumber(gomock.Any(), &roomService.DrawNumberInput{
		RoomID: "test-room-id",
		Role:   models.SessionRoleHost,
	}).Return(&roomService.DrawNumberOutput{Number: 7, DrawnNumbers: []int{7}, TotalDrawn: 1}, nil)

	s.gateway.handleMessage(s.client, []byte(`{"type":"drawNumber","payload":{"roomId":"test-room-id"}}`))

	// The drawn number goes out as a room broadcast from the service; the
	// gateway queues nothing extra on success.
	s.Empty(s.client.send)
}

func (s *GatewayTestSuite) TestDrawNumberWithoutSessionIsUnprivileged() {
	s.mockService.EXPECT().DrawNumber(gomock.Any(), &roomService.DrawNumberInput{
		RoomID: "test-room-id",
		Role:   models.SessionRoleParticipant,
	}).Return(nil, roomService.ErrHostRequired)

	s.gateway.handleMessage(s.client, []byte(`{"type":"drawNumber","payload":{"roomId":"test-room-id"}}`))

	e := s.receive()
	s.Equal(string(eventError), e.Type)

	var p errorPayload
	s.Require().NoError(json.Unmarshal(e.Payload, &p))
	s.Equal("only the host can do that", p.Message)
}

func (s *GatewayTestSuite) TestMarkNumber() {
	s.mockService.EXPECT().ToggleMark(gomock.Any(), &roomService.ToggleMarkInput{
		RoomID:        "test-room-id",
		ParticipantID: "test-participant-id",
		Number:        17,
	}).Return(&roomService.ToggleMarkOutput{
		Number:        17,
		MarkedNumbers: []int{17},
		HasBingo:      false,
	}, nil)

	s.gateway.handleMessage(s.client, []byte(`{"type":"markNumber","payload":{"roomId":"test-room-id","participantId":"test-participant-id","number":17}}`))

	e := s.receive()
	s.Equal(string(eventNumberMarked), e.Type)

	var p numberMarkedPayload
	s.Require().NoError(json.Unmarshal(e.Payload, &p))
	s.Equal(17, p.Number)
	s.Equal([]int{17}, p.MarkedNumbers)
	s.False(p.HasBingo)
}

func (s *GatewayTestSuite) TestMarkNumberOffCard() {
	s.mockService.EXPECT().ToggleMark(gomock.Any(), gomock.Any()).
		Return(nil, roomService.ErrNumberNotOnCard)

	s.gateway.handleMessage(s.client, []byte(`{"type":"markNumber","payload":{"roomId":"test-room-id","participantId":"test-participant-id","number":50}}`))

	e := s.receive()
	s.Equal(string(eventError), e.Type)
}

func (s *GatewayTestSuite) TestResetDraw() {
	s.joinAsHost()

	s.mockService.EXPECT().ResetDraw(gomock.Any(), &roomService.ResetDrawInput{
		RoomID: "test-room-id",
		Role:   models.SessionRoleHost,
	}).Return(&roomService.ResetDrawOutput{Room: s.testRoom}, nil)

	s.gateway.handleMessage(s.client, []byte(`{"type":"resetDraw","payload":{"roomId":"test-room-id"}}`))
	s.Empty(s.client.send)
}

func (s *GatewayTestSuite) TestGetRoomState() {
	s.joinAsHost()

	s.expectGetRoom()
	s.gateway.handleMessage(s.client, []byte(`{"type":"getRoomState","payload":{"roomId":"test-room-id"}}`))

	e := s.receive()
	s.Equal(string(eventRoomState), e.Type)

	var p roomStatePayload
	s.Require().NoError(json.Unmarshal(e.Payload, &p))
	s.True(p.IsHost)
	s.Equal("test-room-id", p.Room.ID)
}

func (s *GatewayTestSuite) TestUnknownEventType() {
	s.gateway.handleMessage(s.client, []byte(`{"type":"shuffle","payload":{}}`))

	e := s.receive()
	s.Equal(string(eventError), e.Type)
}

func (s *GatewayTestSuite) TestMalformedFrame() {
	s.gateway.handleMessage(s.client, []byte(`{nope`))

	e := s.receive()
	s.Equal(string(eventError), e.Type)
}

func (s *GatewayTestSuite) TestDisconnectDiscardsSessionOnly() {
	s.joinAsHost()

	s.gateway.handleDisconnect(s.client)

	_, err := s.sessions.GetSession(s.ctx, &sessionRepo.GetSessionInput{
		ConnectionID: "test-connection-id",
	})
	s.ErrorIs(err, sessionRepo.ErrSessionNotFound)

	// No further broadcasts reach the closed connection
	s.gateway.hub.BroadcastToRoom("test-room-id", &roomService.Event{
		Type: roomService.EventDrawReset,
	})
	s.Empty(s.client.send)
}
