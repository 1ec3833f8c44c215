package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/parlorgames/bingohall/internal/models"
	roomService "github.com/parlorgames/bingohall/internal/services/room"
	serviceMocks "github.com/parlorgames/bingohall/internal/services/room/mocks"
)

type HandlerTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockService *serviceMocks.MockService
	server      *httptest.Server

	testRoom *models.Room
}

func (s *HandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockService = serviceMocks.NewMockService(s.mockCtrl)

	handler, err := New(&Config{RoomService: s.mockService})
	s.Require().NoError(err)

	mux := http.NewServeMux()
	handler.Register(mux)
	s.server = httptest.NewServer(mux)

	s.testRoom = &models.Room{
		ID:           "test-room-id",
		HostName:     "Ana",
		CardSize:     24,
		DrawnNumbers: []int{},
		Participants: make(map[string]*models.Participant),
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *HandlerTestSuite) TearDownTest() {
	s.server.Close()
	s.mockCtrl.Finish()
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) TestCreateRoom() {
	s.mockService.EXPECT().CreateRoom(gomock.Any(), &roomService.CreateRoomInput{
		HostName: "Ana",
		CardSize: 24,
	}).Return(&roomService.CreateRoomOutput{
		RoomID: "test-room-id",
		Room:   s.testRoom,
	}, nil)

	resp, err := http.Post(s.server.URL+"/api/rooms", "application/json",
		strings.NewReader(`{"hostName":"Ana","cardSize":24}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusCreated, resp.StatusCode)

	var body createRoomResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("test-room-id", body.RoomID)
	s.Equal("Ana", body.Room.HostName)
}

func (s *HandlerTestSuite) TestCreateRoomMissingHostName() {
	s.mockService.EXPECT().CreateRoom(gomock.Any(), gomock.Any()).
		Return(nil, roomService.ErrHostNameRequired)

	resp, err := http.Post(s.server.URL+"/api/rooms", "application/json",
		strings.NewReader(`{}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestCreateRoomMalformedBody() {
	resp, err := http.Post(s.server.URL+"/api/rooms", "application/json",
		strings.NewReader(`{nope`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusBadRequest, resp.StatusCode)
}

func (s *HandlerTestSuite) TestGetRoom() {
	s.mockService.EXPECT().GetRoom(gomock.Any(), &roomService.GetRoomInput{
		RoomID: "test-room-id",
	}).Return(&roomService.GetRoomOutput{Room: s.testRoom}, nil)

	resp, err := http.Get(s.server.URL + "/api/rooms/test-room-id")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body getRoomResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("test-room-id", body.Room.ID)
}

func (s *HandlerTestSuite) TestGetRoomNotFound() {
	s.mockService.EXPECT().GetRoom(gomock.Any(), gomock.Any()).
		Return(nil, roomService.ErrRoomNotFound)

	resp, err := http.Get(s.server.URL + "/api/rooms/missing")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("room not found", body["error"])
}

func (s *HandlerTestSuite) TestJoinRoom() {
	participant := &models.Participant{
		ID:            "test-participant-id",
		Name:          "Bruno",
		MarkedNumbers: []int{},
	}
	s.mockService.EXPECT().JoinRoom(gomock.Any(), &roomService.JoinRoomInput{
		RoomID:          "test-room-id",
		ParticipantName: "Bruno",
	}).Return(&roomService.JoinRoomOutput{
		ParticipantID: "test-participant-id",
		Participant:   participant,
		Room:          s.testRoom,
	}, nil)

	resp, err := http.Post(s.server.URL+"/api/rooms/test-room-id/join", "application/json",
		strings.NewReader(`{"participantName":"Bruno"}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)

	var body joinRoomResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("test-participant-id", body.ParticipantID)
	s.Equal("Bruno", body.Participant.Name)
}

func (s *HandlerTestSuite) TestJoinRoomNotFound() {
	s.mockService.EXPECT().JoinRoom(gomock.Any(), gomock.Any()).
		Return(nil, roomService.ErrRoomNotFound)

	resp, err := http.Post(s.server.URL+"/api/rooms/missing/join", "application/json",
		strings.NewReader(`{"participantName":"Bruno"}`))
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *HandlerTestSuite) TestHealth() {
	resp, err := http.Get(s.server.URL + "/healthz")
	s.Require().NoError(err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}
