package ws

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

type HubTestSuite struct {
	suite.Suite
	hub *Hub
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub()
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

// receive pops one queued frame, decoded into an envelope
func (s *HubTestSuite) receive(c *Client) envelope {
	select {
	case b := <-c.send:
		var e envelope
		s.Require().NoError(json.Unmarshal(b, &e))
		return e
	default:
		s.FailNow("no frame queued")
		return envelope{}
	}
}

func (s *HubTestSuite) TestBroadcastReachesAllSubscribers() {
	a := newClient("conn-a", nil, nil)
	b := newClient("conn-b", nil, nil)
	s.hub.Subscribe("room-1", a)
	s.hub.Subscribe("room-1", b)

	s.hub.BroadcastToRoom("room-1", &roomService.Event{
		Type:    roomService.EventNumberDrawn,
		Payload: &roomService.NumberDrawnPayload{Number: 7, DrawnNumbers: []int{7}, TotalDrawn: 1},
	})

	for _, c := range []*Client{a, b} {
		e := s.receive(c)
		s.Equal(string(roomService.EventNumberDrawn), e.Type)
	}
}

func (s *HubTestSuite) TestBroadcastScopedToRoom() {
	a := newClient("conn-a", nil, nil)
	b := newClient("conn-b", nil, nil)
	s.hub.Subscribe("room-1", a)
	s.hub.Subscribe("room-2", b)

	s.hub.BroadcastToRoom("room-1", &roomService.Event{Type: roomService.EventDrawReset})

	s.Len(a.send, 1)
	s.Empty(b.send)
}

func (s *HubTestSuite) TestBroadcastOrderPreservedPerClient() {
	c := newClient("conn-a", nil, nil)
	s.hub.Subscribe("room-1", c)

	for n := 1; n <= 3; n++ {
		s.hub.BroadcastToRoom("room-1", &roomService.Event{
			Type:    roomService.EventNumberDrawn,
			Payload: &roomService.NumberDrawnPayload{Number: n},
		})
	}

	for n := 1; n <= 3; n++ {
		e := s.receive(c)
		var p roomService.NumberDrawnPayload
		s.Require().NoError(json.Unmarshal(e.Payload, &p))
		s.Equal(n, p.Number)
	}
}

func (s *HubTestSuite) TestRemovedClientGetsNothing() {
	c := newClient("conn-a", nil, nil)
	s.hub.Subscribe("room-1", c)
	s.hub.RemoveClient(c)

	s.hub.BroadcastToRoom("room-1", &roomService.Event{Type: roomService.EventDrawReset})
	s.Empty(c.send)
}

func (s *HubTestSuite) TestSlowClientDropsFramesInsteadOfBlocking() {
	c := newClient("conn-a", nil, nil)
	s.hub.Subscribe("room-1", c)

	for i := 0; i < sendBuffer+5; i++ {
		s.hub.BroadcastToRoom("room-1", &roomService.Event{Type: roomService.EventDrawReset})
	}

	s.Len(c.send, sendBuffer)
}
