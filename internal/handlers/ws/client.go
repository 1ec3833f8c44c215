package ws

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	roomService "github.com/parlorgames/bingohall/internal/services/room"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 45 * time.Second

	maxMessageSize = 4096

	sendBuffer = 16
)

// Client is one websocket connection. Its connection ID keys the session
// binding held by the session registry.
type Client struct {
	id      string
	gateway *Gateway
	conn    *websocket.Conn
	send    chan []byte
}

func newClient(id string, gateway *Gateway, conn *websocket.Conn) *Client {
	return &Client{
		id:      id,
		gateway: gateway,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
	}
}

// enqueue queues an already-marshalled frame for delivery. A client that
// cannot keep up loses the frame rather than stalling the room.
func (c *Client) enqueue(b []byte) {
	select {
	case c.send <- b:
	default:
		log.Printf("dropping frame for slow connection %s", c.id)
	}
}

// unicast marshals and queues an event for this client only
func (c *Client) unicast(event *roomService.Event) {
	b, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event for connection %s: %v", event.Type, c.id, err)
		return
	}
	c.enqueue(b)
}

// readPump reads inbound frames and hands them to the gateway until the
// connection dies, then triggers disconnect cleanup.
func (c *Client) readPump() {
	defer func() {
		c.gateway.handleDisconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("connection %s read error: %v", c.id, err)
			}
			return
		}
		c.gateway.handleMessage(c, msg)
	}
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("connection %s write error: %v", c.id, err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
