package websocket

import (
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection. Nil in tests that only exercise the registry.
	Conn *websocket.Conn

	// ID identifies this connection in logs.
	ID uuid.UUID

	// Buffered channel of outbound frames.
	Send chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		Hub:  hub,
		Conn: conn,
		ID:   uuid.New(),
		Send: make(chan []byte, 256),
	}
}

// trySend queues a frame without blocking. Returns false when the client is
// closing or its buffer is full; the caller treats that as not-write-ready.
func (c *Client) trySend(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// readPump pumps frames from the websocket connection into the hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.Hub.logger.Warn("Client", "Read error", map[string]interface{}{
					"connection_id": c.ID,
					"error":         err.Error(),
				})
			}
			break
		}
		c.handleFrame(raw)
	}
}

// handleFrame routes one inbound frame. Frames are processed in arrival
// order per connection; a bad frame is dropped without a response.
func (c *Client) handleFrame(raw []byte) {
	frame := ClassifyFrame(raw)

	switch frame.Kind {
	case FrameHandshake:
		c.Hub.Confirm(c)

	case FrameCommand:
		if frame.Command.Type == CommandProductSelection && frame.Command.ProductId != "" {
			c.Hub.RebroadcastProductSelection(frame.Command.ProductId)
			return
		}
		c.Hub.logger.Debug("Client", "Ignoring command frame", map[string]interface{}{
			"connection_id": c.ID,
			"type":          frame.Command.Type,
		})

	default:
		c.Hub.logger.Debug("Client", "Dropping unrecognized frame", map[string]interface{}{
			"connection_id": c.ID,
			"raw":           frame.Raw,
		})
	}
}

// writePump pumps frames from the hub to the websocket connection.
// One outbound frame per websocket message so JSON framing stays intact.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
