package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs runs the pump loops for one accepted connection. The connection
// joins the full registry immediately; it becomes a dispatch target only
// after its handshake frame is observed.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := NewClient(hub, conn)
	hub.Register(client)

	go client.writePump()
	client.readPump() // runs in the handler goroutine
}
