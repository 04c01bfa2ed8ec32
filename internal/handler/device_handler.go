package handler

import (
	"smart-menu-be/internal/pkg/logger"
	internalWS "smart-menu-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// DeviceHandler upgrades the persistent-connection channel used by embedded
// clients and browser peers. No authentication: a connection is addressable
// only after its handshake frame, and the handshake is a plain literal.
type DeviceHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewDeviceHandler(hub *internalWS.Hub, log logger.ILogger) *DeviceHandler {
	return &DeviceHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *DeviceHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("DeviceHandler", "Starting WebSocket session", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("DeviceHandler", "WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket endpoint at the app root so
// embedded firmware can connect to ws://host:port/ws.
func (h *DeviceHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
