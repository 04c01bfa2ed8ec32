package websocket

import (
	"encoding/json"
	"fmt"
	"sync"

	"smart-menu-be/internal/pkg/logger"
)

// DispatchStats reports one best-effort broadcast pass: how many targets
// were in the snapshot and how many writes were accepted. Partial delivery
// is not an error; no dispatch ever fails on individual targets.
type DispatchStats struct {
	Attempted int
	Delivered int
}

// Hub owns the live connection registry: the set of all open connections
// and the subset confirmed as embedded clients via handshake. It is the
// only mutable state shared across handlers; all mutation goes through the
// mutex-guarded methods below.
type Hub struct {
	mu       sync.RWMutex
	clients  map[*Client]bool // every live connection, peers included
	embedded map[*Client]bool // confirmed embedded clients only

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		clients:  make(map[*Client]bool),
		embedded: make(map[*Client]bool),
		logger:   log,
	}
}

// Register adds a freshly accepted connection to the full set. The
// connection is not a dispatch target until Confirm is called.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	h.clients[client] = true
	total := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Hub", "Client connected", map[string]interface{}{
		"connection_id": client.ID,
		"total":         total,
	})
}

// Confirm marks a connection as a confirmed embedded client after its
// handshake frame. Idempotent: confirming twice leaves one membership.
func (h *Hub) Confirm(client *Client) {
	h.mu.Lock()
	if !h.clients[client] {
		h.mu.Unlock()
		return
	}
	h.embedded[client] = true
	embedded := len(h.embedded)
	h.mu.Unlock()

	h.logger.Info("Hub", "Embedded client confirmed", map[string]interface{}{
		"connection_id": client.ID,
		"embedded":      embedded,
	})
}

// Unregister removes a connection from both sets and closes its send
// channel. Unregistering an absent connection is a no-op, not an error.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	present := h.clients[client]
	if present {
		delete(h.clients, client)
		delete(h.embedded, client)
	}
	total := len(h.clients)
	embedded := len(h.embedded)
	h.mu.Unlock()

	if !present {
		return
	}
	client.closeSend()

	h.logger.Info("Hub", "Client disconnected", map[string]interface{}{
		"connection_id": client.ID,
		"total":         total,
		"embedded":      embedded,
	})
}

// Counts returns (all connections, confirmed embedded clients).
func (h *Hub) Counts() (int, int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients), len(h.embedded)
}

// DispatchCategory broadcasts the raw motor command line for a category
// selection to every confirmed embedded client.
func (h *Hub) DispatchCategory(categoryNumber int) DispatchStats {
	payload := []byte(fmt.Sprintf("MOTOR:%d\n", categoryNumber))
	return h.broadcast(h.embeddedSnapshot(), payload, "category")
}

// DispatchOrder broadcasts the structured order command to every confirmed
// embedded client.
func (h *Hub) DispatchOrder(categoryNumber int) DispatchStats {
	payload, _ := json.Marshal(DeviceCommand{Type: CommandOrder, Category: categoryNumber})
	return h.broadcast(h.embeddedSnapshot(), payload, "order")
}

// RebroadcastProductSelection fans a product_selection frame out to ALL
// live connections, browser peers included, not just embedded clients.
func (h *Hub) RebroadcastProductSelection(productId string) DispatchStats {
	payload, _ := json.Marshal(DeviceCommand{Type: CommandProductSelection, ProductId: productId})
	return h.broadcast(h.snapshot(), payload, "product_selection")
}

func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	targets := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	return targets
}

func (h *Hub) embeddedSnapshot() []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	targets := make([]*Client, 0, len(h.embedded))
	for c := range h.embedded {
		targets = append(targets, c)
	}
	return targets
}

// broadcast writes the payload to every write-ready target in the snapshot.
// Connections that are closing or have a full send buffer are skipped and
// dropped from the registry; the pass itself never fails. Connections may
// close mid-broadcast, that staleness is tolerated by the skip.
func (h *Hub) broadcast(targets []*Client, payload []byte, kind string) DispatchStats {
	stats := DispatchStats{Attempted: len(targets)}

	var stale []*Client
	for _, client := range targets {
		if client.trySend(payload) {
			stats.Delivered++
		} else {
			stale = append(stale, client)
		}
	}
	for _, client := range stale {
		h.logger.Warn("Hub", "Skipping unwritable client", map[string]interface{}{
			"connection_id": client.ID,
			"kind":          kind,
		})
		h.Unregister(client)
	}

	h.logger.Info("Hub", "Broadcast pass complete", map[string]interface{}{
		"kind":      kind,
		"attempted": stats.Attempted,
		"delivered": stats.Delivered,
	})
	return stats
}
