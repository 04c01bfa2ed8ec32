package websocket

import (
	"encoding/json"
	"strings"
)

// Handshake literals sent by embedded clients right after connecting.
// Observing one of these confirms the connection as a dispatch target.
const (
	HandshakeConnected = "ESP32 Connected"
	HandshakeReady     = "ESP32 Ready"
)

// Command types understood on the wire.
const (
	CommandProductSelection = "product_selection"
	CommandOrder            = "order"
)

type FrameKind int

const (
	FrameUnrecognized FrameKind = iota
	FrameHandshake
	FrameCommand
)

// DeviceCommand is the structured JSON frame format, both inbound
// (product_selection from peers) and outbound (order to devices).
type DeviceCommand struct {
	Type      string `json:"type"`
	ProductId string `json:"productId,omitempty"`
	Category  int    `json:"category,omitempty"`
}

type Frame struct {
	Kind    FrameKind
	Command *DeviceCommand // set when Kind == FrameCommand
	Raw     string
}

// ClassifyFrame inspects one inbound frame and decides how to route it.
// Order matters: handshake literals first, then a JSON object decode,
// everything else (including empty frames) is Unrecognized. The protocol is
// fire-and-forget from the sender's perspective, so this never fails.
func ClassifyFrame(raw []byte) Frame {
	text := strings.TrimSpace(string(raw))

	if text == HandshakeConnected || text == HandshakeReady {
		return Frame{Kind: FrameHandshake, Raw: text}
	}

	if strings.HasPrefix(text, "{") {
		var cmd DeviceCommand
		if err := json.Unmarshal([]byte(text), &cmd); err == nil {
			return Frame{Kind: FrameCommand, Command: &cmd, Raw: text}
		}
	}

	return Frame{Kind: FrameUnrecognized, Raw: text}
}
