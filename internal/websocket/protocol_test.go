package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFrameHandshake(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"connected literal", "ESP32 Connected"},
		{"ready literal", "ESP32 Ready"},
		{"connected with whitespace", "  ESP32 Connected\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := ClassifyFrame([]byte(tt.raw))
			assert.Equal(t, FrameHandshake, frame.Kind)
			assert.Nil(t, frame.Command)
		})
	}
}

func TestClassifyFrameCommand(t *testing.T) {
	frame := ClassifyFrame([]byte(`{"type":"product_selection","productId":"pizza1"}`))

	require.Equal(t, FrameCommand, frame.Kind)
	require.NotNil(t, frame.Command)
	assert.Equal(t, CommandProductSelection, frame.Command.Type)
	assert.Equal(t, "pizza1", frame.Command.ProductId)
}

func TestClassifyFrameCommandUnknownType(t *testing.T) {
	// Unknown types still decode as commands; routing decides what to drop.
	frame := ClassifyFrame([]byte(`{"type":"reboot"}`))

	require.Equal(t, FrameCommand, frame.Kind)
	assert.Equal(t, "reboot", frame.Command.Type)
}

func TestClassifyFrameUnrecognized(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty frame", ""},
		{"whitespace only", "   \n"},
		{"plain text", "hello there"},
		{"partial handshake", "ESP32"},
		{"malformed json", `{"type":"order",`},
		{"json array", `["not","an","object"]`},
		{"number", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := ClassifyFrame([]byte(tt.raw))
			assert.Equal(t, FrameUnrecognized, frame.Kind)
			assert.Nil(t, frame.Command)
		})
	}
}
