package tts

import "context"

// Client defines the interface for text-to-speech providers.
type Client interface {
	// Synthesize converts text to speech and returns the raw audio payload.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
