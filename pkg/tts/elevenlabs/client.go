package elevenlabs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"smart-menu-be/pkg/tts"
)

const endpointFormat = "https://api.elevenlabs.io/v1/text-to-speech/%s"

// ErrNotConfigured is returned when the API key or voice id is missing.
// Surfaced to HTTP callers as a 500, matching the provider-unconfigured case.
var ErrNotConfigured = errors.New("elevenlabs: api key or voice id not configured")

type Client struct {
	APIKey  string
	VoiceID string
	ModelID string
	HTTP    *http.Client
}

var _ tts.Client = &Client{}

func NewClient(apiKey, voiceID, modelID string, timeout time.Duration) *Client {
	return &Client{
		APIKey:  apiKey,
		VoiceID: voiceID,
		ModelID: modelID,
		HTTP: &http.Client{
			Timeout: timeout,
		},
	}
}

type synthesizeRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if c.APIKey == "" || c.VoiceID == "" {
		return nil, ErrNotConfigured
	}

	payload := synthesizeRequest{
		Text:    text,
		ModelID: c.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.75,
		},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(endpointFormat, c.VoiceID)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevenlabs request failed: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("elevenlabs error: status %d, body: %s", resp.StatusCode, string(audio))
	}

	return audio, nil
}
