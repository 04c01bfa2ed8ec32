package elevenlabs

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(rt roundTripFunc) *Client {
	c := NewClient("test-key", "voice-1", "eleven_monolingual_v1", 5*time.Second)
	c.HTTP.Transport = rt
	return c
}

func TestSynthesize(t *testing.T) {
	var captured synthesizeRequest
	var capturedReq *http.Request

	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		capturedReq = req
		body, _ := io.ReadAll(req.Body)
		require.NoError(t, json.Unmarshal(body, &captured))
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("mp3-bytes")),
		}, nil
	})

	audio, err := client.Synthesize(context.Background(), "Welcome to the menu")
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)

	assert.Equal(t, "test-key", capturedReq.Header.Get("xi-api-key"))
	assert.Equal(t, "audio/mpeg", capturedReq.Header.Get("Accept"))
	assert.Contains(t, capturedReq.URL.String(), "/text-to-speech/voice-1")

	assert.Equal(t, "Welcome to the menu", captured.Text)
	assert.Equal(t, "eleven_monolingual_v1", captured.ModelID)
	assert.Equal(t, 0.5, captured.VoiceSettings.Stability)
	assert.Equal(t, 0.75, captured.VoiceSettings.SimilarityBoost)
}

func TestSynthesizeUpstreamError(t *testing.T) {
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusUnauthorized,
			Body:       io.NopCloser(strings.NewReader(`{"detail":"invalid key"}`)),
		}, nil
	})

	_, err := client.Synthesize(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSynthesizeNotConfigured(t *testing.T) {
	client := NewClient("", "", "eleven_monolingual_v1", time.Second)

	_, err := client.Synthesize(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
