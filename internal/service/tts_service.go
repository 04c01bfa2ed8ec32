package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"smart-menu-be/internal/dto"
	"smart-menu-be/internal/pkg/logger"
	"smart-menu-be/pkg/tts"

	"github.com/patrickmn/go-cache"
)

type ITTSService interface {
	Synthesize(ctx context.Context, text string) (*dto.TTSResponse, error)
}

type ttsService struct {
	client tts.Client
	cache  *cache.Cache
	logger logger.ILogger
}

func NewTTSService(client tts.Client, cacheTTL time.Duration, log logger.ILogger) ITTSService {
	return &ttsService{
		client: client,
		cache:  cache.New(cacheTTL, cacheTTL/2+time.Minute),
		logger: log,
	}
}

// Synthesize returns base64 audio for the text, reusing a recent synthesis
// of the exact same text to avoid paying the provider twice.
func (s *ttsService) Synthesize(ctx context.Context, text string) (*dto.TTSResponse, error) {
	if cached, found := s.cache.Get(text); found {
		s.logger.Debug("TTS", "Cache hit", map[string]interface{}{"chars": len(text)})
		return &dto.TTSResponse{Audio: cached.(string)}, nil
	}

	audio, err := s.client.Synthesize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("speech service: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(audio)
	s.cache.Set(text, encoded, cache.DefaultExpiration)

	return &dto.TTSResponse{Audio: encoded}, nil
}
