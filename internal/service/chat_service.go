package service

import (
	"context"
	"errors"
	"fmt"

	"smart-menu-be/internal/dto"
	"smart-menu-be/internal/pkg/logger"
	"smart-menu-be/internal/repository/memory"
	"smart-menu-be/pkg/assistant"
	"smart-menu-be/pkg/llm"
)

// ErrCatalogUnavailable degrades catalog-dependent endpoints to a 500 when
// the menu document failed to load at startup.
var ErrCatalogUnavailable = errors.New("menu data not available")

// assistantAck keeps the Gemini turn order alternating between the
// instruction block and the customer's message.
const assistantAck = "Understood. I am the menu assistant and will follow these rules."

type IChatService interface {
	Chat(ctx context.Context, message string) (*dto.ChatResponse, error)
}

type chatService struct {
	catalog *memory.CatalogRepository
	llm     llm.LLMProvider
	logger  logger.ILogger
	opts    []llm.Option
}

func NewChatService(catalog *memory.CatalogRepository, provider llm.LLMProvider, log logger.ILogger, opts ...llm.Option) IChatService {
	return &chatService{
		catalog: catalog,
		llm:     provider,
		logger:  log,
		opts:    opts,
	}
}

// Chat runs one stateless turn: the instruction block is rebuilt from the
// current catalog on every call, the completion is decoded once into a
// tagged outcome, and no conversation state survives the request.
func (s *chatService) Chat(ctx context.Context, message string) (*dto.ChatResponse, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	prompt := assistant.NewMenuPromptBuilder(s.catalog.Menu()).Build()

	reply, err := s.llm.Chat(ctx, []llm.Message{
		{Role: "user", Content: prompt},
		{Role: "model", Content: assistantAck},
		{Role: "user", Content: message},
	}, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("completion service: %w", err)
	}

	outcome := assistant.ParseResponse(reply)
	switch outcome.Kind {
	case assistant.OutcomeNavigate:
		return &dto.ChatResponse{
			Type:      string(assistant.OutcomeNavigate),
			ProductId: outcome.ProductId,
			Message:   fmt.Sprintf("Navigating to %s", outcome.ProductId),
		}, nil

	case assistant.OutcomeNavigateWithInfo:
		return &dto.ChatResponse{
			Type:      string(assistant.OutcomeNavigateWithInfo),
			ProductId: outcome.ProductId,
			Message:   fmt.Sprintf("Navigating to %s: %s", outcome.ProductId, outcome.Info),
			Info:      outcome.Info,
		}, nil

	default:
		return &dto.ChatResponse{
			Type:    string(assistant.OutcomePlainMessage),
			Message: outcome.Message,
		}, nil
	}
}
