package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"smart-menu-be/internal/constant"
	"smart-menu-be/internal/dto"
	"smart-menu-be/internal/pkg/logger"
	"smart-menu-be/internal/websocket"
	"smart-menu-be/pkg/events"
)

// ErrUnknownCategory marks a product whose derived category has no motor
// slot. Surfaced to HTTP callers as a 400, never a silent default.
var ErrUnknownCategory = errors.New("unknown product category")

type IOrderService interface {
	PlaceOrder(ctx context.Context, productId string) (*dto.OrderResponse, error)
}

type orderService struct {
	hub       *websocket.Hub
	publisher IPublisherService
	logger    logger.ILogger
}

func NewOrderService(hub *websocket.Hub, publisher IPublisherService, log logger.ILogger) IOrderService {
	return &orderService{
		hub:       hub,
		publisher: publisher,
		logger:    log,
	}
}

// DeriveCategory strips the trailing digit run from a product identifier to
// obtain its category key, e.g. "pizza1" -> "pizza", "burger27" -> "burger".
func DeriveCategory(productId string) string {
	return strings.TrimRightFunc(productId, unicode.IsDigit)
}

// CategoryForProduct resolves a product identifier to its motor slot code.
func CategoryForProduct(productId string) (int, error) {
	category := DeriveCategory(productId)
	code, ok := constant.CategoryCodes[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return code, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, productId string) (*dto.OrderResponse, error) {
	code, err := CategoryForProduct(productId)
	if err != nil {
		return nil, err
	}

	stats := s.hub.DispatchOrder(code)

	if s.publisher != nil {
		event := events.NewOrderDispatched(productId, code, stats.Attempted, stats.Delivered)
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Audit is best-effort too; the order already went out.
			s.logger.Warn("Order", "Failed to publish audit event", map[string]interface{}{
				"product_id": productId,
				"error":      err.Error(),
			})
		}
	}

	return &dto.OrderResponse{
		Success:   true,
		Message:   "Order sent to dispenser",
		Category:  code,
		Delivered: stats.Delivered,
	}, nil
}
