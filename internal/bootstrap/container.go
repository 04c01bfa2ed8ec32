package bootstrap

import (
	"context"
	"log"

	"smart-menu-be/internal/config"
	"smart-menu-be/internal/constant"
	"smart-menu-be/internal/controller"
	"smart-menu-be/internal/handler"
	"smart-menu-be/internal/pkg/logger"
	"smart-menu-be/internal/repository/memory"
	"smart-menu-be/internal/service"
	"smart-menu-be/internal/websocket"
	"smart-menu-be/pkg/llm"
	"smart-menu-be/pkg/llm/gemini"
	"smart-menu-be/pkg/tts/elevenlabs"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	MenuController  controller.IMenuController
	ChatController  controller.IChatController
	OrderController controller.IOrderController
	TTSController   controller.ITTSController

	// WebSocket channel
	DeviceHandler *handler.DeviceHandler
	Hub           *websocket.Hub

	// Exposed for the startup connectivity probe in main
	LLM llm.LLMProvider
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	deviceLogger := logger.NewIsolatedLogger(cfg.App.DeviceLogFilePath)

	// 2. Catalog (read-only; load failure degrades endpoints, not the process)
	catalog, err := memory.NewCatalogRepository(cfg.App.CatalogPath)
	if err != nil {
		sysLogger.Error("Bootstrap", "Failed to load catalog", map[string]interface{}{
			"path":  cfg.App.CatalogPath,
			"error": err.Error(),
		})
		catalog = nil
	} else {
		log.Printf("[INFO] Catalog loaded: %d products in %d categories",
			catalog.TotalProducts(), len(catalog.CategoryNames()))
	}

	// 3. Providers
	llmProvider := gemini.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.Model, cfg.Ai.Timeout)
	ttsClient := elevenlabs.NewClient(cfg.Keys.ElevenLabs, cfg.Tts.VoiceID, cfg.Tts.ModelID, cfg.Tts.Timeout)

	// 4. Event Bus (in-process order audit trail)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	publisherService := service.NewPublisherService(constant.OrderDispatchedTopic, pubSub)
	auditService := service.NewAuditService(pubSub, constant.OrderDispatchedTopic, deviceLogger)
	if err := auditService.Consume(context.Background()); err != nil {
		sysLogger.Warn("Bootstrap", "Audit consumer failed to start", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// 5. WebSocket Hub (client registry + dispatch engine)
	hub := websocket.NewHub(deviceLogger)

	// 6. Services
	chatService := service.NewChatService(catalog, llmProvider, sysLogger,
		llm.WithTemperature(cfg.Ai.Temperature), llm.WithMaxTokens(cfg.Ai.MaxTokens))
	orderService := service.NewOrderService(hub, publisherService, sysLogger)
	ttsService := service.NewTTSService(ttsClient, cfg.Tts.CacheTTL, sysLogger)
	menuService := service.NewMenuService(catalog, llmProvider)

	// 7. Controllers & Handlers
	return &Container{
		MenuController:  controller.NewMenuController(menuService),
		ChatController:  controller.NewChatController(chatService),
		OrderController: controller.NewOrderController(orderService),
		TTSController:   controller.NewTTSController(ttsService),
		DeviceHandler:   handler.NewDeviceHandler(hub, deviceLogger),
		Hub:             hub,
		LLM:             llmProvider,
	}
}
