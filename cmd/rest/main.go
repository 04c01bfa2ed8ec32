package main

import (
	"context"
	"log"

	"smart-menu-be/internal/bootstrap"
	"smart-menu-be/internal/config"
	"smart-menu-be/internal/server"
	"smart-menu-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Keys.GoogleGemini == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	// 2. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Probe the completion service before accepting traffic
	probeCtx, cancel := context.WithTimeout(context.Background(), cfg.Ai.Timeout)
	defer cancel()
	if _, err := container.LLM.Generate(probeCtx, "test"); err != nil {
		log.Fatalf("Completion service connectivity probe failed: %v", err)
	}
	log.Println("Completion service connected")

	// 5. Initialize and run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
