package main

import (
	"context"
	"log"

	"helpdesk-chatbot-be/internal/bootstrap"
	"helpdesk-chatbot-be/internal/config"
	"helpdesk-chatbot-be/internal/server"
	"helpdesk-chatbot-be/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Indexer Service...")
		if err := container.IndexerService.Consume(context.Background()); err != nil {
			log.Printf("Background Indexer Error: %v", err)
		}
	}()

	// Warm the matching index so the first chat request doesn't pay the
	// build cost. A failure here is not fatal; queries retry lazily.
	go func() {
		if err := container.MatchingEngine.EnsureReady(context.Background()); err != nil {
			log.Printf("Background: Initial index build failed: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
