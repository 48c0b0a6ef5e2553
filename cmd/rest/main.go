package main

import (
	"context"
	"log"

	"sales-assistant-be/internal/bootstrap"
	"sales-assistant-be/internal/config"
	"sales-assistant-be/internal/model"
	"sales-assistant-be/internal/server"
	"sales-assistant-be/internal/tracer"
	"sales-assistant-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.KnowledgeChunk{}, &model.Lead{}); err != nil {
		log.Panicf("Unable to migrate database: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Seed Knowledge Base
	if _, err := container.KnowledgeService.PopulateIfEmpty(context.Background()); err != nil {
		log.Panicf("Unable to populate knowledge base: %v", err)
	}

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting CRM Forwarder...")
		if err := container.CrmService.Consume(context.Background()); err != nil {
			log.Printf("Background CRM Forwarder Error: %v", err)
		}
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
