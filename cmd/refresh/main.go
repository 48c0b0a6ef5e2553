package main

import (
	"context"
	"log"
	"os"

	"github.com/fatih/color"

	"sales-assistant-be/internal/config"
	"sales-assistant-be/internal/model"
	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/internal/repository/implementation"
	"sales-assistant-be/internal/service"
	"sales-assistant-be/pkg/database"
	"sales-assistant-be/pkg/embedding"
)

// Force-refreshes the knowledge base from the configured knowledge file.
// Run this after editing the file to update retrieval immediately.
func main() {
	cfg := config.Load()

	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed, color.Bold)

	cyan.Println("🔄 Starting knowledge base refresh...")

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		red.Printf("❌ Unable to connect to database: %v\n", err)
		os.Exit(1)
	}

	if err := gormDB.AutoMigrate(&model.KnowledgeChunk{}); err != nil {
		red.Printf("❌ Unable to migrate database: %v\n", err)
		os.Exit(1)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, false)
	defer sysLogger.Sync()

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.OpenAIAPIKey != "" {
		embeddingProvider = embedding.WithFallback(
			embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel),
		)
		cyan.Printf("🧠 Embedding with %s\n", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewDeterministicProvider()
		log.Println("[WARN] No OpenAI key configured, using deterministic embeddings")
	}

	chunkRepo := implementation.NewKnowledgeChunkRepository(gormDB)
	knowledgeService := service.NewKnowledgeService(chunkRepo, embeddingProvider, cfg.Knowledge.FilePath, sysLogger)

	cyan.Printf("📄 Loading %s...\n", cfg.Knowledge.FilePath)
	stored, err := knowledgeService.Refresh(context.Background())
	if err != nil {
		red.Printf("❌ Refresh failed: %v\n", err)
		os.Exit(1)
	}

	green.Printf("✅ Knowledge base refreshed with %d chunks\n", stored)
}
