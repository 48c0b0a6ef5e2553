package bootstrap

import (
	"log"
	"math/rand"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"sales-assistant-be/internal/config"
	"sales-assistant-be/internal/controller"
	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/internal/repository/implementation"
	"sales-assistant-be/internal/repository/memory"
	"sales-assistant-be/internal/service"
	"sales-assistant-be/pkg/embedding"
	"sales-assistant-be/pkg/llm/factory"
	"sales-assistant-be/pkg/rag/response"
	"sales-assistant-be/pkg/rag/search"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController
	LeadController controller.ILeadController

	// Background Services (Exposed for main.go to run)
	CrmService service.ICrmService

	// Startup Services
	KnowledgeService service.IKnowledgeService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.OpenAIAPIKey != "" {
		embeddingProvider = embedding.WithFallback(
			embedding.NewOpenAIProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.EmbeddingModel),
		)
		log.Printf("[INFO] Using Embedding Provider: OPENAI (%s)", cfg.Ai.EmbeddingModel)
	} else {
		embeddingProvider = embedding.NewDeterministicProvider()
		log.Printf("[WARN] No OpenAI key configured, using deterministic embeddings")
	}

	llmProvider, err := factory.NewLLMProvider(cfg.Ai.OpenAIAPIKey, cfg.Ai.ChatModel)
	llmEnabled := err == nil
	if err != nil {
		llmProvider = nil
		sysLogger.Warn("bootstrap", "LLM provider unavailable, running in fallback-only mode", map[string]interface{}{
			"reason": err.Error(),
		})
	} else {
		log.Printf("[INFO] Using LLM Provider: OPENAI (%s)", cfg.Ai.ChatModel)
	}

	// 4. Repositories
	chunkRepo := implementation.NewKnowledgeChunkRepository(db)
	leadRepo := implementation.NewLeadRepository(db)
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	retriever := search.NewRetriever(chunkRepo, embeddingProvider, sysLogger)
	generator := response.NewGenerator(llmProvider, rand.New(rand.NewSource(rand.Int63())), sysLogger)

	knowledgeService := service.NewKnowledgeService(chunkRepo, embeddingProvider, cfg.Knowledge.FilePath, sysLogger)
	chatService := service.NewChatService(sessionRepo, retriever, generator, knowledgeService, leadRepo, llmEnabled, sysLogger)
	leadService := service.NewLeadService(leadRepo, sessionRepo, pubSub, cfg.Crm.LeadTopic, sysLogger)
	crmService := service.NewCrmService(pubSub, cfg.Crm.LeadTopic, cfg.Crm.WebhookURL, sysLogger)

	// 6. Controllers
	chatController := controller.NewChatController(chatService, knowledgeService)
	leadController := controller.NewLeadController(leadService)

	return &Container{
		ChatController:   chatController,
		LeadController:   leadController,
		CrmService:       crmService,
		KnowledgeService: knowledgeService,
		Logger:           sysLogger,
	}
}
