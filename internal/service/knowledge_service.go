package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"sales-assistant-be/internal/constant"
	"sales-assistant-be/internal/entity"
	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/internal/repository/contract"
	"sales-assistant-be/pkg/embedding"
	"sales-assistant-be/pkg/rag/chunker"
)

type IKnowledgeService interface {
	PopulateIfEmpty(ctx context.Context) (int, error)
	Refresh(ctx context.Context) (int, error)
	ChunkCount(ctx context.Context) (int64, error)
}

type knowledgeService struct {
	chunkRepo         contract.KnowledgeChunkRepository
	embeddingProvider embedding.EmbeddingProvider
	filePath          string
	log               logger.ILogger
}

func NewKnowledgeService(
	chunkRepo contract.KnowledgeChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
	filePath string,
	log logger.ILogger,
) IKnowledgeService {
	return &knowledgeService{
		chunkRepo:         chunkRepo,
		embeddingProvider: embeddingProvider,
		filePath:          filePath,
		log:               log,
	}
}

// PopulateIfEmpty seeds the vector store on startup. An already populated
// store is left untouched so restarts do not duplicate chunks.
func (s *knowledgeService) PopulateIfEmpty(ctx context.Context) (int, error) {
	count, err := s.chunkRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count knowledge chunks: %w", err)
	}
	if count > 0 {
		s.log.Info("knowledge-service", "Knowledge base already populated", map[string]interface{}{
			"chunks": count,
		})
		return 0, nil
	}

	document := s.loadDocument()
	chunks := chunker.SplitWords(document, chunker.DefaultChunkWords, chunker.DefaultOverlapWords)
	return s.storeChunks(ctx, chunks)
}

// Refresh drops every stored chunk and re-ingests the knowledge document
// using section-aware splitting.
func (s *knowledgeService) Refresh(ctx context.Context) (int, error) {
	if err := s.chunkRepo.DeleteAll(ctx); err != nil {
		return 0, fmt.Errorf("clear knowledge chunks: %w", err)
	}

	document := s.loadDocument()
	chunks := chunker.SplitSections(document)
	return s.storeChunks(ctx, chunks)
}

func (s *knowledgeService) ChunkCount(ctx context.Context) (int64, error) {
	return s.chunkRepo.Count(ctx)
}

func (s *knowledgeService) loadDocument() string {
	content, err := os.ReadFile(s.filePath)
	if err != nil || len(strings.TrimSpace(string(content))) < 100 {
		s.log.Warn("knowledge-service", "Knowledge file unavailable, using builtin document", map[string]interface{}{
			"path": s.filePath,
		})
		return constant.BuiltinKnowledgeDocument
	}
	return string(content)
}

func (s *knowledgeService) storeChunks(ctx context.Context, chunks []string) (int, error) {
	entities := make([]*entity.KnowledgeChunk, 0, len(chunks))
	for _, chunk := range chunks {
		if !chunker.Meaningful(chunk) {
			continue
		}
		vector, err := s.embeddingProvider.Embed(chunk)
		if err != nil {
			return 0, fmt.Errorf("embed chunk %d: %w", len(entities), err)
		}
		entities = append(entities, &entity.KnowledgeChunk{
			Id:         uuid.New(),
			Document:   chunk,
			Embedding:  vector,
			ChunkIndex: len(entities),
			ChunkType:  entity.ChunkTypeProductInfo,
			CreatedAt:  time.Now(),
		})
	}

	if len(entities) == 0 {
		return 0, nil
	}

	if err := s.chunkRepo.CreateBulk(ctx, entities); err != nil {
		return 0, fmt.Errorf("store knowledge chunks: %w", err)
	}

	s.log.Info("knowledge-service", "Knowledge base populated", map[string]interface{}{
		"chunks": len(entities),
	})
	return len(entities), nil
}
