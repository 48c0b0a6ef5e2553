package search

import (
	"context"
	"strings"

	"sales-assistant-be/internal/pkg/logger"
	"sales-assistant-be/internal/repository/contract"
	"sales-assistant-be/pkg/embedding"
)

const DefaultTopK = 3

// ContextRetriever produces a knowledge context string for a user query.
type ContextRetriever interface {
	Retrieve(ctx context.Context, query string) string
}

// Retriever embeds the query and fetches the nearest knowledge chunks,
// joined into one context string.
type Retriever struct {
	chunkRepo         contract.KnowledgeChunkRepository
	embeddingProvider embedding.EmbeddingProvider
	logger            logger.ILogger
	topK              int
}

func NewRetriever(
	chunkRepo contract.KnowledgeChunkRepository,
	embeddingProvider embedding.EmbeddingProvider,
	log logger.ILogger,
) *Retriever {
	return &Retriever{
		chunkRepo:         chunkRepo,
		embeddingProvider: embeddingProvider,
		logger:            log,
		topK:              DefaultTopK,
	}
}

// Retrieve returns the joined chunk texts nearest to the query. Failures are
// logged and degrade to an empty context; they never reach the caller.
func (r *Retriever) Retrieve(ctx context.Context, query string) string {
	count, err := r.chunkRepo.Count(ctx)
	if err != nil {
		r.logger.Warn("retriever", "Failed to count knowledge chunks", map[string]interface{}{"error": err.Error()})
		return ""
	}
	if count == 0 {
		r.logger.Warn("retriever", "Knowledge base is empty", nil)
		return ""
	}

	queryEmbedding, err := r.embeddingProvider.Embed(query)
	if err != nil {
		r.logger.Warn("retriever", "Failed to embed query", map[string]interface{}{"error": err.Error()})
		return ""
	}

	chunks, err := r.chunkRepo.SearchSimilar(ctx, queryEmbedding, r.topK)
	if err != nil {
		r.logger.Warn("retriever", "Similarity search failed", map[string]interface{}{"error": err.Error()})
		return ""
	}

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Document)
	}

	relevant := strings.Join(texts, " ")
	r.logger.Debug("retriever", "Retrieved context", map[string]interface{}{
		"query_prefix": truncate(query, 50),
		"context_len":  len(relevant),
	})
	return relevant
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
