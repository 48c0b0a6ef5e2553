package contract

import (
	"context"

	"sales-assistant-be/internal/entity"
)

type KnowledgeChunkRepository interface {
	CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error
	Count(ctx context.Context) (int64, error)
	DeleteAll(ctx context.Context) error
	// SearchSimilar returns the chunks nearest to the query embedding by
	// pgvector cosine distance.
	SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*entity.KnowledgeChunk, error)
}
