package mapper

import (
	"sales-assistant-be/internal/entity"
	"sales-assistant-be/internal/model"

	"github.com/pgvector/pgvector-go"
)

type KnowledgeChunkMapper struct{}

func NewKnowledgeChunkMapper() *KnowledgeChunkMapper {
	return &KnowledgeChunkMapper{}
}

func (m *KnowledgeChunkMapper) ToEntity(c *model.KnowledgeChunk) *entity.KnowledgeChunk {
	if c == nil {
		return nil
	}
	return &entity.KnowledgeChunk{
		Id:         c.Id,
		Document:   c.Document,
		Embedding:  c.EmbeddingValue.Slice(),
		ChunkIndex: c.ChunkIndex,
		ChunkType:  c.ChunkType,
		CreatedAt:  c.CreatedAt,
	}
}

func (m *KnowledgeChunkMapper) ToModel(c *entity.KnowledgeChunk) *model.KnowledgeChunk {
	if c == nil {
		return nil
	}
	return &model.KnowledgeChunk{
		Id:             c.Id,
		Document:       c.Document,
		EmbeddingValue: pgvector.NewVector(c.Embedding),
		ChunkIndex:     c.ChunkIndex,
		ChunkType:      c.ChunkType,
		CreatedAt:      c.CreatedAt,
	}
}
