package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeChunk is one retrievable slice of the product knowledge document.
// Chunks are immutable once stored.
type KnowledgeChunk struct {
	Id         uuid.UUID
	Document   string
	Embedding  []float32
	ChunkIndex int
	ChunkType  string
	CreatedAt  time.Time
}

const ChunkTypeProductInfo = "product_info"
