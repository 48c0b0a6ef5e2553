package embedding

// Dimension is the vector width of all stored embeddings. It matches
// OpenAI text-embedding-3-small; the deterministic fallback produces the same
// width so nearest-neighbor queries always receive a valid vector.
const Dimension = 1536

// EmbeddingProvider defines the interface for generating text embeddings
type EmbeddingProvider interface {
	Embed(text string) ([]float32, error)
}
