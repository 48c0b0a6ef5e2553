package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"sales-assistant-be/internal/entity"
	"sales-assistant-be/pkg/embedding"
)

type stubChunkRepo struct {
	count     int64
	countErr  error
	chunks    []*entity.KnowledgeChunk
	searchErr error
	gotLimit  int
}

func (r *stubChunkRepo) CreateBulk(ctx context.Context, chunks []*entity.KnowledgeChunk) error {
	return nil
}

func (r *stubChunkRepo) Count(ctx context.Context) (int64, error) {
	return r.count, r.countErr
}

func (r *stubChunkRepo) DeleteAll(ctx context.Context) error { return nil }

func (r *stubChunkRepo) SearchSimilar(ctx context.Context, emb []float32, limit int) ([]*entity.KnowledgeChunk, error) {
	r.gotLimit = limit
	return r.chunks, r.searchErr
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func TestRetrieveJoinsTopChunks(t *testing.T) {
	repo := &stubChunkRepo{
		count: 5,
		chunks: []*entity.KnowledgeChunk{
			{Document: "first chunk"},
			{Document: "second chunk"},
			{Document: "third chunk"},
		},
	}
	r := NewRetriever(repo, embedding.NewDeterministicProvider(), nopLogger{})

	got := r.Retrieve(context.Background(), "picking accuracy")

	assert.Equal(t, "first chunk second chunk third chunk", got)
	assert.Equal(t, DefaultTopK, repo.gotLimit)
}

func TestRetrieveEmptyStore(t *testing.T) {
	r := NewRetriever(&stubChunkRepo{count: 0}, embedding.NewDeterministicProvider(), nopLogger{})

	assert.Equal(t, "", r.Retrieve(context.Background(), "anything"))
}

func TestRetrieveDegradesOnErrors(t *testing.T) {
	t.Run("count error", func(t *testing.T) {
		repo := &stubChunkRepo{countErr: errors.New("db down")}
		r := NewRetriever(repo, embedding.NewDeterministicProvider(), nopLogger{})
		assert.Equal(t, "", r.Retrieve(context.Background(), "anything"))
	})

	t.Run("search error", func(t *testing.T) {
		repo := &stubChunkRepo{count: 5, searchErr: errors.New("index gone")}
		r := NewRetriever(repo, embedding.NewDeterministicProvider(), nopLogger{})
		assert.Equal(t, "", r.Retrieve(context.Background(), "anything"))
	})
}
