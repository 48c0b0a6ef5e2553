package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-assistant-be/pkg/embedding"
)

func writeKnowledgeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "info.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPopulateIfEmptySeedsStore(t *testing.T) {
	repo := &fakeChunkRepo{}
	content := strings.Repeat("warehouse management accuracy picking throughput ", 40)
	svc := NewKnowledgeService(repo, embedding.NewDeterministicProvider(), writeKnowledgeFile(t, content), nopLogger{})

	stored, err := svc.PopulateIfEmpty(context.Background())
	require.NoError(t, err)

	assert.Greater(t, stored, 0)
	assert.Len(t, repo.chunks, stored)
	for i, chunk := range repo.chunks {
		assert.Equal(t, i, chunk.ChunkIndex)
		assert.Len(t, chunk.Embedding, embedding.Dimension)
	}
}

func TestPopulateIfEmptyIsIdempotent(t *testing.T) {
	repo := &fakeChunkRepo{}
	content := strings.Repeat("warehouse management accuracy picking throughput ", 40)
	svc := NewKnowledgeService(repo, embedding.NewDeterministicProvider(), writeKnowledgeFile(t, content), nopLogger{})

	first, err := svc.PopulateIfEmpty(context.Background())
	require.NoError(t, err)
	require.Greater(t, first, 0)

	second, err := svc.PopulateIfEmpty(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, second)
	assert.Equal(t, 1, repo.createCalls)
}

func TestPopulateIfEmptyFallsBackToBuiltinDocument(t *testing.T) {
	repo := &fakeChunkRepo{}
	svc := NewKnowledgeService(repo, embedding.NewDeterministicProvider(), "does-not-exist.txt", nopLogger{})

	stored, err := svc.PopulateIfEmpty(context.Background())
	require.NoError(t, err)

	require.Greater(t, stored, 0)
	assert.Contains(t, repo.chunks[0].Document, "PALMS")
}

func TestRefreshReplacesStore(t *testing.T) {
	repo := &fakeChunkRepo{}
	content := "## Features\n" + strings.Repeat("accuracy picking speed ", 30) +
		"\n## Pricing\n" + strings.Repeat("roi payback period ", 30)
	svc := NewKnowledgeService(repo, embedding.NewDeterministicProvider(), writeKnowledgeFile(t, content), nopLogger{})

	_, err := svc.PopulateIfEmpty(context.Background())
	require.NoError(t, err)

	stored, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.deleteCalls)
	assert.Greater(t, stored, 0)
	assert.Len(t, repo.chunks, stored)
}
