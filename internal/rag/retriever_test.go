package rag

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	return s.vec, s.err
}

func (s *stubEmbedder) ModelName() string { return "stub" }

func loadedStore(t *testing.T, chunks []model.KnowledgeChunk, vectors [][]float32) *Store {
	t.Helper()
	store := NewStore(nil, nil, t.TempDir(), 1200)
	store.chunks = chunks
	store.vectors = vectors
	store.loaded = true
	return store
}

func TestRetrieveRanksBySimilarity(t *testing.T) {
	store := loadedStore(t,
		[]model.KnowledgeChunk{{ID: 0, Text: "far"}, {ID: 1, Text: "near"}, {ID: 2, Text: "mid"}},
		[][]float32{{0, 1}, {1, 0}, {0.7, 0.7}},
	)
	retriever := NewRetriever(store, &stubEmbedder{vec: []float32{1, 0}}, 3)

	texts, fromIndex := retriever.Retrieve(context.Background(), "query", 2)
	require.True(t, fromIndex)
	require.Equal(t, []string{"near", "mid"}, texts)
}

func TestRetrieveCapsAtStoredChunks(t *testing.T) {
	store := loadedStore(t,
		[]model.KnowledgeChunk{{ID: 0, Text: "only"}},
		[][]float32{{1, 0}},
	)
	retriever := NewRetriever(store, &stubEmbedder{vec: []float32{1, 0}}, 3)

	texts, fromIndex := retriever.Retrieve(context.Background(), "query", 5)
	require.True(t, fromIndex)
	require.Equal(t, []string{"only"}, texts)
}

func TestRetrieveFallsBackWhenStoreUnloaded(t *testing.T) {
	store := NewStore(nil, nil, t.TempDir(), 1200)
	retriever := NewRetriever(store, &stubEmbedder{vec: []float32{1}}, 3)

	texts, fromIndex := retriever.Retrieve(context.Background(), "triagedai", 3)
	require.False(t, fromIndex)
	require.NotEmpty(t, texts)
	require.Contains(t, texts[0], "TriagedAI")
}

func TestRetrieveFallsBackOnEmbedError(t *testing.T) {
	store := loadedStore(t,
		[]model.KnowledgeChunk{{ID: 0, Text: "alpha"}},
		[][]float32{{1}},
	)
	retriever := NewRetriever(store, &stubEmbedder{err: fmt.Errorf("embed down")}, 3)

	texts, fromIndex := retriever.Retrieve(context.Background(), "anything", 3)
	require.False(t, fromIndex)
	require.NotEmpty(t, texts)
}

func TestCosineSimilarity(t *testing.T) {
	require.InDelta(t, 1.0, cosineSimilarity([]float32{1, 0}, []float32{1, 0}), 1e-6)
	require.InDelta(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	require.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1}))
	require.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{0, 0}))
}
