package rag

import (
	"context"
	"math"
	"sort"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/ai"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/knowledge"
)

// Guards the similarity denominator against zero vectors.
const simEpsilon = 1e-8

const cardFallbackLimit = 2

// Retriever ranks stored chunks by cosine similarity to the query. When the
// store is unloaded or the query can't be embedded it degrades to the
// keyword fact-card fallback instead of failing: retrieval never returns
// nothing while any knowledge exists.
type Retriever struct {
	store    *Store
	embedder ai.IEmbedder
	topK     int
}

func NewRetriever(store *Store, embedder ai.IEmbedder, topK int) *Retriever {
	if topK <= 0 {
		topK = 3
	}
	return &Retriever{store: store, embedder: embedder, topK: topK}
}

// Retrieve returns the context texts for query and whether vector retrieval
// served them (false means the fact-card fallback was used).
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]string, bool) {
	if k <= 0 {
		k = r.topK
	}
	if !r.store.Loaded() {
		return r.cardFallback(query), false
	}
	queryVec, err := r.embedder.Embed(ctx, query, "RETRIEVAL_QUERY")
	if err != nil {
		logutil.GetLogger(ctx).Warn("query embedding failed, using fact cards", zap.Error(err))
		return r.cardFallback(query), false
	}

	chunks, vectors := r.store.Snapshot()
	type scored struct {
		index int
		score float64
	}
	matches := make([]scored, len(vectors))
	for i, vec := range vectors {
		matches[i] = scored{index: i, score: cosineSimilarity(queryVec, vec)}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	if k > len(matches) {
		k = len(matches)
	}
	texts := make([]string, 0, k)
	for _, m := range matches[:k] {
		texts = append(texts, chunks[m.index].Text)
	}
	return texts, true
}

func (r *Retriever) cardFallback(query string) []string {
	cards := knowledge.MatchCards(query, cardFallbackLimit)
	texts := make([]string, 0, len(cards))
	for _, card := range cards {
		texts = append(texts, knowledge.RenderCard(card))
	}
	return texts
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	return dot / (math.Sqrt(normA)*math.Sqrt(normB) + simEpsilon)
}
