package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/ai"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/knowledge"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

// Store holds the chunk/vector pairs for the knowledge base, persisted to a
// cache file keyed by content version so a restart skips re-embedding when
// the knowledge hasn't changed. The cache is invalidated wholesale on a
// version change; there is no partial invalidation. Concurrent writers to the
// same cache file race benignly: last writer wins.
type Store struct {
	mu       sync.Mutex
	loader   *knowledge.Loader
	embedder ai.IEmbedder
	cacheDir string
	maxChars int

	chunks  []model.KnowledgeChunk
	vectors [][]float32
	loaded  bool
}

type cacheFile struct {
	Version string                 `json:"version"`
	Chunks  []model.KnowledgeChunk `json:"chunks"`
	Vectors [][]float32            `json:"vectors"`
}

func NewStore(loader *knowledge.Loader, embedder ai.IEmbedder, cacheDir string, maxChunkChars int) *Store {
	return &Store{
		loader:   loader,
		embedder: embedder,
		cacheDir: cacheDir,
		maxChars: maxChunkChars,
	}
}

func (s *Store) cachePath(version string) string {
	return filepath.Join(s.cacheDir, "RAG_"+version+".json")
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded && len(s.chunks) > 0
}

// Snapshot returns the current chunk and vector slices. Entries are never
// mutated after a build, so sharing the backing arrays is safe.
func (s *Store) Snapshot() ([]model.KnowledgeChunk, [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chunks, s.vectors
}

// Load hydrates the store from the persisted cache for version. Returns
// whether hydration succeeded; a missing, corrupt, or misaligned cache is a
// miss, never an error.
func (s *Store) Load(ctx context.Context, version string) bool {
	data, err := os.ReadFile(s.cachePath(version))
	if err != nil {
		return false
	}
	var cached cacheFile
	if err := json.Unmarshal(data, &cached); err != nil {
		logutil.GetLogger(ctx).Warn("rag cache unreadable, rebuilding", zap.String("version", version), zap.Error(err))
		return false
	}
	if cached.Version != version || len(cached.Chunks) != len(cached.Vectors) || len(cached.Chunks) == 0 {
		return false
	}
	s.mu.Lock()
	s.chunks = cached.Chunks
	s.vectors = cached.Vectors
	s.loaded = true
	s.mu.Unlock()
	logutil.GetLogger(ctx).Info("rag cache loaded", zap.String("version", version), zap.Int("chunks", len(cached.Chunks)))
	return true
}

// Save persists the chunk/vector pair under version. The write goes through a
// temp file and rename so a reader never observes a torn cache.
func (s *Store) Save(ctx context.Context, version string, chunks []model.KnowledgeChunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("chunk/vector count mismatch: %d vs %d", len(chunks), len(vectors))
	}
	if err := os.MkdirAll(s.cacheDir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.Marshal(cacheFile{Version: version, Chunks: chunks, Vectors: vectors})
	if err != nil {
		return fmt.Errorf("encode rag cache: %w", err)
	}
	path := s.cachePath(version)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write rag cache: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit rag cache: %w", err)
	}
	logutil.GetLogger(ctx).Info("rag cache saved", zap.String("version", version), zap.Int("chunks", len(chunks)))
	return nil
}

// Build runs the full pipeline: fetch sources, chunk, embed every chunk
// sequentially, then persist. An embedding failure partway through leaves the
// store unloaded and persists nothing, so the cache never holds a half-built
// index.
func (s *Store) Build(ctx context.Context, version string) error {
	logger := logutil.GetLogger(ctx)
	text := s.loader.LoadAll(ctx)
	chunks := knowledge.Chunk(text, s.maxChars)
	if len(chunks) == 0 {
		logger.Warn("no knowledge text available, store stays unloaded")
		s.reset()
		return nil
	}

	vectors := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		vec, err := s.embedder.Embed(ctx, chunk.Text, "RETRIEVAL_DOCUMENT")
		if err != nil {
			s.reset()
			return fmt.Errorf("embed chunk %d: %w", chunk.ID, err)
		}
		vectors = append(vectors, vec)
	}

	s.mu.Lock()
	s.chunks = chunks
	s.vectors = vectors
	s.loaded = true
	s.mu.Unlock()

	if err := s.Save(ctx, version, chunks, vectors); err != nil {
		// The in-memory index is complete; a failed persist only costs a
		// re-embed on the next cold start.
		logger.Warn("rag cache persist failed", zap.Error(err))
	}
	logger.Info("rag index built", zap.String("version", version), zap.Int("chunks", len(chunks)))
	return nil
}

// Warm is the standard startup path: hydrate from cache, build on a miss.
func (s *Store) Warm(ctx context.Context, version string) error {
	if s.Load(ctx, version) {
		return nil
	}
	return s.Build(ctx, version)
}

func (s *Store) reset() {
	s.mu.Lock()
	s.chunks = nil
	s.vectors = nil
	s.loaded = false
	s.mu.Unlock()
}
