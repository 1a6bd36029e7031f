package job

import (
	"context"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/rag"
)

// KnowledgeRefreshJob rebuilds the knowledge index from its sources so
// content edits land without a restart.
type KnowledgeRefreshJob struct {
	store   *rag.Store
	version string
}

func NewKnowledgeRefreshJob(store *rag.Store, version string) *KnowledgeRefreshJob {
	return &KnowledgeRefreshJob{store: store, version: version}
}

func (j *KnowledgeRefreshJob) Name() string {
	return "knowledge_refresh"
}

func (j *KnowledgeRefreshJob) Run(ctx context.Context) error {
	if j.store == nil {
		return nil
	}
	return j.store.Build(ctx, j.version)
}
