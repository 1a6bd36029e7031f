package model

// KnowledgeChunk is the unit of embedding and retrieval. IDs are the 0-based
// output index of one chunking run and are not stable across knowledge
// versions.
type KnowledgeChunk struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}
