package knowledge

import (
	"regexp"
	"strings"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)

// Chunk splits text into paragraph-aligned chunks of at most maxChars
// characters. Paragraphs are accumulated greedily; a single paragraph longer
// than maxChars is hard-split at fixed character boundaries with no regard
// for word or sentence breaks. Chunk IDs are the 0-based output index and
// chunk order matches input order.
func Chunk(text string, maxChars int) []model.KnowledgeChunk {
	if maxChars <= 0 {
		return nil
	}
	var chunks []model.KnowledgeChunk
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		chunks = append(chunks, model.KnowledgeChunk{ID: len(chunks), Text: buf.String()})
		buf.Reset()
	}

	for _, para := range paragraphBreak.Split(text, -1) {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) > maxChars {
			flush()
			for start := 0; start < len(para); start += maxChars {
				end := start + maxChars
				if end > len(para) {
					end = len(para)
				}
				chunks = append(chunks, model.KnowledgeChunk{ID: len(chunks), Text: para[start:end]})
			}
			continue
		}
		if buf.Len() > 0 && buf.Len()+2+len(para) > maxChars {
			flush()
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(para)
	}
	flush()
	return chunks
}
