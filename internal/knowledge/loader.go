package knowledge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xxxsen/common/logutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/config"
)

// Loader fetches the static context documents the chatbot is grounded on.
// A failed source is logged and skipped; if every source fails the combined
// text is empty and retrieval falls back to fact cards.
type Loader struct {
	sources []config.KnowledgeSource
	client  *http.Client
}

func NewLoader(sources []config.KnowledgeSource, timeout time.Duration) *Loader {
	return &Loader{
		sources: sources,
		client:  &http.Client{Timeout: timeout},
	}
}

// LoadAll fetches every configured source and concatenates the results with a
// provenance separator so chunks remain traceable to their source document.
func (l *Loader) LoadAll(ctx context.Context) string {
	logger := logutil.GetLogger(ctx)
	var parts []string
	for _, src := range l.sources {
		text, err := l.fetch(ctx, src)
		if err != nil {
			logger.Warn("knowledge source skipped", zap.String("source", src.Name), zap.Error(err))
			continue
		}
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("--- source: %s ---", src.Name), text)
	}
	logger.Info("knowledge sources loaded", zap.Int("total", len(l.sources)), zap.Int("loaded", len(parts)/2))
	return strings.Join(parts, "\n\n")
}

func (l *Loader) fetch(ctx context.Context, src config.KnowledgeSource) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("fetch %s: %s", src.URL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(body))
	if src.Format == "markdown" {
		text = MarkdownToText(text)
	}
	return text, nil
}

// MarkdownToText strips markdown syntax, keeping one paragraph per block so
// the chunker's paragraph splitting still applies.
func MarkdownToText(markdown string) string {
	md := goldmark.New()
	reader := gmtext.NewReader([]byte(markdown))
	doc := md.Parser().Parse(reader)

	var blocks []string
	for node := doc.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *ast.FencedCodeBlock:
			var sb strings.Builder
			for i := 0; i < n.Lines().Len(); i++ {
				line := n.Lines().At(i)
				sb.Write(line.Value(reader.Source()))
			}
			if code := strings.TrimSpace(sb.String()); code != "" {
				blocks = append(blocks, code)
			}
		default:
			if txt := extractText(node, reader.Source()); txt != "" {
				blocks = append(blocks, txt)
			}
		}
	}
	return strings.Join(blocks, "\n\n")
}

func extractText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node.Kind() == ast.KindText {
			sb.Write(node.(*ast.Text).Segment.Value(source))
			if node.(*ast.Text).HardLineBreak() || node.(*ast.Text).SoftLineBreak() {
				sb.WriteByte('\n')
			}
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}
