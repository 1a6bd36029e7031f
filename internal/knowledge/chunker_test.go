package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChunkGroupsParagraphs(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph\n\nthird paragraph"
	chunks := Chunk(text, 40)
	require.Len(t, chunks, 2)
	require.Equal(t, "first paragraph\n\nsecond paragraph", chunks[0].Text)
	require.Equal(t, "third paragraph", chunks[1].Text)
	for i, chunk := range chunks {
		require.Equal(t, i, chunk.ID)
		require.LessOrEqual(t, len(chunk.Text), 40)
	}
}

func TestChunkHardSplitsOverlongParagraph(t *testing.T) {
	para := strings.Repeat("x", 25)
	chunks := Chunk(para, 10)
	require.Len(t, chunks, 3)
	require.Equal(t, strings.Repeat("x", 10), chunks[0].Text)
	require.Equal(t, strings.Repeat("x", 10), chunks[1].Text)
	require.Equal(t, strings.Repeat("x", 5), chunks[2].Text)
}

func TestChunkPreservesAllContent(t *testing.T) {
	text := "alpha\n\nbeta\n\ngamma delta\n\nepsilon"
	chunks := Chunk(text, 12)
	var joined strings.Builder
	for _, chunk := range chunks {
		joined.WriteString(chunk.Text)
		joined.WriteString(" ")
	}
	for _, word := range []string{"alpha", "beta", "gamma", "delta", "epsilon"} {
		require.Contains(t, joined.String(), word)
	}
}

func TestChunkSkipsBlankParagraphs(t *testing.T) {
	require.Empty(t, Chunk("", 100))
	require.Empty(t, Chunk("\n\n  \n\n\t\n\n", 100))
}

func TestChunkRejectsNonPositiveLimit(t *testing.T) {
	require.Nil(t, Chunk("some text", 0))
	require.Nil(t, Chunk("some text", -5))
}
