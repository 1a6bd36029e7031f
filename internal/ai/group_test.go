package ai

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptedGenerator struct {
	reply string
	err   error
	calls int
}

func (s *scriptedGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	return s.reply, s.err
}

type scriptedEmbedder struct {
	vec   []float32
	err   error
	calls int
}

func (s *scriptedEmbedder) Embed(ctx context.Context, text string, taskType string) ([]float32, error) {
	s.calls++
	return s.vec, s.err
}

func (s *scriptedEmbedder) ModelName() string { return "scripted" }

func TestGroupGeneratorUsesPrimaryFirst(t *testing.T) {
	primary := &scriptedGenerator{reply: "primary answer"}
	fallback := &scriptedGenerator{reply: "fallback answer"}
	group := NewGroupGenerator([]GeneratorEntry{
		{Name: "primary", Generator: primary},
		{Name: "fallback", Generator: fallback},
	})

	res, err := group.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "primary answer", res)
	require.Equal(t, 0, fallback.calls)
}

func TestGroupGeneratorFallsBack(t *testing.T) {
	primary := &scriptedGenerator{err: fmt.Errorf("primary down")}
	fallback := &scriptedGenerator{reply: "fallback answer"}
	group := NewGroupGenerator([]GeneratorEntry{
		{Name: "primary", Generator: primary},
		{Name: "fallback", Generator: fallback},
	})

	res, err := group.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	require.Equal(t, "fallback answer", res)
	require.Equal(t, 1, primary.calls)
}

func TestGroupGeneratorPropagatesLastError(t *testing.T) {
	group := NewGroupGenerator([]GeneratorEntry{
		{Name: "a", Generator: &scriptedGenerator{err: fmt.Errorf("first error")}},
		{Name: "b", Generator: &scriptedGenerator{err: fmt.Errorf("second error")}},
	})

	_, err := group.Generate(context.Background(), "prompt")
	require.ErrorContains(t, err, "second error")
}

func TestGroupEmbedderFallsBack(t *testing.T) {
	group := NewGroupEmbedder([]EmbedderEntry{
		{Name: "a", Embedder: &scriptedEmbedder{err: fmt.Errorf("down")}},
		{Name: "b", Embedder: &scriptedEmbedder{vec: []float32{1, 2}}},
	})

	vec, err := group.Embed(context.Background(), "text", "RETRIEVAL_QUERY")
	require.NoError(t, err)
	require.Equal(t, []float32{1, 2}, vec)
	require.Equal(t, "a|b", group.ModelName())
}

func TestGroupConstructorsRejectEmpty(t *testing.T) {
	require.Nil(t, NewGroupGenerator(nil))
	require.Nil(t, NewGroupEmbedder(nil))
}
