package knowledge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

func TestMatchCardsByName(t *testing.T) {
	cards := MatchCards("tell me about triagedai", 2)
	require.NotEmpty(t, cards)
	require.Equal(t, "TriagedAI", cards[0].Name)
}

func TestMatchCardsByStackTerm(t *testing.T) {
	cards := MatchCards("do you use pytorch?", 2)
	require.NotEmpty(t, cards)
	require.Equal(t, "Brain Tumor Segmentation", cards[0].Name)
}

func TestMatchCardsFallsBackToFirstCards(t *testing.T) {
	cards := MatchCards("completely unrelated query", 2)
	require.Len(t, cards, 2)
	require.Equal(t, factCards[0].Name, cards[0].Name)
	require.Equal(t, factCards[1].Name, cards[1].Name)
}

func TestMatchCardsNeverEmpty(t *testing.T) {
	require.NotEmpty(t, MatchCards("", 2))
}

func TestCardsByKind(t *testing.T) {
	for _, card := range CardsByKind(model.CardKindAbout) {
		require.Equal(t, model.CardKindAbout, card.Kind)
	}
	require.NotEmpty(t, CardsByKind(model.CardKindProject))
}

func TestRenderCard(t *testing.T) {
	line := RenderCard(model.FactCard{
		Name:     "Demo",
		OneLiner: "does a thing",
		Stack:    []string{"Go", "React"},
		Features: []string{"fast"},
	})
	require.Equal(t, "Demo: does a thing (Stack: Go, React) [fast]", line)
}
