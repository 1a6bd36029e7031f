package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

func TestComposeOrdering(t *testing.T) {
	history := []model.ChatTurn{
		{Role: model.RoleUser, Text: "hi"},
		{Role: model.RoleModel, Text: "hello!"},
	}
	prompt := Compose(model.IntentProject, "tell me about triagedai", history, []string{"TriagedAI context"}, false)

	voice := strings.Index(prompt, "You are AI Abdarrahman")
	hint := strings.Index(prompt, "IMPORTANT: Always end")
	ctxBlock := strings.Index(prompt, "CONTEXT:")
	hist := strings.Index(prompt, "CONVERSATION SO FAR:")
	question := strings.Index(prompt, "User Question: tell me about triagedai")

	require.Equal(t, 0, voice)
	require.Greater(t, hint, voice)
	require.Greater(t, ctxBlock, hint)
	require.Greater(t, hist, ctxBlock)
	require.Greater(t, question, hist)
}

func TestComposeUsesRetrievedContext(t *testing.T) {
	prompt := Compose(model.IntentDeep, "how does it work", nil, []string{"chunk one", "chunk two"}, false)
	require.Contains(t, prompt, "CONTEXT:\nchunk one\n\nchunk two")
}

func TestComposeFallsBackToFactCards(t *testing.T) {
	prompt := Compose(model.IntentProject, "what have you built", nil, nil, false)
	require.Contains(t, prompt, "CONTEXT:")
	require.Contains(t, prompt, "TriagedAI")
}

func TestComposePersonalUsesAboutCards(t *testing.T) {
	prompt := Compose(model.IntentPersonal, "who are you", nil, nil, false)
	require.Contains(t, prompt, "CON-FO-DI")
	require.NotContains(t, prompt, "CONTEXT:\nTriagedAI")
}

func TestComposeCasualSkipsContext(t *testing.T) {
	prompt := Compose(model.IntentCasual, "hello", nil, nil, false)
	require.NotContains(t, prompt, "CONTEXT:")
}

func TestComposeHistoryWindow(t *testing.T) {
	var history []model.ChatTurn
	for i := 0; i < 10; i++ {
		history = append(history, model.ChatTurn{Role: model.RoleUser, Text: strings.Repeat("x", i+1)})
	}
	prompt := Compose(model.IntentCasual, "hello", history, nil, false)
	// Only the last 6 turns ride along.
	require.NotContains(t, prompt, "Visitor: xxxx\n")
	require.Contains(t, prompt, "Visitor: xxxxx\n")
	require.Contains(t, prompt, "Visitor: xxxxxxxxxx\n")
}

func TestComposeExpandOverridesHint(t *testing.T) {
	prompt := Compose(model.IntentCasual, "tell me everything", nil, nil, true)
	require.Contains(t, prompt, "detailed, comprehensive answer")
	require.NotContains(t, prompt, "2-3 complete sentences")
}
