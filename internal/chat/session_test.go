package chat

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/ai"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
	last  string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.last = prompt
	return s.reply, s.err
}

func TestSessionSendRecordsHistory(t *testing.T) {
	gen := &stubGenerator{reply: "I work at Oracle as a Cloud Support Engineer."}
	session := NewSession(gen, nil, 0, 3)

	reply, err := session.Send(context.Background(), "where do you work?", SendOptions{})
	require.NoError(t, err)
	require.Contains(t, reply, "Oracle")

	history := session.History()
	require.Len(t, history, 2)
	require.Equal(t, model.RoleUser, history[0].Role)
	require.Equal(t, "where do you work?", history[0].Text)
	require.Equal(t, model.RoleModel, history[1].Role)
}

func TestSessionSendFallsBackOnGenerateError(t *testing.T) {
	gen := &stubGenerator{err: fmt.Errorf("backend down")}
	session := NewSession(gen, nil, 0, 3)

	reply, err := session.Send(context.Background(), "where do you work?", SendOptions{})
	require.NoError(t, err)
	require.Contains(t, reply, "Cloud Support Engineer")
	// A failed turn is not recorded, so a retry starts clean.
	require.Empty(t, session.History())
}

func TestSessionSendFallsBackOnDegenerateReply(t *testing.T) {
	gen := &stubGenerator{reply: " "}
	session := NewSession(gen, nil, 0, 3)

	reply, err := session.Send(context.Background(), "tell me about advancely", SendOptions{})
	require.NoError(t, err)
	require.Contains(t, reply, "Advancely")
	require.Empty(t, session.History())
}

func TestSessionSendSurfacesUnavailable(t *testing.T) {
	gen := &stubGenerator{err: ai.ErrUnavailable}
	session := NewSession(gen, nil, 0, 3)

	_, err := session.Send(context.Background(), "hello", SendOptions{})
	require.ErrorIs(t, err, ai.ErrUnavailable)
}

func TestSessionSendCompletesSentence(t *testing.T) {
	gen := &stubGenerator{reply: "First sentence. Second trails of"}
	session := NewSession(gen, nil, 0, 3)

	reply, err := session.Send(context.Background(), "hello", SendOptions{})
	require.NoError(t, err)
	require.Equal(t, "First sentence.", reply)
}

func TestSessionSendUsesProvidedCards(t *testing.T) {
	gen := &stubGenerator{reply: "Sure thing."}
	session := NewSession(gen, nil, 0, 3)

	_, err := session.Send(context.Background(), "tell me about triagedai", SendOptions{
		RetrievedCards: []string{"custom context line"},
	})
	require.NoError(t, err)
	require.Contains(t, gen.last, "custom context line")
}

func TestSessionSendExpandKeyword(t *testing.T) {
	gen := &stubGenerator{reply: "Long answer."}
	session := NewSession(gen, nil, 0, 3)

	_, err := session.Send(context.Background(), "give me more details on advancely", SendOptions{})
	require.NoError(t, err)
	require.Contains(t, gen.last, "detailed, comprehensive answer")
}
