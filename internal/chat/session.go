package chat

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/ai"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/rag"
)

var expandRegex = regexp.MustCompile(`\b(expand|details|more|deep dive)\b`)

// SendOptions tune a single Send call.
type SendOptions struct {
	// Expand forces the detailed style hint regardless of message wording.
	Expand bool
	// RetrievedCards, when non-empty, replaces the retrieval step with
	// caller-supplied context snippets.
	RetrievedCards []string
}

// Session holds one visitor conversation. It is not safe for concurrent use;
// callers own one session per conversation.
type Session struct {
	generator ai.IGenerator
	retriever *rag.Retriever
	history   []model.ChatTurn
	timeout   time.Duration
	topK      int
}

func NewSession(generator ai.IGenerator, retriever *rag.Retriever, timeout time.Duration, topK int) *Session {
	return &Session{
		generator: generator,
		retriever: retriever,
		timeout:   timeout,
		topK:      topK,
	}
}

// History returns the turns recorded so far.
func (s *Session) History() []model.ChatTurn {
	return s.history
}

// SetHistory seeds the conversation, e.g. when the transport carries history
// on each request instead of holding a server-side session.
func (s *Session) SetHistory(turns []model.ChatTurn) {
	s.history = turns
}

// Send runs one full turn: classify, retrieve context, compose, generate,
// post-process. Generation failures degrade to the intent fallback instead of
// returning an error; only a fully unconfigured provider surfaces as
// ai.ErrUnavailable. History records the exchange only when generation
// succeeded, so a failed turn can be retried cleanly.
func (s *Session) Send(ctx context.Context, message string, opts SendOptions) (string, error) {
	logger := logutil.GetLogger(ctx)

	intent := Classify(message)
	expand := opts.Expand || expandRegex.MatchString(message)

	retrieved := opts.RetrievedCards
	if len(retrieved) == 0 && intent != model.IntentCasual && s.retriever != nil {
		var fromIndex bool
		retrieved, fromIndex = s.retriever.Retrieve(ctx, message, s.topK)
		if !fromIndex {
			logger.Debug("retrieval fell back to fact cards", zap.String("intent", string(intent)))
		}
	}

	prompt := Compose(intent, message, s.history, retrieved, expand)

	genCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	raw, err := s.generator.Generate(genCtx, prompt)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			return "", err
		}
		logger.Error("generation failed, using fallback reply",
			zap.String("intent", string(intent)), zap.Error(err))
		return Finalize(FallbackReply(intent)), nil
	}
	if IsDegenerate(raw) {
		logger.Warn("degenerate reply, using fallback", zap.String("intent", string(intent)))
		return Finalize(FallbackReply(intent)), nil
	}

	reply := EnsureCompleteSentence(raw)
	s.history = append(s.history,
		model.ChatTurn{Role: model.RoleUser, Text: message},
		model.ChatTurn{Role: model.RoleModel, Text: reply},
	)
	return InjectLinks(reply), nil
}
