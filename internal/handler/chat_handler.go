package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/ai"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/chat"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/model"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/pkg/response"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/rag"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/ratelimit"
)

type ChatHandler struct {
	generator  ai.IGenerator
	retriever  *rag.Retriever
	limiter    *ratelimit.Limiter
	timeout    time.Duration
	topK       int
	maxMessage int
	maxHistory int
}

func NewChatHandler(generator ai.IGenerator, retriever *rag.Retriever, limiter *ratelimit.Limiter,
	timeout time.Duration, topK, maxMessage, maxHistory int) *ChatHandler {
	return &ChatHandler{
		generator:  generator,
		retriever:  retriever,
		limiter:    limiter,
		timeout:    timeout,
		topK:       topK,
		maxMessage: maxMessage,
		maxHistory: maxHistory,
	}
}

type chatRequest struct {
	Message string           `json:"message"`
	History []model.ChatTurn `json:"history"`
	// Context carries client-side retrieval results. When present the server
	// acts as a thin proxy and skips its own retrieval.
	Context string `json:"context"`
}

func (h *ChatHandler) Send(c *gin.Context) {
	logger := logutil.GetLogger(c.Request.Context())

	if h.generator == nil {
		logger.Error("chat request received but ai provider is not configured")
		response.Error(c, http.StatusInternalServerError, "chat is not configured")
		return
	}

	if !h.limiter.Allow(clientKey(c)) {
		response.RateLimited(c, http.StatusTooManyRequests, "Too many requests, please slow down.")
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		response.Error(c, http.StatusBadRequest, "message is required")
		return
	}
	if len(req.Message) > h.maxMessage {
		response.Error(c, http.StatusBadRequest, "message is too long")
		return
	}
	if len(req.History) > h.maxHistory {
		response.Error(c, http.StatusBadRequest, "history is too long")
		return
	}

	var reply string
	var err error
	if strings.TrimSpace(req.Context) != "" {
		reply, err = h.proxyGenerate(c.Request.Context(), &req)
	} else {
		reply, err = h.sessionGenerate(c.Request.Context(), &req)
	}
	if err != nil {
		h.writeGenerateError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"response":     reply,
		"messageCount": len(req.History) + 1,
	})
}

// proxyGenerate trusts the caller's context block and forwards a composed
// prompt straight to the generator. Provider errors surface to the client;
// the only transform applied is sentence completion.
func (h *ChatHandler) proxyGenerate(ctx context.Context, req *chatRequest) (string, error) {
	intent := chat.Classify(req.Message)
	prompt := chat.Compose(intent, req.Message, req.History, []string{req.Context}, false)

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	raw, err := h.generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return chat.EnsureCompleteSentence(raw), nil
}

// sessionGenerate runs the full server-side pipeline: retrieval, fallback
// replies on generation failure, link injection.
func (h *ChatHandler) sessionGenerate(ctx context.Context, req *chatRequest) (string, error) {
	session := chat.NewSession(h.generator, h.retriever, h.timeout, h.topK)
	session.SetHistory(req.History)
	return session.Send(ctx, req.Message, chat.SendOptions{})
}

func (h *ChatHandler) writeGenerateError(c *gin.Context, err error) {
	logger := logutil.GetLogger(c.Request.Context())
	switch {
	case ai.IsQuotaErr(err):
		response.RateLimited(c, http.StatusTooManyRequests, "The assistant is over its usage quota, please try again later.")
	case ai.IsSafetyErr(err):
		response.Error(c, http.StatusBadRequest, "The message was blocked by safety filters.")
	case errors.Is(err, ai.ErrUnavailable):
		response.Error(c, http.StatusInternalServerError, "chat is not configured")
	default:
		logger.Error("chat generation failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "failed to generate a response")
	}
}

func clientKey(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "anonymous"
}
