package handler

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/middleware"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/pkg/response"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/rag"
)

type RouterDeps struct {
	Contact     *ContactHandler
	Chat        *ChatHandler
	Store       *rag.Store
	CORSOrigins []string
}

// NewEngine builds the HTTP engine. Unknown methods on known routes get an
// explicit 405 instead of gin's default 404.
func NewEngine(deps RouterDeps) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(deps.CORSOrigins))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "method not allowed")
	})

	api := engine.Group("/api/v1")
	api.POST("/contact", deps.Contact.Submit)
	api.POST("/chat", deps.Chat.Send)
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{
			"status":          "ok",
			"knowledgeLoaded": deps.Store != nil && deps.Store.Loaded(),
		})
	})
	return engine
}
