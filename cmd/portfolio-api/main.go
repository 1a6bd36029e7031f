package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/xxxsen/common/logger"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/abdarrahmanayyaz/portfolio-api/internal/ai"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/config"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/embedcache"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/handler"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/job"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/knowledge"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/mail"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/rag"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/ratelimit"
	"github.com/abdarrahmanayyaz/portfolio-api/internal/schedule"
)

const (
	embedCacheSize = 512
	embedCacheTTL  = time.Hour
)

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "portfolio-api",
		Short: "portfolio backend server",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the portfolio server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return runServer(cfg)
		},
	}

	warmCmd := &cobra.Command{
		Use:   "warm",
		Short: "build the knowledge index and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			return warmIndex(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.json")
	rootCmd.AddCommand(runCmd, warmCmd)

	if err := rootCmd.Execute(); err != nil {
		logutil.GetLogger(context.Background()).Fatal("startup error", zap.Error(err))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("--config is required")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Init(
		cfg.LogConfig.File,
		cfg.LogConfig.Level,
		int(cfg.LogConfig.FileCount),
		int(cfg.LogConfig.FileSize),
		int(cfg.LogConfig.KeepDays),
		cfg.LogConfig.Console,
	)
	logutil.GetLogger(context.Background()).Info("config loaded", zap.String("config", path))
	return cfg, nil
}

func buildAI(cfg *config.Config) (ai.IGenerator, ai.IEmbedder) {
	if cfg.AI.APIKey == "" {
		return nil, nil
	}
	provider := ai.NewGeminiProvider(ai.GeminiConfig{
		APIKey:          cfg.AI.APIKey,
		MaxOutputTokens: cfg.AI.MaxOutputTokens,
		Temperature:     0.7,
	})
	generators := make([]ai.GeneratorEntry, 0, len(cfg.AI.Models))
	for _, m := range cfg.AI.Models {
		generators = append(generators, ai.GeneratorEntry{Name: m, Generator: ai.NewGenerator(provider, m)})
	}
	embedders := make([]ai.EmbedderEntry, 0, len(cfg.AI.EmbedModels))
	for _, m := range cfg.AI.EmbedModels {
		embedders = append(embedders, ai.EmbedderEntry{Name: m, Embedder: ai.NewEmbedder(provider, m)})
	}
	embedder := embedcache.WrapLRU(ai.NewGroupEmbedder(embedders), embedCacheSize, embedCacheTTL)
	return ai.NewGroupGenerator(generators), embedder
}

func buildStore(cfg *config.Config, embedder ai.IEmbedder) *rag.Store {
	loader := knowledge.NewLoader(cfg.Knowledge.Sources, time.Duration(cfg.Knowledge.FetchTimeoutSeconds)*time.Second)
	return rag.NewStore(loader, embedder, cfg.Knowledge.CacheDir, cfg.Knowledge.MaxChunkChars)
}

func warmIndex(cfg *config.Config) error {
	_, embedder := buildAI(cfg)
	if embedder == nil {
		return fmt.Errorf("ai.api_key and ai.embed_models are required to build the index")
	}
	store := buildStore(cfg, embedder)
	return store.Warm(context.Background(), cfg.Knowledge.Version)
}

func runServer(cfg *config.Config) error {
	rootLogger := logutil.GetLogger(context.Background())
	rootLogger.Info("starting server", zap.Int("port", cfg.Port))

	generator, embedder := buildAI(cfg)
	if generator == nil {
		rootLogger.Warn("ai.api_key not set, chat will answer with a config error")
	}

	store := buildStore(cfg, embedder)
	retriever := rag.NewRetriever(store, embedder, cfg.Knowledge.TopK)

	var sender mail.ISender
	if cfg.Contact.ResendAPIKey != "" {
		sender = mail.NewResendClient(cfg.Contact.ResendAPIKey)
	} else {
		rootLogger.Warn("contact.resend_api_key not set, contact form will answer with a config error")
	}

	contactLimiter := ratelimit.New(time.Duration(cfg.Contact.RateWindowMs)*time.Millisecond, cfg.Contact.RateMax)
	chatLimiter := ratelimit.New(time.Duration(cfg.Chat.RateWindowMs)*time.Millisecond, cfg.Chat.RateMax)

	aiTimeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second
	contactHandler := handler.NewContactHandler(sender, contactLimiter, cfg.Contact.From, cfg.Contact.To)
	chatHandler := handler.NewChatHandler(generator, retriever, chatLimiter,
		aiTimeout, cfg.Knowledge.TopK, cfg.Chat.MaxMessageChars, cfg.Chat.MaxHistory)

	engine := handler.NewEngine(handler.RouterDeps{
		Contact:     contactHandler,
		Chat:        chatHandler,
		Store:       store,
		CORSOrigins: cfg.CORSOrigins,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if embedder != nil {
		go func() {
			if err := store.Warm(ctx, cfg.Knowledge.Version); err != nil {
				rootLogger.Error("knowledge warm failed, retrieval will use fact cards", zap.Error(err))
			}
		}()
		if cfg.Knowledge.RefreshCron != "" {
			scheduler := schedule.NewScheduler()
			if err := scheduler.AddJob(job.NewKnowledgeRefreshJob(store, cfg.Knowledge.Version), cfg.Knowledge.RefreshCron); err != nil {
				return fmt.Errorf("schedule knowledge refresh: %w", err)
			}
			scheduler.Start(ctx)
			defer scheduler.Stop()
		}
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Port),
		Handler: engine,
	}
	go func() {
		rootLogger.Info("http server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			rootLogger.Error("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	rootLogger.Info("server stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
