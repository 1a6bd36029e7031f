package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Port        int              `json:"port"`
	LogConfig   logger.LogConfig `json:"log_config"`
	CORSOrigins []string         `json:"cors_origins"`
	AI          AIConfig         `json:"ai"`
	Knowledge   KnowledgeConfig  `json:"knowledge"`
	Chat        ChatConfig       `json:"chat"`
	Contact     ContactConfig    `json:"contact"`
}

type AIConfig struct {
	APIKey          string   `json:"api_key"`
	Models          []string `json:"models"`
	EmbedModels     []string `json:"embed_models"`
	TimeoutSeconds  int      `json:"timeout_seconds"`
	MaxOutputTokens int32    `json:"max_output_tokens"`
}

type KnowledgeSource struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Format string `json:"format"`
}

type KnowledgeConfig struct {
	Sources             []KnowledgeSource `json:"sources"`
	Version             string            `json:"version"`
	CacheDir            string            `json:"cache_dir"`
	MaxChunkChars       int               `json:"max_chunk_chars"`
	TopK                int               `json:"top_k"`
	RefreshCron         string            `json:"refresh_cron"`
	FetchTimeoutSeconds int               `json:"fetch_timeout_seconds"`
}

type ChatConfig struct {
	RateWindowMs    int64 `json:"rate_window_ms"`
	RateMax         int   `json:"rate_max"`
	MaxMessageChars int   `json:"max_message_chars"`
	MaxHistory      int   `json:"max_history"`
}

type ContactConfig struct {
	ResendAPIKey string `json:"resend_api_key"`
	From         string `json:"from"`
	To           string `json:"to"`
	RateWindowMs int64  `json:"rate_window_ms"`
	RateMax      int    `json:"rate_max"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.AI.APIKey != "" && len(cfg.AI.Models) == 0 {
		return nil, fmt.Errorf("ai.models is required when ai.api_key is set")
	}
	if len(cfg.AI.Models) > 2 {
		return nil, fmt.Errorf("ai.models supports a primary and at most one fallback")
	}
	if len(cfg.AI.EmbedModels) > 2 {
		return nil, fmt.Errorf("ai.embed_models supports a primary and at most one fallback")
	}
	if cfg.AI.TimeoutSeconds == 0 {
		cfg.AI.TimeoutSeconds = 30
	}
	if cfg.AI.MaxOutputTokens == 0 {
		cfg.AI.MaxOutputTokens = 1000
	}
	if cfg.Knowledge.Version == "" {
		return nil, fmt.Errorf("knowledge.version is required")
	}
	if cfg.Knowledge.CacheDir == "" {
		cfg.Knowledge.CacheDir = "./cache"
	}
	if cfg.Knowledge.MaxChunkChars == 0 {
		cfg.Knowledge.MaxChunkChars = 1200
	}
	if cfg.Knowledge.TopK == 0 {
		cfg.Knowledge.TopK = 3
	}
	if cfg.Knowledge.FetchTimeoutSeconds == 0 {
		cfg.Knowledge.FetchTimeoutSeconds = 10
	}
	for i, src := range cfg.Knowledge.Sources {
		if src.Name == "" || src.URL == "" {
			return nil, fmt.Errorf("knowledge.sources[%d] needs name and url", i)
		}
		if src.Format == "" {
			cfg.Knowledge.Sources[i].Format = "markdown"
		}
	}
	if cfg.Chat.RateWindowMs == 0 {
		cfg.Chat.RateWindowMs = 60000
	}
	if cfg.Chat.RateMax == 0 {
		cfg.Chat.RateMax = 20
	}
	if cfg.Chat.MaxMessageChars == 0 {
		cfg.Chat.MaxMessageChars = 2000
	}
	if cfg.Chat.MaxHistory == 0 {
		cfg.Chat.MaxHistory = 50
	}
	if cfg.Contact.RateWindowMs == 0 {
		cfg.Contact.RateWindowMs = 60000
	}
	if cfg.Contact.RateMax == 0 {
		cfg.Contact.RateMax = 3
	}
	if cfg.Contact.From == "" {
		cfg.Contact.From = "Portfolio Contact <noreply@abdarrahman.dev>"
	}
	if cfg.Contact.To == "" {
		cfg.Contact.To = "abdarrahmanayyaz00@gmail.com"
	}
	return &cfg, nil
}
