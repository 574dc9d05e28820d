// Rootline server — accepts investigation requests over HTTP, runs them on
// a worker pool, and serves live event streams and persisted history.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rootline-ai/rootline/pkg/agent"
	"github.com/rootline-ai/rootline/pkg/api"
	"github.com/rootline-ai/rootline/pkg/cleanup"
	"github.com/rootline-ai/rootline/pkg/config"
	"github.com/rootline-ai/rootline/pkg/database"
	"github.com/rootline-ai/rootline/pkg/knowledge"
	"github.com/rootline-ai/rootline/pkg/llm"
	"github.com/rootline-ai/rootline/pkg/masking"
	"github.com/rootline-ai/rootline/pkg/mcp"
	"github.com/rootline-ai/rootline/pkg/metrics"
	"github.com/rootline-ai/rootline/pkg/queue"
	"github.com/rootline-ai/rootline/pkg/services"
	"github.com/rootline-ai/rootline/pkg/session"
	"github.com/rootline-ai/rootline/pkg/slack"
	"github.com/rootline-ai/rootline/pkg/summarizer"
	"github.com/rootline-ai/rootline/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("ROOTLINE_CONFIG", ""),
		"Path to the YAML configuration file (empty runs on built-in defaults)")
	flag.Parse()

	slog.Info("starting rootline", "version", version.Full(), "config", *configPath)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Database (optional). Without it the engine runs with live state and
	// NDJSON scratchpad files only.
	var dbClient *database.Client
	var sessions *services.SessionService
	if cfg.Database.IsEnabled() {
		dbClient, err = database.NewClient(ctx, databaseConfig(cfg))
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("error closing database client", "error", err)
			}
		}()
		sessions = services.NewSessionService(dbClient.Client)
		slog.Info("connected to PostgreSQL, session persistence enabled")
	}

	// LLM transport.
	llmClient, closeLLM, err := buildLLMClient(cfg)
	if err != nil {
		slog.Error("failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	defer closeLLM()

	// Tool registry, populated from the configured MCP servers. An empty
	// registry is legal — the engine still answers from knowledge.
	tools := agent.NewRegistry()
	if len(cfg.MCP.Servers) > 0 {
		mcpClient := mcp.NewClient(cfg.MCP, slog.Default())
		mcpClient.Connect(ctx)
		if failed := mcpClient.FailedServers(); len(failed) > 0 {
			slog.Error("MCP servers failed to connect", "failed_servers", failed)
			os.Exit(1)
		}
		count, err := mcpClient.RegisterTools(ctx, tools)
		if err != nil {
			slog.Error("failed to register MCP tools", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := mcpClient.Close(); err != nil {
				slog.Error("error closing MCP sessions", "error", err)
			}
		}()
		slog.Info("MCP tools registered", "servers", len(cfg.MCP.Servers), "tools", count)
	}

	// Knowledge backend (optional).
	var retriever knowledge.Retriever
	if cfg.Knowledge.GetSource() == config.KnowledgeSourceGitHub {
		github, err := knowledge.NewGitHubRetriever(knowledge.GitHubConfig{
			RepoURL:     cfg.Knowledge.RepoURL,
			Token:       os.Getenv(cfg.Knowledge.TokenEnv),
			MaxRunbooks: intOrZero(cfg.Knowledge.MaxRunbooks),
		})
		if err != nil {
			slog.Error("failed to initialize knowledge retriever", "error", err)
			os.Exit(1)
		}
		retriever = knowledge.NewCached(github, durationOrZero(cfg.Knowledge.CacheTTL))
		slog.Info("knowledge retriever initialized", "repo", cfg.Knowledge.RepoURL)
	}

	masker := masking.NewService(masking.Config{
		Enabled:      cfg.Masking.IsEnabled(),
		PatternGroup: cfg.Masking.GetPatternGroup(),
		Custom:       customPatterns(cfg.Masking.CustomPatterns),
	})

	var notifier *slack.Service
	if cfg.Slack.IsEnabled() {
		notifier = slack.NewService(slack.ServiceConfig{
			Token:        os.Getenv(cfg.Slack.TokenEnv),
			Channel:      cfg.Slack.Channel,
			DashboardURL: cfg.Slack.DashboardURL,
		})
		if notifier == nil {
			slog.Warn("slack enabled but token or channel missing, notifications disabled")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	engineMetrics := metrics.New(registry)

	manager := session.NewManager()
	pool := queue.NewPool(queue.Deps{
		Config:    cfg,
		LLM:       llmClient,
		Tools:     tools,
		Manager:   manager,
		Sessions:  sessions,
		Masker:    masker,
		Knowledge: retriever,
		Summaries: summarizer.NewRegistry(),
		Metrics:   engineMetrics,
		Notifier:  notifier,
	}, queue.Options{})
	pool.Start(ctx)

	retention := cleanup.NewService(cleanup.Options{
		ScratchpadDir: cfg.Scratchpad.GetDir(),
		Retention:     cfg.Scratchpad.GetRetention(),
	}, sessions, slog.Default())
	retention.Start(ctx)

	server := api.NewServer(api.Deps{
		Manager:  manager,
		Pool:     pool,
		Sessions: sessions,
		DB:       dbClient,
		Registry: registry,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(cfg.Server.Addr()); err != nil {
			errCh <- err
		}
	}()

	slog.Info("rootline started", "addr", cfg.Server.Addr(), "tools", tools.Len())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-errCh:
		slog.Error("http server error triggered shutdown", "error", err)
	}

	// In-flight investigations get a cancellation and record what they
	// have; the API drains last so status polls see the terminal states.
	pool.Stop()
	retention.Stop()

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
}

// buildLLMClient selects the configured transport. The returned close
// function is a no-op for clients without connection state.
func buildLLMClient(cfg *config.Config) (agent.LLMClient, func(), error) {
	switch cfg.LLM.Provider {
	case config.ProviderGRPC:
		client, err := llm.NewGRPC(llm.GRPCConfig{
			Addr:  cfg.LLM.GRPC.Addr,
			Model: cfg.LLM.GRPC.Model,
		}, slog.Default())
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				slog.Error("error closing LLM client", "error", err)
			}
		}, nil
	default:
		client := llm.NewOpenAI(llm.OpenAIConfig{
			APIKey:      os.Getenv(cfg.LLM.OpenAI.APIKeyEnv),
			BaseURL:     cfg.LLM.OpenAI.BaseURL,
			Model:       cfg.LLM.OpenAI.Model,
			Temperature: float32OrZero(cfg.LLM.OpenAI.Temperature),
			MaxTokens:   intOrZero(cfg.LLM.OpenAI.MaxTokens),
		})
		return client, func() {}, nil
	}
}

func databaseConfig(cfg *config.Config) database.Config {
	port := config.DefaultDatabasePort
	if cfg.Database.Port != nil {
		port = *cfg.Database.Port
	}
	return database.Config{
		Host:            cfg.Database.Host,
		Port:            port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Name,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

func customPatterns(patterns []config.CustomPattern) []masking.Pattern {
	out := make([]masking.Pattern, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, masking.Pattern{
			Name:        p.Name,
			Pattern:     p.Pattern,
			Replacement: p.Replacement,
		})
	}
	return out
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func float32OrZero(v *float32) float32 {
	if v == nil {
		return 0
	}
	return *v
}

func durationOrZero(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0
	}
	return d
}
