package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tourbot/internal/config"
	"tourbot/internal/corpus"
	"tourbot/internal/engine"
	"tourbot/internal/flight"
	"tourbot/internal/llm"
	"tourbot/internal/location"
	"tourbot/internal/logging"
	"tourbot/internal/server"
	"tourbot/internal/session"
)

var (
	// Global flags
	configPath string
	dataDir    string
	addr       string

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tourbot",
	Short: "tourbot - Vietnamese travel assistant backend",
	Long: `tourbot serves a conversational travel assistant: it retrieves
destinations, food venues, tours, policies and tips from local corpora,
tracks the active location per session, and delegates answer generation
to an OpenAI-compatible LLM provider.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

// serveCmd starts the HTTP server (same as running with no subcommand).
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func runServe() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	logger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = logger.Sync() }()

	library := corpus.NewLibrary(corpus.Load(cfg.Data.Dir, cfg.Retrieval.MatchThreshold, logger))

	flights, err := flight.Load(cfg.Data.Dir)
	if err != nil {
		logger.Warn("flight estimates unavailable", zap.Error(err))
	}

	store, closeStore, err := buildStore(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	generator := llm.NewClient(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Referer:     refererFor(cfg),
		Title:       titleFor(cfg),
		Timeout:     cfg.LLM.ParsedTimeout(),
	})
	if cfg.LLM.APIKey == "" {
		logger.Warn("LLM_API_KEY not set; chat requests will fail until configured")
	}

	resolver := location.NewResolver(location.DefaultTable(), location.HardTypos, cfg.Retrieval.RejectThreshold)

	eng := engine.New(engine.Config{
		Destinations:    cfg.Retrieval.Destinations,
		Foods:           cfg.Retrieval.Foods,
		Tours:           cfg.Retrieval.Tours,
		Policies:        cfg.Retrieval.Policies,
		Tips:            cfg.Retrieval.Tips,
		HistoryLimit:    cfg.Session.HistoryLimit,
		RecentUserTurns: cfg.Retrieval.RecentUserTurns,
	}, library, flights, resolver, store, generator, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.New(eng, flights, logger).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Data.Watch {
		watcher := corpus.NewWatcher(library, cfg.Data.Dir, cfg.Retrieval.MatchThreshold, logger)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				logger.Warn("corpus watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("tourbot listening",
			zap.String("addr", cfg.Server.Addr),
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", cfg.LLM.Model))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func buildStore(cfg *config.Config) (session.Store, func(), error) {
	if cfg.Session.RedisAddr == "" {
		return session.NewMemoryStore(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := session.NewRedisStore(ctx, session.RedisOptions{
		Addr: cfg.Session.RedisAddr,
		DB:   cfg.Session.RedisDB,
		TTL:  cfg.Session.ParsedRedisTTL(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect redis session store: %w", err)
	}
	logger.Info("session store: redis", zap.String("addr", cfg.Session.RedisAddr))
	return store, func() { _ = store.Close() }, nil
}

// OpenRouter attribution headers are only sent when the provider is
// actually openrouter.
func refererFor(cfg *config.Config) string {
	if cfg.LLM.Provider == "openrouter" {
		return cfg.LLM.Referer
	}
	return ""
}

func titleFor(cfg *config.Config) string {
	if cfg.LLM.Provider == "openrouter" {
		return cfg.LLM.Title
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "corpus data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
