package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cadagent-org/cadagent/pkg/api"
	"github.com/cadagent-org/cadagent/pkg/api/service"
	"github.com/cadagent-org/cadagent/pkg/cad"
	"github.com/cadagent-org/cadagent/pkg/config"
	"github.com/cadagent-org/cadagent/pkg/llm"
	"github.com/cadagent-org/cadagent/pkg/llm/factory"
	"github.com/cadagent-org/cadagent/pkg/operation"

	_ "github.com/cadagent-org/cadagent/docs" // Swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		logger.Error("cadagent exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	flagSet := flag.NewFlagSet("cadagent", flag.ContinueOnError)
	configPath := flagSet.String("config", "", "Path to configuration file")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Warn("failed to load config", "error", err)
	}
	if cfg == nil {
		cfg = &config.Config{}
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	// Setup LLM Provider
	llmProvider, providerID, err := factory.NewProvider(ctx, cfg)
	if err != nil {
		logger.Error("failed to create llm provider", "error", err)
		return fmt.Errorf("create llm provider: %w", err)
	}

	_, opts, err := cfg.GetActiveProvider()
	if err != nil {
		logger.Warn("could not retrieve active provider options for gateway config", "error", err)
	}
	llmGateway := llm.NewGateway(llmProvider, opts)

	// Modeling session. Only the in-memory backend ships here; a live
	// CAD connection plugs in through cad.ModelingContext.
	modeling := cad.NewMemContext()
	if !cfg.CAD.DryRun {
		logger.Warn("no live cad backend configured, using in-memory session")
	}

	systemPrompt := ""
	if cfg.CAD.SystemPromptPath != "" {
		data, err := os.ReadFile(cfg.CAD.SystemPromptPath)
		if err != nil {
			return fmt.Errorf("read system prompt: %w", err)
		}
		systemPrompt = string(data)
	}

	dispatcher := operation.NewDispatcher(operation.DefaultRegistry(), logger)
	chatSvc := service.NewChatService(llmGateway, dispatcher, modeling, systemPrompt, logger)

	apiCfg := api.Config{Enable: cfg.HTTP.Enable, Addr: cfg.HTTP.Addr, APIKey: cfg.HTTP.APIKey, DevMode: cfg.DevMode}
	server := api.NewServer(apiCfg, chatSvc, logger)
	httpSrv := &http.Server{Addr: cfg.HTTP.Addr, Handler: server.Engine()}

	go func() {
		<-ctx.Done()
		_ = httpSrv.Shutdown(context.Background())
	}()

	logger.Info("http api listening", "addr", cfg.HTTP.Addr, "provider", providerID, "model", opts.Model)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		return fmt.Errorf("http server: %w", err)
	}
	logger.Info("http api stopped")
	return nil
}

func parseLogLevel(level string) slog.Level {
	normalized := strings.ToUpper(strings.TrimSpace(level))
	switch normalized {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	case "INFO", "":
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}
