package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/lokai-in/lokai/internal/alerts"
	"github.com/lokai-in/lokai/internal/analysis"
	"github.com/lokai-in/lokai/internal/chat"
	"github.com/lokai-in/lokai/internal/circulars"
	"github.com/lokai-in/lokai/internal/completion"
	"github.com/lokai-in/lokai/internal/config"
	"github.com/lokai-in/lokai/internal/httpapi"
	"github.com/lokai-in/lokai/internal/knowledge"
	"github.com/lokai-in/lokai/internal/memory"
	"github.com/lokai-in/lokai/internal/observability"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsNamespace)

	ctx := context.Background()

	var storeOpts []memory.Option
	if cfg.SessionTTL > 0 {
		storeOpts = append(storeOpts, memory.WithTTL(cfg.SessionTTL))
	}
	archiver, err := memory.NewArchiver(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("conversation archiver init failed: %v", err)
	}
	if archiver != nil {
		defer archiver.Close()
		storeOpts = append(storeOpts, memory.WithArchiver(archiver))
		log.Printf("conversation archive: postgres")
	} else {
		log.Printf("conversation archive: disabled (no DATABASE_URL)")
	}
	memoryStore := memory.NewInMemoryStore(storeOpts...)

	client, err := completion.New(completion.Config{
		Mode:        cfg.CompletionMode,
		APIKey:      cfg.GroqAPIKey,
		BaseURL:     cfg.GroqBaseURL,
		Model:       cfg.CompletionModel,
		Temperature: float32(cfg.CompletionTemperature),
		MaxTokens:   cfg.CompletionMaxTokens,
	})
	if err != nil {
		log.Fatalf("completion backend init failed: %v", err)
	}
	switch client.(type) {
	case *completion.MockClient:
		log.Printf("completion backend: mock")
	default:
		log.Printf("completion backend: groq (%s)", cfg.CompletionModel)
	}

	analyzer, err := analysis.New(client)
	if err != nil {
		if !errors.Is(err, analysis.ErrNotSupported) {
			log.Fatalf("document analyzer init failed: %v", err)
		}
		analyzer = nil
		log.Printf("document analysis disabled: backend has no JSON mode")
	}

	circularStore, err := circulars.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("circular store init failed: %v", err)
	}
	defer circularStore.Close()

	alertStore := alerts.NewStore()

	orchestrator := chat.NewOrchestrator(memoryStore, knowledge.NewBase(), client, metrics, chat.Options{
		CompletionTimeout: cfg.CompletionTimeout,
		SerializeSessions: cfg.SerializeSessions,
	})

	api := httpapi.New(cfg, orchestrator, analyzer, circularStore, alertStore, metrics)
	httpServer := &http.Server{
		Addr:    cfg.BindAddr,
		Handler: api.Router(),
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()
	if cfg.SessionTTL > 0 {
		memoryStore.StartJanitor(runCtx, cfg.SessionJanitorInterval)
	}

	go func() {
		log.Printf("server listening on %s", cfg.BindAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Printf("shutdown signal received")

	runCancel()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
		_ = httpServer.Close()
	}

	log.Printf("shutdown complete")
}
