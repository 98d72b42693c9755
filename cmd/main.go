package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jukeyman/jams-api/internal/agent"
	"github.com/jukeyman/jams-api/internal/api"
	"github.com/jukeyman/jams-api/internal/config"
	"github.com/jukeyman/jams-api/internal/cost"
	"github.com/jukeyman/jams-api/internal/database"
	"github.com/jukeyman/jams-api/internal/provider"
	"github.com/jukeyman/jams-api/internal/storage"
	"github.com/jukeyman/jams-api/internal/workflow"
	"github.com/jukeyman/jams-api/pkg/cache"
)

func main() {
	fmt.Println("==============================================")
	fmt.Println("  Jukeyman AGI Music Studio (JAMS) API")
	fmt.Println("==============================================")

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	fmt.Printf("Starting server on port %s...\n", cfg.Port)

	// Initialize database connection.
	db, err := database.New(cfg.DSN())
	if err != nil {
		log.Printf("WARNING: Database unavailable (%v). Persistence endpoints will degrade.", err)
		db = nil
	} else {
		defer db.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := db.Migrate(ctx); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		log.Println("Database connected and migrations applied.")
	}

	// Initialize Redis for cost counters.
	var counters cost.CounterStore
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	kv, err := cache.New(ctx, cfg.RedisAddr(), cfg.RedisPassword)
	cancel()
	if err != nil {
		log.Printf("WARNING: Redis unavailable (%v). Cost tracking disabled.", err)
	} else {
		defer kv.Close()
		counters = kv
		log.Println("Redis connected.")
	}
	tracker := cost.NewTracker(counters)

	// Provider adapters and agent runner.
	registry := provider.NewRegistry(
		provider.NewOpenRouter(cfg.OpenRouterKey, cfg.OpenRouterKeyAlt),
		provider.NewMiniMax(cfg.MiniMaxKey, cfg.MiniMaxGroupID),
		provider.NewChutes(cfg.ChutesKey),
	)
	runner := agent.NewRunner(registry, tracker, cfg.DefaultModel)

	var store workflow.ExecutionStore
	if db != nil {
		store = db
	}
	executor := workflow.NewExecutor(runner, store)

	// Blob storage for the audio library.
	var blobs storage.Backend
	if cfg.StorageDir != "" {
		local, err := storage.NewLocal(cfg.StorageDir)
		if err != nil {
			log.Printf("WARNING: Storage unavailable (%v). Library endpoints will degrade.", err)
		} else {
			blobs = local
			log.Printf("Audio storage at %s.", cfg.StorageDir)
		}
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	handlers := api.NewHandlers(cfg, db, runner, executor, tracker, blobs)
	r := api.NewRouter(handlers)

	// Start HTTP server with graceful shutdown.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("JAMS API is ready on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited.")
}
