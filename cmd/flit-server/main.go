package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flitgame/flit-server/internal/api"
	"github.com/flitgame/flit-server/internal/atlas"
	"github.com/flitgame/flit-server/internal/config"
	"github.com/flitgame/flit-server/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[SERVER] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		logger.Fatalf("Failed to open database %s: %v", cfg.DBPath, err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Printf("Database ready at %s", cfg.DBPath)

	server := api.NewServer(db, atlas.New(), []byte(cfg.DailySeedKey), cfg.AdminToken)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second, // must exceed the router's request timeout
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Printf("Listening on %s (engine %s)", cfg.Addr, api.EngineVersion)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Fatalf("Forced shutdown: %v", err)
	}
	logger.Println("Server stopped")
}
