package main

import (
	"context"
	"foodloop/cmd/config"
	"foodloop/internal/utils"
	"github.com/gofiber/fiber/v2/log"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	cfg, err := utils.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()
	store, err := config.ConnectStore(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to connect store: %v", err)
	}

	app, err := config.NewApp(ctx, cfg, store)
	if err != nil {
		closeStore(ctx, store)
		log.Fatalf("failed to create app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Errorf("server stopped: %v", err)
	}

	closeStore(ctx, store)
}

func closeStore(ctx context.Context, store *config.Store) {
	closeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := store.Close(closeCtx); err != nil {
		log.Errorf("failed to close store: %v", err)
	}
}
