package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/orgball2608/insta-refresh-service/internal/app"
	"github.com/orgball2608/insta-refresh-service/pkg/logger"
	"go.uber.org/fx"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Opts{})

	application := fx.New(
		app.Module,
	)

	if err := application.Start(context.Background()); err != nil {
		log.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	if err := application.Stop(context.Background()); err != nil {
		log.Error("Failed to stop application", "error", err)
		os.Exit(1)
	}
}
