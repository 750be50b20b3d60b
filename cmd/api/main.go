package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pageza/alimentos/backend/config"
	"github.com/pageza/alimentos/backend/internal/server"
)

func main() {
	// Initialize configuration
	cfg := config.New()

	app, err := server.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	log := app.Logger

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Infof("Starting server on %s", cfg.Addr())
		errChan <- app.Server.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or error
	select {
	case err := <-errChan:
		if err != nil {
			log.Errorf("Server error: %v", err)
			app.Close()
			os.Exit(1)
		}
		return
	case sig := <-quit:
		log.Infof("Received signal: %v", sig)
	}

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown error: %v", err)
		return
	}
	log.Info("Server stopped")
}
