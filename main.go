package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"movees-db/cmd"
	"movees-db/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	mode := flag.String("mode", "server", "run mode: server or browse")
	envFile := flag.String("env", ".env", "optional env file")
	flag.Parse()

	if *mode != "server" && *mode != "browse" {
		log.Fatalf("unknown mode %q", *mode)
	}

	// Load config
	config, err := utils.LoadConfig(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger; the browser owns the terminal so logs go to file only
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug, *mode == "server")
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("mode", *mode),
		zap.String("upstream", config.Upstream.URL),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *mode == "browse" {
		err = cmd.Browse(ctx, config, logger)
	} else {
		err = cmd.APIServer(ctx, config, logger)
	}
	if err != nil {
		logger.Error("Application stopped with error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
