package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/AlirezaFazli29/ocr-app/internal/config"
	"github.com/AlirezaFazli29/ocr-app/internal/engine"
	"github.com/AlirezaFazli29/ocr-app/internal/server"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	runner := engine.NewHTTPRunner(cfg.RunnerURL, engine.RunnerConfig{
		BaseSize:  cfg.RunnerBaseSize,
		ImageSize: cfg.RunnerImageSize,
		CropMode:  cfg.RunnerCropMode,
	})
	// The model loads once, before serving. If the runner is not up with the
	// model ready, the service must not start.
	handle, err := engine.LoadDeepSeek(context.Background(), runner)
	if err != nil {
		logger.Error("Fatal: DeepSeek model not available", "err", err, "runner", cfg.RunnerURL)
		os.Exit(1)
	}
	logger.Info("DeepSeek runner ready", "runner", cfg.RunnerURL)

	router := server.NewDeepSeekRouter(logger, handle, int64(cfg.MaxUploadBytes))
	srv := http.Server{Addr: cfg.SrvAddr, Handler: router}

	logger.Info("DeepSeek OCR service started", "address", cfg.SrvAddr)
	defer logger.Info("HTTP server stopped.")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("Webserver failed", "err", err)
		os.Exit(1)
	}
}
