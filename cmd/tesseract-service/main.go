package main

import (
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

	router := server.NewTesseractRouter(logger, engine.NewTesseract(), int64(cfg.MaxUploadBytes))
	srv := http.Server{Addr: cfg.SrvAddr, Handler: router}

	logger.Info("Tesseract OCR service started", "address", cfg.SrvAddr)
	defer logger.Info("HTTP server stopped.")
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("Webserver failed", "err", err)
		os.Exit(1)
	}
}
