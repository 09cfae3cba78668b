package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"fish-classification-website/config"
	_ "fish-classification-website/docs" // Swagger docs
	chatUsecase "fish-classification-website/internal/chat/usecase"
	fileRepo "fish-classification-website/internal/chat/repository/file"
	classifyUsecase "fish-classification-website/internal/classify/usecase"
	"fish-classification-website/internal/httpserver"
	"fish-classification-website/pkg/groq"
	"fish-classification-website/pkg/log"
	"fish-classification-website/pkg/vision"
)

// @title       Fish Classification Website API
// @description Demo site backend: static pages, image classification with deterministic fallback, and a Groq-backed chatbot with per-session history.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Fish Classification Website...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Chat domain
	sessionRepo, err := fileRepo.New(cfg.Chat.DataDir, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize session store: ", err)
		return
	}

	var llmClient groq.IGroq
	if cfg.Groq.APIKey != "" {
		client, groqErr := groq.New(groq.Config{
			APIKey:         cfg.Groq.APIKey,
			Model:          cfg.Groq.Model,
			BaseURL:        cfg.Groq.BaseURL,
			RequestsPerMin: cfg.Groq.RequestsPerMin,
			HTTPClient:     &http.Client{Timeout: cfg.Groq.Timeout},
		})
		if groqErr != nil {
			logger.Warnf(ctx, "Groq client not available: %v", groqErr)
		} else {
			llmClient = client
			logger.Infof(ctx, "Groq client initialized (model: %s)", cfg.Groq.Model)
		}
	} else {
		logger.Warn(ctx, "GROQ_API_KEY is not set — the chatbot will return errors until it is configured")
	}

	chatUC := chatUsecase.New(sessionRepo, llmClient, logger, chatUsecase.Config{
		Temperature: cfg.Groq.Temperature,
		MaxTokens:   cfg.Groq.MaxTokens,
		MaxMessages: cfg.Chat.MaxMessages,
		Timeout:     cfg.Groq.Timeout,
	})

	// 4. Classify domain
	var visionClient vision.IVision
	if cfg.Vision.URL != "" {
		client, visErr := vision.New(vision.Config{
			URL:        cfg.Vision.URL,
			APIKey:     cfg.Vision.APIKey,
			HTTPClient: &http.Client{Timeout: cfg.Vision.Timeout},
		})
		if visErr != nil {
			logger.Warnf(ctx, "Vision client not available, using fallback classifier: %v", visErr)
		} else {
			visionClient = client
			logger.Infof(ctx, "Vision client initialized (%s)", cfg.Vision.URL)
		}
	} else {
		logger.Info(ctx, "No vision endpoint configured, using fallback classifier")
	}

	classifyUC := classifyUsecase.New(visionClient, logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		StaticDir:       cfg.Static.Dir,
		BlockedAsset:    cfg.Static.Blocked,
		UploadDir:       cfg.Upload.Dir,
		ChatUseCase:     chatUC,
		ClassifyUseCase: classifyUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
