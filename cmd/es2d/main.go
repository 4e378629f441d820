// es2d is the energy-audit API daemon.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hrunx/es2square/internal/audit"
	"github.com/hrunx/es2square/internal/cache"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/i18n"
	"github.com/hrunx/es2square/internal/llm/deepseek"
	"github.com/hrunx/es2square/internal/llm/proxy"
	"github.com/hrunx/es2square/internal/ocr"
	"github.com/hrunx/es2square/internal/report"
	"github.com/hrunx/es2square/internal/repository"
	"github.com/hrunx/es2square/internal/server"
	"github.com/hrunx/es2square/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	if err := repository.HealthCheck(ctx, pool, 3*time.Second, logger); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}

	var cacheCli cache.Client
	if cfg.Cache.Addr != "" {
		rc, err := cache.NewRedisClient(cache.RedisConfig{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		if err != nil {
			logger.Warn("redis unavailable, using in-process cache", "error", err)
			cacheCli = cache.NewMemoryClient()
		} else {
			cacheCli = rc
		}
	} else {
		cacheCli = cache.NewMemoryClient()
	}
	defer func() {
		_ = cacheCli.Close()
	}()

	store := storage.NewSupabaseStore(storage.Config{
		BaseURL:    cfg.Storage.URL,
		ServiceKey: cfg.Storage.ServiceKey,
		Bucket:     cfg.Storage.Bucket,
	}, logger)
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("storage bucket provisioning failed", "error", err)
		os.Exit(1)
	}

	recognizer := ocr.NewVisionClient(ocr.Config{
		APIKey:   cfg.OCR.APIKey,
		Endpoint: cfg.OCR.Endpoint,
		Timeout:  cfg.OCR.Timeout,
	}, logger)

	completer := deepseek.NewClient(deepseek.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   int32(cfg.LLM.MaxTokens),
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	buildings := repository.NewBuildingRepository(entc, logger)
	rooms := repository.NewRoomRepository(entc, logger)
	equipment := repository.NewEquipmentRepository(entc, logger)
	files := repository.NewFileRepository(entc, logger)
	ocrRepo := repository.NewOCRRepository(entc, logger)
	audits := repository.NewAuditRepository(entc, logger)
	reports := repository.NewReportRepository(entc, logger)
	translations := repository.NewTranslationRepository(entc, logger)

	writer := repository.NewIntakeWriter(entc, rooms, audits, logger)
	intake := audit.NewIntake(store, recognizer, completer,
		buildings, files, ocrRepo, writer, logger)
	detailed := audit.NewDetailed(cacheCli, cfg.Cache.TTL, completer,
		buildings, rooms, equipment, ocrRepo, audits, reports, logger)
	reporter := report.NewService(buildings, audits, store, logger)
	i18nSvc := i18n.NewService(translations, logger)
	chat := proxy.NewHandler(proxy.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   int32(cfg.LLM.MaxTokens),
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	srv := server.New(buildings, intake, detailed, reporter, i18nSvc, chat, logger)

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      srv.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
}
