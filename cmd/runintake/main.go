// runintake runs the level-I intake for one building from local files,
// useful for exercising the pipeline without the HTTP surface.
package main

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hrunx/es2square/internal/audit"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/llm/deepseek"
	"github.com/hrunx/es2square/internal/ocr"
	repo "github.com/hrunx/es2square/internal/repository"
	"github.com/hrunx/es2square/internal/storage"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) < 4 {
		logger.Error("usage", "cmd", "runintake <building-id> <floor-plan-file> <bill-file> [bill-file...]")
		os.Exit(2)
	}
	buildingID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid building id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        5,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("opening DB", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	store := storage.NewSupabaseStore(storage.Config{
		BaseURL:    cfg.Storage.URL,
		ServiceKey: cfg.Storage.ServiceKey,
		Bucket:     cfg.Storage.Bucket,
	}, logger)
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Error("bucket provisioning failed", "error", err)
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

	writer := repo.NewIntakeWriter(entc,
		repo.NewRoomRepository(entc, logger),
		repo.NewAuditRepository(entc, logger),
		logger)
	intake := audit.NewIntake(store, recognizer, completer,
		repo.NewBuildingRepository(entc, logger),
		repo.NewFileRepository(entc, logger),
		repo.NewOCRRepository(entc, logger),
		writer,
		logger)

	plan, err := readUpload(os.Args[2])
	if err != nil {
		logger.Error("reading floor plan", "path", os.Args[2], "error", err)
		os.Exit(1)
	}
	var bills []audit.Upload
	for _, path := range os.Args[3:] {
		b, err := readUpload(path)
		if err != nil {
			logger.Error("reading bill", "path", path, "error", err)
			os.Exit(1)
		}
		bills = append(bills, b)
	}

	res, err := intake.Run(ctx, &audit.IntakeRequest{
		BuildingID: buildingID,
		Bills:      bills,
		FloorPlan:  &plan,
	})
	if err != nil {
		logger.Error("intake failed", "building_id", buildingID, "error", err)
		os.Exit(1)
	}

	logger.Info("intake complete",
		"building_id", buildingID,
		"rooms", len(res.Rooms),
		"no_room_data", res.NoRoomDataFound,
		"processing_errors", len(res.ProcessingErrors),
	)
}

func readUpload(path string) (audit.Upload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return audit.Upload{}, err
	}
	ct := mime.TypeByExtension(filepath.Ext(path))
	if ct == "" {
		ct = "application/octet-stream"
	}
	return audit.Upload{
		Name:        filepath.Base(path),
		ContentType: ct,
		Data:        data,
	}, nil
}
