package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/ocrrecord"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

// CreateOCRRequest wraps parameters for storing one OCR pass.
type CreateOCRRequest struct {
	BuildingID    uuid.UUID
	RawText       string
	ProcessedText any
	Metadata      *entity.OCRMetadata
	IsFloorPlan   bool
}

type OCRRepository interface {
	Create(ctx context.Context, req *CreateOCRRequest) (*entity.OCRRecord, error)
	// LatestFloorPlan returns the newest floor-plan record for the building,
	// or ErrNotFound when none exists.
	LatestFloorPlan(ctx context.Context, buildingID uuid.UUID) (*entity.OCRRecord, error)
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.OCRRecord, error)
}

type ocrRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewOCRRepository(client *ent.Client, logger *slog.Logger) OCRRepository {
	return &ocrRepository{
		client: client,
		logger: logger,
	}
}

func (r *ocrRepository) Create(ctx context.Context, req *CreateOCRRequest) (*entity.OCRRecord, error) {
	b := r.client.OCRRecord.Create().
		SetBuildingID(req.BuildingID).
		SetRawText(req.RawText).
		SetIsFloorPlan(req.IsFloorPlan)

	if req.ProcessedText != nil {
		raw, err := json.Marshal(req.ProcessedText)
		if err != nil {
			return nil, common.NewAppError("INTERNAL", "encode processed text", err)
		}
		b = b.SetProcessedText(raw)
	}
	if req.Metadata != nil {
		raw, err := json.Marshal(req.Metadata)
		if err != nil {
			return nil, common.NewAppError("INTERNAL", "encode ocr metadata", err)
		}
		b = b.SetMetadata(raw)
	}

	rec, err := b.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ocr record", "building_id", req.BuildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "create ocr record", err)
	}
	return utils.ToOCRRecord(rec), nil
}

func (r *ocrRepository) LatestFloorPlan(ctx context.Context, buildingID uuid.UUID) (*entity.OCRRecord, error) {
	rec, err := r.client.OCRRecord.Query().
		Where(
			ocrrecord.BuildingID(buildingID),
			ocrrecord.IsFloorPlan(true),
		).
		Order(ocrrecord.ByCreatedAt(sql.OrderDesc())).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "no floor plan for building", common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to query floor plan", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "query floor plan", err)
	}
	return utils.ToOCRRecord(rec), nil
}

func (r *ocrRepository) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.OCRRecord, error) {
	recs, err := r.client.OCRRecord.Query().
		Where(ocrrecord.BuildingID(buildingID)).
		Order(ocrrecord.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ocr records", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "list ocr records", err)
	}

	result := make([]*entity.OCRRecord, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToOCRRecord(rec)
	}
	return result, nil
}
