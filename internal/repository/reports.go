package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/detailedreport"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

type ReportRepository interface {
	Create(ctx context.Context, buildingID, auditID uuid.UUID, content json.RawMessage) (*entity.DetailedReport, error)
	// LatestByBuilding returns the newest stored report for the building,
	// or ErrNotFound.
	LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.DetailedReport, error)
}

type reportRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewReportRepository(client *ent.Client, logger *slog.Logger) ReportRepository {
	return &reportRepository{
		client: client,
		logger: logger,
	}
}

func (r *reportRepository) Create(ctx context.Context, buildingID, auditID uuid.UUID, content json.RawMessage) (*entity.DetailedReport, error) {
	rep, err := r.client.DetailedReport.Create().
		SetBuildingID(buildingID).
		SetAuditID(auditID).
		SetContent(content).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create detailed report", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "create detailed report", err)
	}
	return utils.ToDetailedReport(rep), nil
}

func (r *reportRepository) LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.DetailedReport, error) {
	rep, err := r.client.DetailedReport.Query().
		Where(detailedreport.BuildingID(buildingID)).
		Order(detailedreport.ByGeneratedAt(sql.OrderDesc())).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "no report for building", common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to query latest report", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "query latest report", err)
	}
	return utils.ToDetailedReport(rep), nil
}
