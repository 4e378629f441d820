package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/audit"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

// UpsertAuditRequest carries the analysis sections written for a
// (building, type) pair. A second run for the same pair overwrites the
// previous row instead of inserting a sibling.
type UpsertAuditRequest struct {
	BuildingID       uuid.UUID
	Type             constants.AuditType
	Status           constants.AuditStatus
	Findings         json.RawMessage
	Recommendations  json.RawMessage
	KeyMetrics       json.RawMessage
	ExecutiveSummary json.RawMessage
	AIRaw            json.RawMessage
}

type AuditRepository interface {
	UpsertByBuildingAndType(ctx context.Context, req *UpsertAuditRequest) (*entity.Audit, error)
	// UpsertTx is the transactional variant used by intake so the audit and
	// its rooms commit together.
	UpsertTx(ctx context.Context, tx *ent.Tx, req *UpsertAuditRequest) (*entity.Audit, error)
	GetByBuildingAndType(ctx context.Context, buildingID uuid.UUID, t constants.AuditType) (*entity.Audit, error)
	// LatestByBuilding returns the most recently updated audit of any type
	// for the building.
	LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Audit, error)
}

type auditRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(client *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepository{
		client: client,
		logger: logger,
	}
}

func (r *auditRepository) UpsertByBuildingAndType(ctx context.Context, req *UpsertAuditRequest) (*entity.Audit, error) {
	return r.upsert(ctx, r.client.Audit, req)
}

func (r *auditRepository) UpsertTx(ctx context.Context, tx *ent.Tx, req *UpsertAuditRequest) (*entity.Audit, error) {
	return r.upsert(ctx, tx.Audit, req)
}

func (r *auditRepository) upsert(ctx context.Context, c *ent.AuditClient, req *UpsertAuditRequest) (*entity.Audit, error) {
	err := c.Create().
		SetBuildingID(req.BuildingID).
		SetType(string(req.Type)).
		SetStatus(string(req.Status)).
		SetFindings(req.Findings).
		SetRecommendations(req.Recommendations).
		SetKeyMetrics(req.KeyMetrics).
		SetExecutiveSummary(req.ExecutiveSummary).
		SetAiRaw(req.AIRaw).
		OnConflictColumns(audit.FieldBuildingID, audit.FieldType).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to upsert audit",
			"building_id", req.BuildingID, "type", req.Type, "error", err)
		return nil, common.NewAppError("DB_ERROR", "upsert audit", err)
	}

	a, err := c.Query().
		Where(
			audit.BuildingID(req.BuildingID),
			audit.Type(string(req.Type)),
		).
		Only(ctx)
	if err != nil {
		r.logger.Error("failed to read back audit",
			"building_id", req.BuildingID, "type", req.Type, "error", err)
		return nil, common.NewAppError("DB_ERROR", "read audit", err)
	}
	return utils.ToAudit(a), nil
}

func (r *auditRepository) GetByBuildingAndType(ctx context.Context, buildingID uuid.UUID, t constants.AuditType) (*entity.Audit, error) {
	a, err := r.client.Audit.Query().
		Where(
			audit.BuildingID(buildingID),
			audit.Type(string(t)),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get audit", "building_id", buildingID, "type", t, "error", err)
		return nil, common.NewAppError("DB_ERROR", "get audit", err)
	}
	return utils.ToAudit(a), nil
}

func (r *auditRepository) LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Audit, error) {
	a, err := r.client.Audit.Query().
		Where(audit.BuildingID(buildingID)).
		Order(audit.ByUpdatedAt(sql.OrderDesc())).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "no audit for building", common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to query latest audit", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "query latest audit", err)
	}
	return utils.ToAudit(a), nil
}
