package repository

import (
	"context"
	"log/slog"

	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
)

// IntakeWriter persists the level-I outcome, rooms and the initial audit,
// in a single transaction.
type IntakeWriter interface {
	PersistIntake(ctx context.Context, roomReqs []*CreateRoomRequest, auditReq *UpsertAuditRequest) ([]*entity.Room, *entity.Audit, error)
}

type intakeWriter struct {
	client *ent.Client
	rooms  RoomRepository
	audits AuditRepository
	logger *slog.Logger
}

func NewIntakeWriter(client *ent.Client, rooms RoomRepository, audits AuditRepository, logger *slog.Logger) IntakeWriter {
	return &intakeWriter{
		client: client,
		rooms:  rooms,
		audits: audits,
		logger: logger,
	}
}

func (w *intakeWriter) PersistIntake(ctx context.Context, roomReqs []*CreateRoomRequest, auditReq *UpsertAuditRequest) ([]*entity.Room, *entity.Audit, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		w.logger.Error("failed to begin intake transaction", "building_id", auditReq.BuildingID, "error", err)
		return nil, nil, common.NewAppError("DB_ERROR", "begin intake transaction", err)
	}

	rooms, err := w.rooms.InsertRooms(ctx, tx, roomReqs)
	if err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}
	auditRow, err := w.audits.UpsertTx(ctx, tx, auditReq)
	if err != nil {
		_ = tx.Rollback()
		return nil, nil, err
	}
	if err := tx.Commit(); err != nil {
		w.logger.Error("failed to commit intake transaction", "building_id", auditReq.BuildingID, "error", err)
		return nil, nil, common.NewAppError("DB_ERROR", "commit intake transaction", err)
	}
	return rooms, auditRow, nil
}
