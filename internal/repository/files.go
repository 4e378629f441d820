package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/auditfile"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

// CreateFileRequest wraps parameters for recording one uploaded document.
type CreateFileRequest struct {
	BuildingID uuid.UUID
	FileURL    string
	FileName   string
	FileType   string
	FileSize   int
}

type FileRepository interface {
	Create(ctx context.Context, req *CreateFileRequest) (*entity.AuditFile, error)
	MarkProcessed(ctx context.Context, fileID, ocrRecordID uuid.UUID) error
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.AuditFile, error)
}

type fileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFileRepository(client *ent.Client, logger *slog.Logger) FileRepository {
	return &fileRepository{
		client: client,
		logger: logger,
	}
}

func (r *fileRepository) Create(ctx context.Context, req *CreateFileRequest) (*entity.AuditFile, error) {
	f, err := r.client.AuditFile.Create().
		SetBuildingID(req.BuildingID).
		SetFileURL(req.FileURL).
		SetFileName(req.FileName).
		SetFileType(req.FileType).
		SetFileSize(req.FileSize).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create audit file", "file_name", req.FileName, "error", err)
		return nil, common.NewAppError("DB_ERROR", "create audit file", err)
	}
	return utils.ToAuditFile(f), nil
}

func (r *fileRepository) MarkProcessed(ctx context.Context, fileID, ocrRecordID uuid.UUID) error {
	err := r.client.AuditFile.UpdateOneID(fileID).
		SetProcessingStatus(string(constants.FileStatusProcessed)).
		SetOcrRecordID(ocrRecordID).
		SetOcrID(ocrRecordID).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to mark file processed", "file_id", fileID, "error", err)
		return common.NewAppError("DB_ERROR", "mark file processed", err)
	}
	return nil
}

func (r *fileRepository) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.AuditFile, error) {
	fs, err := r.client.AuditFile.Query().
		Where(auditfile.BuildingID(buildingID)).
		Order(auditfile.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list audit files", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "list audit files", err)
	}

	result := make([]*entity.AuditFile, len(fs))
	for i, f := range fs {
		result[i] = utils.ToAuditFile(f)
	}
	return result, nil
}
