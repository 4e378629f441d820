package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/building"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

// CreateBuildingRequest wraps parameters for creating a building.
type CreateBuildingRequest struct {
	Name             string
	Address          string
	Type             string
	Area             float64
	ConstructionYear *int
	RoomsDeclared    *int
	Residents        *int
}

type BuildingRepository interface {
	Create(ctx context.Context, req *CreateBuildingRequest) (*entity.Building, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Building, error)
	List(ctx context.Context) ([]*entity.Building, error)
}

type buildingRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBuildingRepository(client *ent.Client, logger *slog.Logger) BuildingRepository {
	return &buildingRepository{
		client: client,
		logger: logger,
	}
}

func (r *buildingRepository) Create(ctx context.Context, req *CreateBuildingRequest) (*entity.Building, error) {
	b, err := r.client.Building.Create().
		SetName(req.Name).
		SetAddress(req.Address).
		SetType(req.Type).
		SetArea(req.Area).
		SetNillableConstructionYear(req.ConstructionYear).
		SetNillableRoomsDeclared(req.RoomsDeclared).
		SetNillableResidents(req.Residents).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create building", "name", req.Name, "error", err)
		return nil, common.NewAppError("DB_ERROR", "create building", err)
	}
	return utils.ToBuilding(b), nil
}

func (r *buildingRepository) Get(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	b, err := r.client.Building.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.NewAppError("NOT_FOUND", "building not found", common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get building", "building_id", id, "error", err)
		return nil, common.NewAppError("DB_ERROR", "get building", err)
	}
	return utils.ToBuilding(b), nil
}

func (r *buildingRepository) List(ctx context.Context) ([]*entity.Building, error) {
	bs, err := r.client.Building.Query().
		Order(building.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list buildings", "error", err)
		return nil, common.NewAppError("DB_ERROR", "list buildings", err)
	}
	result := make([]*entity.Building, len(bs))
	for i, b := range bs {
		result[i] = utils.ToBuilding(b)
	}
	return result, nil
}
