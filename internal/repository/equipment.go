package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/equipment"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

// CreateEquipmentRequest wraps parameters for one surveyed equipment item.
type CreateEquipmentRequest struct {
	BuildingID     uuid.UUID
	RoomID         *uuid.UUID
	Name           string
	Category       string
	SubType        string
	Location       string
	RatedPower     float64
	Efficiency     float64
	OperatingHours float64
	OperatingDays  float64
	LoadFactor     constants.LoadFactor
	Condition      string
	Age            int
	ControlSystem  string
	EnergyMetered  bool
	IoTConnected   bool
	Notes          *string
}

type EquipmentRepository interface {
	InsertBatch(ctx context.Context, reqs []*CreateEquipmentRequest) ([]*entity.Equipment, error)
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Equipment, error)
}

type equipmentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewEquipmentRepository(client *ent.Client, logger *slog.Logger) EquipmentRepository {
	return &equipmentRepository{
		client: client,
		logger: logger,
	}
}

func (r *equipmentRepository) InsertBatch(ctx context.Context, reqs []*CreateEquipmentRequest) ([]*entity.Equipment, error) {
	builders := make([]*ent.EquipmentCreate, 0, len(reqs))
	for _, req := range reqs {
		b := r.client.Equipment.Create().
			SetBuildingID(req.BuildingID).
			SetNillableRoomID(req.RoomID).
			SetName(req.Name).
			SetCategory(req.Category).
			SetSubType(req.SubType).
			SetLocation(req.Location).
			SetRatedPower(req.RatedPower).
			SetEfficiency(req.Efficiency).
			SetOperatingHours(req.OperatingHours).
			SetOperatingDays(req.OperatingDays).
			SetLoadFactor(string(req.LoadFactor)).
			SetCondition(req.Condition).
			SetAge(req.Age).
			SetControlSystem(req.ControlSystem).
			SetEnergyMetered(req.EnergyMetered).
			SetIotConnected(req.IoTConnected).
			SetNillableNotes(req.Notes)
		builders = append(builders, b)
	}

	items, err := r.client.Equipment.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert equipment", "count", len(reqs), "error", err)
		return nil, common.NewAppError("DB_ERROR", "insert equipment", err)
	}

	result := make([]*entity.Equipment, len(items))
	for i, it := range items {
		result[i] = utils.ToEquipment(it)
	}
	return result, nil
}

func (r *equipmentRepository) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Equipment, error) {
	items, err := r.client.Equipment.Query().
		Where(equipment.BuildingID(buildingID)).
		Order(equipment.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list equipment", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "list equipment", err)
	}

	result := make([]*entity.Equipment, len(items))
	for i, it := range items {
		result[i] = utils.ToEquipment(it)
	}
	return result, nil
}
