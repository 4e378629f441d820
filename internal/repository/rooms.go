package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/gen/ent/room"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/utils"
)

// CreateRoomRequest wraps parameters for inserting one room.
type CreateRoomRequest struct {
	BuildingID uuid.UUID
	Name       string
	Area       float64
	RoomData   *entity.RoomData
}

type RoomRepository interface {
	// InsertRooms writes a batch inside the given transaction so intake
	// persists rooms and the audit together or not at all.
	InsertRooms(ctx context.Context, tx *ent.Tx, reqs []*CreateRoomRequest) ([]*entity.Room, error)
	// ListByBuilding returns rooms deduplicated by name, earliest row wins.
	ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Room, error)
}

type roomRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRoomRepository(client *ent.Client, logger *slog.Logger) RoomRepository {
	return &roomRepository{
		client: client,
		logger: logger,
	}
}

func (r *roomRepository) InsertRooms(ctx context.Context, tx *ent.Tx, reqs []*CreateRoomRequest) ([]*entity.Room, error) {
	builders := make([]*ent.RoomCreate, 0, len(reqs))
	for _, req := range reqs {
		b := tx.Room.Create().
			SetBuildingID(req.BuildingID).
			SetName(req.Name).
			SetArea(req.Area)
		if req.RoomData != nil {
			raw, err := json.Marshal(req.RoomData)
			if err != nil {
				return nil, common.NewAppError("INTERNAL", "encode room data", err)
			}
			b = b.SetRoomData(raw)
		}
		builders = append(builders, b)
	}

	rooms, err := tx.Room.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert rooms", "count", len(reqs), "error", err)
		return nil, common.NewAppError("DB_ERROR", "insert rooms", err)
	}

	result := make([]*entity.Room, len(rooms))
	for i, rm := range rooms {
		result[i] = utils.ToRoom(rm)
	}
	return result, nil
}

func (r *roomRepository) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Room, error) {
	rooms, err := r.client.Room.Query().
		Where(room.BuildingID(buildingID)).
		Order(room.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list rooms", "building_id", buildingID, "error", err)
		return nil, common.NewAppError("DB_ERROR", "list rooms", err)
	}

	seen := make(map[string]struct{}, len(rooms))
	result := make([]*entity.Room, 0, len(rooms))
	for _, rm := range rooms {
		key := strings.ToLower(strings.TrimSpace(rm.Name))
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, utils.ToRoom(rm))
	}
	return result, nil
}
