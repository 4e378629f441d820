package audit

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/internal/cache"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/llm"
	"github.com/hrunx/es2square/internal/repository"
)

type fakeBuildings struct {
	building *entity.Building
}

func (f *fakeBuildings) Create(ctx context.Context, req *repository.CreateBuildingRequest) (*entity.Building, error) {
	return nil, nil
}

func (f *fakeBuildings) Get(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	if f.building == nil || f.building.ID != id {
		return nil, common.NewAppError("NOT_FOUND", "building not found", common.ErrNotFound)
	}
	return f.building, nil
}

func (f *fakeBuildings) List(ctx context.Context) ([]*entity.Building, error) {
	return nil, nil
}

type fakeRooms struct {
	rooms []*entity.Room
}

func (f *fakeRooms) InsertRooms(ctx context.Context, tx *ent.Tx, reqs []*repository.CreateRoomRequest) ([]*entity.Room, error) {
	return nil, nil
}

func (f *fakeRooms) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Room, error) {
	return f.rooms, nil
}

type fakeEquipment struct {
	items    []*entity.Equipment
	inserted []*repository.CreateEquipmentRequest
}

func (f *fakeEquipment) InsertBatch(ctx context.Context, reqs []*repository.CreateEquipmentRequest) ([]*entity.Equipment, error) {
	f.inserted = append(f.inserted, reqs...)
	return nil, nil
}

func (f *fakeEquipment) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.Equipment, error) {
	return f.items, nil
}

type fakeOCR struct {
	mu      sync.Mutex
	records []*entity.OCRRecord
	created []*repository.CreateOCRRequest
}

func (f *fakeOCR) Create(ctx context.Context, req *repository.CreateOCRRequest) (*entity.OCRRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	return &entity.OCRRecord{ID: uuid.New(), BuildingID: req.BuildingID, RawText: req.RawText, IsFloorPlan: req.IsFloorPlan}, nil
}

func (f *fakeOCR) LatestFloorPlan(ctx context.Context, buildingID uuid.UUID) (*entity.OCRRecord, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].IsFloorPlan {
			return f.records[i], nil
		}
	}
	return nil, common.NewAppError("NOT_FOUND", "no floor plan", common.ErrNotFound)
}

func (f *fakeOCR) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.OCRRecord, error) {
	return f.records, nil
}

type fakeAudits struct {
	upserts []*repository.UpsertAuditRequest
}

func (f *fakeAudits) UpsertByBuildingAndType(ctx context.Context, req *repository.UpsertAuditRequest) (*entity.Audit, error) {
	f.upserts = append(f.upserts, req)
	return &entity.Audit{ID: uuid.New(), BuildingID: req.BuildingID, Type: req.Type, Status: req.Status}, nil
}

func (f *fakeAudits) UpsertTx(ctx context.Context, tx *ent.Tx, req *repository.UpsertAuditRequest) (*entity.Audit, error) {
	return f.UpsertByBuildingAndType(ctx, req)
}

func (f *fakeAudits) GetByBuildingAndType(ctx context.Context, buildingID uuid.UUID, t constants.AuditType) (*entity.Audit, error) {
	return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
}

func (f *fakeAudits) LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Audit, error) {
	return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
}

type fakeReports struct {
	stored []*entity.DetailedReport
}

func (f *fakeReports) Create(ctx context.Context, buildingID, auditID uuid.UUID, content json.RawMessage) (*entity.DetailedReport, error) {
	rep := &entity.DetailedReport{ID: uuid.New(), BuildingID: buildingID, AuditID: auditID, Content: content, GeneratedAt: time.Now()}
	f.stored = append(f.stored, rep)
	return rep, nil
}

func (f *fakeReports) LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.DetailedReport, error) {
	if len(f.stored) == 0 {
		return nil, common.NewAppError("NOT_FOUND", "no report", common.ErrNotFound)
	}
	return f.stored[len(f.stored)-1], nil
}

type fakeCompleter struct {
	reply   string
	calls   int
	prompts []string
}

func (f *fakeCompleter) Complete(ctx context.Context, messages []llm.Message) (string, error) {
	f.calls++
	for _, m := range messages {
		f.prompts = append(f.prompts, m.Content)
	}
	return f.reply, nil
}

const goodReply = `{
	"findings": ["AC unit is past its service life"],
	"recommendations": [
		{"title": "Replace the AC unit", "description": "Install an inverter split unit",
		 "savings": {"cost": 1200, "energy": 3400, "carbon": 1.4},
		 "cost": 5000, "roi": 4.2, "priority": "High"}
	],
	"key_metrics": {"eui": 210},
	"executive_summary": "The building can cut roughly a fifth of its load."
}`

func newDetailedFixture(reply string) (*Detailed, *fakeCompleter, *fakeAudits, *fakeReports, *entity.Building) {
	b := &entity.Building{ID: uuid.New(), Name: "HQ", Type: "commercial", Area: 900}
	completer := &fakeCompleter{reply: reply}
	audits := &fakeAudits{}
	reports := &fakeReports{}
	svc := NewDetailed(
		cache.NewMemoryClient(),
		time.Minute,
		completer,
		&fakeBuildings{building: b},
		&fakeRooms{},
		&fakeEquipment{items: []*entity.Equipment{{
			ID: uuid.New(), BuildingID: b.ID, Name: "Rooftop AC", Category: "HVAC",
			RatedPower: 5, LoadFactor: constants.LoadMedium, OperatingHours: 8, OperatingDays: 5,
		}}},
		&fakeOCR{records: []*entity.OCRRecord{{BuildingID: b.ID, RawText: "Monthly usage 4200 kWh"}}},
		audits,
		reports,
		nil,
	)
	return svc, completer, audits, reports, b
}

func TestDetailedRunGeneratesAndPersists(t *testing.T) {
	svc, completer, audits, reports, b := newDetailedFixture(goodReply)

	res, err := svc.Run(context.Background(), &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 1, completer.calls)

	var content map[string]any
	require.NoError(t, json.Unmarshal(res.Content, &content))
	assert.Contains(t, content, "findings")
	assert.Contains(t, content, "equipment")
	assert.Contains(t, content, "metrics")
	assert.Contains(t, content, "generatedAt")

	// Savings come back normalized to the flat shape.
	recs := content["recommendations"].([]any)
	first := recs[0].(map[string]any)
	assert.Equal(t, 1200.0, first["savings_usd"])
	assert.Equal(t, 3400.0, first["savings_kwh"])

	require.Len(t, audits.upserts, 1)
	assert.Equal(t, constants.AuditDetailed, audits.upserts[0].Type)
	assert.Equal(t, constants.AuditStatusCompleted, audits.upserts[0].Status)
	require.Len(t, reports.stored, 1)
}

func TestDetailedRunServesCacheOnSecondCall(t *testing.T) {
	svc, completer, _, _, b := newDetailedFixture(goodReply)
	ctx := context.Background()

	first, err := svc.Run(ctx, &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)

	second, err := svc.Run(ctx, &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.JSONEq(t, string(first.Content), string(second.Content))
	assert.Equal(t, 1, completer.calls)
}

func TestDetailedRunForceBypassesCache(t *testing.T) {
	svc, completer, _, _, b := newDetailedFixture(goodReply)
	ctx := context.Background()

	_, err := svc.Run(ctx, &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)

	res, err := svc.Run(ctx, &DetailedRequest{BuildingID: b.ID, Force: true})
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, 2, completer.calls)
}

func TestDetailedRunRepopulatesRedisFromDatabase(t *testing.T) {
	svc, completer, _, reports, b := newDetailedFixture(goodReply)
	ctx := context.Background()

	_, err := svc.Run(ctx, &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)

	// Simulate a redis flush; the durable row should still serve the hit.
	svc.cacheCli = cache.NewMemoryClient()

	res, err := svc.Run(ctx, &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)
	assert.True(t, res.Cached)
	assert.Equal(t, 1, completer.calls)
	require.Len(t, reports.stored, 1)
}

func TestDetailedRunMissingSection(t *testing.T) {
	svc, _, _, _, b := newDetailedFixture(`{"findings": [], "recommendations": [], "executive_summary": "x"}`)

	_, err := svc.Run(context.Background(), &DetailedRequest{BuildingID: b.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing the "key_metrics" section`)
}

func TestDetailedRunInvalidJSON(t *testing.T) {
	svc, _, _, _, b := newDetailedFixture("The building looks fine to me.")

	_, err := svc.Run(context.Background(), &DetailedRequest{BuildingID: b.ID})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid AI JSON")
}

func TestDetailedRunFencedReply(t *testing.T) {
	svc, _, _, _, b := newDetailedFixture("```json\n" + goodReply + "\n```")

	res, err := svc.Run(context.Background(), &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)

	var content map[string]any
	require.NoError(t, json.Unmarshal(res.Content, &content))
	assert.Contains(t, content, "executive_summary")
}

func TestDetailedRunInsertsSurveyEquipment(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "HQ", Type: "commercial", Area: 900}
	equipment := &fakeEquipment{}
	svc := NewDetailed(
		cache.NewMemoryClient(), time.Minute, &fakeCompleter{reply: goodReply},
		&fakeBuildings{building: b}, &fakeRooms{}, equipment,
		&fakeOCR{}, &fakeAudits{}, &fakeReports{}, nil,
	)

	_, err := svc.Run(context.Background(), &DetailedRequest{
		BuildingID: b.ID,
		Equipment: []*repository.CreateEquipmentRequest{
			{BuildingID: b.ID, Name: "Water heater", Category: "Water Heating", RatedPower: 3},
		},
	})
	require.NoError(t, err)
	require.Len(t, equipment.inserted, 1)
	assert.Equal(t, "Water heater", equipment.inserted[0].Name)
}

func TestDetailedPromptIncludesLatestFloorPlan(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "HQ", Type: "commercial", Area: 900}
	completer := &fakeCompleter{reply: goodReply}
	ocrRepo := &fakeOCR{records: []*entity.OCRRecord{
		{ID: uuid.New(), BuildingID: b.ID, RawText: "Monthly usage 4200 kWh"},
		{ID: uuid.New(), BuildingID: b.ID, RawText: "BEDROOM 12 x 10", IsFloorPlan: true},
	}}
	svc := NewDetailed(
		cache.NewMemoryClient(), time.Minute, completer,
		&fakeBuildings{building: b}, &fakeRooms{}, &fakeEquipment{},
		ocrRepo, &fakeAudits{}, &fakeReports{}, nil,
	)

	_, err := svc.Run(context.Background(), &DetailedRequest{BuildingID: b.ID})
	require.NoError(t, err)

	require.Len(t, completer.prompts, 1)
	prompt := completer.prompts[0]
	assert.Contains(t, prompt, `"floor_plan":"BEDROOM 12 x 10"`)
	// the plan record must not be repeated in the generic document list
	assert.Contains(t, prompt, `"documents":["Monthly usage 4200 kWh"]`)
}

func TestDetailedRunUnknownBuilding(t *testing.T) {
	svc, _, _, _, _ := newDetailedFixture(goodReply)

	_, err := svc.Run(context.Background(), &DetailedRequest{BuildingID: uuid.New()})
	require.Error(t, err)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
