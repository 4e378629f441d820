package report

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
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

type fakeAudits struct {
	latest *entity.Audit
}

func (f *fakeAudits) UpsertByBuildingAndType(ctx context.Context, req *repository.UpsertAuditRequest) (*entity.Audit, error) {
	return nil, nil
}

func (f *fakeAudits) UpsertTx(ctx context.Context, tx *ent.Tx, req *repository.UpsertAuditRequest) (*entity.Audit, error) {
	return nil, nil
}

func (f *fakeAudits) GetByBuildingAndType(ctx context.Context, buildingID uuid.UUID, t constants.AuditType) (*entity.Audit, error) {
	return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
}

func (f *fakeAudits) LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Audit, error) {
	if f.latest == nil {
		return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
	}
	return f.latest, nil
}

type fakeStore struct {
	uploads     map[string][]byte
	contentType string
}

func (f *fakeStore) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeStore) Upload(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	if f.uploads == nil {
		f.uploads = map[string][]byte{}
	}
	f.uploads[fileName] = data
	f.contentType = contentType
	return f.PublicURL(fileName), nil
}

func (f *fakeStore) PublicURL(objectKey string) string {
	return "https://store.example/public/" + objectKey
}

func fixture() (*Service, *fakeStore, uuid.UUID) {
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Address: "12 Main St", Type: "commercial", Area: 400}
	recs, _ := json.Marshal([]entity.Recommendation{
		{Title: "LED retrofit", Description: "Swap fluorescent fixtures", SavingsUSD: 800, SavingsKWh: 2100, SavingsTCO2: 0.9, Cost: 1500, ROI: 1.9, Priority: "High"},
		{Title: "Smart thermostat", SavingsUSD: 260, SavingsKWh: 700, Priority: "Medium"},
	})
	metrics, _ := json.Marshal(map[string]any{"eui": 180})
	summary, _ := json.Marshal("Lighting dominates the load.")
	a := &entity.Audit{
		ID: uuid.New(), BuildingID: b.ID,
		Type: constants.AuditDetailed, Status: constants.AuditStatusCompleted,
		Recommendations: recs, KeyMetrics: metrics, ExecutiveSummary: summary,
		UpdatedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	}
	store := &fakeStore{}
	svc := NewService(&fakeBuildings{building: b}, &fakeAudits{latest: a}, store, nil)
	return svc, store, b.ID
}

func TestSummary(t *testing.T) {
	svc, _, id := fixture()

	sum, err := svc.Summary(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Clinic", sum.Building.Name)
	assert.Equal(t, constants.AuditDetailed, sum.Audit.Type)
	require.Len(t, sum.Recommendations, 2)
	assert.Equal(t, "LED retrofit", sum.Recommendations[0].Title)
	assert.Equal(t, 800.0, sum.Recommendations[0].SavingsUSD)
	assert.Equal(t, "not_connected", sum.Monitoring["status"])
}

func TestSummaryUnknownBuilding(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.Summary(context.Background(), uuid.New())
	require.Error(t, err)
	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestSummaryNoAudit(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "Empty", Address: "x", Type: "residential", Area: 100}
	svc := NewService(&fakeBuildings{building: b}, &fakeAudits{}, &fakeStore{}, nil)

	_, err := svc.Summary(context.Background(), b.ID)
	require.Error(t, err)
}

func TestExportXLSX(t *testing.T) {
	svc, _, id := fixture()

	data, err := svc.ExportXLSX(context.Background(), id)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	name, err := f.GetCellValue("Overview", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Clinic", name)

	level, err := f.GetCellValue("Overview", "B5")
	require.NoError(t, err)
	assert.Equal(t, "detailed", level)

	title, err := f.GetCellValue("Recommendations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "LED retrofit", title)

	priority, err := f.GetCellValue("Recommendations", "H3")
	require.NoError(t, err)
	assert.Equal(t, "Medium", priority)
}

func TestShareUploadsSummaryJSON(t *testing.T) {
	svc, store, id := fixture()

	url, err := svc.Share(context.Background(), id)
	require.NoError(t, err)

	key := "report-" + id.String() + ".json"
	assert.Equal(t, "https://store.example/public/"+key, url)
	assert.Equal(t, "application/json", store.contentType)

	var sum map[string]any
	require.NoError(t, json.Unmarshal(store.uploads[key], &sum))
	assert.Contains(t, sum, "building")
	assert.Contains(t, sum, "recommendations")
}
