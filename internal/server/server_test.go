package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/internal/audit"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/i18n"
	"github.com/hrunx/es2square/internal/repository"
)

type fakeBuildings struct {
	created  []*repository.CreateBuildingRequest
	building *entity.Building
}

func (f *fakeBuildings) Create(ctx context.Context, req *repository.CreateBuildingRequest) (*entity.Building, error) {
	f.created = append(f.created, req)
	return &entity.Building{ID: uuid.New(), Name: req.Name, Address: req.Address, Type: req.Type, Area: req.Area}, nil
}

func (f *fakeBuildings) Get(ctx context.Context, id uuid.UUID) (*entity.Building, error) {
	if f.building == nil || f.building.ID != id {
		return nil, common.NewAppError("NOT_FOUND", "building not found", common.ErrNotFound)
	}
	return f.building, nil
}

func (f *fakeBuildings) List(ctx context.Context) ([]*entity.Building, error) {
	if f.building == nil {
		return []*entity.Building{}, nil
	}
	return []*entity.Building{f.building}, nil
}

type fakeTranslations struct {
	rows map[string][]*entity.Translation
}

func (f *fakeTranslations) ListByLocale(ctx context.Context, locale string) ([]*entity.Translation, error) {
	return f.rows[locale], nil
}

func (f *fakeTranslations) Upsert(ctx context.Context, key, locale, value, kind string) error {
	if f.rows == nil {
		f.rows = map[string][]*entity.Translation{}
	}
	f.rows[locale] = append(f.rows[locale], &entity.Translation{Key: key, Locale: locale, Value: value, Kind: kind})
	return nil
}

type fakeAudits struct{}

func (fakeAudits) UpsertByBuildingAndType(ctx context.Context, req *repository.UpsertAuditRequest) (*entity.Audit, error) {
	return nil, nil
}

func (fakeAudits) UpsertTx(ctx context.Context, tx *ent.Tx, req *repository.UpsertAuditRequest) (*entity.Audit, error) {
	return nil, nil
}

func (fakeAudits) GetByBuildingAndType(ctx context.Context, buildingID uuid.UUID, t constants.AuditType) (*entity.Audit, error) {
	return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
}

func (fakeAudits) LatestByBuilding(ctx context.Context, buildingID uuid.UUID) (*entity.Audit, error) {
	return nil, common.NewAppError("NOT_FOUND", "audit not found", common.ErrNotFound)
}

func newTestRouter(buildings *fakeBuildings, translations *fakeTranslations) http.Handler {
	intake := audit.NewIntake(nil, nil, nil, buildings, nil, nil, nil, nil)
	srv := New(buildings, intake, nil, nil, i18n.NewService(translations, nil), nil, nil)
	return srv.Router()
}

func TestHealthz(t *testing.T) {
	h := newTestRouter(&fakeBuildings{}, &fakeTranslations{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateBuilding(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantErr    string
	}{
		{
			name:       "valid",
			body:       `{"name":"Clinic","address":"12 Main St","type":"commercial","area":400}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing name",
			body:       `{"address":"12 Main St","type":"commercial","area":400}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "name, address, and a positive area are required",
		},
		{
			name:       "zero area",
			body:       `{"name":"Clinic","address":"12 Main St","type":"commercial","area":0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad type",
			body:       `{"name":"Clinic","address":"12 Main St","type":"warehouse","area":400}`,
			wantStatus: http.StatusBadRequest,
			wantErr:    "building type must be residential, commercial, industrial, or educational",
		},
		{
			name:       "garbage body",
			body:       `{{{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(&fakeBuildings{}, &fakeTranslations{})
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/buildings", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantErr != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantErr, body["error"])
			}
		})
	}
}

func TestGetBuilding(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Address: "x", Type: "commercial", Area: 400}
	h := newTestRouter(&fakeBuildings{building: b}, &fakeTranslations{})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings/"+b.ID.String(), nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings/"+uuid.New().String(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings/not-a-uuid", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIntakeRequiresBills(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Address: "x", Type: "commercial", Area: 400}
	h := newTestRouter(&fakeBuildings{building: b}, &fakeTranslations{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/buildings/"+b.ID.String()+"/intake", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "at least one electricity bill is required")
}

func TestIntakeRejectsUnsupportedUpload(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Address: "x", Type: "commercial", Area: 400}
	h := newTestRouter(&fakeBuildings{building: b}, &fakeTranslations{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="bills"; filename="bill.csv"`},
		"Content-Type":        {"text/csv"},
	})
	require.NoError(t, err)
	_, _ = part.Write([]byte("kwh,cost\n100,12"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/buildings/"+b.ID.String()+"/intake", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bill.csv")
	assert.Contains(t, rec.Body.String(), "unsupported type")
}

func TestIntakeRejectsMultipleFloorPlans(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Address: "x", Type: "commercial", Area: 400}
	h := newTestRouter(&fakeBuildings{building: b}, &fakeTranslations{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, name := range []string{"bill.pdf", "plan-a.pdf", "plan-b.pdf"} {
		field := "floor_plan"
		if name == "bill.pdf" {
			field = "bills"
		}
		part, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Disposition": {`form-data; name="` + field + `"; filename="` + name + `"`},
			"Content-Type":        {"application/pdf"},
		})
		require.NoError(t, err)
		_, _ = part.Write([]byte("%PDF-1.4"))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/buildings/"+b.ID.String()+"/intake", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "exactly one floor plan is required")
}

func TestDetailedValidatesEquipment(t *testing.T) {
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Address: "x", Type: "commercial", Area: 400}
	h := newTestRouter(&fakeBuildings{building: b}, &fakeTranslations{})

	body := `{"equipment":[{"name":"Rooftop AC"}]}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/buildings/"+b.ID.String()+"/audits/detailed", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name and category")
}

func TestTranslationsRoundTrip(t *testing.T) {
	translations := &fakeTranslations{rows: map[string][]*entity.Translation{
		"ar": {{Key: "report.title", Locale: "ar", Value: "تقرير الطاقة"}},
	}}
	h := newTestRouter(&fakeBuildings{}, translations)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/translations/ar", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var table map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "تقرير الطاقة", table["report.title"])

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/translations/ar",
		strings.NewReader(`{"report.export":"تصدير"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"stored":1}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/translations/ar", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.Equal(t, "تصدير", table["report.export"])
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(&fakeBuildings{}, &fakeTranslations{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/buildings", nil)
	req.Header.Set("Origin", "https://app.example")
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
