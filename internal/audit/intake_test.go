package audit

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/floorplan"
	"github.com/hrunx/es2square/internal/ocr"
	"github.com/hrunx/es2square/internal/repository"
)

func pdfUpload(name string, size int) Upload {
	return Upload{
		Name:        name,
		ContentType: "application/pdf",
		Data:        make([]byte, size),
	}
}

func TestValidateIntakeRequiresBills(t *testing.T) {
	plan := pdfUpload("plan.pdf", 100)
	err := validateIntake(&IntakeRequest{FloorPlan: &plan})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "electricity bill")
}

func TestValidateIntakeRequiresFloorPlan(t *testing.T) {
	err := validateIntake(&IntakeRequest{Bills: []Upload{pdfUpload("bill.pdf", 100)}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "floor plan")
}

func TestValidateIntakeSizeBoundary(t *testing.T) {
	plan := pdfUpload("plan.pdf", 100)

	// exactly at the limit passes
	ok := &IntakeRequest{
		Bills:     []Upload{pdfUpload("bill.pdf", constants.MaxUploadBytes)},
		FloorPlan: &plan,
	}
	assert.NoError(t, validateIntake(ok))

	// one byte over names the file
	over := &IntakeRequest{
		Bills:     []Upload{pdfUpload("march-bill.pdf", constants.MaxUploadBytes+1)},
		FloorPlan: &plan,
	}
	err := validateIntake(over)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "march-bill.pdf")
	assert.Contains(t, err.Error(), "10MB")
}

func TestValidateIntakeRejectsUnsupportedMIME(t *testing.T) {
	plan := pdfUpload("plan.pdf", 100)
	req := &IntakeRequest{
		Bills: []Upload{{
			Name:        "bill.docx",
			ContentType: "application/msword",
			Data:        []byte("x"),
		}},
		FloorPlan: &plan,
	}
	err := validateIntake(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bill.docx")
}

func TestBuildRoomsPrefersExtracted(t *testing.T) {
	s := &Intake{}
	b := &entity.Building{ID: uuid.New(), Area: 200}
	recID := uuid.New()

	extracted := []floorplan.RoomExtract{
		{Name: "BEDROOM", Area: 125.0, Dimensions: &entity.Dimensions{Width: "12'-6\"", Length: "10'-0\""}},
		{Name: "HALL", Area: 0},       // no usable dimensions
		{Name: "1234", Area: 50},      // numeric label
		{Name: "KITCHEN", Area: 80.5},
	}

	reqs, noData := s.buildRooms(b, extracted, &recID)
	assert.False(t, noData)
	require.Len(t, reqs, 2)
	assert.Equal(t, "BEDROOM", reqs[0].Name)
	assert.Equal(t, "KITCHEN", reqs[1].Name)
	assert.True(t, reqs[0].RoomData.ExtractedFromOCR)
	assert.Equal(t, &recID, reqs[0].RoomData.OCRRecordID)
}

func TestBuildRoomsEqualSplitFallback(t *testing.T) {
	s := &Intake{}
	b := &entity.Building{ID: uuid.New(), Area: 200}

	reqs, noData := s.buildRooms(b, nil, nil)
	assert.True(t, noData)
	require.Len(t, reqs, defaultRoomCount)
	for i, r := range reqs {
		assert.InDelta(t, 50.0, r.Area, 0.001)
		assert.True(t, r.RoomData.IsDefault)
		assert.True(t, strings.HasPrefix(r.Name, "Room "), "room %d name %q", i, r.Name)
	}
}

func TestBuildRoomsFallbackUsesDeclaredCount(t *testing.T) {
	n := 5
	s := &Intake{}
	b := &entity.Building{ID: uuid.New(), Area: 250, RoomsDeclared: &n}

	reqs, noData := s.buildRooms(b, nil, nil)
	assert.True(t, noData)
	require.Len(t, reqs, 5)
	assert.InDelta(t, 50.0, reqs[0].Area, 0.001)
}

func TestBuildRoomsFallbackWhenAllExtractionsInvalid(t *testing.T) {
	s := &Intake{}
	b := &entity.Building{ID: uuid.New(), Area: 100}

	extracted := []floorplan.RoomExtract{
		{Name: "HALL", Area: 0},
		{Name: "99", Area: 20},
	}
	reqs, noData := s.buildRooms(b, extracted, nil)
	assert.True(t, noData)
	assert.Len(t, reqs, defaultRoomCount)
}

type fakeStore struct {
	mu      sync.Mutex
	uploads []string
}

func (f *fakeStore) EnsureBucket(ctx context.Context) error { return nil }

func (f *fakeStore) Upload(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, fileName)
	return "https://files.example/" + fileName, nil
}

func (f *fakeStore) PublicURL(objectKey string) string {
	return "https://files.example/" + objectKey
}

// fakeRecognizer returns canned text per file name and tracks how many
// recognitions overlap in time.
type fakeRecognizer struct {
	mu          sync.Mutex
	texts       map[string]string
	failFor     map[string]bool
	delay       time.Duration
	inFlight    int
	maxInFlight int
}

func (f *fakeRecognizer) RecognizeURL(ctx context.Context, fileURL, fileName string) (ocr.Result, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.inFlight--
	fail := f.failFor[fileName]
	text := f.texts[fileName]
	f.mu.Unlock()

	if fail {
		return ocr.Result{}, common.NewAppError("UPSTREAM_ERROR", "OCR failed for "+fileName, common.ErrUpstream)
	}
	return ocr.Result{Text: text}, nil
}

type fakeFiles struct {
	mu        sync.Mutex
	created   []*repository.CreateFileRequest
	processed int
}

func (f *fakeFiles) Create(ctx context.Context, req *repository.CreateFileRequest) (*entity.AuditFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, req)
	return &entity.AuditFile{ID: uuid.New(), BuildingID: req.BuildingID, FileName: req.FileName}, nil
}

func (f *fakeFiles) MarkProcessed(ctx context.Context, fileID, ocrRecordID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.processed++
	return nil
}

func (f *fakeFiles) ListByBuilding(ctx context.Context, buildingID uuid.UUID) ([]*entity.AuditFile, error) {
	return nil, nil
}

type fakeWriter struct {
	roomReqs []*repository.CreateRoomRequest
	auditReq *repository.UpsertAuditRequest
}

func (f *fakeWriter) PersistIntake(ctx context.Context, roomReqs []*repository.CreateRoomRequest, auditReq *repository.UpsertAuditRequest) ([]*entity.Room, *entity.Audit, error) {
	f.roomReqs = roomReqs
	f.auditReq = auditReq
	rooms := make([]*entity.Room, len(roomReqs))
	for i, r := range roomReqs {
		rooms[i] = &entity.Room{ID: uuid.New(), BuildingID: r.BuildingID, Name: r.Name, Area: r.Area}
	}
	audit := &entity.Audit{ID: uuid.New(), BuildingID: auditReq.BuildingID, Type: auditReq.Type, Status: auditReq.Status}
	return rooms, audit, nil
}

type intakeFixture struct {
	svc        *Intake
	recognizer *fakeRecognizer
	completer  *fakeCompleter
	files      *fakeFiles
	ocrRepo    *fakeOCR
	writer     *fakeWriter
	building   *entity.Building
}

func newIntakeFixture(texts map[string]string) *intakeFixture {
	n := 4
	b := &entity.Building{ID: uuid.New(), Name: "Clinic", Type: "commercial", Area: 200, RoomsDeclared: &n}
	f := &intakeFixture{
		recognizer: &fakeRecognizer{texts: texts, failFor: map[string]bool{}},
		completer:  &fakeCompleter{reply: goodReply},
		files:      &fakeFiles{},
		ocrRepo:    &fakeOCR{},
		writer:     &fakeWriter{},
		building:   b,
	}
	f.svc = NewIntake(
		&fakeStore{},
		f.recognizer,
		f.completer,
		&fakeBuildings{building: b},
		f.files,
		f.ocrRepo,
		f.writer,
		nil,
	)
	return f
}

func TestIntakeRunFallsBackToEqualRooms(t *testing.T) {
	f := newIntakeFixture(map[string]string{
		"march-bill.pdf": "Billing period March. Usage 4200 kWh. Total 1890 SAR.",
		"site-plan.pdf":  "a scanned drawing with no legible labels",
	})
	plan := pdfUpload("site-plan.pdf", 100)

	res, err := f.svc.Run(context.Background(), &IntakeRequest{
		BuildingID: f.building.ID,
		Bills:      []Upload{pdfUpload("march-bill.pdf", 100)},
		FloorPlan:  &plan,
	})
	require.NoError(t, err)

	assert.True(t, res.NoRoomDataFound)
	assert.Empty(t, res.ProcessingErrors)
	require.Len(t, res.Rooms, 4)
	for _, r := range res.Rooms {
		assert.InDelta(t, 50.0, r.Area, 0.001)
	}
	require.Len(t, f.writer.roomReqs, 4)
	assert.True(t, f.writer.roomReqs[0].RoomData.IsDefault)

	require.NotNil(t, f.writer.auditReq)
	assert.Equal(t, constants.AuditInitial, f.writer.auditReq.Type)
	assert.Equal(t, constants.AuditStatusCompleted, f.writer.auditReq.Status)
	assert.NotEmpty(t, f.writer.auditReq.Recommendations)

	require.NotNil(t, res.Audit)
	assert.Contains(t, res.Report, "findings")

	// both documents were uploaded, recorded, and OCRed
	assert.Len(t, f.ocrRepo.created, 2)
	assert.Equal(t, 2, f.files.processed)
}

func TestIntakeRunUsesExtractedRooms(t *testing.T) {
	f := newIntakeFixture(map[string]string{
		"bill.pdf": "Usage 4200 kWh",
		"plan.pdf": "BEDROOM 12'-6\" x 10'-0\"\nKITCHEN 10 x 8\n",
	})
	plan := pdfUpload("plan.pdf", 100)

	res, err := f.svc.Run(context.Background(), &IntakeRequest{
		BuildingID: f.building.ID,
		Bills:      []Upload{pdfUpload("bill.pdf", 100)},
		FloorPlan:  &plan,
	})
	require.NoError(t, err)

	assert.False(t, res.NoRoomDataFound)
	require.Len(t, f.writer.roomReqs, 2)
	assert.Equal(t, "BEDROOM", f.writer.roomReqs[0].Name)
	assert.Equal(t, "KITCHEN", f.writer.roomReqs[1].Name)
	assert.True(t, f.writer.roomReqs[0].RoomData.ExtractedFromOCR)
	require.NotNil(t, f.writer.roomReqs[0].RoomData.OCRRecordID)
}

func TestIntakeRunKeepsSiblingsOnBillFailure(t *testing.T) {
	f := newIntakeFixture(map[string]string{
		"good-bill.pdf": "Usage 4200 kWh",
		"site-plan.pdf": "a scanned drawing",
	})
	f.recognizer.failFor["bad-bill.pdf"] = true
	plan := pdfUpload("site-plan.pdf", 100)

	res, err := f.svc.Run(context.Background(), &IntakeRequest{
		BuildingID: f.building.ID,
		Bills:      []Upload{pdfUpload("bad-bill.pdf", 100), pdfUpload("good-bill.pdf", 100)},
		FloorPlan:  &plan,
	})
	require.NoError(t, err)

	require.Len(t, res.ProcessingErrors, 1)
	assert.Contains(t, res.ProcessingErrors[0], "bad-bill.pdf")
	require.NotNil(t, res.Audit)
}

func TestIntakeRunFailsWhenNoBillSurvives(t *testing.T) {
	f := newIntakeFixture(map[string]string{"site-plan.pdf": "a scanned drawing"})
	f.recognizer.failFor["only-bill.pdf"] = true
	plan := pdfUpload("site-plan.pdf", 100)

	_, err := f.svc.Run(context.Background(), &IntakeRequest{
		BuildingID: f.building.ID,
		Bills:      []Upload{pdfUpload("only-bill.pdf", 100)},
		FloorPlan:  &plan,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no electricity bills could be processed")
	assert.Equal(t, 0, f.completer.calls)
}

func TestIntakeRunToleratesFloorPlanFailure(t *testing.T) {
	f := newIntakeFixture(map[string]string{"bill.pdf": "Usage 4200 kWh"})
	f.recognizer.failFor["site-plan.pdf"] = true
	plan := pdfUpload("site-plan.pdf", 100)

	res, err := f.svc.Run(context.Background(), &IntakeRequest{
		BuildingID: f.building.ID,
		Bills:      []Upload{pdfUpload("bill.pdf", 100)},
		FloorPlan:  &plan,
	})
	require.NoError(t, err)

	assert.True(t, res.NoRoomDataFound)
	require.Len(t, res.ProcessingErrors, 1)
	assert.Contains(t, res.ProcessingErrors[0], "site-plan.pdf")
}

func TestIntakeRunProcessesUploadsConcurrently(t *testing.T) {
	texts := map[string]string{"site-plan.pdf": "a scanned drawing"}
	bills := make([]Upload, 3)
	for i := range bills {
		name := fmt.Sprintf("bill-%d.pdf", i+1)
		texts[name] = "Usage 4200 kWh"
		bills[i] = pdfUpload(name, 100)
	}
	f := newIntakeFixture(texts)
	f.recognizer.delay = 40 * time.Millisecond
	plan := pdfUpload("site-plan.pdf", 100)

	res, err := f.svc.Run(context.Background(), &IntakeRequest{
		BuildingID: f.building.ID,
		Bills:      bills,
		FloorPlan:  &plan,
	})
	require.NoError(t, err)
	assert.Empty(t, res.ProcessingErrors)
	assert.Greater(t, f.recognizer.maxInFlight, 1,
		"uploads should be recognized in parallel, not one after another")
}
