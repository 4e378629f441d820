package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/floorplan"
	"github.com/hrunx/es2square/internal/llm"
	"github.com/hrunx/es2square/internal/ocr"
	"github.com/hrunx/es2square/internal/repository"
	"github.com/hrunx/es2square/internal/storage"
)

// defaultRoomCount is used for the equal-split fallback when the building
// declares no room count.
const defaultRoomCount = 4

// Upload is one file received from the intake form.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}

// IntakeRequest carries everything the initial audit needs.
type IntakeRequest struct {
	BuildingID uuid.UUID
	Bills      []Upload
	FloorPlan  *Upload
}

// fileResult is one upload's outcome from the concurrent processing stage.
type fileResult struct {
	text  string
	recID uuid.UUID
	err   error
}

// IntakeResult is the level-I outcome returned to the client.
type IntakeResult struct {
	Audit            *entity.Audit  `json:"audit"`
	Rooms            []*entity.Room `json:"rooms"`
	Report           map[string]any `json:"report"`
	NoRoomDataFound  bool           `json:"noRoomDataFound"`
	ProcessingErrors []string       `json:"processingErrors,omitempty"`
}

// Intake runs the level-I flow: validate uploads, process each document,
// synthesize the initial report, and persist rooms plus the audit in one
// transaction.
type Intake struct {
	store      storage.DocumentStore
	recognizer ocr.Recognizer
	completer  llm.Completer
	buildings  repository.BuildingRepository
	files      repository.FileRepository
	ocrRepo    repository.OCRRepository
	writer     repository.IntakeWriter
	log        *slog.Logger
}

func NewIntake(
	store storage.DocumentStore,
	recognizer ocr.Recognizer,
	completer llm.Completer,
	buildings repository.BuildingRepository,
	files repository.FileRepository,
	ocrRepo repository.OCRRepository,
	writer repository.IntakeWriter,
	logger *slog.Logger,
) *Intake {
	if logger == nil {
		logger = slog.Default()
	}
	return &Intake{
		store:      store,
		recognizer: recognizer,
		completer:  completer,
		buildings:  buildings,
		files:      files,
		ocrRepo:    ocrRepo,
		writer:     writer,
		log:        logger,
	}
}

// Run executes the full intake for one building.
func (s *Intake) Run(ctx context.Context, req *IntakeRequest) (*IntakeResult, error) {
	start := time.Now()
	s.log.Info("audit.intake.start",
		"building_id", req.BuildingID,
		"bills", len(req.Bills),
		"has_floor_plan", req.FloorPlan != nil,
	)

	if err := validateIntake(req); err != nil {
		return nil, err
	}

	building, err := s.buildings.Get(ctx, req.BuildingID)
	if err != nil {
		return nil, err
	}

	// Every upload is independent until the analysis stage, so dispatch the
	// whole batch at once and join before prompting. Bill order is kept by
	// writing results into fixed slots.
	billResults := make([]fileResult, len(req.Bills))
	var planRes fileResult
	var wg sync.WaitGroup
	for i, bill := range req.Bills {
		wg.Add(1)
		go func(i int, f Upload) {
			defer wg.Done()
			text, recID, err := s.processFile(ctx, building.ID, f, false)
			billResults[i] = fileResult{text: text, recID: recID, err: err}
		}(i, bill)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		text, recID, err := s.processFile(ctx, building.ID, *req.FloorPlan, true)
		planRes = fileResult{text: text, recID: recID, err: err}
	}()
	wg.Wait()

	var (
		billTexts []string
		planText  string
		planRooms []floorplan.RoomExtract
		planRecID *uuid.UUID
		procErrs  []string
		billsOK   int
	)
	for i, res := range billResults {
		if res.err != nil {
			procErrs = append(procErrs, fmt.Sprintf("%s: %v", req.Bills[i].Name, res.err))
			continue
		}
		billTexts = append(billTexts, res.text)
		billsOK++
	}
	if billsOK == 0 {
		return nil, common.NewAppError("UPSTREAM_ERROR",
			"no electricity bills could be processed", common.ErrUpstream)
	}

	if planRes.err != nil {
		procErrs = append(procErrs, fmt.Sprintf("%s: %v", req.FloorPlan.Name, planRes.err))
	} else {
		planText = planRes.text
		recID := planRes.recID
		planRecID = &recID
		if floorplan.IsFloorPlan(req.FloorPlan.Name, planText) {
			planRooms = floorplan.Parse(planText)
		}
	}

	analysis, raw, err := s.generateInitialReport(ctx, building, billTexts, planText)
	if err != nil {
		return nil, err
	}

	roomReqs, noRoomData := s.buildRooms(building, planRooms, planRecID)

	findings, _ := json.Marshal(analysis)
	recsJSON := extractRecommendations(analysis)
	metricsJSON := extractSection(analysis, "key_metrics")
	summaryJSON := extractSection(analysis, "executive_summary")

	insertedRooms, auditRow, err := s.writer.PersistIntake(ctx, roomReqs, &repository.UpsertAuditRequest{
		BuildingID:       building.ID,
		Type:             constants.AuditInitial,
		Status:           constants.AuditStatusCompleted,
		Findings:         findings,
		Recommendations:  recsJSON,
		KeyMetrics:       metricsJSON,
		ExecutiveSummary: summaryJSON,
		AIRaw:            raw,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("audit.intake.ok",
		"building_id", building.ID,
		"bills_processed", billsOK,
		"rooms", len(insertedRooms),
		"no_room_data", noRoomData,
		"processing_errors", len(procErrs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	return &IntakeResult{
		Audit:            auditRow,
		Rooms:            insertedRooms,
		Report:           analysis,
		NoRoomDataFound:  noRoomData,
		ProcessingErrors: procErrs,
	}, nil
}

func validateIntake(req *IntakeRequest) error {
	if len(req.Bills) == 0 {
		return common.NewAppError("INVALID_INPUT",
			"at least one electricity bill is required", common.ErrInvalidInput)
	}
	if req.FloorPlan == nil {
		return common.NewAppError("INVALID_INPUT",
			"exactly one floor plan is required", common.ErrInvalidInput)
	}
	all := append(append([]Upload{}, req.Bills...), *req.FloorPlan)
	for _, f := range all {
		if len(f.Data) > constants.MaxUploadBytes {
			return common.NewAppError("INVALID_INPUT",
				fmt.Sprintf("file %s exceeds the 10MB limit", f.Name), common.ErrInvalidInput)
		}
		if !constants.MIMEAllowed(f.ContentType) {
			return common.NewAppError("INVALID_INPUT",
				fmt.Sprintf("file %s has unsupported type %s", f.Name, f.ContentType), common.ErrInvalidInput)
		}
	}
	return nil
}

// processFile uploads, records, and OCRs a single document. The returned id
// is the created ocr_records row.
func (s *Intake) processFile(ctx context.Context, buildingID uuid.UUID, f Upload, asPlan bool) (string, uuid.UUID, error) {
	url, err := s.store.Upload(ctx, f.Name, f.Data, f.ContentType)
	if err != nil {
		return "", uuid.Nil, err
	}

	fileRow, err := s.files.Create(ctx, &repository.CreateFileRequest{
		BuildingID: buildingID,
		FileURL:    url,
		FileName:   f.Name,
		FileType:   f.ContentType,
		FileSize:   len(f.Data),
	})
	if err != nil {
		return "", uuid.Nil, err
	}

	res, err := s.recognizer.RecognizeURL(ctx, url, f.Name)
	if err != nil {
		return "", uuid.Nil, err
	}

	isPlan := asPlan || floorplan.IsFloorPlan(f.Name, res.Text)
	var processed any
	if isPlan {
		processed = map[string]any{
			"type":  "floor_plan",
			"rooms": floorplan.Parse(res.Text),
		}
	}

	rec, err := s.ocrRepo.Create(ctx, &repository.CreateOCRRequest{
		BuildingID:    buildingID,
		RawText:       res.Text,
		ProcessedText: processed,
		Metadata: &entity.OCRMetadata{
			FileName:    f.Name,
			FileType:    f.ContentType,
			FileSize:    len(f.Data),
			ProcessedAt: time.Now().UTC(),
			IsFloorPlan: isPlan,
		},
		IsFloorPlan: isPlan,
	})
	if err != nil {
		return "", uuid.Nil, err
	}

	if err := s.files.MarkProcessed(ctx, fileRow.ID, rec.ID); err != nil {
		return "", uuid.Nil, err
	}
	return res.Text, rec.ID, nil
}

// buildRooms prefers floor-plan extractions; when none survive filtering it
// splits the declared floor area into equal synthetic rooms.
func (s *Intake) buildRooms(b *entity.Building, extracted []floorplan.RoomExtract, recID *uuid.UUID) ([]*repository.CreateRoomRequest, bool) {
	var reqs []*repository.CreateRoomRequest
	for _, r := range extracted {
		if r.Area <= 0 || !floorplan.ValidRoomName(r.Name) {
			continue
		}
		reqs = append(reqs, &repository.CreateRoomRequest{
			BuildingID: b.ID,
			Name:       r.Name,
			Area:       r.Area,
			RoomData: &entity.RoomData{
				Dimensions:       r.Dimensions,
				ExtractedFromOCR: true,
				OCRRecordID:      recID,
			},
		})
	}
	if len(reqs) > 0 {
		return reqs, false
	}

	n := defaultRoomCount
	if b.RoomsDeclared != nil && *b.RoomsDeclared > 0 {
		n = *b.RoomsDeclared
	}
	area := math.Round(b.Area/float64(n)*100) / 100
	side := fmt.Sprintf("%.1f", math.Sqrt(area))
	for i := 1; i <= n; i++ {
		reqs = append(reqs, &repository.CreateRoomRequest{
			BuildingID: b.ID,
			Name:       fmt.Sprintf("Room %d", i),
			Area:       area,
			RoomData: &entity.RoomData{
				Dimensions: &entity.Dimensions{Width: side, Length: side},
				IsDefault:  true,
			},
		})
	}
	return reqs, true
}

func (s *Intake) generateInitialReport(ctx context.Context, b *entity.Building, billTexts []string, planText string) (map[string]any, json.RawMessage, error) {
	var p strings.Builder
	p.WriteString("You are an energy auditor. Produce an initial energy assessment for this building as strict JSON with keys ")
	p.WriteString(`"findings" (array of strings), "recommendations" (array of {title, description, savings, priority}), "key_metrics" (object), "executive_summary" (string).`)
	p.WriteString("\n\nBuilding:\n")
	fmt.Fprintf(&p, "- Name: %s\n- Type: %s\n- Floor area: %.2f m2\n", b.Name, b.Type, b.Area)
	if b.ConstructionYear != nil {
		fmt.Fprintf(&p, "- Construction year: %d\n", *b.ConstructionYear)
	}
	if b.Residents != nil {
		fmt.Fprintf(&p, "- Occupants: %d\n", *b.Residents)
	}
	for i, t := range billTexts {
		fmt.Fprintf(&p, "\nElectricity bill %d text:\n%s\n", i+1, t)
	}
	if planText != "" {
		fmt.Fprintf(&p, "\nFloor plan text:\n%s\n", planText)
	}
	p.WriteString("\nReturn ONLY the JSON object.")

	content, err := s.completer.Complete(ctx, llm.UserPrompt(p.String()))
	if err != nil {
		return nil, nil, common.NewAppError("UPSTREAM_ERROR", "initial analysis failed", err)
	}

	cleaned := llm.StripFences(content)
	var analysis map[string]any
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, nil, common.NewAppError("UPSTREAM_ERROR",
			fmt.Sprintf("invalid AI JSON: %v", err), common.ErrUpstream)
	}
	analysis = llm.NormalizeAnalysis(analysis)
	return analysis, json.RawMessage(content), nil
}

func extractRecommendations(analysis map[string]any) json.RawMessage {
	return extractSection(analysis, "recommendations")
}

func extractSection(analysis map[string]any, key string) json.RawMessage {
	v, ok := analysis[key]
	if !ok {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return raw
}
