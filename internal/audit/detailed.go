package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/internal/cache"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/llm"
	"github.com/hrunx/es2square/internal/repository"
)

// reportSections must all be present in the model output. Checked in order
// so the error always names the first missing one.
var reportSections = []string{"findings", "recommendations", "key_metrics", "executive_summary"}

// DetailedRequest triggers a level-II/III analysis. New equipment from the
// survey step is inserted before the graph is fetched. Force bypasses both
// cache layers.
type DetailedRequest struct {
	BuildingID uuid.UUID
	Equipment  []*repository.CreateEquipmentRequest
	Force      bool
}

// DetailedResult is what the API returns for a detailed run.
type DetailedResult struct {
	Content json.RawMessage `json:"content"`
	Cached  bool            `json:"cached"`
}

// Detailed coordinates the detailed audit: one run at a time per building,
// cache-first, LLM on miss.
type Detailed struct {
	cacheTTL  time.Duration
	cacheCli  cache.Client
	completer llm.Completer
	buildings repository.BuildingRepository
	rooms     repository.RoomRepository
	equipment repository.EquipmentRepository
	ocrRepo   repository.OCRRepository
	audits    repository.AuditRepository
	reports   repository.ReportRepository
	log       *slog.Logger

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewDetailed(
	cacheCli cache.Client,
	cacheTTL time.Duration,
	completer llm.Completer,
	buildings repository.BuildingRepository,
	rooms repository.RoomRepository,
	equipment repository.EquipmentRepository,
	ocrRepo repository.OCRRepository,
	audits repository.AuditRepository,
	reports repository.ReportRepository,
	logger *slog.Logger,
) *Detailed {
	if cacheTTL <= 0 {
		cacheTTL = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Detailed{
		cacheTTL:  cacheTTL,
		cacheCli:  cacheCli,
		completer: completer,
		buildings: buildings,
		rooms:     rooms,
		equipment: equipment,
		ocrRepo:   ocrRepo,
		audits:    audits,
		reports:   reports,
		log:       logger,
		locks:     map[uuid.UUID]*sync.Mutex{},
	}
}

// lockFor serializes runs per building; concurrent requests for different
// buildings proceed in parallel.
func (s *Detailed) lockFor(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Run executes the detailed audit for one building.
func (s *Detailed) Run(ctx context.Context, req *DetailedRequest) (*DetailedResult, error) {
	l := s.lockFor(req.BuildingID)
	l.Lock()
	defer l.Unlock()

	start := time.Now()
	s.log.Info("audit.detailed.start",
		"building_id", req.BuildingID,
		"new_equipment", len(req.Equipment),
		"force", req.Force,
	)

	building, err := s.buildings.Get(ctx, req.BuildingID)
	if err != nil {
		return nil, err
	}

	if len(req.Equipment) > 0 {
		if _, err := s.equipment.InsertBatch(ctx, req.Equipment); err != nil {
			return nil, err
		}
	}

	if !req.Force {
		if cached, ok := s.cachedReport(ctx, req.BuildingID); ok {
			s.log.Info("audit.detailed.cache_hit",
				"building_id", req.BuildingID,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return &DetailedResult{Content: cached, Cached: true}, nil
		}
	}

	content, err := s.generate(ctx, building)
	if err != nil {
		return nil, err
	}

	s.log.Info("audit.detailed.ok",
		"building_id", req.BuildingID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &DetailedResult{Content: content}, nil
}

// cachedReport checks redis first, then the durable detailed_reports table.
// A database hit re-primes redis.
func (s *Detailed) cachedReport(ctx context.Context, buildingID uuid.UUID) (json.RawMessage, bool) {
	key := cache.ReportKey(buildingID.String())
	if s.cacheCli != nil {
		if b, err := s.cacheCli.Get(ctx, key); err == nil {
			return b, true
		}
	}
	rep, err := s.reports.LatestByBuilding(ctx, buildingID)
	if err != nil {
		return nil, false
	}
	if s.cacheCli != nil {
		_ = s.cacheCli.Set(ctx, key, rep.Content, s.cacheTTL)
	}
	return rep.Content, true
}

func (s *Detailed) generate(ctx context.Context, building *entity.Building) (json.RawMessage, error) {
	rooms, err := s.rooms.ListByBuilding(ctx, building.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.equipment.ListByBuilding(ctx, building.ID)
	if err != nil {
		return nil, err
	}
	ocrRecs, err := s.ocrRepo.ListByBuilding(ctx, building.ID)
	if err != nil {
		return nil, err
	}
	// Not every building has a scanned plan; the prompt just omits it then.
	plan, err := s.ocrRepo.LatestFloorPlan(ctx, building.ID)
	if err != nil {
		plan = nil
	}

	enriched := make([]*entity.EnrichedEquipment, len(items))
	for i, it := range items {
		enriched[i] = Enrich(it)
	}
	rollup := Rollup(enriched)

	prompt, err := buildDetailedPrompt(building, rooms, enriched, rollup, ocrRecs, plan)
	if err != nil {
		return nil, err
	}

	content, err := s.completer.Complete(ctx, llm.UserPrompt(prompt))
	if err != nil {
		return nil, common.NewAppError("UPSTREAM_ERROR", "detailed analysis failed", err)
	}

	cleaned := llm.StripFences(content)
	var analysis map[string]any
	if err := json.Unmarshal([]byte(cleaned), &analysis); err != nil {
		return nil, common.NewAppError("UPSTREAM_ERROR",
			fmt.Sprintf("invalid AI JSON: %v", err), common.ErrUpstream)
	}
	for _, section := range reportSections {
		if _, ok := analysis[section]; !ok {
			return nil, common.NewAppError("UPSTREAM_ERROR",
				fmt.Sprintf("AI response is missing the %q section", section), common.ErrUpstream)
		}
	}

	analysis = llm.NormalizeAnalysis(analysis)
	normalized, err := json.Marshal(analysis)
	if err != nil {
		return nil, common.NewAppError("INTERNAL", "encode analysis", err)
	}
	if err := llm.ValidateJSONAgainstSchema(llm.BuildAnalysisJSONSchema(), normalized); err != nil {
		return nil, common.NewAppError("UPSTREAM_ERROR", "AI response failed validation", err)
	}

	full := map[string]any{}
	for k, v := range analysis {
		full[k] = v
	}
	full["equipment"] = enriched
	full["metrics"] = rollup
	full["generatedAt"] = time.Now().UTC().Format(time.RFC3339)
	contentJSON, err := json.Marshal(full)
	if err != nil {
		return nil, common.NewAppError("INTERNAL", "encode report", err)
	}

	auditRow, err := s.audits.UpsertByBuildingAndType(ctx, &repository.UpsertAuditRequest{
		BuildingID:       building.ID,
		Type:             constants.AuditDetailed,
		Status:           constants.AuditStatusCompleted,
		Findings:         mustSection(analysis, "findings"),
		Recommendations:  mustSection(analysis, "recommendations"),
		KeyMetrics:       mustSection(analysis, "key_metrics"),
		ExecutiveSummary: mustSection(analysis, "executive_summary"),
		AIRaw:            json.RawMessage(content),
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.reports.Create(ctx, building.ID, auditRow.ID, contentJSON); err != nil {
		return nil, err
	}

	if s.cacheCli != nil {
		key := cache.ReportKey(building.ID.String())
		if err := s.cacheCli.Set(ctx, key, contentJSON, s.cacheTTL); err != nil {
			s.log.Warn("audit.detailed.cache_set_failed", "building_id", building.ID, "error", err)
		}
	}
	return contentJSON, nil
}

// buildDetailedPrompt slims the graph down to what the model needs.
func buildDetailedPrompt(
	b *entity.Building,
	rooms []*entity.Room,
	equipment []*entity.EnrichedEquipment,
	rollup BuildingMetrics,
	ocrRecs []*entity.OCRRecord,
	plan *entity.OCRRecord,
) (string, error) {
	type slimRoom struct {
		Name string  `json:"name"`
		Area float64 `json:"area"`
	}
	type slimEquipment struct {
		Name             string  `json:"name"`
		Category         string  `json:"category"`
		SubType          string  `json:"subType,omitempty"`
		RatedPower       float64 `json:"ratedPowerKW"`
		Efficiency       float64 `json:"efficiency,omitempty"`
		Age              int     `json:"age,omitempty"`
		Condition        string  `json:"condition,omitempty"`
		AnnualEnergy     float64 `json:"annualEnergyKWh"`
		SavingsPotential float64 `json:"savingsPotentialKWh"`
	}

	sr := make([]slimRoom, len(rooms))
	for i, r := range rooms {
		sr[i] = slimRoom{Name: r.Name, Area: r.Area}
	}
	se := make([]slimEquipment, len(equipment))
	for i, e := range equipment {
		se[i] = slimEquipment{
			Name:             e.Name,
			Category:         e.Category,
			SubType:          e.SubType,
			RatedPower:       e.RatedPower,
			Efficiency:       e.Efficiency,
			Age:              e.Age,
			Condition:        e.Condition,
			AnnualEnergy:     e.AnnualEnergy,
			SavingsPotential: e.SavingsPotential,
		}
	}

	payload := map[string]any{
		"building": map[string]any{
			"name": b.Name,
			"type": b.Type,
			"area": b.Area,
		},
		"rooms":     sr,
		"equipment": se,
		"metrics":   rollup,
	}
	if plan != nil {
		if t := trimDocText(plan.RawText); t != "" {
			payload["floor_plan"] = t
		}
	}
	var docTexts []string
	for _, rec := range ocrRecs {
		if plan != nil && rec.ID == plan.ID {
			continue
		}
		t := trimDocText(rec.RawText)
		if t == "" {
			continue
		}
		docTexts = append(docTexts, t)
	}
	if len(docTexts) > 0 {
		payload["documents"] = docTexts
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", common.NewAppError("INTERNAL", "encode prompt payload", err)
	}

	var p strings.Builder
	p.WriteString("You are a certified energy auditor performing a detailed (ASHRAE Level II) audit. ")
	p.WriteString("Analyze the building data below and return STRICT JSON with exactly these keys: ")
	p.WriteString(`"findings" (array of strings), "recommendations" (array of {title, description, savings: {cost, energy, carbon}, cost, roi, priority}), "key_metrics" (object), "executive_summary" (string). `)
	p.WriteString("Do not wrap the JSON in markdown fences.\n\n")
	p.Write(data)
	return p.String(), nil
}

func trimDocText(raw string) string {
	t := strings.TrimSpace(raw)
	if len(t) > 2000 {
		t = t[:2000]
	}
	return t
}

func mustSection(analysis map[string]any, key string) json.RawMessage {
	raw, err := json.Marshal(analysis[key])
	if err != nil {
		return nil
	}
	return raw
}
