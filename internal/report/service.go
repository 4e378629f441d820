// Package report renders the audit summary for clients: JSON summary, XLSX
// workbook, and a shareable public link.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hrunx/es2square/internal/entity"
	"github.com/hrunx/es2square/internal/repository"
	"github.com/hrunx/es2square/internal/storage"
)

// Summary is the assembled report payload.
type Summary struct {
	Building        *entity.Building        `json:"building"`
	Audit           *entity.Audit           `json:"audit"`
	Recommendations []entity.Recommendation `json:"recommendations"`
	KeyMetrics      json.RawMessage         `json:"keyMetrics,omitempty"`
	Monitoring      map[string]string       `json:"monitoring"`
	GeneratedAt     time.Time               `json:"generatedAt"`
}

// Service assembles summaries from the latest audit of the building.
type Service struct {
	buildings repository.BuildingRepository
	audits    repository.AuditRepository
	store     storage.DocumentStore
	logger    *slog.Logger
}

func NewService(
	buildings repository.BuildingRepository,
	audits repository.AuditRepository,
	store storage.DocumentStore,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		buildings: buildings,
		audits:    audits,
		store:     store,
		logger:    logger,
	}
}

// Summary returns the latest audit for the building with its normalized
// recommendations. Monitoring is a static placeholder until telemetry
// ingestion exists.
func (s *Service) Summary(ctx context.Context, buildingID uuid.UUID) (*Summary, error) {
	building, err := s.buildings.Get(ctx, buildingID)
	if err != nil {
		return nil, err
	}
	auditRow, err := s.audits.LatestByBuilding(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	var recs []entity.Recommendation
	if len(auditRow.Recommendations) > 0 {
		if err := json.Unmarshal(auditRow.Recommendations, &recs); err != nil {
			s.logger.Warn("report.summary.decode_recommendations_failed",
				"building_id", buildingID, "error", err)
		}
	}

	return &Summary{
		Building:        building,
		Audit:           auditRow,
		Recommendations: recs,
		KeyMetrics:      auditRow.KeyMetrics,
		Monitoring:      map[string]string{"status": "not_connected"},
		GeneratedAt:     time.Now().UTC(),
	}, nil
}

// ExportXLSX renders the summary as an XLSX workbook.
func (s *Service) ExportXLSX(ctx context.Context, buildingID uuid.UUID) ([]byte, error) {
	start := time.Now()
	sum, err := s.Summary(ctx, buildingID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const overview = "Overview"
	if index, _ := f.GetSheetIndex(overview); index == -1 {
		if _, err := f.NewSheet(overview); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(overview)
	f.SetActiveSheet(activeIndex)

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(overview, 1, 1, "Building")
	write(overview, 2, 1, sum.Building.Name)
	write(overview, 1, 2, "Address")
	write(overview, 2, 2, sum.Building.Address)
	write(overview, 1, 3, "Type")
	write(overview, 2, 3, sum.Building.Type)
	write(overview, 1, 4, "Floor Area (m2)")
	write(overview, 2, 4, sum.Building.Area)
	write(overview, 1, 5, "Audit Level")
	write(overview, 2, 5, string(sum.Audit.Type))
	write(overview, 1, 6, "Audit Date")
	write(overview, 2, 6, sum.Audit.UpdatedAt.Format("2006-01-02"))

	var summaryText string
	if len(sum.Audit.ExecutiveSummary) > 0 {
		_ = json.Unmarshal(sum.Audit.ExecutiveSummary, &summaryText)
	}
	write(overview, 1, 8, "Executive Summary")
	write(overview, 2, 8, summaryText)

	// flat key/value dump of whatever metrics the analysis produced
	if len(sum.KeyMetrics) > 0 {
		var metrics map[string]any
		if err := json.Unmarshal(sum.KeyMetrics, &metrics); err == nil {
			row := 10
			write(overview, 1, row, "Key Metrics")
			row++
			for k, v := range metrics {
				write(overview, 1, row, k)
				write(overview, 2, row, fmt.Sprintf("%v", v))
				row++
			}
		}
	}

	const recSheet = "Recommendations"
	if _, err := f.NewSheet(recSheet); err != nil {
		return nil, err
	}
	headers := []string{
		"Title", "Description", "Savings (USD/yr)", "Savings (kWh/yr)",
		"Savings (tCO2/yr)", "Cost (USD)", "ROI", "Priority",
	}
	for i, h := range headers {
		write(recSheet, i+1, 1, h)
	}
	row := 2
	for _, r := range sum.Recommendations {
		write(recSheet, 1, row, r.Title)
		write(recSheet, 2, row, r.Description)
		write(recSheet, 3, row, r.SavingsUSD)
		write(recSheet, 4, row, r.SavingsKWh)
		write(recSheet, 5, row, r.SavingsTCO2)
		write(recSheet, 6, row, r.Cost)
		write(recSheet, 7, row, r.ROI)
		write(recSheet, 8, row, r.Priority)
		row++
	}

	_ = f.SetColWidth(overview, "A", "A", 22)
	_ = f.SetColWidth(overview, "B", "B", 80)
	_ = f.SetColWidth(recSheet, "A", "A", 32)
	_ = f.SetColWidth(recSheet, "B", "B", 64)
	_ = f.SetColWidth(recSheet, "C", "H", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("report.export.ok",
		"building_id", buildingID.String(),
		"recommendations", len(sum.Recommendations),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// Share uploads the summary JSON to public storage and returns the URL.
func (s *Service) Share(ctx context.Context, buildingID uuid.UUID) (string, error) {
	sum, err := s.Summary(ctx, buildingID)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode summary: %w", err)
	}
	url, err := s.store.Upload(ctx, "report-"+buildingID.String()+".json", data, "application/json")
	if err != nil {
		return "", err
	}
	s.logger.Info("report.share.ok", "building_id", buildingID.String(), "url", url)
	return url, nil
}
