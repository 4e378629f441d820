package utils

import (
	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/gen/ent"
	"github.com/hrunx/es2square/internal/entity"
)

func ToBuilding(b *ent.Building) *entity.Building {
	return &entity.Building{
		ID:               b.ID,
		Name:             b.Name,
		Address:          b.Address,
		Type:             b.Type,
		Area:             b.Area,
		ConstructionYear: b.ConstructionYear,
		RoomsDeclared:    b.RoomsDeclared,
		Residents:        b.Residents,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func ToRoom(r *ent.Room) *entity.Room {
	return &entity.Room{
		ID:           r.ID,
		BuildingID:   r.BuildingID,
		Name:         r.Name,
		Area:         r.Area,
		LightingType: r.LightingType,
		NumFixtures:  r.NumFixtures,
		ACType:       r.AcType,
		ACSize:       r.AcSize,
		Windows:      r.Windows,
		RoomData:     r.RoomData,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}
}

func ToEquipment(e *ent.Equipment) *entity.Equipment {
	return &entity.Equipment{
		ID:             e.ID,
		BuildingID:     e.BuildingID,
		RoomID:         e.RoomID,
		Name:           e.Name,
		Category:       e.Category,
		SubType:        e.SubType,
		Location:       e.Location,
		RatedPower:     e.RatedPower,
		Efficiency:     e.Efficiency,
		OperatingHours: e.OperatingHours,
		OperatingDays:  e.OperatingDays,
		LoadFactor:     constants.LoadFactor(e.LoadFactor),
		Condition:      e.Condition,
		Age:            e.Age,
		ControlSystem:  e.ControlSystem,
		EnergyMetered:  e.EnergyMetered,
		IoTConnected:   e.IotConnected,
		Notes:          e.Notes,
		CreatedAt:      e.CreatedAt,
	}
}

func ToAuditFile(f *ent.AuditFile) *entity.AuditFile {
	return &entity.AuditFile{
		ID:               f.ID,
		BuildingID:       f.BuildingID,
		FileURL:          f.FileURL,
		FileName:         f.FileName,
		FileType:         f.FileType,
		FileSize:         f.FileSize,
		ProcessingStatus: constants.FileStatus(f.ProcessingStatus),
		OCRRecordID:      f.OcrRecordID,
		UploadedAt:       f.UploadedAt,
	}
}

func ToOCRRecord(o *ent.OCRRecord) *entity.OCRRecord {
	return &entity.OCRRecord{
		ID:            o.ID,
		BuildingID:    o.BuildingID,
		RawText:       o.RawText,
		ProcessedText: o.ProcessedText,
		Metadata:      o.Metadata,
		IsFloorPlan:   o.IsFloorPlan,
		CreatedAt:     o.CreatedAt,
	}
}

func ToAudit(a *ent.Audit) *entity.Audit {
	return &entity.Audit{
		ID:               a.ID,
		BuildingID:       a.BuildingID,
		Type:             constants.AuditType(a.Type),
		Status:           constants.AuditStatus(a.Status),
		Findings:         a.Findings,
		Recommendations:  a.Recommendations,
		KeyMetrics:       a.KeyMetrics,
		ExecutiveSummary: a.ExecutiveSummary,
		AIRaw:            a.AiRaw,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func ToDetailedReport(r *ent.DetailedReport) *entity.DetailedReport {
	return &entity.DetailedReport{
		ID:          r.ID,
		BuildingID:  r.BuildingID,
		AuditID:     r.AuditID,
		Content:     r.Content,
		GeneratedAt: r.GeneratedAt,
	}
}

func ToTranslation(t *ent.Translation) *entity.Translation {
	return &entity.Translation{
		ID:        t.ID,
		Key:       t.Key,
		Locale:    t.Locale,
		Value:     t.Value,
		Kind:      t.Kind,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
