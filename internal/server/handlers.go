package server

import (
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hrunx/es2square/constants"
	"github.com/hrunx/es2square/internal/audit"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/repository"
)

type createBuildingDTO struct {
	Name             string  `json:"name"`
	Address          string  `json:"address"`
	Type             string  `json:"type"`
	Area             float64 `json:"area"`
	ConstructionYear *int    `json:"constructionYear,omitempty"`
	RoomsDeclared    *int    `json:"roomsDeclared,omitempty"`
	Residents        *int    `json:"residents,omitempty"`
}

func (s *Server) handleCreateBuilding(w http.ResponseWriter, r *http.Request) {
	var dto createBuildingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid request body", err))
		return
	}
	if dto.Name == "" || dto.Address == "" || dto.Area <= 0 {
		writeError(w, common.NewAppError("INVALID_INPUT",
			"name, address, and a positive area are required", common.ErrInvalidInput))
		return
	}
	if !constants.ValidBuildingType(dto.Type) {
		writeError(w, common.NewAppError("INVALID_INPUT",
			"building type must be residential, commercial, industrial, or educational",
			common.ErrInvalidInput))
		return
	}

	b, err := s.buildings.Create(r.Context(), &repository.CreateBuildingRequest{
		Name:             dto.Name,
		Address:          dto.Address,
		Type:             dto.Type,
		Area:             dto.Area,
		ConstructionYear: dto.ConstructionYear,
		RoomsDeclared:    dto.RoomsDeclared,
		Residents:        dto.Residents,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleListBuildings(w http.ResponseWriter, r *http.Request) {
	bs, err := s.buildings.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

func (s *Server) handleGetBuilding(w http.ResponseWriter, r *http.Request) {
	id, err := buildingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := s.buildings.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	id, err := buildingID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(constants.MaxUploadBytes * 4); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid multipart form", err))
		return
	}

	var bills []audit.Upload
	for _, fh := range r.MultipartForm.File["bills"] {
		up, err := readUpload(fh)
		if err != nil {
			writeError(w, err)
			return
		}
		bills = append(bills, up)
	}

	var plan *audit.Upload
	if fhs := r.MultipartForm.File["floor_plan"]; len(fhs) > 0 {
		if len(fhs) > 1 {
			writeError(w, common.NewAppError("INVALID_INPUT", "exactly one floor plan is required", nil))
			return
		}
		up, err := readUpload(fhs[0])
		if err != nil {
			writeError(w, err)
			return
		}
		plan = &up
	}

	res, err := s.intake.Run(r.Context(), &audit.IntakeRequest{
		BuildingID: id,
		Bills:      bills,
		FloorPlan:  plan,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type equipmentDTO struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	SubType        string   `json:"subType,omitempty"`
	Location       string   `json:"location,omitempty"`
	RatedPower     float64  `json:"ratedPower"`
	Efficiency     float64  `json:"efficiency,omitempty"`
	OperatingHours float64  `json:"operatingHours,omitempty"`
	OperatingDays  float64  `json:"operatingDays,omitempty"`
	LoadFactor     string   `json:"loadFactor,omitempty"`
	Condition      string   `json:"condition,omitempty"`
	Age            int      `json:"age,omitempty"`
	ControlSystem  string   `json:"controlSystem,omitempty"`
	EnergyMetered  bool     `json:"energyMetered,omitempty"`
	IoTConnected   bool     `json:"iotConnected,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

type detailedDTO struct {
	Equipment []equipmentDTO `json:"equipment"`
	Force     bool           `json:"force,omitempty"`
}

func (s *Server) handleDetailed(w http.ResponseWriter, r *http.Request) {
	id, err := buildingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var dto detailedDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid request body", err))
		return
	}

	reqs := make([]*repository.CreateEquipmentRequest, 0, len(dto.Equipment))
	for _, e := range dto.Equipment {
		if e.Name == "" || e.Category == "" {
			writeError(w, common.NewAppError("INVALID_INPUT",
				"every equipment item needs a name and category", common.ErrInvalidInput))
			return
		}
		reqs = append(reqs, &repository.CreateEquipmentRequest{
			BuildingID:     id,
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
			IoTConnected:   e.IoTConnected,
			Notes:          e.Notes,
		})
	}

	res, err := s.detailed.Run(r.Context(), &audit.DetailedRequest{
		BuildingID: id,
		Equipment:  reqs,
		Force:      dto.Force,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	id, err := buildingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	sum, err := s.reports.Summary(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleReportExport(w http.ResponseWriter, r *http.Request) {
	id, err := buildingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	data, err := s.reports.ExportXLSX(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="energy-audit-report.xlsx"`)
	_, _ = w.Write(data)
}

func (s *Server) handleReportShare(w http.ResponseWriter, r *http.Request) {
	id, err := buildingID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	url, err := s.reports.Share(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

func (s *Server) handleGetTranslations(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	if s.translations.Locale() != locale {
		if err := s.translations.Load(r.Context(), locale); err != nil {
			writeError(w, err)
			return
		}
	}
	table, err := s.translations.All()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (s *Server) handlePutTranslations(w http.ResponseWriter, r *http.Request) {
	locale := chi.URLParam(r, "locale")
	var entries map[string]string
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		writeError(w, common.NewAppError("INVALID_INPUT", "invalid request body", err))
		return
	}
	for key, value := range entries {
		if err := s.translations.Store(r.Context(), key, locale, value, "ui"); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]int{"stored": len(entries)})
}

func buildingID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, common.NewAppError("INVALID_INPUT", "invalid building id", err)
	}
	return id, nil
}

func readUpload(fh *multipart.FileHeader) (audit.Upload, error) {
	f, err := fh.Open()
	if err != nil {
		return audit.Upload{}, common.NewAppError("INVALID_INPUT", "unreadable upload "+fh.Filename, err)
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(f, constants.MaxUploadBytes+1))
	if err != nil {
		return audit.Upload{}, common.NewAppError("INVALID_INPUT", "unreadable upload "+fh.Filename, err)
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	if !constants.MIMEAllowed(ct) {
		return audit.Upload{}, common.NewAppError("INVALID_INPUT",
			"file "+fh.Filename+" has unsupported type "+ct+"; allowed: "+strings.Join(constants.AllowedMIMEList(), ", "),
			common.ErrInvalidInput)
	}

	return audit.Upload{
		Name:        fh.Filename,
		ContentType: ct,
		Data:        data,
	}, nil
}
