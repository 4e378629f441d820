// Package server wires the HTTP API: building CRUD, the two audit levels,
// report rendering, translations, and the chat proxy.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/hrunx/es2square/internal/audit"
	"github.com/hrunx/es2square/internal/common"
	"github.com/hrunx/es2square/internal/i18n"
	"github.com/hrunx/es2square/internal/report"
	"github.com/hrunx/es2square/internal/repository"
)

type Server struct {
	buildings    repository.BuildingRepository
	intake       *audit.Intake
	detailed     *audit.Detailed
	reports      *report.Service
	translations *i18n.Service
	chat         http.Handler
	logger       *slog.Logger
}

func New(
	buildings repository.BuildingRepository,
	intake *audit.Intake,
	detailed *audit.Detailed,
	reports *report.Service,
	translations *i18n.Service,
	chat http.Handler,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		buildings:    buildings,
		intake:       intake,
		detailed:     detailed,
		reports:      reports,
		translations: translations,
		chat:         chat,
		logger:       logger,
	}
}

// Router builds the chi handler tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/buildings", s.handleCreateBuilding)
		r.Get("/buildings", s.handleListBuildings)
		r.Route("/buildings/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetBuilding)
			r.Post("/intake", s.handleIntake)
			r.Post("/audits/detailed", s.handleDetailed)
			r.Get("/report", s.handleReport)
			r.Get("/report/export", s.handleReportExport)
			r.Post("/report/share", s.handleReportShare)
		})
		r.Get("/translations/{locale}", s.handleGetTranslations)
		r.Put("/translations/{locale}", s.handlePutTranslations)
	})

	if s.chat != nil {
		r.Handle("/chat", s.chat)
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto HTTP statuses. Validation problems
// come back 400 with the offending detail; upstream-contract failures are
// 502 so the client can distinguish them from our own faults.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	var appErr *common.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
		switch appErr.Code {
		case "INVALID_INPUT":
			status = http.StatusBadRequest
		case "NOT_FOUND":
			status = http.StatusNotFound
		case "UPSTREAM_ERROR":
			status = http.StatusBadGateway
		}
	} else if errors.Is(err, common.ErrNotFound) {
		status = http.StatusNotFound
		msg = "not found"
	}

	writeJSON(w, status, map[string]string{"error": msg})
}
