package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/staffing-intel/internal/domain"
	"github.com/honeycarbs/staffing-intel/internal/domain/intel"
	"github.com/honeycarbs/staffing-intel/pkg/logging"
)

// Handler serves the intelligence report and the legacy search routes
type Handler struct {
	svc      intel.Service
	logger   *logging.Logger
	validate *validator.Validate
	clock    func() time.Time
}

// NewHandler builds the HTTP handler set over svc
func NewHandler(svc intel.Service, logger *logging.Logger) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger.Named("api"),
		validate: validator.New(),
		clock:    time.Now,
	}
}

// Register mounts every route on mux
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /intelligence", h.Intelligence)
	mux.HandleFunc("GET /intelligence/health", h.Health)
	mux.HandleFunc("GET /jobs", h.Jobs)
	mux.HandleFunc("GET /news", h.News)
	mux.HandleFunc("GET /search", h.Search)
}

// Intelligence handles GET /intelligence?company=&location=
func (h *Handler) Intelligence(w http.ResponseWriter, r *http.Request) {
	q := domain.QueryContext{
		Company:  strings.TrimSpace(r.URL.Query().Get("company")),
		Location: strings.TrimSpace(r.URL.Query().Get("location")),
	}
	if err := h.validate.Struct(q); err != nil {
		writeUsageError(w)
		return
	}

	report, err := h.svc.Report(r.Context(), q)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusBadRequest {
			writeUsageError(w)
			return
		}

		h.logger.Error("intelligence gathering failed",
			"request_id", RequestIDFrom(r.Context()),
			"company", q.Company,
			"err", err,
		)

		var loc *string
		if q.Location != "" {
			loc = &q.Location
		}
		WriteJSON(w, status, intelligenceErrorResponse{
			Success:  false,
			Error:    "Failed to gather intelligence",
			Details:  err.Error(),
			Company:  q.Company,
			Location: loc,
		})
		return
	}

	WriteJSON(w, http.StatusOK, reportResponse{Success: true, Data: report})
}

// Health handles GET /intelligence/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Service:   serviceName,
		Status:    "operational",
		Timestamp: h.clock().UTC().Format(time.RFC3339Nano),
		Endpoints: map[string]string{
			"main":   "GET /intelligence?company=<name>&location=<optional>",
			"health": "GET /intelligence/health",
		},
	})
}

// Jobs handles GET /jobs?company=&city=&industry=
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.SearchJobs(r.Context(), legacyQuery(r))
	if err != nil {
		h.writeLegacyError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resultsResponse{Success: true, Results: jobs})
}

// News handles GET /news?company=&city=&industry=&signals=
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	news, err := h.svc.SearchNews(r.Context(), legacyQuery(r))
	if err != nil {
		h.writeLegacyError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resultsResponse{Success: true, Results: news})
}

// Search handles GET /search?company=&city=&industry=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.SearchWeb(r.Context(), legacyQuery(r))
	if err != nil {
		h.writeLegacyError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, resultsResponse{Success: true, Results: results})
}

func (h *Handler) writeLegacyError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Warn("legacy search failed",
		"request_id", RequestIDFrom(r.Context()),
		"path", r.URL.Path,
		"err", err,
	)
	WriteJSON(w, http.StatusInternalServerError, errorResponse{Success: false, Error: err.Error()})
}

func writeUsageError(w http.ResponseWriter) {
	WriteJSON(w, http.StatusBadRequest, usageErrorResponse{
		Success: false,
		Error:   "Company name is required",
		Usage:   usageHint,
	})
}

func legacyQuery(r *http.Request) intel.LegacyQuery {
	values := r.URL.Query()

	var signals []string
	for _, key := range []string{"signals", "signals[]"} {
		for _, s := range values[key] {
			if s = strings.TrimSpace(s); s != "" {
				signals = append(signals, s)
			}
		}
	}

	return intel.LegacyQuery{
		Company:  values.Get("company"),
		City:     values.Get("city"),
		Industry: values.Get("industry"),
		Signals:  signals,
	}
}
