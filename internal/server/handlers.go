package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/maauso/dreamjob/internal/candidate"
	"github.com/maauso/dreamjob/internal/city"
	"github.com/maauso/dreamjob/internal/file"
	"github.com/maauso/dreamjob/internal/memstore"
	"github.com/maauso/dreamjob/internal/vacancy"
)

// Handlers contains the HTTP handlers for the API.
type Handlers struct {
	vacancies  vacancy.Repository
	candidates candidate.Repository
	cities     *city.Catalog
	files      *file.Service
	validator  *validator.Validate
	metrics    *Metrics
	logger     *slog.Logger
}

// HandlerOption is a function that configures a Handlers instance.
type HandlerOption func(*Handlers)

// WithMetrics makes the handlers count version conflicts in m.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handlers) {
		h.metrics = m
	}
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(
	vacancies vacancy.Repository,
	candidates candidate.Repository,
	cities *city.Catalog,
	files *file.Service,
	logger *slog.Logger,
	opts ...HandlerOption,
) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handlers{
		vacancies:  vacancies,
		candidates: candidates,
		cities:     cities,
		files:      files,
		validator:  validator.New(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Health handles GET /health requests.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListVacancies handles GET /vacancies requests.
func (h *Handlers) ListVacancies(w http.ResponseWriter, r *http.Request) {
	all := h.vacancies.FindAll(r.Context())
	resp := make([]VacancyResponse, 0, len(all))
	for _, v := range all {
		resp = append(resp, newVacancyResponse(v))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateVacancy handles POST /vacancies requests.
func (h *Handlers) CreateVacancy(w http.ResponseWriter, r *http.Request) {
	var req VacancyRequest
	if !h.decode(w, r, &req) {
		return
	}

	saved, err := h.vacancies.Save(r.Context(), req.newVacancy())
	if err != nil {
		h.logger.Error("failed to save vacancy",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to save vacancy", "VACANCY_SAVE_FAILED")
		return
	}

	h.logger.Info("vacancy created",
		slog.Int("vacancy_id", saved.ID),
		slog.String("title", saved.Title),
	)
	writeJSON(w, http.StatusCreated, newVacancyResponse(saved))
}

// GetVacancy handles GET /vacancies/{id} requests.
func (h *Handlers) GetVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	v, found := h.vacancies.FindByID(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "vacancy not found", "VACANCY_NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, newVacancyResponse(v))
}

// UpdateVacancy handles PUT /vacancies/{id} requests.
func (h *Handlers) UpdateVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req VacancyRequest
	if !h.decode(w, r, &req) {
		return
	}

	v, updated, err := h.vacancies.UpdateAndGet(r.Context(), req.toVacancy(id))
	if err != nil {
		h.updateFailed(w, "vacancy", id, err)
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "vacancy not found", "VACANCY_NOT_FOUND")
		return
	}

	h.logger.Info("vacancy updated", slog.Int("vacancy_id", id))
	writeJSON(w, http.StatusOK, newVacancyResponse(v))
}

// DeleteVacancy handles DELETE /vacancies/{id} requests.
func (h *Handlers) DeleteVacancy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.vacancies.DeleteByID(r.Context(), id) {
		writeError(w, http.StatusNotFound, "vacancy not found", "VACANCY_NOT_FOUND")
		return
	}

	h.logger.Info("vacancy deleted", slog.Int("vacancy_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// ListCandidates handles GET /candidates requests.
func (h *Handlers) ListCandidates(w http.ResponseWriter, r *http.Request) {
	all := h.candidates.FindAll(r.Context())
	resp := make([]CandidateResponse, 0, len(all))
	for _, c := range all {
		resp = append(resp, newCandidateResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateCandidate handles POST /candidates requests.
func (h *Handlers) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req CandidateRequest
	if !h.decode(w, r, &req) {
		return
	}

	saved, err := h.candidates.Save(r.Context(), req.newCandidate())
	if err != nil {
		h.logger.Error("failed to save candidate",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to save candidate", "CANDIDATE_SAVE_FAILED")
		return
	}

	h.logger.Info("candidate created",
		slog.Int("candidate_id", saved.ID),
		slog.String("name", saved.Name),
	)
	writeJSON(w, http.StatusCreated, newCandidateResponse(saved))
}

// GetCandidate handles GET /candidates/{id} requests.
func (h *Handlers) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, found := h.candidates.FindByID(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "candidate not found", "CANDIDATE_NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, newCandidateResponse(c))
}

// UpdateCandidate handles PUT /candidates/{id} requests.
func (h *Handlers) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req CandidateRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, updated, err := h.candidates.UpdateAndGet(r.Context(), req.toCandidate(id))
	if err != nil {
		h.updateFailed(w, "candidate", id, err)
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "candidate not found", "CANDIDATE_NOT_FOUND")
		return
	}

	h.logger.Info("candidate updated", slog.Int("candidate_id", id))
	writeJSON(w, http.StatusOK, newCandidateResponse(c))
}

// DeleteCandidate handles DELETE /candidates/{id} requests.
func (h *Handlers) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if !h.candidates.DeleteByID(r.Context(), id) {
		writeError(w, http.StatusNotFound, "candidate not found", "CANDIDATE_NOT_FOUND")
		return
	}

	h.logger.Info("candidate deleted", slog.Int("candidate_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// ListCities handles GET /cities requests.
func (h *Handlers) ListCities(w http.ResponseWriter, r *http.Request) {
	all := h.cities.FindAll(r.Context())
	resp := make([]CityResponse, 0, len(all))
	for _, c := range all {
		resp = append(resp, CityResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCity handles GET /cities/{id} requests.
func (h *Handlers) GetCity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	c, found := h.cities.FindByID(r.Context(), id)
	if !found {
		writeError(w, http.StatusNotFound, "city not found", "CITY_NOT_FOUND")
		return
	}
	writeJSON(w, http.StatusOK, CityResponse(c))
}

// UploadFile handles POST /files requests.
func (h *Handlers) UploadFile(w http.ResponseWriter, r *http.Request) {
	var req UploadFileRequest
	if !h.decode(w, r, &req) {
		return
	}

	content, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "content_base64 is not valid base64", "VALIDATION_ERROR")
		return
	}

	f, err := h.files.Upload(r.Context(), req.Name, bytes.NewReader(content))
	if err != nil {
		h.logger.Error("failed to upload file",
			slog.String("name", req.Name),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to upload file", "FILE_UPLOAD_FAILED")
		return
	}

	h.logger.Info("file uploaded",
		slog.Int("file_id", f.ID),
		slog.Int("size", len(content)),
	)
	writeJSON(w, http.StatusCreated, newFileResponse(f))
}

// GetFile handles GET /files/{id} requests by streaming the file content.
func (h *Handlers) GetFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	f, rc, err := h.files.Open(r.Context(), id)
	if err != nil {
		if errors.Is(err, file.ErrFileNotFound) {
			writeError(w, http.StatusNotFound, "file not found", "FILE_NOT_FOUND")
			return
		}
		h.logger.Error("failed to open file",
			slog.Int("file_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to open file", "FILE_FETCH_FAILED")
		return
	}
	defer func() { _ = rc.Close() }()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Warn("failed to stream file",
			slog.Int("file_id", id),
			slog.String("error", err.Error()),
		)
	}
}

// RenameFile handles PUT /files/{id} requests.
func (h *Handlers) RenameFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RenameFileRequest
	if !h.decode(w, r, &req) {
		return
	}

	f, err := h.files.Rename(r.Context(), id, req.Name)
	if errors.Is(err, file.ErrFileNotFound) {
		writeError(w, http.StatusNotFound, "file not found", "FILE_NOT_FOUND")
		return
	}
	if err != nil {
		h.updateFailed(w, "file", id, err)
		return
	}

	h.logger.Info("file renamed",
		slog.Int("file_id", f.ID),
		slog.String("name", f.Name),
	)
	writeJSON(w, http.StatusOK, newFileResponse(f))
}

// DeleteFile handles DELETE /files/{id} requests.
func (h *Handlers) DeleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.files.Delete(r.Context(), id); err != nil {
		if errors.Is(err, file.ErrFileNotFound) {
			writeError(w, http.StatusNotFound, "file not found", "FILE_NOT_FOUND")
			return
		}
		h.logger.Error("failed to delete file",
			slog.Int("file_id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "failed to delete file", "FILE_DELETE_FAILED")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decode reads and validates a JSON body into dst, writing a 400 on failure.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("failed to decode request body",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, "invalid JSON body", "INVALID_JSON")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		h.logger.Warn("request validation failed",
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
		return false
	}
	return true
}

// updateFailed reports a failed update. A version conflict means two writers
// raced on the same entity and is surfaced as 409, never retried.
func (h *Handlers) updateFailed(w http.ResponseWriter, entity string, id int, err error) {
	if errors.Is(err, memstore.ErrVersionConflict) {
		h.metrics.conflict(entity)
		h.logger.Error("concurrent update rejected",
			slog.String("entity", entity),
			slog.Int("id", id),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusConflict, fmt.Sprintf("%s was modified concurrently", entity), "VERSION_CONFLICT")
		return
	}

	h.logger.Error("failed to update "+entity,
		slog.Int("id", id),
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, "failed to update "+entity, "UPDATE_FAILED")
}

// pathID parses the {id} path value, writing a 400 when it is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer", "INVALID_ID")
		return 0, false
	}
	return id, true
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
	}
}

// writeError writes an error response in the standard format.
func writeError(w http.ResponseWriter, status int, message, code string) {
	writeJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}
