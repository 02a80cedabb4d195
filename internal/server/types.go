// Package server provides the HTTP server for the job board API.
// It includes handlers, middleware, routes, and DTOs separated from domain types.
package server

import (
	"time"

	"github.com/maauso/dreamjob/internal/candidate"
	"github.com/maauso/dreamjob/internal/file"
	"github.com/maauso/dreamjob/internal/vacancy"
)

// VacancyRequest is the HTTP request body for creating or updating a vacancy.
type VacancyRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"max=4000"`
	Visible     bool   `json:"visible"`
	CityID      int    `json:"city_id" validate:"min=0"`
	FileID      int    `json:"file_id" validate:"min=0"`
}

// VacancyResponse is the HTTP representation of a vacancy.
type VacancyResponse struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Visible     bool      `json:"visible"`
	CityID      int       `json:"city_id"`
	FileID      int       `json:"file_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CandidateRequest is the HTTP request body for creating or updating a candidate.
type CandidateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=4000"`
	Visible     bool   `json:"visible"`
	CityID      int    `json:"city_id" validate:"min=0"`
	FileID      int    `json:"file_id" validate:"min=0"`
}

// CandidateResponse is the HTTP representation of a candidate.
type CandidateResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Visible     bool      `json:"visible"`
	CityID      int       `json:"city_id"`
	FileID      int       `json:"file_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadFileRequest is the HTTP request body for uploading a file.
type UploadFileRequest struct {
	// Name is the original file name.
	Name string `json:"name" validate:"required,max=255"`
	// ContentBase64 is the base64-encoded file content.
	ContentBase64 string `json:"content_base64" validate:"required,base64"`
}

// RenameFileRequest is the HTTP request body for renaming a file.
type RenameFileRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// FileResponse is the HTTP representation of an uploaded file.
type FileResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CityResponse is the HTTP representation of a catalog city.
type CityResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`
	// Code is the error code for programmatic handling.
	Code string `json:"code"`
}

// HealthResponse is the HTTP response for the health check endpoint.
type HealthResponse struct {
	// Status is the health status of the service.
	Status string `json:"status"`
}

func (r VacancyRequest) newVacancy() vacancy.Vacancy {
	return vacancy.New(r.Title, r.Description, r.Visible, r.CityID, r.FileID)
}

// toVacancy carries only the editable fields; the repository keeps the stored
// creation date.
func (r VacancyRequest) toVacancy(id int) vacancy.Vacancy {
	return vacancy.Vacancy{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Visible:     r.Visible,
		CityID:      r.CityID,
		FileID:      r.FileID,
	}
}

func newVacancyResponse(v vacancy.Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Visible:     v.Visible,
		CityID:      v.CityID,
		FileID:      v.FileID,
		CreatedAt:   v.CreatedAt,
	}
}

func (r CandidateRequest) newCandidate() candidate.Candidate {
	return candidate.New(r.Name, r.Description, r.Visible, r.CityID, r.FileID)
}

func (r CandidateRequest) toCandidate(id int) candidate.Candidate {
	return candidate.Candidate{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Visible:     r.Visible,
		CityID:      r.CityID,
		FileID:      r.FileID,
	}
}

func newCandidateResponse(c candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Visible:     c.Visible,
		CityID:      c.CityID,
		FileID:      c.FileID,
		CreatedAt:   c.CreatedAt,
	}
}

func newFileResponse(f file.File) FileResponse {
	return FileResponse{ID: f.ID, Name: f.Name}
}
