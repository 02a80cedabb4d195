// Package vacancy provides the Vacancy entity of the job board and its
// repository port with an in-memory implementation.
package vacancy

import "time"

// Vacancy is a job opening published on the board.
// Values are immutable from the repository's point of view: updates install a
// new value under the same identifier.
type Vacancy struct {
	// ID is assigned by the repository on save; 0 before that.
	ID int
	// Title is the position name.
	Title string
	// Description is the free-form vacancy text.
	Description string
	// Visible marks the vacancy as published.
	Visible bool
	// CityID references the city catalog. Not validated here.
	CityID int
	// FileID references an uploaded file, 0 when none.
	FileID int
	// CreatedAt is fixed when the value is constructed.
	CreatedAt time.Time

	version int
}

// New creates a vacancy with a provisional identifier of 0.
func New(title, description string, visible bool, cityID, fileID int) Vacancy {
	return Vacancy{
		Title:       title,
		Description: description,
		Visible:     visible,
		CityID:      cityID,
		FileID:      fileID,
		CreatedAt:   time.Now(),
	}
}

// Key returns the vacancy identifier.
func (v Vacancy) Key() int { return v.ID }

// Version returns the number of successful updates applied to the vacancy.
func (v Vacancy) Version() int { return v.version }

// WithKey returns a copy carrying id and a reset version.
func (v Vacancy) WithKey(id int) Vacancy {
	v.ID = id
	v.version = 0
	return v
}

// Revise returns the successor of the stored vacancy v with the editable
// fields taken from next.
func (v Vacancy) Revise(next Vacancy) Vacancy {
	return Vacancy{
		ID:          v.ID,
		Title:       next.Title,
		Description: next.Description,
		Visible:     next.Visible,
		CityID:      next.CityID,
		FileID:      next.FileID,
		CreatedAt:   v.CreatedAt,
		version:     v.version + 1,
	}
}

// Equal reports whether both values denote the same vacancy.
// Identity is the identifier alone.
func (v Vacancy) Equal(other Vacancy) bool {
	return v.ID == other.ID
}
