// Package candidate provides the Candidate entity of the job board and its
// repository port with an in-memory implementation.
package candidate

import "time"

// Candidate is a job seeker's resume published on the board.
type Candidate struct {
	ID          int
	Name        string
	Description string
	Visible     bool
	CityID      int
	FileID      int
	CreatedAt   time.Time

	version int
}

// New creates a candidate with a provisional identifier of 0.
func New(name, description string, visible bool, cityID, fileID int) Candidate {
	return Candidate{
		Name:        name,
		Description: description,
		Visible:     visible,
		CityID:      cityID,
		FileID:      fileID,
		CreatedAt:   time.Now(),
	}
}

// Key returns the candidate identifier.
func (c Candidate) Key() int { return c.ID }

// Version returns the number of successful updates applied to the candidate.
func (c Candidate) Version() int { return c.version }

// WithKey returns a copy carrying id and a reset version.
func (c Candidate) WithKey(id int) Candidate {
	c.ID = id
	c.version = 0
	return c
}

// Revise keeps identity and creation time of the stored candidate c and takes
// everything else from next.
func (c Candidate) Revise(next Candidate) Candidate {
	return Candidate{
		ID:          c.ID,
		Name:        next.Name,
		Description: next.Description,
		Visible:     next.Visible,
		CityID:      next.CityID,
		FileID:      next.FileID,
		CreatedAt:   c.CreatedAt,
		version:     c.version + 1,
	}
}

// Equal reports whether both values have the same identifier.
func (c Candidate) Equal(other Candidate) bool {
	return c.ID == other.ID
}
