package candidate

import (
	"context"

	"github.com/maauso/dreamjob/internal/memstore"
)

// Repository defines the interface for candidate persistence.
type Repository interface {
	Save(ctx context.Context, c Candidate) (Candidate, error)
	// Update returns false for unknown candidates and
	// memstore.ErrVersionConflict when a concurrent update won.
	Update(ctx context.Context, c Candidate) (bool, error)
	UpdateAndGet(ctx context.Context, c Candidate) (Candidate, bool, error)
	DeleteByID(ctx context.Context, id int) bool
	FindByID(ctx context.Context, id int) (Candidate, bool)
	FindAll(ctx context.Context) []Candidate
}

var _ Repository = (*memstore.Repository[Candidate])(nil)

// NewMemoryRepository creates an empty in-memory candidate repository.
func NewMemoryRepository() *memstore.Repository[Candidate] {
	return memstore.NewRepository[Candidate]()
}
