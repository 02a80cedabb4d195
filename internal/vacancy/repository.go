package vacancy

import (
	"context"

	"github.com/maauso/dreamjob/internal/memstore"
)

// Repository defines the interface for vacancy persistence.
type Repository interface {
	// Save stores a new vacancy and returns it with its assigned ID.
	Save(ctx context.Context, v Vacancy) (Vacancy, error)

	// Update replaces the editable fields of an existing vacancy.
	// Returns false if the vacancy does not exist and
	// memstore.ErrVersionConflict if a concurrent update won.
	Update(ctx context.Context, v Vacancy) (bool, error)

	// UpdateAndGet is Update that also returns the vacancy it installed.
	UpdateAndGet(ctx context.Context, v Vacancy) (Vacancy, bool, error)

	// DeleteByID removes a vacancy. Returns false if it did not exist.
	DeleteByID(ctx context.Context, id int) bool

	// FindByID retrieves a vacancy by its identifier.
	FindByID(ctx context.Context, id int) (Vacancy, bool)

	// FindAll returns all vacancies ordered by ID.
	FindAll(ctx context.Context) []Vacancy
}

// Compile-time check that the in-memory repository implements Repository.
var _ Repository = (*memstore.Repository[Vacancy])(nil)

// NewMemoryRepository creates an empty in-memory vacancy repository.
func NewMemoryRepository() *memstore.Repository[Vacancy] {
	return memstore.NewRepository[Vacancy]()
}
