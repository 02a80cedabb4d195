package memstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/maauso/dreamjob/internal/memstore/id"
)

var (
	// ErrVersionConflict is returned by Update when another writer replaced the
	// same stored version first. It signals a usage error and must not be retried.
	ErrVersionConflict = errors.New("versions are not equal")

	// ErrDuplicateID is returned by Save when the allocated identifier is taken.
	ErrDuplicateID = errors.New("duplicate entity id")
)

// Entity is the contract an entity value must satisfy to live in a Repository.
// Implementations are value types; every method returns a new value instead of
// mutating the receiver.
type Entity[E any] interface {
	// Key returns the entity identifier, 0 before the entity is saved.
	Key() int
	// WithKey returns a copy with the identifier set and the version reset to 0.
	WithKey(id int) E
	// Version returns the optimistic-concurrency version.
	Version() int
	// Revise returns the successor of a stored entity: identity and creation
	// time of the receiver, mutable fields of next, version incremented by one.
	Revise(next E) E
}

// Repository is a thread-safe in-memory repository with optimistic concurrency
// control. Each instance owns its identifier sequence and entries, so
// independent repositories can coexist in one process.
type Repository[E Entity[E]] struct {
	seq     id.Sequence
	entries *Store[E]
}

// NewRepository creates an empty Repository.
func NewRepository[E Entity[E]]() *Repository[E] {
	return &Repository[E]{
		entries: NewStore[E](),
	}
}

// Save assigns a fresh identifier to e and stores it.
// The returned entity carries the assigned identifier.
func (r *Repository[E]) Save(_ context.Context, e E) (E, error) {
	saved := e.WithKey(r.seq.Next())
	if !r.entries.Insert(saved.Key(), saved) {
		var zero E
		return zero, fmt.Errorf("%w: %d", ErrDuplicateID, saved.Key())
	}
	return saved, nil
}

// Update replaces the mutable fields of the stored entity with those of e.
// The version is taken from the stored copy, never from e.
// Returns false without error when no entity with e's identifier exists and
// ErrVersionConflict when a concurrent update won the race for the same version.
func (r *Repository[E]) Update(ctx context.Context, e E) (bool, error) {
	_, ok, err := r.UpdateAndGet(ctx, e)
	return ok, err
}

// UpdateAndGet behaves like Update and also returns the value it installed.
// The returned entity is the one this call wrote, even if another writer has
// replaced it since.
func (r *Repository[E]) UpdateAndGet(_ context.Context, e E) (E, bool, error) {
	var observed int
	var installed E
	ok, err := r.entries.Replace(e.Key(), func(current E) (E, error) {
		observed = current.Version()
		installed = current.Revise(e)
		return installed, nil
	})
	if errors.Is(err, ErrChanged) {
		var zero E
		return zero, false, fmt.Errorf("%w: id %d at version %d", ErrVersionConflict, e.Key(), observed)
	}
	if err != nil || !ok {
		var zero E
		return zero, false, err
	}
	return installed, true, nil
}

// DeleteByID removes the entity permanently. Reports whether it existed.
func (r *Repository[E]) DeleteByID(_ context.Context, id int) bool {
	return r.entries.Remove(id)
}

// FindByID returns the entity with the given identifier.
func (r *Repository[E]) FindByID(_ context.Context, id int) (E, bool) {
	return r.entries.Get(id)
}

// FindAll returns all stored entities ordered by identifier.
func (r *Repository[E]) FindAll(_ context.Context) []E {
	return r.entries.Snapshot()
}

// Count returns the number of stored entities.
func (r *Repository[E]) Count(_ context.Context) int {
	return r.entries.Len()
}
