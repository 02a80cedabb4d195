// Package file manages files attached to vacancies and candidates.
// Metadata lives in an in-memory repository, content in a storage.Storage.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/maauso/dreamjob/internal/memstore"
	"github.com/maauso/dreamjob/internal/storage"
)

// ErrFileNotFound is returned when a file cannot be found by ID.
var ErrFileNotFound = errors.New("file not found")

// File describes uploaded content.
type File struct {
	ID   int
	Name string
	// Path is the storage location of the content.
	Path string

	version int
}

func (f File) Key() int     { return f.ID }
func (f File) Version() int { return f.version }

func (f File) WithKey(id int) File {
	f.ID = id
	f.version = 0
	return f
}

// Revise renames the stored file f. The content location never changes.
func (f File) Revise(next File) File {
	return File{ID: f.ID, Name: next.Name, Path: f.Path, version: f.version + 1}
}

// Repository defines the interface for file metadata persistence.
type Repository interface {
	Save(ctx context.Context, f File) (File, error)
	Update(ctx context.Context, f File) (bool, error)
	UpdateAndGet(ctx context.Context, f File) (File, bool, error)
	DeleteByID(ctx context.Context, id int) bool
	FindByID(ctx context.Context, id int) (File, bool)
}

var _ Repository = (*memstore.Repository[File])(nil)

// NewMemoryRepository creates an empty in-memory file repository.
func NewMemoryRepository() *memstore.Repository[File] {
	return memstore.NewRepository[File]()
}

// Service stores and retrieves uploaded files.
type Service struct {
	repo   Repository
	store  storage.Storage
	logger *slog.Logger
}

// NewService creates a new Service.
func NewService(repo Repository, store storage.Storage, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		store:  store,
		logger: logger,
	}
}

// Upload writes content to storage and records it under a new ID.
func (s *Service) Upload(ctx context.Context, name string, content io.Reader) (File, error) {
	key := uuid.NewString() + "_" + filepath.Base(name)
	path, err := s.store.Put(ctx, key, content)
	if err != nil {
		return File{}, fmt.Errorf("store content: %w", err)
	}

	saved, err := s.repo.Save(ctx, File{Name: name, Path: path})
	if err != nil {
		if rmErr := s.store.Remove(ctx, path); rmErr != nil {
			s.logger.Warn("failed to remove orphaned content",
				slog.String("path", path),
				slog.String("error", rmErr.Error()),
			)
		}
		return File{}, fmt.Errorf("save file: %w", err)
	}

	s.logger.Debug("file uploaded",
		slog.Int("file_id", saved.ID),
		slog.String("name", saved.Name),
	)
	return saved, nil
}

// Open returns the file metadata and a reader for its content.
// The caller must close the reader.
func (s *Service) Open(ctx context.Context, id int) (File, io.ReadCloser, error) {
	f, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return File{}, nil, ErrFileNotFound
	}

	rc, err := s.store.Open(ctx, f.Path)
	if errors.Is(err, storage.ErrBlobNotFound) {
		return File{}, nil, ErrFileNotFound
	}
	if err != nil {
		return File{}, nil, fmt.Errorf("open content: %w", err)
	}
	return f, rc, nil
}

// Rename changes the display name of a file.
func (s *Service) Rename(ctx context.Context, id int, name string) (File, error) {
	f, ok, err := s.repo.UpdateAndGet(ctx, File{ID: id, Name: name})
	if err != nil {
		return File{}, fmt.Errorf("rename file %d: %w", id, err)
	}
	if !ok {
		return File{}, ErrFileNotFound
	}

	s.logger.Debug("file renamed",
		slog.Int("file_id", f.ID),
		slog.String("name", f.Name),
	)
	return f, nil
}

// Delete forgets the file and removes its content.
func (s *Service) Delete(ctx context.Context, id int) error {
	f, ok := s.repo.FindByID(ctx, id)
	if !ok || !s.repo.DeleteByID(ctx, id) {
		return ErrFileNotFound
	}

	if err := s.store.Remove(ctx, f.Path); err != nil {
		return fmt.Errorf("remove content: %w", err)
	}
	return nil
}
