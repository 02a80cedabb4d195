package file

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maauso/dreamjob/internal/memstore"
	"github.com/maauso/dreamjob/internal/storage"
)

// mockStorage implements storage.Storage for testing.
type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Put(ctx context.Context, key string, data io.Reader) (string, error) {
	args := m.Called(ctx, key, data)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *mockStorage) Remove(ctx context.Context, location string) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func newTestService(t *testing.T) (*Service, *mockStorage, *memstore.Repository[File]) {
	t.Helper()
	repo := NewMemoryRepository()
	store := &mockStorage{}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewService(repo, store, logger), store, repo
}

func TestFile_Revise(t *testing.T) {
	stored := File{Name: "cv.pdf", Path: "/files/abc_cv.pdf"}.WithKey(2)

	got := stored.Revise(File{Name: "resume.pdf", Path: "/elsewhere"})

	assert.Equal(t, 2, got.ID)
	assert.Equal(t, "resume.pdf", got.Name)
	assert.Equal(t, "/files/abc_cv.pdf", got.Path)
	assert.Equal(t, 1, got.Version())
}

func TestService_Upload(t *testing.T) {
	svc, store, repo := newTestService(t)
	ctx := context.Background()

	store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "_photo.png") && !strings.Contains(key, "/")
	}), mock.Anything).Return("/files/x_photo.png", nil)

	f, err := svc.Upload(ctx, "photo.png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	assert.Equal(t, 1, f.ID)
	assert.Equal(t, "photo.png", f.Name)
	assert.Equal(t, "/files/x_photo.png", f.Path)

	stored, ok := repo.FindByID(ctx, f.ID)
	require.True(t, ok)
	assert.Equal(t, f, stored)
	store.AssertExpectations(t)
}

func TestService_Upload_StorageError(t *testing.T) {
	svc, store, repo := newTestService(t)
	ctx := context.Background()
	store.On("Put", ctx, mock.Anything, mock.Anything).Return("", errors.New("disk full"))

	_, err := svc.Upload(ctx, "a.txt", strings.NewReader("a"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 0, repo.Count(ctx))
}

func TestService_Open(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	store.On("Put", ctx, mock.Anything, mock.Anything).Return("/files/a.txt", nil)
	store.On("Open", ctx, "/files/a.txt").Return(io.NopCloser(strings.NewReader("hello")), nil)

	f, err := svc.Upload(ctx, "a.txt", strings.NewReader("hello"))
	require.NoError(t, err)

	got, rc, err := svc.Open(ctx, f.ID)
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "a.txt", got.Name)

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestService_Open_NotFound(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	_, _, err := svc.Open(ctx, 99)
	assert.ErrorIs(t, err, ErrFileNotFound)

	store.On("Put", ctx, mock.Anything, mock.Anything).Return("/files/gone", nil)
	store.On("Open", ctx, "/files/gone").Return(nil, storage.ErrBlobNotFound)
	f, err := svc.Upload(ctx, "gone", strings.NewReader("x"))
	require.NoError(t, err)

	_, _, err = svc.Open(ctx, f.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestService_Rename(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	store.On("Put", ctx, mock.Anything, mock.Anything).Return("/files/a.txt", nil)

	f, err := svc.Upload(ctx, "a.txt", strings.NewReader("x"))
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, f.ID, "b.txt")
	require.NoError(t, err)
	assert.Equal(t, "b.txt", renamed.Name)
	assert.Equal(t, "/files/a.txt", renamed.Path)
	assert.Equal(t, 1, renamed.Version())

	_, err = svc.Rename(ctx, 404, "c.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestService_Delete(t *testing.T) {
	svc, store, repo := newTestService(t)
	ctx := context.Background()
	store.On("Put", ctx, mock.Anything, mock.Anything).Return("/files/a.txt", nil)
	store.On("Remove", ctx, "/files/a.txt").Return(nil).Once()

	f, err := svc.Upload(ctx, "a.txt", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, f.ID))
	_, ok := repo.FindByID(ctx, f.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, svc.Delete(ctx, f.ID), ErrFileNotFound)
	store.AssertExpectations(t)
}
