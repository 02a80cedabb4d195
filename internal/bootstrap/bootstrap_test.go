package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maauso/dreamjob/internal/config"
	"github.com/maauso/dreamjob/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewDependencies_Seeded(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{SeedData: true, FilesDir: t.TempDir()}

	deps, err := NewDependencies(ctx, cfg, testLogger())
	require.NoError(t, err)

	assert.Len(t, deps.Vacancies.FindAll(ctx), 6)
	assert.Len(t, deps.Candidates.FindAll(ctx), 6)
	assert.NotNil(t, deps.Files)
	assert.Len(t, deps.Cities.FindAll(ctx), 3)
	assert.NotNil(t, deps.Metrics)
}

func TestNewDependencies_Empty(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{FilesDir: t.TempDir()}

	deps, err := NewDependencies(ctx, cfg, testLogger())
	require.NoError(t, err)

	assert.Empty(t, deps.Vacancies.FindAll(ctx))
	assert.Empty(t, deps.Candidates.FindAll(ctx))
}

func TestInitStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("local by default", func(t *testing.T) {
		dir := t.TempDir()
		store, err := initStorage(ctx, &config.Config{FilesDir: dir}, testLogger())
		require.NoError(t, err)

		local, ok := store.(*storage.LocalStorage)
		require.True(t, ok)
		assert.Equal(t, dir, local.Dir())
	})

	t.Run("S3 when configured", func(t *testing.T) {
		cfg := &config.Config{
			S3Bucket:   "bucket",
			S3Region:   "us-east-1",
			S3Endpoint: "http://localhost:4566",
		}
		store, err := initStorage(ctx, cfg, testLogger())
		require.NoError(t, err)

		_, ok := store.(*storage.S3Storage)
		assert.True(t, ok)
	})
}
