package city

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_FindAll(t *testing.T) {
	catalog := NewCatalog(City{ID: 3, Name: "C"}, City{ID: 1, Name: "A"}, City{ID: 2, Name: "B"})

	got := catalog.FindAll(context.Background())

	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestCatalog_FindByID(t *testing.T) {
	catalog := NewCatalog(Demo()...)
	ctx := context.Background()

	c, ok := catalog.FindByID(ctx, 2)
	require.True(t, ok)
	assert.Equal(t, "Санкт-Петербург", c.Name)

	_, ok = catalog.FindByID(ctx, 99)
	assert.False(t, ok)
}

func TestCatalog_DuplicateIDKeepsFirst(t *testing.T) {
	catalog := NewCatalog(City{ID: 1, Name: "first"}, City{ID: 1, Name: "second"})

	c, ok := catalog.FindByID(context.Background(), 1)
	require.True(t, ok)
	assert.Equal(t, "first", c.Name)
	assert.Len(t, catalog.FindAll(context.Background()), 1)
}

func TestDemo_CoversSeededCityIDs(t *testing.T) {
	catalog := NewCatalog(Demo()...)
	for id := 1; id <= 3; id++ {
		_, ok := catalog.FindByID(context.Background(), id)
		assert.True(t, ok, "city %d", id)
	}
}

func TestCatalog_Empty(t *testing.T) {
	assert.Empty(t, NewCatalog().FindAll(context.Background()))
}
