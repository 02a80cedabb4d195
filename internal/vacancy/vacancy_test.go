package vacancy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	before := time.Now()
	v := New("Go Developer", "desc", true, 2, 5)

	assert.Equal(t, 0, v.ID)
	assert.Equal(t, "Go Developer", v.Title)
	assert.Equal(t, "desc", v.Description)
	assert.True(t, v.Visible)
	assert.Equal(t, 2, v.CityID)
	assert.Equal(t, 5, v.FileID)
	assert.Equal(t, 0, v.Version())
	assert.False(t, v.CreatedAt.Before(before))
}

func TestVacancy_WithKey(t *testing.T) {
	v := New("a", "b", false, 1, 0)
	v.version = 3

	keyed := v.WithKey(7)
	assert.Equal(t, 7, keyed.Key())
	assert.Equal(t, 0, keyed.Version())
	assert.Equal(t, 0, v.ID, "receiver must not change")
}

func TestVacancy_Revise(t *testing.T) {
	stored := New("old", "old desc", false, 1, 0).WithKey(4)
	stored.version = 2

	next := New("new", "new desc", true, 3, 9)
	next.ID = 4
	next.version = 100

	got := stored.Revise(next)
	assert.Equal(t, 4, got.ID)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "new desc", got.Description)
	assert.True(t, got.Visible)
	assert.Equal(t, 3, got.CityID)
	assert.Equal(t, 9, got.FileID)
	assert.Equal(t, stored.CreatedAt, got.CreatedAt)
	assert.Equal(t, 3, got.Version())
	assert.Equal(t, "old", stored.Title, "stored value must not change")
}

func TestVacancy_Equal(t *testing.T) {
	a := New("a", "", false, 0, 0).WithKey(1)
	b := New("b", "other", true, 2, 3).WithKey(1)
	c := New("a", "", false, 0, 0).WithKey(2)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
