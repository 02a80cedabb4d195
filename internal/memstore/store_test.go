package memstore

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStore_Insert(t *testing.T) {
	s := NewStore[string]()

	assert.True(t, s.Insert(1, "first"))
	assert.False(t, s.Insert(1, "second"), "insert must not clobber")

	got, ok := s.Get(1)
	require.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestStore_Get_Absent(t *testing.T) {
	s := NewStore[string]()

	got, ok := s.Get(42)
	assert.False(t, ok)
	assert.Empty(t, got)
}

func TestStore_Replace(t *testing.T) {
	t.Run("absent key", func(t *testing.T) {
		s := NewStore[int]()
		called := false

		ok, err := s.Replace(1, func(v int) (int, error) {
			called = true
			return v + 1, nil
		})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, called, "transform must not run for absent key")
		assert.Equal(t, 0, s.Len())
	})

	t.Run("present key", func(t *testing.T) {
		s := NewStore[int]()
		s.Insert(1, 10)

		ok, err := s.Replace(1, func(v int) (int, error) { return v + 1, nil })
		require.NoError(t, err)
		assert.True(t, ok)

		got, _ := s.Get(1)
		assert.Equal(t, 11, got)
	})

	t.Run("transform error leaves entry untouched", func(t *testing.T) {
		s := NewStore[int]()
		s.Insert(1, 10)
		boom := errors.New("boom")

		ok, err := s.Replace(1, func(int) (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
		assert.False(t, ok)

		got, _ := s.Get(1)
		assert.Equal(t, 10, got)
	})

	t.Run("concurrent replace returns ErrChanged", func(t *testing.T) {
		s := NewStore[int]()
		s.Insert(1, 10)

		ok, err := s.Replace(1, func(v int) (int, error) {
			inner, innerErr := s.Replace(1, func(v int) (int, error) { return v + 100, nil })
			require.NoError(t, innerErr)
			require.True(t, inner)
			return v + 1, nil
		})
		assert.ErrorIs(t, err, ErrChanged)
		assert.False(t, ok)

		got, _ := s.Get(1)
		assert.Equal(t, 110, got, "winner's value must survive")
	})

	t.Run("concurrent remove reports absent", func(t *testing.T) {
		s := NewStore[int]()
		s.Insert(1, 10)

		ok, err := s.Replace(1, func(v int) (int, error) {
			require.True(t, s.Remove(1))
			return v + 1, nil
		})
		require.NoError(t, err)
		assert.False(t, ok)

		_, found := s.Get(1)
		assert.False(t, found, "removed entry must not be resurrected")
	})
}

func TestStore_Remove(t *testing.T) {
	s := NewStore[string]()
	s.Insert(1, "a")

	assert.True(t, s.Remove(1))
	assert.False(t, s.Remove(1))
	_, ok := s.Get(1)
	assert.False(t, ok)
}

func TestStore_Snapshot(t *testing.T) {
	s := NewStore[string]()
	assert.Empty(t, s.Snapshot())

	s.Insert(3, "c")
	s.Insert(1, "a")
	s.Insert(2, "b")

	assert.Equal(t, []string{"a", "b", "c"}, s.Snapshot())
	assert.Equal(t, 3, s.Len())
}

func TestStore_DisjointKeysConcurrently(t *testing.T) {
	s := NewStore[int]()
	const keys, rounds = 16, 200
	for k := 1; k <= keys; k++ {
		s.Insert(k, 0)
	}

	var g errgroup.Group
	for k := 1; k <= keys; k++ {
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				if _, err := s.Replace(k, func(v int) (int, error) { return v + 1, nil }); err != nil {
					return err
				}
			}
			return nil
		})
	}
	g.Go(func() error {
		for i := 0; i < rounds; i++ {
			_ = s.Snapshot()
		}
		return nil
	})
	require.NoError(t, g.Wait(), "a single writer per key must never conflict")

	for k := 1; k <= keys; k++ {
		got, ok := s.Get(k)
		require.True(t, ok)
		assert.Equal(t, rounds, got)
	}
}
