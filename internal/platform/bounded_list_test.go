package platform

import (
	"testing"

	platformerror "circular-list/internal/platform/error"

	"github.com/stretchr/testify/require"
)

func TestBoundedList_EvictsOldest(t *testing.T) {
	b := NewBoundedList[int](3)
	require.False(t, b.Put(1))
	require.False(t, b.Put(2))
	require.False(t, b.Put(3))
	require.True(t, b.Put(4))
	require.True(t, b.Put(5))

	require.Equal(t, []int{3, 4, 5}, b.Values())
	require.Equal(t, 3, b.Len())
	require.Equal(t, 3, b.Cap())

	oldest, err := b.Oldest()
	require.NoError(t, err)
	require.Equal(t, 3, oldest)
	newest, err := b.Newest()
	require.NoError(t, err)
	require.Equal(t, 5, newest)
	requireRing(t, b.list)
}

func TestBoundedList_Clear(t *testing.T) {
	b := NewBoundedList[string](2)
	b.Put("a")
	b.Clear()
	require.Zero(t, b.Len())
	_, err := b.Oldest()
	require.ErrorIs(t, err, platformerror.ErrEmptyList)
}

func TestBoundedList_MinimumCapacity(t *testing.T) {
	b := NewBoundedList[int](0)
	require.Equal(t, 1, b.Cap())
	b.Put(1)
	require.True(t, b.Put(2))
	require.Equal(t, []int{2}, b.Values())
}
