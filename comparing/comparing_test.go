package comparing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-sorting-go/comparing"
)

func TestOrderedComparator(t *testing.T) {
	t.Parallel()

	comparator := comparing.NewOrderedComparator[int]()
	require.False(t, comparator.IsInterfaceNil())

	result, err := comparator.Compare(context.Background(), 1, 2)
	require.Nil(t, err)
	require.Equal(t, -1, result)

	result, err = comparator.Compare(context.Background(), 2, 1)
	require.Nil(t, err)
	require.Equal(t, 1, result)

	result, err = comparator.Compare(context.Background(), 2, 2)
	require.Nil(t, err)
	require.Equal(t, 0, result)

	stringComparator := comparing.NewOrderedComparator[string]()
	result, err = stringComparator.Compare(context.Background(), "abc", "abd")
	require.Nil(t, err)
	require.Equal(t, -1, result)
}

func TestSortOrdered(t *testing.T) {
	t.Parallel()

	sorted, err := comparing.SortOrdered(context.Background(), []int{5, 4, 3, 2, 1})
	require.Nil(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, sorted)

	sortedStrings, err := comparing.SortOrdered(context.Background(), []string{"pear", "apple", "fig"})
	require.Nil(t, err)
	assert.Equal(t, []string{"apple", "fig", "pear"}, sortedStrings)
}

func TestFuncComparator(t *testing.T) {
	t.Parallel()

	t.Run("nil function should error", func(t *testing.T) {
		t.Parallel()

		comparator, err := comparing.NewFuncComparator[int](nil)
		require.Equal(t, comparing.ErrNilCompareFunc, err)
		require.Nil(t, comparator)
	})
	t.Run("verdict comes from the wrapped function", func(t *testing.T) {
		t.Parallel()

		comparator, err := comparing.NewFuncComparator(func(a string, b string) int {
			return len(a) - len(b)
		})
		require.Nil(t, err)

		result, err := comparator.Compare(context.Background(), "aaaa", "aa")
		require.Nil(t, err)
		require.Equal(t, 2, result)
	})
}

func TestReversedComparator(t *testing.T) {
	t.Parallel()

	t.Run("nil inner comparator should error", func(t *testing.T) {
		t.Parallel()

		comparator, err := comparing.NewReversedComparator[int](nil)
		require.Equal(t, comparing.ErrNilInnerComparator, err)
		require.Nil(t, comparator)
	})
	t.Run("inverts the inner order", func(t *testing.T) {
		t.Parallel()

		comparator, err := comparing.NewReversedComparator[int](comparing.NewOrderedComparator[int]())
		require.Nil(t, err)

		result, err := comparator.Compare(context.Background(), 1, 2)
		require.Nil(t, err)
		require.Equal(t, 1, result)

		result, err = comparator.Compare(context.Background(), 2, 2)
		require.Nil(t, err)
		require.Equal(t, 0, result)
	})
}
