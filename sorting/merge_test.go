package sorting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/multiversx/mx-sorting-go/sorting"
	"github.com/multiversx/mx-sorting-go/testscommon"
)

// mergeLow and mergeHigh expect what mergeAt guarantees after trimming: the
// first element of run2 is below the first element of run1 and the last
// element of run1 is above every element of run2. The fixtures below respect
// that.

func TestSortSession_MergeLow(t *testing.T) {
	t.Parallel()

	t.Run("interleaved runs", func(t *testing.T) {
		t.Parallel()

		items := []int{3, 5, 9, 1, 2, 4, 6, 8}
		sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[int]{Comparator: createNumericComparator()})
		session := sorting.NewSortSession(items, sorter)

		err := session.MergeLow(context.Background(), 0, 3, 3, 5)
		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 8, 9}, items)
	})
	t.Run("non adjacent runs should error", func(t *testing.T) {
		t.Parallel()

		items := []int{3, 5, 9, 1, 2, 4, 6, 8}
		sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[int]{Comparator: createNumericComparator()})
		session := sorting.NewSortSession(items, sorter)

		err := session.MergeLow(context.Background(), 0, 2, 3, 5)
		require.ErrorIs(t, err, sorting.ErrInvalidRange)
	})
	t.Run("equal elements favour the first run", func(t *testing.T) {
		t.Parallel()

		items := []rankedItem{
			{key: 2, ord: 0},
			{key: 9, ord: 1},
			{key: 1, ord: 2},
			{key: 2, ord: 3},
			{key: 3, ord: 4},
		}
		sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[rankedItem]{Comparator: createKeyComparator()})
		session := sorting.NewSortSession(items, sorter)

		err := session.MergeLow(context.Background(), 0, 2, 2, 3)
		require.Nil(t, err)

		expected := []rankedItem{
			{key: 1, ord: 2},
			{key: 2, ord: 0},
			{key: 2, ord: 3},
			{key: 3, ord: 4},
			{key: 9, ord: 1},
		}
		require.Equal(t, expected, items)
	})
}

func TestSortSession_MergeHigh(t *testing.T) {
	t.Parallel()

	t.Run("interleaved runs", func(t *testing.T) {
		t.Parallel()

		items := []int{3, 5, 6, 8, 9, 1, 2, 4}
		sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[int]{Comparator: createNumericComparator()})
		session := sorting.NewSortSession(items, sorter)

		err := session.MergeHigh(context.Background(), 0, 5, 5, 3)
		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 8, 9}, items)
	})
	t.Run("equal elements favour the first run", func(t *testing.T) {
		t.Parallel()

		items := []rankedItem{
			{key: 2, ord: 0},
			{key: 2, ord: 1},
			{key: 9, ord: 2},
			{key: 1, ord: 3},
			{key: 2, ord: 4},
		}
		sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[rankedItem]{Comparator: createKeyComparator()})
		session := sorting.NewSortSession(items, sorter)

		err := session.MergeHigh(context.Background(), 0, 3, 3, 2)
		require.Nil(t, err)

		expected := []rankedItem{
			{key: 1, ord: 3},
			{key: 2, ord: 0},
			{key: 2, ord: 1},
			{key: 2, ord: 4},
			{key: 9, ord: 2},
		}
		require.Equal(t, expected, items)
	})
}

func TestSortSession_MergeLowDetectsContractViolation(t *testing.T) {
	t.Parallel()

	// a comparator claiming the current run2 element is above every staged
	// run1 element makes the gallop drain run1 completely, a state the merge
	// preconditions rule out for any consistent total order
	alwaysAfter := &testscommon.ComparatorStub[int]{
		CompareCalled: func(_ context.Context, _ int, _ int) (int, error) {
			return 1, nil
		},
	}

	items := []int{10, 20, 30, 1, 2, 3}
	sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[int]{Comparator: alwaysAfter})
	session := sorting.NewSortSession(items, sorter)
	session.SetMinGallop(1)

	err := session.MergeLow(context.Background(), 0, 3, 3, 3)
	require.ErrorIs(t, err, sorting.ErrComparatorContract)
}

func TestSortSession_MergeCollapseKeepsStackInvariant(t *testing.T) {
	t.Parallel()

	// two runs violating runLen[i] > runLen[i+1] collapse into one, and the
	// final force collapse leaves exactly one sorted run
	items := []int{2, 9, 1, 5, 8, 3, 4, 6, 7}
	sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[int]{Comparator: createNumericComparator()})
	session := sorting.NewSortSession(items, sorter)

	session.PushRun(0, 2)
	session.PushRun(2, 3)
	err := session.MergeCollapse(context.Background())
	require.Nil(t, err)
	require.Equal(t, 1, session.StackSize())

	base, length := session.RunAt(0)
	require.Equal(t, 0, base)
	require.Equal(t, 5, length)
	require.Equal(t, []int{1, 2, 5, 8, 9, 3, 4, 6, 7}, items)

	session.PushRun(5, 4)
	err = session.MergeForceCollapse(context.Background())
	require.Nil(t, err)
	require.Equal(t, 1, session.StackSize())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
}

func TestSortSession_MergeGallopsOnLongStreaks(t *testing.T) {
	t.Parallel()

	// every element of run2 sits below run1's gap, so run2 wins minGallop
	// straight rounds and the rest is located with one gallop and bulk-copied
	items := make([]int, 0, 50)
	for i := 0; i < 20; i++ {
		items = append(items, 50+i)
	}
	for i := 1; i <= 30; i++ {
		items = append(items, i)
	}

	sorter, _ := sorting.NewTimSorter(sorting.ArgsTimSorter[int]{Comparator: createNumericComparator()})
	session := sorting.NewSortSession(items, sorter)

	err := session.MergeLow(context.Background(), 0, 20, 20, 30)
	require.Nil(t, err)
	requireSortedInts(t, items)
	require.Equal(t, 1, items[0])
	require.Equal(t, 69, items[len(items)-1])
}
