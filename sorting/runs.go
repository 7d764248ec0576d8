package sorting

import (
	"context"
	"fmt"
)

// detectRun identifies the maximal run starting at lo and returns its
// length, always >= 1. An ascending run extends while consecutive elements
// are non-strictly ascending. A descending run extends while they are
// strictly descending and is then reversed in place; strict descent
// guarantees no two adjacent elements are equal, so the reversal can not
// reorder equal elements and stability is preserved.
func (session *sortSession[T]) detectRun(ctx context.Context, lo int, hi int) (int, error) {
	err := session.checkRange(lo, hi)
	if err != nil {
		return 0, err
	}
	if lo >= hi {
		return 0, fmt.Errorf("%w: empty range [%d, %d)", ErrInvalidRange, lo, hi)
	}

	runHi := lo + 1
	if runHi == hi {
		return 1, nil
	}

	result, err := session.compare(ctx, session.items[runHi], session.items[lo])
	if err != nil {
		return 0, err
	}
	runHi++

	if result < 0 {
		for runHi < hi {
			result, err = session.compare(ctx, session.items[runHi], session.items[runHi-1])
			if err != nil {
				return 0, err
			}
			if result >= 0 {
				break
			}
			runHi++
		}
		session.reverseRange(lo, runHi)
	} else {
		for runHi < hi {
			result, err = session.compare(ctx, session.items[runHi], session.items[runHi-1])
			if err != nil {
				return 0, err
			}
			if result < 0 {
				break
			}
			runHi++
		}
	}

	return runHi - lo, nil
}

// reverseRange reverses items[lo:hi] in place
func (session *sortSession[T]) reverseRange(lo int, hi int) {
	hi--
	for lo < hi {
		session.items[lo], session.items[hi] = session.items[hi], session.items[lo]
		lo++
		hi--
	}
}

// binaryInsertionSort sorts items[lo:hi] assuming items[lo:start] is already
// sorted. Each element is placed with a binary search at the first position
// where it is strictly below the existing element, which puts it after all
// its equals and keeps the sort stable. It needs O(n log n) comparisons but
// O(n^2) element moves in the worst case, which is the right trade for an
// expensive comparator over a short range.
func (session *sortSession[T]) binaryInsertionSort(ctx context.Context, lo int, hi int, start int) error {
	err := session.checkRange(lo, hi)
	if err != nil {
		return err
	}
	if start < lo || start > hi {
		return fmt.Errorf("%w: insertion start %d outside [%d, %d]", ErrInvalidRange, start, lo, hi)
	}

	if start == lo {
		start++
	}

	for ; start < hi; start++ {
		pivot := session.items[start]

		left := lo
		right := start
		for left < right {
			mid := int(uint(left+right) >> 1)
			result, errCompare := session.compare(ctx, pivot, session.items[mid])
			if errCompare != nil {
				return errCompare
			}
			if result < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}

		moved := start - left
		switch moved {
		case 2:
			session.items[left+2] = session.items[left+1]
			session.items[left+1] = session.items[left]
		case 1:
			session.items[left+1] = session.items[left]
		default:
			copy(session.items[left+1:start+1], session.items[left:start])
		}
		session.items[left] = pivot
	}

	return nil
}
