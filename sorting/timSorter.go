package sorting

import (
	"context"
	"fmt"

	"github.com/multiversx/mx-chain-core-go/core/atomic"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("sorting")

const (
	// minMerge is the sequence length below which merge planning is skipped
	// entirely and the whole range is handled by one run detection followed
	// by a binary insertion pass
	minMerge = 32

	// minGallopStart is the number of consecutive wins one run needs before
	// a merge switches from the straight mode to the gallop mode
	minGallopStart = 7

	// maxInitialScratchLength caps the scratch buffer allocated up front;
	// the buffer grows on demand when a longer run must be staged
	maxInitialScratchLength = 256
)

// ArgsTimSorter holds the dependencies needed to create a timSorter instance
type ArgsTimSorter[T any] struct {
	Comparator   Comparator[T]
	MinRunPolicy MinRunPolicy
}

// timSorter sorts slices in place with an adaptive, stable merge sort driven
// by a caller-supplied comparator. The instance only carries the comparator,
// the minimum run policy and a comparison counter; all per-call state lives
// in a sortSession created fresh for every Sort invocation.
type timSorter[T any] struct {
	comparator  Comparator[T]
	policy      MinRunPolicy
	comparisons atomic.Counter
}

// NewTimSorter creates a new timSorter instance. An empty policy selects the
// classic minimum run length heuristic.
func NewTimSorter[T any](args ArgsTimSorter[T]) (*timSorter[T], error) {
	if check.IfNil(args.Comparator) {
		return nil, ErrNilComparator
	}

	policy := args.MinRunPolicy
	if len(policy) == 0 {
		policy = ClassicMinRunPolicy
	}
	if !policy.isValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMinRunPolicy, args.MinRunPolicy)
	}

	return &timSorter[T]{
		comparator: args.Comparator,
		policy:     policy,
	}, nil
}

// SortSlice sorts items in place through a single-use sorter with the classic
// minimum run policy and returns the same slice.
func SortSlice[T any](ctx context.Context, items []T, comparator Comparator[T]) ([]T, error) {
	sorter, err := NewTimSorter(ArgsTimSorter[T]{Comparator: comparator})
	if err != nil {
		return nil, err
	}

	return sorter.Sort(ctx, items)
}

// Sort rearranges items in place, ascending and stable under the order
// defined by the comparator, and returns the same slice. The slice and the
// internal scratch buffer are owned exclusively by this call until it
// returns. On error the slice is left in a partially merged state and must
// not be assumed sorted.
func (sorter *timSorter[T]) Sort(ctx context.Context, items []T) ([]T, error) {
	if len(items) < 2 {
		return items, nil
	}

	session := newSortSession(items, sorter)
	err := session.sort(ctx, sorter.policy)
	if err != nil {
		log.Warn("sort failed", "numItems", len(items), "error", err)
		return nil, err
	}

	log.Trace("sort finished", "numItems", len(items), "comparisons", sorter.comparisons.Get())

	return items, nil
}

// Comparisons returns the total number of comparator invocations issued by
// this instance so far
func (sorter *timSorter[T]) Comparisons() int64 {
	return sorter.comparisons.Get()
}

// IsInterfaceNil returns true if there is no value under the interface
func (sorter *timSorter[T]) IsInterfaceNil() bool {
	return sorter == nil
}

// sortSession is the per-call state of one sort: the sequence, the stack of
// pending runs, the scratch buffer and the adaptive gallop threshold. It is
// created fresh by Sort and discarded when the call returns.
type sortSession[T any] struct {
	items       []T
	comparator  Comparator[T]
	comparisons *atomic.Counter

	runBase   []int
	runLen    []int
	stackSize int

	minGallop int
	scratch   []T
}

func newSortSession[T any](items []T, sorter *timSorter[T]) *sortSession[T] {
	capacity := runStackCapacity(len(items))
	scratchLength := len(items) / 2
	if scratchLength > maxInitialScratchLength {
		scratchLength = maxInitialScratchLength
	}

	return &sortSession[T]{
		items:       items,
		comparator:  sorter.comparator,
		comparisons: &sorter.comparisons,
		runBase:     make([]int, capacity),
		runLen:      make([]int, capacity),
		minGallop:   minGallopStart,
		scratch:     make([]T, scratchLength),
	}
}

// runStackCapacity returns a stack depth sufficient for the given sequence
// length under the stack invariant, which forces run lengths to grow at
// least as fast as the Fibonacci numbers.
func runStackCapacity(length int) int {
	switch {
	case length < 120:
		return 5
	case length < 1542:
		return 10
	case length < 119151:
		return 24
	default:
		return 49
	}
}

func (session *sortSession[T]) sort(ctx context.Context, policy MinRunPolicy) error {
	lo := 0
	hi := len(session.items)
	nRemaining := hi - lo

	if nRemaining < minMerge {
		runLen, err := session.detectRun(ctx, lo, hi)
		if err != nil {
			return err
		}

		return session.binaryInsertionSort(ctx, lo, hi, lo+runLen)
	}

	minRun := policy.minRunLength(nRemaining)
	for {
		runLen, err := session.detectRun(ctx, lo, hi)
		if err != nil {
			return err
		}

		if runLen < minRun {
			force := minRun
			if nRemaining < force {
				force = nRemaining
			}

			err = session.binaryInsertionSort(ctx, lo, lo+force, lo+runLen)
			if err != nil {
				return err
			}
			runLen = force
		}

		session.pushRun(lo, runLen)
		err = session.mergeCollapse(ctx)
		if err != nil {
			return err
		}

		lo += runLen
		nRemaining -= runLen
		if nRemaining == 0 {
			break
		}
	}

	if lo != hi {
		return fmt.Errorf("%w: run scan stopped at %d, expected %d", ErrInvalidRange, lo, hi)
	}

	err := session.mergeForceCollapse(ctx)
	if err != nil {
		return err
	}
	if session.stackSize != 1 {
		return fmt.Errorf("%w: %d runs left after the final collapse", ErrInvalidRange, session.stackSize)
	}

	return nil
}

func (session *sortSession[T]) compare(ctx context.Context, a T, b T) (int, error) {
	session.comparisons.Increment()

	return session.comparator.Compare(ctx, a, b)
}

func (session *sortSession[T]) checkRange(lo int, hi int) error {
	if lo < 0 || lo > hi || hi > len(session.items) {
		return fmt.Errorf("%w: [%d, %d) over %d items", ErrInvalidRange, lo, hi, len(session.items))
	}

	return nil
}

// ensureScratch returns a scratch slice of at least the requested length,
// reusing the session buffer across merges and growing it when a longer run
// must be staged.
func (session *sortSession[T]) ensureScratch(needed int) []T {
	if len(session.scratch) < needed {
		session.scratch = make([]T, needed)
	}

	return session.scratch
}

// pushRun records a detected run on the stack of runs pending a merge
func (session *sortSession[T]) pushRun(base int, length int) {
	session.runBase[session.stackSize] = base
	session.runLen[session.stackSize] = length
	session.stackSize++
}

// mergeCollapse restores the stack invariant
//
//	runLen[i] > runLen[i+1] + runLen[i+2]
//	runLen[i+1] > runLen[i+2]
//
// after a push, merging the pair that restores it fastest until it holds for
// the whole stack. Keeping the invariant bounds the total merge work to
// O(n log n).
func (session *sortSession[T]) mergeCollapse(ctx context.Context) error {
	for session.stackSize > 1 {
		n := session.stackSize - 2
		if n > 0 && session.runLen[n-1] <= session.runLen[n]+session.runLen[n+1] {
			if session.runLen[n-1] < session.runLen[n+1] {
				n--
			}
			err := session.mergeAt(ctx, n)
			if err != nil {
				return err
			}
		} else if session.runLen[n] <= session.runLen[n+1] {
			err := session.mergeAt(ctx, n)
			if err != nil {
				return err
			}
		} else {
			break
		}
	}

	return nil
}

// mergeForceCollapse merges all pending runs into one once the whole
// sequence has been scanned
func (session *sortSession[T]) mergeForceCollapse(ctx context.Context) error {
	for session.stackSize > 1 {
		n := session.stackSize - 2
		if n > 0 && session.runLen[n-1] < session.runLen[n+1] {
			n--
		}
		err := session.mergeAt(ctx, n)
		if err != nil {
			return err
		}
	}

	return nil
}
