package sorting

import "context"

// NewSortSession -
func NewSortSession[T any](items []T, sorter *timSorter[T]) *sortSession[T] {
	return newSortSession(items, sorter)
}

// SetMinGallop -
func (session *sortSession[T]) SetMinGallop(minGallop int) {
	session.minGallop = minGallop
}

// MinGallop -
func (session *sortSession[T]) MinGallop() int {
	return session.minGallop
}

// StackSize -
func (session *sortSession[T]) StackSize() int {
	return session.stackSize
}

// RunAt -
func (session *sortSession[T]) RunAt(i int) (int, int) {
	return session.runBase[i], session.runLen[i]
}

// DetectRun -
func (session *sortSession[T]) DetectRun(ctx context.Context, lo int, hi int) (int, error) {
	return session.detectRun(ctx, lo, hi)
}

// ReverseRange -
func (session *sortSession[T]) ReverseRange(lo int, hi int) {
	session.reverseRange(lo, hi)
}

// BinaryInsertionSort -
func (session *sortSession[T]) BinaryInsertionSort(ctx context.Context, lo int, hi int, start int) error {
	return session.binaryInsertionSort(ctx, lo, hi, start)
}

// PushRun -
func (session *sortSession[T]) PushRun(base int, length int) {
	session.pushRun(base, length)
}

// MergeCollapse -
func (session *sortSession[T]) MergeCollapse(ctx context.Context) error {
	return session.mergeCollapse(ctx)
}

// MergeForceCollapse -
func (session *sortSession[T]) MergeForceCollapse(ctx context.Context) error {
	return session.mergeForceCollapse(ctx)
}

// MergeLow -
func (session *sortSession[T]) MergeLow(ctx context.Context, base1 int, len1 int, base2 int, len2 int) error {
	return session.mergeLow(ctx, base1, len1, base2, len2)
}

// MergeHigh -
func (session *sortSession[T]) MergeHigh(ctx context.Context, base1 int, len1 int, base2 int, len2 int) error {
	return session.mergeHigh(ctx, base1, len1, base2, len2)
}

// GallopLeft -
func (session *sortSession[T]) GallopLeft(ctx context.Context, key T, data []T, base int, length int, hint int) (int, error) {
	return session.gallopLeft(ctx, key, data, base, length, hint)
}

// GallopRight -
func (session *sortSession[T]) GallopRight(ctx context.Context, key T, data []T, base int, length int, hint int) (int, error) {
	return session.gallopRight(ctx, key, data, base, length, hint)
}

// MinRunLength -
func (policy MinRunPolicy) MinRunLength(n int) int {
	return policy.minRunLength(n)
}

// RunStackCapacity -
func RunStackCapacity(length int) int {
	return runStackCapacity(length)
}
