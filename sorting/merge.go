package sorting

import (
	"context"
	"fmt"
)

// mergeAt merges the adjacent runs at stack positions i and i+1, where i is
// the top or next-to-top entry. The merge is trimmed first: leading elements
// of the first run already below the whole second run and trailing elements
// of the second run already above the whole first run stay where they are.
// The shorter remainder is then staged in the scratch buffer, which bounds
// extra memory to min(len1, len2).
func (session *sortSession[T]) mergeAt(ctx context.Context, i int) error {
	if session.stackSize < 2 {
		return fmt.Errorf("%w: merge requested on a stack of %d runs", ErrInvalidRange, session.stackSize)
	}
	if i < 0 || (i != session.stackSize-2 && i != session.stackSize-3) {
		return fmt.Errorf("%w: cannot merge stack entry %d of %d", ErrInvalidRange, i, session.stackSize)
	}

	base1 := session.runBase[i]
	len1 := session.runLen[i]
	base2 := session.runBase[i+1]
	len2 := session.runLen[i+1]
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		return fmt.Errorf("%w: runs [%d, %d) and [%d, %d) are not adjacent",
			ErrInvalidRange, base1, base1+len1, base2, base2+len2)
	}

	// the combined run replaces the pair on the stack before the data moves;
	// if i is the third-from-top entry, the top run slides down one slot
	session.runLen[i] = len1 + len2
	if i == session.stackSize-3 {
		session.runBase[i+1] = session.runBase[i+2]
		session.runLen[i+1] = session.runLen[i+2]
	}
	session.stackSize--

	// ignore leading elements of run1 that are already in place
	k, err := session.gallopRight(ctx, session.items[base2], session.items, base1, len1, 0)
	if err != nil {
		return err
	}
	base1 += k
	len1 -= k
	if len1 == 0 {
		return nil
	}

	// ignore trailing elements of run2 that are already in place
	len2, err = session.gallopLeft(ctx, session.items[base1+len1-1], session.items, base2, len2, len2-1)
	if err != nil {
		return err
	}
	if len2 == 0 {
		return nil
	}

	if len1 <= len2 {
		return session.mergeLow(ctx, base1, len1, base2, len2)
	}

	return session.mergeHigh(ctx, base1, len1, base2, len2)
}

// mergeLow merges two adjacent runs, staging the first (shorter or equal)
// run in the scratch buffer and filling the hole left-to-right. It
// alternates between a straight element-by-element merge and gallop mode:
// once one side wins minGallop times in a row, whole blocks are located with
// a gallop search and bulk-copied. minGallop adapts, dropping while
// galloping pays off and taking a +2 penalty (floor 1) whenever gallop mode
// is exited.
//
// Ties go to the first run (taken when the run2 candidate is not strictly
// below it), and the gallopRight/gallopLeft split below mirrors that; this
// asymmetry is what keeps the merge stable.
func (session *sortSession[T]) mergeLow(ctx context.Context, base1 int, len1 int, base2 int, len2 int) error {
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		return fmt.Errorf("%w: runs [%d, %d) and [%d, %d) are not adjacent",
			ErrInvalidRange, base1, base1+len1, base2, base2+len2)
	}

	items := session.items
	tmp := session.ensureScratch(len1)
	copy(tmp, items[base1:base1+len1])

	cursor1 := 0     // index into tmp
	cursor2 := base2 // index into items
	dest := base1    // index into items

	// the first element of run2 is below run1's first element, or the merge
	// would have been trimmed away entirely
	items[dest] = items[cursor2]
	dest++
	cursor2++
	len2--
	if len2 == 0 {
		copy(items[dest:dest+len1], tmp[cursor1:cursor1+len1])
		return nil
	}
	if len1 == 1 {
		copy(items[dest:dest+len2], items[cursor2:cursor2+len2])
		items[dest+len2] = tmp[cursor1]
		return nil
	}

	minGallop := session.minGallop
outer:
	for {
		count1 := 0 // consecutive wins of run1
		count2 := 0 // consecutive wins of run2

		for {
			if len1 <= 1 || len2 <= 0 {
				return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
			}

			result, err := session.compare(ctx, items[cursor2], tmp[cursor1])
			if err != nil {
				return err
			}
			if result < 0 {
				items[dest] = items[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				len2--
				if len2 == 0 {
					break outer
				}
			} else {
				items[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				len1--
				if len1 == 1 {
					break outer
				}
			}

			if (count1 | count2) >= minGallop {
				break
			}
		}

		for {
			if len1 <= 1 || len2 <= 0 {
				return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
			}

			var err error
			count1, err = session.gallopRight(ctx, items[cursor2], tmp, cursor1, len1, 0)
			if err != nil {
				return err
			}
			if count1 != 0 {
				copy(items[dest:dest+count1], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			items[dest] = items[cursor2]
			dest++
			cursor2++
			len2--
			if len2 == 0 {
				break outer
			}

			count2, err = session.gallopLeft(ctx, tmp[cursor1], items, cursor2, len2, 0)
			if err != nil {
				return err
			}
			if count2 != 0 {
				copy(items[dest:dest+count2], items[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			items[dest] = tmp[cursor1]
			dest++
			cursor1++
			len1--
			if len1 == 1 {
				break outer
			}

			minGallop--
			if count1 < minGallopStart && count2 < minGallopStart {
				break
			}
		}

		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}

	session.minGallop = minGallop
	if session.minGallop < 1 {
		session.minGallop = 1
	}

	switch {
	case len1 == 1:
		if len2 <= 0 {
			return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
		}
		copy(items[dest:dest+len2], items[cursor2:cursor2+len2])
		items[dest+len2] = tmp[cursor1] // last element of run1 ends the merge
	case len1 == 0:
		return fmt.Errorf("%w: first run exhausted before the merge completed", ErrComparatorContract)
	default:
		if len2 != 0 {
			return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
		}
		copy(items[dest:dest+len1], tmp[cursor1:cursor1+len1])
	}

	return nil
}

// mergeHigh is the mirror of mergeLow for the case len1 > len2: the second
// run is staged in scratch and the hole is filled from the high end
// backward. The tie-break direction is unchanged, elements of run1 still go
// before equal elements of run2.
func (session *sortSession[T]) mergeHigh(ctx context.Context, base1 int, len1 int, base2 int, len2 int) error {
	if len1 <= 0 || len2 <= 0 || base1+len1 != base2 {
		return fmt.Errorf("%w: runs [%d, %d) and [%d, %d) are not adjacent",
			ErrInvalidRange, base1, base1+len1, base2, base2+len2)
	}

	items := session.items
	tmp := session.ensureScratch(len2)
	copy(tmp, items[base2:base2+len2])

	cursor1 := base1 + len1 - 1 // index into items
	cursor2 := len2 - 1         // index into tmp
	dest := base2 + len2 - 1    // index into items

	// the last element of run1 is above run2's last element, or the merge
	// would have been trimmed away entirely
	items[dest] = items[cursor1]
	dest--
	cursor1--
	len1--
	if len1 == 0 {
		copy(items[dest-(len2-1):dest+1], tmp[:len2])
		return nil
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(items[dest+1:dest+1+len1], items[cursor1+1:cursor1+1+len1])
		items[dest] = tmp[cursor2]
		return nil
	}

	minGallop := session.minGallop
outer:
	for {
		count1 := 0 // consecutive wins of run1
		count2 := 0 // consecutive wins of run2

		for {
			if len1 <= 0 || len2 <= 1 {
				return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
			}

			result, err := session.compare(ctx, tmp[cursor2], items[cursor1])
			if err != nil {
				return err
			}
			if result < 0 {
				items[dest] = items[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				len1--
				if len1 == 0 {
					break outer
				}
			} else {
				items[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				len2--
				if len2 == 1 {
					break outer
				}
			}

			if (count1 | count2) >= minGallop {
				break
			}
		}

		for {
			if len1 <= 0 || len2 <= 1 {
				return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
			}

			k, err := session.gallopRight(ctx, tmp[cursor2], items, base1, len1, len1-1)
			if err != nil {
				return err
			}
			count1 = len1 - k
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(items[dest+1:dest+1+count1], items[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			items[dest] = tmp[cursor2]
			dest--
			cursor2--
			len2--
			if len2 == 1 {
				break outer
			}

			k, err = session.gallopLeft(ctx, items[cursor1], tmp, 0, len2, len2-1)
			if err != nil {
				return err
			}
			count2 = len2 - k
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(items[dest+1:dest+1+count2], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			items[dest] = items[cursor1]
			dest--
			cursor1--
			len1--
			if len1 == 0 {
				break outer
			}

			minGallop--
			if count1 < minGallopStart && count2 < minGallopStart {
				break
			}
		}

		if minGallop < 0 {
			minGallop = 0
		}
		minGallop += 2 // penalize leaving gallop mode
	}

	session.minGallop = minGallop
	if session.minGallop < 1 {
		session.minGallop = 1
	}

	switch {
	case len2 == 1:
		if len1 <= 0 {
			return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
		}
		dest -= len1
		cursor1 -= len1
		copy(items[dest+1:dest+1+len1], items[cursor1+1:cursor1+1+len1])
		items[dest] = tmp[cursor2] // first element of run2 opens the merge
	case len2 == 0:
		return fmt.Errorf("%w: second run exhausted before the merge completed", ErrComparatorContract)
	default:
		if len1 != 0 {
			return fmt.Errorf("%w: merge state len1=%d len2=%d", ErrComparatorContract, len1, len2)
		}
		copy(items[dest-(len2-1):dest+1], tmp[:len2])
	}

	return nil
}
