package sorting

import (
	"context"
	"fmt"
)

// gallopLeft finds the leftmost insertion point of key in the sorted range
// data[base:base+length]: the first index k, relative to base, with
// data[base+k] >= key. It probes exponentially outward from hint to bracket
// the insertion point, then binary-searches the bracket, so it costs
// O(log d) comparisons where d is the distance from hint to the result.
// Used when key must land before all its equals.
func (session *sortSession[T]) gallopLeft(ctx context.Context, key T, data []T, base int, length int, hint int) (int, error) {
	if length <= 0 || hint < 0 || hint >= length {
		return 0, fmt.Errorf("%w: gallop over %d items with hint %d", ErrInvalidRange, length, hint)
	}

	lastOfs := 0
	ofs := 1
	result, err := session.compare(ctx, key, data[base+hint])
	if err != nil {
		return 0, err
	}

	if result > 0 {
		// gallop right until data[base+hint+lastOfs] < key <= data[base+hint+ofs]
		maxOfs := length - hint
		for ofs < maxOfs {
			result, err = session.compare(ctx, key, data[base+hint+ofs])
			if err != nil {
				return 0, err
			}
			if result <= 0 {
				break
			}
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	} else {
		// gallop left until data[base+hint-ofs] < key <= data[base+hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs {
			result, err = session.compare(ctx, key, data[base+hint-ofs])
			if err != nil {
				return 0, err
			}
			if result > 0 {
				break
			}
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// binary search keeping data[base+lastOfs-1] < key <= data[base+ofs]
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		result, err = session.compare(ctx, key, data[base+m])
		if err != nil {
			return 0, err
		}
		if result > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}

	return ofs, nil
}

// gallopRight is the mirror of gallopLeft: it returns the first index k,
// relative to base, with data[base+k] > key, placing key after all its
// equals.
func (session *sortSession[T]) gallopRight(ctx context.Context, key T, data []T, base int, length int, hint int) (int, error) {
	if length <= 0 || hint < 0 || hint >= length {
		return 0, fmt.Errorf("%w: gallop over %d items with hint %d", ErrInvalidRange, length, hint)
	}

	lastOfs := 0
	ofs := 1
	result, err := session.compare(ctx, key, data[base+hint])
	if err != nil {
		return 0, err
	}

	if result < 0 {
		// gallop left until data[base+hint-ofs] <= key < data[base+hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs {
			result, err = session.compare(ctx, key, data[base+hint-ofs])
			if err != nil {
				return 0, err
			}
			if result >= 0 {
				break
			}
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// gallop right until data[base+hint+lastOfs] <= key < data[base+hint+ofs]
		maxOfs := length - hint
		for ofs < maxOfs {
			result, err = session.compare(ctx, key, data[base+hint+ofs])
			if err != nil {
				return 0, err
			}
			if result < 0 {
				break
			}
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 { // int overflow
				ofs = maxOfs
			}
		}
		if ofs > maxOfs {
			ofs = maxOfs
		}
		lastOfs += hint
		ofs += hint
	}

	// binary search keeping data[base+lastOfs-1] <= key < data[base+ofs]
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + (ofs-lastOfs)/2
		result, err = session.compare(ctx, key, data[base+m])
		if err != nil {
			return 0, err
		}
		if result < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}

	return ofs, nil
}
