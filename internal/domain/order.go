package domain

// Fractional ordering for columns and tasks. Positions are comparable
// float64 keys; inserting between two neighbors takes their midpoint, so a
// single move costs one row write and siblings keep their keys. Repeated
// bisection between the same two neighbors eventually exhausts float64
// precision; that ceiling is accepted rather than solved with rational or
// string keys.

// NoPredecessor is the sentinel order key used when an item is dropped
// before the first element of a list.
const NoPredecessor float64 = 0

// MidpointOrder computes the key for inserting an item between a predecessor
// with key prev and a successor with key next.
func MidpointOrder(prev, next float64) float64 {
	return (prev + next) / 2
}

// OrderBetween resolves the sentinels around MidpointOrder: hasPrev=false
// means the item lands before the first sibling (prev becomes 0), and
// hasNext=false means it lands after the last one (next becomes prev+1,
// which makes the midpoint greater than prev).
func OrderBetween(prev float64, hasPrev bool, next float64, hasNext bool) float64 {
	if !hasPrev {
		prev = NoPredecessor
	}
	if !hasNext {
		next = prev + 1
	}
	return MidpointOrder(prev, next)
}

// OrderAtEnd returns the key for appending after the current maximum key of
// a list. An empty list starts at 1, so a task dropped into an emptied
// column always gets a deterministic key distinct from zero.
func OrderAtEnd(last float64, empty bool) float64 {
	if empty {
		return 1
	}
	return last + 1
}

// NextColumnOrder returns the order key for a column appended after count
// existing columns.
func NextColumnOrder(count int) float64 {
	return float64(count + 1)
}
