package eytzinger

// SearchSlice returns the zero based storage index of the lower bound of
// value in es: the smallest element that does not compare less than value
// under less. It returns -1 when value compares greater than every element
// (no lower bound exists), and -1 for an empty slice.
//
// ** Note ** es must be in Eytzinger order (see FromSorted) and less must be
// a strict weak ordering; neither is checked here. VerifyLayout exists for
// callers that want the check.
//
// The descent is branchless: the comparison result feeds the position update
// arithmetically, so the loop body carries no data dependent branch. The
// exit position encodes the path taken and LastLeftAncestor recovers the
// answer from it with a single shift.
func SearchSlice[T any](es []T, value T, less func(a, b T) bool) int {
	n := uint64(len(es))
	pos := uint64(1)
	for pos <= n {
		pos = 2*pos + b2u(less(es[pos-1], value))
	}
	return int(LastLeftAncestor(pos)) - 1
}

// b2u compiles to a conditional move, not a branch.
func b2u(b bool) uint64 {
	var u uint64
	if b {
		u = 1
	}
	return u
}
