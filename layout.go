package eytzinger

// FromSorted permutes an ascending slice into Eytzinger (breadth-first)
// order and returns the result as a fresh slice; sorted is not modified.
//
// ** Note ** the caller is responsible for sorted actually being in
// ascending order. The permutation depends only on len(sorted), so an
// unsorted input produces a layout that silently violates the search
// invariant.
func FromSorted[T any](sorted []T) []T {
	out := make([]T, len(sorted))
	layoutSorted(sorted, out, 0, 1)
	return out
}

// layoutSorted walks the implicit shape of len(in) nodes in-order, assigning
// the next unconsumed element of in to each position it visits. In-order
// visits positions in ascending key order, so consuming a sorted input in
// visit order yields exactly the Eytzinger layout. Returns the index of the
// next unconsumed element, which callers thread through the recursion.
func layoutSorted[T any](in, out []T, i int, pos uint64) int {
	if pos <= uint64(len(in)) {
		i = layoutSorted(in, out, i, LeftChild(pos))
		out[pos-1] = in[i]
		i++
		i = layoutSorted(in, out, i, RightChild(pos))
	}
	return i
}
