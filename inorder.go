package eytzinger

// InOrder returns the zero based storage indices of an n node Eytzinger
// layout in ascending key order. It is the builder's placement walk with the
// assignment replaced by recording, so for any correctly built layout es,
//
//	es[InOrder(len(es))[0]], es[InOrder(len(es))[1]], ...
//
// enumerates the elements in sorted order.
func InOrder(n int) []int {
	indices := make([]int, n)
	inOrder(uint64(n), 1, indices, 0)
	return indices
}

func inOrder(n, pos uint64, indices []int, next int) int {
	if pos <= n {
		next = inOrder(n, LeftChild(pos), indices, next)
		indices[next] = int(pos - 1)
		next++
		next = inOrder(n, RightChild(pos), indices, next)
	}
	return next
}
