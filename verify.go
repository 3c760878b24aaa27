package eytzinger

import "fmt"

// VerifyLayout checks that es satisfies the Eytzinger search invariant under
// less: for every position, the left subtree holds only elements that
// compare not-greater, and the right subtree only elements that compare
// not-less. Equivalently, the in-order walk of the implicit shape must visit
// es in ascending order, which is the form checked here.
//
// It returns nil for a valid layout (the empty layout is vacuously valid)
// and an error wrapping ErrNotEytzinger otherwise.
func VerifyLayout[T any](es []T, less func(a, b T) bool) error {
	indices := InOrder(len(es))
	for i := 1; i < len(indices); i++ {
		if less(es[indices[i]], es[indices[i-1]]) {
			return fmt.Errorf(
				"%w: element at index %d sorts before element at index %d",
				ErrNotEytzinger, indices[i], indices[i-1])
		}
	}
	return nil
}
