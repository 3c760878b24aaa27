package eytzinger

import "math/bits"

// The implicit tree is never materialised. These helpers are the complete
// navigation vocabulary: positions are 1 based heap indices into the flat
// sequence, and every move is plain arithmetic on the position.

// LeftChild returns the position of the left child of pos.
func LeftChild(pos uint64) uint64 {
	return 2 * pos
}

// RightChild returns the position of the right child of pos.
func RightChild(pos uint64) uint64 {
	return 2*pos + 1
}

// Parent returns the position of the parent of pos. Parent(1) is 0, which is
// not a valid position; the root has no parent.
func Parent(pos uint64) uint64 {
	return pos / 2
}

// LastLeftAncestor recovers the lower bound position from an overshot
// descent position. The binary encoding of pos records the descent path, one
// bit per level with the most recent turn in bit 0: a 0 bit is a left turn
// and a 1 bit is a right turn. Shifting out the trailing run of 1 bits plus
// the final 0 bit lands on the ancestor reached immediately after the last
// left turn, which is where the lower bound element lives.
//
// So given the 5 node tree,
//
//	        1
//	      /   \
//	     2     3
//	    / \
//	   4   5
//
// a descent that went right at 1 and left at 3 exits with pos 6 (0b110); the
// trailing run of 1 bits is empty, the shift amount is 1, and the result is
// position 3.
//
// When the path was right turns all the way down, pos is a run of 1 bits and
// the result is 0: no node on the path was entered by a left turn, so no
// lower bound exists.
func LastLeftAncestor(pos uint64) uint64 {
	return pos >> (bits.TrailingZeros64(^pos) + 1)
}
