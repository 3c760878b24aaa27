package eytzinger

/*

# Motivation for the Eytzinger layout

A sorted array searched with classic binary search has poor cache behaviour:
the first probes land on positions that are far apart, and every level of the
search touches a line that is, from the cache's point of view, essentially
random. The Eytzinger (breadth-first) layout stores the same elements so that
the implicit binary search tree reads top-down through memory: the node
visited k-th in level order lives at array position k-1. The hot top levels
of the tree then share a handful of cache lines, and each descent step lands
near lines that earlier queries already pulled in.

The approach follows the paper

	ARRAY LAYOUTS FOR COMPARISON-BASED SEARCHING,
	Paul-Virak Khuong and Pat Morin
	https://arxiv.org/abs/1509.05053

The structure is strictly static: it is built once, from a sorted permutation
of the input, and never mutated. That single property is what keeps the whole
implementation small - there is no rebalancing, no insertion path, and
concurrent readers need no synchronisation.

# Implicit tree, positions and indices

Like a binary heap, the tree shape is never materialised. Nodes are numbered
with 1 based heap positions k in [1, n], and navigation is index arithmetic
on a flat sequence:

	left child   2k
	right child  2k+1
	parent       k/2

The element for position k is stored at index k-1 of the backing slice. The
shape is the complete binary tree over n nodes (last level filled from the
left), fixed purely by n. For n = 10:

	            1
	         /     \
	       2         3
	     /   \     /   \
	    4     5   6     7
	   / \   /
	  8   9 10

An in-order walk of this shape (left subtree, node, right subtree) visits
positions in ascending key order, whatever n is. So the builder sorts the
input, walks the shape in-order, and hands out the sorted elements in visit
order. That one recursion establishes the binary-search-tree invariant:
everything under 2k compares not-greater than the element at k, everything
under 2k+1 compares not-less.

For the five element input {5, 3, 1, 4, 2}, the sorted order is [1 2 3 4 5],
the in-order visit order over the 5 node shape is positions 4, 2, 5, 1, 3,
and the resulting storage is:

	index    0  1  2  3  4
	element  4  2  5  1  3

	        4
	      /   \
	     2     5
	    / \
	   1   3

# Branchless descent and bit-trick recovery

Search locates the lower bound: the smallest element not less than the query.
The descent never keeps a candidate answer and never branches on the
comparison result; it folds the comparison into the index update:

	k = 1
	for k <= n {
		k = 2k + (element[k-1] < value ? 1 : 0)
	}

When the loop exits, k has overshot past a leaf, and its binary encoding is a
record of the whole path: reading down from the most significant bit, a 0 bit
is a left turn and a 1 bit is a right turn, most recent turn in the low bits.
The lower bound sits at the node where the path last turned left. To recover
it, strip the trailing run of 1 bits (the right turns taken after that point)
together with the final 0 bit itself:

	k >>= trailingOnes(k) + 1

which is a single shift by the find-first-set of the complement. Searching 5
in the array above: position 1 holds 4 (less, go right, k=3), position 3
holds 5 (not less, go left, k=6), 6 > 5 so the loop exits. 6 is 0b110, the
shift amount is 1, recovery lands on position 3 - index 2, which holds 5.

If the query is greater than every stored element, the path is all right
turns, k is a run of 1 bits, and the shift drives it to 0. No lower bound
exists in that case and Search reports it explicitly rather than handing back
the out-of-range position.

# Low level and opinionated interfaces

The package is split in two layers. The slice level functions (FromSorted,
SearchSlice, InOrder, VerifyLayout) work on bare slices and place a burden of
knowledge on the caller - handing SearchSlice a slice that is not in
Eytzinger order yields nonsense results and the error is not detected
directly. Array is the opinionated interface on top: it owns its storage,
builds it correctly from arbitrary input, and keeps it immutable for the rest
of its lifetime.

*/
