package eytzinger

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromSorted(t *testing.T) {
	type args struct {
		sorted []int
	}
	tests := []struct {
		name string
		args args
		want []int
	}{
		{"empty", args{[]int{}}, []int{}},
		{"single", args{[]int{1}}, []int{1}},
		// 2 nodes: the root's left child is the minimum
		//
		//	  2
		//	 /
		//	1
		{"two", args{[]int{1, 2}}, []int{2, 1}},
		//	  2
		//	 / \
		//	1   3
		{"three", args{[]int{1, 2, 3}}, []int{2, 1, 3}},
		// the worked example: 5 nodes
		//
		//	        4
		//	      /   \
		//	     2     5
		//	    / \
		//	   1   3
		{"five", args{[]int{1, 2, 3, 4, 5}}, []int{4, 2, 5, 1, 3}},
		//	        4
		//	      /   \
		//	     2     6
		//	    / \   /
		//	   1   3 5
		{"six", args{[]int{1, 2, 3, 4, 5, 6}}, []int{4, 2, 6, 1, 3, 5}},
		// the perfect 7 node shape
		//
		//	        4
		//	      /   \
		//	     2     6
		//	    / \   / \
		//	   1   3 5   7
		{"seven", args{[]int{1, 2, 3, 4, 5, 6, 7}}, []int{4, 2, 6, 1, 3, 5, 7}},
		// 10 nodes, last level partially filled on the left
		//
		//	            7
		//	         /     \
		//	       4         9
		//	     /   \     /   \
		//	    2     6   8    10
		//	   / \   /
		//	  1   3 5
		{
			"ten",
			args{[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
			[]int{7, 4, 9, 2, 6, 8, 10, 1, 3, 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromSorted(tt.args.sorted); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FromSorted() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromSortedDoesNotModifyInput(t *testing.T) {
	sorted := []int{1, 2, 3, 4, 5}
	_ = FromSorted(sorted)
	require.Equal(t, []int{1, 2, 3, 4, 5}, sorted)
}

// Every size must produce a layout whose in-order walk is ascending; this is
// the search invariant VerifyLayout checks.
func TestFromSortedAllSizesValid(t *testing.T) {
	for n := 0; n <= 130; n++ {
		sorted := make([]int, n)
		for i := range sorted {
			sorted[i] = i
		}
		es := FromSorted(sorted)
		require.NoError(t, VerifyLayout(es, lessInt), "n=%d", n)
	}
}

// The layout depends only on the multiset of values, never on input order.
func TestBuildDeterministic(t *testing.T) {
	values := []int{9, 1, 4, 4, 7, 2, 2, 2, 8, 0, 5}
	ref := NewFunc(values, lessInt)

	r := rand.New(rand.NewSource(1))
	for range 20 {
		shuffled := append([]int(nil), values...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		a := NewFunc(shuffled, lessInt)
		require.Equal(t, ref.es, a.es)
	}
}
