package eytzinger_test

import (
	"fmt"

	"github.com/jbelloncastro/immutable-maps/eytzinger"
)

func ExampleArray_Search() {
	a := eytzinger.New([]int{5, 3, 1, 4, 2})

	if i, ok := a.Search(3); ok {
		fmt.Println(a.At(i))
	}
	// 6 is greater than every stored element, so it has no lower bound
	_, ok := a.Search(6)
	fmt.Println(ok)

	// Output:
	// 3
	// false
}

func ExampleNewFunc() {
	type server struct {
		name string
		load int
	}
	byLoad := func(a, b server) bool { return a.load < b.load }

	a := eytzinger.NewFunc([]server{
		{"saturn", 80},
		{"mercury", 15},
		{"venus", 40},
	}, byLoad)

	// first server with load at least 30
	if i, ok := a.Search(server{load: 30}); ok {
		fmt.Println(a.At(i).name)
	}

	// Output:
	// venus
}
