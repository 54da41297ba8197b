package dllist_test

import (
	"fmt"

	"github.com/sirkon/dllist"
	"github.com/sirkon/errors"
)

func ExampleList() {
	values := []int{1, 2, 3}
	l := dllist.NewHeap[int]()
	for i := range values {
		if _, err := l.InsertBack(&values[i]); err != nil {
			panic(errors.Wrap(err, "insert value"))
		}
	}

	// Значения не копируются, список видит их изменения.
	values[1] = 20
	l.Remove(&values[0])

	for n := l.Head(); n != nil; n = l.Next(n) {
		fmt.Println(n.Value())
	}

	// Output:
	// 20
	// 3
}

func ExampleSlot() {
	l := dllist.New[string](dllist.NewSlot[string]())

	hello, world := "hello", "world"
	if _, err := l.InsertBack(&hello); err != nil {
		panic(errors.Wrap(err, "insert the first value"))
	}

	_, err := l.InsertBack(&world)
	fmt.Println(errors.Is(err, dllist.ErrorSlotOccupied))

	l.Remove(&hello)
	if _, err := l.InsertBack(&world); err != nil {
		panic(errors.Wrap(err, "insert after removal"))
	}
	fmt.Println(l.Head().Value())

	// Output:
	// true
	// world
}
