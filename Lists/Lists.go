package Lists

import (
	"fmt"

	"github.com/g-m-twostay/go-containers/Values"
)

// List is the operation surface of a doubly linked sequence of Values.
// Methods returning a bool as a second value report whether the first one is defined.
// Every List copies the Values given to it and owns the copies.
type List interface {
	//PopFront removes the first element. Returns *EmptyListError when the List is empty.
	PopFront() (Values.Value, error)
	//PopBack removes the last element. Returns *EmptyListError when the List is empty.
	PopBack() (Values.Value, error)
	//RemoveAt removes the element at position i, 0<=i<Len().
	RemoveAt(i int) bool
	//SearchAt returns a reference to the element at position i, 0<=i<Len().
	SearchAt(i int) (*Values.Value, bool)
	//IndexOf the first element that compares equal to v.
	IndexOf(v Values.Value) (int, bool)
	//Sort the List in ascending Values.Order.
	Sort()
	//Range over the elements from head to tail until f returns false.
	Range(f func(Values.Value) bool)
	Len() int
	fmt.Stringer
}

var _ List = (*Sequence)(nil)

type EmptyListError struct {
}

func (e *EmptyListError) Error() string {
	return "List is Empty: cannot Pop."
}
