package Trees

import (
	"fmt"

	"github.com/g-m-twostay/go-containers/Values"
)

// Tree represents a search tree of Values implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x Values.Value, false bool), and
// x shouldn't be used.
// A Tree copies the Values inserted into it and owns the copies. Values passed
// to callbacks are still owned by the tree and must be copied to be kept.
// Methods implemented recursively are noted, otherwise they are iterative.
type Tree interface {
	//Insert v to the Tree. Returning true if successful, false if an equal
	//element is already there. error is non nil when v can't be compared with
	//the elements of the Tree.
	Insert(v Values.Value) (bool, error)
	//Remove v from the Tree. Returning true if successful, false otherwise.
	Remove(v Values.Value) bool
	//Has element v.
	Has(v Values.Value) bool
	//Minimum element of the tree.
	Minimum() (Values.Value, bool)
	//Maximum element of the tree.
	Maximum() (Values.Value, bool)
	//Size of the tree.
	Size() uint
	//Height of the tree; a single node has height 0, the empty tree -1.
	Height() int
	//InOrder calls f on the elements in order until f returns false.
	//The tree mustn't be modified by f.
	InOrder(f func(Values.Value) bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
	fmt.Stringer
}

var _ Tree = (*AVLTree)(nil)
