package Lists

import "github.com/g-m-twostay/go-containers/Values"

// A node in the Sequence. It owns v; next and prev are links to its neighbors.
type node struct {
	v          Values.Value
	next, prev *node
}

// swap the payloads of a and b, the links stay where they are.
func swap(a, b *node) {
	a.v, b.v = b.v, a.v
}
