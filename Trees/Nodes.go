package Trees

import "github.com/g-m-twostay/go-containers/Values"

// A node in the AVLTree. It owns v and its children.
// h is the cached height of the subtree rooting at this node: a leaf has h=0.
type node struct {
	v    Values.Value
	l, r *node
	h    int
}

// height of the subtree n, -1 for the empty one.
func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.h
}

func (n *node) update() {
	n.h = 1 + max(height(n.l), height(n.r))
}

// balance factor of n: height of the left minus height of the right subtree.
func balance(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.l) - height(n.r)
}

// rotateLeft performs a left rotation on *n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft(n **node) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	r.update()
	rc.update()
	*n = rc
}

// rotateRight performs a right rotation on *n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateRight(n **node) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	r.update()
	lc.update()
	*n = lc
}

// rebalance *n after one of its subtrees changed height by at most 1.
// Time: O(1)
func rebalance(n **node) {
	cur := *n
	cur.update()
	if b := balance(cur); b > 1 {
		if balance(cur.l) < 0 {
			rotateLeft(&cur.l)
		}
		rotateRight(n)
	} else if b < -1 {
		if balance(cur.r) > 0 {
			rotateRight(&cur.r)
		}
		rotateLeft(n)
	}
}

func copyNode(n *node) *node {
	if n == nil {
		return nil
	}
	return &node{n.v.Copy(), copyNode(n.l), copyNode(n.r), n.h}
}

// destroy the subtree in post-order.
func destroy(n *node) {
	if n != nil {
		destroy(n.l)
		destroy(n.r)
		n.v.Destroy()
		n.l, n.r = nil, nil
	}
}

func invert(n *node) {
	if n != nil {
		n.l, n.r = n.r, n.l
		invert(n.l)
		invert(n.r)
	}
}
