package Trees

import (
	"strings"

	"github.com/g-m-twostay/go-containers/Values"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the cached heights of subtrees, so
// that for every node the heights of its two subtrees differ by at most 1.
// The height D of the tree is less than 1.44*log2(n+2), which is O(log n).
// All elements have the same Values.Kind; the kind is fixed by the first
// insertion and released when the tree becomes empty again.
// A nil *AVLTree behaves as an empty tree for every method that doesn't insert.
type AVLTree struct {
	root *node
	sz   uint
	kind Values.Kind
	rev  bool //set by Invert, the tree is ordered descending
}

func New() *AVLTree {
	return new(AVLTree)
}

// cmp orders a and b the way the tree is currently laid out. a and b must have u.kind.
func (u *AVLTree) cmp(a, b Values.Value) int {
	c, _ := Values.Compare(a, b)
	if u.rev {
		return -c
	}
	return c
}

// fits reports whether v can be compared with the elements of u.
func (u *AVLTree) fits(v Values.Value) bool {
	return u.sz == 0 || v.Kind() == u.kind
}

// Size [Tree.Size]
// Time: O(1)
func (u *AVLTree) Size() uint {
	if u == nil {
		return 0
	}
	return u.sz
}

// Height [Tree.Height]
// Time: O(1)
func (u *AVLTree) Height() int {
	if u == nil {
		return -1
	}
	return height(u.root)
}

// insert the value v to the subtree rooting at cur recursively. cur is
// passed by reference. A successful insertion returns true. A failed insertion
// happens when the value is already in u, in which case it returns false.
// Every node on the path back to the root is rebalanced.
func (u *AVLTree) insert(curPtr **node, v Values.Value) bool {
	if cur := *curPtr; cur == nil {
		*curPtr = &node{v: v.Copy()}
		return true
	} else {
		inserted := false
		if c := u.cmp(v, cur.v); c < 0 {
			inserted = u.insert(&cur.l, v)
		} else if c == 0 {
			return false
		} else {
			inserted = u.insert(&cur.r, v)
		}
		if inserted {
			rebalance(curPtr)
		}
		return inserted
	}
}

// Insert [Tree.Insert]. Recursive.
// v of a different kind than the elements yields a *Values.KindMismatchError.
// Time: O(D)
func (u *AVLTree) Insert(v Values.Value) (bool, error) {
	if !u.fits(v) {
		return false, &Values.KindMismatchError{A: v.Kind(), B: u.kind}
	}
	if !u.insert(&u.root, v) {
		return false, nil
	}
	u.kind = v.Kind()
	u.sz++
	return true, nil
}

// remove an element v from the subtree rooting at cur recursively. cur is
// passed by reference. Returns false if the removal failed(v
// doesn't exist in u), otherwise true. A node with two children takes the value
// of its in-order successor, which is then removed from the right subtree.
// Every node on the path back to the root is rebalanced.
// Time: O(D)
func (u *AVLTree) remove(curPtr **node, v Values.Value) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	deleted := false
	if c := u.cmp(v, cur.v); c < 0 {
		deleted = u.remove(&cur.l, v)
	} else if c > 0 {
		deleted = u.remove(&cur.r, v)
	} else {
		deleted = true
		if cur.l == nil || cur.r == nil {
			if cur.l == nil {
				*curPtr = cur.r
			} else {
				*curPtr = cur.l
			}
			cur.v.Destroy()
			cur.l, cur.r = nil, nil
			return true
		}
		s := cur.r
		for s.l != nil {
			s = s.l
		}
		cur.v.Destroy()
		cur.v = s.v.Copy()
		u.remove(&cur.r, cur.v)
	}
	if deleted {
		rebalance(curPtr)
	}
	return deleted
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *AVLTree) Remove(v Values.Value) bool {
	if u.Size() == 0 || v.Kind() != u.kind || !u.remove(&u.root, v) {
		return false
	}
	if u.sz--; u.sz == 0 {
		u.kind = Values.Opaque
	}
	return true
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree) Has(v Values.Value) bool {
	if u.Size() == 0 || v.Kind() != u.kind {
		return false
	}
	for cur := u.root; cur != nil; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c == 0 {
			return true
		} else {
			cur = cur.r
		}
	}
	return false
}

// leftmost or rightmost element.
func (u *AVLTree) edge(left bool) (Values.Value, bool) {
	if u.Size() == 0 {
		return Values.Value{}, false
	}
	cur := u.root
	if left {
		for cur.l != nil {
			cur = cur.l
		}
	} else {
		for cur.r != nil {
			cur = cur.r
		}
	}
	return cur.v, true
}

// Minimum [Tree.Minimum]. The smallest element also after Invert.
// Time: O(D); Space: O(1)
func (u *AVLTree) Minimum() (Values.Value, bool) {
	return u.edge(!u.inverted())
}

// Maximum [Tree.Maximum]. The largest element also after Invert.
// Time: O(D); Space: O(1)
func (u *AVLTree) Maximum() (Values.Value, bool) {
	return u.edge(u.inverted())
}

func (u *AVLTree) inverted() bool {
	return u != nil && u.rev
}

// InOrder [Tree.InOrder]. This is ascending order, or descending after an odd
// number of calls to Invert.
// Time: O(n); Space: O(D)
func (u *AVLTree) InOrder(f func(Values.Value) bool) {
	if u == nil {
		return
	}
	st := make([]*node, 0, height(u.root)+1)
	for cur := u.root; cur != nil; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// InOrderR is InOrder from the right.
// Time: O(n); Space: O(D)
func (u *AVLTree) InOrderR(f func(Values.Value) bool) {
	if u == nil {
		return
	}
	st := make([]*node, 0, height(u.root)+1)
	for cur := u.root; cur != nil; cur = cur.r {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(cur.v) {
			return
		}
		for cur = cur.l; cur != nil; cur = cur.r {
			st = append(st, cur)
		}
	}
}

// Invert swaps the children of every node. The tree stays usable: it remembers
// that it's mirrored and compares the other way round until inverted again.
// Recursive.
// Time: O(n)
func (u *AVLTree) Invert() *AVLTree {
	if u == nil {
		return nil
	}
	invert(u.root)
	u.rev = !u.rev
	return u
}

// Copy the tree with the same shape and heights. Recursive.
// Time: O(n)
func (u *AVLTree) Copy() *AVLTree {
	if u == nil {
		return New()
	}
	return &AVLTree{copyNode(u.root), u.sz, u.kind, u.rev}
}

// Destroy every node and its Value. Always returns nil so that the handle can be
// reassigned: t = t.Destroy(). Recursive.
// Time: O(n)
func (u *AVLTree) Destroy() *AVLTree {
	if u != nil {
		destroy(u.root)
		*u = AVLTree{}
	}
	return nil
}

// String renders every node as <value, left, right>; an empty subtree renders as nothing.
// Meant for diagnostics. Recursive.
func (u *AVLTree) String() string {
	var sb strings.Builder
	if u != nil {
		writeNode(&sb, u.root)
	}
	return sb.String()
}

func writeNode(sb *strings.Builder, n *node) {
	if n == nil {
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.v.String())
	sb.WriteString(", ")
	writeNode(sb, n.l)
	sb.WriteString(", ")
	writeNode(sb, n.r)
	sb.WriteByte('>')
}

func (u *AVLTree) corrupt(cur *node, lo, hi *Values.Value) (uint, bool) {
	if cur == nil {
		return 0, false
	}
	if cur.v.Kind() != u.kind || (lo != nil && u.cmp(*lo, cur.v) >= 0) || (hi != nil && u.cmp(cur.v, *hi) >= 0) {
		return 0, true
	}
	if cur.h != 1+max(height(cur.l), height(cur.r)) || balance(cur) > 1 || balance(cur) < -1 {
		return 0, true
	}
	ln, lb := u.corrupt(cur.l, lo, &cur.v)
	rn, rb := u.corrupt(cur.r, &cur.v, hi)
	return ln + rn + 1, lb || rb
}

// Corrupt [Tree.Corrupt]. Checks ordering, cached heights, balance factors and size.
// Recursive.
// Time: O(n)
func (u *AVLTree) Corrupt() bool {
	if u == nil {
		return false
	}
	n, bad := u.corrupt(u.root, nil, nil)
	return bad || n != u.sz
}
