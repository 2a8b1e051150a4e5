package Lists

import (
	"cmp"
	"strings"

	"github.com/g-m-twostay/go-containers/Values"
)

// Sequence is a doubly linked list of Values kept in insertion order.
// head and tail are both nil iff sz==0.
// A nil *Sequence behaves as an empty one for every method that doesn't insert.
type Sequence struct {
	head, tail *node
	sz         int
}

func New() *Sequence {
	return new(Sequence)
}

// From builds a Sequence holding copies of vs in the given order.
func From(vs ...Values.Value) *Sequence {
	u := New()
	for _, v := range vs {
		u.PushBack(v)
	}
	return u
}

func (u *Sequence) Len() int {
	if u == nil {
		return 0
	}
	return u.sz
}

func (u *Sequence) first() *node {
	if u == nil {
		return nil
	}
	return u.head
}

// PushFront a copy of v.
// Time: O(1)
func (u *Sequence) PushFront(v Values.Value) *Sequence {
	n := &node{v: v.Copy(), next: u.head}
	if u.head == nil {
		u.tail = n
	} else {
		u.head.prev = n
	}
	u.head = n
	u.sz++
	return u
}

// PushBack a copy of v.
// Time: O(1)
func (u *Sequence) PushBack(v Values.Value) *Sequence {
	n := &node{v: v.Copy(), prev: u.tail}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.next = n
	}
	u.tail = n
	u.sz++
	return u
}

func (u *Sequence) unlink(n *node) {
	if n.prev == nil {
		u.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		u.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next, n.prev = nil, nil
	u.sz--
}

// PopFront [List.PopFront]. The returned Value is owned by the caller.
// Time: O(1)
func (u *Sequence) PopFront() (Values.Value, error) {
	if u.Len() == 0 {
		return Values.Value{}, &EmptyListError{}
	}
	n := u.head
	u.unlink(n)
	return n.v, nil
}

// PopBack [List.PopBack]. The returned Value is owned by the caller.
// Time: O(1)
func (u *Sequence) PopBack() (Values.Value, error) {
	if u.Len() == 0 {
		return Values.Value{}, &EmptyListError{}
	}
	n := u.tail
	u.unlink(n)
	return n.v, nil
}

// at walks to position i from the nearer end. Returns nil if i is out of [0, Len()).
// Time: O(min(i, Len()-i))
func (u *Sequence) at(i int) *node {
	if i < 0 || i >= u.Len() {
		return nil
	}
	if i < u.sz-i {
		cur := u.head
		for ; i > 0; i-- {
			cur = cur.next
		}
		return cur
	}
	cur := u.tail
	for i = u.sz - 1 - i; i > 0; i-- {
		cur = cur.prev
	}
	return cur
}

// RemoveAt [List.RemoveAt]. The Sequence is unchanged when i is out of range.
// Time: O(min(i, Len()-i))
func (u *Sequence) RemoveAt(i int) bool {
	if n := u.at(i); n != nil {
		u.unlink(n)
		n.v.Destroy()
		return true
	}
	return false
}

// SearchAt [List.SearchAt]. The reference stays owned by u.
// Time: O(min(i, Len()-i))
func (u *Sequence) SearchAt(i int) (*Values.Value, bool) {
	if n := u.at(i); n != nil {
		return &n.v, true
	}
	return nil, false
}

// IndexOf [List.IndexOf]. Elements of a different kind than v never match.
// Time: O(Len())
func (u *Sequence) IndexOf(v Values.Value) (int, bool) {
	i := 0
	for cur := u.first(); cur != nil; cur = cur.next {
		if c, err := Values.Compare(cur.v, v); err == nil && c == 0 {
			return i, true
		}
		i++
	}
	return -1, false
}

// Range [List.Range]
func (u *Sequence) Range(f func(Values.Value) bool) {
	for cur := u.first(); cur != nil && f(cur.v); cur = cur.next {
	}
}

// RangeR is Range from tail to head.
func (u *Sequence) RangeR(f func(Values.Value) bool) {
	if u == nil {
		return
	}
	for cur := u.tail; cur != nil && f(cur.v); cur = cur.prev {
	}
}

// Slice returns copies of the elements in order.
func (u *Sequence) Slice() []Values.Value {
	s := make([]Values.Value, 0, u.Len())
	u.Range(func(v Values.Value) bool {
		s = append(s, v.Copy())
		return true
	})
	return s
}

// Copy the Sequence element by element.
// Time: O(Len())
func (u *Sequence) Copy() *Sequence {
	c := New()
	for cur := u.first(); cur != nil; cur = cur.next {
		c.PushBack(cur.v)
	}
	return c
}

// Destroy every node and its Value. Always returns nil so that the handle can be
// reassigned: s = s.Destroy().
func (u *Sequence) Destroy() *Sequence {
	for cur := u.first(); cur != nil; {
		next := cur.next
		cur.v.Destroy()
		cur.next, cur.prev = nil, nil
		cur = next
	}
	if u != nil {
		*u = Sequence{}
	}
	return nil
}

func (u *Sequence) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for cur := u.first(); cur != nil; cur = cur.next {
		if cur != u.head {
			sb.WriteString(", ")
		}
		sb.WriteString(cur.v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Compare a and b by length first, then element by element in Values.Order.
func Compare(a, b *Sequence) int {
	if c := cmp.Compare(a.Len(), b.Len()); c != 0 {
		return c
	}
	for x, y := a.first(), b.first(); x != nil; x, y = x.next, y.next {
		if c := Values.Order(x.v, y.v); c != 0 {
			return c
		}
	}
	return 0
}

// Merge two Sequences already sorted in Values.Order into a new sorted Sequence.
// Elements that compare equal keep a's first. Neither input is modified, and neither is sorted here.
// Time: O(a.Len()+b.Len())
func Merge(a, b *Sequence) *Sequence {
	m := New()
	x, y := a.first(), b.first()
	for x != nil && y != nil {
		if loose(x.v, y.v) <= 0 {
			m.PushBack(x.v)
			x = x.next
		} else {
			m.PushBack(y.v)
			y = y.next
		}
	}
	for ; x != nil; x = x.next {
		m.PushBack(x.v)
	}
	for ; y != nil; y = y.next {
		m.PushBack(y.v)
	}
	return m
}

// loose is Values.Compare, falling back to Values.Order for Values of different kinds.
func loose(a, b Values.Value) int {
	if c, err := Values.Compare(a, b); err == nil {
		return c
	}
	return Values.Order(a, b)
}
