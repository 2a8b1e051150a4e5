package Lists

import (
	"math/bits"

	"github.com/g-m-twostay/go-containers/Values"
)

// ranges shorter than this are insertion sorted.
const insertionThreshold = 16

// Sort [List.Sort]. Introsort over the linked nodes: insertion sort for short ranges,
// quicksort with a median-of-three pivot, and heapsort once 2*floor(log2 n) levels of
// quicksort have been used. Values are swapped between nodes, nodes are never relinked.
// Not stable.
// Time: O(n log n); Space: O(log n), O(n) while heapsorting.
func (u *Sequence) Sort() {
	if u.Len() < 2 {
		return
	}
	introSort(u.head, u.tail, 2*(bits.Len(uint(u.sz))-1))
}

// span is the number of nodes in [lo, hi].
func span(lo, hi *node) int {
	n := 1
	for ; lo != hi; lo = lo.next {
		n++
	}
	return n
}

// introSort the nodes in [lo, hi]; hi must be reachable from lo.
func introSort(lo, hi *node, depth int) {
	for lo != hi {
		n := span(lo, hi)
		if n < insertionThreshold {
			insertionSort(lo, hi)
			return
		}
		if depth == 0 {
			heapSort(lo, n)
			return
		}
		depth--
		p := partition(lo, hi, n)
		if p != lo {
			introSort(lo, p.prev, depth)
		}
		if p == hi {
			return
		}
		lo = p.next
	}
}

func insertionSort(lo, hi *node) {
	for cur := lo; cur != hi; {
		cur = cur.next
		for j := cur; j != lo && Values.Order(j.v, j.prev.v) < 0; j = j.prev {
			swap(j, j.prev)
		}
	}
}

// medianOfThree leaves lo.v <= mid.v <= hi.v.
func medianOfThree(lo, mid, hi *node) {
	if Values.Order(mid.v, lo.v) < 0 {
		swap(mid, lo)
	}
	if Values.Order(hi.v, mid.v) < 0 {
		swap(hi, mid)
		if Values.Order(mid.v, lo.v) < 0 {
			swap(mid, lo)
		}
	}
}

// partition [lo, hi] of n nodes around the median of lo, the middle node and hi.
// Returns the node holding the pivot: everything before it is <= pivot, everything after is > pivot.
func partition(lo, hi *node, n int) *node {
	mid := lo
	for i := n >> 1; i > 0; i-- {
		mid = mid.next
	}
	medianOfThree(lo, mid, hi)
	swap(mid, hi) //pivot waits at hi.
	store := lo
	for cur := lo; cur != hi; cur = cur.next {
		if Values.Order(cur.v, hi.v) <= 0 {
			swap(store, cur)
			store = store.next
		}
	}
	swap(store, hi)
	return store
}

// heapSort the n nodes starting at lo. The nodes are put in a temporary slice for random access.
func heapSort(lo *node, n int) {
	ns := make([]*node, n)
	for i := range ns {
		ns[i] = lo
		lo = lo.next
	}
	for i := (n - 1) >> 1; i >= 0; i-- {
		siftDown(ns, i, n)
	}
	for i := n - 1; i > 0; i-- {
		swap(ns[0], ns[i])
		siftDown(ns, 0, i)
	}
}

// siftDown keeps the max-heap property of ns[root:hi].
func siftDown(ns []*node, root, hi int) {
	for {
		child := 2*root + 1
		if child >= hi {
			return
		}
		if child+1 < hi && Values.Order(ns[child].v, ns[child+1].v) < 0 {
			child++
		}
		if Values.Order(ns[root].v, ns[child].v) >= 0 {
			return
		}
		swap(ns[root], ns[child])
		root = child
	}
}
