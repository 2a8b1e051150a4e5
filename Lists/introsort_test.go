package Lists

import (
	"bytes"
	"math"
	"testing"

	"github.com/cornelk/hashmap"
	"github.com/g-m-twostay/go-containers/Values"
)

func sorted(u *Sequence) bool {
	for cur := u.first(); cur != nil && cur.next != nil; cur = cur.next {
		if Values.Order(cur.v, cur.next.v) > 0 {
			return false
		}
	}
	return true
}

// counts of every Value in u keyed by its hash.
func counts(u *Sequence) *hashmap.Map[uint64, int] {
	m := hashmap.New[uint64, int]()
	u.Range(func(v Values.Value) bool {
		c, _ := m.Get(v.Hash())
		m.Set(v.Hash(), c+1)
		return true
	})
	return m
}

func samePermutation(t *testing.T, a, b *Sequence) {
	t.Helper()
	ca, cb := counts(a), counts(b)
	if ca.Len() != cb.Len() {
		t.Errorf("%d distinct values, want %d", cb.Len(), ca.Len())
	}
	ca.Range(func(k uint64, n int) bool {
		if m, _ := cb.Get(k); m != n {
			t.Errorf("value with hash %x appears %d times, want %d", k, m, n)
		}
		return true
	})
}

func randomInts(n int, valRange int64) *Sequence {
	u := New()
	for range n {
		u.PushBack(Values.FromInt(rg.Int63n(valRange)))
	}
	return u
}

func TestSort_Small(t *testing.T) {
	u := fromInts(5, 3, 8, 1, 9, 2)
	u.Sort()
	if got := ints(u); !equalInts(got, []int64{1, 2, 3, 5, 8, 9}) {
		t.Errorf("sorted is %v, want [1 2 3 5 8 9]", got)
	}
}

func TestSort_Trivial(t *testing.T) {
	var n *Sequence
	n.Sort()
	u := New()
	u.Sort()
	if u.Len() != 0 {
		t.Errorf("sorting empty sequence added elements")
	}
	u.PushBack(Values.FromInt(4)).Sort()
	if got := ints(u); !equalInts(got, []int64{4}) {
		t.Errorf("sorting single element gave %v", got)
	}
}

func TestSort_Descending(t *testing.T) {
	u := New()
	for i := 1000; i > 0; i-- {
		u.PushBack(Values.FromInt(i))
	}
	u.Sort()
	i := int64(1)
	u.Range(func(v Values.Value) bool {
		if g, _ := v.Int(); g != i {
			t.Fatalf("position %d holds %d", i-1, g)
		}
		i++
		return true
	})
	if u.corrupt() {
		t.Errorf("sequence is corrupt")
	}
}

func TestSort_Patterns(t *testing.T) {
	const n = 3000
	patterns := map[string]func(i int) int64{
		"ascending": func(i int) int64 { return int64(i) },
		"constant":  func(i int) int64 { return 7 },
		"organ":     func(i int) int64 { return int64(min(i, n-i)) },
		"sawtooth":  func(i int) int64 { return int64(i % 17) },
		"random":    func(i int) int64 { return rg.Int63n(n) },
	}
	for name, f := range patterns {
		u := New()
		for i := range n {
			u.PushBack(Values.FromInt(f(i)))
		}
		c := u.Copy()
		u.Sort()
		if !sorted(u) {
			t.Errorf("%s input is not sorted", name)
		}
		samePermutation(t, c, u)
		if u.Len() != n || u.corrupt() {
			t.Errorf("%s input corrupted the sequence", name)
		}
	}
}

func TestSort_Random(t *testing.T) {
	for range 100 {
		u := randomInts(rg.Intn(500), int64(rg.Intn(1000)+1))
		c := u.Copy()
		u.Sort()
		if !sorted(u) {
			t.Fatalf("not sorted: %v", u)
		}
		samePermutation(t, c, u)
	}
}

func TestSort_Idempotent(t *testing.T) {
	u := New()
	for range 2000 {
		switch rg.Intn(3) {
		case 0:
			u.PushBack(Values.FromFloat(float64(rg.Intn(10))))
		case 1:
			u.PushBack(Values.FromFloat(math.Copysign(0, -1)))
		case 2:
			u.PushBack(Values.FromFloat(0.0))
		}
	}
	u.Sort()
	once := u.Slice()
	u.Sort()
	twice := u.Slice()
	for i := range once {
		if !bytes.Equal(once[i].Bytes(), twice[i].Bytes()) {
			t.Fatalf("position %d changed from %v to %v", i, once[i], twice[i])
		}
	}
}

func TestSort_MixedKinds(t *testing.T) {
	u := New()
	for range 1000 {
		switch rg.Intn(3) {
		case 0:
			u.PushBack(Values.FromInt(rg.Intn(100)))
		case 1:
			u.PushBack(Values.FromText(string(rune('a' + rg.Intn(26)))))
		case 2:
			u.PushBack(Values.FromFloat(rg.Float64()))
		}
	}
	c := u.Copy()
	u.Sort()
	if !sorted(u) {
		t.Errorf("mixed kinds are not sorted")
	}
	samePermutation(t, c, u)
	prev := Values.Opaque
	u.Range(func(v Values.Value) bool {
		if v.Kind() < prev {
			t.Errorf("%s value after %s values", v.Kind(), prev)
		}
		prev = v.Kind()
		return true
	})
}

func TestHeapSort(t *testing.T) {
	u := randomInts(5000, 100)
	c := u.Copy()
	introSort(u.head, u.tail, 0)
	if !sorted(u) {
		t.Errorf("heapsort fallback is not sorted")
	}
	samePermutation(t, c, u)
}

func TestInsertionSort(t *testing.T) {
	u := fromInts(9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 5, 5, 1)
	insertionSort(u.head.next, u.tail.prev)
	if got := ints(u); !equalInts(got, []int64{9, 0, 1, 2, 3, 4, 5, 5, 5, 6, 7, 8, 1}) {
		t.Errorf("insertion sort of the inner range gave %v", got)
	}
}

func TestPartition(t *testing.T) {
	u := randomInts(100, 50)
	p := partition(u.head, u.tail, u.Len())
	for cur := u.head; cur != p; cur = cur.next {
		if Values.Order(cur.v, p.v) > 0 {
			t.Errorf("%v before pivot %v", cur.v, p.v)
		}
	}
	for cur := p.next; cur != nil; cur = cur.next {
		if Values.Order(cur.v, p.v) <= 0 {
			t.Errorf("%v after pivot %v", cur.v, p.v)
		}
	}
}

func BenchmarkSort(b *testing.B) {
	u := randomInts(100000, math.MaxInt64)
	vs := u.Slice()
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		cur := u.head
		for _, v := range vs {
			cur.v = v
			cur = cur.next
		}
		b.StartTimer()
		u.Sort()
	}
}
