package Values

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"encoding/hex"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/emirpasic/gods/utils"
	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

// FloatPrecision is the number of digits String prints after the decimal point of a Float.
const FloatPrecision = 2

// Value is a tagged byte buffer. Every constructor copies the given data, so a Value
// never aliases memory of the caller. Copying the struct shares the buffer; use Copy
// to obtain an independent one.
// The zero value is an empty Opaque Value.
type Value struct {
	kind Kind
	buf  []byte
}

var (
	_ utils.Comparator      = Comparator
	_ btree.LessFunc[Value] = Less
)

// Wrap copies data into a new Value of kind k. Fixed size kinds must be given exactly
// their width, otherwise a *SizeError is returned; a k outside the known kinds yields
// a *KindError. Any non zero byte wrapped as Bool is true.
func Wrap(data []byte, k Kind) (Value, error) {
	if k > Text {
		return Value{}, &KindError{k}
	}
	if w := k.width(); w != 0 && len(data) != w {
		return Value{}, &SizeError{k, w, len(data)}
	}
	if k == Bool {
		return FromBool(data[0] != 0), nil
	}
	return Value{k, bytes.Clone(data)}, nil
}

func FromInt[T constraints.Integer](v T) Value {
	return Value{Int, binary.LittleEndian.AppendUint64(make([]byte, 0, 8), uint64(int64(v)))}
}

func FromFloat[T constraints.Float](v T) Value {
	return Value{Float, binary.LittleEndian.AppendUint64(make([]byte, 0, 8), math.Float64bits(float64(v)))}
}

func FromChar(r rune) Value {
	return Value{Char, binary.LittleEndian.AppendUint32(make([]byte, 0, 4), uint32(r))}
}

func FromBool(b bool) Value {
	if b {
		return Value{Bool, []byte{1}}
	}
	return Value{Bool, []byte{0}}
}

func FromText(s string) Value {
	return Value{Text, []byte(s)}
}

// FromBytes wraps a caller-defined payload as Opaque.
func FromBytes(b []byte) Value {
	return Value{Opaque, bytes.Clone(b)}
}

func (u Value) Kind() Kind {
	return u.kind
}

// Size of the owned buffer in bytes.
func (u Value) Size() int {
	return len(u.buf)
}

// Bytes returns a copy of the owned buffer.
func (u Value) Bytes() []byte {
	return bytes.Clone(u.buf)
}

func (u Value) Int() (int64, bool) {
	if u.kind != Int {
		return 0, false
	}
	return int64(binary.LittleEndian.Uint64(u.buf)), true
}

func (u Value) Float() (float64, bool) {
	if u.kind != Float {
		return 0, false
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(u.buf)), true
}

func (u Value) Char() (rune, bool) {
	if u.kind != Char {
		return 0, false
	}
	return rune(binary.LittleEndian.Uint32(u.buf)), true
}

func (u Value) Bool() (bool, bool) {
	if u.kind != Bool {
		return false, false
	}
	return u.buf[0] != 0, true
}

func (u Value) Text() (string, bool) {
	if u.kind != Text {
		return "", false
	}
	return string(u.buf), true
}

// Copy returns a Value with an independent, identical buffer.
// Time: O(Size)
func (u Value) Copy() Value {
	return Value{u.kind, bytes.Clone(u.buf)}
}

// Destroy drops the owned buffer and leaves u as the zero Value.
func (u *Value) Destroy() {
	*u = Value{}
}

// Hash of the kind and the bytes.
func (u Value) Hash() uint64 {
	d := xxhash.New()
	d.Write([]byte{byte(u.kind)})
	d.Write(u.buf)
	return d.Sum64()
}

func (u Value) String() string {
	switch u.kind {
	case Int:
		i, _ := u.Int()
		return strconv.FormatInt(i, 10)
	case Float:
		f, _ := u.Float()
		return strconv.FormatFloat(f, 'f', FloatPrecision, 64)
	case Char:
		r, _ := u.Char()
		return string(r)
	case Bool:
		b, _ := u.Bool()
		return strconv.FormatBool(b)
	case Text:
		return string(u.buf)
	}
	return "0x" + hex.EncodeToString(u.buf)
}

// Raw renders the first n bytes of the buffer as they are. n is clamped to [0, Size].
func (u Value) Raw(n int) string {
	return string(u.buf[:max(0, min(n, len(u.buf)))])
}

// Compare a and b according to their kind. Returns -1, 0 or +1. Values of different
// kinds aren't comparable and yield a *KindMismatchError.
func Compare(a, b Value) (int, error) {
	if a.kind != b.kind {
		return 0, &KindMismatchError{a.kind, b.kind}
	}
	return compare(a, b), nil
}

func compare(a, b Value) int {
	switch a.kind {
	case Int:
		x, _ := a.Int()
		y, _ := b.Int()
		return cmp.Compare(x, y)
	case Float:
		x, _ := a.Float()
		y, _ := b.Float()
		return cmp.Compare(x, y)
	case Char:
		x, _ := a.Char()
		y, _ := b.Char()
		return cmp.Compare(x, y)
	case Bool:
		return cmp.Compare(a.buf[0], b.buf[0])
	}
	return bytes.Compare(a.buf, b.buf)
}

// Order is a total order over all Values: by kind first, then as Compare, then by the
// raw bytes. Order(a, b)==0 only if a and b have the same kind and identical bytes.
func Order(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	if c := compare(a, b); c != 0 {
		return c
	}
	return bytes.Compare(a.buf, b.buf)
}

// Less reports Order(a, b) < 0. It can be used as a btree.LessFunc, e.g. btree.NewG(32, Less).
func Less(a, b Value) bool {
	return Order(a, b) < 0
}

// Comparator is Order for containers taking a utils.Comparator, such as gods'
// avltree.NewWith(Comparator) or treemap.NewWith(Comparator). Both arguments must be Value.
func Comparator(a, b interface{}) int {
	return Order(a.(Value), b.(Value))
}
