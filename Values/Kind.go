package Values

// Kind tells how the bytes of a Value are interpreted and compared.
// The zero Kind is Opaque.
type Kind uint8

const (
	Opaque Kind = iota // caller-defined payload, compared byte by byte
	Int                // int64, little-endian
	Float              // float64 bits, little-endian
	Char               // int32 rune, little-endian
	Bool               // single byte, 0 or 1
	Text               // utf-8 bytes, compared byte by byte
)

var kindNames = [...]string{"opaque", "int", "float", "char", "bool", "text"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// width of the fixed size kinds, 0 means variable.
func (k Kind) width() int {
	switch k {
	case Int, Float:
		return 8
	case Char:
		return 4
	case Bool:
		return 1
	}
	return 0
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return Opaque, false
}
