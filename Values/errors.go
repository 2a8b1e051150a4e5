package Values

import "fmt"

// KindMismatchError is returned when two Values of different kinds are compared.
type KindMismatchError struct {
	A, B Kind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("cannot compare %s with %s", e.A, e.B)
}

// SizeError is returned by Wrap when the data doesn't fit a fixed size kind.
type SizeError struct {
	Kind      Kind
	Want, Got int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s needs %d bytes, got %d", e.Kind, e.Want, e.Got)
}

// KindError is returned by Wrap for a Kind that isn't one of the declared constants.
type KindError struct {
	Kind Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("unknown kind %d", uint8(e.Kind))
}
