package optional

import "fmt"

// Optional holds zero or one value of type T. The zero value is empty.
type Optional[T any] struct {
	present bool
	value   T
}

func New[T any](v T) Optional[T] {
	return Optional[T]{true, v}
}

func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Present() bool {
	return o.present
}

// Get returns the contained value and whether one is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) MustGet() T {
	if !o.present {
		panic("Optional.MustGet: value not present")
	}
	return o.value
}

func (o *Optional[T]) Set(v T) {
	o.present = true
	o.value = v
}

func (o *Optional[T]) Clear() {
	*o = Optional[T]{}
}

// GetOr returns the contained value, or dflt when empty.
func (o Optional[T]) GetOr(dflt T) T {
	if !o.present {
		return dflt
	}
	return o.value
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
