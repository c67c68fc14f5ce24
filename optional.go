package expect

import (
	"github.com/stretchr/testify/assert"

	opt "github.com/expectkit/expect/optional"
)

// OptionalAssert checks an optional-container subject.
type OptionalAssert[T any] struct {
	base
	actual *opt.Optional[T]
}

// Optional begins an assertion chain on an optional container.
func Optional[T any](t TestingT, actual opt.Optional[T]) *OptionalAssert[T] {
	return &OptionalAssert[T]{base{t}, &actual}
}

// OptionalPtr is Optional for a possibly-absent subject. Every check first
// fails with the standard nil-subject failure when actual is nil.
func OptionalPtr[T any](t TestingT, actual *opt.Optional[T]) *OptionalAssert[T] {
	return &OptionalAssert[T]{base{t}, actual}
}

// IsPresent verifies that the container holds a value.
func (a *OptionalAssert[T]) IsPresent() *OptionalAssert[T] {
	a.helper()
	a.requireNotNil(a.actual)
	if !a.actual.Present() {
		a.fail(kindShouldBePresent)
	}
	return a
}

// IsEmpty verifies that the container holds no value.
func (a *OptionalAssert[T]) IsEmpty() *OptionalAssert[T] {
	a.helper()
	a.requireNotNil(a.actual)
	if a.actual.Present() {
		a.fail(kindShouldBeEmpty, a.actual.String())
	}
	return a
}

// Contains verifies that the container holds a value equal to expected.
// A nil expected value is a caller-contract violation, not an assertion
// outcome.
func (a *OptionalAssert[T]) Contains(expected T) *OptionalAssert[T] {
	a.helper()
	a.requireNotNil(a.actual)
	if isNilValue(expected) {
		badCallf("the expected contained value must not be nil")
	}
	got, present := a.actual.Get()
	if !present {
		a.fail(kindShouldContainButEmpty, expected)
		return a
	}
	if !assert.ObjectsAreEqual(got, expected) {
		a.fail(kindShouldContain, a.actual.String(), expected)
	}
	return a
}
