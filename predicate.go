package expect

// ValueAssert checks an arbitrary subject against caller-supplied boolean
// conditions.
type ValueAssert[T any] struct {
	base
	actual T
}

// That begins an assertion chain on any value.
func That[T any](t TestingT, actual T) *ValueAssert[T] {
	return &ValueAssert[T]{base{t}, actual}
}

// Satisfies verifies that cond evaluates to true on the subject. cond is
// opaque to the assertion and invoked exactly once.
func (a *ValueAssert[T]) Satisfies(cond func(T) bool) *ValueAssert[T] {
	return a.verifyCondition(cond, true, kindShouldSatisfy)
}

// NotSatisfies verifies that cond evaluates to false on the subject.
func (a *ValueAssert[T]) NotSatisfies(cond func(T) bool) *ValueAssert[T] {
	return a.verifyCondition(cond, false, kindShouldNotSatisfy)
}

func (a *ValueAssert[T]) verifyCondition(
	cond func(T) bool, want bool, kind failureKind) *ValueAssert[T] {

	a.helper()
	a.requireNotNil(a.actual)
	if cond == nil {
		badCallf("the condition must not be nil")
	}
	if cond(a.actual) != want {
		a.fail(kind, a.actual)
	}
	return a
}
