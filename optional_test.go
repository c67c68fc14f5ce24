package expect_test

import (
	"testing"

	"github.com/expectkit/expect"
	"github.com/expectkit/expect/optional"
)

func TestOptionalIsPresent(t *testing.T) {
	expect.Optional(t, optional.New("something")).IsPresent()

	expectFailure(t, "to contain a value but it was empty", func(mt *mockT) {
		expect.Optional(mt, optional.Empty[string]()).IsPresent()
	})
}

func TestOptionalIsEmpty(t *testing.T) {
	expect.Optional(t, optional.Empty[string]()).IsEmpty()

	expectFailure(t, "to be empty but was", func(mt *mockT) {
		expect.Optional(mt, optional.New("something")).IsEmpty()
	})
}

func TestOptionalContains(t *testing.T) {
	expect.Optional(t, optional.New("something")).Contains("something")
	expect.Optional(t, optional.New(10)).Contains(10)

	// mismatch names both the container and the expected value
	expectFailure(t, `Optional\[not-expected\](.|\n)*to contain:(.|\n)*something`, func(mt *mockT) {
		expect.Optional(mt, optional.New("not-expected")).Contains("something")
	})

	// empty container names only the expected value
	expectFailure(t, `Expecting Optional to contain:(.|\n)*something(.|\n)*but was empty`, func(mt *mockT) {
		expect.Optional(mt, optional.Empty[string]()).Contains("something")
	})
}

func TestOptionalContainsNilExpected(t *testing.T) {
	v := "something"
	expectBadCall(t, "expected contained value must not be nil", func() {
		expect.Optional(&mockT{}, optional.New(&v)).Contains(nil)
	})
	// the caller-contract check applies regardless of the container's state
	expectBadCall(t, "expected contained value must not be nil", func() {
		expect.Optional(&mockT{}, optional.Empty[*string]()).Contains(nil)
	})
}

func TestOptionalChaining(t *testing.T) {
	expect.Optional(t, optional.New("something")).
		IsPresent().
		Contains("something")
}

func TestOptionalNilActual(t *testing.T) {
	checks := []func(a *expect.OptionalAssert[string]){
		func(a *expect.OptionalAssert[string]) { a.IsPresent() },
		func(a *expect.OptionalAssert[string]) { a.IsEmpty() },
		func(a *expect.OptionalAssert[string]) { a.Contains("something") },
	}
	for _, check := range checks {
		check := check
		expectFailure(t, "not to be nil", func(mt *mockT) {
			check(expect.OptionalPtr[string](mt, nil))
		})
	}

	o := optional.New("something")
	expect.OptionalPtr(t, &o).IsPresent()
}
