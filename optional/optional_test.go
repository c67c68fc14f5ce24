package optional_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/expectkit/expect/optional"
)

func TestOptional(t *testing.T) {
	rq := require.New(t)

	o := optional.New("something")
	rq.True(o.Present())
	rq.Equal("something", o.MustGet())
	v, ok := o.Get()
	rq.True(ok)
	rq.Equal("something", v)
	rq.Equal("Optional[something]", o.String())

	e := optional.Empty[string]()
	rq.False(e.Present())
	_, ok = e.Get()
	rq.False(ok)
	rq.Equal("Optional.empty", e.String())
	rq.Equal("dflt", e.GetOr("dflt"))
	rq.Equal("something", o.GetOr("dflt"))

	// zero value is empty
	var z optional.Optional[int]
	rq.False(z.Present())
}

func TestOptionalMustGetPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		require.Regexp(t, "value not present", r)
	}()
	optional.Empty[int]().MustGet()
}

func TestOptionalSetClear(t *testing.T) {
	rq := require.New(t)

	var o optional.Optional[int]
	o.Set(42)
	rq.True(o.Present())
	rq.Equal(42, o.MustGet())
	o.Clear()
	rq.False(o.Present())
}

func TestOptionalStructValues(t *testing.T) {
	rq := require.New(t)

	type pair struct {
		A, B int
	}
	o := optional.New(pair{1, 2})
	got, ok := o.Get()
	rq.True(ok)
	rq.Empty(cmp.Diff(pair{1, 2}, got))
}
