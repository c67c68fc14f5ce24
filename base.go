package expect

import "github.com/stretchr/testify/require"

// base is the capability every assertion wrapper composes: it carries the
// TestingT and exposes the nil-subject check and failure reporting.
type base struct {
	t TestingT
}

func (b base) helper() {
	if h, ok := b.t.(tHelper); ok {
		h.Helper()
	}
}

// requireNotNil fails with testify's standard nil-value failure when the
// wrapped subject is nil. Every operation that dereferences the subject
// runs this first.
func (b base) requireNotNil(subject interface{}) {
	b.helper()
	require.NotNil(b.t, subject)
}

func (b base) fail(kind failureKind, operands ...interface{}) {
	b.helper()
	reportFailure(b.t, failure{kind, operands})
}
