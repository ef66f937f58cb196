package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deploymenttheory/go-vector/internal/ubcheck"
	"github.com/deploymenttheory/go-vector/pkg/vector"
)

type (
	checkerVec = vector.Vector[ubcheck.Checker]
	nestedVec  = vector.Vector[checkerVec]
)

// trackLifecycle resets the live counter and asserts on cleanup that every
// Checker created by the test was destroyed exactly once.
func trackLifecycle(t *testing.T) {
	t.Helper()
	ubcheck.Reset()
	t.Cleanup(func() {
		assert.Equal(t, int64(0), ubcheck.Live(), "live checkers remain after test")
	})
}

func checkers(values ...int) checkerVec {
	cs := make([]ubcheck.Checker, len(values))
	for i, value := range values {
		cs[i] = ubcheck.New(value)
	}
	return vector.Of(cs...)
}

func values(v *checkerVec) []int {
	out := make([]int, 0, v.Len())
	for c := range v.Values() {
		out = append(out, c.Value())
	}
	return out
}

func nestedValues(v *nestedVec) [][]int {
	out := make([][]int, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, values(v.At(i)))
	}
	return out
}

func equalCheckers(a, b *checkerVec) bool {
	return vector.EqualFunc(a, b, ubcheck.Checker.Equal)
}
