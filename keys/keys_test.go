package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

func TestOfIsDeterministic(t *testing.T) {
	assert.Equal(t, Of("/tmp/a.json"), Of("/tmp/a.json"))
	assert.Equal(t, Of(point{1, 2}, []int{3}), Of(point{1, 2}, []int{3}))
}

func TestOfIsOrderSensitive(t *testing.T) {
	assert.NotEqual(t, Of("a", "b"), Of("b", "a"))
	assert.NotEqual(t, Of([]int{1, 2}), Of([]int{2, 1}))
}

func TestOfDistinguishesTypes(t *testing.T) {
	assert.NotEqual(t, Of(1), Of("1"))
	assert.NotEqual(t, Of(int32(1)), Of(int64(1)))
	assert.NotEqual(t, Of(nil), Of("nil"))
}

func TestOfNamedIgnoresNameOrder(t *testing.T) {
	a := OfNamed([]any{"p"}, map[string]any{"mode": "r", "limit": 10})
	b := OfNamed([]any{"p"}, map[string]any{"limit": 10, "mode": "r"})
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, OfNamed([]any{"p"}, map[string]any{"mode": "w", "limit": 10}))
	assert.NotEqual(t, a, Of("p"))
}

func TestOfNamedMatchesStructurallyEqualMaps(t *testing.T) {
	m1 := map[string]int{"a": 1, "b": 2}
	m2 := map[string]int{"b": 2, "a": 1}
	assert.Equal(t, Of(m1), Of(m2))
}

func TestOfIsTotal(t *testing.T) {
	ch := make(chan int)
	assert.NotPanics(t, func() {
		_ = Of(ch, func() {}, struct{ F func() }{})
	})
}
