package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_SlideMatchesWholeWindowHash(t *testing.T) {
	keys := []string{"a", "b", "c", "d", "e"}
	width := 3

	w := NewWindow(width)
	var values []uint64
	for _, k := range keys {
		w.Push(k)
		if w.Full() {
			values = append(values, w.Value())
		}
	}
	require.Len(t, values, len(keys)-width+1)

	for i, v := range values {
		want := Hash(keys[i : i+width])
		assert.Equal(t, want, v, "window starting at %d", i)
	}
}

func TestWindow_IdenticalSequencesProduceIdenticalHash(t *testing.T) {
	a := Hash([]string{"x", "y", "z"})
	b := Hash([]string{"x", "y", "z"})
	assert.Equal(t, a, b)
}

func TestWindow_DifferentSequencesUsuallyDiffer(t *testing.T) {
	a := Hash([]string{"x", "y", "z"})
	b := Hash([]string{"x", "y", "w"})
	assert.NotEqual(t, a, b)
}

func TestWindow_OrderSensitive(t *testing.T) {
	a := Hash([]string{"x", "y", "z"})
	b := Hash([]string{"z", "y", "x"})
	assert.NotEqual(t, a, b)
}

func TestMulmod_NeverOverflowsOrExceedsModulus(t *testing.T) {
	vals := []uint64{0, 1, modulus - 1, modulus / 2, base}
	for _, a := range vals {
		for _, b := range vals {
			got := mulmod(a, b)
			assert.Less(t, got, modulus)
		}
	}
}

func TestPowmod_ZeroExponentIsOne(t *testing.T) {
	assert.Equal(t, uint64(1), powmod(0))
}
