package fill

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHeapOrdering verifies ascending-z pops on random input.
func TestHeapOrdering(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var h cellHeap
	for seq := uint32(0); seq < 1000; seq++ {
		h.push(cell{z: rng.Float32() * 100, seq: seq})
	}

	prev := h.pop()
	for len(h) > 0 {
		next := h.pop()
		require.LessOrEqual(t, prev.z, next.z)
		prev = next
	}
}

// TestHeapFIFOTies verifies that equal elevations dequeue in insertion
// order.
func TestHeapFIFOTies(t *testing.T) {
	var h cellHeap
	for seq := uint32(0); seq < 64; seq++ {
		h.push(cell{z: 5, seq: seq})
	}
	// A lower cell pushed late still pops first.
	h.push(cell{z: 1, seq: 64})

	require.Equal(t, uint32(64), h.pop().seq)
	for want := uint32(0); want < 64; want++ {
		require.Equal(t, want, h.pop().seq)
	}
}

// TestHeapMixed interleaves pushes and pops.
func TestHeapMixed(t *testing.T) {
	var h cellHeap
	h.push(cell{z: 3, seq: 0})
	h.push(cell{z: 1, seq: 1})
	require.Equal(t, float32(1), h.pop().z)

	h.push(cell{z: 2, seq: 2})
	require.Equal(t, float32(2), h.pop().z)
	require.Equal(t, float32(3), h.pop().z)
	require.Empty(t, h)
}
