package turboenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInterleaveDegenerateIndex(t *testing.T) {
	// Only the low 3 bits of the pattern apply.
	assert.Equal(t, 2, interleave_new(TURBO_INTERLEAVE_PATTERN).index)
	assert.Equal(t, 5, interleave_new(0xfd).index)
	assert.Equal(t, 0, interleave_new(0x38).index)
}

func TestInterleavePickIgnoresPosition(t *testing.T) {
	// The degenerate permutation picks the same index for every
	// position, and the index is always a valid block position.
	var il = interleave_new(TURBO_INTERLEAVE_PATTERN)

	for pos := 0; pos < TURBO_BLOCK_SIZE; pos++ {
		var picked = interleave_pick(&il, pos)
		assert.Equal(t, il.index, picked)
		assert.GreaterOrEqual(t, picked, 0)
		assert.Less(t, picked, TURBO_BLOCK_SIZE)
	}
}
