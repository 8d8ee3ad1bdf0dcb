package turboenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Drive a constant-bit window through the pins, as the hardware
// testbench does, and return the symbol.
func topEncode(t *testing.T, T *turbo_top_s, dbit byte) byte {
	t.Helper()

	var ui_in = UI_MODE_ENCODE | (dbit & UI_DATA)

	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in|UI_START)

	for i := 0; i < 100; i++ {
		var uo_out = turbo_top_tick(T, false, ui_in)
		if uo_out&UO_VALID != 0 {
			return uo_out & UO_SYMBOL_MASK
		}
	}

	require.Fail(t, "valid signal never asserted while encoding")
	return 0
}

func topDecode(t *testing.T, T *turbo_top_s, symbol byte) byte {
	t.Helper()

	var ui_in = (symbol & SYMBOL_MASK) << UI_SYMBOL_SHIFT

	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in|UI_START)

	for i := 0; i < 200; i++ {
		var uo_out = turbo_top_tick(T, false, ui_in)
		if uo_out&UO_VALID != 0 {
			return (uo_out & UO_DECODED) >> 3
		}
	}

	require.Fail(t, "valid signal never asserted while decoding")
	return 0
}

func TestTopResetOutputsZero(t *testing.T) {
	var T = turbo_top_new(nil)

	for i := 0; i < 10; i++ {
		assert.Equal(t, byte(0), turbo_top_tick(T, true, UI_MODE_ENCODE|UI_DATA))
	}

	assert.Equal(t, byte(0), turbo_top_tick(T, false, UI_MODE_ENCODE))
}

func TestTopEncodeKnownSymbols(t *testing.T) {
	var T = turbo_top_new(nil)

	// From reset, a constant-0 window leaves both histories at zero.
	var encoded0 = topEncode(t, T, 0)
	assert.Equal(t, byte(0b000), encoded0)

	// The following constant-1 window shifts a 1 into both encoders:
	// E1 0001 & 1011 and E2 0001 & 1101 both have odd parity.
	var encoded1 = topEncode(t, T, 1)
	assert.Equal(t, byte(0b111), encoded1)

	assert.NotEqual(t, encoded0, encoded1, "same encoding for different inputs")
}

func TestTopDecodePatterns(t *testing.T) {
	// The five patterns the hardware testbench replays.
	var tests = []struct {
		pattern byte
		want    byte
	}{
		{0b000, 0},
		{0b001, 0},
		{0b010, 0},
		{0b100, 0},
		{0b111, 1},
	}

	for _, tc := range tests {
		var T = turbo_top_new(nil)
		assert.Equal(t, tc.want, topDecode(t, T, tc.pattern), "pattern %03b", tc.pattern)
	}
}

func TestTopEncodeDecodeLoop(t *testing.T) {
	for _, testBit := range []byte{0, 1} {
		var T = turbo_top_new(nil)

		var symbol = topEncode(t, T, testBit)
		var decoded = topDecode(t, T, symbol)

		assert.Equal(t, testBit, decoded, "loopback of bit %d via symbol %03b", testBit, symbol)
	}
}

func TestTopValidPulseWidth(t *testing.T) {
	var T = turbo_top_new(nil)
	var ui_in byte = UI_MODE_ENCODE | UI_DATA

	turbo_top_tick(T, false, ui_in|UI_START)

	var validTicks = 0
	for i := 0; i < 20; i++ {
		if turbo_top_tick(T, false, ui_in)&UO_VALID != 0 {
			validTicks++
		}
	}

	assert.Equal(t, 1, validTicks, "valid must be asserted for exactly one tick")
}

func TestTopModeSwitching(t *testing.T) {
	var T = turbo_top_new(nil)

	// Flipping modes with no start pulse starts nothing.
	for i := 0; i < 5; i++ {
		turbo_top_tick(T, false, UI_MODE_ENCODE|UI_DATA)
	}
	for i := 0; i < 5; i++ {
		turbo_top_tick(T, false, 0b111<<UI_SYMBOL_SHIFT)
	}

	var uo_out = turbo_top_tick(T, false, UI_MODE_ENCODE)
	assert.Zero(t, uo_out&UO_VALID)
	assert.False(t, T.enc.active)
	assert.False(t, turbo_dec_busy(T.dec))
}

func TestTopStartRoutedByMode(t *testing.T) {
	var T = turbo_top_new(nil)

	// A start pulse in encode mode must not launch a decode.
	turbo_top_tick(T, false, UI_MODE_ENCODE|UI_START|UI_DATA)
	assert.True(t, T.enc.active)
	assert.False(t, turbo_dec_busy(T.dec))
}

func TestTopResetDuringOperation(t *testing.T) {
	var T = turbo_top_new(nil)
	var ui_in byte = UI_MODE_ENCODE | UI_DATA

	turbo_top_tick(T, false, ui_in|UI_START)
	for i := 0; i < 5; i++ {
		turbo_top_tick(T, false, ui_in)
	}
	require.True(t, T.enc.active)

	for i := 0; i < 5; i++ {
		turbo_top_tick(T, true, ui_in)
	}

	assert.Equal(t, byte(0), turbo_top_tick(T, false, ui_in))
	assert.False(t, T.enc.active)
}

func TestTopResetDominantOverStart(t *testing.T) {
	var T = turbo_top_new(nil)

	// Reset and start on the same tick behaves identically to reset
	// alone, in both modes.
	turbo_top_tick(T, true, UI_MODE_ENCODE|UI_START|UI_DATA)
	assert.False(t, T.enc.active)

	turbo_top_tick(T, true, UI_START|0b111<<UI_SYMBOL_SHIFT)
	assert.False(t, turbo_dec_busy(T.dec))
}

func TestTopPathsShareNoState(t *testing.T) {
	var T = turbo_top_new(nil)

	// Run a decode while an encode block is mid-assembly.  Neither
	// disturbs the other.
	turbo_top_tick(T, false, UI_MODE_ENCODE|UI_START|UI_DATA)
	turbo_top_tick(T, false, UI_START|0b111<<UI_SYMBOL_SHIFT)
	require.True(t, T.enc.active)
	require.True(t, turbo_dec_busy(T.dec))

	var ui_in byte = UI_MODE_ENCODE | UI_DATA
	var symbolSeen = false
	for i := 0; i < 20; i++ {
		var uo_out = turbo_top_tick(T, false, ui_in)
		if uo_out&UO_VALID != 0 {
			symbolSeen = true
			assert.Equal(t, byte(0b111), uo_out&UO_SYMBOL_MASK)
		}
	}
	assert.True(t, symbolSeen)
}
