package turboenc

/*------------------------------------------------------------------
 *
 * Name:	ttest
 *
 * Purpose:	Self test for the whole codec, driven at pin level.
 *
 * Description:	Replays the scenarios from the original hardware
 *		testbench: reset, encoding of constant-0 and constant-1
 *		windows, decoding of several symbol patterns, the
 *		encode-decode loop, mode switching, and reset during an
 *		operation in progress.
 *
 *		Run with no arguments.  Exits non-zero on any failure.
 *
 *------------------------------------------------------------------*/

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// Generous tick budgets, as in the original testbench.
const TTEST_ENC_TIMEOUT = 100
const TTEST_DEC_TIMEOUT = 200

var ttest_failures int

func ttest_fail(msg string, keyvals ...any) {
	ttest_failures++
	log.Error(msg, keyvals...)
}

func TurboTestMain() {
	var debugLevel = pflag.IntP("debug", "d", 0, "Debug level, 1 or 2.")
	pflag.Parse()

	turbo_set_debug(*debugLevel)

	log.Info("ttest - turbo codec self test.")

	ttest_reset_outputs()
	ttest_encode_distinct()
	ttest_decode_patterns()
	ttest_loopback()
	ttest_mode_switching()
	ttest_reset_during_operation()

	if ttest_failures > 0 {
		log.Error("Self test FAILED.", "failures", ttest_failures)
		os.Exit(1)
	}

	log.Info("Self test passed.")
}

// Hold reset for a few ticks the way the testbench does.
func ttest_reset(T *turbo_top_s, ui_in byte) {
	for i := 0; i < 10; i++ {
		turbo_top_tick(T, true, ui_in)
	}
}

// Tick until the valid pin rises, holding the inputs steady.
func ttest_wait_valid(T *turbo_top_s, ui_in byte, timeout int) (byte, bool) {
	for i := 0; i < timeout; i++ {
		var uo_out = turbo_top_tick(T, false, ui_in)
		if uo_out&UO_VALID != 0 {
			return uo_out, true
		}
	}

	return 0, false
}

// Encode one window of a constant bit, returning the symbol pins.
func ttest_encode(T *turbo_top_s, dbit byte) (byte, bool) {
	var ui_in = UI_MODE_ENCODE | (dbit & UI_DATA)

	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in|UI_START)

	var uo_out, ok = ttest_wait_valid(T, ui_in, TTEST_ENC_TIMEOUT)
	return uo_out & UO_SYMBOL_MASK, ok
}

// Decode one symbol, returning the decision pin.
func ttest_decode(T *turbo_top_s, symbol byte) (byte, bool) {
	var ui_in = (symbol & SYMBOL_MASK) << UI_SYMBOL_SHIFT

	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in|UI_START)

	var uo_out, ok = ttest_wait_valid(T, ui_in, TTEST_DEC_TIMEOUT)
	return (uo_out & UO_DECODED) >> 3, ok
}

func ttest_reset_outputs() {
	var T = turbo_top_new(nil)

	ttest_reset(T, 0)

	var uo_out = turbo_top_tick(T, false, UI_MODE_ENCODE)
	if uo_out != 0 {
		ttest_fail("Output pins not zero after reset.", "uo_out", uo_out)
	}
}

func ttest_encode_distinct() {
	var T = turbo_top_new(nil)
	ttest_reset(T, 0)

	var encoded0, ok0 = ttest_encode(T, 0)
	if !ok0 {
		ttest_fail("Valid signal not asserted for bit 0 encoding.")
	}
	log.Info("Encoded constant-0 window.", "symbol", encoded0)

	var encoded1, ok1 = ttest_encode(T, 1)
	if !ok1 {
		ttest_fail("Valid signal not asserted for bit 1 encoding.")
	}
	log.Info("Encoded constant-1 window.", "symbol", encoded1)

	if encoded0 == encoded1 {
		ttest_fail("Same encoding for different inputs.", "symbol", encoded0)
	}

	if encoded1 == 0 {
		ttest_fail("Unexpected all-zero encoding for constant-1 window.")
	}
}

func ttest_decode_patterns() {
	var patterns = []byte{0b000, 0b001, 0b010, 0b100, 0b111}

	for _, pattern := range patterns {
		var T = turbo_top_new(nil)
		ttest_reset(T, 0)

		var dbit, ok = ttest_decode(T, pattern)
		if !ok {
			ttest_fail("Valid signal not asserted for decode.", "pattern", pattern)
			continue
		}
		log.Info("Decoded pattern.", "pattern", pattern, "bit", dbit)

		if pattern == 0b111 && dbit != 1 {
			ttest_fail("Pattern 111 must decode to 1.", "bit", dbit)
		}
		if pattern == 0b000 && dbit != 0 {
			ttest_fail("Pattern 000 must decode to 0.", "bit", dbit)
		}
	}
}

func ttest_loopback() {
	for _, testBit := range []byte{0, 1} {
		var T = turbo_top_new(nil)
		ttest_reset(T, 0)

		var symbol, encOK = ttest_encode(T, testBit)
		if !encOK {
			ttest_fail("Encode did not complete in loopback.", "bit", testBit)
			continue
		}

		var dbit, decOK = ttest_decode(T, symbol)
		if !decOK {
			ttest_fail("Decode did not complete in loopback.", "symbol", symbol)
			continue
		}

		// With a noiseless channel and fresh encoder history, the
		// constant-bit windows survive the round trip.
		if dbit != testBit {
			ttest_fail("Loopback mismatch.", "sent", testBit, "symbol", symbol, "received", dbit)
		} else {
			log.Info("Loopback OK.", "bit", testBit, "symbol", symbol)
		}
	}
}

func ttest_mode_switching() {
	var T = turbo_top_new(nil)
	ttest_reset(T, 0)

	// Flip between modes with no start pulse.  Nothing should begin
	// and nothing should panic.

	for i := 0; i < 5; i++ {
		turbo_top_tick(T, false, UI_MODE_ENCODE|UI_DATA)
	}
	for i := 0; i < 5; i++ {
		turbo_top_tick(T, false, 0b111<<UI_SYMBOL_SHIFT)
	}
	var uo_out byte
	for i := 0; i < 5; i++ {
		uo_out = turbo_top_tick(T, false, UI_MODE_ENCODE)
	}

	if uo_out&UO_VALID != 0 {
		ttest_fail("Valid asserted with no start pulse.")
	}
}

func ttest_reset_during_operation() {
	var T = turbo_top_new(nil)
	ttest_reset(T, 0)

	// Start an encode, abandon it with reset mid-block.

	var ui_in byte = UI_MODE_ENCODE | UI_DATA
	turbo_top_tick(T, false, ui_in)
	turbo_top_tick(T, false, ui_in|UI_START)
	for i := 0; i < 5; i++ {
		turbo_top_tick(T, false, ui_in)
	}

	ttest_reset(T, ui_in)

	var uo_out = turbo_top_tick(T, false, ui_in)
	if uo_out != 0 {
		ttest_fail("Output not reset properly.", "uo_out", uo_out)
	}
}
