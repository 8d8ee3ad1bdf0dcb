package turboenc

/********************************************************************************
 *
 * Purpose:	Convert a stream of bits to encoded symbols.
 *
 *		This is the encode half of the codec: a block framer feeding
 *		two RSC constituent encoders (the second through the
 *		interleaver) and a symbol assembler.
 *
 *******************************************************************************/

import (
	"github.com/charmbracelet/log"
)

/*
 * This is the current state of the encoder.
 *
 * It is possible to run multiple encoders concurrently by
 * having a separate state structure for each.
 */

type turbo_enc_state_s struct {
	active bool /* Block assembly in progress.  A start pulse */
	/* while active is silently ignored. */

	block [TURBO_BLOCK_SIZE]byte /* One block of input bits, position 0 first. */

	nbits int /* Number of positions filled, 0 .. TURBO_BLOCK_SIZE. */

	e1 rsc_encoder_s /* First constituent encoder, G1 taps. */

	e2 rsc_encoder_s /* Second constituent encoder, G2 taps, fed */
	/* through the interleaver. */

	il interleaver_s /* Block position selection for e2. */

	symbol byte /* Latched output symbol, 3 bits. */

	valid bool /* One-tick pulse: symbol is freshly produced. */
}

func turbo_enc_new(config *turbo_config_s) *turbo_enc_state_s {
	if config == nil {
		config = turbo_config_default()
	}

	return &turbo_enc_state_s{
		e1: rsc_new(config.G1),
		e2: rsc_new(config.G2),
		il: interleave_new(config.InterleavePattern),
	}
}

/*
 * Synchronous reset.  Clears the block buffer, both history registers,
 * the active flag, and the output/validity latches.  The generator masks
 * and the interleaver index are construction-time constants and survive.
 */

func turbo_enc_reset(E *turbo_enc_state_s) {
	E.active = false
	E.block = [TURBO_BLOCK_SIZE]byte{}
	E.nbits = 0
	rsc_reset(&E.e1)
	rsc_reset(&E.e2)
	E.symbol = 0
	E.valid = false
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_enc_tick
 *
 * Purpose:	Advance the encode automaton by one clock tick.
 *
 * Inputs:	reset	- Synchronous reset.  Overrides everything else
 *			  this tick, including a concurrent start pulse.
 *
 *		start	- Start pulse.  Begins a new block when idle.
 *
 *		dbit	- Current input bit.  Any non-zero value is logic '1'.
 *
 * Outputs:	E.symbol / E.valid.  valid is high for exactly the one
 *		tick on which the 8th bit is accepted.
 *
 * Description:	This is called once per tick.  While idle, a start pulse
 *		stores the current bit at position 0 and marks the framer
 *		active.  Each subsequent tick stores the current bit at the
 *		next free position.  Storing the last position triggers
 *		exactly one symbol-encode step and returns to idle.
 *
 *--------------------------------------------------------------*/

func turbo_enc_tick(E *turbo_enc_state_s, reset bool, start bool, dbit int) {
	if reset {
		turbo_enc_reset(E)
		return
	}

	E.valid = false

	if !E.active {
		if start {
			E.block = [TURBO_BLOCK_SIZE]byte{}
			E.block[0] = byte(dbit & 1)
			E.nbits = 1
			E.active = true

			if turbo_get_debug() >= 2 {
				log.Debug("turbo enc: start", "bit", dbit&1)
			}
		}
		return
	}

	// Active.  A start pulse here must not re-frame mid-block.

	E.block[E.nbits] = byte(dbit & 1)
	E.nbits++

	if E.nbits < TURBO_BLOCK_SIZE {
		return
	}

	turbo_enc_symbol(E)
	E.active = false
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_enc_symbol
 *
 * Purpose:	The symbol-encode step.  Fires once per completed block.
 *
 * Description:	The systematic output bit is the block's first received
 *		bit.  Only position 0 contributes to the emitted symbol;
 *		one symbol is produced per 8-bit collection window, not one
 *		per bit.  E1 shifts in position 0.  E2 shifts in the block
 *		bit selected by the interleaver.  Both encoder histories
 *		carry over into the next block.
 *
 *--------------------------------------------------------------*/

func turbo_enc_symbol(E *turbo_enc_state_s) {
	var sys = int(E.block[0])

	var p1 = rsc_shift_in(&E.e1, sys)
	var p2 = rsc_shift_in(&E.e2, int(E.block[interleave_pick(&E.il, 0)]))

	E.symbol = 0
	if sys != 0 {
		E.symbol |= SYMBOL_SYSTEMATIC
	}
	if p1 != 0 {
		E.symbol |= SYMBOL_PARITY1
	}
	if p2 != 0 {
		E.symbol |= SYMBOL_PARITY2
	}

	E.valid = true

	if turbo_get_debug() >= 1 {
		log.Debug("turbo enc: symbol", "symbol", E.symbol, "systematic", sys, "parity1", p1, "parity2", p2)
	}
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_encode_window
 *
 * Purpose:	Clock one complete 8-bit window through the automaton.
 *		Convenience wrapper for the tools; the per-tick interface
 *		above is the real contract.
 *
 * Inputs:	window	- Exactly TURBO_BLOCK_SIZE bits, first-received first.
 *
 * Returns:	The encoded symbol.
 *
 *--------------------------------------------------------------*/

func turbo_encode_window(E *turbo_enc_state_s, window []byte) byte {
	Assert(len(window) == TURBO_BLOCK_SIZE)

	turbo_enc_tick(E, false, true, int(window[0]))
	for i := 1; i < TURBO_BLOCK_SIZE; i++ {
		turbo_enc_tick(E, false, false, int(window[i]))
	}

	Assert(E.valid)
	return E.symbol
}
