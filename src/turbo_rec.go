package turboenc

/********************************************************************************
 *
 * Purpose:	Convert received symbols back to hard bit decisions.
 *
 *		This is the decode half of the codec: an LLR initializer and
 *		a fixed-iteration extrinsic-information combiner.
 *
 *		Despite the naming, this is not genuine iterative turbo
 *		decoding.  There is no trellis and no extrinsic exchange
 *		between constituent decoders.  Stage1 overwrites the running
 *		value and Stage2 re-adds the same fixed parity confidence, so
 *		the value reaching Decision is identical no matter how many
 *		passes run beyond the first.  The iteration bound adds fixed
 *		latency only.  That observable behavior is reproduced exactly;
 *		a real forward-backward decoder would be a separate variant,
 *		not a substitute.
 *
 *******************************************************************************/

import (
	"github.com/charmbracelet/log"
)

type TurboDecState int

const (
	TD_IDLE TurboDecState = iota
	TD_STAGE1
	TD_STAGE2
	TD_DECISION
)

type turbo_dec_state_s struct {
	state TurboDecState

	llr_sys int8 /* LLR triple for one received symbol. */
	llr_p1  int8 /* Held for the duration of one decode */
	llr_p2  int8 /* operation, discarded at decision. */

	extrinsic int8 /* Running combined confidence.  Signed 8-bit */
	/* two's-complement wraparound on overflow, */
	/* matching the fixed-width hardware arithmetic. */

	iter int /* Pass counter, meaningful only in Stage1/Stage2. */

	max_iterations int /* Bound on iter.  Affects latency, not the result. */

	llr_scale int8 /* Magnitude assigned per received bit. */

	dbit byte /* Latched hard decision, 0 or 1. */

	valid bool /* One-tick pulse: dbit is freshly decided. */
}

func turbo_dec_new(config *turbo_config_s) *turbo_dec_state_s {
	if config == nil {
		config = turbo_config_default()
	}

	Assert(config.MaxIterations >= 1)

	return &turbo_dec_state_s{
		state:          TD_IDLE,
		max_iterations: config.MaxIterations,
		llr_scale:      int8(config.LLRScale),
	}
}

func turbo_dec_reset(D *turbo_dec_state_s) {
	D.state = TD_IDLE
	D.llr_sys = 0
	D.llr_p1 = 0
	D.llr_p2 = 0
	D.extrinsic = 0
	D.iter = 0
	D.dbit = 0
	D.valid = false
}

// bit=1 -> +scale, bit=0 -> -scale.
func llr_from_bit(D *turbo_dec_state_s, bit byte) int8 {
	return IfThenElse(bit != 0, D.llr_scale, -D.llr_scale)
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_dec_tick
 *
 * Purpose:	Advance the decode automaton by one clock tick.
 *
 * Inputs:	reset	- Synchronous reset.  Overrides everything else
 *			  this tick, including a concurrent start pulse.
 *
 *		start	- Start pulse.  Begins a decode when idle.
 *			  Ignored while a decode is in progress.
 *
 *		symbol	- Received 3-bit symbol.  Sampled only on the
 *			  tick a decode starts.
 *
 * Outputs:	D.dbit / D.valid.  valid is high for exactly the one
 *		tick on which the Decision state runs.
 *
 *--------------------------------------------------------------*/

func turbo_dec_tick(D *turbo_dec_state_s, reset bool, start bool, symbol byte) {
	if reset {
		turbo_dec_reset(D)
		return
	}

	D.valid = false

	switch D.state {

	case TD_IDLE:
		if start {
			D.llr_sys = llr_from_bit(D, symbol&SYMBOL_SYSTEMATIC)
			D.llr_p1 = llr_from_bit(D, symbol&SYMBOL_PARITY1)
			D.llr_p2 = llr_from_bit(D, symbol&SYMBOL_PARITY2)
			D.iter = 0
			D.state = TD_STAGE1

			if turbo_get_debug() >= 2 {
				log.Debug("turbo dec: start", "symbol", symbol&SYMBOL_MASK,
					"llr_sys", D.llr_sys, "llr_p1", D.llr_p1, "llr_p2", D.llr_p2)
			}
		}

	case TD_STAGE1:
		// Overwrites, never accumulates across passes.
		D.extrinsic = D.llr_sys + D.llr_p1
		D.state = TD_STAGE2

	case TD_STAGE2:
		D.extrinsic += D.llr_p2

		if D.iter < D.max_iterations-1 {
			D.iter++
			D.state = TD_STAGE1
		} else {
			D.state = TD_DECISION
		}

	case TD_DECISION:
		D.dbit = IfThenElse(D.extrinsic > 0, byte(1), byte(0))
		D.valid = true
		D.state = TD_IDLE

		if turbo_get_debug() >= 1 {
			log.Debug("turbo dec: decision", "extrinsic", D.extrinsic, "bit", D.dbit)
		}
	}
}

// turbo_dec_busy reports whether a decode is currently in progress.
func turbo_dec_busy(D *turbo_dec_state_s) bool {
	return D.state != TD_IDLE
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_decode_symbol
 *
 * Purpose:	Run one complete decode operation.  Convenience wrapper
 *		for the tools; the per-tick interface above is the real
 *		contract.
 *
 * Inputs:	symbol	- Received 3-bit symbol.
 *
 * Returns:	The hard bit decision.
 *
 *--------------------------------------------------------------*/

func turbo_decode_symbol(D *turbo_dec_state_s, symbol byte) byte {
	Assert(!turbo_dec_busy(D))

	turbo_dec_tick(D, false, true, symbol)

	// Start tick, Stage1/Stage2 per pass, one Decision tick.
	for i := 0; i < 2*D.max_iterations+1 && !D.valid; i++ {
		turbo_dec_tick(D, false, false, 0)
	}

	Assert(D.valid)
	return D.dbit
}
