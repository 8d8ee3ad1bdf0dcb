package turboenc

/********************************************************************************
 *
 * Purpose:	Top level: pin multiplexing between the encode and decode
 *		paths, and reset fan-out.
 *
 *		This mirrors the original chip's outer wiring.  Both paths
 *		advance one step on every tick; the mode pin only selects
 *		which path's result is visible on the output pins and which
 *		path a start pulse reaches.  The two paths hold disjoint
 *		state and never touch each other's data.
 *
 *******************************************************************************/

/*
 * Input pin assignments, as on the hardware's ui_in bus.
 */

const (
	UI_DATA        = 0x01 /* Input bit for the encoder. */
	UI_START       = 0x02 /* Start pulse. */
	UI_MODE_ENCODE = 0x04 /* 1 = encode, 0 = decode. */

	UI_SYMBOL_SHIFT = 3 /* Received symbol occupies bits 5:3 (decode mode). */
)

/*
 * Output pin assignments, as on the hardware's uo_out bus.
 */

const (
	UO_SYMBOL_MASK = 0x07 /* Encoded symbol, bits 2:0 (encode mode). */
	UO_DECODED     = 0x08 /* Decoded bit (decode mode). */
	UO_VALID       = 0x10 /* One-tick pulse: a result is ready. */
)

type turbo_top_s struct {
	enc *turbo_enc_state_s
	dec *turbo_dec_state_s
}

func turbo_top_new(config *turbo_config_s) *turbo_top_s {
	return &turbo_top_s{
		enc: turbo_enc_new(config),
		dec: turbo_dec_new(config),
	}
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_top_tick
 *
 * Purpose:	Advance the whole codec by one clock tick.
 *
 * Inputs:	reset	- Synchronous reset, fanned out to both paths
 *			  before any other transition logic.  Dominant
 *			  over a concurrently asserted start pulse.
 *
 *		ui_in	- Input pins, laid out per the UI_* constants.
 *
 * Returns:	Output pins, laid out per the UO_* constants.  All zero
 *		on the tick reset is asserted.
 *
 *--------------------------------------------------------------*/

func turbo_top_tick(T *turbo_top_s, reset bool, ui_in byte) byte {
	var start = ui_in&UI_START != 0
	var encode_mode = ui_in&UI_MODE_ENCODE != 0

	// Reset is passed down unconditionally; each path applies it
	// before looking at anything else.

	turbo_enc_tick(T.enc, reset, start && encode_mode, int(ui_in&UI_DATA))
	turbo_dec_tick(T.dec, reset, start && !encode_mode, (ui_in>>UI_SYMBOL_SHIFT)&SYMBOL_MASK)

	var uo_out byte

	if encode_mode {
		uo_out = T.enc.symbol & UO_SYMBOL_MASK
		if T.enc.valid {
			uo_out |= UO_VALID
		}
	} else {
		if T.dec.dbit != 0 {
			uo_out |= UO_DECODED
		}
		if T.dec.valid {
			uo_out |= UO_VALID
		}
	}

	return uo_out
}
