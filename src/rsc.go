package turboenc

/********************************************************************************
 *
 * Purpose:	Recursive systematic convolutional (RSC) constituent encoder.
 *
 *		Each instance is a 4-bit history shift register plus a fixed
 *		generator polynomial mask.  The systematic bit is emitted
 *		unchanged elsewhere; this module only produces the parity bit.
 *
 *******************************************************************************/

import (
	"math/bits"
)

type rsc_encoder_s struct {
	hist byte // Most recent 4 bits fed to this instance, most-recent-first in bit 0.
	mask byte // Generator polynomial taps.  Never changes after construction.
}

func rsc_new(mask byte) rsc_encoder_s {
	Assert(mask&0x0f == mask && mask != 0)

	return rsc_encoder_s{hist: 0, mask: mask}
}

/*-------------------------------------------------------------
 *
 * Name:	rsc_shift_in
 *
 * Purpose:	Advance one encoder instance by one input bit and
 *		compute the resulting parity bit.
 *
 * Inputs:	dbit	- One input bit, any non-zero value is logic '1'.
 *
 * Returns:	Parity bit, 0 or 1: XOR-reduction of (history AND mask).
 *
 * Description:	The history register shifts left by one and the new bit
 *		enters at the bottom.  Only the low 4 bits survive; older
 *		bits fall off the top.  History persists across blocks and
 *		is cleared only by reset.
 *
 *--------------------------------------------------------------*/

func rsc_shift_in(R *rsc_encoder_s, dbit int) int {
	R.hist = ((R.hist << 1) | byte(dbit&1)) & 0x0f

	return bits.OnesCount8(R.hist&R.mask) & 1
}

func rsc_reset(R *rsc_encoder_s) {
	R.hist = 0
}
