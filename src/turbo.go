package turboenc

/********************************************************************************
 *
 * Purpose:	Shared constants for the turbo codec.
 *
 *		This is a bit-serial reimplementation of a parallel-concatenated
 *		convolutional ("turbo") encoder and its companion iterative
 *		soft-decision decoder.  Both are clocked automata: the caller
 *		advances them exactly one step per tick and watches a one-tick
 *		validity pulse for results.
 *
 *******************************************************************************/

/*
 * Number of serially-arriving input bits collected into one block
 * before a symbol is produced.
 */

const TURBO_BLOCK_SIZE = 8

/*
 * An encoded symbol is 3 bits: systematic, parity from E1, parity from E2.
 */

const TURBO_SYMBOL_BITS = 3

// Bit positions within a symbol.  Used by encoder, decoder, and the tools.

const (
	SYMBOL_SYSTEMATIC = 0x01
	SYMBOL_PARITY1    = 0x02
	SYMBOL_PARITY2    = 0x04
	SYMBOL_MASK       = 0x07
)

/*
 * Generator polynomial masks for the two constituent encoders.
 * Only the low 4 bits of each history register ever participate.
 */

const TURBO_G1 = 0b1011
const TURBO_G2 = 0b1101

/*
 * Fixed-magnitude confidence assigned to each received bit when the
 * decoder initializes its LLR triple.  bit=1 -> +TURBO_LLR_SCALE,
 * bit=0 -> -TURBO_LLR_SCALE.
 */

const TURBO_LLR_SCALE = 8

/*
 * Number of Stage1/Stage2 passes the combiner makes before Decision.
 * The iteration bound only adds latency; it does not refine the
 * estimate.  See turbo_rec.go.
 */

const TURBO_MAX_ITERATIONS = 4

/*
 * Interleaver pattern as carried by the hardware.  The declared constant
 * used digit values outside the valid range for its representation, so
 * only the low 3 bits deterministically apply.  The permutation thereby
 * collapses to a single fixed block index.  We preserve that, not guess
 * at the intended table.  0x3A & 0x7 = 2.
 */

const TURBO_INTERLEAVE_PATTERN = 0x3A
