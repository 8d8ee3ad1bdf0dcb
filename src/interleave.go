package turboenc

/********************************************************************************
 *
 * Purpose:	Interleaver for the second encoder branch.
 *
 *		A turbo interleaver is supposed to permute block positions so
 *		the two parity streams decorrelate burst errors.  The hardware
 *		this reproduces declared its pattern constant with digits
 *		outside the valid range for its representation, so only the
 *		low 3 bits deterministically apply and the "permutation"
 *		collapses to one fixed block index.  That degenerate behavior
 *		is kept on purpose.  Do not replace it with a real permutation
 *		table without also providing the original behavior.
 *
 *******************************************************************************/

type interleaver_s struct {
	index int // Fixed block position selected for E2's input, 0 .. TURBO_BLOCK_SIZE-1.
}

// interleave_new derives the fixed index from the low 3 bits of the
// configured pattern constant.
func interleave_new(pattern byte) interleaver_s {
	var index = int(pattern) & (TURBO_BLOCK_SIZE - 1)

	Assert(index >= 0 && index < TURBO_BLOCK_SIZE)

	return interleaver_s{index: index}
}

// interleave_pick returns the block position E2 reads for the given
// position fed to E1.  With the degenerate pattern the answer does not
// depend on pos at all.
func interleave_pick(IL *interleaver_s, pos int) int {
	Assert(pos >= 0 && pos < TURBO_BLOCK_SIZE)

	return IL.index
}
