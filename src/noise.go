package turboenc

/*------------------------------------------------------------------
 *
 * Purpose:	Artificial channel errors for loopback testing.
 *
 *------------------------------------------------------------------*/

/* Own copy of random number generator so we can get */
/* same predictable results on different operating systems. */

var turboRandSeed int32 = 1

const turboRandMax int32 = 0x7fffffff

func turboRand() int32 {
	turboRandSeed = int32((uint32(turboRandSeed)*1103515245)+12345) & turboRandMax
	return turboRandSeed
}

func turbo_noise_seed(seed int32) {
	turboRandSeed = seed
}

// turbo_rand_bit draws one bit for random test data.  The low bits of
// this generator have tiny periods (bit 0 strictly alternates), so the
// draw comes from a high bit.
func turbo_rand_bit() byte {
	return byte((turboRand() >> 16) & 1)
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_noise_flip
 *
 * Purpose:	Independently flip each of the 3 symbol bits with the
 *		given probability.
 *
 * Inputs:	symbol	- Clean encoded symbol.
 *
 *		ber	- Desired bit error rate, 0 .. 1.
 *
 * Returns:	Corrupted symbol.
 *
 *--------------------------------------------------------------*/

func turbo_noise_flip(symbol byte, ber float64) byte {
	if ber <= 0 {
		return symbol & SYMBOL_MASK
	}

	for bit := 0; bit < TURBO_SYMBOL_BITS; bit++ {
		// calculate as double to preserve all 31 bits.
		var r = float64(turboRand()) / float64(turboRandMax)
		if ber > r {
			symbol ^= 1 << bit
		}
	}

	return symbol & SYMBOL_MASK
}
