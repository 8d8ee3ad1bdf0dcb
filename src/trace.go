package turboenc

import (
	"github.com/charmbracelet/log"
)

/*
 * Debug level for the codec state machines.
 *
 *	0 = quiet.
 *	1 = one line per completed symbol or decision.
 *	2 = per-tick state transitions.  Very noisy.
 */

var turboDebugLevel int

func turbo_set_debug(level int) {
	turboDebugLevel = level

	if level > 0 {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func turbo_get_debug() int {
	return turboDebugLevel
}
