package turboenc

/*------------------------------------------------------------------
 *
 * Name:	dec_symbols
 *
 * Purpose:	Test program for decoding received symbol streams.
 *
 * Description:	Reads symbols in the format gen_symbols writes (one
 *		per line, 3 binary digits), clocks each through the
 *		decode automaton, and writes the hard bit decisions as
 *		one line of 0s and 1s.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func DecSymbolsMain() {
	var configFile = pflag.StringP("config-file", "c", "", "Read codec parameters from YAML file.")
	var debugLevel = pflag.IntP("debug", "d", 0, "Debug level, 1 or 2.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Decode a symbol stream to hard bit decisions.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file|-]\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Input is one symbol per line as 3 binary digits, as produced\n")
		fmt.Fprintf(os.Stderr, "by gen_symbols.  \"-\" or no argument reads stdin.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	turbo_set_debug(*debugLevel)

	var config, configErr = turbo_config_load(*configFile)
	if configErr != nil {
		log.Fatal("Could not load config.", "err", configErr)
	}

	var in io.Reader = os.Stdin
	if pflag.NArg() > 0 && pflag.Arg(0) != "-" {
		var f, openErr = os.Open(pflag.Arg(0))
		if openErr != nil {
			log.Fatal("Could not open input file.", "err", openErr)
		}
		defer f.Close() //nolint:gosec
		in = f
	}

	var D = turbo_dec_new(config)

	var ndecisions = 0
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var symbol, parseErr = strconv.ParseUint(line, 2, 8)
		if parseErr != nil || symbol > SYMBOL_MASK {
			log.Fatal("Bad symbol.", "line", line)
		}

		fmt.Printf("%d", turbo_decode_symbol(D, byte(symbol)))
		ndecisions++
	}
	if scanErr := scanner.Err(); scanErr != nil {
		log.Fatal("Could not read input.", "err", scanErr)
	}

	if ndecisions > 0 {
		fmt.Printf("\n")
	}

	log.Info("Done.", "symbols", ndecisions)
}
