package turboenc

/*------------------------------------------------------------------
 *
 * Name:	gen_symbols
 *
 * Purpose:	Test program for generating encoded symbol streams.
 *
 * Description:	A given bit stream is framed into 8-bit windows, clocked
 *		through the encode automaton one bit per tick, and the
 *		resulting symbols are written one per line as 3 binary
 *		digits.
 *
 * Examples:	gen_symbols 1011001011110000
 *
 *			Encode two windows given on the command line.
 *
 *		gen_symbols -N 100 -o z.dat
 *		dec_symbols z.dat
 *
 *			100 random windows, then decode them again.
 *
 *		gen_symbols -N 100 -e 0.05 -o z.dat
 *
 *			Same with 5% artificial bit errors on the symbols.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func GenSymbolsMain() {
	var blockCount = pflag.IntP("block-count", "N", 0, "Generate specified number of random 8-bit windows.")
	var errorRate = pflag.Float64P("error-rate", "e", 0, "Artificially introduce this bit error rate on the symbols.")
	var outputFile = pflag.StringP("output-file", "o", "", "Send output to file rather than stdout.")
	var configFile = pflag.StringP("config-file", "c", "", "Read codec parameters from YAML file.")
	var debugLevel = pflag.IntP("debug", "d", 0, "Debug level, 1 or 2.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate encoded symbols from a bit stream.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [bits|file|-]\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "The argument is a string of 0s and 1s, a file containing one,\n")
		fmt.Fprintf(os.Stderr, "or \"-\" for stdin.  Whitespace is ignored.  An incomplete final\n")
		fmt.Fprintf(os.Stderr, "window is padded with zero bits.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	if *errorRate < 0 || *errorRate > 1 {
		log.Fatal("Error rate must be between 0 and 1.", "error-rate", *errorRate)
	}

	turbo_set_debug(*debugLevel)

	var config, configErr = turbo_config_load(*configFile)
	if configErr != nil {
		log.Fatal("Could not load config.", "err", configErr)
	}

	var dbits []byte
	if *blockCount > 0 {
		if pflag.NArg() > 0 {
			log.Fatal("Cannot choose both random windows (-N) and explicit input - pick at most one.")
		}
		for i := 0; i < *blockCount*TURBO_BLOCK_SIZE; i++ {
			dbits = append(dbits, turbo_rand_bit())
		}
	} else {
		var text, readErr = gen_symbols_read_input(pflag.Args())
		if readErr != nil {
			log.Fatal("Could not read input.", "err", readErr)
		}

		var parsed, parseErr = turbo_parse_bits(text)
		if parseErr != nil {
			log.Fatal("Bad input.", "err", parseErr)
		}
		dbits = parsed
	}

	if len(dbits) == 0 {
		log.Fatal("No input bits.  Provide a bit string or use -N.")
	}

	var out io.Writer = os.Stdout
	if *outputFile != "" {
		var f, createErr = os.Create(*outputFile)
		if createErr != nil {
			log.Fatal("Could not create output file.", "err", createErr)
		}
		defer f.Close() //nolint:gosec
		out = f
	}

	if len(dbits)%TURBO_BLOCK_SIZE != 0 {
		log.Warn("Padding incomplete final window with zero bits.",
			"bits", len(dbits)%TURBO_BLOCK_SIZE)
		for len(dbits)%TURBO_BLOCK_SIZE != 0 {
			dbits = append(dbits, 0)
		}
	}

	var E = turbo_enc_new(config)

	var nsymbols = 0
	for i := 0; i < len(dbits); i += TURBO_BLOCK_SIZE {
		var symbol = turbo_encode_window(E, dbits[i:i+TURBO_BLOCK_SIZE])

		if *errorRate > 0 {
			symbol = turbo_noise_flip(symbol, *errorRate)
		}

		fmt.Fprintf(out, "%03b\n", symbol)
		nsymbols++
	}

	log.Info("Done.", "windows", nsymbols)
}

func gen_symbols_read_input(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("no input given")
	}

	// A bit string may arrive shell-split into several arguments;
	// join before testing for it.
	var arg = strings.Join(args, "")

	if arg == "-" {
		var raw, err = io.ReadAll(os.Stdin)
		return string(raw), err
	}

	// Pure 0s and 1s on the command line, otherwise treat as a file name.
	if strings.Trim(arg, "01") == "" {
		return arg, nil
	}

	if len(args) > 1 {
		return "", fmt.Errorf("expected a bit string or a single file name, got %d arguments", len(args))
	}

	var raw, err = os.ReadFile(args[0])
	return string(raw), err
}

// turbo_parse_bits converts "10110..." text to one byte per bit,
// ignoring whitespace.
func turbo_parse_bits(text string) ([]byte, error) {
	var dbits []byte

	for _, c := range text {
		switch c {
		case '0':
			dbits = append(dbits, 0)
		case '1':
			dbits = append(dbits, 1)
		case ' ', '\t', '\r', '\n':
			// ignore
		default:
			return nil, fmt.Errorf("bit stream may only contain 0, 1, and whitespace, found %q", c)
		}
	}

	return dbits, nil
}
