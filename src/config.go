package turboenc

/*------------------------------------------------------------------
 *
 * Purpose:	Optional YAML file with the codec's construction-time
 *		parameters.
 *
 * Description: All of these are fixed constants in the hardware.  The
 *		tools accept a file so experiments (different generator
 *		taps, a different interleaver index, a shorter iteration
 *		bound) don't need a rebuild.  Anything absent from the
 *		file keeps its default.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type turbo_config_s struct {
	G1                byte `yaml:"g1"`                 /* Generator taps for E1. */
	G2                byte `yaml:"g2"`                 /* Generator taps for E2. */
	InterleavePattern byte `yaml:"interleave_pattern"` /* Low 3 bits select E2's block index. */
	MaxIterations     int  `yaml:"max_iterations"`
	LLRScale          int  `yaml:"llr_scale"`
}

func turbo_config_default() *turbo_config_s {
	return &turbo_config_s{
		G1:                TURBO_G1,
		G2:                TURBO_G2,
		InterleavePattern: TURBO_INTERLEAVE_PATTERN,
		MaxIterations:     TURBO_MAX_ITERATIONS,
		LLRScale:          TURBO_LLR_SCALE,
	}
}

/*-------------------------------------------------------------
 *
 * Name:	turbo_config_load
 *
 * Purpose:	Read codec parameters from a YAML file, filling in
 *		defaults for anything not specified.
 *
 * Inputs:	path	- File name.  "" means just the defaults.
 *
 * Returns:	Validated configuration, or an error describing the
 *		first problem found.
 *
 *--------------------------------------------------------------*/

func turbo_config_load(path string) (*turbo_config_s, error) {
	var config = turbo_config_default()

	if path != "" {
		var raw, readErr = os.ReadFile(path)
		if readErr != nil {
			return nil, fmt.Errorf("could not read config %s: %w", path, readErr)
		}

		if unmarshalErr := yaml.Unmarshal(raw, config); unmarshalErr != nil {
			return nil, fmt.Errorf("could not parse config %s: %w", path, unmarshalErr)
		}
	}

	if validateErr := turbo_config_validate(config); validateErr != nil {
		return nil, fmt.Errorf("bad config %s: %w", path, validateErr)
	}

	return config, nil
}

func turbo_config_validate(config *turbo_config_s) error {
	if config.G1 == 0 || config.G1&0x0f != config.G1 {
		return fmt.Errorf("g1 must be a non-zero 4-bit mask, got %#x", config.G1)
	}

	if config.G2 == 0 || config.G2&0x0f != config.G2 {
		return fmt.Errorf("g2 must be a non-zero 4-bit mask, got %#x", config.G2)
	}

	if config.MaxIterations < 1 {
		return fmt.Errorf("max_iterations must be at least 1, got %d", config.MaxIterations)
	}

	if config.LLRScale < 1 || config.LLRScale > 127 {
		return fmt.Errorf("llr_scale must fit a signed 8-bit value, got %d", config.LLRScale)
	}

	return nil
}
