package turboenc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "turboenc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestConfigDefaults(t *testing.T) {
	var config, err = turbo_config_load("")
	require.NoError(t, err)

	assert.Equal(t, byte(0b1011), config.G1)
	assert.Equal(t, byte(0b1101), config.G2)
	assert.Equal(t, byte(TURBO_INTERLEAVE_PATTERN), config.InterleavePattern)
	assert.Equal(t, 4, config.MaxIterations)
	assert.Equal(t, 8, config.LLRScale)
}

func TestConfigPartialFileKeepsDefaults(t *testing.T) {
	var path = writeConfig(t, "max_iterations: 1\n")

	var config, err = turbo_config_load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, config.MaxIterations)
	assert.Equal(t, byte(TURBO_G1), config.G1, "unspecified fields keep their defaults")
	assert.Equal(t, TURBO_LLR_SCALE, config.LLRScale)
}

func TestConfigFullFile(t *testing.T) {
	var path = writeConfig(t, `g1: 0b0111
g2: 0b1001
interleave_pattern: 0x05
max_iterations: 2
llr_scale: 16
`)

	var config, err = turbo_config_load(path)
	require.NoError(t, err)

	assert.Equal(t, byte(0b0111), config.G1)
	assert.Equal(t, byte(0b1001), config.G2)
	assert.Equal(t, byte(5), config.InterleavePattern)
	assert.Equal(t, 2, config.MaxIterations)
	assert.Equal(t, 16, config.LLRScale)
}

func TestConfigValidation(t *testing.T) {
	var bad = []string{
		"g1: 0\n",
		"g1: 0x1f\n",
		"g2: 0\n",
		"g2: 255\n",
		"max_iterations: 0\n",
		"llr_scale: 0\n",
		"llr_scale: 128\n",
	}

	for _, content := range bad {
		var _, err = turbo_config_load(writeConfig(t, content))
		assert.Error(t, err, "accepted %q", content)
	}
}

func TestConfigMissingFile(t *testing.T) {
	var _, err = turbo_config_load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestConfigUnparseableFile(t *testing.T) {
	var _, err = turbo_config_load(writeConfig(t, "g1: [not an int\n"))
	assert.Error(t, err)
}
