package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
width: 1920
height: 1080
samples: 64
depth: 10
scene: scenes/cornell.json
out: out/cornell.bin
ppm: out/cornell.ppm
environment: env/studio.bin
environment_strength: 1.5
bvh_epsilon: 0.001
`

func TestLoadParsesAllFields(t *testing.T) {
	cfg, err := Load([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, 1080, cfg.Height)
	assert.Equal(t, 64, cfg.Samples)
	assert.Equal(t, 10, cfg.Depth)
	assert.Equal(t, "scenes/cornell.json", cfg.ScenePath)
	assert.Equal(t, "out/cornell.bin", cfg.Out)
	assert.Equal(t, "out/cornell.ppm", cfg.PPM)
	assert.Equal(t, "env/studio.bin", cfg.EnvironmentPath)
	assert.True(t, cfg.HasEnvironmentStrength)
	assert.Equal(t, 1.5, cfg.EnvironmentStrength)
	assert.Equal(t, 0.001, cfg.BVHEpsilon)
}

func TestLoadLeavesEnvironmentStrengthUnsetWhenAbsent(t *testing.T) {
	cfg, err := Load([]byte("width: 640\nheight: 480\n"))
	require.NoError(t, err)

	assert.False(t, cfg.HasEnvironmentStrength)
	assert.Equal(t, 640, cfg.Width)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load([]byte("width: [unterminated"))
	assert.Error(t, err)
}
