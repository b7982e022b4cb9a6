package shaderpreset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBank = `
presets:
  - name: red_wall
    kind: lambert
    base_color: [0.8, 0.1, 0.1]
  - name: chrome
    kind: glossy
    base_color: [0.9, 0.9, 0.9]
    roughness: 0.05
  - name: windowpane
    kind: glass
    base_color: [1, 1, 1]
    ior: 1.5
  - name: bulb
    kind: emissive
    base_color: [1, 1, 1]
    power: 8
  - name: diamond
    kind: glass_dispersion
    base_color: [1, 1, 1]
    material: diamond
  - name: normals
    kind: debug
    field: uv
`

func TestLoadParsesEveryPreset(t *testing.T) {
	bank, err := Load([]byte(testBank))
	require.NoError(t, err)
	assert.Equal(t, []string{"red_wall", "chrome", "windowpane", "bulb", "diamond", "normals"}, bank.Names())
}

func TestInstantiateBuildsDistinctBSDFInstances(t *testing.T) {
	bank, err := Load([]byte(testBank))
	require.NoError(t, err)

	shaderA, err := bank.Instantiate("red_wall")
	require.NoError(t, err)
	shaderB, err := bank.Instantiate("red_wall")
	require.NoError(t, err)

	assert.Equal(t, "red_wall", shaderA.Name)
	assert.Equal(t, "lambert", shaderA.BSDF.Name())
	assert.NotSame(t, shaderA.BSDF, shaderB.BSDF)
	assert.NotSame(t, shaderA, shaderB)
}

func TestInstantiateUnknownPresetFails(t *testing.T) {
	bank, err := Load([]byte(testBank))
	require.NoError(t, err)

	_, err = bank.Instantiate("does_not_exist")
	assert.Error(t, err)
}

func TestLoadRejectsUnsupportedKind(t *testing.T) {
	_, err := Load([]byte(`
presets:
  - name: bad
    kind: plasma
`))
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateName(t *testing.T) {
	_, err := Load([]byte(`
presets:
  - name: dup
    kind: lambert
  - name: dup
    kind: glossy
`))
	assert.Error(t, err)
}

func TestLoadRejectsUnknownDispersiveMaterial(t *testing.T) {
	_, err := Load([]byte(`
presets:
  - name: bad_gem
    kind: glass_dispersion
    material: ruby
`))
	assert.Error(t, err)
}
