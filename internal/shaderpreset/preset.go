// Package shaderpreset loads a YAML document of named material
// presets and turns each into a concrete BSDF + Shader pair, the way
// gazed-vu's load.Shd turns a YAML shader description into a render
// Shader. It is a pure convenience layer over raytrace's BSDF
// library: it does not change any BSDF's sampling/eval/emission
// contract, only how one gets constructed from a config file.
package shaderpreset

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ishbosamiya/goray/internal/raytrace"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// presetKinds is the set of kind strings a preset may name, mirroring
// gazed-vu/load/shd.go's string-to-enum
// validation maps (shaderStages, ShaderAttributes, ...).
var presetKinds = map[string]bool{
	"lambert":               true,
	"glossy":                true,
	"refraction":            true,
	"glass":                 true,
	"emissive":              true,
	"debug":                 true,
	"refraction_dispersion": true,
	"glass_dispersion":      true,
}

var dispersiveMaterials = map[string]raytrace.DispersiveMaterial{
	"diamond": raytrace.DiamondMaterial,
}

var debugFields = map[string]raytrace.DebugField{
	"normal":      raytrace.DebugFieldNormal,
	"uv":          raytrace.DebugFieldUV,
	"barycentric": raytrace.DebugFieldBarycentric,
}

// presetConfig is the YAML shape of one named preset.
type presetConfig struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`
	BaseColor [3]float64 `yaml:"base_color"`
	Roughness float64    `yaml:"roughness"`
	IOR       float64    `yaml:"ior"`
	Power     float64    `yaml:"power"`
	Material  string     `yaml:"material"`
	Field     string     `yaml:"field"`
}

// bankConfig is the top-level YAML document: a flat list of presets.
type bankConfig struct {
	Presets []presetConfig `yaml:"presets"`
}

// Preset is one decoded, ready-to-instantiate material definition.
type Preset struct {
	Name   string
	config presetConfig
}

// ShaderPresetBank is a named collection of material presets loaded
// from YAML, ready to instantiate into fresh Shaders.
type ShaderPresetBank struct {
	presets map[string]Preset
	order   []string
}

// Load parses data as a YAML preset bank document.
func Load(data []byte) (*ShaderPresetBank, error) {
	var cfg bankConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("shaderpreset: yaml: %w", err)
	}

	bank := &ShaderPresetBank{presets: make(map[string]Preset)}
	for _, p := range cfg.Presets {
		if p.Name == "" {
			return nil, fmt.Errorf("shaderpreset: preset with empty name")
		}
		if !presetKinds[p.Kind] {
			return nil, fmt.Errorf("shaderpreset: preset %q: unsupported kind %q", p.Name, p.Kind)
		}
		if p.Kind == "refraction_dispersion" || p.Kind == "glass_dispersion" {
			if _, ok := dispersiveMaterials[p.Material]; !ok {
				return nil, fmt.Errorf("shaderpreset: preset %q: unsupported material %q", p.Name, p.Material)
			}
		}
		if p.Kind == "debug" && p.Field != "" {
			if _, ok := debugFields[p.Field]; !ok {
				return nil, fmt.Errorf("shaderpreset: preset %q: unsupported field %q", p.Name, p.Field)
			}
		}
		if _, exists := bank.presets[p.Name]; exists {
			return nil, fmt.Errorf("shaderpreset: duplicate preset name %q", p.Name)
		}
		bank.presets[p.Name] = Preset{Name: p.Name, config: p}
		bank.order = append(bank.order, p.Name)
	}
	return bank, nil
}

// Names returns every preset name in document order.
func (b *ShaderPresetBank) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Instantiate builds a fresh BSDF for the named preset, and wraps it
// in a Shader named after the preset. Each call returns a new BSDF
// instance, so callers may freely mutate the returned Shader's
// ViewportColor or rebind the BSDF's color without affecting other
// uses of the same preset.
func (b *ShaderPresetBank) Instantiate(name string) (*raytrace.Shader, error) {
	p, ok := b.presets[name]
	if !ok {
		return nil, fmt.Errorf("shaderpreset: no preset named %q", name)
	}

	bsdf, err := instantiateBSDF(p.config)
	if err != nil {
		return nil, fmt.Errorf("shaderpreset: preset %q: %w", name, err)
	}
	return raytrace.NewShader(p.Name, bsdf), nil
}

func instantiateBSDF(c presetConfig) (raytrace.BSDF, error) {
	color := vecmath.Vec3{c.BaseColor[0], c.BaseColor[1], c.BaseColor[2]}

	switch c.Kind {
	case "lambert":
		return raytrace.NewLambert(color), nil
	case "glossy":
		return raytrace.NewGlossy(color, c.Roughness), nil
	case "refraction":
		return raytrace.NewRefraction(color, c.IOR, c.Roughness), nil
	case "glass":
		return raytrace.NewGlass(color, c.IOR, c.Roughness), nil
	case "refraction_dispersion":
		return raytrace.NewRefractionDispersion(color, dispersiveMaterials[c.Material], c.Roughness), nil
	case "glass_dispersion":
		return raytrace.NewGlassDispersion(color, dispersiveMaterials[c.Material], c.Roughness), nil
	case "emissive":
		return raytrace.NewEmissive(color, c.Power), nil
	case "debug":
		field := raytrace.DebugFieldNormal
		if c.Field != "" {
			field = debugFields[c.Field]
		}
		return &raytrace.Debug{Field: field}, nil
	default:
		return nil, fmt.Errorf("unsupported kind %q", c.Kind)
	}
}
