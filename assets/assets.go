// Package assets embeds the renderer's built-in shader preset bank and
// a small demo scene, so cmd/raytrace has something to render without
// requiring an external scene file on first use.
package assets

import (
	"embed"
	"fmt"

	"github.com/ishbosamiya/goray/internal/shaderpreset"
)

//go:embed presets/*.yaml scenes/*.json
var embeddedFS embed.FS

// ReadFile reads a file from the embedded filesystem, relative to the
// assets directory (e.g. "presets/default.yaml").
func ReadFile(path string) ([]byte, error) {
	return embeddedFS.ReadFile(path)
}

// DefaultPresetBank parses the built-in material preset bank.
func DefaultPresetBank() (*shaderpreset.ShaderPresetBank, error) {
	data, err := ReadFile("presets/default.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: reading default preset bank: %w", err)
	}
	bank, err := shaderpreset.Load(data)
	if err != nil {
		return nil, fmt.Errorf("assets: parsing default preset bank: %w", err)
	}
	return bank, nil
}

// DemoScene returns the raw JSON of the built-in demo scene, a glass
// sphere over a diffuse ground sphere with no external mesh or HDR
// dependency, decodable directly by sceneio.Unmarshal.
func DemoScene() ([]byte, error) {
	data, err := ReadFile("scenes/demo.json")
	if err != nil {
		return nil, fmt.Errorf("assets: reading demo scene: %w", err)
	}
	return data, nil
}
