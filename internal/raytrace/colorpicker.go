package raytrace

import "github.com/ishbosamiya/goray/internal/vecmath"

// ColorPicker is a BSDF base-color source: either a constant RGB value
// or a reference to a texture looked up by UV at shading time.
type ColorPicker struct {
	constant vecmath.Vec3
	texID    TextureID
	hasTex   bool
}

// ConstantColor returns a ColorPicker that always evaluates to c.
func ConstantColor(c vecmath.Vec3) ColorPicker {
	return ColorPicker{constant: c}
}

// TextureColor returns a ColorPicker that looks up id in the given
// TextureList at shading time.
func TextureColor(id TextureID) ColorPicker {
	return ColorPicker{texID: id, hasTex: true}
}

// GetColor resolves the color at uv. If this picker references a
// texture that is no longer present in textures, it returns false.
func (c ColorPicker) GetColor(uv vecmath.Vec2, textures *TextureList) (vecmath.Vec3, bool) {
	if !c.hasTex {
		return c.constant, true
	}
	if textures == nil {
		return vecmath.Vec3{}, false
	}
	tex := textures.Get(c.texID)
	if tex == nil {
		return vecmath.Vec3{}, false
	}
	return tex.PixelUV(uv), true
}

// Constant reports whether this picker is a constant color and, if so,
// returns it.
func (c ColorPicker) Constant() (vecmath.Vec3, bool) {
	if c.hasTex {
		return vecmath.Vec3{}, false
	}
	return c.constant, true
}
