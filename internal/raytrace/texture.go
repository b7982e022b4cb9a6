package raytrace

import (
	"math/rand"
	"sync"

	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// TextureID stably identifies a texture within a TextureList.
type TextureID uint64

// Texture is a 2D image sampled by UV coordinate, used as a BSDF base
// color source.
type Texture struct {
	Name  string
	Image *image.Image
}

// PixelUV samples the texture at (u, v), each typically in [0, 1).
func (t *Texture) PixelUV(uv vecmath.Vec2) vecmath.Vec3 {
	if t == nil || t.Image == nil {
		return vecmath.Vec3{}
	}
	return t.Image.PixelUV(uv[0], uv[1])
}

// TextureList owns every texture a scene's shaders may reference by id,
// guarding concurrent access the same way ShaderList does: readers (the
// render workers) take RLock, mutators (load/delete) take Lock.
type TextureList struct {
	mu         sync.RWMutex
	textures   map[TextureID]*Texture
	insertion  []TextureID
}

// NewTextureList returns an empty texture list.
func NewTextureList() *TextureList {
	return &TextureList{textures: make(map[TextureID]*Texture)}
}

// Add stores tex under a freshly generated id and returns it.
func (tl *TextureList) Add(tex *Texture) TextureID {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	id := TextureID(rand.Uint64())
	for _, exists := tl.textures[id]; exists; _, exists = tl.textures[id] {
		id = TextureID(rand.Uint64())
	}
	tl.textures[id] = tex
	tl.insertion = append(tl.insertion, id)
	return id
}

// Get returns the texture for id, or nil if not present.
func (tl *TextureList) Get(id TextureID) *Texture {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	return tl.textures[id]
}

// Delete removes a texture from the list.
func (tl *TextureList) Delete(id TextureID) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.textures, id)
	for i, existing := range tl.insertion {
		if existing == id {
			tl.insertion = append(tl.insertion[:i], tl.insertion[i+1:]...)
			break
		}
	}
}

// IDs returns every texture id in insertion order.
func (tl *TextureList) IDs() []TextureID {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	out := make([]TextureID, len(tl.insertion))
	copy(out, tl.insertion)
	return out
}
