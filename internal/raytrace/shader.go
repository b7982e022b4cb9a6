package raytrace

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/ishbosamiya/goray/internal/vecmath"
)

// ShaderID uniquely identifies a Shader within a ShaderList.
type ShaderID uint64

// Shader pairs a BSDF with a name and a flat viewport color used by
// non-path-traced previews.
type Shader struct {
	ID             ShaderID
	Name           string
	ViewportColor  vecmath.Vec3
	BSDF           BSDF
}

// NewShader wraps bsdf in a Shader with the given display name. ID is
// assigned when the shader is added to a ShaderList.
func NewShader(name string, bsdf BSDF) *Shader {
	return &Shader{Name: name, BSDF: bsdf, ViewportColor: vecmath.Vec3{0.8, 0.8, 0.8}}
}

// ShaderList owns the scene's shaders, keyed by ShaderID, with
// insertion order preserved for stable iteration (scene export, UI
// listing).
type ShaderList struct {
	mu       sync.RWMutex
	shaders  map[ShaderID]*Shader
	ordered  []ShaderID
}

// NewShaderList returns an empty ShaderList.
func NewShaderList() *ShaderList {
	return &ShaderList{shaders: make(map[ShaderID]*Shader)}
}

// DefaultShaderList returns a ShaderList seeded with a single black
// Lambert shader, matching the fallback every new scene object is
// assigned before a user picks a material.
func DefaultShaderList() *ShaderList {
	list := NewShaderList()
	list.Add(NewShader("default", NewLambert(vecmath.Vec3{0, 0, 0})))
	return list
}

// Add inserts shader, assigns it a fresh ShaderID, and returns that ID.
func (l *ShaderList) Add(shader *Shader) ShaderID {
	l.mu.Lock()
	defer l.mu.Unlock()
	var id ShaderID
	for {
		id = ShaderID(rand.Uint64())
		if _, exists := l.shaders[id]; !exists && id != 0 {
			break
		}
	}
	shader.ID = id
	l.shaders[id] = shader
	l.ordered = append(l.ordered, id)
	return id
}

// AddWithID inserts shader under its own ID field rather than
// assigning a fresh one, for callers (scene file loading) that must
// preserve IDs other shaders or objects already reference. It is an
// error for that ID to already be in use or zero.
func (l *ShaderList) AddWithID(shader *Shader) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if shader.ID == 0 {
		return fmt.Errorf("raytrace: shader %q has no ID to preserve", shader.Name)
	}
	if _, exists := l.shaders[shader.ID]; exists {
		return fmt.Errorf("raytrace: shader id %d already in use", shader.ID)
	}
	l.shaders[shader.ID] = shader
	l.ordered = append(l.ordered, shader.ID)
	return nil
}

// Get returns the shader with id, or false if it doesn't exist.
func (l *ShaderList) Get(id ShaderID) (*Shader, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s, ok := l.shaders[id]
	return s, ok
}

// Delete removes the shader with id.
func (l *ShaderList) Delete(id ShaderID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.shaders[id]; !ok {
		return fmt.Errorf("raytrace: shader %d does not exist", id)
	}
	delete(l.shaders, id)
	for i, existing := range l.ordered {
		if existing == id {
			l.ordered = append(l.ordered[:i], l.ordered[i+1:]...)
			break
		}
	}
	return nil
}

// IDs returns every ShaderID in insertion order.
func (l *ShaderList) IDs() []ShaderID {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]ShaderID, len(l.ordered))
	copy(out, l.ordered)
	return out
}

// Len reports how many shaders are in the list.
func (l *ShaderList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.ordered)
}
