package raytrace

import (
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ishbosamiya/goray/internal/bvh"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// Scene owns every Object and the top-level BVH used to accelerate
// Hit. Model matrices must be applied (baked into world space) before
// Hit or BuildBVH are called; ApplyModelMatrices/UnapplyModelMatrices
// toggle between world and local space.
type Scene struct {
	objects map[ObjectID]*Object
	order   []ObjectID

	bvh                  *bvh.Tree[ObjectID]
	modelMatricesApplied bool
}

// NewScene returns an empty Scene.
func NewScene() *Scene {
	return &Scene{objects: make(map[ObjectID]*Object)}
}

// AddObject assigns obj a fresh ObjectID, inserts it, and invalidates
// the top-level BVH (the caller must rebuild before the next Hit).
func (s *Scene) AddObject(obj *Object) ObjectID {
	var id ObjectID
	for {
		id = ObjectID(rand.Uint64())
		if _, exists := s.objects[id]; !exists && id != 0 {
			break
		}
	}
	obj.ID = id
	s.objects[id] = obj
	s.order = append(s.order, id)
	s.bvh = nil
	return id
}

// AddObjectWithID inserts obj under its own ID field rather than
// assigning a fresh one, for callers (scene file loading) that must
// preserve the IDs a scene file's shader bindings or parenting refer
// to. It is an error for that ID to already be in use or zero.
func (s *Scene) AddObjectWithID(obj *Object) error {
	if obj.ID == 0 {
		return fmt.Errorf("raytrace: object has no ID to preserve")
	}
	if _, exists := s.objects[obj.ID]; exists {
		return fmt.Errorf("raytrace: object id %d already in use", obj.ID)
	}
	s.objects[obj.ID] = obj
	s.order = append(s.order, obj.ID)
	s.bvh = nil
	return nil
}

// DeleteObject removes the object with id, if present, and
// invalidates the top-level BVH.
func (s *Scene) DeleteObject(id ObjectID) {
	if _, ok := s.objects[id]; !ok {
		return
	}
	delete(s.objects, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.bvh = nil
}

// Objects returns every object in insertion order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, len(s.order))
	for i, id := range s.order {
		out[i] = s.objects[id]
	}
	return out
}

// ApplyModelMatrices bakes every object's transform into world space.
// A no-op if matrices are already applied.
func (s *Scene) ApplyModelMatrices() error {
	if s.modelMatricesApplied {
		return nil
	}
	for _, id := range s.order {
		if err := s.objects[id].ApplyModelMatrix(); err != nil {
			return err
		}
	}
	s.modelMatricesApplied = true
	return nil
}

// UnapplyModelMatrices restores every object's local space. A no-op if
// matrices are not currently applied.
func (s *Scene) UnapplyModelMatrices() error {
	if !s.modelMatricesApplied {
		return nil
	}
	for _, id := range s.order {
		if err := s.objects[id].UnapplyModelMatrix(); err != nil {
			return err
		}
	}
	s.modelMatricesApplied = false
	return nil
}

// BVHDirty reports whether the top-level BVH needs rebuilding: it has
// never been built, or AddObject/DeleteObject has run since.
func (s *Scene) BVHDirty() bool {
	return s.bvh == nil
}

// BuildBVH (re)builds the top-level object BVH from each object's
// current world-space bounds. Requires ApplyModelMatrices to have run.
func (s *Scene) BuildBVH(epsilon float64) error {
	if !s.modelMatricesApplied {
		return fmt.Errorf("raytrace: cannot build scene bvh before applying model matrices")
	}
	tree, err := bvh.New[ObjectID](len(s.order), epsilon, 4, 8)
	if err != nil {
		return fmt.Errorf("raytrace: building scene bvh: %w", err)
	}
	for _, id := range s.order {
		obj := s.objects[id]
		if _, err := tree.Insert(id, obj.WorldBounds()); err != nil {
			return fmt.Errorf("raytrace: inserting object %d into scene bvh: %w", id, err)
		}
	}
	if err := tree.Balance(); err != nil {
		return fmt.Errorf("raytrace: balancing scene bvh: %w", err)
	}
	s.bvh = tree
	return nil
}

// Hit intersects ray against every object via the top-level BVH,
// returning the nearest hit in (tMin, tMax). Without a built BVH it
// falls back to testing every object in turn. Panics if model matrices
// are not applied, matching the original's debug-assertion contract.
func (s *Scene) Hit(ray vecmath.Ray, tMin, tMax float64) (IntersectInfo, bool) {
	if !s.modelMatricesApplied {
		panic("raytrace: Scene.Hit called without model matrices applied")
	}
	if s.bvh == nil {
		var best IntersectInfo
		found := false
		for _, id := range s.order {
			if info, hit := s.objects[id].Hit(ray, tMin, tMax); hit && (!found || info.T < best.T) {
				best, found = info, true
			}
		}
		return best, found
	}

	hitInfos := make(map[ObjectID]IntersectInfo)
	_, ok := s.bvh.RayCast(ray.Origin, ray.Direction, tMin, tMax, func(_, _ mgl64.Vec3, objectID ObjectID) (bool, float64) {
		obj, exists := s.objects[objectID]
		if !exists {
			return false, 0
		}
		info, hit := obj.Hit(ray, tMin, tMax)
		if !hit {
			return false, 0
		}
		hitInfos[objectID] = info
		return true, info.T
	})
	if !ok {
		return IntersectInfo{}, false
	}

	// RayCast only tells us which leaf produced the closest t; recover
	// the IntersectInfo it computed along the way instead of
	// re-intersecting.
	var best IntersectInfo
	found := false
	for _, info := range hitInfos {
		if !found || info.T < best.T {
			best, found = info, true
		}
	}
	return best, found
}
