package bvh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RayHit is the result of a successful RayCast: the parametric distance
// along the ray and the payload of the leaf that produced it.
type RayHit[T any] struct {
	T       float64
	Payload T
}

// slabTest is the k-DOP generalization of the classic AABB slab test: it
// narrows [tNear, tFar] by the ray's intersection with every active
// axis's pair of half-planes, returning ok=false as soon as the interval
// is empty.
func slabTest(origin, dir mgl64.Vec3, bv *[26]float64, start, stop int, tMin, tMax float64) (tNear, tFar float64, ok bool) {
	tNear, tFar = tMin, tMax
	for a := start; a < stop; a++ {
		d := dir.Dot(kdopAxes[a])
		o := origin.Dot(kdopAxes[a])
		if math.Abs(d) < 1e-12 {
			if o < bv[2*a] || o > bv[2*a+1] {
				return 0, 0, false
			}
			continue
		}
		t1 := (bv[2*a] - o) / d
		t2 := (bv[2*a+1] - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tNear {
			tNear = t1
		}
		if t2 < tFar {
			tFar = t2
		}
		if tNear > tFar {
			return 0, 0, false
		}
	}
	return tNear, tFar, true
}

// LeafTestFunc tests a ray against a single leaf's payload, returning
// whether it hit and at what ray parameter. Called only for leaves whose
// k-DOP bound the ray already passes.
type LeafTestFunc[T any] func(origin, dir mgl64.Vec3, payload T) (hit bool, t float64)

// RayCast walks the tree in main-axis order, pruning any node whose
// k-DOP bound does not intersect [tMin, current best t), and returns the
// closest leaf hit within (tMin, tMax) if any.
func (t *Tree[T]) RayCast(origin, dir mgl64.Vec3, tMin, tMax float64, leafTest LeafTestFunc[T]) (RayHit[T], bool) {
	if !t.balanced || t.root < 0 {
		return RayHit[T]{}, false
	}
	best := tMax
	var result RayHit[T]
	found := false

	var visit func(idx int)
	visit = func(idx int) {
		n := &t.nodes[idx]
		if _, _, ok := slabTest(origin, dir, &n.bv, t.startAxis, t.stopAxis, tMin, best); !ok {
			return
		}
		if n.hasElem {
			if hit, th := leafTest(origin, dir, n.elem); hit && th > tMin && th < best {
				best = th
				result = RayHit[T]{T: th, Payload: n.elem}
				found = true
			}
			return
		}
		if dir[n.mainAxis] < 0 {
			for i := len(n.children) - 1; i >= 0; i-- {
				visit(n.children[i])
			}
		} else {
			for _, c := range n.children {
				visit(c)
			}
		}
	}
	visit(t.root)
	return result, found
}

// OverlapPair is one intersecting leaf pair reported by Overlap.
type OverlapPair[T any] struct {
	A, B T
}

// Overlap reports every pair of leaves (one from t, one from other)
// whose k-DOP bounds intersect, optionally gated by filter (nil accepts
// all pairs). Calling t.Overlap(t, filter) performs self-intersection:
// the same node paired with itself is skipped, but distinct leaves with
// coincident bounds are still reported in both orders, since the
// traversal is not deduplicated by leaf index.
func (t *Tree[T]) Overlap(other *Tree[T], filter func(a, b T) bool) []OverlapPair[T] {
	if !t.balanced || !other.balanced || t.root < 0 || other.root < 0 {
		return nil
	}
	start := t.startAxis
	if other.startAxis < start {
		start = other.startAxis
	}
	stop := t.stopAxis
	if other.stopAxis < stop {
		stop = other.stopAxis
	}

	var result []OverlapPair[T]
	self := t == other

	var visit func(idxA, idxB int)
	visit = func(idxA, idxB int) {
		na := &t.nodes[idxA]
		nb := &other.nodes[idxB]
		if !na.overlapTest(nb, start, stop) {
			return
		}
		if na.hasElem && nb.hasElem {
			if self && idxA == idxB {
				return
			}
			if filter == nil || filter(na.elem, nb.elem) {
				result = append(result, OverlapPair[T]{A: na.elem, B: nb.elem})
			}
			return
		}
		if na.hasElem {
			for _, c := range nb.children {
				visit(idxA, c)
			}
			return
		}
		if nb.hasElem {
			for _, c := range na.children {
				visit(c, idxB)
			}
			return
		}
		for _, ca := range na.children {
			for _, cb := range nb.children {
				visit(ca, cb)
			}
		}
	}
	visit(t.root, other.root)
	return result
}
