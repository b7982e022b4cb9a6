// Package bvh implements a generic k-DOP bounding volume hierarchy: an
// arena of nodes addressed by slice index rather than owning pointers, so
// that a tree can hold arbitrary comparable payload types without
// lifetime cycles. It supports insertion, a one-time balance into an
// implicit tree, in-place refitting, pairwise overlap queries, and ray
// casting.
package bvh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// kdopAxes are the 13 unit/diagonal directions used to build k-DOP
// bounds. Index 0-2 are the cardinal axes, 3-6 the corner diagonals and
// 7-12 the edge diagonals; axisRange selects a contiguous slice of this
// table for each k.
var kdopAxes = [13]mgl64.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
	{1, -1, 1},
	{1, 1, -1},
	{1, -1, -1},
	{1, 1, 0},
	{1, 0, 1},
	{0, 1, 1},
	{1, -1, 0},
	{1, 0, -1},
	{0, 1, -1},
}

// axisRange returns the [startAxis, stopAxis) range of kdopAxes active
// for a given k value: 6 -> plain AABB (axes 0-2), 8 -> AABB plus one
// corner diagonal (0-3), 14 -> cardinal and corner axes (0-6), 26 -> all
// 13 axes. 18 selects only the six edge diagonals (7-12), so it bounds
// with 12 half-planes and has no cardinal axes.
func axisRange(k int) (start, stop int, ok bool) {
	switch k {
	case 26:
		return 0, 13, true
	case 18:
		return 7, 13, true
	case 14:
		return 0, 7, true
	case 8:
		return 0, 4, true
	case 6:
		return 0, 3, true
	default:
		return 0, 0, false
	}
}

// node is an arena entry: either a leaf (HasElem true, no Children) or a
// branch (Children populated, HasElem false).
type node[T any] struct {
	children []int
	parent   int // -1 if root
	bv       [26]float64
	elem     T
	hasElem  bool
	mainAxis int // 0, 1 or 2 - which cardinal axis this branch split on
}

func newLeafNode[T any](elem T) node[T] {
	return node[T]{parent: -1, elem: elem, hasElem: true}
}

func (n *node[T]) minMaxInit(start, stop int) {
	for a := start; a < stop; a++ {
		n.bv[2*a] = math.MaxFloat64
		n.bv[2*a+1] = -math.MaxFloat64
	}
}

// createKDOPHull computes the min/max projection of points onto each
// active axis, then inflates the hull by epsilon on every side.
func (n *node[T]) createKDOPHull(start, stop int, points []mgl64.Vec3, epsilon float64) {
	n.minMaxInit(start, stop)
	for _, p := range points {
		for a := start; a < stop; a++ {
			proj := p.Dot(kdopAxes[a])
			if proj < n.bv[2*a] {
				n.bv[2*a] = proj
			}
			if proj > n.bv[2*a+1] {
				n.bv[2*a+1] = proj
			}
		}
	}
	for a := start; a < stop; a++ {
		n.bv[2*a] -= epsilon
		n.bv[2*a+1] += epsilon
	}
}

// mergeChildBounds folds another node's bv into this node's bv (used
// while building branch nodes and while refitting).
func (n *node[T]) mergeChildBounds(start, stop int, child *node[T]) {
	for a := start; a < stop; a++ {
		if child.bv[2*a] < n.bv[2*a] {
			n.bv[2*a] = child.bv[2*a]
		}
		if child.bv[2*a+1] > n.bv[2*a+1] {
			n.bv[2*a+1] = child.bv[2*a+1]
		}
	}
}

// overlapTest reports whether two nodes' k-DOP bounds intersect on every
// active axis (a k-DOP generalization of the usual AABB slab-disjoint
// test).
func (n *node[T]) overlapTest(other *node[T], start, stop int) bool {
	for a := start; a < stop; a++ {
		if n.bv[2*a] > other.bv[2*a+1] || other.bv[2*a] > n.bv[2*a+1] {
			return false
		}
	}
	return true
}

// largestAxis returns which of the three cardinal axes has the greatest
// extent in this node's bound. Used to choose both the branch split axis
// and the ray-traversal visitation order.
func (n *node[T]) largestAxis() int {
	ex := n.bv[1] - n.bv[0]
	ey := n.bv[3] - n.bv[2]
	ez := n.bv[5] - n.bv[4]
	axis := 0
	best := ex
	if ey > best {
		axis, best = 1, ey
	}
	if ez > best {
		axis = 2
	}
	return axis
}
