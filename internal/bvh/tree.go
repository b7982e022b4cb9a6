package bvh

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// float64Epsilon mirrors Rust's Scalar::epsilon() for f64: the smallest
// representable difference from 1.0. Tree epsilon is clamped to at
// least this value so a zero-sized leaf still has a non-degenerate
// bound.
const float64Epsilon = 2.220446049250313e-16

// Tree is a k-DOP bounding volume hierarchy over payload type T. Nodes
// live in a single arena (Tree.nodes); children and parents are arena
// indices, never pointers, so the tree has no reference cycles and can
// be copied or serialized as plain data.
//
// Usage: Insert every leaf, call Balance exactly once, then UpdateNode
// plus UpdateTree to refit after leaves move, or RayCast/Overlap to
// query.
type Tree[T any] struct {
	nodes      []node[T]
	leafPoints [][]mgl64.Vec3

	totLeaf  int
	root     int
	balanced bool

	treeType  int
	axis      int
	startAxis int
	stopAxis  int
	epsilon   float64
}

// New creates an empty tree. maxLeaves sizes the initial arena capacity
// only (Insert may exceed it); epsilon inflates every leaf bound;
// treeType is the branching factor (2-32); axis selects the k-DOP
// fidelity (6, 8, 14, 18 or 26).
func New[T any](maxLeaves int, epsilon float64, treeType, axis int) (*Tree[T], error) {
	start, stop, ok := axisRange(axis)
	if !ok {
		return nil, ErrBadAxis
	}
	if treeType < 2 || treeType > 32 {
		return nil, ErrBadTreeType
	}
	if epsilon < float64Epsilon {
		epsilon = float64Epsilon
	}
	if maxLeaves < 0 {
		maxLeaves = 0
	}
	return &Tree[T]{
		nodes:      make([]node[T], 0, maxLeaves),
		leafPoints: make([][]mgl64.Vec3, 0, maxLeaves),
		root:       -1,
		treeType:   treeType,
		axis:       axis,
		startAxis:  start,
		stopAxis:   stop,
		epsilon:    epsilon,
	}, nil
}

// Len returns the number of leaves inserted so far.
func (t *Tree[T]) Len() int { return t.totLeaf }

// Balanced reports whether Balance has been called.
func (t *Tree[T]) Balanced() bool { return t.balanced }

// Insert adds a leaf bounded by the min/max projection of points onto
// the tree's active k-DOP axes. It must be called before Balance.
func (t *Tree[T]) Insert(elem T, points []mgl64.Vec3) (int, error) {
	if t.balanced {
		return -1, ErrAlreadyBalanced
	}
	n := newLeafNode(elem)
	n.createKDOPHull(t.startAxis, t.stopAxis, points, t.epsilon)
	idx := len(t.nodes)
	t.nodes = append(t.nodes, n)
	pts := make([]mgl64.Vec3, len(points))
	copy(pts, points)
	t.leafPoints = append(t.leafPoints, pts)
	t.totLeaf++
	return idx, nil
}

// Balance builds the tree topology over every inserted leaf. It must be
// called exactly once, after all Insert calls and before any query.
func (t *Tree[T]) Balance() error {
	if t.balanced {
		return ErrAlreadyBalanced
	}
	if t.totLeaf == 0 {
		t.balanced = true
		return nil
	}
	indices := make([]int, t.totLeaf)
	for i := range indices {
		indices[i] = i
	}
	t.root = t.buildRecursive(indices)
	t.balanced = true
	return nil
}

// buildRecursive splits a set of leaf/branch arena indices into at most
// treeType groups along the k-DOP's largest cardinal axis, recursing
// until each group is a single node, then creates the branch node that
// merges its children's bounds.
//
// This replaces the breadth-first implicit-array construction used
// upstream with an equivalent recursive top-down build: same split
// heuristic (largest k-DOP axis, balanced partitioning into treeType
// groups), simpler to express and verify over a Go slice arena. Ray
// casting and overlap queries depend only on the resulting parent/child
// bound structure, not on how it was assembled.
func (t *Tree[T]) buildRecursive(indices []int) int {
	if len(indices) == 1 {
		return indices[0]
	}

	agg := node[T]{}
	agg.minMaxInit(t.startAxis, t.stopAxis)
	for _, idx := range indices {
		agg.mergeChildBounds(t.startAxis, t.stopAxis, &t.nodes[idx])
	}
	axis := agg.largestAxis()

	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Slice(sorted, func(i, j int) bool {
		return centerOnAxis(&t.nodes[sorted[i]], axis) < centerOnAxis(&t.nodes[sorted[j]], axis)
	})

	groups := splitEvenly(sorted, t.treeType)
	children := make([]int, 0, len(groups))
	for _, g := range groups {
		children = append(children, t.buildRecursive(g))
	}

	branch := node[T]{parent: -1, mainAxis: axis}
	branch.minMaxInit(t.startAxis, t.stopAxis)
	for _, c := range children {
		branch.mergeChildBounds(t.startAxis, t.stopAxis, &t.nodes[c])
	}
	branch.children = children

	bIdx := len(t.nodes)
	t.nodes = append(t.nodes, branch)
	for _, c := range children {
		t.nodes[c].parent = bIdx
	}
	return bIdx
}

func centerOnAxis[T any](n *node[T], axis int) float64 {
	return (n.bv[2*axis] + n.bv[2*axis+1]) / 2
}

// splitEvenly divides indices into at most n contiguous, near-equal
// groups, preserving order (and hence spatial locality along the sorted
// axis).
func splitEvenly(indices []int, n int) [][]int {
	if n > len(indices) {
		n = len(indices)
	}
	if n < 1 {
		n = 1
	}
	groups := make([][]int, 0, n)
	total := len(indices)
	base := total / n
	rem := total % n
	pos := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		groups = append(groups, indices[pos:pos+size])
		pos += size
	}
	return groups
}

// UpdateNode refits a leaf's bound in place without changing tree
// topology. If movingPoints is non-nil, the hull is extended (never
// shrunk) to also contain their projections, producing a swept bound
// suitable for a moving primitive. Callers must follow with UpdateTree
// to propagate the change to ancestor branches.
func (t *Tree[T]) UpdateNode(leafIdx int, points []mgl64.Vec3, movingPoints []mgl64.Vec3) error {
	if leafIdx < 0 || leafIdx >= t.totLeaf {
		return ErrIndexOutOfRange
	}
	if len(points) != len(t.leafPoints[leafIdx]) {
		return ErrDifferentNumPoints
	}
	n := &t.nodes[leafIdx]
	n.createKDOPHull(t.startAxis, t.stopAxis, points, t.epsilon)
	if movingPoints != nil {
		moving := node[T]{}
		moving.createKDOPHull(t.startAxis, t.stopAxis, movingPoints, t.epsilon)
		n.mergeChildBounds(t.startAxis, t.stopAxis, &moving)
	}
	t.leafPoints[leafIdx] = append(t.leafPoints[leafIdx][:0], points...)
	return nil
}

// UpdateTree refits every branch bound bottom-up from the current leaf
// bounds. Safe to call after one or more UpdateNode calls; a no-op cost
// only touches branch nodes, never leaves.
func (t *Tree[T]) UpdateTree() error {
	if !t.balanced {
		return ErrNotBalanced
	}
	for i := t.totLeaf; i < len(t.nodes); i++ {
		n := &t.nodes[i]
		n.minMaxInit(t.startAxis, t.stopAxis)
		for _, c := range n.children {
			n.mergeChildBounds(t.startAxis, t.stopAxis, &t.nodes[c])
		}
	}
	return nil
}
