package bvh

import "errors"

// ErrIndexOutOfRange is returned when a leaf index passed to UpdateNode
// does not name a previously inserted leaf.
var ErrIndexOutOfRange = errors.New("bvh: leaf index out of range")

// ErrDifferentNumPoints is returned by UpdateNode when the replacement
// point set has a different length than the one used at Insert time.
var ErrDifferentNumPoints = errors.New("bvh: different number of points")

// ErrAlreadyBalanced is returned by Insert once Balance has been called;
// the tree topology is fixed after balancing and only refitting
// (UpdateNode/UpdateTree) is legal.
var ErrAlreadyBalanced = errors.New("bvh: tree already balanced, cannot insert")

// ErrNotBalanced is returned by UpdateTree before Balance has been
// called. RayCast and Overlap on an unbalanced tree report no hit and
// no pairs instead of an error.
var ErrNotBalanced = errors.New("bvh: tree not balanced yet")

// ErrBadAxis is returned by New when axis is not one of 6, 8, 14, 18, 26.
var ErrBadAxis = errors.New("bvh: axis must be one of 6, 8, 14, 18, 26")

// ErrBadTreeType is returned by New when treeType is outside [2, 32].
var ErrBadTreeType = errors.New("bvh: tree type must be in [2, 32]")
