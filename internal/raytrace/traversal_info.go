package raytrace

import "github.com/ishbosamiya/goray/internal/vecmath"

// SingleRayInfo records one segment of a traced path: the ray that
// was shot, where (if anywhere) it hit, the color it carried, and the
// surface normal at the hit point. Used for viewport diagnostics, not
// for the rendered image itself.
type SingleRayInfo struct {
	Ray    vecmath.Ray
	Point  vecmath.Vec3
	HasHit bool
	Color  vecmath.Vec3
	Normal vecmath.Vec3
}

// TraversalInfo is the ordered sequence of ray segments a single
// traceRay call produced, innermost bounce last.
type TraversalInfo struct {
	Segments []SingleRayInfo
}

// NewTraversalInfo returns an empty TraversalInfo.
func NewTraversalInfo() TraversalInfo {
	return TraversalInfo{}
}

// AddRay appends a segment.
func (t *TraversalInfo) AddRay(info SingleRayInfo) {
	t.Segments = append(t.Segments, info)
}

// Append concatenates other's segments onto t.
func (t *TraversalInfo) Append(other TraversalInfo) {
	t.Segments = append(t.Segments, other.Segments...)
}
