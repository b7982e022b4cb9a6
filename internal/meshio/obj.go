// Package meshio is the mesh loader collaborator: it reads a file and
// produces the (positions, uvs, normals, faces) a raytrace.Mesh needs.
// Adapted from gazed-vu/load/obj.go's Wavefront OBJ parser - same
// line-token-driven v/vn/vt/f scan, same limited-subset scope (single
// object) - but building raytrace.Vertex/Face values
// directly instead of a flat GL vertex/index buffer, since Mesh keeps
// one Vertex per face corner rather than deduplicating by index.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ishbosamiya/goray/internal/raytrace"
	"github.com/ishbosamiya/goray/internal/vecmath"
)

// LoadOBJ reads a Wavefront OBJ document from r and returns the mesh
// it describes. Only "v", "vn", "vt" and "f" lines (faces of three or
// more corners) are understood; "o", "s", "mtllib", "usemtl" and anything else are
// skipped, matching the subset gazed-vu's loader supports.
func LoadOBJ(r io.Reader) (*raytrace.Mesh, error) {
	var positions []vecmath.Vec3
	var normals []vecmath.Vec3
	var uvs []vecmath.Vec2

	var vertices []raytrace.Vertex
	var faces []raytrace.Face

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == "#" {
			continue
		}
		tokens := strings.Fields(line)
		switch tokens[0] {
		case "v":
			p, err := parseVec3(tokens[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: bad vertex: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(tokens[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: bad normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			uv, err := parseVec2(tokens[1:])
			if err != nil {
				return nil, fmt.Errorf("meshio: line %d: bad texture coordinate: %w", lineNo, err)
			}
			uvs = append(uvs, uv)
		case "f":
			if len(tokens) < 4 {
				return nil, fmt.Errorf("meshio: line %d: face needs at least 3 corners", lineNo)
			}
			indices := make([]int, 0, len(tokens)-1)
			for _, corner := range tokens[1:] {
				v, err := faceCornerToVertex(corner, positions, uvs, normals)
				if err != nil {
					return nil, fmt.Errorf("meshio: line %d: %w", lineNo, err)
				}
				vertices = append(vertices, v)
				indices = append(indices, len(vertices)-1)
			}
			faces = append(faces, raytrace.Face{Indices: indices})
		case "o", "s", "mtllib", "usemtl", "g":
		default:
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("meshio: reading obj: %w", err)
	}
	if len(vertices) == 0 || len(faces) == 0 {
		return nil, fmt.Errorf("meshio: no vertex or face data found")
	}

	return raytrace.NewMesh(vertices, faces), nil
}

// faceCornerToVertex parses one "v", "v/t", "v//n" or "v/t/n" face
// corner (1-indexed, negative indices counting from the end per the
// OBJ spec) into a fully resolved Vertex.
func faceCornerToVertex(corner string, positions []vecmath.Vec3, uvs []vecmath.Vec2, normals []vecmath.Vec3) (raytrace.Vertex, error) {
	parts := strings.Split(corner, "/")
	vIdx, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return raytrace.Vertex{}, fmt.Errorf("bad position index in %q: %w", corner, err)
	}

	v := raytrace.Vertex{Pos: positions[vIdx]}

	if len(parts) >= 2 && parts[1] != "" {
		tIdx, err := resolveIndex(parts[1], len(uvs))
		if err != nil {
			return raytrace.Vertex{}, fmt.Errorf("bad uv index in %q: %w", corner, err)
		}
		v.UV = uvs[tIdx]
		v.HasUV = true
	}
	if len(parts) >= 3 && parts[2] != "" {
		nIdx, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return raytrace.Vertex{}, fmt.Errorf("bad normal index in %q: %w", corner, err)
		}
		v.Normal = normals[nIdx]
		v.HasNormal = true
	}
	return v, nil
}

func resolveIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		n = count + n
	} else {
		n--
	}
	if n < 0 || n >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return n, nil
}

func parseVec3(fields []string) (vecmath.Vec3, error) {
	if len(fields) < 3 {
		return vecmath.Vec3{}, fmt.Errorf("need 3 components, got %d", len(fields))
	}
	var v vecmath.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

func parseVec2(fields []string) (vecmath.Vec2, error) {
	if len(fields) < 2 {
		return vecmath.Vec2{}, fmt.Errorf("need 2 components, got %d", len(fields))
	}
	var v vecmath.Vec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return vecmath.Vec2{}, err
		}
		v[i] = f
	}
	// OBJ's v coordinate is bottom-up; flip to match the top-down UV
	// convention Sphere.Hit and Environment already use.
	v[1] = 1 - v[1]
	return v, nil
}
