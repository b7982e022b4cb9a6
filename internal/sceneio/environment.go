package sceneio

import (
	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/raytrace"
)

// environmentFile is the on-disk form of an Environment. HDRPath names
// an external HDR file, decoded by the caller's image loader and
// handed to Unmarshal as hdr; it is empty for the default black
// environment.
type environmentFile struct {
	HDRPath   string        `json:"hdr_path,omitempty"`
	Strength  float64       `json:"strength"`
	Transform TransformFile `json:"transform"`
}

func encodeEnvironment(e *raytrace.Environment, hdrPath string) environmentFile {
	return environmentFile{
		HDRPath:   hdrPath,
		Strength:  e.Strength,
		Transform: transformToFile(e.Transform),
	}
}

// decodeEnvironment builds the Environment named by f. hdr is the
// already-decoded image for f.HDRPath, or nil when f.HDRPath is empty,
// in which case a 1x1 black image backs the environment instead.
func decodeEnvironment(f environmentFile, hdr *image.Image) *raytrace.Environment {
	if hdr == nil {
		hdr = image.New(1, 1)
	}
	e := raytrace.NewEnvironment(hdr, f.Strength)
	e.Transform = f.Transform.toTransform()
	return e
}
