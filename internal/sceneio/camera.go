package sceneio

import (
	"encoding/json"
	"fmt"

	"github.com/ishbosamiya/goray/internal/raytrace"
)

// cameraFile is the current on-disk camera encoding.
type cameraFile struct {
	SensorHeight float64    `json:"sensor_height"`
	AspectRatio  float64    `json:"aspect_ratio"`
	FocalLength  float64    `json:"focal_length"`
	Origin       [3]float64 `json:"origin"`
}

// legacyCameraFile is the camera encoding from before sensor height and
// aspect ratio were split into independent fields: it additionally
// carries sensor_width, which the current encoding derives instead of
// storing.
type legacyCameraFile struct {
	SensorWidth  float64    `json:"sensor_width"`
	SensorHeight float64    `json:"sensor_height"`
	AspectRatio  float64    `json:"aspect_ratio"`
	FocalLength  float64    `json:"focal_length"`
	Origin       [3]float64 `json:"origin"`
}

// isLegacyCamera reports whether this JSON object uses the legacy camera
// encoding, distinguished by the presence of sensor_width.
func isLegacyCamera(raw json.RawMessage) (bool, error) {
	var probe struct {
		SensorWidth *float64 `json:"sensor_width"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false, fmt.Errorf("sceneio: probing camera encoding: %w", err)
	}
	return probe.SensorWidth != nil, nil
}

// decodeCamera parses raw as either camera encoding, upcasting a legacy
// camera by recomputing its aspect ratio from sensor_width/sensor_height
// directly rather than trusting the stored (possibly stale) ratio -
// this is the "equivalent camera sensor" §6 calls for.
func decodeCamera(raw json.RawMessage) (*raytrace.Camera, error) {
	legacy, err := isLegacyCamera(raw)
	if err != nil {
		return nil, err
	}

	if !legacy {
		var f cameraFile
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, fmt.Errorf("sceneio: decoding camera: %w", err)
		}
		return raytrace.NewCamera(f.SensorHeight, f.AspectRatio, f.FocalLength, fileToVec3(f.Origin)), nil
	}

	var f legacyCameraFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("sceneio: decoding legacy camera: %w", err)
	}
	return upcastLegacyCamera(f), nil
}

// upcastLegacyCamera converts a legacy (sensor_width, sensor_height,
// aspect_ratio, focal_length, origin) camera into the current encoding.
// sensor_height is kept as-is; aspect_ratio is rederived from
// sensor_width/sensor_height so a legacy file whose stored aspect_ratio
// drifted from its actual sensor dimensions upcasts to the sensor it
// actually describes, not the stale ratio.
func upcastLegacyCamera(f legacyCameraFile) *raytrace.Camera {
	aspectRatio := f.AspectRatio
	if f.SensorHeight != 0 {
		aspectRatio = f.SensorWidth / f.SensorHeight
	}
	return raytrace.NewCamera(f.SensorHeight, aspectRatio, f.FocalLength, fileToVec3(f.Origin))
}

func encodeCamera(c *raytrace.Camera) cameraFile {
	return cameraFile{
		SensorHeight: c.SensorHeight(),
		AspectRatio:  c.SensorWidth() / c.SensorHeight(),
		FocalLength:  c.FocalLength(),
		Origin:       vec3ToFile(c.Origin()),
	}
}
