package sceneio

import (
	"encoding/json"
	"fmt"

	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/raytrace"
)

// sceneFile is the top-level on-disk scene document: a Scene's
// objects, its ShaderList, its path trace camera and its Environment,
// exactly the four sections named by the scene file format.
type sceneFile struct {
	Scene           []objectFile    `json:"scene"`
	ShaderList      []shaderFile    `json:"shader_list"`
	PathTraceCamera cameraFile      `json:"path_trace_camera"`
	Environment     environmentFile `json:"environment"`
}

// Decoded bundles everything Unmarshal produces: the scene graph, its
// shader list, camera and environment, ready to hand to the
// integrator.
type Decoded struct {
	Scene       *raytrace.Scene
	Shaders     *raytrace.ShaderList
	Camera      *raytrace.Camera
	Environment *raytrace.Environment
}

// Marshal encodes data as the scene file's JSON document. meshPaths
// and hdrPath supply the paths of every mesh/HDR file the in-memory
// scene was built from - sceneio does not track provenance for
// objects assembled any other way, so the caller (whoever loaded the
// scene originally, or a scene editor) is responsible for this
// bookkeeping.
func Marshal(scene *raytrace.Scene, shaders *raytrace.ShaderList, camera *raytrace.Camera, environment *raytrace.Environment, meshPaths map[raytrace.ObjectID]string, hdrPath string) ([]byte, error) {
	file := sceneFile{
		PathTraceCamera: encodeCamera(camera),
		Environment:     encodeEnvironment(environment, hdrPath),
	}

	for _, obj := range scene.Objects() {
		file.Scene = append(file.Scene, encodeObject(obj, meshPaths[obj.ID]))
	}

	for _, id := range shaders.IDs() {
		shader, ok := shaders.Get(id)
		if !ok {
			continue
		}
		file.ShaderList = append(file.ShaderList, encodeShader(shader))
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sceneio: marshaling scene: %w", err)
	}
	return data, nil
}

// Unmarshal parses data as a scene file document. meshes and hdr are
// the caller's already-decoded collaborators: meshes keyed by the
// path every mesh object in the file references, hdr decoded from the
// environment's hdr_path (nil if the file has none). Unmarshal itself
// never opens a file.
func Unmarshal(data []byte, meshes map[string]*raytrace.Mesh, hdr *image.Image) (*Decoded, error) {
	var file struct {
		Scene           []objectFile    `json:"scene"`
		ShaderList      []shaderFile    `json:"shader_list"`
		PathTraceCamera json.RawMessage `json:"path_trace_camera"`
		Environment     environmentFile `json:"environment"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("sceneio: decoding scene file: %w", err)
	}

	camera, err := decodeCamera(file.PathTraceCamera)
	if err != nil {
		return nil, err
	}

	shaderList := raytrace.NewShaderList()
	for _, sf := range file.ShaderList {
		shader, err := decodeShader(sf)
		if err != nil {
			return nil, err
		}
		// Preserve the file's ids by inserting directly rather than
		// through Add, which would assign fresh random ones and break
		// every object's shader_id reference.
		if err := shaderList.AddWithID(shader); err != nil {
			return nil, fmt.Errorf("sceneio: inserting shader %q: %w", shader.Name, err)
		}
	}

	scene := raytrace.NewScene()
	for _, of := range file.Scene {
		obj, err := decodeObject(of, meshes)
		if err != nil {
			return nil, err
		}
		if err := scene.AddObjectWithID(obj); err != nil {
			return nil, fmt.Errorf("sceneio: inserting object %d: %w", of.ID, err)
		}
	}

	environment := decodeEnvironment(file.Environment, hdr)

	return &Decoded{
		Scene:       scene,
		Shaders:     shaderList,
		Camera:      camera,
		Environment: environment,
	}, nil
}
