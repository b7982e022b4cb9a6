// Command raytrace is the batch-mode CLI collaborator: it loads a
// scene file, renders it to completion with no viewport, and writes
// the result as a flat binary image plus, optionally, a PPM preview.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ishbosamiya/goray/assets"
	"github.com/ishbosamiya/goray/internal/cmdline"
	"github.com/ishbosamiya/goray/internal/image"
	"github.com/ishbosamiya/goray/internal/imageio"
	"github.com/ishbosamiya/goray/internal/meshio"
	"github.com/ishbosamiya/goray/internal/raytrace"
	"github.com/ishbosamiya/goray/internal/sceneio"
)

var (
	configPath  = flag.String("config", "", "Optional YAML batch-render config; explicit flags below override its fields")
	demoScene   = flag.Bool("demo", false, "Render the built-in demo scene instead of -scene")
	scenePath   = flag.String("scene", "", "Path to the scene JSON file (required unless -demo or set by -config)")
	outPath     = flag.String("out", "", "Path to write the rendered image, flat binary f64 RGB (required unless set by -config)")
	ppmPath     = flag.String("ppm", "", "Optional path to also write a PPM preview of the rendered image")
	width       = flag.Int("width", 1280, "Output image width")
	height      = flag.Int("height", 720, "Output image height")
	samples     = flag.Int("samples", 32, "Samples per pixel")
	traceDepth  = flag.Int("depth", 8, "Maximum trace recursion depth")
	envOverride = flag.String("env", "", "Override the scene file's environment HDR path")
	envStrength = flag.Float64("env-strength", -1, "Override the scene file's environment strength (ignored if negative)")
	bvhEpsilon  = flag.Float64("bvh-epsilon", 0.01, "Epsilon used when building the scene's top-level BVH")
)

func main() {
	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "raytrace renders a scene file to a flat binary image.")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(); err != nil {
		log.Printf("raytrace: %v", err)
		os.Exit(1)
	}
}

func run() error {
	if *configPath != "" {
		if err := applyConfigFile(*configPath); err != nil {
			return fmt.Errorf("applying -config: %w", err)
		}
	}

	if !*demoScene && *scenePath == "" {
		flag.Usage()
		return fmt.Errorf("missing required -scene flag (or pass -demo)")
	}
	if *outPath == "" {
		flag.Usage()
		return fmt.Errorf("missing required -out flag")
	}

	var sceneDir string
	var data []byte
	var err error
	if *demoScene {
		data, err = assets.DemoScene()
		if err != nil {
			return fmt.Errorf("loading demo scene: %w", err)
		}
	} else {
		sceneDir = filepath.Dir(*scenePath)
		data, err = os.ReadFile(*scenePath)
		if err != nil {
			return fmt.Errorf("reading scene file: %w", err)
		}
	}

	meshPaths, err := scanMeshPaths(data)
	if err != nil {
		return fmt.Errorf("scanning scene file for mesh references: %w", err)
	}
	meshes := make(map[string]*raytrace.Mesh, len(meshPaths))
	for _, path := range meshPaths {
		mesh, err := loadMesh(filepath.Join(sceneDir, path))
		if err != nil {
			return fmt.Errorf("loading mesh %q: %w", path, err)
		}
		meshes[path] = mesh
	}

	hdrPath := scanEnvironmentPath(data)
	if *envOverride != "" {
		hdrPath = *envOverride
	}
	var hdr *image.Image
	if hdrPath != "" {
		hdr, err = loadHDR(filepath.Join(sceneDir, hdrPath))
		if err != nil {
			return fmt.Errorf("loading environment %q: %w", hdrPath, err)
		}
	}

	decoded, err := sceneio.Unmarshal(data, meshes, hdr)
	if err != nil {
		return fmt.Errorf("decoding scene file: %w", err)
	}
	if *envStrength >= 0 {
		decoded.Environment.Strength = *envStrength
	}

	if err := decoded.Scene.ApplyModelMatrices(); err != nil {
		return fmt.Errorf("applying model matrices: %w", err)
	}
	if err := decoded.Scene.BuildBVH(*bvhEpsilon); err != nil {
		return fmt.Errorf("building scene bvh: %w", err)
	}

	shaders := decoded.Shaders
	textures := raytrace.NewTextureList()

	params := raytrace.NewRayTraceParams(*width, *height, *traceDepth, *samples, decoded.Camera)
	acc := raytrace.NewAccumulator(*width, *height)
	seed := time.Now().UnixNano()

	log.Printf("raytrace: rendering %dx%d at %d spp, depth %d", *width, *height, *samples, *traceDepth)
	raytrace.RenderScene(context.Background(), params, decoded.Scene, shaders, textures, decoded.Environment, acc, seed, nil, func(fraction float64) {
		log.Printf("raytrace: %.1f%% complete", fraction*100)
	})

	result := acc.Resolve()

	outFile, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer outFile.Close()
	if err := imageio.WriteBinary(outFile, result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if *ppmPath != "" {
		ppmFile, err := os.Create(*ppmPath)
		if err != nil {
			return fmt.Errorf("creating ppm file: %w", err)
		}
		defer ppmFile.Close()
		if err := imageio.WritePPM(ppmFile, result); err != nil {
			return fmt.Errorf("writing ppm: %w", err)
		}
	}

	return nil
}

// applyConfigFile fills any flag still at its default from the batch
// config's fields. A flag the caller set explicitly on the command line
// always wins, matching the precedence cmdline.RenderConfig's doc
// comment describes.
func applyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg, err := cmdline.Load(data)
	if err != nil {
		return err
	}

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if !explicit["scene"] && cfg.ScenePath != "" {
		*scenePath = cfg.ScenePath
	}
	if !explicit["out"] && cfg.Out != "" {
		*outPath = cfg.Out
	}
	if !explicit["ppm"] && cfg.PPM != "" {
		*ppmPath = cfg.PPM
	}
	if !explicit["width"] && cfg.Width != 0 {
		*width = cfg.Width
	}
	if !explicit["height"] && cfg.Height != 0 {
		*height = cfg.Height
	}
	if !explicit["samples"] && cfg.Samples != 0 {
		*samples = cfg.Samples
	}
	if !explicit["depth"] && cfg.Depth != 0 {
		*traceDepth = cfg.Depth
	}
	if !explicit["env"] && cfg.EnvironmentPath != "" {
		*envOverride = cfg.EnvironmentPath
	}
	if !explicit["env-strength"] && cfg.HasEnvironmentStrength {
		*envStrength = cfg.EnvironmentStrength
	}
	if !explicit["bvh-epsilon"] && cfg.BVHEpsilon != 0 {
		*bvhEpsilon = cfg.BVHEpsilon
	}
	return nil
}

func loadMesh(path string) (*raytrace.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	mesh, err := meshio.LoadOBJ(f)
	if err != nil {
		return nil, err
	}
	if err := mesh.BuildBVH(0.01); err != nil {
		return nil, fmt.Errorf("building mesh bvh: %w", err)
	}
	return mesh, nil
}

func loadHDR(path string) (*image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return imageio.ReadBinary(f)
}

// scanMeshPaths and scanEnvironmentPath pull just the handful of
// string fields main needs before the full scene decode (which itself
// requires those files already loaded) - a minimal two-pass load
// rather than teaching sceneio.Unmarshal to do its own file I/O.
func scanMeshPaths(data []byte) ([]string, error) {
	var probe struct {
		Scene []struct {
			Mesh *struct {
				Path string `json:"path"`
			} `json:"mesh"`
		} `json:"scene"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, err
	}
	var paths []string
	seen := make(map[string]bool)
	for _, obj := range probe.Scene {
		if obj.Mesh == nil || obj.Mesh.Path == "" || seen[obj.Mesh.Path] {
			continue
		}
		seen[obj.Mesh.Path] = true
		paths = append(paths, obj.Mesh.Path)
	}
	return paths, nil
}

func scanEnvironmentPath(data []byte) string {
	var probe struct {
		Environment struct {
			HDRPath string `json:"hdr_path"`
		} `json:"environment"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return ""
	}
	return strings.TrimSpace(probe.Environment.HDRPath)
}
