// Package config loads the turntable demo settings from YAML. Absent keys keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/Carmen-Shannon/oxy-turntable/engine/camera"
	"github.com/Carmen-Shannon/oxy-turntable/engine/light"
	"github.com/Carmen-Shannon/oxy-turntable/engine/loader"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Light  LightConfig  `yaml:"light"`
	Render RenderConfig `yaml:"render"`
}

type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	VSync   bool   `yaml:"vsync"`
	Samples int    `yaml:"samples"`
}

type CameraConfig struct {
	Distance   float64   `yaml:"distance"`
	Azimuth    float64   `yaml:"azimuth"`
	Elevation  float64   `yaml:"elevation"`
	Center     []float64 `yaml:"center"`
	FovDegrees float64   `yaml:"fov_degrees"`
	Near       float64   `yaml:"near"`
	Far        float64   `yaml:"far"`
	Step       float64   `yaml:"step"`
	DragMode   string    `yaml:"drag_mode"`

	// AutoRotate is an azimuth rate in radians per second; 0 disables it.
	AutoRotate float64 `yaml:"auto_rotate"`
}

// LightConfig describes the moving light. It circles or wanders around the world origin; the
// colour terms are white intensities in [0, 1].
type LightConfig struct {
	Path   string  `yaml:"path"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`

	Ambient  float64 `yaml:"ambient"`
	Diffuse  float64 `yaml:"diffuse"`
	Specular float64 `yaml:"specular"`
}

type RenderConfig struct {
	ClearColor  []float64 `yaml:"clear_color"`
	Grid        bool      `yaml:"grid"`
	LightVector bool      `yaml:"light_vector"`
	Profiling   bool      `yaml:"profiling"`

	// Model is an optional .obj, .gltf or .glb file shown instead of the cube. It is scaled so its
	// largest side is ModelSize; a ModelSize of 0 keeps the file's units.
	Model     string  `yaml:"model"`
	ModelSize float64 `yaml:"model_size"`
}

// Default returns the built-in configuration: a brass cube seen from (3, 0.3, 0.5) around
// (-0.3, 0.8, 0), lit by a wandering light.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:   "Turntable",
			Width:   1024,
			Height:  768,
			VSync:   true,
			Samples: 4,
		},
		Camera: CameraConfig{
			Distance:   3,
			Azimuth:    0.3,
			Elevation:  0.5,
			Center:     []float64{-0.3, 0.8, 0},
			FovDegrees: 45,
			Near:       0.1,
			Far:        100,
			Step:       camera.DefaultStep,
			DragMode:   camera.DragAnchored.String(),
		},
		Light: LightConfig{
			Path:   light.PathWander.String(),
			Radius: 5,
			Height: 2,
			Speed:  0.25,

			Ambient:  0.4,
			Diffuse:  0.6,
			Specular: 1,
		},
		Render: RenderConfig{
			ClearColor: []float64{0.2, 0.2, 0.2, 1},
			Grid:       true,
			ModelSize:  1,
		},
	}
}

// Load reads the YAML file at path over the defaults and validates the result. A missing file is
// not an error: the defaults are returned and a notice logged.
//
// Parameters:
//   - path: location of the YAML file
//
// Returns:
//   - Config: the merged configuration
//   - error: error if the file cannot be read, parsed, or fails validation
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[Config] %s not found, using defaults", path)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Config] loaded %s", path)
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Validate reports the first invalid field, wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return invalid("window size", "%dx%d is not positive", c.Window.Width, c.Window.Height)
	case c.Window.Samples < 0:
		return invalid("window.samples", "%d is negative", c.Window.Samples)
	case len(c.Camera.Center) != 3:
		return invalid("camera.center", "want 3 components, got %d", len(c.Camera.Center))
	case !finite(c.Camera.Distance, c.Camera.Azimuth, c.Camera.Elevation, c.Camera.AutoRotate, c.Camera.Step):
		return invalid("camera", "values must be finite")
	case !finite(c.Camera.Center...):
		return invalid("camera.center", "values must be finite")
	case c.Camera.FovDegrees <= 0 || c.Camera.FovDegrees >= 180:
		return invalid("camera.fov_degrees", "%v outside (0, 180)", c.Camera.FovDegrees)
	case c.Camera.Near <= 0:
		return invalid("camera.near", "%v is not positive", c.Camera.Near)
	case c.Camera.Near >= c.Camera.Far:
		return invalid("camera.far", "%v is not beyond near %v", c.Camera.Far, c.Camera.Near)
	case c.Camera.Step <= 0:
		return invalid("camera.step", "%v is not positive", c.Camera.Step)
	case c.Light.Radius < 0 || !finite(c.Light.Radius, c.Light.Height, c.Light.Speed):
		return invalid("light", "radius %v height %v speed %v", c.Light.Radius, c.Light.Height, c.Light.Speed)
	case !unit(c.Light.Ambient, c.Light.Diffuse, c.Light.Specular):
		return invalid("light", "ambient %v diffuse %v specular %v outside [0, 1]", c.Light.Ambient, c.Light.Diffuse, c.Light.Specular)
	case len(c.Render.ClearColor) != 4:
		return invalid("render.clear_color", "want 4 components, got %d", len(c.Render.ClearColor))
	case c.Render.ModelSize < 0 || !finite(c.Render.ModelSize):
		return invalid("render.model_size", "%v is negative or not finite", c.Render.ModelSize)
	}
	if c.Render.Model != "" {
		if _, err := loader.FormatForPath(c.Render.Model); err != nil {
			return invalid("render.model", "%v", err)
		}
	}
	if _, ok := camera.DragModeByName(c.Camera.DragMode); !ok {
		return invalid("camera.drag_mode", "unknown mode %q", c.Camera.DragMode)
	}
	if _, ok := light.PathByName(c.Light.Path); !ok {
		return invalid("light.path", "unknown path %q", c.Light.Path)
	}
	if !unit(c.Render.ClearColor...) {
		return invalid("render.clear_color", "%v has a component outside [0, 1]", c.Render.ClearColor)
	}
	return nil
}

// WindowOptions converts the window section to window builder options.
func (c Config) WindowOptions() []window.WindowBuilderOption {
	return []window.WindowBuilderOption{
		window.WithTitle(c.Window.Title),
		window.WithWidth(c.Window.Width),
		window.WithHeight(c.Window.Height),
		window.WithVSync(c.Window.VSync),
		window.WithSamples(c.Window.Samples),
	}
}

// Controller builds the turntable controller the camera section describes.
func (c Config) Controller() camera.TurntableController {
	mode, _ := camera.DragModeByName(c.Camera.DragMode)
	center := c.Camera.Center
	return camera.NewTurntableController(c.Camera.Distance, c.Camera.Azimuth, c.Camera.Elevation,
		camera.WithCenter(center[0], center[1], center[2]),
		camera.WithStep(c.Camera.Step),
		camera.WithDragMode(mode),
	)
}

// CameraOptions converts the camera projection settings, attaching ctrl.
func (c Config) CameraOptions(ctrl camera.TurntableController) []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(mgl64.DegToRad(c.Camera.FovDegrees)),
		camera.WithAspect(float64(c.Window.Width) / float64(c.Window.Height)),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
		camera.WithController(ctrl),
	}
}

// LightOptions converts the light section. The light moves around the world origin, not the camera
// center; only the light vector overlay starts at the camera center.
func (c Config) LightOptions() []light.OrbitLightOption {
	path, _ := light.PathByName(c.Light.Path)
	return []light.OrbitLightOption{
		light.WithPath(path),
		light.WithOrbit(c.Light.Radius, c.Light.Height),
		light.WithSpeed(c.Light.Speed),
		light.WithColors(light.Gray(c.Light.Ambient), light.Gray(c.Light.Diffuse), light.Gray(c.Light.Specular)),
	}
}

// LoaderOptions converts the model settings to loader options.
func (c Config) LoaderOptions() []loader.LoaderBuilderOption {
	return []loader.LoaderBuilderOption{loader.WithFitSize(c.Render.ModelSize)}
}

// ClearColor returns the clear colour as a vector.
func (c Config) ClearColor() mgl64.Vec4 {
	cc := c.Render.ClearColor
	return mgl64.Vec4{cc[0], cc[1], cc[2], cc[3]}
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// unit reports whether every value lies in [0, 1]. NaN fails.
func unit(values ...float64) bool {
	for _, v := range values {
		if !(v >= 0 && v <= 1) {
			return false
		}
	}
	return true
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
