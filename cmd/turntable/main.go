// Command turntable shows a lit model on an orbit camera.
//
// Controls: drag with the left button to orbit, UP/DOWN to dolly, scroll to zoom, A/D/S to toggle
// the ambient/diffuse/specular terms, O to toggle lighting, L to show the light vector, R to reload
// the config file and ESC to quit.
package main

import (
	"flag"
	"log"

	"github.com/Carmen-Shannon/oxy-turntable/common"
	"github.com/Carmen-Shannon/oxy-turntable/engine"
	"github.com/Carmen-Shannon/oxy-turntable/engine/camera"
	"github.com/Carmen-Shannon/oxy-turntable/engine/config"
	"github.com/Carmen-Shannon/oxy-turntable/engine/light"
	"github.com/Carmen-Shannon/oxy-turntable/engine/loader"
	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer"
	"github.com/Carmen-Shannon/oxy-turntable/engine/renderer/glrenderer"
	"github.com/Carmen-Shannon/oxy-turntable/engine/window/glwindow"
	"github.com/go-gl/mathgl/mgl64"
)

type overrides struct {
	profile bool
	drag    string
	model   string
}

func main() {
	configPath := flag.String("config", "turntable.yaml", "YAML settings file; missing means defaults")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to -config and exit")
	var o overrides
	flag.BoolVar(&o.profile, "profile", false, "log frame and memory statistics every second")
	flag.StringVar(&o.drag, "drag", "", "drag mode override: anchored or incremental")
	flag.StringVar(&o.model, "model", "", "model file override (.obj, .gltf, .glb)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, o)
	if err != nil {
		log.Fatalf("[Main] %v", err)
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("[Main] %v", err)
		}
		log.Printf("[Main] wrote %s", *configPath)
		return
	}

	win, err := glwindow.NewWindow(cfg.WindowOptions()...)
	if err != nil {
		log.Fatalf("[Main] window: %v", err)
	}

	rendererOptions := []renderer.RendererBuilderOption{renderer.WithSize(win.Width(), win.Height())}
	if !cfg.Render.Grid {
		rendererOptions = append(rendererOptions, renderer.WithoutGrid())
	}
	if cfg.Render.Model != "" {
		mesh, err := loader.NewLoader(cfg.LoaderOptions()...).Load(cfg.Render.Model)
		if err != nil {
			log.Fatalf("[Main] model: %v", err)
		}
		rendererOptions = append(rendererOptions, renderer.WithMesh(mesh))
	}
	r, err := glrenderer.NewRenderer(rendererOptions...)
	if err != nil {
		log.Fatalf("[Main] renderer: %v", err)
	}

	cam := camera.NewCamera(cfg.CameraOptions(cfg.Controller())...)
	eng, err := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithLight(light.NewOrbitLight(cfg.LightOptions()...)),
		engine.WithClearColor(cfg.ClearColor()),
		engine.WithAutoRotate(cfg.Camera.AutoRotate),
		engine.WithLightVector(cfg.Render.LightVector),
		engine.WithProfiling(cfg.Render.Profiling),
		engine.WithKeyBinding(common.KeyR, func(e engine.Engine) {
			next, err := loadConfig(*configPath, o)
			if err != nil {
				log.Printf("[Main] reload failed, keeping current settings: %v", err)
				return
			}
			apply(e, next)
			log.Printf("[Main] reloaded %s", *configPath)
		}),
	)
	if err != nil {
		log.Fatalf("[Main] engine: %v", err)
	}

	if err := eng.Run(); err != nil {
		log.Fatalf("[Main] %v", err)
	}
}

// loadConfig reads the settings file and applies the command line overrides on top.
func loadConfig(path string, o overrides) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if o.profile {
		cfg.Render.Profiling = true
	}
	if o.drag != "" {
		cfg.Camera.DragMode = o.drag
	}
	if o.model != "" {
		cfg.Render.Model = o.model
	}
	return cfg, cfg.Validate()
}

// apply swaps live settings in from cfg. The window, grid and model are fixed at startup.
func apply(e engine.Engine, cfg config.Config) {
	cam := e.Camera()
	cam.SetController(cfg.Controller())
	cam.SetFov(mgl64.DegToRad(cfg.Camera.FovDegrees))
	cam.SetNear(cfg.Camera.Near)
	cam.SetFar(cfg.Camera.Far)

	e.SetLight(light.NewOrbitLight(cfg.LightOptions()...))
	e.SetClearColor(cfg.ClearColor())
	e.SetAutoRotate(cfg.Camera.AutoRotate)
	e.SetLightVector(cfg.Render.LightVector)
	if cfg.Render.Profiling {
		e.EnableProfiler()
	} else {
		e.DisableProfiler()
	}
}
