// Command oxy-showcase is a scroll-driven model viewer. The mouse wheel and page keys move a
// virtual page whose progress drives the camera along a keyframed path; P enters a preview
// where the camera can be orbited, and X returns it to the page.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/Carmen-Shannon/oxy-showcase/common"
	"github.com/Carmen-Shannon/oxy-showcase/config"
	"github.com/Carmen-Shannon/oxy-showcase/engine"
	"github.com/Carmen-Shannon/oxy-showcase/engine/camera"
	"github.com/Carmen-Shannon/oxy-showcase/engine/renderer"
	"github.com/Carmen-Shannon/oxy-showcase/engine/scroll"
	"github.com/Carmen-Shannon/oxy-showcase/engine/viewer"
	"github.com/Carmen-Shannon/oxy-showcase/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

type options struct {
	configPath  string
	writeConfig string
	compact     string
	width       int
	height      int
	fps         float64
	vsync       bool
	profile     bool
	software    bool
	logLevel    string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet(appTitle, flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "viewer configuration file (YAML); the built-in defaults when empty")
	fs.StringVar(&o.writeConfig, "write-config", "", "write the active configuration to this file and exit")
	fs.StringVar(&o.compact, "compact", "auto", "device class: auto, true or false")
	fs.IntVar(&o.width, "width", 1280, "window width in pixels")
	fs.IntVar(&o.height, "height", 720, "window height in pixels")
	fs.Float64Var(&o.fps, "fps", 60, "frame rate cap, 0 for uncapped")
	fs.BoolVar(&o.vsync, "vsync", true, "wait for vertical blank when presenting")
	fs.BoolVar(&o.profile, "profile", false, "log frame and memory statistics every second")
	fs.BoolVar(&o.software, "software", false, "force the software fallback adapter")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if _, err := parseCompact(o.compact); err != nil {
		fmt.Fprintln(fs.Output(), err)
		fs.Usage()
		return o, err
	}
	return o, nil
}

func main() {
	o, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		// the flag set already reported the problem
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(o options) error {
	level, err := parseLogLevel(o.logLevel)
	if err != nil {
		return err
	}
	common.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.writeConfig != "" {
		if err := config.Save(cfg, o.writeConfig); err != nil {
			return err
		}
		common.Logger().Info("configuration written", "path", o.writeConfig)
		return nil
	}

	resolver, err := viewer.NewProfileResolverFromConfig(cfg.Profiles)
	if err != nil {
		return err
	}
	sessionOptions, err := viewer.OptionsFromConfig(cfg.Preview)
	if err != nil {
		return err
	}
	tracker, err := scroll.NewTracker(trackerOptions(cfg.Scroll)...)
	if err != nil {
		return err
	}
	if cfg.Preview.ExitSection != "" {
		source, err := tracker.Source(cfg.Preview.ExitSection)
		if err != nil {
			return fmt.Errorf("exit section: %w", err)
		}
		sessionOptions = append(sessionOptions, viewer.WithExitBinding(source))
	}

	// ── Window, renderer, camera, engine ────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(appTitle),
		window.WithSize(o.width, o.height),
	)

	presentMode := renderer.PresentModeVSync
	if !o.vsync {
		presentMode = renderer.PresentModeUncapped
	}
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode),
		renderer.WithForceSoftwareRenderer(o.software),
		renderer.WithGrid(12, 1),
	)

	cam := camera.NewCamera(
		camera.WithFov(mgl32.DegToRad(40)),
		camera.WithAspect(float32(win.Width())/float32(max(win.Height(), 1))),
		camera.WithClipPlanes(0.1, 500),
		camera.WithController(camera.NewCameraController(
			camera.WithEnabled(false),
			camera.WithRadiusBounds(2, 60),
			camera.WithMouseSensitivity(0.005),
		)),
	)

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithFrameLimit(o.fps),
		engine.WithProfiling(o.profile),
	)

	// ── Viewer session ──────────────────────────────────────────────────
	classifier, err := newClassifier(o.compact, win, cfg.Device)
	if err != nil {
		return err
	}
	binding, err := viewer.NewCameraBinding(cam, eng.RequestRedraw)
	if err != nil {
		return err
	}
	presenter := newTitlePresenter(win)
	sessionOptions = append(sessionOptions, viewer.WithPresenter(presenter))
	session := viewer.NewSession(binding, resolver, classifier, sessionOptions...)

	if _, err := tracker.Subscribe(cfg.Scroll.TimelineSection, session.OnScroll); err != nil {
		return fmt.Errorf("timeline section: %w", err)
	}

	// ── Input ───────────────────────────────────────────────────────────
	router := &inputRouter{
		page:        tracker,
		preview:     session,
		orbit:       cam.Controller(),
		interactive: presenter.Interactive,
		redraw:      eng.RequestRedraw,
	}
	win.SetScrollCallback(router.onScroll)
	win.SetDragCallback(router.onDrag)
	win.SetKeyDownCallback(router.onKey)
	win.SetVisibilityCallback(func(visible bool) {
		session.SetVisible(visible)
		if visible {
			eng.RequestRedraw()
		}
	})
	eng.SetTickCallback(session.Frame)

	if err := startSession(session, presenter, tracker); err != nil {
		common.Logger().Error("viewer unavailable, showing an empty canvas", "error", err)
		if err := r.SetLines(nil); err != nil {
			common.Logger().Warn("clearing the canvas failed", "error", err)
		}
	}

	eng.Run()
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}
