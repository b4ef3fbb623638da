package rcore

import (
	"github.com/gekko3d/rcore/platform"
)

// PlatformWindowModule creates the single Core and its window and makes it
// available as a resource. Install is idempotent: if a Core resource already
// exists, it is reused.
type PlatformWindowModule struct {
	Config   Config
	Platform platform.Platform
}

// NewPlatformWindow creates a module for a window of the given size on p.
// A non-positive size selects 1280x720.
func NewPlatformWindow(p platform.Platform, width, height int, title string) *PlatformWindowModule {
	cfg := DefaultConfig()
	if width > 0 && height > 0 {
		cfg.Width, cfg.Height = width, height
	} else {
		cfg.Width, cfg.Height = 1280, 720
	}
	if title != "" {
		cfg.Title = title
	}
	return &PlatformWindowModule{Config: cfg, Platform: p}
}

// Install panics when the window cannot be created; there is no frame loop
// to run without one.
func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if app.core() != nil {
		return
	}
	if m.Platform == nil {
		panic(ErrNilPlatform)
	}

	c := NewCore(m.Platform)
	if l, ok := app.lookupLogger(); ok {
		c.SetLogger(l)
	}
	if err := m.Config.Apply(c); err != nil {
		panic(err)
	}
	if err := c.InitWindow(m.Config.Width, m.Config.Height, m.Config.Title); err != nil {
		panic(err)
	}
	cmd.AddResources(c)
}
