package rcore

import (
	"github.com/gekko3d/rcore/platform"
)

// Modules records which optional collaborators are loaded. The core reads
// them only for init logging and default-resource setup.
type Modules struct {
	Shapes   bool
	Textures bool
	Text     bool
	Models   bool
	Audio    bool
}

// Core is the process context: window and input state plus the platform
// backend that feeds them. It is created once, passed by pointer to every
// operation, and owned by the thread that calls InitWindow.
type Core struct {
	Window   WindowState
	Input    InputState
	Modules  Modules
	Platform platform.Variant

	backend   platform.Platform
	log       Logger
	glVersion GLVersion

	callbacksRegistered bool
	defaultFont         *DebugFont
	// fullscreenMonitor is the monitor a fullscreen window occupies.
	fullscreenMonitor int
}

func NewCore(p platform.Platform) *Core {
	c := &Core{
		Window:  newWindowState(),
		Input:   newInputState(),
		backend: p,
		log:     NewDefaultLogger("rcore", false),
	}
	if p != nil {
		c.Platform = p.Variant()
	}
	return c
}

// SetConfigFlags ORs flags into the window flags; call before InitWindow.
func (c *Core) SetConfigFlags(flags ConfigFlags) *Core {
	c.Window.Flags |= flags
	return c
}

func (c *Core) SetGLVersion(v GLVersion) *Core {
	c.glVersion = v
	return c
}

func (c *Core) SetLogger(l Logger) *Core {
	if l == nil {
		l = NewNopLogger()
	}
	c.log = l
	return c
}

func (c *Core) EnableModules(m Modules) *Core {
	c.Modules = m
	return c
}

func (c *Core) Logger() Logger { return c.log }

// Backend exposes the platform for code that must reach past the core,
// such as a renderer binding its surface.
func (c *Core) Backend() platform.Platform { return c.backend }

func (c *Core) GLVersion() GLVersion { return c.glVersion }
