package rcore

import (
	"fmt"

	"github.com/gekko3d/rcore/platform"
)

// InitWindow creates the window and graphics context and starts input
// handling. A returned error is fatal: the window is not usable and the
// caller must not enter its frame loop.
func (c *Core) InitWindow(width, height int, title string) error {
	if c.backend == nil {
		return ErrNilPlatform
	}
	if c.Window.Ready {
		return ErrAlreadyInitialized
	}
	if title == "" {
		title = "rcore"
	}
	c.resetState()
	c.Window.Title = title
	c.Window.Screen = Size{Width: width, Height: height}

	c.log.Infof("Initializing rcore on %s", c.Platform)
	c.logModules()

	if err := c.initPlatform(); err != nil {
		c.log.Errorf("PLATFORM: %v", err)
		return err
	}

	if c.Modules.Text {
		font, err := LoadDebugFont()
		if err != nil {
			c.log.Warnf("TEXT: Failed to load default font: %v", err)
		} else {
			c.defaultFont = font
			c.log.Infof("TEXT: Default font loaded [%s] (%d glyphs)", font.ID, len(font.Glyphs))
		}
	}
	return nil
}

// resetState drops everything a previous window left behind. Config flags,
// the event waiting mode and the exit key carry over.
func (c *Core) resetState() {
	flags, waiting := c.Window.Flags, c.Window.EventWaiting
	exitKey := c.Input.Keyboard.ExitKey

	c.Window = newWindowState()
	c.Window.Flags = flags
	c.Window.EventWaiting = waiting
	c.Input = newInputState()
	c.Input.Keyboard.ExitKey = exitKey
}

func (c *Core) logModules() {
	for _, m := range []struct {
		name string
		on   bool
	}{
		{"rshapes", c.Modules.Shapes},
		{"rtextures", c.Modules.Textures},
		{"rtext", c.Modules.Text},
		{"rmodels", c.Modules.Models},
		{"raudio", c.Modules.Audio},
	} {
		state := "disabled"
		if m.on {
			state = "enabled"
		}
		c.log.Infof("    > %s: %s", m.name, state)
	}
}

// CloseWindow tears down the window and the platform. Closing a window that
// was never opened is a no-op.
func (c *Core) CloseWindow() {
	if !c.Window.Ready {
		return
	}
	c.defaultFont = nil
	c.backend.DestroyWindow()
	c.backend.Terminate()
	c.Window.Ready = false
	c.callbacksRegistered = false
	c.log.Infof("Window closed successfully")
}

// windowHints translates config flags and the requested GL version into
// creation hints. It is pure so the mapping can be checked without a
// backend; manageScaling selects the macOS branch.
func windowHints(flags ConfigFlags, gl GLVersion, manageScaling bool) platform.Hints {
	h := platform.Hints{
		Visible:          !flags.Has(FlagWindowHidden),
		Decorated:        !flags.Has(FlagWindowUndecorated),
		Resizable:        flags.Has(FlagWindowResizable),
		Focused:          !flags.Has(FlagWindowUnfocused),
		Floating:         flags.Has(FlagWindowTopmost),
		Transparent:      flags.Has(FlagWindowTransparent),
		MousePassthrough: flags.Has(FlagWindowMousePassthrough),
		AutoIconify:      true,
	}
	if flags.Has(FlagWindowHighDPI) {
		h.ScaleToMonitor = true
		h.RetinaFramebuffer = manageScaling
	}
	if flags.Has(FlagMSAA4xHint) {
		h.Samples = 4
	}

	switch gl {
	case GL21:
		h.ContextMajor, h.ContextMinor = 2, 1
	case GL33:
		h.ContextMajor, h.ContextMinor = 3, 3
		h.Profile = platform.CoreProfile
		h.ForwardCompat = manageScaling
	case GL43:
		h.ContextMajor, h.ContextMinor = 4, 3
		h.Profile = platform.CoreProfile
	case GLES20:
		h.API = platform.OpenGLESAPI
		h.ContextCreation = platform.EGLContextAPI
		h.ContextMajor, h.ContextMinor = 2, 0
	case GLES30:
		h.API = platform.OpenGLESAPI
		h.ContextCreation = platform.EGLContextAPI
		h.ContextMajor, h.ContextMinor = 3, 0
	}
	return h
}

// fullscreenPosition is where the window returns to when leaving
// fullscreen. A screen matching the display gets a quarter offset, since
// toggling back to a window at 0,0 misbehaves on some window managers.
func fullscreenPosition(screen, display Size) Point {
	var p Point
	if screen == display {
		p = Point{X: display.Width / 4, Y: display.Height / 4}
	} else {
		p = Point{X: display.Width/2 - screen.Width/2, Y: display.Height/2 - screen.Height/2}
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}

// closestVideoMode returns the first mode at least as large as screen in
// both dimensions. Modes are expected in ascending order.
func closestVideoMode(modes []platform.VideoMode, screen Size) (platform.VideoMode, bool) {
	for _, m := range modes {
		if m.Width >= screen.Width && m.Height >= screen.Height {
			return m, true
		}
	}
	return platform.VideoMode{}, false
}

func (c *Core) initPlatform() error {
	w := &c.Window
	p := c.backend

	if err := p.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrContextInitFailed, err)
	}

	// Minimized and maximized cannot be requested at creation; they are
	// reapplied once the window exists.
	wantMinimized := w.Flags.Has(FlagWindowMinimized)
	wantMaximized := w.Flags.Has(FlagWindowMaximized)
	w.Flags.Clear(FlagWindowMinimized | FlagWindowMaximized)

	hints := windowHints(w.Flags, c.glVersion, p.ManagesScaling())
	if hints.MousePassthrough && c.Platform == platform.VariantDesktopGLFW {
		c.log.Warnf("GLFW: Mouse passthrough is not supported by this GLFW version")
	}

	monitor, err := p.PrimaryMonitor()
	if err != nil {
		if w.Screen.IsZero() {
			p.Terminate()
			return fmt.Errorf("%w: %v (no screen size to fall back to)", ErrMonitorQueryFailed, err)
		}
		c.log.Warnf("GLFW: Failed to get primary monitor: %v; using requested screen size", err)
		w.Display = w.Screen
	} else {
		w.Display = Size{Width: monitor.Mode.Width, Height: monitor.Mode.Height}
	}

	if w.Screen.Width == 0 {
		w.Screen.Width = w.Display.Width
	}
	if w.Screen.Height == 0 {
		w.Screen.Height = w.Display.Height
	}

	spec := platform.WindowSpec{Title: w.Title, Monitor: -1, Hints: hints}
	if w.Flags.Has(FlagFullscreenMode) {
		w.Fullscreen = true
		w.Position = fullscreenPosition(w.Screen, w.Display)

		if mode, ok := closestVideoMode(monitor.Modes, w.Screen); ok {
			w.Display = Size{Width: mode.Width, Height: mode.Height}
			spec.RefreshRate = mode.RefreshRate
		}
		c.log.Warnf("SYSTEM: Closest fullscreen videomode: %d x %d", w.Display.Width, w.Display.Height)

		fb := SetupFramebuffer(w.Screen, w.Display)
		c.applyFramebuffer(fb)

		spec.Width, spec.Height = w.Display.Width, w.Display.Height
		spec.Monitor = 0
		c.fullscreenMonitor = 0
	} else {
		if w.Screen == w.Display {
			// Simulated borderless fullscreen must not iconify on focus loss.
			spec.Hints.AutoIconify = false
		}
		spec.Width, spec.Height = w.Screen.Width, w.Screen.Height
		w.Render = w.Screen
	}

	if err := p.CreateWindow(spec); err != nil {
		p.Terminate()
		return fmt.Errorf("%w: %v", ErrWindowCreateFailed, err)
	}

	if err := p.MakeContextCurrent(); err != nil {
		w.Ready = false
		p.Terminate()
		return fmt.Errorf("%w: %v", ErrContextActivationFailed, err)
	}
	w.Ready = true

	p.SwapInterval(0)
	if w.Flags.Has(FlagVSyncHint) {
		p.SwapInterval(1)
		c.log.Infof("DISPLAY: Trying to enable VSYNC")
	}

	c.setupHighDPI()
	w.CurrentFbo = w.Render

	c.log.Infof("DISPLAY: Device initialized successfully")
	c.log.Infof("    > Display size: %d x %d", w.Display.Width, w.Display.Height)
	c.log.Infof("    > Screen size:  %d x %d", w.Screen.Width, w.Screen.Height)
	c.log.Infof("    > Render size:  %d x %d", w.Render.Width, w.Render.Height)
	c.log.Infof("    > Viewport offsets: %d, %d", w.RenderOffset.X, w.RenderOffset.Y)

	c.registerCallbacks()
	c.enumerateGamepads()

	if wantMinimized {
		c.MinimizeWindow()
	}
	if wantMaximized {
		c.MaximizeWindow()
	}
	if !w.Fullscreen {
		c.centerWindow()
	}
	return nil
}

func (c *Core) applyFramebuffer(fb Framebuffer) {
	w := &c.Window
	w.Screen = fb.Screen
	w.Render = fb.Render
	w.RenderOffset = fb.RenderOffset
	w.ScreenScale = fb.ScreenScale
	switch {
	case fb.Screen.Larger(w.Display):
		c.log.Warnf("DISPLAY: Downscale matrix generated, content will be rendered at (%d x %d)", fb.Render.Width, fb.Render.Height)
	case fb.Render != fb.Screen:
		c.log.Infof("DISPLAY: Upscaling required, render size %d x %d", fb.Render.Width, fb.Render.Height)
	}
}

// setupHighDPI derives render size, screen scale and mouse scale from the
// real framebuffer when the OS does not scale for us.
func (c *Core) setupHighDPI() {
	w := &c.Window
	if !w.Flags.Has(FlagWindowHighDPI) || c.backend.ManagesScaling() {
		return
	}
	fbw, fbh := c.backend.FramebufferSize()
	if fbw <= 0 || fbh <= 0 {
		c.log.Warnf("DISPLAY: Failed to query framebuffer size, keeping %d x %d", w.Screen.Width, w.Screen.Height)
		return
	}
	w.Render = Size{Width: fbw, Height: fbh}
	w.ScreenScale = scaleMatrix(float32(fbw)/float32(w.Screen.Width), float32(fbh)/float32(w.Screen.Height))
	c.SetMouseScale(float32(w.Screen.Width)/float32(fbw), float32(w.Screen.Height)/float32(fbh))
}

func (c *Core) centerWindow() {
	m := c.GetCurrentMonitor()
	mw, mh := c.GetMonitorWidth(m), c.GetMonitorHeight(m)
	if mw == 0 || mh == 0 {
		return
	}
	pos := c.GetMonitorPosition(m)
	c.SetWindowPosition(int(pos.X())+mw/2-c.Window.Screen.Width/2, int(pos.Y())+mh/2-c.Window.Screen.Height/2)
}

func (c *Core) enumerateGamepads() {
	gp := &c.Input.Gamepad
	for id := 0; id < MaxGamepads; id++ {
		gp.Ready[id] = c.backend.JoystickPresent(id)
		gp.Name[id] = ""
		gp.AxisCount[id] = 0
		if gp.Ready[id] {
			gp.Name[id] = truncateUTF8(c.backend.GamepadName(id), MaxGamepadNameLength)
			c.log.Infof("INPUT: Gamepad %d detected: %s", id, gp.Name[id])
		}
	}
}
