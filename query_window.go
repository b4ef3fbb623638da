package rcore

import (
	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/mathgl/mgl32"
)

// WindowShouldClose reports a pending close request. A window that is not
// ready always reports true so frame loops terminate.
func (c *Core) WindowShouldClose() bool {
	if !c.Window.Ready {
		return true
	}
	if c.backend.ShouldClose() {
		c.Window.ShouldClose = true
	}
	return c.Window.ShouldClose
}

func (c *Core) IsWindowReady() bool      { return c.Window.Ready }
func (c *Core) IsWindowFullscreen() bool { return c.Window.Fullscreen }
func (c *Core) IsWindowHidden() bool     { return c.Window.Flags.Has(FlagWindowHidden) }
func (c *Core) IsWindowMinimized() bool  { return c.Window.Flags.Has(FlagWindowMinimized) }
func (c *Core) IsWindowMaximized() bool  { return c.Window.Flags.Has(FlagWindowMaximized) }
func (c *Core) IsWindowFocused() bool    { return !c.Window.Flags.Has(FlagWindowUnfocused) }
func (c *Core) IsWindowResized() bool    { return c.Window.ResizedLastFrame }

// IsWindowState reports whether every bit of flags is set.
func (c *Core) IsWindowState(flags ConfigFlags) bool { return c.Window.Flags.Has(flags) }

// creationOnly flags cannot change once the window exists.
const creationOnly = FlagWindowTransparent | FlagWindowHighDPI | FlagMSAA4xHint | FlagInterlacedHint

// SetWindowState applies flags to a live window.
func (c *Core) SetWindowState(flags ConfigFlags) {
	if !c.Window.Ready {
		c.log.Warnf("WINDOW: SetWindowState called before InitWindow, use SetConfigFlags")
		return
	}
	w := &c.Window
	p := c.backend

	if flags.Has(FlagVSyncHint) && !w.Flags.Has(FlagVSyncHint) {
		p.SwapInterval(1)
		w.Flags.Set(FlagVSyncHint)
	}
	if flags.Has(FlagBorderlessWindowedMode) && !w.Flags.Has(FlagBorderlessWindowedMode) {
		c.ToggleBorderlessWindowed()
	}
	if flags.Has(FlagFullscreenMode) && !w.Fullscreen {
		c.ToggleFullscreen()
	}
	if flags.Has(FlagWindowResizable) {
		p.SetWindowAttrib(platform.AttribResizable, true)
		w.Flags.Set(FlagWindowResizable)
	}
	if flags.Has(FlagWindowUndecorated) {
		p.SetWindowAttrib(platform.AttribDecorated, false)
		w.Flags.Set(FlagWindowUndecorated)
	}
	if flags.Has(FlagWindowHidden) {
		p.Hide()
		w.Flags.Set(FlagWindowHidden)
	}
	if flags.Has(FlagWindowMinimized) {
		c.MinimizeWindow()
	}
	if flags.Has(FlagWindowMaximized) {
		c.MaximizeWindow()
	}
	if flags.Has(FlagWindowUnfocused) {
		p.SetWindowAttrib(platform.AttribFocusOnShow, false)
		w.Flags.Set(FlagWindowUnfocused)
	}
	if flags.Has(FlagWindowTopmost) {
		p.SetWindowAttrib(platform.AttribFloating, true)
		w.Flags.Set(FlagWindowTopmost)
	}
	if flags.Has(FlagWindowAlwaysRun) {
		w.Flags.Set(FlagWindowAlwaysRun)
	}
	if flags.Has(FlagWindowMousePassthrough) {
		p.SetWindowAttrib(platform.AttribMousePassthrough, true)
		w.Flags.Set(FlagWindowMousePassthrough)
	}
	if rest := flags & creationOnly; rest != 0 {
		c.log.Warnf("WINDOW: %s can only be configured before window initialization", rest)
	}
}

// ClearWindowState reverts flags on a live window.
func (c *Core) ClearWindowState(flags ConfigFlags) {
	if !c.Window.Ready {
		return
	}
	w := &c.Window
	p := c.backend

	if flags.Has(FlagVSyncHint) && w.Flags.Has(FlagVSyncHint) {
		p.SwapInterval(0)
		w.Flags.Clear(FlagVSyncHint)
	}
	if flags.Has(FlagBorderlessWindowedMode) && w.Flags.Has(FlagBorderlessWindowedMode) {
		c.ToggleBorderlessWindowed()
	}
	if flags.Has(FlagFullscreenMode) && w.Fullscreen {
		c.ToggleFullscreen()
	}
	if flags.Has(FlagWindowResizable) {
		p.SetWindowAttrib(platform.AttribResizable, false)
		w.Flags.Clear(FlagWindowResizable)
	}
	if flags.Has(FlagWindowHidden) {
		p.Show()
		w.Flags.Clear(FlagWindowHidden)
	}
	if flags.Has(FlagWindowMinimized) || flags.Has(FlagWindowMaximized) {
		c.RestoreWindow()
	}
	if flags.Has(FlagWindowUndecorated) {
		p.SetWindowAttrib(platform.AttribDecorated, true)
		w.Flags.Clear(FlagWindowUndecorated)
	}
	if flags.Has(FlagWindowUnfocused) {
		p.SetWindowAttrib(platform.AttribFocusOnShow, true)
		w.Flags.Clear(FlagWindowUnfocused)
	}
	if flags.Has(FlagWindowTopmost) {
		p.SetWindowAttrib(platform.AttribFloating, false)
		w.Flags.Clear(FlagWindowTopmost)
	}
	if flags.Has(FlagWindowAlwaysRun) {
		w.Flags.Clear(FlagWindowAlwaysRun)
	}
	if flags.Has(FlagWindowMousePassthrough) {
		p.SetWindowAttrib(platform.AttribMousePassthrough, false)
		w.Flags.Clear(FlagWindowMousePassthrough)
	}
	if rest := flags & creationOnly; rest != 0 {
		c.log.Warnf("WINDOW: %s can only be configured before window initialization", rest)
	}
}

// ToggleFullscreen switches between exclusive fullscreen on the current
// monitor and the windowed position saved on the way in.
func (c *Core) ToggleFullscreen() {
	if !c.Window.Ready {
		return
	}
	w := &c.Window
	if !w.Fullscreen {
		w.PreviousPosition = w.Position
		m := c.GetCurrentMonitor()
		if m < 0 || m >= c.GetMonitorCount() {
			c.log.Warnf("GLFW: Failed to get monitor")
		} else {
			w.Fullscreen = true
			w.Flags.Set(FlagFullscreenMode)
			c.fullscreenMonitor = m
			c.backend.SetWindowMonitor(m, 0, 0, w.Screen.Width, w.Screen.Height, platform.DontCare)
		}
	} else {
		w.Fullscreen = false
		w.Flags.Clear(FlagFullscreenMode)
		c.backend.SetWindowMonitor(-1, w.PreviousPosition.X, w.PreviousPosition.Y, w.Screen.Width, w.Screen.Height, platform.DontCare)
		w.Position = w.PreviousPosition
	}

	// Mode switches drop the swap interval on some drivers.
	if w.Flags.Has(FlagVSyncHint) {
		c.backend.SwapInterval(1)
	}
}

// ToggleBorderlessWindowed covers the current monitor with an undecorated
// topmost window, or restores the saved windowed geometry.
func (c *Core) ToggleBorderlessWindowed() {
	if !c.Window.Ready {
		return
	}
	w := &c.Window
	p := c.backend

	wasFullscreen := false
	if w.Fullscreen {
		w.PreviousPosition = w.Position
		c.ToggleFullscreen()
		wasFullscreen = true
	}

	m := c.GetCurrentMonitor()
	monitors := c.monitors()
	if m < 0 || m >= len(monitors) {
		c.log.Warnf("GLFW: Failed to get monitor")
		return
	}
	mon := monitors[m]

	if !w.Flags.Has(FlagBorderlessWindowedMode) {
		if !wasFullscreen {
			w.PreviousPosition = w.Position
		}
		w.PreviousScreen = w.Screen

		p.SetWindowAttrib(platform.AttribDecorated, false)
		w.Flags.Set(FlagWindowUndecorated)
		p.SetWindowAttrib(platform.AttribFloating, true)
		w.Flags.Set(FlagWindowTopmost)

		p.SetWindowPos(mon.X, mon.Y)
		p.SetWindowSize(mon.Mode.Width, mon.Mode.Height)
		p.Focus()
		w.Flags.Set(FlagBorderlessWindowedMode)
		return
	}

	p.SetWindowAttrib(platform.AttribFloating, false)
	w.Flags.Clear(FlagWindowTopmost)
	p.SetWindowAttrib(platform.AttribDecorated, true)
	w.Flags.Clear(FlagWindowUndecorated)

	p.SetWindowSize(w.PreviousScreen.Width, w.PreviousScreen.Height)
	p.SetWindowPos(w.PreviousPosition.X, w.PreviousPosition.Y)
	p.Focus()
	w.Flags.Clear(FlagBorderlessWindowedMode)
}

// MaximizeWindow only takes effect on resizable windows.
func (c *Core) MaximizeWindow() {
	if !c.Window.Ready || !c.Window.Flags.Has(FlagWindowResizable) {
		return
	}
	c.backend.Maximize()
	c.Window.Flags.Set(FlagWindowMaximized)
}

func (c *Core) MinimizeWindow() {
	if !c.Window.Ready {
		return
	}
	c.backend.Iconify()
	c.Window.Flags.Set(FlagWindowMinimized)
}

func (c *Core) RestoreWindow() {
	if !c.Window.Ready {
		return
	}
	c.backend.Restore()
	c.Window.Flags.Clear(FlagWindowMinimized | FlagWindowMaximized)
}

func (c *Core) SetWindowTitle(title string) {
	c.Window.Title = title
	if c.Window.Ready {
		c.backend.SetTitle(title)
	}
}

func (c *Core) SetWindowPosition(x, y int) {
	c.Window.Position = Point{X: x, Y: y}
	if c.Window.Ready {
		c.backend.SetWindowPos(x, y)
	}
}

// SetWindowMonitor moves a fullscreen window to monitor, or centers a
// windowed one on it.
func (c *Core) SetWindowMonitor(monitor int) {
	if !c.Window.Ready {
		return
	}
	monitors := c.monitors()
	if monitor < 0 || monitor >= len(monitors) {
		c.log.Warnf("GLFW: Failed to find selected monitor")
		return
	}
	mon := monitors[monitor]
	w := &c.Window
	if w.Fullscreen {
		c.log.Infof("GLFW: Selected fullscreen monitor: [%d] %s", monitor, mon.Name)
		c.fullscreenMonitor = monitor
		c.backend.SetWindowMonitor(monitor, 0, 0, mon.Mode.Width, mon.Mode.Height, mon.Mode.RefreshRate)
		return
	}
	c.log.Infof("GLFW: Selected monitor: [%d] %s", monitor, mon.Name)
	x := mon.X + (mon.Mode.Width-w.Screen.Width)/2
	y := mon.Y + (mon.Mode.Height-w.Screen.Height)/2
	c.SetWindowPosition(x, y)
}

// SetWindowMinSize limits resizing; zero leaves a dimension unlimited.
func (c *Core) SetWindowMinSize(width, height int) {
	c.Window.ScreenMin = Size{Width: width, Height: height}
	c.applySizeLimits()
}

func (c *Core) SetWindowMaxSize(width, height int) {
	c.Window.ScreenMax = Size{Width: width, Height: height}
	c.applySizeLimits()
}

func (c *Core) applySizeLimits() {
	if !c.Window.Ready {
		return
	}
	limit := func(v int) int {
		if v == 0 {
			return platform.DontCare
		}
		return v
	}
	lo, hi := c.Window.ScreenMin, c.Window.ScreenMax
	c.backend.SetSizeLimits(limit(lo.Width), limit(lo.Height), limit(hi.Width), limit(hi.Height))
}

// SetWindowSize asks the platform for a new size; screen follows once the
// resize event arrives.
func (c *Core) SetWindowSize(width, height int) {
	if c.Window.Ready {
		c.backend.SetWindowSize(width, height)
	}
}

// SetWindowOpacity clamps opacity to [0, 1].
func (c *Core) SetWindowOpacity(opacity float32) {
	if opacity > 1 {
		opacity = 1
	} else if opacity < 0 {
		opacity = 0
	}
	if c.Window.Ready {
		c.backend.SetOpacity(opacity)
	}
}

func (c *Core) SetWindowFocused() {
	if c.Window.Ready {
		c.backend.Focus()
	}
}

func (c *Core) GetScreenWidth() int  { return c.Window.Screen.Width }
func (c *Core) GetScreenHeight() int { return c.Window.Screen.Height }
func (c *Core) GetScreenSize() Size  { return c.Window.Screen }
func (c *Core) GetRenderWidth() int  { return c.Window.Render.Width }
func (c *Core) GetRenderHeight() int { return c.Window.Render.Height }
func (c *Core) GetRenderSize() Size  { return c.Window.Render }

func (c *Core) GetWindowPosition() mgl32.Vec2 { return c.Window.Position.Vec2() }

// GetWindowScaleDPI is the content scale the platform reports, 1 when no
// window exists.
func (c *Core) GetWindowScaleDPI() mgl32.Vec2 {
	if !c.Window.Ready {
		return mgl32.Vec2{1, 1}
	}
	x, y := c.backend.ContentScale()
	return mgl32.Vec2{x, y}
}

// ScreenScale is the matrix a renderer applies to map screen to render size.
func (c *Core) ScreenScale() mgl32.Mat4 { return c.Window.ScreenScale }
func (c *Core) RenderOffset() Point     { return c.Window.RenderOffset }

// Clipboard

func (c *Core) GetClipboardText() string {
	if !c.Window.Ready {
		return ""
	}
	return c.backend.ClipboardText()
}

func (c *Core) SetClipboardText(text string) {
	if c.Window.Ready {
		c.backend.SetClipboardText(text)
	}
}

// Dropped files

func (c *Core) IsFileDropped() bool { return len(c.Window.droppedFiles) > 0 }

// LoadDroppedFiles returns a copy of the pending batch.
func (c *Core) LoadDroppedFiles() []string {
	out := make([]string, len(c.Window.droppedFiles))
	copy(out, c.Window.droppedFiles)
	return out
}

func (c *Core) UnloadDroppedFiles() { c.Window.droppedFiles = nil }
