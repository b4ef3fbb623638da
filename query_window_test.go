package rcore

import (
	"testing"

	"github.com/gekko3d/rcore/platform"
	"github.com/gekko3d/rcore/platform/headless"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dualMonitors() []platform.Monitor {
	left := headless.DefaultMonitor()
	left.Name = "Left"

	right := headless.DefaultMonitor()
	right.Name = "Right"
	right.X = 1920
	right.Mode = platform.VideoMode{Width: 2560, Height: 1440, RefreshRate: 144}
	right.PhysicalWidth, right.PhysicalHeight = 597, 336
	return []platform.Monitor{left, right}
}

func TestToggleFullscreenRoundTrip(t *testing.T) {
	c, p := newTestCore(t, FlagVSyncHint)
	c.PollInputEvents()
	windowed := c.Window.Position

	p.SwapInterval(0)
	c.ToggleFullscreen()
	assert.True(t, c.IsWindowFullscreen())
	assert.True(t, c.IsWindowState(FlagFullscreenMode))
	assert.Equal(t, 0, p.FullscreenMonitor())
	assert.Equal(t, windowed, c.Window.PreviousPosition)
	assert.Equal(t, 1, p.SwapIntervalValue(), "vsync is reapplied after a mode switch")

	c.PollInputEvents()
	assert.Equal(t, Size{Width: 800, Height: 450}, c.GetScreenSize())

	c.ToggleFullscreen()
	assert.False(t, c.IsWindowFullscreen())
	assert.Equal(t, -1, p.FullscreenMonitor())
	assert.Equal(t, windowed, c.Window.Position)
	x, y := p.WindowPos()
	assert.Equal(t, windowed, Point{X: x, Y: y})
}

func TestToggleBorderlessRoundTrip(t *testing.T) {
	c, p := newTestCore(t, 0)
	c.PollInputEvents()
	startPos, startScreen := c.Window.Position, c.GetScreenSize()

	c.ToggleBorderlessWindowed()
	c.PollInputEvents()

	assert.True(t, c.IsWindowState(FlagBorderlessWindowedMode))
	assert.True(t, c.IsWindowState(FlagWindowUndecorated|FlagWindowTopmost))
	assert.False(t, p.Attrib(platform.AttribDecorated))
	assert.True(t, p.Attrib(platform.AttribFloating))
	assert.True(t, p.Focused())
	assert.Equal(t, Size{Width: 1920, Height: 1080}, c.GetScreenSize())
	assert.Equal(t, Point{}, c.Window.Position)
	assert.Equal(t, startScreen, c.Window.PreviousScreen)

	c.ToggleBorderlessWindowed()
	c.PollInputEvents()

	assert.False(t, c.IsWindowState(FlagBorderlessWindowedMode))
	assert.False(t, c.IsWindowState(FlagWindowUndecorated))
	assert.False(t, c.IsWindowState(FlagWindowTopmost))
	assert.True(t, p.Attrib(platform.AttribDecorated))
	assert.False(t, p.Attrib(platform.AttribFloating))
	assert.Equal(t, startScreen, c.GetScreenSize())
	assert.Equal(t, startPos, c.Window.Position)
}

func TestBorderlessFromFullscreenLeavesFullscreen(t *testing.T) {
	c, p := newTestCore(t, 0)
	c.PollInputEvents()
	startPos := c.Window.Position

	c.ToggleFullscreen()
	c.ToggleBorderlessWindowed()
	c.PollInputEvents()

	assert.False(t, c.IsWindowFullscreen())
	assert.True(t, c.IsWindowState(FlagBorderlessWindowedMode))
	assert.Equal(t, -1, p.FullscreenMonitor())
	assert.Equal(t, startPos, c.Window.PreviousPosition)
}

func TestSetAndClearWindowState(t *testing.T) {
	c, p := newTestCore(t, 0)

	c.SetWindowState(FlagWindowResizable | FlagWindowTopmost | FlagWindowHidden | FlagVSyncHint | FlagWindowAlwaysRun)
	assert.True(t, p.Attrib(platform.AttribResizable))
	assert.True(t, p.Attrib(platform.AttribFloating))
	assert.False(t, p.Visible())
	assert.True(t, c.IsWindowHidden())
	assert.Equal(t, 1, p.SwapIntervalValue())
	assert.True(t, c.IsWindowState(FlagWindowAlwaysRun))

	c.ClearWindowState(FlagWindowTopmost | FlagWindowHidden | FlagVSyncHint)
	assert.False(t, p.Attrib(platform.AttribFloating))
	assert.True(t, p.Visible())
	assert.False(t, c.IsWindowHidden())
	assert.Equal(t, 0, p.SwapIntervalValue())
	assert.True(t, c.IsWindowState(FlagWindowResizable))
}

func TestSetWindowStateCreationOnlyFlagsIgnored(t *testing.T) {
	c, _ := newTestCore(t, 0)

	c.SetWindowState(FlagWindowHighDPI | FlagMSAA4xHint)
	assert.False(t, c.IsWindowState(FlagWindowHighDPI))
	assert.False(t, c.IsWindowState(FlagMSAA4xHint))
}

func TestMinimizeMaximizeRestore(t *testing.T) {
	c, p := newTestCore(t, 0)

	c.MaximizeWindow()
	assert.False(t, p.Maximized(), "maximize needs a resizable window")

	c.SetWindowState(FlagWindowResizable)
	c.MaximizeWindow()
	assert.True(t, c.IsWindowMaximized())
	c.MinimizeWindow()
	assert.True(t, c.IsWindowMinimized())

	c.RestoreWindow()
	assert.False(t, c.IsWindowMinimized())
	assert.False(t, c.IsWindowMaximized())
	assert.False(t, p.Iconified())
	assert.False(t, p.Maximized())

	c.PollInputEvents()
	assert.False(t, c.IsWindowMinimized())
	assert.False(t, c.IsWindowMaximized())
}

func TestWindowSetters(t *testing.T) {
	c, p := newTestCore(t, FlagWindowResizable)

	c.SetWindowTitle("renamed")
	assert.Equal(t, "renamed", p.Title())

	c.SetWindowOpacity(1.5)
	assert.Equal(t, float32(1), p.Opacity())
	c.SetWindowOpacity(-1)
	assert.Equal(t, float32(0), p.Opacity())

	c.SetWindowMinSize(320, 240)
	c.SetWindowMaxSize(1024, 0)
	minW, minH, maxW, maxH := p.SizeLimits()
	assert.Equal(t, []int{320, 240, 1024, platform.DontCare}, []int{minW, minH, maxW, maxH})

	c.SetWindowSize(2000, 100)
	c.PollInputEvents()
	assert.Equal(t, Size{Width: 1024, Height: 240}, c.GetScreenSize())
	assert.True(t, c.IsWindowResized())

	c.SetWindowPosition(12, 34)
	assert.Equal(t, mgl32.Vec2{12, 34}, c.GetWindowPosition())

	c.SetWindowFocused()
	assert.True(t, p.Focused())
}

func TestMonitorQueries(t *testing.T) {
	c, _ := newTestCore(t, 0, dualMonitors()...)

	assert.Equal(t, 2, c.GetMonitorCount())
	assert.Equal(t, "Right", c.GetMonitorName(1))
	assert.Equal(t, 2560, c.GetMonitorWidth(1))
	assert.Equal(t, 1440, c.GetMonitorHeight(1))
	assert.Equal(t, 597, c.GetMonitorPhysicalWidth(1))
	assert.Equal(t, 336, c.GetMonitorPhysicalHeight(1))
	assert.Equal(t, 144, c.GetMonitorRefreshRate(1))
	assert.Equal(t, mgl32.Vec2{1920, 0}, c.GetMonitorPosition(1))

	assert.Equal(t, 0, c.GetMonitorWidth(5))
	assert.Empty(t, c.GetMonitorName(-1))
	assert.Equal(t, mgl32.Vec2{}, c.GetMonitorPosition(2))
}

func TestGetCurrentMonitor(t *testing.T) {
	c, _ := newTestCore(t, 0, dualMonitors()...)
	assert.Equal(t, 0, c.GetCurrentMonitor())

	c.SetWindowPosition(2500, 300)
	assert.Equal(t, 1, c.GetCurrentMonitor())

	// Off every monitor: the closest one wins.
	c.SetWindowPosition(5000, 100)
	assert.Equal(t, 1, c.GetCurrentMonitor())
	c.SetWindowPosition(-3000, -3000)
	assert.Equal(t, 0, c.GetCurrentMonitor())
}

func TestSetWindowMonitorCentersWindowed(t *testing.T) {
	c, p := newTestCore(t, 0, dualMonitors()...)

	c.SetWindowMonitor(1)
	assert.Equal(t, Point{X: 1920 + (2560-800)/2, Y: (1440 - 450) / 2}, c.Window.Position)
	assert.Equal(t, 1, c.GetCurrentMonitor())

	c.ToggleFullscreen()
	require.Equal(t, 1, p.FullscreenMonitor())
	assert.Equal(t, 1, c.GetCurrentMonitor())

	c.SetWindowMonitor(0)
	assert.Equal(t, 0, p.FullscreenMonitor())
	assert.Equal(t, 0, c.GetCurrentMonitor())

	c.SetWindowMonitor(9)
	assert.Equal(t, 0, p.FullscreenMonitor())
}

func TestClipboard(t *testing.T) {
	c, _ := newTestCore(t, 0)

	c.SetClipboardText("copied")
	assert.Equal(t, "copied", c.GetClipboardText())
}

func TestWindowScaleDPI(t *testing.T) {
	p := headless.New()
	p.FramebufferScale = 1.5
	c := NewCore(p).SetLogger(NewNopLogger())
	assert.Equal(t, mgl32.Vec2{1, 1}, c.GetWindowScaleDPI())

	require.NoError(t, c.InitWindow(320, 240, "dpi"))
	assert.Equal(t, mgl32.Vec2{1.5, 1.5}, c.GetWindowScaleDPI())
}

func TestWindowControlBeforeInitIsNoop(t *testing.T) {
	p := headless.New()
	c := NewCore(p).SetLogger(NewNopLogger())

	assert.NotPanics(t, func() {
		c.ToggleFullscreen()
		c.ToggleBorderlessWindowed()
		c.SetWindowState(FlagWindowTopmost)
		c.ClearWindowState(FlagWindowTopmost)
		c.SetWindowSize(10, 10)
		c.SetClipboardText("x")
	})
	assert.True(t, c.WindowShouldClose())
	assert.False(t, c.IsWindowFullscreen())
	assert.Empty(t, c.GetClipboardText())
}
