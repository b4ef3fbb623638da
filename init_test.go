package rcore

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gekko3d/rcore/platform"
	"github.com/gekko3d/rcore/platform/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWindowWindowed(t *testing.T) {
	c, p := newTestCore(t, FlagVSyncHint)

	assert.True(t, c.IsWindowReady())
	assert.False(t, c.IsWindowFullscreen())
	assert.Equal(t, Size{Width: 1920, Height: 1080}, c.Window.Display)
	assert.Equal(t, Size{Width: 800, Height: 450}, c.GetScreenSize())
	assert.Equal(t, Size{Width: 800, Height: 450}, c.GetRenderSize())
	assert.Equal(t, c.Window.Render, c.Window.CurrentFbo)
	assert.Equal(t, 1, p.SwapIntervalValue())

	spec := p.Spec()
	assert.Equal(t, -1, spec.Monitor)
	assert.Equal(t, 800, spec.Width)
	assert.Equal(t, "test", spec.Title)
	assert.True(t, spec.Hints.AutoIconify)

	// Centered on the primary monitor.
	assert.Equal(t, Point{X: 560, Y: 315}, c.Window.Position)
	x, y := p.WindowPos()
	assert.Equal(t, 560, x)
	assert.Equal(t, 315, y)
}

func TestInitWindowZeroSizeUsesDisplay(t *testing.T) {
	p := headless.New()
	c := NewCore(p).SetLogger(NewNopLogger())
	require.NoError(t, c.InitWindow(0, 0, "full"))

	assert.Equal(t, Size{Width: 1920, Height: 1080}, c.GetScreenSize())
	assert.False(t, p.Spec().Hints.AutoIconify, "a display-sized window must not auto iconify")
}

func TestInitFullscreenPicksClosestMode(t *testing.T) {
	p := headless.New()
	c := NewCore(p).SetLogger(NewNopLogger()).SetConfigFlags(FlagFullscreenMode)
	require.NoError(t, c.InitWindow(1000, 700, "fs"))

	assert.True(t, c.IsWindowFullscreen())
	assert.Equal(t, Size{Width: 1280, Height: 720}, c.Window.Display)
	assert.Equal(t, Size{Width: 1000, Height: 700}, c.GetScreenSize())
	assert.Equal(t, Size{Width: 1244, Height: 700}, c.GetRenderSize())
	assert.Equal(t, Point{X: 244, Y: 0}, c.RenderOffset())

	spec := p.Spec()
	assert.Equal(t, 0, spec.Monitor)
	assert.Equal(t, 1280, spec.Width)
	assert.Equal(t, 720, spec.Height)
	assert.Equal(t, 60, spec.RefreshRate)

	// Windowed return position is centered on the initial display.
	assert.Equal(t, Point{X: 460, Y: 190}, c.Window.Position)
}

func TestInitFullscreenAtDisplaySizeUsesQuarterOffset(t *testing.T) {
	p := headless.New()
	c := NewCore(p).SetLogger(NewNopLogger()).SetConfigFlags(FlagFullscreenMode)
	require.NoError(t, c.InitWindow(1920, 1080, "fs"))

	assert.Equal(t, Point{X: 480, Y: 270}, c.Window.Position)
	assert.Equal(t, c.GetScreenSize(), c.GetRenderSize())
}

func TestInitHighDPIScalesFromFramebuffer(t *testing.T) {
	p := headless.New()
	p.FramebufferScale = 2
	c := NewCore(p).SetLogger(NewNopLogger()).SetConfigFlags(FlagWindowHighDPI)
	require.NoError(t, c.InitWindow(800, 450, "hidpi"))

	assert.Equal(t, Size{Width: 1600, Height: 900}, c.GetRenderSize())
	assert.Equal(t, Size{Width: 1600, Height: 900}, c.Window.CurrentFbo)
	assert.InDelta(t, 2, c.ScreenScale().At(0, 0), 1e-6)
	assert.InDelta(t, 0.5, c.Input.Mouse.Scale.X(), 1e-6)
	assert.True(t, p.Spec().Hints.ScaleToMonitor)
}

func TestInitHighDPISkippedWhenOSScales(t *testing.T) {
	p := headless.New()
	p.FramebufferScale = 2
	p.OSScaling = true
	c := NewCore(p).SetLogger(NewNopLogger()).SetConfigFlags(FlagWindowHighDPI)
	require.NoError(t, c.InitWindow(800, 450, "retina"))

	assert.Equal(t, Size{Width: 800, Height: 450}, c.GetRenderSize())
	assert.Equal(t, float32(1), c.Input.Mouse.Scale.X())
	assert.True(t, p.Spec().Hints.RetinaFramebuffer)
}

func TestInitErrorTaxonomy(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		setup  func(p *headless.Platform)
		width  int
		want   error
		closed bool
	}{
		{"context init", func(p *headless.Platform) { p.InitErr = boom }, 800, ErrContextInitFailed, false},
		{"window create", func(p *headless.Platform) { p.CreateErr = boom }, 800, ErrWindowCreateFailed, true},
		{"context activation", func(p *headless.Platform) { p.ContextErr = boom }, 800, ErrContextActivationFailed, true},
		{"monitor without fallback", func(p *headless.Platform) { p.MonitorErr = boom }, 0, ErrMonitorQueryFailed, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := headless.New()
			tt.setup(p)
			c := NewCore(p).SetLogger(NewNopLogger())

			err := c.InitWindow(tt.width, 450, "fail")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, "boom")
			assert.True(t, IsFatal(err))
			assert.False(t, c.IsWindowReady())
			assert.Equal(t, tt.closed, p.Terminated())
		})
	}
}

func TestInitMonitorFailureFallsBackToScreen(t *testing.T) {
	p := headless.New()
	p.MonitorErr = errors.New("no monitors")
	var out, errOut bytes.Buffer
	c := NewCore(p).SetLogger(NewLogger(&out, &errOut, "t", false))

	require.NoError(t, c.InitWindow(640, 480, "fallback"))
	assert.Equal(t, Size{Width: 640, Height: 480}, c.Window.Display)
	assert.Contains(t, errOut.String(), "Failed to get primary monitor")
}

func TestInitWindowPreconditions(t *testing.T) {
	c := NewCore(nil)
	assert.ErrorIs(t, c.InitWindow(1, 1, ""), ErrNilPlatform)

	c2, _ := newTestCore(t, 0)
	assert.ErrorIs(t, c2.InitWindow(800, 450, "again"), ErrAlreadyInitialized)
	assert.False(t, IsFatal(ErrAlreadyInitialized))
	assert.False(t, IsFatal(ErrWindowNotReady))
}

func TestInitReappliesMinimizedAndMaximized(t *testing.T) {
	c, p := newTestCore(t, FlagWindowMinimized|FlagWindowMaximized|FlagWindowResizable)

	assert.True(t, p.Iconified())
	assert.True(t, p.Maximized())
	assert.True(t, c.IsWindowMinimized())
	assert.True(t, c.IsWindowMaximized())
}

func TestInitLoadsDebugFontForTextModule(t *testing.T) {
	p := headless.New()
	c := NewCore(p).SetLogger(NewNopLogger()).EnableModules(Modules{Text: true})
	require.NoError(t, c.InitWindow(320, 240, "text"))

	font := c.DefaultFont()
	require.NotNil(t, font)
	assert.NotEmpty(t, font.ID)

	c.CloseWindow()
	assert.Nil(t, c.DefaultFont())
}

func TestCloseWindowTwiceIsNoop(t *testing.T) {
	c, p := newTestCore(t, 0)

	c.CloseWindow()
	assert.False(t, c.IsWindowReady())
	assert.True(t, p.Terminated())
	assert.False(t, p.Created())
	assert.True(t, c.WindowShouldClose())

	assert.NotPanics(t, c.CloseWindow)

	// The core can open a new window afterwards.
	require.NoError(t, c.InitWindow(320, 240, "again"))
	assert.True(t, c.callbacksRegistered)
}

func TestWindowHints(t *testing.T) {
	h := windowHints(FlagWindowHidden|FlagWindowUndecorated|FlagWindowResizable|FlagWindowTopmost|FlagMSAA4xHint, GL33, false)
	assert.False(t, h.Visible)
	assert.False(t, h.Decorated)
	assert.True(t, h.Resizable)
	assert.True(t, h.Floating)
	assert.True(t, h.Focused)
	assert.Equal(t, 4, h.Samples)
	assert.Equal(t, 3, h.ContextMajor)
	assert.Equal(t, 3, h.ContextMinor)
	assert.Equal(t, platform.CoreProfile, h.Profile)
	assert.False(t, h.ForwardCompat)

	mac := windowHints(FlagWindowHighDPI, GL33, true)
	assert.True(t, mac.ForwardCompat)
	assert.True(t, mac.RetinaFramebuffer)

	es := windowHints(FlagWindowUnfocused, GLES30, false)
	assert.False(t, es.Focused)
	assert.Equal(t, platform.OpenGLESAPI, es.API)
	assert.Equal(t, platform.EGLContextAPI, es.ContextCreation)
	assert.Equal(t, 3, es.ContextMajor)
	assert.Equal(t, 0, es.ContextMinor)

	legacy := windowHints(0, GL11, false)
	assert.Equal(t, 0, legacy.ContextMajor)
	assert.Equal(t, platform.AnyProfile, legacy.Profile)
}

func TestClosestVideoMode(t *testing.T) {
	modes := headless.DefaultMonitor().Modes

	m, ok := closestVideoMode(modes, Size{Width: 1024, Height: 768})
	require.True(t, ok)
	assert.Equal(t, 1280, m.Width)

	_, ok = closestVideoMode(modes, Size{Width: 4000, Height: 3000})
	assert.False(t, ok)
}

func TestReopenedWindowStartsFresh(t *testing.T) {
	c, p := newTestCore(t, FlagWindowResizable)
	c.SetExitKey(KeyQ)
	p.ConnectGamepad(0, "Pad")
	frame(c, p, press(KeyA), headless.Drop{Paths: []string{"/x"}})
	require.True(t, c.IsGamepadAvailable(0))
	require.True(t, c.IsKeyDown(KeyA))
	require.True(t, c.IsFileDropped())
	c.ToggleFullscreen()

	c.CloseWindow()
	p.DisconnectGamepad(0)
	c.Window.Flags.Clear(FlagFullscreenMode)
	require.NoError(t, c.InitWindow(800, 450, "again"))

	assert.False(t, c.IsGamepadAvailable(0))
	assert.Empty(t, c.GetGamepadName(0))
	assert.False(t, c.IsKeyDown(KeyA))
	assert.False(t, c.IsFileDropped())
	assert.False(t, c.IsWindowFullscreen())
	assert.False(t, c.IsWindowResized())
	assert.Equal(t, Point{}, c.RenderOffset())
	assert.Equal(t, KeyQ, c.Input.Keyboard.ExitKey, "exit key survives a reopen")
	assert.True(t, c.IsWindowState(FlagWindowResizable), "config flags survive a reopen")
}
