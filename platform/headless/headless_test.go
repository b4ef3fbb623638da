package headless

import (
	"errors"
	"testing"

	"github.com/gekko3d/rcore/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func created(t *testing.T, spec platform.WindowSpec) *Platform {
	t.Helper()
	p := New()
	require.NoError(t, p.Init())
	require.NoError(t, p.CreateWindow(spec))
	return p
}

func TestEventsAreDeliveredInOrder(t *testing.T) {
	p := created(t, platform.WindowSpec{Width: 100, Height: 100, Monitor: -1})

	var got []string
	p.SetCallbacks(platform.Callbacks{
		Key: func(key, _ int, action platform.Action, _ platform.ModifierKey) {
			if action == platform.Press {
				got = append(got, "key")
			}
		},
		Char:   func(rune) { got = append(got, "char") },
		Scroll: func(float64, float64) { got = append(got, "scroll") },
	})

	p.Push(Key{Key: 65, Action: platform.Press}, Char{Char: 'a'}, Scroll{Y: 1}, CursorPos{X: 1})
	assert.Equal(t, 4, p.Pending())

	p.PollEvents()
	assert.Equal(t, []string{"key", "char", "scroll"}, got, "events without a handler are skipped")
	assert.Zero(t, p.Pending())
	assert.Equal(t, 1, p.Polls())
}

func TestFollowUpEventsWaitForNextPoll(t *testing.T) {
	p := created(t, platform.WindowSpec{Width: 100, Height: 100, Monitor: -1})

	var sizes [][2]int
	p.SetCallbacks(platform.Callbacks{
		WindowPos: func(int, int) { p.SetWindowSize(200, 150) },
		FramebufferSize: func(w, h int) {
			sizes = append(sizes, [2]int{w, h})
		},
	})

	p.Push(WindowPos{X: 5, Y: 5})
	p.PollEvents()
	assert.Empty(t, sizes)
	assert.Equal(t, 1, p.Pending())

	p.WaitEvents()
	assert.Equal(t, [][2]int{{200, 150}}, sizes)
	assert.Equal(t, 1, p.Waits())
}

func TestSetWindowSizeHonorsLimits(t *testing.T) {
	p := created(t, platform.WindowSpec{Width: 300, Height: 300, Monitor: -1})
	p.SetSizeLimits(200, platform.DontCare, 400, 350)

	p.SetWindowSize(100, 500)
	w, h := p.WindowSize()
	assert.Equal(t, 200, w)
	assert.Equal(t, 350, h)

	minW, minH, maxW, maxH := p.SizeLimits()
	assert.Equal(t, []int{200, platform.DontCare, 400, 350}, []int{minW, minH, maxW, maxH})
}

func TestFramebufferScale(t *testing.T) {
	p := created(t, platform.WindowSpec{Width: 400, Height: 300, Monitor: -1})
	p.FramebufferScale = 2

	fw, fh := p.FramebufferSize()
	assert.Equal(t, 800, fw)
	assert.Equal(t, 600, fh)
	sx, sy := p.ContentScale()
	assert.Equal(t, float32(2), sx)
	assert.Equal(t, float32(2), sy)
}

func TestFailureInjection(t *testing.T) {
	boom := errors.New("boom")

	p := New()
	assert.ErrorIs(t, p.CreateWindow(platform.WindowSpec{}), ErrNotInitialized)

	p.InitErr = boom
	assert.ErrorIs(t, p.Init(), boom)
	assert.False(t, p.Initialized())

	p = New()
	p.MonitorErr = boom
	_, err := p.PrimaryMonitor()
	assert.ErrorIs(t, err, boom)
	_, err = p.Monitors()
	assert.ErrorIs(t, err, boom)

	p = New()
	p.CreateErr = boom
	require.NoError(t, p.Init())
	assert.ErrorIs(t, p.CreateWindow(platform.WindowSpec{}), boom)
	assert.ErrorIs(t, p.MakeContextCurrent(), ErrNotInitialized)

	p = created(t, platform.WindowSpec{Width: 1, Height: 1, Monitor: -1})
	p.ContextErr = boom
	assert.ErrorIs(t, p.MakeContextCurrent(), boom)
}

func TestFullscreenMonitorTracking(t *testing.T) {
	second := DefaultMonitor()
	second.X = 1920
	p := New(DefaultMonitor(), second)
	require.NoError(t, p.Init())
	require.NoError(t, p.CreateWindow(platform.WindowSpec{Width: 800, Height: 600, Monitor: -1}))
	assert.Equal(t, -1, p.FullscreenMonitor())

	p.SetWindowMonitor(1, 0, 0, 1920, 1080, platform.DontCare)
	assert.Equal(t, 1, p.FullscreenMonitor())
	x, _ := p.WindowPos()
	assert.Equal(t, 1920, x)

	p.SetWindowMonitor(-1, 40, 30, 800, 600, platform.DontCare)
	assert.Equal(t, -1, p.FullscreenMonitor())
	x, y := p.WindowPos()
	assert.Equal(t, 40, x)
	assert.Equal(t, 30, y)
}

func TestGamepadSlots(t *testing.T) {
	p := New()

	p.ConnectGamepad(1, "pad")
	p.ConnectGamepad(maxJoysticks, "ignored")
	assert.True(t, p.JoystickPresent(1))
	assert.False(t, p.JoystickPresent(maxJoysticks))
	assert.Equal(t, "pad", p.GamepadName(1))

	var st platform.GamepadState
	st.Buttons[0] = true
	p.SetGamepadState(1, st)
	got, ok := p.GamepadState(1)
	require.True(t, ok)
	assert.True(t, got.Buttons[0])

	p.DisconnectGamepad(1)
	_, ok = p.GamepadState(1)
	assert.False(t, ok)
	assert.Empty(t, p.GamepadName(1))
	assert.Equal(t, 2, p.Pending())
}

func TestRestoreClearsIconifyAndMaximize(t *testing.T) {
	p := created(t, platform.WindowSpec{Width: 1, Height: 1, Monitor: -1})
	p.Iconify()
	p.Maximize()
	p.Restore()
	assert.False(t, p.Iconified())
	assert.False(t, p.Maximized())
	assert.Equal(t, 4, p.Pending())
}

func TestKeyNameAndMappings(t *testing.T) {
	p := New()
	assert.Equal(t, "a", p.KeyName(65))
	assert.Equal(t, "1", p.KeyName(49))
	assert.Empty(t, p.KeyName(32))
	assert.Empty(t, p.KeyName(256))

	assert.False(t, p.UpdateGamepadMappings("  "))
	assert.True(t, p.UpdateGamepadMappings("mapping"))
	assert.Equal(t, "mapping", p.Mappings())
}

func TestTerminateDropsWindow(t *testing.T) {
	p := created(t, platform.WindowSpec{Width: 1, Height: 1, Monitor: -1})
	p.Push(Char{Char: 'x'})
	p.Terminate()
	assert.True(t, p.Terminated())
	assert.False(t, p.Created())
	assert.Zero(t, p.Pending())
}
