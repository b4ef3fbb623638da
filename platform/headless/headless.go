// Package headless is an in-memory Platform. It keeps window geometry and
// attributes in plain fields, delivers pushed events from PollEvents, and
// can be told to fail at any initialization step. Tests and display-less
// hosts drive the input state machine through it.
package headless

import (
	"errors"
	"strings"

	"github.com/gekko3d/rcore/platform"
)

const maxJoysticks = 4

var ErrNotInitialized = errors.New("headless: platform not initialized")

type joystick struct {
	present bool
	name    string
	state   platform.GamepadState
}

type Platform struct {
	// Failure injection, checked by the matching step.
	InitErr    error
	MonitorErr error
	CreateErr  error
	ContextErr error

	// FramebufferScale is framebuffer pixels per window unit; zero means 1.
	FramebufferScale float32
	// OSScaling is reported by ManagesScaling.
	OSScaling bool

	monitors []platform.Monitor

	initialized bool
	created     bool
	spec        platform.WindowSpec
	callbacks   platform.Callbacks
	queue       []Event

	shouldClose  bool
	swapInterval int
	swaps        int
	polls        int
	waits        int

	width, height int
	x, y          int
	fullscreenOn  int
	minW, minH    int
	maxW, maxH    int
	attribs       map[platform.Attrib]bool
	iconified     bool
	maximized     bool
	visible       bool
	focused       bool
	opacity       float32
	title         string

	cursorMode  platform.CursorMode
	cursorShape platform.StandardCursor
	cursorX     float64
	cursorY     float64

	clipboard  string
	joysticks  [maxJoysticks]joystick
	mappings   string
	terminated bool
}

// DefaultMonitor is a single 1920x1080 display at the desktop origin.
func DefaultMonitor() platform.Monitor {
	mode := platform.VideoMode{Width: 1920, Height: 1080, RefreshRate: 60, RedBits: 8, GreenBits: 8, BlueBits: 8}
	return platform.Monitor{
		Name: "Headless Display",
		Mode: mode,
		Modes: []platform.VideoMode{
			{Width: 640, Height: 480, RefreshRate: 60},
			{Width: 800, Height: 600, RefreshRate: 60},
			{Width: 1280, Height: 720, RefreshRate: 60},
			{Width: 1600, Height: 900, RefreshRate: 60},
			mode,
		},
		PhysicalWidth:  527,
		PhysicalHeight: 296,
		ContentScaleX:  1,
		ContentScaleY:  1,
	}
}

// New returns a platform with the given monitors, the first one primary.
// With no monitors DefaultMonitor is used.
func New(monitors ...platform.Monitor) *Platform {
	if len(monitors) == 0 {
		monitors = []platform.Monitor{DefaultMonitor()}
	}
	return &Platform{
		monitors:     monitors,
		fullscreenOn: -1,
		minW:         platform.DontCare,
		minH:         platform.DontCare,
		maxW:         platform.DontCare,
		maxH:         platform.DontCare,
		attribs:      make(map[platform.Attrib]bool),
		opacity:      1,
	}
}

func (p *Platform) Variant() platform.Variant { return platform.VariantHeadless }

func (p *Platform) Init() error {
	if p.InitErr != nil {
		return p.InitErr
	}
	p.initialized = true
	p.terminated = false
	return nil
}

func (p *Platform) Terminate() {
	p.DestroyWindow()
	p.initialized = false
	p.terminated = true
}

func (p *Platform) PrimaryMonitor() (platform.Monitor, error) {
	if p.MonitorErr != nil {
		return platform.Monitor{}, p.MonitorErr
	}
	if len(p.monitors) == 0 {
		return platform.Monitor{}, platform.ErrNoMonitor
	}
	return p.monitors[0], nil
}

func (p *Platform) Monitors() ([]platform.Monitor, error) {
	if p.MonitorErr != nil {
		return nil, p.MonitorErr
	}
	out := make([]platform.Monitor, len(p.monitors))
	copy(out, p.monitors)
	return out, nil
}

func (p *Platform) CreateWindow(spec platform.WindowSpec) error {
	if !p.initialized {
		return ErrNotInitialized
	}
	if p.CreateErr != nil {
		return p.CreateErr
	}
	p.spec = spec
	p.created = true
	p.width, p.height = spec.Width, spec.Height
	p.fullscreenOn = spec.Monitor
	p.title = spec.Title
	p.visible = spec.Hints.Visible
	p.focused = spec.Hints.Focused
	p.attribs[platform.AttribDecorated] = spec.Hints.Decorated
	p.attribs[platform.AttribResizable] = spec.Hints.Resizable
	p.attribs[platform.AttribFloating] = spec.Hints.Floating
	p.attribs[platform.AttribAutoIconify] = spec.Hints.AutoIconify
	p.attribs[platform.AttribMousePassthrough] = spec.Hints.MousePassthrough
	if spec.Monitor >= 0 && spec.Monitor < len(p.monitors) {
		p.x, p.y = p.monitors[spec.Monitor].X, p.monitors[spec.Monitor].Y
	}
	return nil
}

func (p *Platform) DestroyWindow() {
	p.created = false
	p.queue = nil
	p.callbacks = platform.Callbacks{}
}

func (p *Platform) MakeContextCurrent() error {
	if !p.created {
		return ErrNotInitialized
	}
	return p.ContextErr
}

func (p *Platform) SwapInterval(interval int) { p.swapInterval = interval }
func (p *Platform) SwapBuffers()              { p.swaps++ }
func (p *Platform) ManagesScaling() bool      { return p.OSScaling }

func (p *Platform) SetCallbacks(cb platform.Callbacks) { p.callbacks = cb }

// Push queues events for the next PollEvents call.
func (p *Platform) Push(events ...Event) {
	p.queue = append(p.queue, events...)
}

// Pending reports the number of queued, undelivered events.
func (p *Platform) Pending() int { return len(p.queue) }

func (p *Platform) PollEvents() {
	p.polls++
	p.drain()
}

// WaitEvents never blocks; it delivers whatever is queued.
func (p *Platform) WaitEvents() {
	p.waits++
	p.drain()
}

func (p *Platform) drain() {
	// Handlers may queue follow-up events; those go to the next poll.
	pending := p.queue
	p.queue = nil
	for _, ev := range pending {
		ev.dispatch(&p.callbacks)
	}
}

func (p *Platform) ShouldClose() bool         { return p.shouldClose }
func (p *Platform) SetShouldClose(close bool) { p.shouldClose = close }

func (p *Platform) scale() float32 {
	if p.FramebufferScale <= 0 {
		return 1
	}
	return p.FramebufferScale
}

func (p *Platform) FramebufferSize() (int, int) {
	s := p.scale()
	return int(float32(p.width) * s), int(float32(p.height) * s)
}

func (p *Platform) WindowSize() (int, int) { return p.width, p.height }

func (p *Platform) SetWindowSize(width, height int) {
	p.width, p.height = clampLimit(width, p.minW, p.maxW), clampLimit(height, p.minH, p.maxH)
	fw, fh := p.FramebufferSize()
	p.Push(FramebufferSize{Width: fw, Height: fh})
}

func clampLimit(v, lo, hi int) int {
	if lo != platform.DontCare && v < lo {
		v = lo
	}
	if hi != platform.DontCare && v > hi {
		v = hi
	}
	return v
}

func (p *Platform) SetSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) {
	p.minW, p.minH, p.maxW, p.maxH = minWidth, minHeight, maxWidth, maxHeight
}

// SizeLimits returns the last limits set by SetSizeLimits.
func (p *Platform) SizeLimits() (minWidth, minHeight, maxWidth, maxHeight int) {
	return p.minW, p.minH, p.maxW, p.maxH
}

func (p *Platform) WindowPos() (int, int) { return p.x, p.y }

func (p *Platform) SetWindowPos(x, y int) {
	p.x, p.y = x, y
	p.Push(WindowPos{X: x, Y: y})
}

func (p *Platform) ContentScale() (float32, float32) {
	s := p.scale()
	return s, s
}

func (p *Platform) SetWindowMonitor(monitor, x, y, width, height, refreshRate int) {
	if monitor >= 0 && monitor < len(p.monitors) {
		p.fullscreenOn = monitor
		p.x, p.y = p.monitors[monitor].X, p.monitors[monitor].Y
	} else {
		p.fullscreenOn = -1
		p.x, p.y = x, y
	}
	p.width, p.height = width, height
	fw, fh := p.FramebufferSize()
	p.Push(FramebufferSize{Width: fw, Height: fh})
}

// FullscreenMonitor is the monitor index the window is fullscreen on, or -1.
func (p *Platform) FullscreenMonitor() int { return p.fullscreenOn }

func (p *Platform) SetWindowAttrib(attr platform.Attrib, enabled bool) {
	p.attribs[attr] = enabled
}

func (p *Platform) Attrib(attr platform.Attrib) bool { return p.attribs[attr] }

func (p *Platform) Iconify() {
	p.iconified = true
	p.Push(Iconify{Iconified: true})
}

func (p *Platform) Maximize() {
	p.maximized = true
	p.Push(Maximize{Maximized: true})
}

func (p *Platform) Restore() {
	if p.iconified {
		p.iconified = false
		p.Push(Iconify{Iconified: false})
	}
	if p.maximized {
		p.maximized = false
		p.Push(Maximize{Maximized: false})
	}
}

func (p *Platform) Show() { p.visible = true }
func (p *Platform) Hide() { p.visible = false }

func (p *Platform) Focus() {
	p.focused = true
	p.Push(Focus{Focused: true})
}

func (p *Platform) Iconified() bool { return p.iconified }
func (p *Platform) Maximized() bool { return p.maximized }
func (p *Platform) Visible() bool   { return p.visible }
func (p *Platform) Focused() bool   { return p.focused }

func (p *Platform) SetOpacity(opacity float32) { p.opacity = opacity }
func (p *Platform) Opacity() float32           { return p.opacity }

func (p *Platform) SetTitle(title string) { p.title = title }
func (p *Platform) Title() string         { return p.title }

func (p *Platform) SetCursorMode(mode platform.CursorMode) { p.cursorMode = mode }
func (p *Platform) CursorMode() platform.CursorMode        { return p.cursorMode }

func (p *Platform) SetCursorPos(x, y float64) { p.cursorX, p.cursorY = x, y }
func (p *Platform) CursorPos() (float64, float64) {
	return p.cursorX, p.cursorY
}

func (p *Platform) SetStandardCursor(shape platform.StandardCursor) { p.cursorShape = shape }
func (p *Platform) CursorShape() platform.StandardCursor            { return p.cursorShape }

func (p *Platform) ClipboardText() string        { return p.clipboard }
func (p *Platform) SetClipboardText(text string) { p.clipboard = text }

// ConnectGamepad marks slot id present and queues the connect event.
func (p *Platform) ConnectGamepad(id int, name string) {
	if id < 0 || id >= maxJoysticks {
		return
	}
	p.joysticks[id] = joystick{present: true, name: name}
	p.Push(Joystick{ID: id, Connected: true})
}

func (p *Platform) DisconnectGamepad(id int) {
	if id < 0 || id >= maxJoysticks {
		return
	}
	p.joysticks[id] = joystick{}
	p.Push(Joystick{ID: id, Connected: false})
}

// SetGamepadState sets what GamepadState reports for a present slot.
func (p *Platform) SetGamepadState(id int, state platform.GamepadState) {
	if id < 0 || id >= maxJoysticks {
		return
	}
	p.joysticks[id].state = state
}

func (p *Platform) JoystickPresent(id int) bool {
	return id >= 0 && id < maxJoysticks && p.joysticks[id].present
}

func (p *Platform) GamepadName(id int) string {
	if !p.JoystickPresent(id) {
		return ""
	}
	return p.joysticks[id].name
}

func (p *Platform) GamepadState(id int) (platform.GamepadState, bool) {
	if !p.JoystickPresent(id) {
		return platform.GamepadState{}, false
	}
	return p.joysticks[id].state, true
}

func (p *Platform) UpdateGamepadMappings(mappings string) bool {
	if strings.TrimSpace(mappings) == "" {
		return false
	}
	p.mappings = mappings
	return true
}

func (p *Platform) Mappings() string { return p.mappings }

// KeyName reports printable keys as their lowercase character.
func (p *Platform) KeyName(key int) string {
	if key > 32 && key <= 96 {
		return strings.ToLower(string(rune(key)))
	}
	return ""
}

// Spec is the WindowSpec of the last CreateWindow call.
func (p *Platform) Spec() platform.WindowSpec { return p.spec }
func (p *Platform) Created() bool             { return p.created }
func (p *Platform) Initialized() bool         { return p.initialized }
func (p *Platform) Terminated() bool          { return p.terminated }
func (p *Platform) SwapIntervalValue() int    { return p.swapInterval }
func (p *Platform) Swaps() int                { return p.swaps }
func (p *Platform) Polls() int                { return p.polls }
func (p *Platform) Waits() int                { return p.waits }

var _ platform.Platform = (*Platform)(nil)
