// Package platform is the thin capability set the core needs from a native
// windowing backend. Every native call lives behind Platform; the core never
// touches a backend library directly.
package platform

import "errors"

// Variant names a backend implementation.
type Variant int

const (
	VariantHeadless Variant = iota
	VariantDesktopGLFW
)

func (v Variant) String() string {
	switch v {
	case VariantDesktopGLFW:
		return "desktop-glfw"
	case VariantHeadless:
		return "headless"
	}
	return "unknown"
}

// DontCare leaves a size limit or refresh rate to the backend.
const DontCare = -1

// ErrNoMonitor is returned by monitor queries when nothing is connected.
var ErrNoMonitor = errors.New("no monitor available")

// Platform is implemented once per target backend.
//
// Key, mouse button and gamepad codes crossing this interface are in the
// core's code space; backends translate their native codes with a lookup
// table and report unknown codes as 0.
type Platform interface {
	Variant() Variant

	// Init creates the native windowing context.
	Init() error
	// Terminate releases everything Init and CreateWindow acquired.
	Terminate()

	PrimaryMonitor() (Monitor, error)
	Monitors() ([]Monitor, error)

	CreateWindow(spec WindowSpec) error
	DestroyWindow()
	// MakeContextCurrent activates the GL/GLES context of the window.
	MakeContextCurrent() error
	SwapInterval(interval int)
	SwapBuffers()
	// ManagesScaling reports whether the OS scales the framebuffer and
	// input coordinates for HighDPI on its own.
	ManagesScaling() bool

	// SetCallbacks registers the event handlers. Backends call them only from
	// inside PollEvents or WaitEvents.
	SetCallbacks(cb Callbacks)
	PollEvents()
	WaitEvents()

	ShouldClose() bool
	SetShouldClose(close bool)

	FramebufferSize() (width, height int)
	WindowSize() (width, height int)
	SetWindowSize(width, height int)
	SetSizeLimits(minWidth, minHeight, maxWidth, maxHeight int)
	WindowPos() (x, y int)
	SetWindowPos(x, y int)
	ContentScale() (x, y float32)
	// SetWindowMonitor moves the window to fullscreen on monitor, or back
	// to windowed mode when monitor is negative.
	SetWindowMonitor(monitor, x, y, width, height, refreshRate int)
	SetWindowAttrib(attr Attrib, enabled bool)
	Iconify()
	Maximize()
	Restore()
	Show()
	Hide()
	Focus()
	SetOpacity(opacity float32)
	SetTitle(title string)

	SetCursorMode(mode CursorMode)
	SetCursorPos(x, y float64)
	SetStandardCursor(shape StandardCursor)

	ClipboardText() string
	SetClipboardText(text string)

	JoystickPresent(id int) bool
	GamepadName(id int) string
	GamepadState(id int) (GamepadState, bool)
	UpdateGamepadMappings(mappings string) bool

	KeyName(key int) string
}
