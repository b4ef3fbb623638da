package platform

type VideoMode struct {
	Width, Height int
	RefreshRate   int
	RedBits       int
	GreenBits     int
	BlueBits      int
}

type Monitor struct {
	Name string
	// X, Y is the position of the monitor on the virtual desktop.
	X, Y int
	Mode VideoMode
	// Modes is sorted ascending by resolution, as backends report it.
	Modes          []VideoMode
	PhysicalWidth  int // millimetres
	PhysicalHeight int
	ContentScaleX  float32
	ContentScaleY  float32
}

type ClientAPI int

const (
	OpenGLAPI ClientAPI = iota
	OpenGLESAPI
)

type Profile int

const (
	AnyProfile Profile = iota
	CoreProfile
	CompatProfile
)

type ContextCreationAPI int

const (
	NativeContextAPI ContextCreationAPI = iota
	EGLContextAPI
)

// Hints are the window-creation options derived from the core's flags.
type Hints struct {
	Visible           bool
	Decorated         bool
	Resizable         bool
	Focused           bool
	Floating          bool
	Transparent       bool
	ScaleToMonitor    bool
	RetinaFramebuffer bool
	MousePassthrough  bool
	AutoIconify       bool
	Samples           int

	API             ClientAPI
	ContextCreation ContextCreationAPI
	ContextMajor    int
	ContextMinor    int
	Profile         Profile
	ForwardCompat   bool
	DebugContext    bool
}

type WindowSpec struct {
	Width, Height int
	Title         string
	// Monitor is the index of the fullscreen target; negative for windowed.
	Monitor     int
	RefreshRate int
	Hints       Hints
}

// Attrib is a window attribute changeable after creation.
type Attrib int

const (
	AttribDecorated Attrib = iota
	AttribResizable
	AttribFloating
	AttribAutoIconify
	AttribFocusOnShow
	AttribMousePassthrough
)

type CursorMode int

const (
	CursorNormal CursorMode = iota
	CursorHidden
	CursorDisabled
)

type StandardCursor int

const (
	CursorShapeDefault StandardCursor = iota
	CursorShapeArrow
	CursorShapeIBeam
	CursorShapeCrosshair
	CursorShapeHand
	CursorShapeResizeEW
	CursorShapeResizeNS
	CursorShapeResizeNWSE
	CursorShapeResizeNESW
	CursorShapeResizeAll
	CursorShapeNotAllowed
)

type Action int

const (
	Release Action = iota
	Press
	Repeat
)

type ModifierKey int

const (
	ModShift    ModifierKey = 0x0001
	ModControl  ModifierKey = 0x0002
	ModAlt      ModifierKey = 0x0004
	ModSuper    ModifierKey = 0x0008
	ModCapsLock ModifierKey = 0x0010
	ModNumLock  ModifierKey = 0x0020
)

const (
	MaxGamepadButtons = 32
	MaxGamepadAxes    = 8
)

// GamepadState is one sampled controller snapshot, buttons indexed by the
// core's gamepad button codes.
type GamepadState struct {
	Buttons   [MaxGamepadButtons]bool
	Axes      [MaxGamepadAxes]float32
	AxisCount int
}

// Callbacks holds the event handlers the core installs. Nil fields are
// skipped by backends.
type Callbacks struct {
	Key             func(key, scancode int, action Action, mods ModifierKey)
	Char            func(char rune)
	MouseButton     func(button int, action Action, mods ModifierKey)
	CursorPos       func(x, y float64)
	Scroll          func(xoff, yoff float64)
	CursorEnter     func(entered bool)
	FramebufferSize func(width, height int)
	WindowPos       func(x, y int)
	ContentScale    func(x, y float32)
	Iconify         func(iconified bool)
	Maximize        func(maximized bool)
	Focus           func(focused bool)
	Drop            func(paths []string)
	Joystick        func(id int, connected bool)
}
