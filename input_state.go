package rcore

import (
	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	MaxKeyboardKeys      = 512
	MaxMouseButtons      = 8
	MaxGamepads          = 4
	MaxGamepadAxes       = platform.MaxGamepadAxes
	MaxGamepadButtons    = platform.MaxGamepadButtons
	MaxGamepadNameLength = 64
	MaxTouchPoints       = 8
	MaxKeyPressedQueue   = 16
	MaxCharPressedQueue  = 16

	// Trigger axes beyond this count as the digital trigger-2 buttons.
	triggerButtonThreshold = 0.1
)

// Keyboard is the per-frame key snapshot. The press and char queues are
// bounded: events beyond capacity are dropped, never buffered, since they
// are transient input the consumer did not drain within the frame.
type Keyboard struct {
	ExitKey Key

	current       [MaxKeyboardKeys]bool
	previous      [MaxKeyboardKeys]bool
	repeatInFrame [MaxKeyboardKeys]bool

	keyQueue       [MaxKeyPressedQueue]Key
	keyQueueCount  int
	charQueue      [MaxCharPressedQueue]rune
	charQueueCount int
}

func (k *Keyboard) pushKey(key Key) bool {
	if k.keyQueueCount >= MaxKeyPressedQueue {
		return false
	}
	k.keyQueue[k.keyQueueCount] = key
	k.keyQueueCount++
	return true
}

func (k *Keyboard) pushChar(r rune) bool {
	if k.charQueueCount >= MaxCharPressedQueue {
		return false
	}
	k.charQueue[k.charQueueCount] = r
	k.charQueueCount++
	return true
}

func (k *Keyboard) popKey() Key {
	if k.keyQueueCount == 0 {
		return KeyNull
	}
	key := k.keyQueue[0]
	copy(k.keyQueue[:], k.keyQueue[1:k.keyQueueCount])
	k.keyQueueCount--
	k.keyQueue[k.keyQueueCount] = KeyNull
	return key
}

func (k *Keyboard) popChar() rune {
	if k.charQueueCount == 0 {
		return 0
	}
	r := k.charQueue[0]
	copy(k.charQueue[:], k.charQueue[1:k.charQueueCount])
	k.charQueueCount--
	k.charQueue[k.charQueueCount] = 0
	return r
}

// KeyQueueLen is the number of undrained key presses this frame.
func (k *Keyboard) KeyQueueLen() int  { return k.keyQueueCount }
func (k *Keyboard) CharQueueLen() int { return k.charQueueCount }

type Mouse struct {
	Offset           mgl32.Vec2
	Scale            mgl32.Vec2
	CurrentPosition  mgl32.Vec2
	PreviousPosition mgl32.Vec2

	Cursor         MouseCursor
	CursorHidden   bool
	CursorOnScreen bool

	current  [MaxMouseButtons]bool
	previous [MaxMouseButtons]bool

	CurrentWheelMove  mgl32.Vec2
	PreviousWheelMove mgl32.Vec2
}

// Gamepad slots. Ready is authoritative for presence; Name is cached for
// display and cleared together with Ready on disconnect.
type Gamepad struct {
	Ready             [MaxGamepads]bool
	Name              [MaxGamepads]string
	AxisCount         [MaxGamepads]int
	LastButtonPressed GamepadButton

	current   [MaxGamepads][MaxGamepadButtons]bool
	previous  [MaxGamepads][MaxGamepadButtons]bool
	AxisState [MaxGamepads][MaxGamepadAxes]float32
}

// Touch mirrors the mouse into point 0 on desktop backends.
type Touch struct {
	PointCount int
	PointID    [MaxTouchPoints]int
	Position   [MaxTouchPoints]mgl32.Vec2

	current  [MaxTouchPoints]bool
	previous [MaxTouchPoints]bool
}

type InputState struct {
	Keyboard Keyboard
	Mouse    Mouse
	Gamepad  Gamepad
	Touch    Touch
}

func newInputState() InputState {
	in := InputState{}
	in.Keyboard.ExitKey = KeyEscape
	in.Mouse.Scale = mgl32.Vec2{1, 1}
	in.Mouse.CursorOnScreen = true
	return in
}

// rotate copies current state to previous and clears frame-scoped data.
func (in *InputState) rotate() {
	kb := &in.Keyboard
	kb.previous = kb.current
	kb.repeatInFrame = [MaxKeyboardKeys]bool{}
	kb.keyQueueCount = 0
	kb.charQueueCount = 0

	m := &in.Mouse
	m.previous = m.current
	m.PreviousPosition = m.CurrentPosition
	m.PreviousWheelMove = m.CurrentWheelMove
	m.CurrentWheelMove = mgl32.Vec2{}

	in.Gamepad.previous = in.Gamepad.current

	in.Touch.previous = in.Touch.current
}
