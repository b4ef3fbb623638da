package headless

import "github.com/gekko3d/rcore/platform"

// Event is one queued OS event, delivered to the registered callbacks
// during PollEvents in the order it was pushed.
type Event interface {
	dispatch(cb *platform.Callbacks)
}

type Key struct {
	Key      int
	Scancode int
	Action   platform.Action
	Mods     platform.ModifierKey
}

func (e Key) dispatch(cb *platform.Callbacks) {
	if cb.Key != nil {
		cb.Key(e.Key, e.Scancode, e.Action, e.Mods)
	}
}

type Char struct {
	Char rune
}

func (e Char) dispatch(cb *platform.Callbacks) {
	if cb.Char != nil {
		cb.Char(e.Char)
	}
}

type MouseButton struct {
	Button int
	Action platform.Action
	Mods   platform.ModifierKey
}

func (e MouseButton) dispatch(cb *platform.Callbacks) {
	if cb.MouseButton != nil {
		cb.MouseButton(e.Button, e.Action, e.Mods)
	}
}

type CursorPos struct {
	X, Y float64
}

func (e CursorPos) dispatch(cb *platform.Callbacks) {
	if cb.CursorPos != nil {
		cb.CursorPos(e.X, e.Y)
	}
}

type Scroll struct {
	X, Y float64
}

func (e Scroll) dispatch(cb *platform.Callbacks) {
	if cb.Scroll != nil {
		cb.Scroll(e.X, e.Y)
	}
}

type CursorEnter struct {
	Entered bool
}

func (e CursorEnter) dispatch(cb *platform.Callbacks) {
	if cb.CursorEnter != nil {
		cb.CursorEnter(e.Entered)
	}
}

type FramebufferSize struct {
	Width, Height int
}

func (e FramebufferSize) dispatch(cb *platform.Callbacks) {
	if cb.FramebufferSize != nil {
		cb.FramebufferSize(e.Width, e.Height)
	}
}

type WindowPos struct {
	X, Y int
}

func (e WindowPos) dispatch(cb *platform.Callbacks) {
	if cb.WindowPos != nil {
		cb.WindowPos(e.X, e.Y)
	}
}

type ContentScale struct {
	X, Y float32
}

func (e ContentScale) dispatch(cb *platform.Callbacks) {
	if cb.ContentScale != nil {
		cb.ContentScale(e.X, e.Y)
	}
}

type Iconify struct {
	Iconified bool
}

func (e Iconify) dispatch(cb *platform.Callbacks) {
	if cb.Iconify != nil {
		cb.Iconify(e.Iconified)
	}
}

type Maximize struct {
	Maximized bool
}

func (e Maximize) dispatch(cb *platform.Callbacks) {
	if cb.Maximize != nil {
		cb.Maximize(e.Maximized)
	}
}

type Focus struct {
	Focused bool
}

func (e Focus) dispatch(cb *platform.Callbacks) {
	if cb.Focus != nil {
		cb.Focus(e.Focused)
	}
}

type Drop struct {
	Paths []string
}

func (e Drop) dispatch(cb *platform.Callbacks) {
	if cb.Drop != nil {
		cb.Drop(e.Paths)
	}
}

type Joystick struct {
	ID        int
	Connected bool
}

func (e Joystick) dispatch(cb *platform.Callbacks) {
	if cb.Joystick != nil {
		cb.Joystick(e.ID, e.Connected)
	}
}
