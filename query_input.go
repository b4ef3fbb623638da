package rcore

import (
	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/mathgl/mgl32"
)

// Keyboard

// IsKeyPressed reports a key that went down since the last frame boundary.
func (c *Core) IsKeyPressed(key Key) bool {
	if !key.valid() {
		return false
	}
	kb := &c.Input.Keyboard
	return kb.current[key] && !kb.previous[key]
}

func (c *Core) IsKeyPressedRepeat(key Key) bool {
	return key.valid() && c.Input.Keyboard.repeatInFrame[key]
}

func (c *Core) IsKeyDown(key Key) bool {
	return key.valid() && c.Input.Keyboard.current[key]
}

func (c *Core) IsKeyReleased(key Key) bool {
	if !key.valid() {
		return false
	}
	kb := &c.Input.Keyboard
	return !kb.current[key] && kb.previous[key]
}

func (c *Core) IsKeyUp(key Key) bool {
	return key.valid() && !c.Input.Keyboard.current[key]
}

// GetKeyPressed dequeues the oldest key press of this frame, KeyNull when
// the queue is empty.
func (c *Core) GetKeyPressed() Key { return c.Input.Keyboard.popKey() }

// GetCharPressed dequeues the oldest typed character, 0 when empty.
func (c *Core) GetCharPressed() rune { return c.Input.Keyboard.popChar() }

// SetExitKey sets the key that requests window close. KeyNull disables it.
func (c *Core) SetExitKey(key Key) { c.Input.Keyboard.ExitKey = key }

// GetKeyName is the layout-dependent printable name of key, if any.
func (c *Core) GetKeyName(key Key) string {
	if !key.valid() || c.backend == nil {
		return ""
	}
	return c.backend.KeyName(int(key))
}

// Mouse

// GetMousePosition is the cursor position with offset and scale applied.
func (c *Core) GetMousePosition() mgl32.Vec2 {
	m := &c.Input.Mouse
	return mgl32.Vec2{
		(m.CurrentPosition.X() + m.Offset.X()) * m.Scale.X(),
		(m.CurrentPosition.Y() + m.Offset.Y()) * m.Scale.Y(),
	}
}

func (c *Core) GetMouseX() int { return int(c.GetMousePosition().X()) }
func (c *Core) GetMouseY() int { return int(c.GetMousePosition().Y()) }

// GetMouseDelta is the raw cursor movement since the last frame boundary.
func (c *Core) GetMouseDelta() mgl32.Vec2 {
	m := &c.Input.Mouse
	return m.CurrentPosition.Sub(m.PreviousPosition)
}

// SetMousePosition warps the cursor. Previous is moved too so the warp does
// not register as a delta.
func (c *Core) SetMousePosition(x, y int) {
	m := &c.Input.Mouse
	m.CurrentPosition = mgl32.Vec2{float32(x), float32(y)}
	m.PreviousPosition = m.CurrentPosition
	if c.Window.Ready {
		c.backend.SetCursorPos(float64(x), float64(y))
	}
}

func (c *Core) SetMouseOffset(x, y int) {
	c.Input.Mouse.Offset = mgl32.Vec2{float32(x), float32(y)}
}

func (c *Core) SetMouseScale(x, y float32) {
	c.Input.Mouse.Scale = mgl32.Vec2{x, y}
}

// GetMouseWheelMove returns the dominant wheel axis.
func (c *Core) GetMouseWheelMove() float32 {
	w := c.Input.Mouse.CurrentWheelMove
	if abs32(w.X()) > abs32(w.Y()) {
		return w.X()
	}
	return w.Y()
}

func (c *Core) GetMouseWheelMoveV() mgl32.Vec2 { return c.Input.Mouse.CurrentWheelMove }

func (c *Core) IsMouseButtonPressed(b MouseButton) bool {
	if !b.valid() {
		return false
	}
	m := &c.Input.Mouse
	return (m.current[b] && !m.previous[b]) ||
		(c.Input.Touch.current[b] && !c.Input.Touch.previous[b])
}

func (c *Core) IsMouseButtonDown(b MouseButton) bool {
	if !b.valid() {
		return false
	}
	return c.Input.Mouse.current[b] || c.Input.Touch.current[b]
}

func (c *Core) IsMouseButtonReleased(b MouseButton) bool {
	if !b.valid() {
		return false
	}
	m := &c.Input.Mouse
	return (!m.current[b] && m.previous[b]) ||
		(!c.Input.Touch.current[b] && c.Input.Touch.previous[b])
}

func (c *Core) IsMouseButtonUp(b MouseButton) bool {
	if !b.valid() {
		return false
	}
	return !c.Input.Mouse.current[b] && !c.Input.Touch.current[b]
}

func (c *Core) SetMouseCursor(cursor MouseCursor) {
	if cursor < MouseCursorDefault || cursor > MouseCursorNotAllowed {
		c.log.Warnf("INPUT: Unknown mouse cursor %d", cursor)
		return
	}
	c.Input.Mouse.Cursor = cursor
	if c.Window.Ready {
		c.backend.SetStandardCursor(platform.StandardCursor(cursor))
	}
}

func (c *Core) ShowCursor() {
	c.setCursorMode(platform.CursorNormal)
	c.Input.Mouse.CursorHidden = false
}

func (c *Core) HideCursor() {
	c.setCursorMode(platform.CursorHidden)
	c.Input.Mouse.CursorHidden = true
}

// EnableCursor unlocks the cursor and parks it at the screen center.
func (c *Core) EnableCursor() {
	c.setCursorMode(platform.CursorNormal)
	c.SetMousePosition(c.Window.Screen.Width/2, c.Window.Screen.Height/2)
	c.Input.Mouse.CursorHidden = false
}

// DisableCursor hides and locks the cursor for relative motion.
func (c *Core) DisableCursor() {
	c.setCursorMode(platform.CursorDisabled)
	c.SetMousePosition(c.Window.Screen.Width/2, c.Window.Screen.Height/2)
	c.Input.Mouse.CursorHidden = true
}

func (c *Core) setCursorMode(mode platform.CursorMode) {
	if c.Window.Ready {
		c.backend.SetCursorMode(mode)
	}
}

func (c *Core) IsCursorHidden() bool   { return c.Input.Mouse.CursorHidden }
func (c *Core) IsCursorOnScreen() bool { return c.Input.Mouse.CursorOnScreen }

// Gamepad

func validGamepad(id int) bool { return id >= 0 && id < MaxGamepads }

func (c *Core) IsGamepadAvailable(id int) bool {
	return validGamepad(id) && c.Input.Gamepad.Ready[id]
}

func (c *Core) GetGamepadName(id int) string {
	if !c.IsGamepadAvailable(id) {
		return ""
	}
	return c.Input.Gamepad.Name[id]
}

func (c *Core) IsGamepadButtonPressed(id int, b GamepadButton) bool {
	if !validGamepad(id) || !b.valid() {
		return false
	}
	gp := &c.Input.Gamepad
	return gp.current[id][b] && !gp.previous[id][b]
}

func (c *Core) IsGamepadButtonDown(id int, b GamepadButton) bool {
	return validGamepad(id) && b.valid() && c.Input.Gamepad.current[id][b]
}

func (c *Core) IsGamepadButtonReleased(id int, b GamepadButton) bool {
	if !validGamepad(id) || !b.valid() {
		return false
	}
	gp := &c.Input.Gamepad
	return !gp.current[id][b] && gp.previous[id][b]
}

func (c *Core) IsGamepadButtonUp(id int, b GamepadButton) bool {
	return validGamepad(id) && b.valid() && !c.Input.Gamepad.current[id][b]
}

// GetGamepadButtonPressed is the last button seen down on any gamepad.
func (c *Core) GetGamepadButtonPressed() GamepadButton { return c.Input.Gamepad.LastButtonPressed }

func (c *Core) GetGamepadAxisCount(id int) int {
	if !validGamepad(id) {
		return 0
	}
	return c.Input.Gamepad.AxisCount[id]
}

func (c *Core) GetGamepadAxisMovement(id int, axis GamepadAxis) float32 {
	if !validGamepad(id) || axis < 0 || int(axis) >= MaxGamepadAxes {
		return 0
	}
	return c.Input.Gamepad.AxisState[id][axis]
}

// SetGamepadMappings loads SDL_GameControllerDB formatted mappings.
func (c *Core) SetGamepadMappings(mappings string) bool {
	if c.backend == nil {
		return false
	}
	ok := c.backend.UpdateGamepadMappings(mappings)
	if !ok {
		c.log.Warnf("INPUT: Failed to update gamepad mappings")
	}
	return ok
}

// Touch

func (c *Core) GetTouchX() int { return int(c.Input.Touch.Position[0].X()) }
func (c *Core) GetTouchY() int { return int(c.Input.Touch.Position[0].Y()) }

func (c *Core) GetTouchPosition(index int) mgl32.Vec2 {
	if index < 0 || index >= MaxTouchPoints {
		c.log.Warnf("INPUT: Required touch point out of range (Max touch points: %d)", MaxTouchPoints)
		return mgl32.Vec2{}
	}
	return c.Input.Touch.Position[index]
}

func (c *Core) GetTouchPointID(index int) int {
	if index < 0 || index >= MaxTouchPoints {
		return -1
	}
	return c.Input.Touch.PointID[index]
}

func (c *Core) GetTouchPointCount() int { return c.Input.Touch.PointCount }

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
