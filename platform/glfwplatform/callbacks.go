package glfwplatform

import (
	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func convertAction(a glfw.Action) platform.Action {
	switch a {
	case glfw.Press:
		return platform.Press
	case glfw.Repeat:
		return platform.Repeat
	}
	return platform.Release
}

// SetCallbacks wires GLFW's window and joystick callbacks to cb. Lock key
// modifiers are enabled so CapsLock/NumLock state arrives with key events.
func (p *Platform) SetCallbacks(cb platform.Callbacks) {
	p.cb = cb
	w := p.window
	if w == nil {
		return
	}
	w.SetInputMode(glfw.LockKeyMods, glfw.True)

	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if p.cb.Key != nil {
			p.cb.Key(translateKey(key), scancode, convertAction(action), platform.ModifierKey(mods))
		}
	})
	w.SetCharCallback(func(_ *glfw.Window, char rune) {
		if p.cb.Char != nil {
			p.cb.Char(char)
		}
	})
	w.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		b := translateMouseButton(button)
		if b < 0 || p.cb.MouseButton == nil {
			return
		}
		p.cb.MouseButton(b, convertAction(action), platform.ModifierKey(mods))
	})
	w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if p.cb.CursorPos != nil {
			p.cb.CursorPos(x, y)
		}
	})
	w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		if p.cb.Scroll != nil {
			p.cb.Scroll(xoff, yoff)
		}
	})
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if p.cb.CursorEnter != nil {
			p.cb.CursorEnter(entered)
		}
	})
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if p.cb.FramebufferSize != nil {
			p.cb.FramebufferSize(width, height)
		}
	})
	w.SetPosCallback(func(_ *glfw.Window, x, y int) {
		if p.cb.WindowPos != nil {
			p.cb.WindowPos(x, y)
		}
	})
	w.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		if p.cb.ContentScale != nil {
			p.cb.ContentScale(x, y)
		}
	})
	w.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if p.cb.Iconify != nil {
			p.cb.Iconify(iconified)
		}
	})
	w.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		if p.cb.Maximize != nil {
			p.cb.Maximize(maximized)
		}
	})
	w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if p.cb.Focus != nil {
			p.cb.Focus(focused)
		}
	})
	w.SetDropCallback(func(_ *glfw.Window, names []string) {
		if p.cb.Drop != nil {
			p.cb.Drop(names)
		}
	})
	glfw.SetJoystickCallback(func(joy glfw.Joystick, event glfw.PeripheralEvent) {
		if p.cb.Joystick != nil && int(joy) < maxJoysticks {
			p.cb.Joystick(int(joy), event == glfw.Connected)
		}
	})
}
