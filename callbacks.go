package rcore

import (
	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/mathgl/mgl32"
)

// registerCallbacks installs the dispatcher into the backend once per window.
func (c *Core) registerCallbacks() {
	if c.callbacksRegistered {
		c.log.Warnf("PLATFORM: Callbacks already registered")
		return
	}
	c.backend.SetCallbacks(platform.Callbacks{
		Key:             c.keyCallback,
		Char:            c.charCallback,
		MouseButton:     c.mouseButtonCallback,
		CursorPos:       c.cursorPosCallback,
		Scroll:          c.scrollCallback,
		CursorEnter:     c.cursorEnterCallback,
		FramebufferSize: c.framebufferSizeCallback,
		WindowPos:       c.windowPosCallback,
		ContentScale:    c.contentScaleCallback,
		Iconify:         c.iconifyCallback,
		Maximize:        c.maximizeCallback,
		Focus:           c.focusCallback,
		Drop:            c.dropCallback,
		Joystick:        c.joystickCallback,
	})
	c.callbacksRegistered = true
}

// keyCallback records press/release level state, the separate repeat flag,
// lock-key state and the press queue. Pressing the exit key requests close.
func (c *Core) keyCallback(code, scancode int, action platform.Action, mods platform.ModifierKey) {
	key := Key(code)
	if !key.valid() {
		return
	}
	kb := &c.Input.Keyboard

	switch action {
	case platform.Release:
		kb.current[key] = false
	case platform.Press:
		kb.current[key] = true
	case platform.Repeat:
		kb.repeatInFrame[key] = true
	}

	if (key == KeyCapsLock && mods&platform.ModCapsLock != 0) ||
		(key == KeyNumLock && mods&platform.ModNumLock != 0) {
		kb.current[key] = true
	}

	if action == platform.Press {
		kb.pushKey(key)
		if key == kb.ExitKey {
			c.Window.ShouldClose = true
			c.backend.SetShouldClose(true)
		}
	}
}

func (c *Core) charCallback(char rune) {
	c.Input.Keyboard.pushChar(char)
}

func (c *Core) mouseButtonCallback(button int, action platform.Action, mods platform.ModifierKey) {
	b := MouseButton(button)
	if !b.valid() {
		return
	}
	down := action == platform.Press
	c.Input.Mouse.current[b] = down

	t := &c.Input.Touch
	t.current[b] = down
	if b == MouseButtonLeft {
		if down {
			t.PointCount = 1
		} else {
			t.PointCount = 0
		}
	}
}

// cursorPosCallback only moves the current position; previous shifts at the
// frame boundary.
func (c *Core) cursorPosCallback(x, y float64) {
	pos := mgl32.Vec2{float32(x), float32(y)}
	c.Input.Mouse.CurrentPosition = pos
	c.Input.Touch.Position[0] = pos
}

func (c *Core) scrollCallback(xoff, yoff float64) {
	c.Input.Mouse.CurrentWheelMove = mgl32.Vec2{float32(xoff), float32(yoff)}
}

func (c *Core) cursorEnterCallback(entered bool) {
	c.Input.Mouse.CursorOnScreen = entered
}

// framebufferSizeCallback keeps currentFbo at the reported size and, when
// windowed, derives the logical screen size using the real DPI scale.
func (c *Core) framebufferSizeCallback(width, height int) {
	w := &c.Window
	w.CurrentFbo = Size{Width: width, Height: height}
	w.ResizedLastFrame = true

	if w.Fullscreen {
		return
	}

	if w.Flags.Has(FlagWindowHighDPI) && !c.backend.ManagesScaling() {
		sx, sy := c.backend.ContentScale()
		if sx <= 0 || sy <= 0 {
			sx, sy = 1, 1
		}
		w.Screen = Size{Width: int(float32(width) / sx), Height: int(float32(height) / sy)}
		w.Render = Size{Width: width, Height: height}
		return
	}
	w.Screen = Size{Width: width, Height: height}
	w.Render = w.Screen
}

func (c *Core) windowPosCallback(x, y int) {
	c.Window.Position = Point{X: x, Y: y}
}

func (c *Core) contentScaleCallback(x, y float32) {
	c.Window.ScreenScale = scaleMatrix(x, y)
}

func (c *Core) iconifyCallback(iconified bool) {
	c.Window.Flags.Toggle(FlagWindowMinimized, iconified)
}

func (c *Core) maximizeCallback(maximized bool) {
	c.Window.Flags.Toggle(FlagWindowMaximized, maximized)
}

func (c *Core) focusCallback(focused bool) {
	c.Window.Flags.Toggle(FlagWindowUnfocused, !focused)
}

func (c *Core) dropCallback(paths []string) {
	if len(paths) == 0 {
		return
	}
	c.Window.setDroppedFiles(paths)
}

// joystickCallback keeps Ready and Name in step; Ready is the source of
// truth for presence.
func (c *Core) joystickCallback(id int, connected bool) {
	if id < 0 || id >= MaxGamepads {
		return
	}
	gp := &c.Input.Gamepad
	if connected {
		gp.Ready[id] = true
		gp.Name[id] = truncateUTF8(c.backend.GamepadName(id), MaxGamepadNameLength)
		c.log.Infof("INPUT: Gamepad %d connected: %s", id, gp.Name[id])
		return
	}
	gp.Ready[id] = false
	gp.Name[id] = ""
	gp.AxisCount[id] = 0
	gp.current[id] = [MaxGamepadButtons]bool{}
	gp.AxisState[id] = [MaxGamepadAxes]float32{}
	c.log.Infof("INPUT: Gamepad %d disconnected", id)
}
