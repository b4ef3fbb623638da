package glfwplatform

import "github.com/go-gl/glfw/v3.3/glfw"

// Core key codes share GLFW's numbering, so the translation is the identity
// for every key GLFW knows; anything else maps to 0.
var glfwKeys = []glfw.Key{
	glfw.KeySpace, glfw.KeyApostrophe, glfw.KeyComma, glfw.KeyMinus, glfw.KeyPeriod, glfw.KeySlash,
	glfw.Key0, glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4, glfw.Key5, glfw.Key6, glfw.Key7, glfw.Key8, glfw.Key9,
	glfw.KeySemicolon, glfw.KeyEqual,
	glfw.KeyA, glfw.KeyB, glfw.KeyC, glfw.KeyD, glfw.KeyE, glfw.KeyF, glfw.KeyG, glfw.KeyH, glfw.KeyI,
	glfw.KeyJ, glfw.KeyK, glfw.KeyL, glfw.KeyM, glfw.KeyN, glfw.KeyO, glfw.KeyP, glfw.KeyQ, glfw.KeyR,
	glfw.KeyS, glfw.KeyT, glfw.KeyU, glfw.KeyV, glfw.KeyW, glfw.KeyX, glfw.KeyY, glfw.KeyZ,
	glfw.KeyLeftBracket, glfw.KeyBackslash, glfw.KeyRightBracket, glfw.KeyGraveAccent,
	glfw.KeyWorld1, glfw.KeyWorld2,
	glfw.KeyEscape, glfw.KeyEnter, glfw.KeyTab, glfw.KeyBackspace, glfw.KeyInsert, glfw.KeyDelete,
	glfw.KeyRight, glfw.KeyLeft, glfw.KeyDown, glfw.KeyUp, glfw.KeyPageUp, glfw.KeyPageDown,
	glfw.KeyHome, glfw.KeyEnd, glfw.KeyCapsLock, glfw.KeyScrollLock, glfw.KeyNumLock,
	glfw.KeyPrintScreen, glfw.KeyPause,
	glfw.KeyF1, glfw.KeyF2, glfw.KeyF3, glfw.KeyF4, glfw.KeyF5, glfw.KeyF6, glfw.KeyF7, glfw.KeyF8,
	glfw.KeyF9, glfw.KeyF10, glfw.KeyF11, glfw.KeyF12, glfw.KeyF13, glfw.KeyF14, glfw.KeyF15,
	glfw.KeyF16, glfw.KeyF17, glfw.KeyF18, glfw.KeyF19, glfw.KeyF20, glfw.KeyF21, glfw.KeyF22,
	glfw.KeyF23, glfw.KeyF24, glfw.KeyF25,
	glfw.KeyKP0, glfw.KeyKP1, glfw.KeyKP2, glfw.KeyKP3, glfw.KeyKP4, glfw.KeyKP5, glfw.KeyKP6,
	glfw.KeyKP7, glfw.KeyKP8, glfw.KeyKP9, glfw.KeyKPDecimal, glfw.KeyKPDivide, glfw.KeyKPMultiply,
	glfw.KeyKPSubtract, glfw.KeyKPAdd, glfw.KeyKPEnter, glfw.KeyKPEqual,
	glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper,
	glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper, glfw.KeyMenu,
}

var (
	keyFromGlfw [glfw.KeyLast + 1]int
	keyToGlfw   = make(map[int]glfw.Key, len(glfwKeys))
)

// Core gamepad button codes.
const (
	padUnknown = iota
	padLeftFaceUp
	padLeftFaceRight
	padLeftFaceDown
	padLeftFaceLeft
	padRightFaceUp
	padRightFaceRight
	padRightFaceDown
	padRightFaceLeft
	padLeftTrigger1
	padLeftTrigger2
	padRightTrigger1
	padRightTrigger2
	padMiddleLeft
	padMiddle
	padMiddleRight
	padLeftThumb
	padRightThumb
)

var gamepadButtonFromGlfw = [glfw.ButtonLast + 1]int{
	glfw.ButtonA:           padRightFaceDown,
	glfw.ButtonB:           padRightFaceRight,
	glfw.ButtonX:           padRightFaceLeft,
	glfw.ButtonY:           padRightFaceUp,
	glfw.ButtonLeftBumper:  padLeftTrigger1,
	glfw.ButtonRightBumper: padRightTrigger1,
	glfw.ButtonBack:        padMiddleLeft,
	glfw.ButtonStart:       padMiddleRight,
	glfw.ButtonGuide:       padMiddle,
	glfw.ButtonLeftThumb:   padLeftThumb,
	glfw.ButtonRightThumb:  padRightThumb,
	glfw.ButtonDpadUp:      padLeftFaceUp,
	glfw.ButtonDpadRight:   padLeftFaceRight,
	glfw.ButtonDpadDown:    padLeftFaceDown,
	glfw.ButtonDpadLeft:    padLeftFaceLeft,
}

func init() {
	for _, k := range glfwKeys {
		keyFromGlfw[k] = int(k)
		keyToGlfw[int(k)] = k
	}
}

func translateKey(k glfw.Key) int {
	if k < 0 || int(k) >= len(keyFromGlfw) {
		return 0
	}
	return keyFromGlfw[k]
}

// Mouse buttons 1..8 are 0..7 in both code spaces.
func translateMouseButton(b glfw.MouseButton) int {
	if b < glfw.MouseButton1 || b > glfw.MouseButtonLast {
		return -1
	}
	return int(b)
}
