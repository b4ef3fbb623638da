package rcore

import "fmt"

// Key codes follow GLFW's numbering; KeyNull is the sentinel every unknown
// native code maps to.
type Key int

const (
	KeyNull Key = 0

	KeyApostrophe   Key = 39
	KeyComma        Key = 44
	KeyMinus        Key = 45
	KeyPeriod       Key = 46
	KeySlash        Key = 47
	KeyZero         Key = 48
	KeyOne          Key = 49
	KeyTwo          Key = 50
	KeyThree        Key = 51
	KeyFour         Key = 52
	KeyFive         Key = 53
	KeySix          Key = 54
	KeySeven        Key = 55
	KeyEight        Key = 56
	KeyNine         Key = 57
	KeySemicolon    Key = 59
	KeyEqual        Key = 61
	KeyA            Key = 65
	KeyB            Key = 66
	KeyC            Key = 67
	KeyD            Key = 68
	KeyE            Key = 69
	KeyF            Key = 70
	KeyG            Key = 71
	KeyH            Key = 72
	KeyI            Key = 73
	KeyJ            Key = 74
	KeyK            Key = 75
	KeyL            Key = 76
	KeyM            Key = 77
	KeyN            Key = 78
	KeyO            Key = 79
	KeyP            Key = 80
	KeyQ            Key = 81
	KeyR            Key = 82
	KeyS            Key = 83
	KeyT            Key = 84
	KeyU            Key = 85
	KeyV            Key = 86
	KeyW            Key = 87
	KeyX            Key = 88
	KeyY            Key = 89
	KeyZ            Key = 90
	KeyLeftBracket  Key = 91
	KeyBackslash    Key = 92
	KeyRightBracket Key = 93
	KeyGrave        Key = 96

	KeySpace        Key = 32
	KeyEscape       Key = 256
	KeyEnter        Key = 257
	KeyTab          Key = 258
	KeyBackspace    Key = 259
	KeyInsert       Key = 260
	KeyDelete       Key = 261
	KeyRight        Key = 262
	KeyLeft         Key = 263
	KeyDown         Key = 264
	KeyUp           Key = 265
	KeyPageUp       Key = 266
	KeyPageDown     Key = 267
	KeyHome         Key = 268
	KeyEnd          Key = 269
	KeyCapsLock     Key = 280
	KeyScrollLock   Key = 281
	KeyNumLock      Key = 282
	KeyPrintScreen  Key = 283
	KeyPause        Key = 284
	KeyF1           Key = 290
	KeyF2           Key = 291
	KeyF3           Key = 292
	KeyF4           Key = 293
	KeyF5           Key = 294
	KeyF6           Key = 295
	KeyF7           Key = 296
	KeyF8           Key = 297
	KeyF9           Key = 298
	KeyF10          Key = 299
	KeyF11          Key = 300
	KeyF12          Key = 301
	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyLeftSuper    Key = 343
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
	KeyRightSuper   Key = 347
	KeyMenu         Key = 348

	KeyKP0        Key = 320
	KeyKP1        Key = 321
	KeyKP2        Key = 322
	KeyKP3        Key = 323
	KeyKP4        Key = 324
	KeyKP5        Key = 325
	KeyKP6        Key = 326
	KeyKP7        Key = 327
	KeyKP8        Key = 328
	KeyKP9        Key = 329
	KeyKPDecimal  Key = 330
	KeyKPDivide   Key = 331
	KeyKPMultiply Key = 332
	KeyKPSubtract Key = 333
	KeyKPAdd      Key = 334
	KeyKPEnter    Key = 335
	KeyKPEqual    Key = 336
)

var keyNames [MaxKeyboardKeys]string

func init() {
	named := map[Key]string{
		KeySpace: "Space", KeyApostrophe: "'", KeyComma: ",", KeyMinus: "-", KeyPeriod: ".",
		KeySlash: "/", KeySemicolon: ";", KeyEqual: "=", KeyLeftBracket: "[", KeyBackslash: "\\",
		KeyRightBracket: "]", KeyGrave: "`",
		KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab", KeyBackspace: "Backspace",
		KeyInsert: "Insert", KeyDelete: "Delete", KeyRight: "Right", KeyLeft: "Left",
		KeyDown: "Down", KeyUp: "Up", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
		KeyHome: "Home", KeyEnd: "End", KeyCapsLock: "CapsLock", KeyScrollLock: "ScrollLock",
		KeyNumLock: "NumLock", KeyPrintScreen: "PrintScreen", KeyPause: "Pause",
		KeyLeftShift: "LeftShift", KeyLeftControl: "LeftControl", KeyLeftAlt: "LeftAlt",
		KeyLeftSuper: "LeftSuper", KeyRightShift: "RightShift", KeyRightControl: "RightControl",
		KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper", KeyMenu: "Menu",
		KeyKPDecimal: "KPDecimal", KeyKPDivide: "KPDivide", KeyKPMultiply: "KPMultiply",
		KeyKPSubtract: "KPSubtract", KeyKPAdd: "KPAdd", KeyKPEnter: "KPEnter", KeyKPEqual: "KPEqual",
	}
	for k, n := range named {
		keyNames[k] = n
	}
	for k := KeyZero; k <= KeyNine; k++ {
		keyNames[k] = string(rune(k))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune(k))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	for k := KeyKP0; k <= KeyKP9; k++ {
		keyNames[k] = fmt.Sprintf("KP%d", int(k-KeyKP0))
	}
}

func (k Key) valid() bool { return k > KeyNull && int(k) < MaxKeyboardKeys }

func (k Key) String() string {
	if k.valid() && keyNames[k] != "" {
		return keyNames[k]
	}
	if k == KeyNull {
		return "Null"
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey looks a key up by the name String returns.
func ParseKey(name string) (Key, bool) {
	for i, n := range keyNames {
		if n != "" && n == name {
			return Key(i), true
		}
	}
	return KeyNull, false
}

type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonSide
	MouseButtonExtra
	MouseButtonForward
	MouseButtonBack
	MouseButtonEighth
)

func (b MouseButton) valid() bool { return b >= 0 && int(b) < MaxMouseButtons }

type MouseCursor int

const (
	MouseCursorDefault MouseCursor = iota
	MouseCursorArrow
	MouseCursorIBeam
	MouseCursorCrosshair
	MouseCursorPointingHand
	MouseCursorResizeEW
	MouseCursorResizeNS
	MouseCursorResizeNWSE
	MouseCursorResizeNESW
	MouseCursorResizeAll
	MouseCursorNotAllowed
)

type GamepadButton int

const (
	GamepadButtonUnknown GamepadButton = iota
	GamepadButtonLeftFaceUp
	GamepadButtonLeftFaceRight
	GamepadButtonLeftFaceDown
	GamepadButtonLeftFaceLeft
	GamepadButtonRightFaceUp
	GamepadButtonRightFaceRight
	GamepadButtonRightFaceDown
	GamepadButtonRightFaceLeft
	GamepadButtonLeftTrigger1
	GamepadButtonLeftTrigger2
	GamepadButtonRightTrigger1
	GamepadButtonRightTrigger2
	GamepadButtonMiddleLeft
	GamepadButtonMiddle
	GamepadButtonMiddleRight
	GamepadButtonLeftThumb
	GamepadButtonRightThumb
)

func (b GamepadButton) valid() bool { return b > GamepadButtonUnknown && int(b) < MaxGamepadButtons }

type GamepadAxis int

const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger
)
