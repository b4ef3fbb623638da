package rcore

import (
	"fmt"
	"math/bits"
	"strings"
)

// ConfigFlags holds window-creation and runtime options as one bitset.
type ConfigFlags uint32

const (
	FlagFullscreenMode         ConfigFlags = 0x00000002
	FlagWindowResizable        ConfigFlags = 0x00000004
	FlagWindowUndecorated      ConfigFlags = 0x00000008
	FlagWindowTransparent      ConfigFlags = 0x00000010
	FlagMSAA4xHint             ConfigFlags = 0x00000020
	FlagVSyncHint              ConfigFlags = 0x00000040
	FlagWindowHidden           ConfigFlags = 0x00000080
	FlagWindowAlwaysRun        ConfigFlags = 0x00000100
	FlagWindowMinimized        ConfigFlags = 0x00000200
	FlagWindowMaximized        ConfigFlags = 0x00000400
	FlagWindowUnfocused        ConfigFlags = 0x00000800
	FlagWindowTopmost          ConfigFlags = 0x00001000
	FlagWindowHighDPI          ConfigFlags = 0x00002000
	FlagWindowMousePassthrough ConfigFlags = 0x00004000
	FlagBorderlessWindowedMode ConfigFlags = 0x00008000
	FlagInterlacedHint         ConfigFlags = 0x00010000
)

var flagNames = []struct {
	flag ConfigFlags
	name string
}{
	{FlagFullscreenMode, "fullscreen"},
	{FlagWindowResizable, "resizable"},
	{FlagWindowUndecorated, "undecorated"},
	{FlagWindowTransparent, "transparent"},
	{FlagMSAA4xHint, "msaa4x"},
	{FlagVSyncHint, "vsync"},
	{FlagWindowHidden, "hidden"},
	{FlagWindowAlwaysRun, "always-run"},
	{FlagWindowMinimized, "minimized"},
	{FlagWindowMaximized, "maximized"},
	{FlagWindowUnfocused, "unfocused"},
	{FlagWindowTopmost, "topmost"},
	{FlagWindowHighDPI, "highdpi"},
	{FlagWindowMousePassthrough, "mouse-passthrough"},
	{FlagBorderlessWindowedMode, "borderless"},
	{FlagInterlacedHint, "interlaced"},
}

// Has reports whether every bit of mask is set.
func (f ConfigFlags) Has(mask ConfigFlags) bool { return mask != 0 && f&mask == mask }

func (f *ConfigFlags) Set(mask ConfigFlags)   { *f |= mask }
func (f *ConfigFlags) Clear(mask ConfigFlags) { *f &^= mask }

// Toggle sets mask when on is true and clears it otherwise.
func (f *ConfigFlags) Toggle(mask ConfigFlags, on bool) {
	if on {
		f.Set(mask)
	} else {
		f.Clear(mask)
	}
}

func (f ConfigFlags) Count() int { return bits.OnesCount32(uint32(f)) }

func (f ConfigFlags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseConfigFlags maps flag names, as written in config files, onto bits.
func ParseConfigFlags(names []string) (ConfigFlags, error) {
	var out ConfigFlags
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		found := false
		for _, fn := range flagNames {
			if fn.name == n {
				out |= fn.flag
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown config flag %q", n)
		}
	}
	return out, nil
}

// GLVersion selects the graphics context requested at window creation.
type GLVersion int

const (
	GL33 GLVersion = iota
	GL11
	GL21
	GL43
	GLES20
	GLES30
)

var glVersionNames = map[GLVersion]string{
	GL11:   "gl1.1",
	GL21:   "gl2.1",
	GL33:   "gl3.3",
	GL43:   "gl4.3",
	GLES20: "gles2",
	GLES30: "gles3",
}

func (v GLVersion) String() string {
	if s, ok := glVersionNames[v]; ok {
		return s
	}
	return fmt.Sprintf("GLVersion(%d)", int(v))
}

func ParseGLVersion(s string) (GLVersion, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return GL33, nil
	}
	for v, name := range glVersionNames {
		if name == s {
			return v, nil
		}
	}
	return GL33, fmt.Errorf("unknown gl version %q", s)
}
