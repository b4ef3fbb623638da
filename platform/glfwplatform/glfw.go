// Package glfwplatform implements platform.Platform on GLFW 3.3.
//
// GLFW must be driven from the main OS thread; callers lock it with
// runtime.LockOSThread before Init.
package glfwplatform

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const maxJoysticks = 4

var errNoWindow = errors.New("glfw: no window")

type Platform struct {
	window  *glfw.Window
	cursors map[platform.StandardCursor]*glfw.Cursor
	cb      platform.Callbacks
}

func New() *Platform {
	return &Platform{cursors: make(map[platform.StandardCursor]*glfw.Cursor)}
}

func (p *Platform) Variant() platform.Variant { return platform.VariantDesktopGLFW }

func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw: init: %w", err)
	}
	return nil
}

func (p *Platform) Terminate() {
	p.DestroyWindow()
	for shape, c := range p.cursors {
		c.Destroy()
		delete(p.cursors, shape)
	}
	glfw.Terminate()
}

// recovered converts a panic raised by go-gl for a GLFW error into err.
func recovered(op string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("glfw: %s: %v", op, r)
	}
}

func convertMode(m *glfw.VidMode) platform.VideoMode {
	if m == nil {
		return platform.VideoMode{}
	}
	return platform.VideoMode{
		Width:       m.Width,
		Height:      m.Height,
		RefreshRate: m.RefreshRate,
		RedBits:     m.RedBits,
		GreenBits:   m.GreenBits,
		BlueBits:    m.BlueBits,
	}
}

func convertMonitor(m *glfw.Monitor) platform.Monitor {
	x, y := m.GetPos()
	pw, ph := m.GetPhysicalSize()
	sx, sy := m.GetContentScale()
	out := platform.Monitor{
		Name:           m.GetName(),
		X:              x,
		Y:              y,
		Mode:           convertMode(m.GetVideoMode()),
		PhysicalWidth:  pw,
		PhysicalHeight: ph,
		ContentScaleX:  sx,
		ContentScaleY:  sy,
	}
	for _, vm := range m.GetVideoModes() {
		out.Modes = append(out.Modes, convertMode(vm))
	}
	return out
}

func (p *Platform) PrimaryMonitor() (mon platform.Monitor, err error) {
	defer recovered("primary monitor", &err)
	m := glfw.GetPrimaryMonitor()
	if m == nil {
		return platform.Monitor{}, platform.ErrNoMonitor
	}
	return convertMonitor(m), nil
}

func (p *Platform) Monitors() (mons []platform.Monitor, err error) {
	defer recovered("monitors", &err)
	for _, m := range glfw.GetMonitors() {
		mons = append(mons, convertMonitor(m))
	}
	if len(mons) == 0 {
		return nil, platform.ErrNoMonitor
	}
	return mons, nil
}

func boolHint(h glfw.Hint, v bool) {
	if v {
		glfw.WindowHint(h, glfw.True)
	} else {
		glfw.WindowHint(h, glfw.False)
	}
}

func applyHints(h platform.Hints) {
	glfw.DefaultWindowHints()
	boolHint(glfw.Visible, h.Visible)
	boolHint(glfw.Decorated, h.Decorated)
	boolHint(glfw.Resizable, h.Resizable)
	boolHint(glfw.Focused, h.Focused)
	boolHint(glfw.Floating, h.Floating)
	boolHint(glfw.TransparentFramebuffer, h.Transparent)
	boolHint(glfw.ScaleToMonitor, h.ScaleToMonitor)
	boolHint(glfw.AutoIconify, h.AutoIconify)
	if runtime.GOOS == "darwin" {
		boolHint(glfw.CocoaRetinaFramebuffer, h.RetinaFramebuffer)
	}
	if h.Samples > 0 {
		glfw.WindowHint(glfw.Samples, h.Samples)
	}

	if h.API == platform.OpenGLESAPI {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	} else {
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	}
	if h.ContextCreation == platform.EGLContextAPI {
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	} else {
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.NativeContextAPI)
	}
	if h.ContextMajor > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, h.ContextMajor)
		glfw.WindowHint(glfw.ContextVersionMinor, h.ContextMinor)
	}
	switch h.Profile {
	case platform.CoreProfile:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	case platform.CompatProfile:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	if h.API == platform.OpenGLAPI {
		boolHint(glfw.OpenGLForwardCompatible, h.ForwardCompat)
		boolHint(glfw.OpenGLDebugContext, h.DebugContext)
	}
}

func (p *Platform) monitorAt(index int) *glfw.Monitor {
	if index < 0 {
		return nil
	}
	mons := glfw.GetMonitors()
	if index >= len(mons) {
		return nil
	}
	return mons[index]
}

func (p *Platform) CreateWindow(spec platform.WindowSpec) (err error) {
	defer recovered("create window", &err)
	applyHints(spec.Hints)
	if spec.RefreshRate > 0 {
		glfw.WindowHint(glfw.RefreshRate, spec.RefreshRate)
	}
	title := spec.Title
	if title == "" {
		title = " "
	}
	win, err := glfw.CreateWindow(spec.Width, spec.Height, title, p.monitorAt(spec.Monitor), nil)
	if err != nil {
		return fmt.Errorf("glfw: create window: %w", err)
	}
	p.window = win
	return nil
}

func (p *Platform) DestroyWindow() {
	if p.window == nil {
		return
	}
	glfw.SetJoystickCallback(nil)
	p.window.Destroy()
	p.window = nil
}

func (p *Platform) MakeContextCurrent() (err error) {
	if p.window == nil {
		return errNoWindow
	}
	defer recovered("make context current", &err)
	p.window.MakeContextCurrent()
	return nil
}

func (p *Platform) SwapInterval(interval int) { glfw.SwapInterval(interval) }

func (p *Platform) SwapBuffers() {
	if p.window != nil {
		p.window.SwapBuffers()
	}
}

// ManagesScaling is true on macOS, where Cocoa scales the framebuffer and
// reports cursor positions in window units.
func (p *Platform) ManagesScaling() bool { return runtime.GOOS == "darwin" }

func (p *Platform) PollEvents() { glfw.PollEvents() }
func (p *Platform) WaitEvents() { glfw.WaitEvents() }

func (p *Platform) ShouldClose() bool {
	return p.window != nil && p.window.ShouldClose()
}

func (p *Platform) SetShouldClose(close bool) {
	if p.window != nil {
		p.window.SetShouldClose(close)
	}
}

func (p *Platform) FramebufferSize() (int, int) {
	if p.window == nil {
		return 0, 0
	}
	return p.window.GetFramebufferSize()
}

func (p *Platform) WindowSize() (int, int) {
	if p.window == nil {
		return 0, 0
	}
	return p.window.GetSize()
}

func (p *Platform) SetWindowSize(width, height int) {
	if p.window != nil {
		p.window.SetSize(width, height)
	}
}

func (p *Platform) SetSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) {
	if p.window != nil {
		p.window.SetSizeLimits(minWidth, minHeight, maxWidth, maxHeight)
	}
}

func (p *Platform) WindowPos() (int, int) {
	if p.window == nil {
		return 0, 0
	}
	return p.window.GetPos()
}

func (p *Platform) SetWindowPos(x, y int) {
	if p.window != nil {
		p.window.SetPos(x, y)
	}
}

func (p *Platform) ContentScale() (float32, float32) {
	if p.window == nil {
		return 1, 1
	}
	return p.window.GetContentScale()
}

func (p *Platform) SetWindowMonitor(monitor, x, y, width, height, refreshRate int) {
	if p.window == nil {
		return
	}
	p.window.SetMonitor(p.monitorAt(monitor), x, y, width, height, refreshRate)
}

var attribHints = map[platform.Attrib]glfw.Hint{
	platform.AttribDecorated:   glfw.Decorated,
	platform.AttribResizable:   glfw.Resizable,
	platform.AttribFloating:    glfw.Floating,
	platform.AttribAutoIconify: glfw.AutoIconify,
	platform.AttribFocusOnShow: glfw.FocusOnShow,
}

// SetWindowAttrib ignores AttribMousePassthrough: it needs GLFW 3.4.
func (p *Platform) SetWindowAttrib(attr platform.Attrib, enabled bool) {
	hint, ok := attribHints[attr]
	if !ok || p.window == nil {
		return
	}
	v := glfw.False
	if enabled {
		v = glfw.True
	}
	p.window.SetAttrib(hint, v)
}

func (p *Platform) Iconify() {
	if p.window != nil {
		p.window.Iconify()
	}
}

func (p *Platform) Maximize() {
	if p.window != nil {
		p.window.Maximize()
	}
}

func (p *Platform) Restore() {
	if p.window != nil {
		p.window.Restore()
	}
}

func (p *Platform) Show() {
	if p.window != nil {
		p.window.Show()
	}
}

func (p *Platform) Hide() {
	if p.window != nil {
		p.window.Hide()
	}
}

func (p *Platform) Focus() {
	if p.window != nil {
		p.window.Focus()
	}
}

func (p *Platform) SetOpacity(opacity float32) {
	if p.window != nil {
		p.window.SetOpacity(opacity)
	}
}

func (p *Platform) SetTitle(title string) {
	if p.window != nil {
		p.window.SetTitle(title)
	}
}

var cursorModes = map[platform.CursorMode]int{
	platform.CursorNormal:   glfw.CursorNormal,
	platform.CursorHidden:   glfw.CursorHidden,
	platform.CursorDisabled: glfw.CursorDisabled,
}

func (p *Platform) SetCursorMode(mode platform.CursorMode) {
	if p.window != nil {
		p.window.SetInputMode(glfw.CursorMode, cursorModes[mode])
	}
}

func (p *Platform) SetCursorPos(x, y float64) {
	if p.window != nil {
		p.window.SetCursorPos(x, y)
	}
}

// GLFW 3.3 only has six standard shapes; the rest fall back to the arrow.
var standardShapes = map[platform.StandardCursor]glfw.StandardCursor{
	platform.CursorShapeArrow:     glfw.ArrowCursor,
	platform.CursorShapeIBeam:     glfw.IBeamCursor,
	platform.CursorShapeCrosshair: glfw.CrosshairCursor,
	platform.CursorShapeHand:      glfw.HandCursor,
	platform.CursorShapeResizeEW:  glfw.HResizeCursor,
	platform.CursorShapeResizeNS:  glfw.VResizeCursor,
}

func (p *Platform) SetStandardCursor(shape platform.StandardCursor) {
	if p.window == nil {
		return
	}
	if shape == platform.CursorShapeDefault {
		p.window.SetCursor(nil)
		return
	}
	c, ok := p.cursors[shape]
	if !ok {
		native, known := standardShapes[shape]
		if !known {
			native = glfw.ArrowCursor
		}
		c = glfw.CreateStandardCursor(native)
		p.cursors[shape] = c
	}
	p.window.SetCursor(c)
}

func (p *Platform) ClipboardText() string {
	if p.window == nil {
		return ""
	}
	return p.window.GetClipboardString()
}

func (p *Platform) SetClipboardText(text string) {
	if p.window != nil {
		p.window.SetClipboardString(text)
	}
}

func (p *Platform) JoystickPresent(id int) bool {
	if id < 0 || id >= maxJoysticks {
		return false
	}
	return glfw.Joystick(id).Present()
}

func (p *Platform) GamepadName(id int) string {
	if !p.JoystickPresent(id) {
		return ""
	}
	joy := glfw.Joystick(id)
	if joy.IsGamepad() {
		return joy.GetGamepadName()
	}
	return joy.GetName()
}

func (p *Platform) GamepadState(id int) (platform.GamepadState, bool) {
	var out platform.GamepadState
	if !p.JoystickPresent(id) {
		return out, false
	}
	st := glfw.Joystick(id).GetGamepadState()
	if st == nil {
		return out, false
	}
	for k, action := range st.Buttons {
		if k < len(gamepadButtonFromGlfw) {
			if b := gamepadButtonFromGlfw[k]; b != padUnknown {
				out.Buttons[b] = action == glfw.Press
			}
		}
	}
	for k, v := range st.Axes {
		out.Axes[k] = v
	}
	out.AxisCount = int(glfw.AxisLast) + 1
	return out, true
}

func (p *Platform) UpdateGamepadMappings(mappings string) bool {
	return glfw.UpdateGamepadMappings(mappings)
}

func (p *Platform) KeyName(key int) string {
	k, ok := keyToGlfw[key]
	if !ok {
		return ""
	}
	return glfw.GetKeyName(k, 0)
}

var _ platform.Platform = (*Platform)(nil)
