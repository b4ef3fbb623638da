package rcore

import (
	"github.com/gekko3d/rcore/platform"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *Core) monitors() []platform.Monitor {
	if c.backend == nil {
		return nil
	}
	ms, err := c.backend.Monitors()
	if err != nil {
		c.log.Warnf("GLFW: Failed to get monitors: %v", err)
		return nil
	}
	return ms
}

func (c *Core) monitor(index int) (platform.Monitor, bool) {
	ms := c.monitors()
	if index < 0 || index >= len(ms) {
		c.log.Warnf("GLFW: Failed to find selected monitor")
		return platform.Monitor{}, false
	}
	return ms[index], true
}

func (c *Core) GetMonitorCount() int { return len(c.monitors()) }

// GetCurrentMonitor is the fullscreen monitor, else the monitor holding the
// window center, else the one closest to it. Defaults to 0.
func (c *Core) GetCurrentMonitor() int {
	ms := c.monitors()
	if len(ms) == 0 {
		return 0
	}
	if c.Window.Fullscreen {
		if c.fullscreenMonitor >= 0 && c.fullscreenMonitor < len(ms) {
			return c.fullscreenMonitor
		}
		return 0
	}

	cx := c.Window.Position.X + c.Window.Screen.Width/2
	cy := c.Window.Position.Y + c.Window.Screen.Height/2

	closest, best := 0, -1
	for i, m := range ms {
		x0, y0 := m.X, m.Y
		x1, y1 := m.X+m.Mode.Width, m.Y+m.Mode.Height
		if cx >= x0 && cx < x1 && cy >= y0 && cy < y1 {
			return i
		}
		dx := clampInt(cx, x0, x1) - cx
		dy := clampInt(cy, y0, y1) - cy
		if d := dx*dx + dy*dy; best < 0 || d < best {
			closest, best = i, d
		}
	}
	return closest
}

func (c *Core) GetMonitorPosition(index int) mgl32.Vec2 {
	m, ok := c.monitor(index)
	if !ok {
		return mgl32.Vec2{}
	}
	return mgl32.Vec2{float32(m.X), float32(m.Y)}
}

// GetMonitorWidth is the current video mode width.
func (c *Core) GetMonitorWidth(index int) int {
	m, _ := c.monitor(index)
	return m.Mode.Width
}

func (c *Core) GetMonitorHeight(index int) int {
	m, _ := c.monitor(index)
	return m.Mode.Height
}

// GetMonitorPhysicalWidth is in millimetres.
func (c *Core) GetMonitorPhysicalWidth(index int) int {
	m, _ := c.monitor(index)
	return m.PhysicalWidth
}

func (c *Core) GetMonitorPhysicalHeight(index int) int {
	m, _ := c.monitor(index)
	return m.PhysicalHeight
}

func (c *Core) GetMonitorRefreshRate(index int) int {
	m, _ := c.monitor(index)
	return m.Mode.RefreshRate
}

func (c *Core) GetMonitorName(index int) string {
	m, _ := c.monitor(index)
	return m.Name
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
