package rcore

// PollInputEvents runs the platform event pump, which calls the dispatcher
// synchronously, then samples connected gamepads. In event-waiting mode it
// blocks until the OS has something to deliver.
func (c *Core) PollInputEvents() {
	if !c.Window.Ready {
		return
	}
	if c.Window.EventWaiting {
		c.backend.WaitEvents()
	} else {
		c.backend.PollEvents()
	}
	c.pollGamepads()
}

func (c *Core) pollGamepads() {
	gp := &c.Input.Gamepad
	for id := 0; id < MaxGamepads; id++ {
		if !gp.Ready[id] {
			continue
		}
		state, ok := c.backend.GamepadState(id)
		if !ok {
			continue
		}
		for b := GamepadButton(1); int(b) < MaxGamepadButtons; b++ {
			down := state.Buttons[b]
			gp.current[id][b] = down
			if down {
				gp.LastButtonPressed = b
			}
		}
		gp.AxisState[id] = state.Axes
		gp.AxisCount[id] = state.AxisCount

		// Trigger 2 arrives as an axis; expose it as a button too.
		gp.current[id][GamepadButtonLeftTrigger2] = gp.AxisState[id][GamepadAxisLeftTrigger] > triggerButtonThreshold
		gp.current[id][GamepadButtonRightTrigger2] = gp.AxisState[id][GamepadAxisRightTrigger] > triggerButtonThreshold
	}
}

// EndFrame is the frame boundary. It must run once per frame after every
// read of the current state and before the next PollInputEvents: current
// state becomes previous, repeat flags and queues are cleared, and the
// wheel and resize flags reset.
func (c *Core) EndFrame() {
	c.Input.rotate()
	c.Window.ResizedLastFrame = false
}

// SwapScreenBuffer presents the back buffer.
func (c *Core) SwapScreenBuffer() {
	if c.Window.Ready {
		c.backend.SwapBuffers()
	}
}

func (c *Core) EnableEventWaiting()  { c.Window.EventWaiting = true }
func (c *Core) DisableEventWaiting() { c.Window.EventWaiting = false }
