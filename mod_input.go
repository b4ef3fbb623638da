package rcore

// InputModule drives the frame protocol: events are pumped before any other
// system runs and the frame boundary closes the frame after everything else.
type InputModule struct{}

func (mod InputModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(pollInputSystem).
			InStage(Prelude).
			RunAlways(),
	)
	app.UseSystem(
		System(endFrameSystem).
			InStage(Finale).
			RunAlways(),
	)
}

func pollInputSystem(c *Core) {
	c.PollInputEvents()
}

func endFrameSystem(c *Core) {
	c.SwapScreenBuffer()
	c.EndFrame()
}
