package rcore

type Commands struct {
	app *App
}

func (cmd *Commands) ChangeState(newState State) *Commands {
	cmd.app.changeState(newState)
	return cmd
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// UseSystem schedules a plain system in the Update stage. Use App.UseSystem
// to pick a stage or state.
func (cmd *Commands) UseSystem(system systemFn) *Commands {
	cmd.app.UseSystem(System(system))
	return cmd
}

// RequestExit ends the run after the current frame.
func (cmd *Commands) RequestExit() {
	cmd.app.exitRequested = true
}
