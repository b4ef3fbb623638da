package rcore

import (
	"fmt"
	"slices"
)

// Stage is a named slot in the per-frame system order.
type Stage struct {
	Name string
}

// Prelude and Finale bracket every frame: InputModule pumps events in
// Prelude and runs the frame boundary in Finale, so every other stage sits
// strictly between them.
var (
	Prelude    = Stage{Name: "Prelude"}
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
	PostRender = Stage{Name: "PostRender"}
	Finale     = Stage{Name: "Finale"}
)

var defaultStages = []Stage{Prelude, PreUpdate, Update, PostUpdate, PreRender, Render, PostRender, Finale}

type State int

type statePhase int

const (
	enter statePhase = iota
	execute
	exit
)

type stateSchedule struct {
	state State
	phase statePhase
}

func OnEnter(state State) stateSchedule   { return stateSchedule{state: state, phase: enter} }
func OnExecute(state State) stateSchedule { return stateSchedule{state: state, phase: execute} }
func OnExit(state State) stateSchedule    { return stateSchedule{state: state, phase: exit} }

type systemSchedule struct {
	system    systemFn
	stage     Stage
	runAlways bool
	// state is nil for systems that ignore the state machine.
	state *stateSchedule
}

// System schedules fn in the Update stage of every frame.
func System(fn systemFn) systemSchedule {
	return systemSchedule{system: fn, stage: Update}
}

func (s systemSchedule) InStage(stage Stage) systemSchedule {
	s.stage = stage
	return s
}

func (s systemSchedule) InState(state stateSchedule) systemSchedule {
	s.state = &state
	return s
}

// RunAlways runs the system every frame whatever the current state.
func (s systemSchedule) RunAlways() systemSchedule {
	s.runAlways = true
	return s
}

func (s systemSchedule) stateless() bool { return s.runAlways || s.state == nil }

type stagePlacement struct {
	target Stage
	after  bool
}

func BeforeStage(s Stage) stagePlacement { return stagePlacement{target: s} }
func AfterStage(s Stage) stagePlacement  { return stagePlacement{target: s, after: true} }

func (app *App) stageIndex(name string) int {
	return slices.IndexFunc(app.stages, func(s Stage) bool { return s.Name == name })
}

// UseStage inserts a custom stage next to an existing one. Stages cannot be
// placed ahead of Prelude or behind Finale.
func (app *App) UseStage(stage Stage, where stagePlacement) *App {
	idx := app.stageIndex(where.target.Name)
	if idx < 0 {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}
	if app.stageIndex(stage.Name) >= 0 {
		panic(fmt.Sprintf("Stage %v already exists", stage.Name))
	}

	at := idx
	if where.after {
		at++
	}
	if at <= app.stageIndex(Prelude.Name) || at > app.stageIndex(Finale.Name) {
		panic(fmt.Sprintf("Stage %v must run between %v and %v", stage.Name, Prelude.Name, Finale.Name))
	}

	app.stages = slices.Insert(app.stages, at, stage)
	app.initStatefulStage(stage)
	return app
}

func (app *App) UseSystem(s systemSchedule) *App {
	name := s.stage.Name
	if _, ok := app.systemsStateless[name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", name))
	}
	if s.stateless() {
		app.systemsStateless[name] = append(app.systemsStateless[name], s.system)
		return app
	}

	if !app.stateful {
		panic("Trying to use a stateful system in a stateless app.")
	}
	phases, ok := app.systems[name][s.state.state]
	if !ok {
		panic(fmt.Sprintf("State %v doesn't exist", s.state.state))
	}
	phases[s.state.phase] = append(phases[s.state.phase], s.system)
	return app
}

func (app *App) initStatefulStage(stage Stage) {
	app.systemsStateless[stage.Name] = nil
	if !app.stateful {
		return
	}
	states := make(map[State]map[statePhase][]systemFn)
	for state := app.initialState; state <= app.finalState; state++ {
		states[state] = make(map[statePhase][]systemFn)
	}
	app.systems[stage.Name] = states
}
