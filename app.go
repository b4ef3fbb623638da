package rcore

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// Module contributes resources and systems to an App at build time.
type Module interface {
	Install(app *App, cmd *Commands)
}

type App struct {
	stateful           bool
	stateTransitioning bool
	initialState       State
	finalState         State
	nextState          State
	state              State
	stages             []Stage
	systems            map[string]map[State]map[statePhase][]systemFn
	systemsStateless   map[string][]systemFn
	resources          map[reflect.Type]any

	started       bool
	stopped       bool
	exitRequested bool
}

func newApp() *App {
	app := &App{
		resources:        make(map[reflect.Type]any),
		systems:          make(map[string]map[State]map[statePhase][]systemFn),
		systemsStateless: make(map[string][]systemFn),
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Run steps frames until the app is done, then shuts it down.
func (app *App) Run() {
	if app.stateful {
		app.Logger().Infof("Running in stateful mode...")
	} else {
		app.Logger().Infof("Running in stateless mode...")
	}
	for app.Step() {
	}
	app.Shutdown()
}

// Step runs every stage once and reports whether another frame should run.
func (app *App) Step() bool {
	if app.stopped {
		return false
	}
	if !app.started {
		app.started = true
		app.state = app.initialState
		if app.stateful {
			app.callSystems(app.state, enter)
		}
	}

	app.callSystems(app.state, execute)

	if app.stateful && app.stateTransitioning {
		app.stateTransitioning = false
		app.executeChangeState(app.nextState)
	}
	return !app.done()
}

func (app *App) done() bool {
	if app.exitRequested {
		return true
	}
	if app.stateful && app.state == app.finalState {
		return true
	}
	if c := app.core(); c != nil && c.WindowShouldClose() {
		return true
	}
	return false
}

// Shutdown runs the exit systems of the current state and closes the window
// owned by the app. Further Steps do nothing.
func (app *App) Shutdown() {
	if app.stopped {
		return
	}
	app.stopped = true
	if app.stateful && app.started {
		app.callSystems(app.state, exit)
	}
	if c := app.core(); c != nil {
		c.CloseWindow()
	}
}

func (app *App) State() State { return app.state }

func (app *App) callSystems(state State, phase statePhase) {
	for _, stage := range app.stages {
		// On execute, call stateless/always run systems first
		if execute == phase {
			for _, system := range app.systemsStateless[stage.Name] {
				app.callSystem(system)
			}
		}

		if app.stateful {
			if systemsInStage, ok := app.systems[stage.Name]; ok {
				if systemsInState, ok := systemsInStage[state]; ok {
					for _, system := range systemsInState[phase] {
						app.callSystem(system)
					}
				}
			}
		}
	}
}

func (app *App) changeState(newState State) {
	app.nextState = newState
	app.stateTransitioning = true
}

func (app *App) executeChangeState(newState State) {
	app.callSystems(app.state, exit)
	app.state = newState
	app.callSystems(app.state, enter)
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer resource", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) resource(t reflect.Type) (any, bool) {
	r, ok := app.resources[t]
	return r, ok
}

func (app *App) core() *Core {
	if r, ok := app.resource(typeOfCore); ok {
		return r.(*Core)
	}
	return nil
}

// Core is the platform core installed by PlatformWindowModule, or nil.
func (app *App) Core() *Core { return app.core() }

func (app *App) callSystem(system systemFn) {
	app.callSystemInternal(system)
}

var (
	typeOfCommands = reflect.TypeOf(Commands{})
	typeOfCore     = reflect.TypeOf(Core{})
)

func (app *App) callSystemInternal(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			app.unresolved(systemValue, systemType, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			resourceVal := reflect.ValueOf(resource)
			typedResourceVal := reflect.NewAt(underlyingType, resourceVal.UnsafePointer())

			args[i] = typedResourceVal
		} else {
			app.unresolved(systemValue, systemType, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolved(systemValue reflect.Value, systemType, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}
