package rcore

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/gekko3d/rcore/platform/headless"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func NewMockResource1(name string) *MockResource1 {
	return &MockResource1{name: name}
}
func NewMockResource2(name string) *MockResource2 {
	return &MockResource2{name: name}
}

func TestApp_changeState(t *testing.T) {
	app := &App{
		stateful:     true,
		initialState: 1,
		state:        1,
		finalState:   2,
	}

	// Test changing state
	app.changeState(2)
	if app.nextState != State(2) {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

	// Test executing state change
	app.executeChangeState(2)
	if app.state != State(2) {
		t.Errorf("The app state should change correctly.")
	}
}

func TestApp_addResources(t *testing.T) {
	app := &App{
		resources: make(map[reflect.Type]any),
	}

	resource1 := NewMockResource1("Resource1")
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Expect panic when trying to add the same type of resource again
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)

	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	require.Panics(t, func() {
		app.addResources(MockResource2{})
	}, "value resources cannot be resolved by pointer")
}

func TestApp_systemsResolveResources(t *testing.T) {
	app := NewAppBuilder().Build()
	res := NewMockResource1("before")
	app.addResources(res)

	app.UseSystem(System(func(r *MockResource1, cmd *Commands) {
		r.name = "after"
		cmd.RequestExit()
	}))

	assert.False(t, app.Step())
	assert.Equal(t, "after", res.name)
}

func TestApp_unresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_stagesRunInOrder(t *testing.T) {
	app := NewAppBuilder().Build()
	var order []string
	for _, stage := range []Stage{Finale, Update, Prelude, Render} {
		name := stage.Name
		app.UseSystem(System(func() { order = append(order, name) }).InStage(stage))
	}

	app.Step()
	assert.Equal(t, []string{"Prelude", "Update", "Render", "Finale"}, order)
}

func TestApp_customStage(t *testing.T) {
	app := NewAppBuilder().Build()
	physics := Stage{Name: "Physics"}
	app.UseStage(physics, AfterStage(PreUpdate))

	var order []string
	app.UseSystem(System(func() { order = append(order, "update") }).InStage(Update))
	app.UseSystem(System(func() { order = append(order, "physics") }).InStage(physics))
	app.Step()

	assert.Equal(t, []string{"physics", "update"}, order)
	assert.Panics(t, func() { app.UseStage(Stage{Name: "Audio"}, BeforeStage(Stage{Name: "Missing"})) })
	assert.PanicsWithValue(t, "Stage Physics already exists", func() { app.UseStage(physics, AfterStage(Update)) })
}

func TestApp_stagesStayInsideFrame(t *testing.T) {
	app := NewAppBuilder().Build()

	assert.PanicsWithValue(t, "Stage Early must run between Prelude and Finale", func() {
		app.UseStage(Stage{Name: "Early"}, BeforeStage(Prelude))
	})
	assert.PanicsWithValue(t, "Stage Late must run between Prelude and Finale", func() {
		app.UseStage(Stage{Name: "Late"}, AfterStage(Finale))
	})
	assert.NotPanics(t, func() {
		app.UseStage(Stage{Name: "Input"}, AfterStage(Prelude))
		app.UseStage(Stage{Name: "Present"}, BeforeStage(Finale))
	})
	assert.Equal(t, Prelude, app.stages[0])
	assert.Equal(t, Finale, app.stages[len(app.stages)-1])
}

func TestApp_runAlwaysIgnoresState(t *testing.T) {
	app := NewAppBuilder().UseStates(stateSplash, stateDone).Build()
	runs := 0
	app.UseSystem(System(func() { runs++ }).InState(OnExecute(statePlaying)).RunAlways())

	app.Step()
	assert.Equal(t, 1, runs, "a RunAlways system runs outside its state")
	assert.Panics(t, func() { app.UseSystem(System(func() {}).InState(OnEnter(State(42)))) })
	assert.Panics(t, func() { app.UseSystem(System(func() {}).InStage(Stage{Name: "Missing"})) })
}

const (
	stateSplash State = iota
	statePlaying
	stateDone
)

func TestApp_statefulRun(t *testing.T) {
	var log []string
	app := NewAppBuilder().UseStates(stateSplash, stateDone).Build()

	app.UseSystem(System(func() { log = append(log, "enter splash") }).InState(OnEnter(stateSplash)))
	app.UseSystem(System(func(cmd *Commands) {
		log = append(log, "splash")
		cmd.ChangeState(statePlaying)
	}).InState(OnExecute(stateSplash)))
	app.UseSystem(System(func() { log = append(log, "exit splash") }).InState(OnExit(stateSplash)))
	app.UseSystem(System(func(cmd *Commands) {
		log = append(log, "playing")
		cmd.ChangeState(stateDone)
	}).InState(OnExecute(statePlaying)))
	app.UseSystem(System(func() { log = append(log, "exit done") }).InState(OnExit(stateDone)))

	app.Run()

	assert.Equal(t, []string{"enter splash", "splash", "exit splash", "playing", "exit done"}, log)
	assert.Equal(t, stateDone, app.State())
	assert.False(t, app.Step(), "a stopped app does not step")
}

func TestApp_statefulSystemInStatelessAppPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	assert.Panics(t, func() {
		app.UseSystem(System(func() {}).InState(OnEnter(1)))
	})
}

func TestApp_runsUntilWindowCloses(t *testing.T) {
	p := headless.New()
	app := NewAppBuilder().
		UseModule(
			LoggingModule{Prefix: "test"},
			PlatformWindowModule{Config: DefaultConfig(), Platform: p},
			TimeModule{},
			InputModule{},
		).
		Build()

	frames := 0
	app.UseSystem(System(func(c *Core, tm *Time) {
		frames++
		if tm.Frame == 3 {
			p.Push(press(KeyEscape))
		}
	}))

	app.Run()

	assert.Equal(t, 4, frames)
	assert.Equal(t, 4, p.Swaps())
	assert.True(t, p.Terminated())
	assert.False(t, app.Core().IsWindowReady())
}
