package curvedworld

import (
	"fmt"
	"reflect"
	"testing"

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

	app.changeState(2)
	if app.nextState != State(2) {
		t.Errorf("The nextState should be set correctly.")
	}
	if !app.stateTransitioning {
		t.Errorf("The stateTransitioning flag should be true.")
	}

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

	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := NewMockResource2("Resource2")
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")

	got, ok := Resource[MockResource2](app)
	require.True(t, ok)
	assert.Same(t, resource2, got)
}

func TestApp_SystemsReceiveResources(t *testing.T) {
	app := NewAppBuilder().Build()
	res := NewMockResource1("r")
	app.Commands().AddResources(res)

	var got *MockResource1
	app.UseSystem(System(func(r *MockResource1, cmd *Commands) {
		got = r
		require.NotNil(t, cmd)
	}))

	app.Step()
	assert.Same(t, res, got)
}

func TestApp_UnresolvedDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()
	app.UseSystem(System(func(r *MockResource2) {}))

	assert.Panics(t, func() { app.Step() })
}

func TestApp_StageOrderAndStatePhases(t *testing.T) {
	const (
		first State = iota
		second
		last
	)
	app := NewAppBuilder().UseStates(first, last).Build()

	var calls []string
	record := func(s string) func() {
		return func() { calls = append(calls, s) }
	}
	app.UseSystem(System(record("render")).InStage(Render))
	app.UseSystem(System(record("prelude")).InStage(Prelude))
	app.UseSystem(System(record("enter first")).InState(OnEnter(first)))
	app.UseSystem(System(record("exec first")).InState(OnExecute(first)))
	app.UseSystem(System(record("exit first")).InState(OnExit(first)))
	app.UseSystem(System(record("enter second")).InState(OnEnter(second)))
	app.UseSystem(System(record("exit last")).InState(OnExit(last)))

	require.True(t, app.Step())
	assert.Equal(t, []string{"enter first", "prelude", "exec first", "render"}, calls)

	calls = nil
	app.Commands().ChangeState(second)
	require.True(t, app.Step())
	assert.Equal(t, []string{"prelude", "exec first", "render", "exit first", "enter second"}, calls)

	calls = nil
	app.Commands().ChangeState(last)
	assert.False(t, app.Step())
	assert.Equal(t, []string{"prelude", "render", "exit last"}, calls)
}

func TestApp_StatefulSystemInStatelessAppPanics(t *testing.T) {
	app := NewAppBuilder().Build()

	assert.PanicsWithValue(t, "Trying to use a stateful system in a stateless app.", func() {
		app.UseSystem(System(func() {}).InState(OnEnter(1)))
	})
}

func TestApp_UnknownStagePanics(t *testing.T) {
	app := NewAppBuilder().Build()

	assert.PanicsWithValue(t, "Stage Nowhere doesn't exist", func() {
		app.UseSystem(System(func() {}).InStage(Stage{Name: "Nowhere"}))
	})
}
