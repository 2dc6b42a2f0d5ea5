package curvedworld

// CurvedWorld is the scene object owning the effect: its config, the
// broadcaster publishing it and the culling override controller.
type CurvedWorld struct {
	Config      *CurvedWorldConfig
	Broadcaster *ParameterBroadcaster
	Culling     *CullingOverrideController

	enabled bool
}

func NewCurvedWorld(config *CurvedWorldConfig, globals GlobalShaderState, pipeline RenderPipeline, runContext RunContext, log Logger) *CurvedWorld {
	return &CurvedWorld{
		Config:      config,
		Broadcaster: NewParameterBroadcaster(globals),
		Culling:     NewCullingOverrideController(pipeline, runContext, log),
	}
}

func (w *CurvedWorld) OnEnable() {
	w.enabled = true
	w.Culling.Enable()
}

func (w *CurvedWorld) OnDisable() {
	w.enabled = false
	w.Culling.Disable()
}

func (w *CurvedWorld) Enabled() bool {
	return w.enabled
}

// Update broadcasts the config. Runs in edit and play mode while enabled.
func (w *CurvedWorld) Update() {
	if !w.enabled {
		return
	}
	w.Broadcaster.Tick(*w.Config)
}

// CurvedWorldModule installs the curved world effect. Requires
// RenderPipelineModule and an app built with UseStates covering PlayState.
//
// The owner is enabled at install time, so parameters are broadcast in every
// state; the culling override is only registered while the app is in
// PlayState.
type CurvedWorldModule struct {
	Config    CurvedWorldConfig
	PlayState State
}

func (m CurvedWorldModule) Install(app *App, cmd *Commands) {
	pipeline, ok := Resource[EventPipeline](app)
	if !ok {
		panic("CurvedWorldModule requires RenderPipelineModule")
	}

	globals, ok := Resource[ShaderGlobals](app)
	if !ok {
		globals = NewShaderGlobals()
		cmd.AddResources(globals)
	}

	config := m.Config
	world := NewCurvedWorld(
		&config,
		globals,
		pipeline,
		AppRunContext{App: app, PlayState: m.PlayState},
		app.Logger(),
	)
	cmd.AddResources(world, NewConfigSurface(&config))
	world.OnEnable()

	app.UseSystem(
		System(curvedWorldUpdateSystem).
			InStage(PreRender).
			RunAlways(),
	)
	app.UseSystem(
		System(curvedWorldPlaySystem).
			InStage(Prelude).
			InState(OnEnter(m.PlayState)),
	)
	app.UseSystem(
		System(curvedWorldStopSystem).
			InStage(Finale).
			InState(OnExit(m.PlayState)),
	)
}

func curvedWorldUpdateSystem(world *CurvedWorld) {
	world.Update()
}

// Entering play re-runs OnEnable now that the run context is active.
func curvedWorldPlaySystem(world *CurvedWorld) {
	if world.Enabled() {
		world.Culling.Enable()
	}
}

func curvedWorldStopSystem(world *CurvedWorld) {
	world.Culling.Disable()
}
