package curvedworld

// Run modes for apps hosting the curved world module. An app built with
// UseStates(Editing, Stopped) starts in the editor and enters Playing on demand.
const (
	Editing State = iota
	Playing
	Stopped
)

// RunContext reports whether the process is in an active play/run state.
// Render-pass hooks are only installed while it is active.
type RunContext interface {
	Active() bool
}

type RunContextFunc func() bool

func (f RunContextFunc) Active() bool { return f() }

type StaticRunContext bool

func (s StaticRunContext) Active() bool { return bool(s) }

// AppRunContext is active while the app is in the given play state.
type AppRunContext struct {
	App       *App
	PlayState State
}

func (c AppRunContext) Active() bool {
	return c.App != nil && c.App.stateful && c.App.State() == c.PlayState
}
