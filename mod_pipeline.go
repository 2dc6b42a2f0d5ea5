package curvedworld

import (
	"fmt"
)

// PipelineTag marks that a render pipeline has been installed into the App.
type PipelineTag struct {
	Name string
}

// FrameStats holds the culling results of the last rendered frame.
type FrameStats struct {
	Frame  uint64
	Passes []CameraPassStats
}

// RenderPipelineModule installs the serial EventPipeline, an empty Scene and
// the Render stage system driving them. Requires TimeModule.
type RenderPipelineModule struct {
	Name string
}

func (m RenderPipelineModule) Install(app *App, cmd *Commands) {
	name := m.Name
	if name == "" {
		name = "serial"
	}
	if ensureSinglePipeline(app, name) {
		return
	}

	cmd.AddResources(NewEventPipeline(), &Scene{}, &FrameStats{})
	app.UseSystem(
		System(renderFrameSystem).
			InStage(Render).
			RunAlways(),
	)
	app.Logger().Infof("Render pipeline selected: %s", name)
}

func renderFrameSystem(pipeline *EventPipeline, scene *Scene, t *Time, stats *FrameStats) {
	stats.Frame = t.Frame
	stats.Passes = pipeline.RenderFrame(&RenderContext{Frame: t.Frame}, scene)
}

// ensureSinglePipeline enforces a single pipeline per app. It reports whether
// a pipeline with the same name was already installed and panics if a
// different one was.
func ensureSinglePipeline(app *App, name string) bool {
	if app == nil {
		panic("ensureSinglePipeline: app is nil")
	}
	if tag, ok := Resource[PipelineTag](app); ok {
		if tag.Name != name {
			app.Logger().Errorf("Multiple render pipelines installed: %s and %s", tag.Name, name)
			panic(fmt.Sprintf("Multiple render pipelines installed: %s and %s", tag.Name, name))
		}
		return true
	}
	app.addResources(&PipelineTag{Name: name})
	return false
}
