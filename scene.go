package curvedworld

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/curvedworld/render/core"
)

// Renderer is a drawable with world-space bounds {min, max}. The bounds are
// those of the undisplaced mesh.
type Renderer struct {
	Name   string
	Bounds [2]mgl32.Vec3
}

// Scene lists what the pipeline renders each frame, in order.
type Scene struct {
	Cameras   []*core.Camera
	Renderers []Renderer
}

func (s *Scene) AddCamera(cam *core.Camera) *core.Camera {
	s.Cameras = append(s.Cameras, cam)
	return cam
}

func (s *Scene) AddRenderer(name string, min, max mgl32.Vec3) {
	s.Renderers = append(s.Renderers, Renderer{Name: name, Bounds: [2]mgl32.Vec3{min, max}})
}
