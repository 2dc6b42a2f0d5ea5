package curvedworld

import (
	"slices"

	"github.com/google/uuid"

	"github.com/gekko3d/curvedworld/render/core"
)

// RenderContext describes the frame a camera event belongs to.
type RenderContext struct {
	Frame uint64
}

type CameraEventHandler func(ctx *RenderContext, cam *core.Camera)

// Subscription identifies one pair of registered camera handlers.
type Subscription uuid.UUID

var NoSubscription = Subscription(uuid.Nil)

// RenderPipeline lets components hook the begin and end of each camera pass.
type RenderPipeline interface {
	SubscribeCameraEvents(begin, end CameraEventHandler) Subscription
	Unsubscribe(sub Subscription)
}

// CameraPassStats is the result of culling one camera's pass.
type CameraPassStats struct {
	Camera  *core.Camera
	Visible []string
	Culled  []string
}

type cameraSubscription struct {
	id    Subscription
	begin CameraEventHandler
	end   CameraEventHandler
}

// EventPipeline is a serial render pipeline. For each camera it emits the
// begin event, culls the scene against the camera's culling matrix and emits
// the end event, before moving on to the next camera.
type EventPipeline struct {
	subs []cameraSubscription
}

func NewEventPipeline() *EventPipeline {
	return &EventPipeline{}
}

func (p *EventPipeline) SubscribeCameraEvents(begin, end CameraEventHandler) Subscription {
	sub := cameraSubscription{
		id:    Subscription(uuid.New()),
		begin: begin,
		end:   end,
	}
	p.subs = append(p.subs, sub)
	return sub.id
}

// Unsubscribe removes sub. Unknown subscriptions are ignored.
func (p *EventPipeline) Unsubscribe(sub Subscription) {
	p.subs = slices.DeleteFunc(p.subs, func(s cameraSubscription) bool {
		return s.id == sub
	})
}

func (p *EventPipeline) SubscriberCount() int {
	return len(p.subs)
}

func (p *EventPipeline) BeginCameraRendering(ctx *RenderContext, cam *core.Camera) {
	for _, s := range slices.Clone(p.subs) {
		if s.begin != nil {
			s.begin(ctx, cam)
		}
	}
}

func (p *EventPipeline) EndCameraRendering(ctx *RenderContext, cam *core.Camera) {
	for _, s := range slices.Clone(p.subs) {
		if s.end != nil {
			s.end(ctx, cam)
		}
	}
}

// RenderFrame renders every camera in the scene and returns per-camera stats.
func (p *EventPipeline) RenderFrame(ctx *RenderContext, scene *Scene) []CameraPassStats {
	stats := make([]CameraPassStats, 0, len(scene.Cameras))
	for _, cam := range scene.Cameras {
		p.BeginCameraRendering(ctx, cam)
		stats = append(stats, cull(cam, scene.Renderers))
		p.EndCameraRendering(ctx, cam)
	}
	return stats
}

func cull(cam *core.Camera, renderers []Renderer) CameraPassStats {
	stats := CameraPassStats{Camera: cam}
	planes := cam.Frustum()
	for _, r := range renderers {
		if core.AABBInFrustum(r.Bounds, planes) {
			stats.Visible = append(stats.Visible, r.Name)
		} else {
			stats.Culled = append(stats.Culled, r.Name)
		}
	}
	return stats
}
