package curvedworld

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/curvedworld/render/core"
)

// OrthoVolume is an orthographic box in camera space.
type OrthoVolume struct {
	Left, Right, Bottom, Top, Near, Far float32
}

// DefaultOverrideVolume is large enough to keep displaced geometry around the
// camera from being culled.
var DefaultOverrideVolume = OrthoVolume{Left: -99, Right: 99, Bottom: -99, Top: 99, Near: 0.001, Far: 99}

func (v OrthoVolume) Matrix() mgl32.Mat4 {
	return mgl32.Ortho(v.Left, v.Right, v.Bottom, v.Top, v.Near, v.Far)
}

// CullingOverrideController widens a camera's culling volume for the length
// of its render pass.
//
// Curved world displacement happens in the vertex shader, after the pipeline
// has culled against the undisplaced bounds, so bent meshes would pop out at
// the frustum edges. While registered the controller swaps each camera's
// culling matrix for Volume * WorldToCamera on the begin event and resets it
// on the end event.
type CullingOverrideController struct {
	Volume OrthoVolume

	pipeline   RenderPipeline
	runContext RunContext
	log        Logger
	sub        Subscription
	registered bool
}

func NewCullingOverrideController(pipeline RenderPipeline, runContext RunContext, log Logger) *CullingOverrideController {
	if log == nil {
		log = NewNopLogger()
	}
	return &CullingOverrideController{
		Volume:     DefaultOverrideVolume,
		pipeline:   pipeline,
		runContext: runContext,
		log:        log,
		sub:        NoSubscription,
	}
}

// Enable subscribes to the pipeline's camera events. Outside an active run
// context, or when already registered, it does nothing.
func (c *CullingOverrideController) Enable() {
	if c.runContext == nil || !c.runContext.Active() {
		c.log.Debugf("culling override: not in an active run context, skipping registration")
		return
	}
	if c.registered {
		return
	}
	c.sub = c.pipeline.SubscribeCameraEvents(c.OnBeginCameraRender, c.OnEndCameraRender)
	c.registered = true
	c.log.Debugf("culling override: registered")
}

// Disable unsubscribes from the pipeline. An override already installed on a
// camera stays until that camera's end event is delivered.
func (c *CullingOverrideController) Disable() {
	c.pipeline.Unsubscribe(c.sub)
	if c.registered {
		c.log.Debugf("culling override: unregistered")
	}
	c.sub = NoSubscription
	c.registered = false
}

func (c *CullingOverrideController) Registered() bool {
	return c.registered
}

// OnBeginCameraRender installs the widened culling matrix built from the
// camera's current pose.
func (c *CullingOverrideController) OnBeginCameraRender(ctx *RenderContext, cam *core.Camera) {
	cam.SetCullingMatrix(c.Volume.Matrix().Mul4(cam.WorldToCamera()))
}

// OnEndCameraRender restores the camera's default culling. It does not require
// a matching begin event.
func (c *CullingOverrideController) OnEndCameraRender(ctx *RenderContext, cam *core.Camera) {
	cam.ResetCullingMatrix()
}
