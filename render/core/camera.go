package core

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// Camera is a perspective camera looking down its local -Z axis.
//
// Its culling test is normally derived from Projection() * WorldToCamera()
// and follows the camera as it moves. SetCullingMatrix pins a custom matrix
// until ResetCullingMatrix is called.
type Camera struct {
	ID        uuid.UUID
	Name      string
	Transform *Transform

	Fov    float32 // vertical, radians
	Aspect float32
	Near   float32
	Far    float32

	customCulling bool
	cullingMatrix mgl32.Mat4
}

func NewCamera(name string) *Camera {
	return &Camera{
		ID:        uuid.New(),
		Name:      name,
		Transform: NewTransform(),
		Fov:       mgl32.DegToRad(60),
		Aspect:    16.0 / 9.0,
		Near:      0.1,
		Far:       1000,
	}
}

func (c *Camera) WorldToCamera() mgl32.Mat4 {
	return c.Transform.WorldToLocal()
}

func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

// DefaultCullingMatrix is the transform-derived culling matrix for the current pose.
func (c *Camera) DefaultCullingMatrix() mgl32.Mat4 {
	return c.Projection().Mul4(c.WorldToCamera())
}

// CullingMatrix returns the matrix the pipeline should cull against right now.
func (c *Camera) CullingMatrix() mgl32.Mat4 {
	if c.customCulling {
		return c.cullingMatrix
	}
	return c.DefaultCullingMatrix()
}

func (c *Camera) SetCullingMatrix(m mgl32.Mat4) {
	c.cullingMatrix = m
	c.customCulling = true
}

// ResetCullingMatrix makes the camera follow its default culling matrix again.
// Calling it on a camera without a custom matrix does nothing.
func (c *Camera) ResetCullingMatrix() {
	c.cullingMatrix = mgl32.Mat4{}
	c.customCulling = false
}

func (c *Camera) HasCustomCulling() bool {
	return c.customCulling
}

// Frustum returns the planes of the current culling volume.
func (c *Camera) Frustum() [6]mgl32.Vec4 {
	return ExtractFrustum(c.CullingMatrix())
}
