package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane indices returned by ExtractFrustum.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// ExtractFrustum extracts the 6 planes of the volume described by a clip matrix
// (projection * view, or any culling matrix). Planes are Ax + By + Cz + D = 0
// with the normal pointing inside, in the order Left, Right, Bottom, Top, Near, Far.
func ExtractFrustum(m mgl32.Mat4) [6]mgl32.Vec4 {
	row := func(r int) mgl32.Vec4 {
		return mgl32.Vec4{m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3)}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	// OpenGL-style clip space, depth -1..1.
	planes := [6]mgl32.Vec4{
		PlaneLeft:   r3.Add(r0),
		PlaneRight:  r3.Sub(r0),
		PlaneBottom: r3.Add(r1),
		PlaneTop:    r3.Sub(r1),
		PlaneNear:   r3.Add(r2),
		PlaneFar:    r3.Sub(r2),
	}

	for i := range planes {
		p := planes[i]
		length := float32(math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2])))
		if length > 0 {
			planes[i] = p.Mul(1.0 / length)
		}
	}

	return planes
}

// AABBInFrustum reports whether an AABB {min, max} is at least partially
// inside the volume bounded by planes.
func AABBInFrustum(aabb [2]mgl32.Vec3, planes [6]mgl32.Vec4) bool {
	for _, plane := range planes {
		// Positive vertex: the corner furthest along the inward normal.
		// If even that corner is behind the plane the whole box is outside.
		var p mgl32.Vec3
		for axis := 0; axis < 3; axis++ {
			if plane[axis] > 0 {
				p[axis] = aabb[1][axis]
			} else {
				p[axis] = aabb[0][axis]
			}
		}

		if plane[0]*p[0]+plane[1]*p[1]+plane[2]*p[2]+plane[3] < 0 {
			return false
		}
	}
	return true
}
