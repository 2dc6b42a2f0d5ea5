package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrustumCulling(t *testing.T) {
	// Camera at origin looking down -Z
	// Perspective: 90 deg FOV, Aspect 1.0, Near 1, Far 100
	proj := mgl32.Perspective(mgl32.DegToRad(90), 1.0, 1.0, 100.0)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, 0},  // Eye
		mgl32.Vec3{0, 0, -1}, // Center
		mgl32.Vec3{0, 1, 0},  // Up
	)
	planes := ExtractFrustum(proj.Mul4(view))

	tests := []struct {
		name     string
		aabbMin  mgl32.Vec3
		aabbMax  mgl32.Vec3
		expected bool
	}{
		{
			name:     "Inside (center)",
			aabbMin:  mgl32.Vec3{-1, -1, -10},
			aabbMax:  mgl32.Vec3{1, 1, -5},
			expected: true,
		},
		{
			name:     "Outside (Left)",
			aabbMin:  mgl32.Vec3{-20, -1, -10},
			aabbMax:  mgl32.Vec3{-15, 1, -5},
			expected: false,
		},
		{
			name:     "Outside (Right)",
			aabbMin:  mgl32.Vec3{15, -1, -10},
			aabbMax:  mgl32.Vec3{20, 1, -5},
			expected: false,
		},
		{
			name:     "Outside (Behind/Near)",
			aabbMin:  mgl32.Vec3{-1, -1, 2},
			aabbMax:  mgl32.Vec3{1, 1, 5},
			expected: false,
		},
		{
			name:     "Outside (Far)",
			aabbMin:  mgl32.Vec3{-1, -1, -200},
			aabbMax:  mgl32.Vec3{1, 1, -150},
			expected: false,
		},
		{
			name:     "Intersecting (Left Plane)",
			aabbMin:  mgl32.Vec3{-15, -1, -10}, // left edge is at -10 (tan(45)*10)
			aabbMax:  mgl32.Vec3{-5, 1, -5},
			expected: true,
		},
		{
			name:     "Encompassing (Huge box)",
			aabbMin:  mgl32.Vec3{-1000, -1000, -1000},
			aabbMax:  mgl32.Vec3{1000, 1000, 1000},
			expected: true,
		},
	}

	for _, tc := range tests {
		aabb := [2]mgl32.Vec3{tc.aabbMin, tc.aabbMax}
		if visible := AABBInFrustum(aabb, planes); visible != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, visible)
			center := tc.aabbMin.Add(tc.aabbMax).Mul(0.5)
			for i, p := range planes {
				t.Logf("  P%d: %v, Dist(Center)=%f", i, p, p.Dot(center.Vec4(1.0)))
			}
		}
	}
}

func TestFrustumOrtho(t *testing.T) {
	proj := mgl32.Ortho(-10, 10, -10, 10, 0, 20)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	planes := ExtractFrustum(proj.Mul4(view))

	aabb := [2]mgl32.Vec3{{-1, -1, -6}, {1, 1, -4}}
	if !AABBInFrustum(aabb, planes) {
		t.Error("Ortho: AABB should be inside")
	}

	// Near=0 => Z=0, Far=20 => Z=-20 in view space.
	aabbFar := [2]mgl32.Vec3{{-1, -1, -26}, {1, 1, -24}}
	if AABBInFrustum(aabbFar, planes) {
		t.Error("Ortho: AABB at -25 should be outside (Far=20 => Z=-20)")
	}
}
