package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d of %v", i, got)
	}
}

func TestBuildModelMatrixScaleThenTranslate(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{2, 1, 1}, 0, 0, 0, mgl32.Vec3{1, 0, 0})

	assertVecNear(t, mgl32.Vec3{1, 0, 0}, TransformPoint(m, mgl32.Vec3{0, 0, 0}))
	assertVecNear(t, mgl32.Vec3{3, 0, 0}, TransformPoint(m, mgl32.Vec3{1, 0, 0}))
}

func TestBuildModelMatrixRotationOrder(t *testing.T) {
	// Z is applied first, then Y, then X.
	m := BuildModelMatrix(mgl32.Vec3{1, 1, 1}, 90, 90, 0, mgl32.Vec3{})

	// +X --RotY(90)--> -Z --RotX(90)--> +Y
	assertVecNear(t, mgl32.Vec3{0, 1, 0}, TransformPoint(m, mgl32.Vec3{1, 0, 0}))

	want := mgl32.HomogRotate3DX(mgl32.DegToRad(90)).Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	assert.True(t, want.ApproxEqualThreshold(m, 1e-5))
}

func TestBuildModelMatrixScaleBeforeRotation(t *testing.T) {
	m := BuildModelMatrix(mgl32.Vec3{3, 1, 1}, 0, 0, 90, mgl32.Vec3{0, 5, 0})

	// Scaled along local X, then rotated onto +Y, then translated.
	assertVecNear(t, mgl32.Vec3{0, 8, 0}, TransformPoint(m, mgl32.Vec3{1, 0, 0}))
}

func TestTransformMatrixMatchesBuildModelMatrix(t *testing.T) {
	tr := Transform{
		Scale:    mgl32.Vec3{0.3, 1.5, 0.6},
		Rotation: mgl32.Vec3{10, 20, 30},
		Position: mgl32.Vec3{-2, 2.25, 0.25},
	}
	assert.Equal(t, BuildModelMatrix(tr.Scale, 10, 20, 30, tr.Position), tr.Matrix())
}

func TestOrthoBounds(t *testing.T) {
	tests := []struct {
		name                     string
		width, height            int
		left, right, bottom, top float32
	}{
		{"landscape", 1000, 800, -5, 5, -4, 4},
		{"portrait", 800, 1000, -4, 4, -5, 5},
		{"square", 600, 600, -5, 5, -5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, r, b, top := OrthoBounds(5, tt.width, tt.height)
			assert.InDelta(t, tt.left, l, 1e-6)
			assert.InDelta(t, tt.right, r, 1e-6)
			assert.InDelta(t, tt.bottom, b, 1e-6)
			assert.InDelta(t, tt.top, top, 1e-6)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(1), Clamp(0.5, 1, 45))
	assert.Equal(t, float32(45), Clamp(46, 1, 45))
	assert.Equal(t, float32(10), Clamp(10, 1, 45))
}
