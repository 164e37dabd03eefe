package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform describes an object placement in world space.
// Rotation is expressed in degrees around the X, Y and Z axes.
type Transform struct {
	// Scale is the per-axis scale factor applied in local space.
	Scale mgl32.Vec3
	// Rotation holds the X, Y and Z rotation angles in degrees.
	Rotation mgl32.Vec3
	// Position is the world-space translation.
	Position mgl32.Vec3
}

// Matrix composes the transform into a model matrix. See BuildModelMatrix.
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func (t Transform) Matrix() mgl32.Mat4 {
	return BuildModelMatrix(t.Scale, t.Rotation[0], t.Rotation[1], t.Rotation[2], t.Position)
}

// BuildModelMatrix constructs a 4x4 model matrix from scale, Euler rotation and translation.
// The composition is Translation * RotX * RotY * RotZ * Scale, so a local vertex is scaled first,
// then rotated around Z, Y and X in that order, then translated. All matrices are column-major.
//
// Parameters:
//   - scale: scale factors along each axis
//   - rotX, rotY, rotZ: rotation angles in degrees around each axis
//   - position: translation in world space
//
// Returns:
//   - mgl32.Mat4: the composed model matrix
func BuildModelMatrix(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3) mgl32.Mat4 {
	translation := mgl32.Translate3D(position[0], position[1], position[2])
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(rotX))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(rotY))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZ))
	scaling := mgl32.Scale3D(scale[0], scale[1], scale[2])

	return translation.Mul4(rotationX).Mul4(rotationY).Mul4(rotationZ).Mul4(scaling)
}

// TransformPoint applies a 4x4 matrix to a point (w = 1) and returns the resulting position.
//
// Parameters:
//   - m: the matrix to apply
//   - p: the point in the matrix's source space
//
// Returns:
//   - mgl32.Vec3: the transformed point
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// OrthoBounds computes symmetric orthographic bounds with the given half extent, shrinking the
// shorter screen axis by the aspect ratio so the projection is never stretched.
//
// Parameters:
//   - halfExtent: half width/height of the view volume along the longer screen axis
//   - width, height: viewport size in pixels
//
// Returns:
//   - left, right, bottom, top: the orthographic view volume bounds
func OrthoBounds(halfExtent float32, width, height int) (left, right, bottom, top float32) {
	switch {
	case width > height:
		scale := float32(height) / float32(width)
		return -halfExtent, halfExtent, -halfExtent * scale, halfExtent * scale
	case width < height:
		scale := float32(width) / float32(height)
		return -halfExtent * scale, halfExtent * scale, -halfExtent, halfExtent
	default:
		return -halfExtent, halfExtent, -halfExtent, halfExtent
	}
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
