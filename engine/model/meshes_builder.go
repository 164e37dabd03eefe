package model

// MeshesBuilderOption is a function that configures a Meshes instance during construction.
type MeshesBuilderOption func(*meshesImpl)

// WithCylinderSlices is an option builder that sets the number of segments around the cylinder axis.
//
// Parameters:
//   - slices: segment count, values below 3 are raised to 3
//
// Returns:
//   - MeshesBuilderOption: a function that applies the option to a meshesImpl
func WithCylinderSlices(slices int) MeshesBuilderOption {
	return func(m *meshesImpl) {
		m.cylinderSlices = slices
	}
}

// WithSphereSegments is an option builder that sets the sphere tessellation.
//
// Parameters:
//   - slices: segments around the Y axis
//   - stacks: segments from pole to pole
//
// Returns:
//   - MeshesBuilderOption: a function that applies the option to a meshesImpl
func WithSphereSegments(slices, stacks int) MeshesBuilderOption {
	return func(m *meshesImpl) {
		m.sphereSlices = slices
		m.sphereStacks = stacks
	}
}
