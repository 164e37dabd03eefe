package material

import "github.com/go-gl/mathgl/mgl32"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithTag is an option builder that sets the tag the material is looked up by.
//
// Parameters:
//   - tag: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the tag option to a material
func WithTag(tag string) MaterialBuilderOption {
	return func(m *material) {
		m.tag = tag
	}
}

// WithAmbient is an option builder that sets the ambient color and strength of the material.
//
// Parameters:
//   - color: the ambient RGB color
//   - strength: the ambient strength scalar
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient option to a material
func WithAmbient(color mgl32.Vec3, strength float32) MaterialBuilderOption {
	return func(m *material) {
		m.ambientColor = color
		m.ambientStrength = strength
	}
}

// WithAmbientColor is an option builder that sets the ambient color, keeping the ambient strength.
//
// Parameters:
//   - color: the ambient RGB color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the ambient color option to a material
func WithAmbientColor(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.ambientColor = color
	}
}

// WithDiffuseColor is an option builder that sets the diffuse color of the material.
//
// Parameters:
//   - color: the diffuse RGB color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the diffuse color option to a material
func WithDiffuseColor(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.diffuseColor = color
	}
}

// WithSpecularColor is an option builder that sets the specular color of the material.
//
// Parameters:
//   - color: the specular RGB color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the specular color option to a material
func WithSpecularColor(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.specularColor = color
	}
}

// WithShininess is an option builder that sets the specular exponent of the material.
//
// Parameters:
//   - shininess: the specular exponent
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}
