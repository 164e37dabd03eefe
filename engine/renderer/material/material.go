package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAmbientStrength is used when a material does not set its ambient strength.
const DefaultAmbientStrength float32 = 0.1

// material is the implementation of the Material interface.
type material struct {
	tag             string
	ambientColor    mgl32.Vec3
	ambientStrength float32
	diffuseColor    mgl32.Vec3
	specularColor   mgl32.Vec3
	shininess       float32
}

// Material is a tagged set of Phong surface parameters. Materials are immutable once built.
type Material interface {
	// Tag retrieves the material identifier.
	//
	// Returns:
	//   - string: the tag of the material
	Tag() string

	// AmbientColor retrieves the RGB color reflected under ambient light.
	//
	// Returns:
	//   - mgl32.Vec3: the ambient color
	AmbientColor() mgl32.Vec3

	// AmbientStrength retrieves the scalar applied to the ambient term.
	//
	// Returns:
	//   - float32: the ambient strength
	AmbientStrength() float32

	// DiffuseColor retrieves the RGB color reflected under direct light.
	//
	// Returns:
	//   - mgl32.Vec3: the diffuse color
	DiffuseColor() mgl32.Vec3

	// SpecularColor retrieves the RGB color of specular highlights.
	//
	// Returns:
	//   - mgl32.Vec3: the specular color
	SpecularColor() mgl32.Vec3

	// Shininess retrieves the specular exponent. Higher values give tighter highlights.
	//
	// Returns:
	//   - float32: the shininess
	Shininess() float32
}

var _ Material = &material{}

// DefaultTag is the tag of the material returned by Default.
const DefaultTag = "default"

// Default returns a plain white matte material with no specular highlight. It is drawn with
// objects whose material tag does not resolve.
//
// Returns:
//   - Material: the default material
func Default() Material {
	white := mgl32.Vec3{1, 1, 1}
	return NewMaterial(
		WithTag(DefaultTag),
		WithAmbientColor(white),
		WithDiffuseColor(white),
	)
}

// NewMaterial creates a new Material with the provided options.
// Colors default to black and the ambient strength to DefaultAmbientStrength.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: the newly created Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		ambientStrength: DefaultAmbientStrength,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Tag() string {
	return m.tag
}

func (m *material) AmbientColor() mgl32.Vec3 {
	return m.ambientColor
}

func (m *material) AmbientStrength() float32 {
	return m.ambientStrength
}

func (m *material) DiffuseColor() mgl32.Vec3 {
	return m.diffuseColor
}

func (m *material) SpecularColor() mgl32.Vec3 {
	return m.specularColor
}

func (m *material) Shininess() float32 {
	return m.shininess
}
