package light

import (
	"github.com/go-gl/mathgl/mgl32"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	slot              int
	position          mgl32.Vec3
	ambientColor      mgl32.Vec3
	diffuseColor      mgl32.Vec3
	specularColor     mgl32.Vec3
	focalStrength     float32
	specularIntensity float32
	enabled           bool
}

// Light defines the interface for a point light occupying one of the fixed light slots
// of the scene program.
//
// Each light contributes ambient, diffuse and specular terms. The specular term is scaled by
// the specular intensity and sharpened by the focal strength when the lit material does not
// carry its own shininess.
type Light interface {
	// Slot returns the index into the shader's light array this light occupies.
	//
	// Returns:
	//   - int: the slot, 0 to shader.MaxLightSources-1
	Slot() int

	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position as (x, y, z)
	Position() mgl32.Vec3

	// AmbientColor returns the RGB color added to every lit fragment.
	AmbientColor() mgl32.Vec3

	// DiffuseColor returns the RGB color of direct illumination.
	DiffuseColor() mgl32.Vec3

	// SpecularColor returns the RGB color of highlights.
	SpecularColor() mgl32.Vec3

	// FocalStrength returns the specular exponent used when the material has none.
	FocalStrength() float32

	// SpecularIntensity returns the scalar applied to the specular term.
	SpecularIntensity() float32

	// Enabled returns whether this light is active for rendering.
	// Disabled lights are uploaded as black so they contribute nothing.
	//
	// Returns:
	//   - bool: true if the light is enabled
	Enabled() bool

	// SetPosition sets the world-space position of the light.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetEnabled enables or disables the light for rendering.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)
}

var _ Light = &lightImpl{}

// NewLight creates a new white Light at the origin for the given slot, with any provided
// options applied.
//
// Parameters:
//   - slot: the shader light slot the light occupies
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(slot int, opts ...LightBuilderOption) Light {
	l := &lightImpl{
		slot:              slot,
		ambientColor:      mgl32.Vec3{0.1, 0.1, 0.1},
		diffuseColor:      mgl32.Vec3{1, 1, 1},
		specularColor:     mgl32.Vec3{1, 1, 1},
		focalStrength:     32,
		specularIntensity: 1,
		enabled:           true,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Slot() int {
	return l.slot
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) AmbientColor() mgl32.Vec3 {
	return l.ambientColor
}

func (l *lightImpl) DiffuseColor() mgl32.Vec3 {
	return l.diffuseColor
}

func (l *lightImpl) SpecularColor() mgl32.Vec3 {
	return l.specularColor
}

func (l *lightImpl) FocalStrength() float32 {
	return l.focalStrength
}

func (l *lightImpl) SpecularIntensity() float32 {
	return l.specularIntensity
}

func (l *lightImpl) Enabled() bool {
	return l.enabled
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = mgl32.Vec3{x, y, z}
}

func (l *lightImpl) SetEnabled(enabled bool) {
	l.enabled = enabled
}
