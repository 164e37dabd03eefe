package shader

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared with the embedded GLSL program. Renaming any of these without updating
// shaders/scene.vert and shaders/scene.frag breaks rendering silently.
const (
	UniformModel        = "model"
	UniformView         = "view"
	UniformProjection   = "projection"
	UniformViewPosition = "viewPosition"

	UniformObjectColor   = "objectColor"
	UniformObjectTexture = "objectTexture"
	UniformUseTexture    = "bUseTexture"
	UniformUseLighting   = "bUseLighting"
	UniformUVScale       = "UVscale"

	UniformMaterialAmbientColor    = "material.ambientColor"
	UniformMaterialAmbientStrength = "material.ambientStrength"
	UniformMaterialDiffuseColor    = "material.diffuseColor"
	UniformMaterialSpecularColor   = "material.specularColor"
	UniformMaterialShininess       = "material.shininess"
)

// MaxLightSources is the size of the lightSources array declared by the fragment shader.
const MaxLightSources = 4

// Light source struct fields declared by the fragment shader.
const (
	LightFieldPosition          = "position"
	LightFieldAmbientColor      = "ambientColor"
	LightFieldDiffuseColor      = "diffuseColor"
	LightFieldSpecularColor     = "specularColor"
	LightFieldFocalStrength     = "focalStrength"
	LightFieldSpecularIntensity = "specularIntensity"
)

// LightSourceUniform returns the uniform name of a field of the light source at slot.
//
// Parameters:
//   - slot: the light slot index, 0 to MaxLightSources-1
//   - field: one of the LightField* constants
//
// Returns:
//   - string: the uniform name, e.g. "lightSources[2].position"
func LightSourceUniform(slot int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", slot, field)
}

// Uniforms is the name-addressed shader state sink. Every setter writes a single uniform of the
// currently active program; names that the program does not declare are ignored.
type Uniforms interface {
	// SetMat4 writes a mat4 uniform.
	SetMat4(name string, value mgl32.Mat4)

	// SetVec2 writes a vec2 uniform.
	SetVec2(name string, value mgl32.Vec2)

	// SetVec3 writes a vec3 uniform.
	SetVec3(name string, value mgl32.Vec3)

	// SetVec4 writes a vec4 uniform.
	SetVec4(name string, value mgl32.Vec4)

	// SetFloat writes a float uniform.
	SetFloat(name string, value float32)

	// SetInt writes an int uniform.
	SetInt(name string, value int32)

	// SetBool writes a bool uniform (uploaded as an int).
	SetBool(name string, value bool)

	// SetSampler2D writes the texture unit a sampler2D reads from.
	SetSampler2D(name string, unit int32)
}
