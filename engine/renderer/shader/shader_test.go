package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLightSourceUniform(t *testing.T) {
	assert.Equal(t, "lightSources[0].position", LightSourceUniform(0, LightFieldPosition))
	assert.Equal(t, "lightSources[3].specularIntensity", LightSourceUniform(3, LightFieldSpecularIntensity))
}

// The embedded program must declare every name the core uploads.
func TestEmbeddedSourcesDeclareUniforms(t *testing.T) {
	vert := SceneVertexShader()
	frag := SceneFragmentShader()
	assert.Equal(t, ShaderTypeVertex, vert.Type())
	assert.Equal(t, ShaderTypeFragment, frag.Type())

	for _, name := range []string{UniformModel, UniformView, UniformProjection} {
		assert.Contains(t, vert.Source(), "uniform mat4 "+name+";")
	}

	for _, decl := range []string{
		"uniform bool " + UniformUseTexture + ";",
		"uniform bool " + UniformUseLighting + ";",
		"uniform vec4 " + UniformObjectColor + ";",
		"uniform sampler2D " + UniformObjectTexture + ";",
		"uniform vec3 " + UniformViewPosition + ";",
		"uniform vec2 " + UniformUVScale + ";",
		"uniform Material material;",
		"uniform LightSource lightSources[TOTAL_LIGHTS];",
		"#define TOTAL_LIGHTS 4",
	} {
		assert.Contains(t, frag.Source(), decl)
	}

	for _, field := range []string{
		LightFieldPosition, LightFieldAmbientColor, LightFieldDiffuseColor,
		LightFieldSpecularColor, LightFieldFocalStrength, LightFieldSpecularIntensity,
	} {
		assert.Contains(t, frag.Source(), " "+field+";")
	}
}

func TestRecorderKeepsLastValueAndLog(t *testing.T) {
	r := NewRecorder()
	r.SetBool(UniformUseTexture, false)
	r.SetVec4(UniformObjectColor, mgl32.Vec4{1, 0, 0, 1})
	r.SetBool(UniformUseTexture, true)
	r.SetSampler2D(UniformObjectTexture, 3)

	v, ok := r.Value(UniformUseTexture)
	require.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = r.Value(UniformObjectTexture)
	require.True(t, ok)
	assert.Equal(t, int32(3), v)

	assert.Len(t, r.Writes(), 4)
	assert.Equal(t, UniformObjectColor, r.Writes()[1].Name)

	r.Reset()
	_, ok = r.Value(UniformUseTexture)
	assert.False(t, ok)
	assert.Empty(t, r.Writes())
}
