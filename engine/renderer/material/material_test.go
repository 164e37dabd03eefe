package material

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func desk() Material {
	return NewMaterial(
		WithTag("DeskMaterial"),
		WithAmbientColor(mgl32.Vec3{0.6, 0.3, 0.1}),
		WithDiffuseColor(mgl32.Vec3{0.6, 0.3, 0.1}),
		WithSpecularColor(mgl32.Vec3{0.3, 0.2, 0.1}),
		WithShininess(8),
	)
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(WithTag("plain"))
	assert.Equal(t, DefaultAmbientStrength, m.AmbientStrength())
	assert.Equal(t, mgl32.Vec3{}, m.DiffuseColor())

	m = NewMaterial(WithAmbient(mgl32.Vec3{1, 1, 1}, 0.4))
	assert.Equal(t, float32(0.4), m.AmbientStrength())
}

func TestDefaultIsMatteWhite(t *testing.T) {
	m := Default()
	assert.Equal(t, DefaultTag, m.Tag())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.DiffuseColor())
	assert.Equal(t, DefaultAmbientStrength, m.AmbientStrength())
	assert.Equal(t, mgl32.Vec3{}, m.SpecularColor())
	assert.Equal(t, float32(0), m.Shininess())
}

func TestCatalogFind(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Define(desk()))

	m, ok := c.Find("DeskMaterial")
	require.True(t, ok)
	assert.Equal(t, float32(8), m.Shininess())

	_, ok = c.Find("deskmaterial")
	assert.False(t, ok)
	_, ok = c.Find("")
	assert.False(t, ok)
}

func TestEmptyCatalogFindsNothing(t *testing.T) {
	var c *catalog
	_, ok := c.Find("DeskMaterial")
	assert.False(t, ok)

	_, ok = NewCatalog().Find("DeskMaterial")
	assert.False(t, ok)
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	require.NoError(t, c.Define(desk()))
	assert.ErrorIs(t, c.Define(desk()), ErrDuplicateTag)

	other := NewMaterial(WithTag("Stand"))
	assert.ErrorIs(t, c.Define(other, NewMaterial(WithTag("Stand"))), ErrDuplicateTag)
	_, ok := c.Find("Stand")
	assert.False(t, ok, "a rejected batch adds nothing")

	assert.ErrorIs(t, c.Define(NewMaterial()), ErrEmptyTag)
	assert.Equal(t, []string{"DeskMaterial"}, c.Tags())
}

func TestApplyUploadsMaterialStruct(t *testing.T) {
	rec := shader.NewRecorder()
	Apply(desk(), rec)

	want := map[string]any{
		shader.UniformMaterialAmbientColor:    mgl32.Vec3{0.6, 0.3, 0.1},
		shader.UniformMaterialAmbientStrength: DefaultAmbientStrength,
		shader.UniformMaterialDiffuseColor:    mgl32.Vec3{0.6, 0.3, 0.1},
		shader.UniformMaterialSpecularColor:   mgl32.Vec3{0.3, 0.2, 0.1},
		shader.UniformMaterialShininess:       float32(8),
	}
	for name, v := range want {
		got, ok := rec.Value(name)
		require.True(t, ok, name)
		assert.Equal(t, v, got, name)
	}
	assert.Len(t, rec.Writes(), 5)
}
