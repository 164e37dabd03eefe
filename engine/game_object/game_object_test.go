package game_object

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	obj := NewGameObject()
	assert.True(t, obj.Enabled())
	assert.Equal(t, model.MeshBox, obj.Mesh())
	assert.Equal(t, mgl32.Vec2{1, 1}, obj.UVScale())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, obj.Transform().Scale)
	_, ok := obj.Color()
	assert.False(t, ok)
}

func TestOptions(t *testing.T) {
	obj := NewGameObject(
		WithID(7),
		WithName("speaker_dome"),
		WithMesh(model.MeshSphere),
		WithMaterial("SpeakerMaterial"),
		WithTextures("Whitemarb"),
		WithColor(mgl32.Vec4{1, 1, 1, 1}),
		WithScale(0.2, 0.15, 0.2),
		WithPosition(-1.3, 1.73, 0.3),
		WithEnabled(false),
	)

	assert.Equal(t, uint64(7), obj.ID())
	assert.Equal(t, "speaker_dome", obj.Name())
	assert.Equal(t, model.MeshSphere, obj.Mesh())
	assert.Equal(t, "SpeakerMaterial", obj.Material())
	assert.Equal(t, []string{"Whitemarb"}, obj.Textures())
	assert.False(t, obj.Enabled())

	c, ok := obj.Color()
	assert.True(t, ok)
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, c)

	want := common.BuildModelMatrix(mgl32.Vec3{0.2, 0.15, 0.2}, 0, 0, 0, mgl32.Vec3{-1.3, 1.73, 0.3})
	assert.Equal(t, want, obj.ModelMatrix())
}

func TestSetters(t *testing.T) {
	obj := NewGameObject(WithColor(mgl32.Vec4{1, 0, 0, 1}))

	tags := []string{"a", "b"}
	obj.SetTextures(tags...)
	tags[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, obj.Textures())

	obj.ClearColor()
	_, ok := obj.Color()
	assert.False(t, ok)

	obj.SetRotation(0, 90, 0)
	obj.SetScale(2, 2, 2)
	obj.SetPosition(1, 2, 3)
	obj.SetUVScale(4, 4)
	obj.SetMaterial("m")
	obj.SetEnabled(false)

	assert.Equal(t, common.Transform{
		Scale:    mgl32.Vec3{2, 2, 2},
		Rotation: mgl32.Vec3{0, 90, 0},
		Position: mgl32.Vec3{1, 2, 3},
	}, obj.Transform())
	assert.Equal(t, mgl32.Vec2{4, 4}, obj.UVScale())
	assert.Equal(t, "m", obj.Material())
	assert.False(t, obj.Enabled())
}
