package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/game_object"
	"github.com/Carmen-Shannon/oxy-desk/engine/light"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/texture"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

//go:embed desk.toml
var deskDescription []byte

// ErrInvalidDescription is returned when a scene description decodes but cannot be drawn.
var ErrInvalidDescription = errors.New("invalid scene description")

// Description is the declarative content of a scene: what to define once at preparation and
// what to draw every frame, in order.
type Description struct {
	Materials []MaterialSpec   `toml:"materials"`
	Lights    []LightSpec      `toml:"lights"`
	Textures  []texture.Source `toml:"textures"`
	Objects   []ObjectSpec     `toml:"objects"`
}

// MaterialSpec describes one catalog material. AmbientStrength defaults to
// material.DefaultAmbientStrength when omitted.
type MaterialSpec struct {
	Tag             string     `toml:"tag"`
	AmbientColor    [3]float32 `toml:"ambient_color"`
	AmbientStrength *float32   `toml:"ambient_strength"`
	DiffuseColor    [3]float32 `toml:"diffuse_color"`
	SpecularColor   [3]float32 `toml:"specular_color"`
	Shininess       float32    `toml:"shininess"`
}

// LightSpec describes one light slot.
type LightSpec struct {
	Slot              int        `toml:"slot"`
	Position          [3]float32 `toml:"position"`
	AmbientColor      [3]float32 `toml:"ambient_color"`
	DiffuseColor      [3]float32 `toml:"diffuse_color"`
	SpecularColor     [3]float32 `toml:"specular_color"`
	FocalStrength     float32    `toml:"focal_strength"`
	SpecularIntensity float32    `toml:"specular_intensity"`
	Disabled          bool       `toml:"disabled"`
}

// ObjectSpec describes one drawn object. Textures are applied in order so the last one is
// what the draw samples. Color, when present, is applied before the textures.
type ObjectSpec struct {
	Name     string      `toml:"name"`
	Mesh     string      `toml:"mesh"`
	Material string      `toml:"material"`
	Textures []string    `toml:"textures"`
	Color    *[4]float32 `toml:"color"`
	UVScale  *[2]float32 `toml:"uv_scale"`
	Scale    *[3]float32 `toml:"scale"`
	Rotation [3]float32  `toml:"rotation"`
	Position [3]float32  `toml:"position"`
}

// ParseDescription decodes a TOML scene description and checks that every object names a
// known mesh kind and every light a valid slot. Unknown keys are rejected.
//
// Parameters:
//   - data: the TOML document
//
// Returns:
//   - *Description: the decoded description
//   - error: decode errors, or ErrInvalidDescription (wrapped) naming the offending entry
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode scene description: %w", err)
	}

	for i, obj := range d.Objects {
		if _, err := model.ParseMeshKind(obj.Mesh); err != nil {
			return nil, fmt.Errorf("%w: object %d (%s): %w", ErrInvalidDescription, i, obj.Name, err)
		}
	}
	for _, l := range d.Lights {
		if err := light.ValidateSlot(l.Slot); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
		}
	}
	return &d, nil
}

// DeskDescription returns the embedded desk scene.
//
// Returns:
//   - *Description: the decoded desk scene
//   - error: decode errors, which indicate a broken build
func DeskDescription() (*Description, error) {
	return ParseDescription(deskDescription)
}

// Material builds the catalog material described by m.
func (m MaterialSpec) Material() material.Material {
	strength := material.DefaultAmbientStrength
	if m.AmbientStrength != nil {
		strength = *m.AmbientStrength
	}
	return material.NewMaterial(
		material.WithTag(m.Tag),
		material.WithAmbient(mgl32.Vec3(m.AmbientColor), strength),
		material.WithDiffuseColor(mgl32.Vec3(m.DiffuseColor)),
		material.WithSpecularColor(mgl32.Vec3(m.SpecularColor)),
		material.WithShininess(m.Shininess),
	)
}

// Light builds the light described by l.
func (l LightSpec) Light() light.Light {
	return light.NewLight(l.Slot,
		light.WithPosition(l.Position[0], l.Position[1], l.Position[2]),
		light.WithAmbientColor(l.AmbientColor[0], l.AmbientColor[1], l.AmbientColor[2]),
		light.WithDiffuseColor(l.DiffuseColor[0], l.DiffuseColor[1], l.DiffuseColor[2]),
		light.WithSpecularColor(l.SpecularColor[0], l.SpecularColor[1], l.SpecularColor[2]),
		light.WithFocalStrength(l.FocalStrength),
		light.WithSpecularIntensity(l.SpecularIntensity),
		light.WithEnabled(!l.Disabled),
	)
}

// Kind returns the object's mesh kind. ParseDescription has already validated it.
func (o ObjectSpec) Kind() model.MeshKind {
	return model.MeshKind(o.Mesh)
}

// Transform returns the object's placement. An omitted scale is the identity scale.
func (o ObjectSpec) Transform() common.Transform {
	scale := mgl32.Vec3{1, 1, 1}
	if o.Scale != nil {
		scale = mgl32.Vec3(*o.Scale)
	}
	return common.Transform{
		Scale:    scale,
		Rotation: mgl32.Vec3(o.Rotation),
		Position: mgl32.Vec3(o.Position),
	}
}

// UV returns the object's texture coordinate scale, (1, 1) when omitted.
func (o ObjectSpec) UV() mgl32.Vec2 {
	if o.UVScale == nil {
		return mgl32.Vec2{1, 1}
	}
	return mgl32.Vec2(*o.UVScale)
}

// GameObject builds the drawn object described by o.
//
// Parameters:
//   - id: the object's identifier within the scene
//
// Returns:
//   - game_object.GameObject: the object
func (o ObjectSpec) GameObject(id uint64) game_object.GameObject {
	options := []game_object.GameObjectBuilderOption{
		game_object.WithID(id),
		game_object.WithName(o.Name),
		game_object.WithMesh(o.Kind()),
		game_object.WithMaterial(o.Material),
		game_object.WithTextures(o.Textures...),
		game_object.WithUVScale(o.UV()),
		game_object.WithTransform(o.Transform()),
	}
	if o.Color != nil {
		options = append(options, game_object.WithColor(mgl32.Vec4(*o.Color)))
	}
	return game_object.NewGameObject(options...)
}

// MeshKinds returns each distinct mesh kind the objects use, in first-use order.
func (d *Description) MeshKinds() []model.MeshKind {
	seen := make(map[model.MeshKind]bool)
	var kinds []model.MeshKind
	for _, obj := range d.Objects {
		k := obj.Kind()
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	return kinds
}
