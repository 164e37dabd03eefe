package scene

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/game_object"
	"github.com/Carmen-Shannon/oxy-desk/engine/light"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/texture"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultAssetsDir is where texture files are looked up when WithAssetsDir is not given.
const DefaultAssetsDir = "assets/textures"

// DefaultColor is drawn for objects that set neither a color nor a texture.
var DefaultColor = mgl32.Vec4{1, 1, 1, 1}

var (
	// ErrNotPrepared is returned by Render before Prepare has succeeded.
	ErrNotPrepared = errors.New("scene not prepared")

	// ErrAlreadyPrepared is returned by a second call to Prepare.
	ErrAlreadyPrepared = errors.New("scene already prepared")
)

// scene is the implementation of the Scene interface.
type scene struct {
	uniforms    shader.Uniforms
	textures    texture.Registry
	meshes      model.Meshes
	catalog     material.Catalog
	fallback    material.Material
	rig         *light.Rig
	description *Description
	objects     []game_object.GameObject
	assetsDir   string

	prepared bool
}

// Scene owns the material catalog, the light slots and the object list of a scene, and draws
// the objects every frame by setting shader state before each draw.
// Not safe for concurrent use; every method must run on the thread owning the GL context with
// the scene program in use.
type Scene interface {
	// Prepare defines the materials, uploads the light slots and enables lighting, loads and
	// binds the textures, and loads each distinct mesh kind the objects use exactly once.
	// Texture failures are logged and skipped; objects using a missing texture sample slot -1.
	// A failed Prepare releases what it loaded, so Prepare may be called again. So may a Prepare
	// after Destroy.
	//
	// Returns:
	//   - error: description, material, light or mesh errors, or ErrAlreadyPrepared
	Prepare() error

	// Render draws every enabled object in authored order. For each object the material, the
	// model matrix, the color or textures and the UV scale are uploaded before the draw.
	// Objects with an unresolved material draw with material.Default, and objects with neither
	// color nor textures draw in DefaultColor.
	//
	// Returns:
	//   - error: ErrNotPrepared, or a draw error naming the object
	Render() error

	// SetTransform uploads the model matrix T * Rx * Ry * Rz * S.
	//
	// Parameters:
	//   - scale: per-axis scale
	//   - rotX, rotY, rotZ: rotation angles in degrees
	//   - position: world-space translation
	SetTransform(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3)

	// SetColor switches the next draw to a flat color.
	SetColor(r, g, b, a float32)

	// SetTexture switches the next draw to the texture registered under tag. An unknown tag
	// still enables texturing and uploads slot -1.
	SetTexture(tag string)

	// SetUVScale uploads the texture coordinate scale.
	SetUVScale(u, v float32)

	// SetMaterial uploads the material registered under tag. Unknown tags upload nothing.
	SetMaterial(tag string)

	// Description returns the scene content.
	Description() *Description

	// Objects returns the drawn objects in draw order. Changes to them show on the next Render.
	Objects() []game_object.GameObject

	// Object returns the first object with the given name, or nil.
	Object(name string) game_object.GameObject

	// Materials returns the material catalog.
	Materials() material.Catalog

	// Lights returns the light slots, or nil before Prepare.
	Lights() *light.Rig

	// Textures returns the texture registry.
	Textures() texture.Registry

	// Destroy releases the mesh buffers and textures. Calling it again is a no-op.
	Destroy()
}

var _ Scene = &scene{}

// NewScene creates a scene drawing through the given uniform sink, texture registry and mesh set.
// Without WithDescription it draws the embedded desk scene.
//
// Parameters:
//   - uniforms: the uniform sink of the scene program
//   - textures: the texture registry
//   - meshes: the mesh set
//   - options: optional SceneBuilderOption functions
//
// Returns:
//   - Scene: the scene
//   - error: error if the embedded description cannot be decoded
func NewScene(uniforms shader.Uniforms, textures texture.Registry, meshes model.Meshes, options ...SceneBuilderOption) (Scene, error) {
	s := &scene{
		uniforms: uniforms,
		textures: textures,
		meshes:   meshes,
		catalog:  material.NewCatalog(),
		fallback: material.Default(),
	}
	for _, opt := range options {
		opt(s)
	}
	s.assetsDir = common.Coalesce(s.assetsDir, DefaultAssetsDir)

	if s.description == nil {
		d, err := DeskDescription()
		if err != nil {
			return nil, err
		}
		s.description = d
	}

	s.objects = make([]game_object.GameObject, 0, len(s.description.Objects))
	for i, spec := range s.description.Objects {
		s.objects = append(s.objects, spec.GameObject(uint64(i+1)))
	}
	return s, nil
}

func (s *scene) Prepare() error {
	if s.prepared {
		return ErrAlreadyPrepared
	}
	d := s.description

	materials := make([]material.Material, 0, len(d.Materials))
	for _, m := range d.Materials {
		materials = append(materials, m.Material())
	}
	catalog := material.NewCatalog()
	if err := catalog.Define(materials...); err != nil {
		return fmt.Errorf("failed to define materials: %w", err)
	}

	lights := make([]light.Light, 0, len(d.Lights))
	for _, l := range d.Lights {
		lights = append(lights, l.Light())
	}
	rig, err := light.NewRig(lights...)
	if err != nil {
		return fmt.Errorf("failed to configure lights: %w", err)
	}

	sources := make([]texture.Source, 0, len(d.Textures))
	for _, src := range d.Textures {
		if !filepath.IsAbs(src.Path) {
			src.Path = filepath.Join(s.assetsDir, src.Path)
		}
		sources = append(sources, src)
	}
	loaded := s.textures.LoadAll(sources)
	s.textures.BindAll()

	kinds := d.MeshKinds()
	for _, kind := range kinds {
		if err := s.meshes.Load(kind); err != nil {
			s.meshes.Destroy()
			s.textures.Destroy()
			return fmt.Errorf("failed to load %s mesh: %w", kind, err)
		}
	}

	s.catalog = catalog
	s.rig = rig
	s.rig.Apply(s.uniforms)
	s.prepared = true
	log.Printf("[Scene] Prepared %d materials, %d lights, %d/%d textures, %d meshes, %d objects",
		s.catalog.Len(), s.rig.Len(), loaded, len(sources), len(kinds), len(s.objects))
	return nil
}

func (s *scene) Render() error {
	if !s.prepared {
		return ErrNotPrepared
	}
	for _, obj := range s.objects {
		if !obj.Enabled() {
			continue
		}
		m, ok := s.catalog.Find(obj.Material())
		if !ok {
			m = s.fallback
		}
		material.Apply(m, s.uniforms)
		s.uniforms.SetMat4(shader.UniformModel, obj.ModelMatrix())
		c, hasColor := obj.Color()
		if !hasColor && len(obj.Textures()) == 0 {
			c, hasColor = DefaultColor, true
		}
		if hasColor {
			s.SetColor(c[0], c[1], c[2], c[3])
		}
		for _, tag := range obj.Textures() {
			s.SetTexture(tag)
		}
		uv := obj.UVScale()
		s.SetUVScale(uv[0], uv[1])

		if err := s.meshes.Draw(obj.Mesh()); err != nil {
			return fmt.Errorf("failed to draw %s: %w", obj.Name(), err)
		}
	}
	return nil
}

func (s *scene) SetTransform(scale mgl32.Vec3, rotX, rotY, rotZ float32, position mgl32.Vec3) {
	s.uniforms.SetMat4(shader.UniformModel, common.BuildModelMatrix(scale, rotX, rotY, rotZ, position))
}

func (s *scene) SetColor(r, g, b, a float32) {
	s.uniforms.SetBool(shader.UniformUseTexture, false)
	s.uniforms.SetVec4(shader.UniformObjectColor, mgl32.Vec4{r, g, b, a})
}

func (s *scene) SetTexture(tag string) {
	s.uniforms.SetBool(shader.UniformUseTexture, true)
	s.uniforms.SetSampler2D(shader.UniformObjectTexture, int32(s.textures.FindSlot(tag)))
}

func (s *scene) SetUVScale(u, v float32) {
	s.uniforms.SetVec2(shader.UniformUVScale, mgl32.Vec2{u, v})
}

func (s *scene) SetMaterial(tag string) {
	if m, ok := s.catalog.Find(tag); ok {
		material.Apply(m, s.uniforms)
	}
}

func (s *scene) Description() *Description {
	return s.description
}

func (s *scene) Objects() []game_object.GameObject {
	return s.objects
}

func (s *scene) Object(name string) game_object.GameObject {
	for _, obj := range s.objects {
		if obj.Name() == name {
			return obj
		}
	}
	return nil
}

func (s *scene) Materials() material.Catalog {
	return s.catalog
}

func (s *scene) Lights() *light.Rig {
	return s.rig
}

func (s *scene) Textures() texture.Registry {
	return s.textures
}

func (s *scene) Destroy() {
	s.meshes.Destroy()
	s.textures.Destroy()
	s.prepared = false
}
