package view

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/camera"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

type fakeInput struct {
	held   map[uint32]bool
	now    float64
	closed bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[uint32]bool)}
}

func (f *fakeInput) KeyPressed(keyCode uint32) bool { return f.held[keyCode] }
func (f *fakeInput) RequestClose()                  { f.closed = true }
func (f *fakeInput) Time() float64                  { return f.now }

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestEscapeRequestsClose(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	in := newFakeInput()

	v.ProcessInput(in)
	assert.False(t, in.closed)

	in.held[common.KeyEsc] = true
	v.ProcessInput(in)
	assert.True(t, in.closed)
}

func TestFirstPrepareFrameHasZeroDelta(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	in := newFakeInput()
	in.now = 42

	v.PrepareFrame(in)
	assert.Equal(t, float32(0), v.DeltaTime())

	in.now = 42.5
	v.PrepareFrame(in)
	assert.InDelta(t, 0.5, v.DeltaTime(), eps)
}

func TestKeysMoveByDeltaTime(t *testing.T) {
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController(
		camera.WithPosition(0, 0, 0),
		camera.WithFront(0, 0, -1),
		camera.WithMovementSpeed(2),
	)))
	v := NewViewController(shader.NewRecorder(), WithCamera(cam))
	in := newFakeInput()

	v.PrepareFrame(in)
	in.held[common.KeyW] = true
	in.now = 0.5
	v.PrepareFrame(in)
	assertVec3(t, mgl32.Vec3{0, 0, -1}, cam.Controller().Position())

	in.held[common.KeyW] = false
	in.held[common.KeyQ] = true
	in.now = 1
	v.PrepareFrame(in)
	assertVec3(t, mgl32.Vec3{0, 1, -1}, cam.Controller().Position())
}

func TestFirstMouseMoveOnlySeeds(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	ctrl := v.Camera().Controller()
	yaw, pitch := ctrl.Yaw(), ctrl.Pitch()

	v.OnMouseMove(500, 400)
	assert.Equal(t, yaw, ctrl.Yaw())
	assert.Equal(t, pitch, ctrl.Pitch())

	// Moving the cursor up by 10 pixels raises the pitch by 10 * sensitivity.
	v.OnMouseMove(510, 390)
	assert.InDelta(t, yaw+1, ctrl.Yaw(), eps)
	assert.InDelta(t, pitch+1, ctrl.Pitch(), eps)
}

func TestMousePitchStaysClamped(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	ctrl := v.Camera().Controller()

	v.OnMouseMove(0, 0)
	v.OnMouseMove(0, -100000)
	assert.Equal(t, float32(89), ctrl.Pitch())

	v.OnMouseMove(0, 100000)
	assert.Equal(t, float32(-89), ctrl.Pitch())
}

func TestScrollClampsSpeed(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	ctrl := v.Camera().Controller()

	v.OnScroll(1)
	assert.InDelta(t, 3.5, ctrl.MovementSpeed(), eps)

	v.OnScroll(-100)
	assert.Equal(t, float32(1), ctrl.MovementSpeed())

	v.OnScroll(100)
	assert.Equal(t, float32(45), ctrl.MovementSpeed())
}

func TestPresetKeysSwitchProjection(t *testing.T) {
	rec := shader.NewRecorder()
	v := NewViewController(rec)
	in := newFakeInput()
	cam := v.Camera()

	in.held[common.Key3] = true
	v.PrepareFrame(in)
	assert.Equal(t, camera.ProjectionOrthographic, cam.Projection())
	assertVec3(t, PresetTop.Position, cam.Controller().Position())
	assertVec3(t, PresetTop.Front, cam.Controller().Front())

	// The uploaded projection is the orthographic one.
	proj, ok := rec.Value(shader.UniformProjection)
	require.True(t, ok)
	l, r, b, top := common.OrthoBounds(cam.OrthoHalfExtent(), 1000, 800)
	assert.Equal(t, mgl32.Ortho(l, r, b, top, cam.Near(), cam.Far()), proj)

	// Fly and look around so the perspective preset has something to undo.
	in.held[common.Key3] = false
	in.held[common.KeyW] = true
	in.now = 1
	v.PrepareFrame(in)
	in.held[common.KeyW] = false
	v.OnMouseMove(0, 0)
	v.OnMouseMove(200, 50)
	cam.SetZoom(30)
	require.NotEqual(t, PresetTop.Position, cam.Controller().Position())
	require.NotEqual(t, PresetTop.Front, cam.Controller().Front())

	// Perspective preset resets the pose and zoom instead of building on them.
	in.held[common.KeyP] = true
	in.now = 1.5
	v.PrepareFrame(in)

	ctrl := cam.Controller()
	assert.Equal(t, camera.ProjectionPerspective, cam.Projection())
	assert.Equal(t, float32(80), cam.Zoom())
	assertVec3(t, PresetPerspective.Position, ctrl.Position())
	assertVec3(t, mgl32.Vec3{0, 5.5, 8}, ctrl.Position())
	assertVec3(t, mgl32.Vec3{0, -0.5, -2}.Normalize(), ctrl.Front())
	assertVec3(t, mgl32.Vec3{0, 1, 0}, ctrl.Up())

	// The preset front is stored as a unit vector.
	assert.InDelta(t, 1, ctrl.Front().Len(), eps)

	view, ok := rec.Value(shader.UniformView)
	require.True(t, ok)
	target := PresetPerspective.Position.Add(PresetPerspective.Front.Normalize())
	want := mgl32.LookAtV(PresetPerspective.Position, target, PresetPerspective.Up)
	for i := range 16 {
		assert.InDelta(t, want[i], view.(mgl32.Mat4)[i], eps)
	}
}

func TestOrthographicPresetsKeepZoom(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	v.Camera().SetZoom(45)

	for _, p := range []Preset{PresetFront, PresetSide, PresetTop} {
		v.ApplyPreset(p)
		assert.Equal(t, camera.ProjectionOrthographic, v.Camera().Projection(), p.Name)
		assert.Equal(t, float32(45), v.Camera().Zoom(), p.Name)
		assertVec3(t, p.Position, v.Camera().Controller().Position())
	}
}

func TestPrepareFrameUploadsViewState(t *testing.T) {
	rec := shader.NewRecorder()
	v := NewViewController(rec)
	v.PrepareFrame(newFakeInput())

	cam := v.Camera()
	view, ok := rec.Value(shader.UniformView)
	require.True(t, ok)
	assert.Equal(t, cam.ViewMatrix(), view)

	proj, ok := rec.Value(shader.UniformProjection)
	require.True(t, ok)
	assert.Equal(t, cam.ProjectionMatrix(), proj)

	pos, ok := rec.Value(shader.UniformViewPosition)
	require.True(t, ok)
	assert.Equal(t, cam.Controller().Position(), pos)
}

func TestResizeChangesAspect(t *testing.T) {
	v := NewViewController(shader.NewRecorder())
	v.Resize(1600, 800)
	assert.InDelta(t, 2, v.Camera().Aspect(), eps)

	// Minimized windows report a zero framebuffer.
	v.Resize(0, 0)
	assert.InDelta(t, 2, v.Camera().Aspect(), eps)
}

func TestWithPresetKeyRebinds(t *testing.T) {
	custom := PresetSide
	custom.Position = mgl32.Vec3{20, 1, 0}
	v := NewViewController(shader.NewRecorder(), WithPresetKey(common.Key2, custom))
	in := newFakeInput()
	in.held[common.Key2] = true

	v.ProcessInput(in)
	assertVec3(t, custom.Position, v.Camera().Controller().Position())
}
