package engine

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/model"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/texture"
	"github.com/Carmen-Shannon/oxy-desk/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	frames  int
	now     float64
	held    map[uint32]bool
	closing bool
	closed  bool

	onUpdate    func()
	onResize    func(width, height int)
	onScroll    func(delta float32)
	onMouseMove func(x, y float64)
}

func (w *fakeWindow) SetUpdateCallback(cb func())                  { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onResize = cb }
func (w *fakeWindow) SetScrollCallback(cb func(delta float32))     { w.onScroll = cb }
func (w *fakeWindow) SetMouseMoveCallback(cb func(x, y float64))   { w.onMouseMove = cb }
func (w *fakeWindow) MakeContextCurrent()                          {}
func (w *fakeWindow) KeyPressed(keyCode uint32) bool               { return w.held[keyCode] }
func (w *fakeWindow) RequestClose()                                { w.closing = true }
func (w *fakeWindow) Time() float64                                { return w.now }
func (w *fakeWindow) IsRunning() bool                              { return !w.closed && !w.closing }
func (w *fakeWindow) Width() int                                   { return 1000 }
func (w *fakeWindow) Height() int                                  { return 800 }

func (w *fakeWindow) Close() error {
	w.closed = true
	return nil
}

func (w *fakeWindow) ProcessMessages() {
	for i := 0; i < w.frames && w.IsRunning(); i++ {
		w.now += 1.0 / 60
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

type fakeProgram struct {
	*shader.Recorder
	uses    int
	deleted bool
}

func (p *fakeProgram) ID() uint32 { return 1 }
func (p *fakeProgram) Use()       { p.uses++ }
func (p *fakeProgram) Delete()    { p.deleted = true }

type fakeDevice struct{ next uint32 }

func (d *fakeDevice) CreateTexture(*common.DecodedImage) (uint32, error) {
	d.next++
	return d.next, nil
}
func (d *fakeDevice) BindTexture(int, uint32) {}
func (d *fakeDevice) DeleteTextures([]uint32) {}

type fakeUploader struct {
	next     uint32
	draws    int
	released int
}

func (u *fakeUploader) UploadMesh(g model.Geometry) (model.MeshHandle, error) {
	u.next++
	return model.MeshHandle{VAO: u.next, IndexCount: int32(len(g.Indices))}, nil
}
func (u *fakeUploader) DrawMesh(model.MeshHandle)    { u.draws++ }
func (u *fakeUploader) ReleaseMesh(model.MeshHandle) { u.released++ }

type fakeRenderer struct {
	program  *fakeProgram
	keys     []string
	device   *fakeDevice
	uploader *fakeUploader
	frames   int
	resized  [2]int
	released bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		program:  &fakeProgram{Recorder: shader.NewRecorder()},
		device:   &fakeDevice{},
		uploader: &fakeUploader{},
	}
}

func (r *fakeRenderer) BackendType() renderer.RendererBackendType { return renderer.BackendTypeOpenGL }
func (r *fakeRenderer) Program(string) shader.Program             { return r.program }
func (r *fakeRenderer) RegisterProgram(key string, _ ...shader.Shader) (shader.Program, error) {
	r.keys = append(r.keys, key)
	return r.program, nil
}
func (r *fakeRenderer) Textures() texture.Device { return r.device }
func (r *fakeRenderer) Meshes() model.Uploader   { return r.uploader }
func (r *fakeRenderer) Resize(width, height int) { r.resized = [2]int{width, height} }
func (r *fakeRenderer) BeginFrame()              { r.frames++ }
func (r *fakeRenderer) Release()                 { r.released = true }

func newTestEngine(t *testing.T, frames int, options ...EngineBuilderOption) (Engine, *fakeWindow, *fakeRenderer) {
	t.Helper()
	win := &fakeWindow{frames: frames, held: make(map[uint32]bool)}
	rend := newFakeRenderer()
	options = append([]EngineBuilderOption{
		WithWindow(win),
		WithRenderer(rend),
		WithSceneOptions(scene.WithAssetsDir(t.TempDir())),
	}, options...)
	e, err := NewEngine(options...)
	require.NoError(t, err)
	return e, win, rend
}

func TestNewEngineWiresWindow(t *testing.T) {
	_, win, rend := newTestEngine(t, 0)

	assert.Equal(t, []string{SceneProgramKey}, rend.keys)
	assert.NotNil(t, win.onUpdate)
	assert.NotNil(t, win.onResize)
	assert.NotNil(t, win.onScroll)
	assert.NotNil(t, win.onMouseMove)
}

func TestRunDrawsEveryFrameAndTearsDown(t *testing.T) {
	e, win, rend := newTestEngine(t, 3)

	var callbacks int
	e.SetFrameCallback(func(float32) { callbacks++ })

	require.NoError(t, e.Run())

	assert.Equal(t, 3, rend.frames)
	assert.Equal(t, 3, callbacks)
	assert.Equal(t, 3*16, rend.uploader.draws)

	_, ok := rend.program.Value(shader.UniformView)
	assert.True(t, ok)

	assert.Equal(t, 4, rend.uploader.released)
	assert.True(t, rend.released)
	assert.True(t, win.closed)
}

func TestEscapeStopsLoop(t *testing.T) {
	e, win, rend := newTestEngine(t, 10)
	win.held[common.KeyEsc] = true

	require.NoError(t, e.Run())
	assert.Equal(t, 1, rend.frames)
}

func TestCallbacksReachView(t *testing.T) {
	e, win, rend := newTestEngine(t, 0)

	win.onResize(1600, 800)
	assert.Equal(t, [2]int{1600, 800}, rend.resized)
	assert.InDelta(t, 2, e.View().Camera().Aspect(), 1e-6)

	speed := e.View().Camera().Controller().MovementSpeed()
	win.onScroll(2)
	assert.InDelta(t, speed+2, e.View().Camera().Controller().MovementSpeed(), 1e-6)
}

func TestSetRenderFrameLimit(t *testing.T) {
	e, _, _ := newTestEngine(t, 0, WithRenderFrameLimit(50))
	impl := e.(*engine)
	assert.Equal(t, int64(20_000_000), impl.renderFrameLimit.Nanoseconds())

	e.SetRenderFrameLimit(0)
	assert.Zero(t, impl.renderFrameLimit)
}
