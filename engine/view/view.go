package view

import (
	"github.com/Carmen-Shannon/oxy-desk/common"
	"github.com/Carmen-Shannon/oxy-desk/engine/camera"
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
)

// Input is the per-frame input surface the controller polls. The window implements it.
type Input interface {
	// KeyPressed reports whether the key is currently held down.
	KeyPressed(keyCode uint32) bool

	// RequestClose asks the window to close after the current frame.
	RequestClose()

	// Time returns the monotonic clock in seconds.
	Time() float64
}

// keyMove binds a held key to a direction of travel.
type keyMove struct {
	key       uint32
	direction camera.MoveDirection
}

var moveKeys = []keyMove{
	{common.KeyW, camera.MoveForward},
	{common.KeyS, camera.MoveBackward},
	{common.KeyA, camera.MoveLeft},
	{common.KeyD, camera.MoveRight},
	{common.KeyQ, camera.MoveUp},
	{common.KeyE, camera.MoveDown},
}

// viewControllerImpl is the implementation of the ViewController interface.
type viewControllerImpl struct {
	uniforms shader.Uniforms
	camera   camera.Camera

	presetKeys []PresetKey

	// mouse state
	firstMouse bool
	lastX      float64
	lastY      float64

	// frame timing
	timed     bool
	lastFrame float64
	deltaTime float32
}

// ViewController owns the camera and its projection mode, turns mouse, scroll and keyboard
// input into camera changes, and uploads the view state once per frame.
// All methods must be called from the thread running the window loop.
type ViewController interface {
	// Camera returns the controlled camera.
	Camera() camera.Camera

	// DeltaTime returns the seconds between the two most recent PrepareFrame calls.
	DeltaTime() float32

	// OnMouseMove handles a cursor position event. The first event only records the position.
	// Later events rotate the camera by the delta from the previous position, with the
	// vertical axis inverted so moving the cursor up looks up.
	//
	// Parameters:
	//   - x, y: the cursor position in window coordinates
	OnMouseMove(x, y float64)

	// OnScroll handles a vertical scroll event by adjusting the camera's movement speed.
	//
	// Parameters:
	//   - dy: the vertical scroll offset
	OnScroll(dy float32)

	// ProcessInput polls the keyboard once. Escape requests close, WASDQE move the camera,
	// and the preset keys reset the pose and projection.
	//
	// Parameters:
	//   - input: the input surface to poll
	ProcessInput(input Input)

	// ApplyPreset resets the camera pose and projection mode to p.
	//
	// Parameters:
	//   - p: the preset
	ApplyPreset(p Preset)

	// PrepareFrame advances the frame clock, processes input, recomputes the camera matrices
	// and uploads the view, projection and view position.
	//
	// Parameters:
	//   - input: the input surface to poll
	PrepareFrame(input Input)

	// Resize updates the viewport size both projections are built for.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)
}

var _ ViewController = &viewControllerImpl{}

// NewViewController creates a controller that uploads to the given uniform sink.
// Without WithCamera it builds the default desk camera: a fly controller at (0, 5, 12)
// looking down toward the desk, perspective projection with an 80 degree field of view.
//
// Parameters:
//   - uniforms: the uniform sink of the scene program
//   - options: optional ViewControllerBuilderOption functions
//
// Returns:
//   - ViewController: the controller
func NewViewController(uniforms shader.Uniforms, options ...ViewControllerBuilderOption) ViewController {
	v := &viewControllerImpl{
		uniforms:   uniforms,
		firstMouse: true,
		presetKeys: DefaultPresetKeys(),
	}
	for _, opt := range options {
		opt(v)
	}
	if v.camera == nil {
		v.camera = camera.NewCamera(camera.WithController(camera.NewCameraController()))
	}
	return v
}

func (v *viewControllerImpl) Camera() camera.Camera {
	return v.camera
}

func (v *viewControllerImpl) DeltaTime() float32 {
	return v.deltaTime
}

func (v *viewControllerImpl) OnMouseMove(x, y float64) {
	if v.firstMouse {
		v.lastX, v.lastY = x, y
		v.firstMouse = false
		return
	}
	dx := float32(x - v.lastX)
	dy := float32(v.lastY - y)
	v.lastX, v.lastY = x, y

	if ctrl := v.camera.Controller(); ctrl != nil {
		ctrl.Look(dx, dy)
	}
}

func (v *viewControllerImpl) OnScroll(dy float32) {
	if ctrl := v.camera.Controller(); ctrl != nil {
		ctrl.AdjustSpeed(dy)
	}
}

func (v *viewControllerImpl) ProcessInput(input Input) {
	if input.KeyPressed(common.KeyEsc) {
		input.RequestClose()
	}

	ctrl := v.camera.Controller()
	if ctrl == nil {
		return
	}

	for _, m := range moveKeys {
		if input.KeyPressed(m.key) {
			ctrl.Move(m.direction, v.deltaTime)
		}
	}

	for _, pk := range v.presetKeys {
		if input.KeyPressed(pk.Key) {
			v.ApplyPreset(pk.Preset)
		}
	}
}

func (v *viewControllerImpl) ApplyPreset(p Preset) {
	if ctrl := v.camera.Controller(); ctrl != nil {
		ctrl.SetPose(p.Position, p.Front, p.Up)
	}
	if p.Zoom > 0 {
		v.camera.SetZoom(p.Zoom)
	}
	v.camera.SetProjection(p.Projection)
}

func (v *viewControllerImpl) PrepareFrame(input Input) {
	now := input.Time()
	if v.timed {
		v.deltaTime = float32(now - v.lastFrame)
	}
	v.lastFrame = now
	v.timed = true

	v.ProcessInput(input)

	v.camera.Update()
	camera.Upload(v.camera, v.uniforms)
}

func (v *viewControllerImpl) Resize(width, height int) {
	v.camera.SetViewport(width, height)
}
