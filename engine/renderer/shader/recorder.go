package shader

import (
	"github.com/go-gl/mathgl/mgl32"
)

// UniformWrite is a single recorded uniform upload.
type UniformWrite struct {
	Name  string
	Value any
}

// Recorder is an in-memory Uniforms implementation. It keeps the last value written to each
// name and the full ordered write log, which makes it usable as a headless sink and for
// inspecting the exact state a draw call would see.
type Recorder struct {
	values map[string]any
	writes []UniformWrite
}

var _ Uniforms = &Recorder{}

// NewRecorder creates an empty Recorder.
//
// Returns:
//   - *Recorder: the recorder
func NewRecorder() *Recorder {
	return &Recorder{values: make(map[string]any)}
}

func (r *Recorder) record(name string, value any) {
	r.values[name] = value
	r.writes = append(r.writes, UniformWrite{Name: name, Value: value})
}

func (r *Recorder) SetMat4(name string, value mgl32.Mat4) { r.record(name, value) }
func (r *Recorder) SetVec2(name string, value mgl32.Vec2) { r.record(name, value) }
func (r *Recorder) SetVec3(name string, value mgl32.Vec3) { r.record(name, value) }
func (r *Recorder) SetVec4(name string, value mgl32.Vec4) { r.record(name, value) }
func (r *Recorder) SetFloat(name string, value float32)   { r.record(name, value) }
func (r *Recorder) SetInt(name string, value int32)       { r.record(name, value) }
func (r *Recorder) SetBool(name string, value bool)       { r.record(name, value) }
func (r *Recorder) SetSampler2D(name string, unit int32)  { r.record(name, unit) }

// Value returns the last value written to name.
//
// Parameters:
//   - name: the uniform name
//
// Returns:
//   - any: the last written value, or nil
//   - bool: false if name was never written
func (r *Recorder) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Writes returns the ordered write log.
func (r *Recorder) Writes() []UniformWrite {
	return r.writes
}

// Reset clears both the last-value table and the write log.
func (r *Recorder) Reset() {
	r.values = make(map[string]any)
	r.writes = r.writes[:0]
}
