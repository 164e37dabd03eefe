package camera

import (
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
)

// Upload writes the camera's view matrix, projection matrix and world position to the active program.
// Call Update first so the matrices reflect the current pose.
//
// Parameters:
//   - c: the camera
//   - u: the uniform sink of the active program
func Upload(c Camera, u shader.Uniforms) {
	u.SetMat4(shader.UniformView, c.ViewMatrix())
	u.SetMat4(shader.UniformProjection, c.ProjectionMatrix())
	if ctrl := c.Controller(); ctrl != nil {
		u.SetVec3(shader.UniformViewPosition, ctrl.Position())
	}
}
