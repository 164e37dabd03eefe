package material

import (
	"github.com/Carmen-Shannon/oxy-desk/engine/renderer/shader"
)

// Apply uploads the material's parameters to the material uniform struct of the active program.
//
// Parameters:
//   - m: the material to upload
//   - u: the uniform sink of the active program
func Apply(m Material, u shader.Uniforms) {
	u.SetVec3(shader.UniformMaterialAmbientColor, m.AmbientColor())
	u.SetFloat(shader.UniformMaterialAmbientStrength, m.AmbientStrength())
	u.SetVec3(shader.UniformMaterialDiffuseColor, m.DiffuseColor())
	u.SetVec3(shader.UniformMaterialSpecularColor, m.SpecularColor())
	u.SetFloat(shader.UniformMaterialShininess, m.Shininess())
}
