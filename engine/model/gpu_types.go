package model

import (
	"unsafe"
)

// Vertex attribute layout shared by the mesh uploader and the scene vertex shader.
const (
	AttribPosition = 0
	AttribNormal   = 1
	AttribTexCoord = 2

	// VertexStride is the size of a Vertex in bytes (8 float32s).
	VertexStride = int32(unsafe.Sizeof(Vertex{}))

	OffsetPosition = 0
	OffsetNormal   = 3 * 4
	OffsetTexCoord = 6 * 4
)

// Flatten returns the vertex data as a tightly packed float32 slice suitable for a single
// interleaved vertex buffer upload.
//
// Returns:
//   - []float32: 8 floats per vertex (position, normal, texcoord)
func (g Geometry) Flatten() []float32 {
	out := make([]float32, 0, len(g.Vertices)*8)
	for _, v := range g.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
			v.TexCoord[0], v.TexCoord[1],
		)
	}
	return out
}
