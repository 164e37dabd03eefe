package model

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Default tessellation of the round primitives.
const (
	DefaultCylinderSlices = 36
	DefaultSphereSlices   = 36
	DefaultSphereStacks   = 18
)

// quad appends two triangles spanning four vertices given in counter-clockwise order.
func (g *Geometry) quad(a, b, c, d Vertex) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, a, b, c, d)
	g.Indices = append(g.Indices, base, base+1, base+2, base, base+2, base+3)
}

// PlaneGeometry builds the 2x2 plane in the XZ plane, facing +Y.
func PlaneGeometry() Geometry {
	var g Geometry
	up := mgl32.Vec3{0, 1, 0}
	g.quad(
		Vertex{Position: mgl32.Vec3{-1, 0, 1}, Normal: up, TexCoord: mgl32.Vec2{0, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, 1}, Normal: up, TexCoord: mgl32.Vec2{1, 0}},
		Vertex{Position: mgl32.Vec3{1, 0, -1}, Normal: up, TexCoord: mgl32.Vec2{1, 1}},
		Vertex{Position: mgl32.Vec3{-1, 0, -1}, Normal: up, TexCoord: mgl32.Vec2{0, 1}},
	)
	return g
}

// BoxGeometry builds the unit cube centered on the origin. Every face carries the full 0..1 UV range.
func BoxGeometry() Geometry {
	var g Geometry
	faces := []struct {
		normal, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},   // front
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}}, // back
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},  // right
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},  // left
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},  // top
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},  // bottom
	}
	for _, f := range faces {
		center := f.normal.Mul(0.5)
		u := f.u.Mul(0.5)
		v := f.v.Mul(0.5)
		g.quad(
			Vertex{Position: center.Sub(u).Sub(v), Normal: f.normal, TexCoord: mgl32.Vec2{0, 0}},
			Vertex{Position: center.Add(u).Sub(v), Normal: f.normal, TexCoord: mgl32.Vec2{1, 0}},
			Vertex{Position: center.Add(u).Add(v), Normal: f.normal, TexCoord: mgl32.Vec2{1, 1}},
			Vertex{Position: center.Sub(u).Add(v), Normal: f.normal, TexCoord: mgl32.Vec2{0, 1}},
		)
	}
	return g
}

// CylinderGeometry builds a radius-1 cylinder from y = 0 to y = 1 with top and bottom caps.
//
// Parameters:
//   - slices: number of segments around the axis (minimum 3)
//
// Returns:
//   - Geometry: the cylinder mesh
func CylinderGeometry(slices int) Geometry {
	slices = max(slices, 3)
	var g Geometry

	// Side wall: one ring at each end, duplicated seam vertex so U wraps from 0 to 1.
	for i := 0; i <= slices; i++ {
		u := float32(i) / float32(slices)
		theta := u * 2 * math32.Pi
		x, z := math32.Cos(theta), math32.Sin(theta)
		normal := mgl32.Vec3{x, 0, z}
		g.Vertices = append(g.Vertices,
			Vertex{Position: mgl32.Vec3{x, 0, z}, Normal: normal, TexCoord: mgl32.Vec2{u, 0}},
			Vertex{Position: mgl32.Vec3{x, 1, z}, Normal: normal, TexCoord: mgl32.Vec2{u, 1}},
		)
	}
	for i := 0; i < slices; i++ {
		b0 := uint32(i * 2)
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		g.Indices = append(g.Indices, b0, t0, b1, b1, t0, t1)
	}

	g.cap(slices, 1, mgl32.Vec3{0, 1, 0})
	g.cap(slices, 0, mgl32.Vec3{0, -1, 0})
	return g
}

// cap appends a triangle fan disc at height y facing normal.
func (g *Geometry) cap(slices int, y float32, normal mgl32.Vec3) {
	center := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{Position: mgl32.Vec3{0, y, 0}, Normal: normal, TexCoord: mgl32.Vec2{0.5, 0.5}})
	for i := 0; i <= slices; i++ {
		theta := float32(i) / float32(slices) * 2 * math32.Pi
		x, z := math32.Cos(theta), math32.Sin(theta)
		g.Vertices = append(g.Vertices, Vertex{
			Position: mgl32.Vec3{x, y, z},
			Normal:   normal,
			TexCoord: mgl32.Vec2{0.5 + 0.5*x, 0.5 + 0.5*z},
		})
	}
	for i := uint32(0); i < uint32(slices); i++ {
		a, b := center+1+i, center+2+i
		if normal[1] > 0 {
			g.Indices = append(g.Indices, center, b, a)
		} else {
			g.Indices = append(g.Indices, center, a, b)
		}
	}
}

// SphereGeometry builds a radius-1 UV sphere centered on the origin.
//
// Parameters:
//   - slices: number of segments around the Y axis (minimum 3)
//   - stacks: number of segments from pole to pole (minimum 2)
//
// Returns:
//   - Geometry: the sphere mesh
func SphereGeometry(slices, stacks int) Geometry {
	slices = max(slices, 3)
	stacks = max(stacks, 2)
	var g Geometry

	for j := 0; j <= stacks; j++ {
		v := float32(j) / float32(stacks)
		phi := v * math32.Pi
		y := -math32.Cos(phi)
		r := math32.Sin(phi)
		for i := 0; i <= slices; i++ {
			u := float32(i) / float32(slices)
			theta := u * 2 * math32.Pi
			p := mgl32.Vec3{r * math32.Cos(theta), y, r * math32.Sin(theta)}
			g.Vertices = append(g.Vertices, Vertex{Position: p, Normal: p, TexCoord: mgl32.Vec2{u, v}})
		}
	}

	row := uint32(slices + 1)
	for j := uint32(0); j < uint32(stacks); j++ {
		for i := uint32(0); i < uint32(slices); i++ {
			a := j*row + i
			b := a + row
			g.Indices = append(g.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return g
}
