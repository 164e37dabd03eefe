package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	next     uint32
	uploads  int
	draws    []MeshHandle
	released []MeshHandle
	fail     bool
}

func (f *fakeUploader) UploadMesh(g Geometry) (MeshHandle, error) {
	if f.fail {
		return MeshHandle{}, errors.New("out of memory")
	}
	f.uploads++
	f.next++
	return MeshHandle{VAO: f.next, IndexCount: int32(len(g.Indices))}, nil
}

func (f *fakeUploader) DrawMesh(h MeshHandle)    { f.draws = append(f.draws, h) }
func (f *fakeUploader) ReleaseMesh(h MeshHandle) { f.released = append(f.released, h) }

func TestMeshesLoadOncePerKind(t *testing.T) {
	up := &fakeUploader{}
	m := NewMeshes(up)

	require.NoError(t, m.Load(MeshBox))
	require.NoError(t, m.Load(MeshBox))
	require.NoError(t, m.Load(MeshSphere))
	assert.Equal(t, 2, up.uploads)
	assert.True(t, m.Loaded(MeshBox))
	assert.False(t, m.Loaded(MeshPlane))
}

func TestMeshesDraw(t *testing.T) {
	up := &fakeUploader{}
	m := NewMeshes(up)

	err := m.Draw(MeshPlane)
	assert.ErrorIs(t, err, ErrMeshNotLoaded)
	assert.Empty(t, up.draws)

	require.NoError(t, m.Load(MeshPlane))
	require.NoError(t, m.Draw(MeshPlane))
	require.Len(t, up.draws, 1)
	assert.Equal(t, int32(6), up.draws[0].IndexCount)
}

func TestMeshesUnknownKind(t *testing.T) {
	up := &fakeUploader{}
	m := NewMeshes(up)
	assert.ErrorIs(t, m.Load(MeshKind("torus")), ErrUnknownMeshKind)
	assert.Zero(t, up.uploads)
}

func TestMeshesUploadFailure(t *testing.T) {
	up := &fakeUploader{fail: true}
	m := NewMeshes(up)
	assert.Error(t, m.Load(MeshBox))
	assert.False(t, m.Loaded(MeshBox))
}

func TestMeshesDestroyReleasesOnce(t *testing.T) {
	up := &fakeUploader{}
	m := NewMeshes(up)
	require.NoError(t, m.Load(MeshBox))
	require.NoError(t, m.Load(MeshCylinder))

	m.Destroy()
	m.Destroy()
	assert.Len(t, up.released, 2)
	assert.False(t, m.Loaded(MeshBox))
}

func TestMeshesTessellationOptions(t *testing.T) {
	m := NewMeshes(&fakeUploader{}, WithCylinderSlices(4), WithSphereSegments(4, 2))
	g, err := m.Geometry(MeshCylinder)
	require.NoError(t, err)
	assert.Len(t, g.Vertices, 2*5+2*6)

	g, err = m.Geometry(MeshSphere)
	require.NoError(t, err)
	assert.Len(t, g.Vertices, 5*3)
}
