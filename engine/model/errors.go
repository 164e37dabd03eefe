package model

import "errors"

var (
	// ErrUnknownMeshKind is returned when a mesh kind name is not one of MeshKinds.
	ErrUnknownMeshKind = errors.New("unknown mesh kind")

	// ErrMeshNotLoaded is returned when drawing a kind that was never loaded.
	ErrMeshNotLoaded = errors.New("mesh not loaded")
)
