package scene

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithAssetsDir sets the directory relative texture paths are resolved against.
// Defaults to DefaultAssetsDir.
//
// Parameters:
//   - dir: the texture directory
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithAssetsDir(dir string) SceneBuilderOption {
	return func(s *scene) {
		s.assetsDir = dir
	}
}

// WithDescription replaces the embedded desk scene with d.
//
// Parameters:
//   - d: the scene content, usually from ParseDescription
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithDescription(d *Description) SceneBuilderOption {
	return func(s *scene) {
		s.description = d
	}
}
