package shader

import (
	_ "embed"
	"fmt"
	"os"
)

// ShaderType identifies the pipeline stage a shader source belongs to.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex stage.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment stage.
	ShaderTypeFragment
)

// String returns the stage name.
func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

//go:embed shaders/scene.vert
var sceneVertexSource string

//go:embed shaders/scene.frag
var sceneFragmentSource string

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
}

// Shader is a single GLSL stage source identified by a key.
type Shader interface {
	// Key retrieves the unique identifier for this shader.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the GLSL source code.
	//
	// Returns:
	//   - string: the GLSL source code
	Source() string

	// Type retrieves the pipeline stage of this shader.
	//
	// Returns:
	//   - ShaderType: the stage
	Type() ShaderType
}

var _ Shader = &shader{}

// NewShader creates a Shader from GLSL source held in memory.
//
// Parameters:
//   - key: the unique identifier for the shader
//   - source: the GLSL source code
//   - shaderType: the pipeline stage
//
// Returns:
//   - Shader: the shader
func NewShader(key, source string, shaderType ShaderType) Shader {
	return &shader{key: key, source: source, shaderType: shaderType}
}

// NewShaderFromFile reads GLSL source from disk.
//
// Parameters:
//   - key: the unique identifier for the shader
//   - path: the path of the GLSL source file
//   - shaderType: the pipeline stage
//
// Returns:
//   - Shader: the shader
//   - error: error if the file cannot be read
func NewShaderFromFile(key, path string, shaderType ShaderType) (Shader, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read shader file %s: %w", path, err)
	}
	return NewShader(key, string(src), shaderType), nil
}

// SceneVertexShader returns the embedded vertex shader of the lit scene program.
func SceneVertexShader() Shader {
	return NewShader("scene_vertex", sceneVertexSource, ShaderTypeVertex)
}

// SceneFragmentShader returns the embedded fragment shader of the lit scene program.
func SceneFragmentShader() Shader {
	return NewShader("scene_fragment", sceneFragmentSource, ShaderTypeFragment)
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}
