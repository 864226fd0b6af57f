package glassfx

import (
	_ "embed"
	"fmt"
	"os"

	eb "github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/glass_shader.go
var glassShaderSource []byte

// GlassShaderPath is where the shader is read from when hot reloading.
const GlassShaderPath = "assets/glass_shader.go"

func CompileGlassShader() (*eb.Shader, error) {
	shader, err := eb.NewShader(glassShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compiling glass shader: %w", err)
	}
	return shader, nil
}

// LoadGlassShaderFromDisk reads and compiles the shader source at GlassShaderPath.
func LoadGlassShaderFromDisk() (*eb.Shader, error) {
	shaderCode, err := os.ReadFile(GlassShaderPath)
	if err != nil {
		return nil, err
	}

	shader, err := eb.NewShader(shaderCode)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", GlassShaderPath, err)
	}

	return shader, nil
}
