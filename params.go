package glassfx

import (
	"fmt"
)

// EffectParameters are the fixed inputs of the glass program.
// They are set once when a pipeline is built and never change afterwards.
type EffectParameters struct {
	ParallaxStrength     float64 `yaml:"parallaxStrength"`
	DistortionMultiplier float64 `yaml:"distortionMultiplier"`
	GlassStrength        float64 `yaml:"glassStrength"`
	StripesFrequency     float64 `yaml:"stripesFrequency"`
	GlassSmoothness      float64 `yaml:"glassSmoothness"`
	EdgePadding          float64 `yaml:"edgePadding"`
	AnimationSpeed       float64 `yaml:"animationSpeed"`
}

var DefaultEffectParameters = EffectParameters{
	ParallaxStrength:     0.1,
	DistortionMultiplier: 10,
	GlassStrength:        2.0,
	StripesFrequency:     50,
	GlassSmoothness:      0.0001,
	EdgePadding:          0.1,
	AnimationSpeed:       1.0,
}

func (p EffectParameters) Validate() error {
	if p.StripesFrequency <= 0 {
		return fmt.Errorf("stripesFrequency must be positive, got %v", p.StripesFrequency)
	}
	if p.EdgePadding < 0 || p.EdgePadding > 0.5 {
		return fmt.Errorf("edgePadding must be in [0, 0.5], got %v", p.EdgePadding)
	}
	if p.AnimationSpeed < 0 {
		return fmt.Errorf("animationSpeed must not be negative, got %v", p.AnimationSpeed)
	}
	return nil
}

// Uniforms is everything the fragment program reads.
//
// Params never change after construction, Resolution changes on resize,
// TextureSize on texture load, Time and Progress every tick.
type Uniforms struct {
	Params EffectParameters

	Resolution  FPoint
	TextureSize FPoint

	Time     float64
	Progress float64
}

// ShaderUniforms returns uniforms in the form ebiten shaders take.
// Keys match the variable names in assets/glass_shader.go.
func (u *Uniforms) ShaderUniforms() map[string]any {
	m := make(map[string]any)

	m["Resolution"] = []float32{f32(u.Resolution.X), f32(u.Resolution.Y)}
	m["TextureSize"] = []float32{f32(u.TextureSize.X), f32(u.TextureSize.Y)}

	m["ParallaxStrength"] = f32(u.Params.ParallaxStrength)
	m["DistortionMultiplier"] = f32(u.Params.DistortionMultiplier)
	m["GlassStrength"] = f32(u.Params.GlassStrength)
	m["StripesFrequency"] = f32(u.Params.StripesFrequency)
	m["GlassSmoothness"] = f32(u.Params.GlassSmoothness)
	m["EdgePadding"] = f32(u.Params.EdgePadding)
	m["AnimationSpeed"] = f32(u.Params.AnimationSpeed)

	m["Time"] = f32(u.Time)
	m["Progress"] = f32(u.Progress)

	return m
}
