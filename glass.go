package glassfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// GlassSampleCount is the number of phase shifted samples averaged by FractalGlass.
const GlassSampleCount = 11

// Displacement is a sawtooth with stripeCount teeth over [0, 1].
func Displacement(x, stripeCount, strength float64) float64 {
	modulus := 1.0 / stripeCount
	return GLSLMod(x, modulus) * strength
}

// FractalGlass returns x displaced by the average of GlassSampleCount sawtooth
// samples taken at x + k*smoothness, k in [-5, 5].
func FractalGlass(x, stripeCount, strength, smoothness float64) float64 {
	const half = GlassSampleCount / 2

	d := 0.0
	for k := -half; k <= half; k++ {
		d += Displacement(x+f64(k)*smoothness, stripeCount, strength)
	}
	d /= GlassSampleCount

	return x + d
}

// SmoothEdge is 1 inside [padding, 1-padding] and falls off smoothly to 0 at
// x = 0 and x = 1.
func SmoothEdge(x, padding float64) float64 {
	if x < padding {
		return SmoothStep(0, padding, x)
	} else if x > 1-padding {
		return SmoothStep(0, padding, 1-x)
	}
	return 1
}

// GlassPulse is the slow oscillation that makes the glass breathe, in [0, 1].
func GlassPulse(time float64) float64 {
	return 0.5 + 0.5*math.Sin(time*0.5)
}

// ParallaxOffset is the horizontal parallax shift for a pixel whose glass
// distortion moved it by distortionFactor.
//
// It is always positive (left to right) no matter the sign of distortionFactor.
func ParallaxOffset(progress, distortionFactor float64, params EffectParameters) float64 {
	return progress * params.ParallaxStrength * (1 + Abs(distortionFactor)*params.DistortionMultiplier)
}

// SampleUV is the fragment program on the CPU. It returns the texture uv the
// pixel at viewport uv samples, already clamped to [0, 1]^2.
//
// assets/glass_shader.go must stay in sync with this.
func SampleUV(uv mgl64.Vec2, u *Uniforms) mgl64.Vec2 {
	params := u.Params

	pulse := GlassPulse(u.Time)

	originalX := uv.X()
	edgeFactor := SmoothEdge(originalX, params.EdgePadding)

	glassStrength := params.GlassStrength * (0.8 + 0.2*pulse)
	distortedX := FractalGlass(originalX, params.StripesFrequency, glassStrength, params.GlassSmoothness)

	uv[0] = Lerp(originalX, distortedX, edgeFactor)
	distortionFactor := uv.X() - originalX

	uv[0] += ParallaxOffset(u.Progress, distortionFactor, params) * edgeFactor

	// slow drift and a tiny vertical wobble
	uv[0] += u.Time * 0.00005
	uv[1] += math.Sin(u.Time*0.3+uv.X()*3) * 0.0005

	resolution := mgl64.Vec2{u.Resolution.X, u.Resolution.Y}
	textureSize := mgl64.Vec2{u.TextureSize.X, u.TextureSize.Y}

	return ClampUV(CoverUV(uv, resolution, textureSize))
}
