package glassfx

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSmoothEdge(t *testing.T) {
	const padding = 0.1

	if got := SmoothEdge(0, padding); got != 0 {
		t.Errorf("SmoothEdge(0) = %v, want 0", got)
	}
	if got := SmoothEdge(1, padding); got != 0 {
		t.Errorf("SmoothEdge(1) = %v, want 0", got)
	}

	for x := padding; x <= 1-padding; x += 0.01 {
		if got := SmoothEdge(x, padding); got != 1 {
			t.Errorf("SmoothEdge(%v) = %v, want 1", x, got)
		}
	}

	// continuous at both edges of the flat part
	const eps = 1e-9
	for _, x := range []float64{padding, 1 - padding} {
		below := SmoothEdge(x-eps, padding)
		above := SmoothEdge(x+eps, padding)
		if math.Abs(below-above) > 1e-6 {
			t.Errorf("SmoothEdge jumps at %v: %v vs %v", x, below, above)
		}
	}

	// never leaves [0, 1]
	for x := 0.0; x <= 1; x += 0.001 {
		if v := SmoothEdge(x, padding); v < 0 || v > 1 {
			t.Fatalf("SmoothEdge(%v) = %v", x, v)
		}
	}
}

func TestFractalGlassBounds(t *testing.T) {
	for _, stripes := range []float64{1, 7, 50, 200} {
		for _, strength := range []float64{0, 0.5, 2, 10} {
			for x := 0.0; x <= 1; x += 0.0037 {
				got := FractalGlass(x, stripes, strength, 0.0001)
				if got < x-strength || got > x+strength {
					t.Fatalf(
						"FractalGlass(%v, %v, %v) = %v, outside [%v, %v]",
						x, stripes, strength, got, x-strength, x+strength)
				}
			}
		}
	}
}

func TestDisplacementIsPeriodic(t *testing.T) {
	const stripes = 50
	period := 1.0 / stripes

	for x := 0.0; x < 1; x += 0.013 {
		a := Displacement(x, stripes, 2)
		b := Displacement(x+period, stripes, 2)
		if math.Abs(a-b) > 1e-9 && math.Abs(math.Abs(a-b)-2*period) > 1e-9 {
			t.Errorf("Displacement(%v) = %v, one period later %v", x, a, b)
		}
	}
}

func TestParallaxOffsetDirection(t *testing.T) {
	params := DefaultEffectParameters

	for _, factor := range []float64{-0.5, -0.01, 0, 0.01, 0.5} {
		if got := ParallaxOffset(0.7, factor, params); got < 0 {
			t.Errorf("ParallaxOffset(0.7, %v) = %v, want >= 0", factor, got)
		}
		if a, b := ParallaxOffset(0.7, factor, params), ParallaxOffset(0.7, -factor, params); a != b {
			t.Errorf("ParallaxOffset depends on the sign of %v: %v vs %v", factor, a, b)
		}
	}

	if got := ParallaxOffset(0, 0.3, params); got != 0 {
		t.Errorf("ParallaxOffset at progress 0 = %v, want 0", got)
	}
}

func TestSampleUVStaysInside(t *testing.T) {
	params := DefaultEffectParameters
	params.GlassStrength = 50
	params.ParallaxStrength = 5

	u := &Uniforms{
		Params:      params,
		Resolution:  FPt(1920, 1080),
		TextureSize: FPt(1000, 1000),
		Time:        123.4,
		Progress:    1,
	}

	for x := 0.0; x <= 1; x += 0.01 {
		for y := 0.0; y <= 1; y += 0.1 {
			got := SampleUV(mgl64.Vec2{x, y}, u)
			if got.X() < 0 || got.X() > 1 || got.Y() < 0 || got.Y() > 1 {
				t.Fatalf("SampleUV(%v, %v) = %v, outside [0, 1]", x, y, got)
			}
		}
	}
}

func TestSampleUVEdgesAreUndistorted(t *testing.T) {
	u := &Uniforms{
		Params:      DefaultEffectParameters,
		Resolution:  FPt(1920, 1080),
		TextureSize: FPt(3840, 2160),
		Time:        0,
		Progress:    0,
	}

	// SmoothEdge is 0 at both borders so neither glass nor parallax move them
	got := SampleUV(mgl64.Vec2{0, 0.5}, u)
	if math.Abs(got.X()) > 1e-9 {
		t.Errorf("left border moved to %v", got.X())
	}
	got = SampleUV(mgl64.Vec2{1, 0.5}, u)
	if math.Abs(got.X()-1) > 1e-9 {
		t.Errorf("right border moved to %v", got.X())
	}
}
