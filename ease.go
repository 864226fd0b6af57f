package glassfx

import (
	"math"
)

// EaseFunc maps normalized time in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

func EaseLinear(t float64) float64 { return t }

func easeInPow(p float64) EaseFunc {
	return func(t float64) float64 {
		return math.Pow(t, p)
	}
}

func easeOutPow(p float64) EaseFunc {
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, p)
	}
}

func easeInOutPow(p float64) EaseFunc {
	return func(t float64) float64 {
		if t < 0.5 {
			return math.Pow(2*t, p) / 2
		}
		return 1 - math.Pow(2*(1-t), p)/2
	}
}

// powerN matches the usual css animation naming, power1 is quadratic.
var (
	EasePower1In    = easeInPow(2)
	EasePower1Out   = easeOutPow(2)
	EasePower1InOut = easeInOutPow(2)

	EasePower2In    = easeInPow(3)
	EasePower2Out   = easeOutPow(3)
	EasePower2InOut = easeInOutPow(3)

	EasePower3In    = easeInPow(4)
	EasePower3Out   = easeOutPow(4)
	EasePower3InOut = easeInOutPow(4)

	EasePower4In    = easeInPow(5)
	EasePower4Out   = easeOutPow(5)
	EasePower4InOut = easeInOutPow(5)
)

// EaseExpoScroll is the smooth scroll curve. It overshoots 1 a tiny bit
// before the clamp so the scroll lands exactly.
func EaseExpoScroll(t float64) float64 {
	return min(1, 1.001-math.Pow(2, -10*t))
}

// DefaultEase is the css "ease" curve, used by tweens that don't set one.
var DefaultEase = EaseCubicBezier(0.25, 0.1, 0.25, 1)

// EaseCubicBezier returns a css style cubic-bezier(x1, y1, x2, y2) ease.
func EaseCubicBezier(x1, y1, x2, y2 float64) EaseFunc {
	return func(t float64) float64 {
		bt := BezierCurveNewton(0, x1, x2, 1, t)
		return BezierCurve(0, y1, y2, 1, bt)
	}
}

func BezierCurve(p0, p1, p2, p3, t float64) float64 {
	it := 1 - t
	return it*it*it*p0 + 3*it*it*t*p1 + 3*it*t*t*p2 + t*t*t*p3
}

// approximates t for given n in bezier curve using Newton's method
// hard coded to only support 0 - 1
func BezierCurveNewton(p0, p1, p2, p3, n float64) float64 {
	n = Clamp(n, 0, 1)
	t := n
	for range 8 {
		it := 1 - t
		f := BezierCurve(p0, p1, p2, p3, t) - n
		fd := 3*it*it*(p1-p0) + 6*it*t*(p2-p1) + 3*t*t*(p3-p2)
		if Abs(fd) < 0.0001 {
			break
		}
		if Abs(f) < 0.0001 {
			break
		}
		t = t - f/fd
		t = Clamp(t, 0, 1)
	}

	return Clamp(t, 0, 1)
}
