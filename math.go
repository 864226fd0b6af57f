package glassfx

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"
)

func f64[N constraints.Integer | constraints.Float](n N) float64 {
	return float64(n)
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

// =================================
// FPoint
// =================================

type FPoint struct {
	X, Y float64
}

func FPt(x, y float64) FPoint {
	return FPoint{X: x, Y: y}
}

func (p FPoint) Add(q FPoint) FPoint {
	p.X += q.X
	p.Y += q.Y
	return p
}

func (p FPoint) Sub(q FPoint) FPoint {
	p.X -= q.X
	p.Y -= q.Y
	return p
}

func (p FPoint) Mul(q FPoint) FPoint {
	p.X *= q.X
	p.Y *= q.Y
	return p
}

func (p FPoint) Scale(s float64) FPoint {
	p.X *= s
	p.Y *= s
	return p
}

func (p FPoint) Eq(q FPoint) bool {
	return p.X == q.X && p.Y == q.Y
}

// =================================
// FRectangle
// =================================

type FRectangle struct {
	Min, Max FPoint
}

func FRect(x0, y0, x1, y1 float64) FRectangle {
	return FRectangle{
		Min: FPt(x0, y0),
		Max: FPt(x1, y1),
	}
}

func FRectWH(w, h float64) FRectangle {
	return FRectangle{
		Min: FPoint{0, 0},
		Max: FPoint{w, h},
	}
}

func FRectXYWH(x, y, w, h float64) FRectangle {
	return FRect(x, y, x+w, y+h)
}

// Dx returns r's width.
func (r FRectangle) Dx() float64 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r FRectangle) Dy() float64 {
	return r.Max.Y - r.Min.Y
}

func (r FRectangle) Size() FPoint {
	return FPoint{r.Dx(), r.Dy()}
}

func (r FRectangle) Add(p FPoint) FRectangle {
	return FRectangle{r.Min.Add(p), r.Max.Add(p)}
}

func (r FRectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func FRectangleCenter(rect FRectangle) FPoint {
	return FPoint{
		X: (rect.Min.X + rect.Max.X) * 0.5,
		Y: (rect.Min.Y + rect.Max.Y) * 0.5,
	}
}

func CenterFRectangle(rect FRectangle, x, y float64) FRectangle {
	halfW := rect.Dx() * 0.5
	halfH := rect.Dy() * 0.5

	return FRectangle{
		Min: FPt(x-halfW, y-halfH),
		Max: FPt(x+halfW, y+halfH),
	}
}

func RectWH(w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{},
		Max: image.Point{w, h},
	}
}

func RectToFRect(rect image.Rectangle) FRectangle {
	return FRect(f64(rect.Min.X), f64(rect.Min.Y), f64(rect.Max.X), f64(rect.Max.Y))
}

// =================================
// misc
// =================================

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = min(n, maxN)
	n = max(n, minN)

	return n
}

func Abs[N constraints.Integer | constraints.Float](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// SmoothStep is the GLSL smoothstep. edge0 must be smaller than edge1.
func SmoothStep(edge0, edge1, x float64) float64 {
	if edge1 <= edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// GLSLMod is the GLSL mod, result has the sign of y.
func GLSLMod(x, y float64) float64 {
	return x - y*math.Floor(x/y)
}

// MapRange linearly maps v from [inMin, inMax] to [outMin, outMax] without clamping.
func MapRange(inMin, inMax, outMin, outMax, v float64) float64 {
	if inMax == inMin {
		return outMax
	}
	return outMin + (v-inMin)/(inMax-inMin)*(outMax-outMin)
}

// Normalize01 maps v from [lo, hi] to [0, 1] and clamps.
func Normalize01(lo, hi, v float64) float64 {
	if hi <= lo {
		if v < lo {
			return 0
		}
		return 1
	}
	return Clamp((v-lo)/(hi-lo), 0, 1)
}

func (r FRectangle) Inset(n float64) FRectangle {
	if r.Dx() < 2*n {
		r.Min.X = (r.Min.X + r.Max.X) / 2
		r.Max.X = r.Min.X
	} else {
		r.Min.X += n
		r.Max.X -= n
	}
	if r.Dy() < 2*n {
		r.Min.Y = (r.Min.Y + r.Max.Y) / 2
		r.Max.Y = r.Min.Y
	} else {
		r.Min.Y += n
		r.Max.Y -= n
	}
	return r
}
