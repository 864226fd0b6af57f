package glassfx

import (
	"image/color"
	"math"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

type VIBuffer struct {
	Vertices []eb.Vertex
	Indices  []uint16
}

func NewVIBuffer(vertCap int, indexCap int) *VIBuffer {
	vi := new(VIBuffer)

	vi.Vertices = make([]eb.Vertex, 0, vertCap)
	vi.Indices = make([]uint16, 0, indexCap)

	return vi
}

func (vi *VIBuffer) Reset() {
	vi.Vertices = vi.Vertices[:0]
	vi.Indices = vi.Indices[:0]
}

// assumes you will use WhiteImage
// so it will set SrcX and SrcY to 1
func VIaddFillPath(buffer *VIBuffer, path *ebv.Path, clr color.Color) {
	vPrevLen := len(buffer.Vertices)

	buffer.Vertices, buffer.Indices = path.AppendVerticesAndIndicesForFilling(buffer.Vertices, buffer.Indices)

	r, g, b, a := clr.RGBA()

	rf := float32(r) / 0xffff
	gf := float32(g) / 0xffff
	bf := float32(b) / 0xffff
	af := float32(a) / 0xffff

	for i := vPrevLen; i < len(buffer.Vertices); i++ {
		buffer.Vertices[i].SrcX = 1
		buffer.Vertices[i].SrcY = 1
		buffer.Vertices[i].ColorR = rf
		buffer.Vertices[i].ColorG = gf
		buffer.Vertices[i].ColorB = bf
		buffer.Vertices[i].ColorA = af
	}
}

// same as VIaddFillPath but strokes the path
func VIaddStrokePath(buffer *VIBuffer, path *ebv.Path, strokeWidth float64, clr color.Color) {
	vPrevLen := len(buffer.Vertices)

	op := &ebv.StrokeOptions{}
	op.Width = f32(strokeWidth)
	op.LineJoin = ebv.LineJoinRound

	buffer.Vertices, buffer.Indices = path.AppendVerticesAndIndicesForStroke(buffer.Vertices, buffer.Indices, op)

	r, g, b, a := clr.RGBA()

	for i := vPrevLen; i < len(buffer.Vertices); i++ {
		buffer.Vertices[i].SrcX = 1
		buffer.Vertices[i].SrcY = 1
		buffer.Vertices[i].ColorR = float32(r) / 0xffff
		buffer.Vertices[i].ColorG = float32(g) / 0xffff
		buffer.Vertices[i].ColorB = float32(b) / 0xffff
		buffer.Vertices[i].ColorA = float32(a) / 0xffff
	}
}

// VItransform applies geom to vertices from index start on.
func VItransform(buffer *VIBuffer, start int, geom eb.GeoM) {
	for i := start; i < len(buffer.Vertices); i++ {
		v := &buffer.Vertices[i]
		x, y := geom.Apply(f64(v.DstX), f64(v.DstY))
		v.DstX, v.DstY = f32(x), f32(y)
	}
}

func DrawVIBuffer(dst *eb.Image, buffer *VIBuffer) {
	if len(buffer.Indices) == 0 {
		return
	}
	DrawTriangles(dst, buffer.Vertices, buffer.Indices, WhiteImage, nil)
}

// RoundRectPath makes a rect path with corner radiuses in order
// top left, top right, bottom right, bottom left.
func RoundRectPath(rect FRectangle, radiuses [4]float64) *ebv.Path {
	maxR := min(rect.Dx(), rect.Dy()) * 0.5
	for i := range radiuses {
		radiuses[i] = Clamp(radiuses[i], 0, maxR)
	}

	x0, y0 := f32(rect.Min.X), f32(rect.Min.Y)
	x1, y1 := f32(rect.Max.X), f32(rect.Max.Y)

	p := &ebv.Path{}

	p.MoveTo(x0+f32(radiuses[0]), y0)

	corner := func(cx, cy, nx, ny float32, r float64) {
		if r <= 0 {
			p.LineTo(cx, cy)
		} else {
			p.ArcTo(cx, cy, nx, ny, f32(r))
		}
	}

	corner(x1, y0, x1, y1, radiuses[1])
	corner(x1, y1, x0, y1, radiuses[2])
	corner(x0, y1, x0, y0, radiuses[3])
	corner(x0, y0, x1, y0, radiuses[0])

	p.Close()

	return p
}

// ElementGeoM is the transform that draws a box of rect's size, placed at the
// origin, where el is on screen.
//
// It reads x, y, xPercent, yPercent, scale, scaleX, scaleY, rotation and
// rotationY. rotationY is drawn as a horizontal squash, the back side is
// not mirrored.
func ElementGeoM(el *Element, rect FRectangle, scroll float64) eb.GeoM {
	w, h := rect.Dx(), rect.Dy()

	scale := el.Get("scale", 1)
	sx := scale * el.Get("scaleX", 1) * Abs(math.Cos(el.Get("rotationY", 0)*math.Pi/180))
	sy := scale * el.Get("scaleY", 1)

	rot := el.Get("rotation", 0) * math.Pi / 180

	geom := TransformToCenter(w, h, sx, sy, rot)

	c := FRectangleCenter(rect)
	geom.Translate(
		c.X+el.Get("x", 0)+el.Get("xPercent", 0)*0.01*w,
		c.Y+el.Get("y", 0)+el.Get("yPercent", 0)*0.01*h-scroll,
	)

	return geom
}

func ElementOpacity(el *Element) float64 {
	return Clamp(el.Get("opacity", 1), 0, 1)
}

// ElementBackFacing reports whether el is turned more than 90 degrees around
// its vertical axis.
func ElementBackFacing(el *Element) bool {
	return math.Cos(el.Get("rotationY", 0)*math.Pi/180) < 0
}

// DrawElementBox fills el's rect, transformed by el's properties.
func DrawElementBox(
	dst *eb.Image,
	buffer *VIBuffer,
	el *Element,
	rect FRectangle,
	scroll float64,
	radiuses [4]float64,
	clr color.Color,
) {
	alpha := ElementOpacity(el)
	if alpha <= 0 || rect.Empty() {
		return
	}

	buffer.Reset()

	path := RoundRectPath(FRectWH(rect.Dx(), rect.Dy()), radiuses)
	VIaddFillPath(buffer, path, ColorFade(clr, alpha))
	VItransform(buffer, 0, ElementGeoM(el, rect, scroll))

	DrawVIBuffer(dst, buffer)
}

// DrawElementText draws str with its top left corner at rect's, transformed
// by el's properties around rect's center.
func DrawElementText(
	dst *eb.Image,
	el *Element,
	rect FRectangle,
	scroll float64,
	str string,
	face *ebt.GoTextFace,
	clr color.Color,
) {
	alpha := ElementOpacity(el)
	if alpha <= 0 || str == "" {
		return
	}

	op := &DrawTextOptions{}
	op.GeoM = ElementGeoM(el, rect, scroll)
	op.ColorScale.ScaleWithColor(ColorFade(clr, alpha))
	op.LayoutOptions.LineSpacing = FontLineSpacing(face)

	DrawText(dst, str, face, op)
}

// TextRect measures str and places it at x, y.
func TextRect(str string, face *ebt.GoTextFace, x, y float64) FRectangle {
	w, h := ebt.Measure(str, face, FontLineSpacing(face))
	return FRectXYWH(x, y, w, h)
}

// ElementCanvas is an offscreen image an element's content is drawn into,
// so the whole thing can be drawn with the element's transform.
type ElementCanvas struct {
	img *eb.Image
}

// Begin returns a cleared canvas of at least w x h.
func (ec *ElementCanvas) Begin(w, h float64) *eb.Image {
	iw, ih := max(int(math.Ceil(w)), 1), max(int(math.Ceil(h)), 1)

	if ec.img == nil || ec.img.Bounds().Dx() != iw || ec.img.Bounds().Dy() != ih {
		if ec.img != nil {
			ec.img.Deallocate()
		}
		ec.img = eb.NewImage(iw, ih)
	}

	ec.img.Clear()
	return ec.img
}

// Draw draws the canvas where el is, its top left corner at rect's.
func (ec *ElementCanvas) Draw(dst *eb.Image, el *Element, rect FRectangle, scroll float64) {
	if ec.img == nil {
		return
	}
	alpha := ElementOpacity(el)
	if alpha <= 0 {
		return
	}

	w, h := ImageSizeF(ec.img)

	op := &DrawImageOptions{}
	op.GeoM = ElementGeoM(el, FRectXYWH(rect.Min.X, rect.Min.Y, w, h), scroll)
	op.ColorScale.ScaleAlpha(f32(alpha))

	DrawImage(dst, ec.img, op)
}

func (ec *ElementCanvas) Dispose() {
	if ec.img != nil {
		ec.img.Deallocate()
		ec.img = nil
	}
}
