package glassfx

import (
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// NavbarBreakpoint is the narrowest viewport that shows the links.
const NavbarBreakpoint = 768

var navbarLinks = [...]string{"Home", "Service", "Team", "Contact"}

var (
	ColorNavBgLight     = MustParseColor("rgba(14, 5, 25, 0.2)")
	ColorNavBgDark      = MustParseColor("rgba(14, 5, 25, 0.75)")
	ColorNavBorderLight = MustParseColor("rgba(125, 77, 255, 0.2)")
	ColorNavBorderDark  = MustParseColor("rgba(125, 77, 255, 0.5)")
	ColorNavButton      = MustParseColor("#7d4dff")
	ColorNavShine       = MustParseColor("rgba(255, 255, 255, 0.1)")
)

// Navbar floats over the page. On wide screens it shrinks and darkens
// over the first few hundred pixels of scrolling.
type Navbar struct {
	ctl *Controller

	nav     *Element
	wrapper *Element
	logo    *Element
	links   *Element
	button  *Element

	logoImage *eb.Image

	canvas ElementCanvas
	buffer *VIBuffer

	viewport FPoint
	mobile   bool
}

func NewNavbar(ticker *Ticker, breakpoint float64) *Navbar {
	n := new(Navbar)

	n.nav = NewElement("navbar")
	n.wrapper = NewElement("navbar.wrapper")
	n.logo = NewElement("navbar.logo")
	n.links = NewElement("navbar.links")
	n.button = NewElement("navbar.button")

	n.buffer = NewVIBuffer(128, 256)

	n.ctl = NewController("navbar", ticker)

	n.ctl.AddVariant("desktop", MinWidth(breakpoint), VariantFuncs{
		OnActivate: n.activateDesktop,
	})
	n.ctl.AddVariant("mobile", Below(breakpoint), VariantFuncs{
		OnActivate: n.activateMobile,
	})

	return n
}

// SetLogo sets the logo image. Without one the name is drawn instead.
func (n *Navbar) SetLogo(img *eb.Image) {
	n.logoImage = img
}

func (n *Navbar) shine(scope *Scope) {
	scope.Set(n.button, Props{"shine": 0})

	tw := NewTween(n.button, Props{"shine": 2}, 2, EaseLinear)
	tw.Repeat = -1
	scope.Add(tw)
}

func (n *Navbar) activateDesktop(scope *Scope) {
	n.mobile = false

	scope.Set(n.nav, Props{"widthPercent": 60, "scale": 1})
	scope.SetColors(n.nav, ColorProps{"bg": ColorNavBgLight, "border": ColorNavBorderLight})
	scope.Set(n.wrapper, Props{"minHeight": 80})
	scope.Set(n.logo, Props{"scale": 1})
	scope.Set(n.links, Props{"gap": 40, "fontScale": 1, "opacity": 1})
	scope.Set(n.button, Props{"fontScale": 1})

	tl := NewTimeline()

	navTween := NewTween(n.nav, Props{"widthPercent": 50, "scale": 0.95}, 1, EasePower2Out)
	navTween.ToColors = ColorProps{"bg": ColorNavBgDark, "border": ColorNavBorderDark}
	tl.Add(0, navTween)

	tl.Add(0, NewTween(n.wrapper, Props{"minHeight": 70}, 1, EasePower2Out))
	tl.Add(0, NewTween(n.logo, Props{"scale": 0.9}, 1, EasePower2Out))
	tl.Add(0, NewTween(n.links, Props{"gap": 24, "fontScale": 0.9}, 1, EasePower2Out))
	tl.Add(0, NewTween(n.button, Props{"fontScale": 0.9}, 1, EasePower2Out))

	scope.Timeline(tl)

	scope.NewTrigger(TriggerConfig{
		Name:   "navbar",
		Start:  Edge{Offset: Px(100)},
		End:    Edge{Offset: Px(400)},
		Scrub:  0.8,
		Phases: tl.Phases(),
	})

	n.shine(scope)
}

func (n *Navbar) activateMobile(scope *Scope) {
	n.mobile = true

	scope.Set(n.nav, Props{"widthPercent": 95, "scale": 1})
	scope.SetColors(n.nav, ColorProps{"bg": ColorNavBgLight, "border": ColorNavBorderLight})
	scope.Set(n.wrapper, Props{"minHeight": 60})
	scope.Set(n.logo, Props{"scale": 1})
	scope.Set(n.links, Props{"opacity": 0})
	scope.Set(n.button, Props{"fontScale": 1})

	n.shine(scope)
}

func (n *Navbar) Controller() *Controller {
	return n.ctl
}

// Layout takes no room, the navbar is drawn over the page.
func (n *Navbar) Layout(top float64, viewport FPoint) float64 {
	n.viewport = viewport
	return 0
}

func (n *Navbar) navRect() FRectangle {
	w := n.viewport.X * n.nav.Get("widthPercent", 60) * 0.01
	h := n.wrapper.Get("minHeight", 80) - 16
	return FRectXYWH((n.viewport.X-w)*0.5, 16, w, h)
}

func (n *Navbar) fontSize() float64 {
	if n.mobile {
		return 14
	}
	return Clamp(n.viewport.X*0.015, 16, 20)
}

func (n *Navbar) Draw(dst *eb.Image, scroll float64) {
	if n.viewport.X <= 0 {
		return
	}

	rect := n.navRect()
	canvas := n.canvas.Begin(rect.Dx(), rect.Dy())
	local := RectToFRect(canvas.Bounds())

	radius := local.Dy() * 0.5
	radiuses := [4]float64{radius, radius, radius, radius}

	n.buffer.Reset()
	VIaddFillPath(n.buffer, RoundRectPath(local, radiuses), n.nav.Color("bg", ColorNavBgLight))
	VIaddStrokePath(n.buffer, RoundRectPath(local.Inset(0.5), radiuses), 1, n.nav.Color("border", ColorNavBorderLight))
	DrawVIBuffer(canvas, n.buffer)

	pad := local.Dy() * 0.4

	n.drawLogo(canvas, local, pad)
	if !n.mobile && ElementOpacity(n.links) > 0 {
		n.drawLinks(canvas, local)
	}
	n.drawButton(canvas, local, pad)

	// fixed, so scroll doesn't move it
	n.canvas.Draw(dst, n.nav, rect, 0)
}

func (n *Navbar) drawLogo(dst *eb.Image, local FRectangle, pad float64) {
	scale := n.logo.Get("scale", 1)
	cy := local.Dy() * 0.5

	if n.logoImage != nil {
		iw, ih := ImageSizeF(n.logoImage)
		// 80 x 35 box
		fit := min(80/iw, 35/ih) * scale

		op := &DrawImageOptions{}
		op.GeoM.Scale(fit, fit)
		op.GeoM.Translate(pad, cy-ih*fit*0.5)
		DrawImage(dst, n.logoImage, op)
		return
	}

	if BoldFace == nil {
		return
	}
	face := FaceOfSize(BoldFace, 22*scale)
	tr := TextRect("PURPLE DICE", face, 0, 0)

	op := &DrawTextOptions{}
	op.GeoM.Translate(pad, cy-tr.Dy()*0.5)
	op.ColorScale.ScaleWithColor(ColorTextLit)
	DrawText(dst, "PURPLE DICE", face, op)
}

func (n *Navbar) drawLinks(dst *eb.Image, local FRectangle) {
	if ClearFace == nil {
		return
	}

	face := FaceOfSize(ClearFace, n.fontSize()*n.links.Get("fontScale", 1))
	gap := n.links.Get("gap", 40)

	total := 0.0
	widths := make([]float64, len(navbarLinks))
	for i, link := range navbarLinks {
		widths[i] = TextRect(link, face, 0, 0).Dx()
		total += widths[i]
	}
	total += gap * f64(len(navbarLinks)-1)

	x := (local.Dx() - total) * 0.5
	y := (local.Dy() - FontLineSpacing(face)) * 0.5

	clr := ColorFade(ColorTextLit, ElementOpacity(n.links))

	for i, link := range navbarLinks {
		op := &DrawTextOptions{}
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(clr)
		DrawText(dst, link, face, op)
		x += widths[i] + gap
	}
}

func (n *Navbar) drawButton(dst *eb.Image, local FRectangle, pad float64) {
	if ClearFace == nil {
		return
	}

	label := "Get in Touch"
	if n.mobile {
		label = "Contact"
	}

	fontScale := n.button.Get("fontScale", 1)
	face := FaceOfSize(ClearFace, n.fontSize()*fontScale)
	tr := TextRect(label, face, 0, 0)

	padX := Lerp(24, 28, (fontScale-0.9)/0.1)
	padY := Lerp(6, 8, (fontScale-0.9)/0.1)
	if n.mobile {
		padX, padY = 20, 6
	}

	w, h := tr.Dx()+padX*2, tr.Dy()+padY*2
	btn := FRectXYWH(local.Max.X-pad*0.5-w, (local.Dy()-h)*0.5, w, h)

	r := h * 0.5
	n.buffer.Reset()
	VIaddFillPath(n.buffer, RoundRectPath(btn, [4]float64{r, r, r, r}), ColorNavButton)
	DrawVIBuffer(dst, n.buffer)

	// a light band sweeping across the button
	clip := image.Rect(int(btn.Min.X), int(btn.Min.Y), int(btn.Max.X), int(btn.Max.Y))
	if sub, ok := dst.SubImage(clip).(*eb.Image); ok {
		bandX := btn.Min.X + (n.button.Get("shine", 0)-1)*w
		const steps = 8
		for i := range steps {
			t := f64(i) / steps
			// peaks in the middle of the band
			a := 1 - Abs(t*2-1)
			DrawFilledRect(sub,
				FRectXYWH(bandX+t*w, btn.Min.Y, w/steps+1, h),
				ColorFade(ColorNavShine, a), false)
		}
	}

	op := &DrawTextOptions{}
	op.GeoM.Translate(btn.Min.X+padX, btn.Min.Y+padY)
	op.ColorScale.ScaleWithColor(color.White)
	DrawText(dst, label, face, op)
}
