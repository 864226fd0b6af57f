package glassfx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ColorPageBg = MustParseColor("#0e0519")

	ColorTextDim = MustParseColor("#3c245e")
	ColorTextLit = MustParseColor("#f5efff")
)

const textSectionCopy = "We specialize in delivering holistic solutions from strategic " +
	"content planning and captivating design to cutting edge development " +
	"and dynamic marketing to ensure every aspect of your business is " +
	"built for success."

// TextSection is a pinned paragraph whose characters light up one after
// another as the page scrolls.
type TextSection struct {
	ctl *Controller

	root *Element
	text *SplitText
}

func NewTextSection(ticker *Ticker) *TextSection {
	ts := new(TextSection)

	ts.root = NewElement("text-section")
	ts.text = NewSplitText("text-section", textSectionCopy)

	ts.ctl = NewController("text-section", ticker)
	ts.ctl.Always(VariantFuncs{OnActivate: ts.activate})

	return ts
}

func (ts *TextSection) activate(scope *Scope) {
	tl := NewTimeline()

	for i, el := range ts.text.Elements {
		scope.SetColors(el, ColorProps{"color": ColorTextDim})

		tw := NewTween(el, nil, 0.5, EaseLinear)
		tw.ToColors = ColorProps{"color": ColorTextLit}
		tl.Add(f64(i)*0.1, tw)
	}

	scope.Timeline(tl)

	scope.NewTrigger(TriggerConfig{
		Name:     "text-section",
		Start:    Edge{Target: ts.root},
		EndAfter: Vh(2.5),
		Pin:      ts.root,
		Scrub:    1.2,
		Phases:   tl.Phases(),
	})
}

func (ts *TextSection) Controller() *Controller {
	return ts.ctl
}

func (ts *TextSection) Layout(top float64, viewport FPoint) float64 {
	ts.root.Rect = FRectXYWH(0, top, viewport.X, viewport.Y)

	if BoldFace == nil {
		return viewport.Y
	}

	face := FaceOfSize(BoldFace, Clamp(viewport.X*0.035, 22, 56))

	width := min(viewport.X*0.8, 1100)
	x := (viewport.X - width) * 0.5

	// lay out once to measure, then center vertically
	h := ts.text.Layout(face, x, 0, width)
	ts.text.Layout(face, x, top+(viewport.Y-h)*0.5, width)

	return viewport.Y
}

func (ts *TextSection) Draw(dst *eb.Image, scroll float64) {
	scroll -= ts.ctl.PinOffset(ts.root)

	DrawFilledRect(dst, ts.root.Rect.Add(FPt(0, -scroll)), ColorPageBg, false)
	ts.text.Draw(dst, scroll, ColorTextDim)
}
