package glassfx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

var ColorHeroOverlay = MustParseColor("rgba(14, 5, 25, 0.35)")

// Hero is the first screen: the glass effect with the headline over it.
//
// The headline stays hidden until the glass pipeline drew its first frame
// and the preloader overlay got out of the way, then it plays in once.
type Hero struct {
	ctl *Controller

	root     *Element
	pipeline *Pipeline
	heading  *SplitText

	pipelineReady bool
	preloaderDone bool
	played        bool

	entrance *Timeline
}

func NewHero(ticker *Ticker, pipeline *Pipeline) *Hero {
	h := new(Hero)

	h.root = NewElement("hero")
	h.pipeline = pipeline

	h.heading = NewSplitText("hero", "creativity, precision, results")
	h.heading.LinePerWord = true

	h.ctl = NewController("hero", ticker)
	h.ctl.Always(VariantFuncs{})

	for _, el := range h.heading.Elements {
		h.ctl.Base().Set(el, Props{"opacity": 0, "x": -20, "scale": 1.1, "rotationY": 90})
	}

	pipeline.OnReady(func() {
		h.pipelineReady = true
		h.maybePlay()
	})

	return h
}

// SetPreloaderDone tells the hero the preloader overlay is gone.
func (h *Hero) SetPreloaderDone() {
	h.preloaderDone = true
	h.maybePlay()
}

func (h *Hero) maybePlay() {
	if h.played || !h.pipelineReady || !h.preloaderDone {
		return
	}
	if h.ctl.Disposed() {
		return
	}
	h.played = true

	InfoLogger.Print("hero: playing entrance")

	tl := NewTimeline()
	for i := range h.heading.Words {
		tl.AddStagger(0.5*f64(i), h.heading.WordElements(i), func(int) Props {
			return Props{"opacity": 1, "x": 0, "scale": 1, "rotationY": 0}
		}, 0.7, EasePower3Out, 0.04)
	}

	h.entrance = h.ctl.Base().Timeline(tl)
	h.entrance.Play()
}

// Played reports whether the entrance started.
func (h *Hero) Played() bool {
	return h.played
}

func (h *Hero) Controller() *Controller {
	return h.ctl
}

func (h *Hero) Layout(top float64, viewport FPoint) float64 {
	h.root.Rect = FRectXYWH(0, top, viewport.X, viewport.Y)

	if BoldFace == nil {
		return viewport.Y
	}

	face := FaceOfSize(BoldFace, Clamp(viewport.X*0.08, 48, 140))

	x := viewport.X * 0.08
	height := h.heading.Layout(face, x, 0, viewport.X-x*2)
	h.heading.Layout(face, x, top+(viewport.Y-height)*0.55, viewport.X-x*2)

	return viewport.Y
}

// HeroRect is where the glass is drawn, in page coordinates.
func (h *Hero) HeroRect() FRectangle {
	return h.root.Rect
}

func (h *Hero) Draw(dst *eb.Image, scroll float64) {
	rect := h.root.Rect.Add(FPt(0, -scroll))
	if rect.Max.Y <= 0 {
		return
	}

	DrawFilledRect(dst, rect, ColorPageBg, false)
	h.pipeline.Draw(dst, rect.Min)
	DrawFilledRect(dst, rect, ColorHeroOverlay, false)

	h.heading.Draw(dst, scroll, ColorTextLit)
}
