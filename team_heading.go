package glassfx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

// TeamHeading is a pinned heading whose characters rise in one by one, hold,
// and then sink back last character first.
type TeamHeading struct {
	ctl *Controller

	root    *Element
	heading *SplitText
}

func NewTeamHeading(ticker *Ticker) *TeamHeading {
	th := new(TeamHeading)

	th.root = NewElement("team-heading")
	th.heading = NewSplitText("team-heading", "Meet Our Creative Minds")

	th.ctl = NewController("team-heading", ticker)
	th.ctl.Always(VariantFuncs{OnActivate: th.activate})

	return th
}

func (th *TeamHeading) activate(scope *Scope) {
	chars := th.heading.Elements

	for _, el := range chars {
		scope.Set(el, Props{"y": 100, "opacity": 0})
	}

	tl := NewTimeline()

	tl.AddStagger(0, chars, func(int) Props {
		return Props{"y": 0, "opacity": 1}
	}, 1, EasePower3Out, 0.03)

	tl.Hold(0.5)

	tl.AddStagger(tl.Duration(), chars, func(int) Props {
		return Props{"y": 100, "opacity": 0}
	}, 1.5, EasePower3In, -0.03)

	scope.Timeline(tl)

	scope.NewTrigger(TriggerConfig{
		Name:     "team-heading",
		Start:    Edge{Target: th.root},
		EndAfter: Px(1000),
		Pin:      th.root,
		Scrub:    1.5,
		Phases:   tl.Phases(),
	})
}

func (th *TeamHeading) Controller() *Controller {
	return th.ctl
}

func (th *TeamHeading) Layout(top float64, viewport FPoint) float64 {
	th.root.Rect = FRectXYWH(0, top, viewport.X, viewport.Y)

	if BoldFace == nil {
		return viewport.Y
	}

	face := FaceOfSize(BoldFace, Clamp(viewport.X*0.07, 36, 120))

	width := viewport.X * 0.9

	h := th.heading.Layout(face, 0, 0, width)

	// center the widest line
	lineW := 0.0
	for _, el := range th.heading.Elements {
		lineW = max(lineW, el.Rect.Max.X)
	}
	th.heading.Layout(face, (viewport.X-lineW)*0.5, top+(viewport.Y-h)*0.5, width)

	return viewport.Y
}

func (th *TeamHeading) Draw(dst *eb.Image, scroll float64) {
	scroll -= th.ctl.PinOffset(th.root)

	DrawFilledRect(dst, th.root.Rect.Add(FPt(0, -scroll)), ColorPageBg, false)
	th.heading.Draw(dst, scroll, ColorTextLit)
}
