package glassfx

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// ServicesBreakpoint is the narrowest viewport that gets the pinned card flip.
const ServicesBreakpoint = 1000

type serviceCard struct {
	Number string
	Title  string
	Text   string
	Color  color.NRGBA
}

var serviceCards = [3]serviceCard{
	{
		"( 01 )", "Digital Marketing",
		"Strategic campaigns, Creative Content, and Social Media Management " +
			"that deliver real results and engagement.",
		MustParseColor("#7d4dff"),
	},
	{
		"( 02 )", "IT Solutions",
		"Innovative tech solutions, turning your digital vision into " +
			"reality with seamless web development, dynamic apps, and custom software.",
		MustParseColor("#5a2fd6"),
	},
	{
		"( 03 )", "Creative Hub",
		"We push boundaries by creating unique products, turning bold ideas " +
			"into interactive digital experiences.",
		MustParseColor("#3c245e"),
	},
}

var (
	ColorCardBack   = MustParseColor("#f5efff")
	ColorCardNumber = MustParseColor("#8a7fa3")
	ColorCardText   = MustParseColor("#1a0d2e")
)

// Services is the three card section.
//
// On wide screens the section pins while the cards come together, split
// apart at 35% and flip over at 70%. On narrow screens every card flips on
// its own as it scrolls through the viewport.
type Services struct {
	ctl *Controller

	root      *Element
	header    *Element
	container *Element
	cards     [3]*Element

	fronts [3]*eb.Image

	canvases [3]ElementCanvas
	buffer   *VIBuffer

	viewport FPoint
	mobile   bool
}

func NewServices(ticker *Ticker, breakpoint float64) *Services {
	s := new(Services)

	s.root = NewElement("services")
	s.header = NewElement("services.header")
	s.container = NewElement("services.container")
	for i := range s.cards {
		s.cards[i] = NewElement("services.card")
	}

	s.buffer = NewVIBuffer(64, 128)

	s.container.SetDefault("widthPercent", 75)
	s.container.SetDefault("gap", 0)

	s.ctl = NewController("services", ticker)

	s.ctl.AddVariant("desktop", MinWidth(breakpoint), VariantFuncs{
		OnActivate: s.activateDesktop,
	})
	s.ctl.AddVariant("mobile", Below(breakpoint), VariantFuncs{
		OnActivate: s.activateMobile,
	})

	return s
}

// SetCardImage sets the picture on the front of card i.
func (s *Services) SetCardImage(i int, img *eb.Image) {
	if 0 <= i && i < len(s.fronts) {
		s.fronts[i] = img
	}
}

// joinRadiuses makes the three cards look like one strip.
func (s *Services) joinRadiuses(set func(el *Element, to Props)) {
	set(s.cards[0], Props{"radiusL": 20, "radiusR": 0})
	set(s.cards[1], Props{"radiusL": 0, "radiusR": 0})
	set(s.cards[2], Props{"radiusL": 0, "radiusR": 20})
}

func (s *Services) activateDesktop(scope *Scope) {
	s.mobile = false

	scope.Set(s.header, Props{"y": 40, "opacity": 0})
	scope.Set(s.container, Props{"widthPercent": 75, "gap": 0})
	for _, card := range s.cards {
		scope.Set(card, Props{"rotationY": 0, "y": 0, "rotation": 0})
	}
	s.joinRadiuses(scope.Set)

	const splitDuration = 0.5
	const flipDuration = 0.75

	split := NewToggle("services.split", 0.35,
		func() {
			scope.To(s.container, Props{"gap": 20}, splitDuration, EasePower3Out)
			for _, card := range s.cards {
				scope.To(card, Props{"radiusL": 20, "radiusR": 20}, splitDuration, EasePower3Out)
			}
		},
		func() {
			scope.To(s.container, Props{"gap": 0}, splitDuration, EasePower3Out)
			s.joinRadiuses(func(el *Element, to Props) {
				scope.To(el, to, splitDuration, EasePower3Out)
			})
		},
	)

	flip := NewToggle("services.flip", 0.7,
		func() {
			scope.StaggerTo(s.cards[:], func(int) Props {
				return Props{"rotationY": 180}
			}, flipDuration, EasePower3InOut, 0.1)
			scope.To(s.cards[0], Props{"y": 30, "rotation": -15}, flipDuration, EasePower3InOut)
			scope.To(s.cards[2], Props{"y": 30, "rotation": 15}, flipDuration, EasePower3InOut)
		},
		func() {
			scope.StaggerTo(s.cards[:], func(int) Props {
				return Props{"rotationY": 0}
			}, flipDuration, EasePower3InOut, -0.1)
			scope.To(s.cards[0], Props{"y": 0, "rotation": 0}, flipDuration, EasePower3InOut)
			scope.To(s.cards[2], Props{"y": 0, "rotation": 0}, flipDuration, EasePower3InOut)
		},
	)

	phases := PhaseTable{
		{
			Start: 0, End: 0.25, Backfill: true,
			Apply: func(t float64) {
				s.container.Set("widthPercent", Lerp(75, 60, t))
			},
		},
		{
			Start: 0.1, End: 0.25, Backfill: true,
			Apply: func(t float64) {
				s.header.Set("y", Lerp(40, 0, t))
				s.header.Set("opacity", t)
			},
		},
	}

	scope.NewTrigger(TriggerConfig{
		Name:     "services",
		Start:    Edge{Target: s.root, Offset: Vh(0.2)},
		EndAfter: Vh(4),
		Pin:      s.root,
		Scrub:    1,
		Phases:   phases,
		Toggles:  []*Toggle{split, flip},
	})
}

func (s *Services) activateMobile(scope *Scope) {
	s.mobile = true

	targets := append([]*Element{s.container, s.header}, s.cards[:]...)
	scope.Tweener().KillTweensOf(targets...)

	scope.Set(s.header, Props{"y": 40, "opacity": 0})
	for _, card := range s.cards {
		scope.Set(card, Props{"y": 80, "opacity": 0, "scale": 0.95, "rotationY": 0})
		scope.Set(card, Props{"radiusL": 20, "radiusR": 20})
	}

	for _, card := range s.cards {
		tl := NewTimeline().Add(0, NewTween(card, Props{"rotationY": 180}, 1.2, EasePower3InOut))
		scope.Timeline(tl)

		scope.NewTrigger(TriggerConfig{
			Name:   "services.card",
			Start:  Edge{Target: card, Viewport: 0.8},
			End:    Edge{Target: card, Viewport: 0.3},
			Scrub:  1.5,
			Phases: tl.Phases(),
		})
	}

	reveal := NewTimeline()
	reveal.Add(0, NewTween(s.header, Props{"y": 0, "opacity": 1}, 1, EasePower3Out))
	reveal.AddStagger(0.2, s.cards[:], func(int) Props {
		return Props{"y": 0, "opacity": 1, "scale": 1}
	}, 1, EasePower3Out, 0.2)
	scope.Timeline(reveal)

	scope.NewTrigger(TriggerConfig{
		Name:   "services.reveal",
		Start:  Edge{Target: s.root, Viewport: 0.85},
		End:    Edge{Target: s.root, Viewport: 0.5},
		Scrub:  1,
		Phases: reveal.Phases(),
	})
}

func (s *Services) Controller() *Controller {
	return s.ctl
}

func (s *Services) Layout(top float64, viewport FPoint) float64 {
	s.viewport = viewport

	headerH := Clamp(viewport.X*0.035, 24, 48) * 1.4
	s.header.Rect = FRectXYWH(0, top+viewport.Y*0.08, viewport.X, headerH)

	if !s.mobile {
		s.root.Rect = FRectXYWH(0, top, viewport.X, viewport.Y)
		s.container.Rect = FRectXYWH(0, top+viewport.Y*0.25, viewport.X, viewport.Y*0.65)
		return viewport.Y
	}

	// cards stack under the header
	cardW := min(viewport.X*0.85, 420)
	cardH := cardW * 1.3
	const gap = 24

	y := s.header.Rect.Max.Y + 40
	for _, card := range s.cards {
		card.Rect = FRectXYWH((viewport.X-cardW)*0.5, y, cardW, cardH)
		y += cardH + gap
	}

	height := y - top + 40
	s.root.Rect = FRectXYWH(0, top, viewport.X, height)
	s.container.Rect = FRectXYWH(0, s.cards[0].Rect.Min.Y, viewport.X, y-s.cards[0].Rect.Min.Y)

	return height
}

// desktopCardRect places card i in the container, which changes width and
// gap while pinned.
func (s *Services) desktopCardRect(i int) FRectangle {
	cw := s.viewport.X * s.container.Get("widthPercent", 75) * 0.01
	gap := s.container.Get("gap", 0)

	cardW := max((cw-2*gap)/3, 1)
	cardH := min(cardW*1.45, s.container.Rect.Dy())

	x := (s.viewport.X-cw)*0.5 + f64(i)*(cardW+gap)
	y := s.container.Rect.Min.Y + (s.container.Rect.Dy()-cardH)*0.5

	return FRectXYWH(x, y, cardW, cardH)
}

func (s *Services) drawCard(dst *eb.Image, i int, rect FRectangle, scroll float64) {
	card := s.cards[i]
	info := serviceCards[i]

	canvas := s.canvases[i].Begin(rect.Dx(), rect.Dy())
	local := RectToFRect(canvas.Bounds())

	radiuses := [4]float64{
		card.Get("radiusL", 20), card.Get("radiusR", 20),
		card.Get("radiusR", 20), card.Get("radiusL", 20),
	}

	buffer := s.buffer
	buffer.Reset()

	if !ElementBackFacing(card) {
		VIaddFillPath(buffer, RoundRectPath(local, radiuses), info.Color)
		DrawVIBuffer(canvas, buffer)

		if img := s.fronts[i]; img != nil {
			iw, ih := ImageSizeF(img)
			scale := max(local.Dx()/iw, local.Dy()/ih)
			op := &DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate((local.Dx()-iw*scale)*0.5, (local.Dy()-ih*scale)*0.5)
			DrawImage(canvas, img, op)
		}
	} else {
		VIaddFillPath(buffer, RoundRectPath(local, radiuses), ColorCardBack)
		DrawVIBuffer(canvas, buffer)

		if ClearFace != nil && BoldFace != nil {
			pad := local.Dx() * 0.08

			numFace := FaceOfSize(ClearFace, Clamp(local.Dx()*0.06, 12, 20))
			titleFace := FaceOfSize(BoldFace, Clamp(local.Dx()*0.1, 18, 34))
			bodyFace := FaceOfSize(ClearFace, Clamp(local.Dx()*0.055, 12, 18))

			op := &DrawTextOptions{}
			op.GeoM.Translate(pad, pad)
			op.ColorScale.ScaleWithColor(ColorCardNumber)
			DrawText(canvas, info.Number, numFace, op)

			y := local.Dy() * 0.45
			op = &DrawTextOptions{}
			op.GeoM.Translate(pad, y)
			op.ColorScale.ScaleWithColor(ColorCardText)
			DrawText(canvas, info.Title, titleFace, op)

			y += FontLineSpacing(titleFace) * 1.2
			for _, line := range WrapText(info.Text, bodyFace, local.Dx()-pad*2) {
				op = &DrawTextOptions{}
				op.GeoM.Translate(pad, y)
				op.ColorScale.ScaleWithColor(ColorCardText)
				DrawText(canvas, line, bodyFace, op)
				y += FontLineSpacing(bodyFace)
			}
		}
	}

	s.canvases[i].Draw(dst, card, rect, scroll)
}

func (s *Services) Draw(dst *eb.Image, scroll float64) {
	scroll -= s.ctl.PinOffset(s.root)

	DrawFilledRect(dst, s.root.Rect.Add(FPt(0, -scroll)), ColorPageBg, false)

	if BoldFace != nil {
		face := FaceOfSize(BoldFace, Clamp(s.viewport.X*0.035, 24, 48))
		title := "Three core strengths, one unified goal"
		tr := TextRect(title, face, 0, 0)
		rect := FRectXYWH((s.viewport.X-tr.Dx())*0.5, s.header.Rect.Min.Y, tr.Dx(), tr.Dy())
		DrawElementText(dst, s.header, rect, scroll, title, face, ColorTextLit)
	}

	for i, card := range s.cards {
		rect := card.Rect
		if !s.mobile {
			rect = s.desktopCardRect(i)
		}
		s.drawCard(dst, i, rect, scroll)
	}
}
