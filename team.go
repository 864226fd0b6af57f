package glassfx

import (
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// TeamBreakpoint is the narrowest viewport that gets the pinned slide in.
const TeamBreakpoint = 1000

type teamMember struct {
	FirstName string
	LastName  string
	Role      string
	Initial   string
	Quote     string
}

var teamMembers = [4]teamMember{
	{
		"Sakib Mehdi", "Siddiqui", "Director & CEO", "S",
		"At Purple Dice, we don't just adapt to change, we create it. " +
			"We're here to turn your boldest ideas into dynamic digital realities.",
	},
	{
		"Mubasshir", "Fahad", "Director & COO", "M",
		"With every project, we push boundaries and redefine what's possible. " +
			"Together, we turn challenges into opportunities and deliver success.",
	},
	{
		"Golam", "Zakaria", "Director of External Affairs", "G",
		"Shaping connections that go beyond business, creating meaningful " +
			"partnerships that fuel innovation and shared success.",
	},
	{
		"Ahmad", "Sharif", "Head of HR & Admin", "A",
		"Building strong teams and fostering a culture of excellence drives long-term success.",
	},
}

var (
	ColorTeamCard    = MustParseColor("#1f1033")
	ColorTeamInitial = MustParseColor("#7d4dff")
	ColorTeamRole    = MustParseColor("#b9a6ff")
)

// Team shows a column per member. On wide screens the members rise in as the
// section arrives and then their cards slide in one over another while the
// section is pinned. On narrow screens each member reveals itself on its own.
type Team struct {
	ctl *Controller

	root     *Element
	members  [4]*Element
	initials [4]*Element
	cards    [4]*Element

	canvases [4]ElementCanvas
	buffer   *VIBuffer

	viewport FPoint
	mobile   bool
}

func NewTeam(ticker *Ticker, breakpoint float64) *Team {
	t := new(Team)

	t.root = NewElement("team")
	for i := range teamMembers {
		t.members[i] = NewElement("team.member")
		t.initials[i] = NewElement("team.initial")
		t.cards[i] = NewElement("team.card")
	}

	t.buffer = NewVIBuffer(64, 128)

	t.ctl = NewController("team", ticker)
	// layout dependent state is rebuilt from scratch on every resize
	t.ctl.RebuildOnResize = true

	t.ctl.AddVariant("desktop", MinWidth(breakpoint), VariantFuncs{
		OnActivate: t.activateDesktop,
	})
	t.ctl.AddVariant("mobile", Below(breakpoint), VariantFuncs{
		OnActivate: t.activateMobile,
	})

	return t
}

func (t *Team) activateDesktop(scope *Scope) {
	t.mobile = false

	const entranceDelay = 0.12
	const entranceDuration = 0.6
	const initialDelay = 0.4

	var entrance PhaseTable
	for i := range t.members {
		member, initial := t.members[i], t.initials[i]
		scope.Track(member, initial)

		start := f64(i) * entranceDelay
		entrance = append(entrance, Phase{
			Start: start, End: start + entranceDuration, Backfill: true,
			Apply: func(p float64) {
				member.Set("yPercent", 125-p*125)
				initial.Set("scale", max(0, (p-initialDelay)/(1-initialDelay)))
			},
		})
	}

	scope.NewTrigger(TriggerConfig{
		Name:   "team.entrance",
		Start:  Edge{Target: t.root, Viewport: 1},
		End:    Edge{Target: t.root},
		Scrub:  1,
		Phases: entrance,
	})

	const slideStagger = 0.06
	const slideDuration = 0.4
	const scaleStagger = 0.1

	var slide PhaseTable
	for i, card := range t.cards {
		scope.Track(card)

		// the card starts (300 - 100i)% right of its left edge, centered is -50%
		fromX := 350 - f64(i)*100

		start := f64(i) * slideStagger
		slide = append(slide, Phase{
			Start: start, End: start + slideDuration, Backfill: true,
			Apply: func(p float64) {
				card.Set("xPercent", Lerp(fromX, 0, p))
				card.Set("rotation", 20-p*20)
			},
		})

		scaleStart := 0.35 + f64(i)*scaleStagger
		slide = append(slide, Phase{
			Start: scaleStart, End: 1, Backfill: true,
			Apply: func(p float64) {
				card.Set("scale", 0.75+p*0.25)
			},
		})
	}

	scope.NewTrigger(TriggerConfig{
		Name:     "team.slide",
		Start:    Edge{Target: t.root},
		EndAfter: Vh(3),
		Pin:      t.root,
		Scrub:    1,
		Phases:   slide,
	})
}

func (t *Team) activateMobile(scope *Scope) {
	t.mobile = true

	for i := range t.members {
		member, card, initial := t.members[i], t.cards[i], t.initials[i]

		tilt := 2.0
		if i%2 != 0 {
			tilt = -2
		}

		scope.Set(member, Props{"y": 100, "opacity": 0, "rotation": -3})
		scope.Set(card, Props{"scale": 0.95, "rotation": tilt})
		scope.Set(initial, Props{"opacity": 0.8, "scale": 1.2})

		scope.NewTrigger(TriggerConfig{
			Name:  "team.member",
			Start: Edge{Target: member, Viewport: 0.85},
			End:   Edge{Target: member, Viewport: 0.5},
			Scrub: 1,

			OnUpdate: func(tr *Trigger, p float64) {
				const follow = 0.1
				scope.To(member, Props{
					"y": 100 - p*100, "opacity": p, "rotation": -3 + p*3,
				}, follow, nil)
				scope.To(card, Props{
					"scale": 0.95 + p*0.05, "rotation": tilt - p*tilt,
				}, follow, nil)
				scope.To(initial, Props{
					"opacity": 0.8 - p*0.8, "scale": 1.2 - p*0.2,
				}, follow, nil)
			},

			OnEnter: func(tr *Trigger) {
				scope.To(member, Props{"y": 0, "opacity": 1, "rotation": 0}, 1, EasePower2Out)

				tw := NewTween(card, Props{"scale": 1, "rotation": 0}, 1, EasePower2Out)
				tw.Delay = 0.1
				scope.Add(tw)

				scope.To(initial, Props{"opacity": 0, "scale": 1}, 0.8, EasePower2Out)
			},

			OnLeaveBack: func(tr *Trigger) {
				scope.To(member, Props{"y": 100, "opacity": 0, "rotation": -3}, 0.5, EasePower2In)
			},
		})
	}
}

func (t *Team) Controller() *Controller {
	return t.ctl
}

func (t *Team) Layout(top float64, viewport FPoint) float64 {
	t.viewport = viewport

	if !t.mobile {
		t.root.Rect = FRectXYWH(0, top, viewport.X, viewport.Y)

		colW := viewport.X / f64(len(t.members))
		for i := range t.members {
			t.members[i].Rect = FRectXYWH(f64(i)*colW, top+viewport.Y*0.2, colW, viewport.Y*0.6)
			t.initials[i].Rect = t.members[i].Rect
		}

		cardW := min(viewport.X*0.24, 340)
		cardH := min(cardW*1.35, viewport.Y*0.7)
		for _, card := range t.cards {
			card.Rect = FRectXYWH((viewport.X-cardW)*0.5, top+(viewport.Y-cardH)*0.5, cardW, cardH)
		}

		return viewport.Y
	}

	cardW := min(viewport.X*0.85, 420)
	cardH := cardW * 1.25
	const gap = 48

	y := top + 80
	for i := range t.members {
		t.members[i].Rect = FRectXYWH((viewport.X-cardW)*0.5, y, cardW, cardH)
		t.initials[i].Rect = t.members[i].Rect
		t.cards[i].Rect = t.members[i].Rect
		y += cardH + gap
	}

	height := y - top + 40
	t.root.Rect = FRectXYWH(0, top, viewport.X, height)

	return height
}

func (t *Team) drawCard(dst *eb.Image, i int, rect FRectangle, scroll float64, parent *Element) {
	card := t.cards[i]
	info := teamMembers[i]

	canvas := t.canvases[i].Begin(rect.Dx(), rect.Dy())
	local := RectToFRect(canvas.Bounds())

	t.buffer.Reset()
	VIaddFillPath(t.buffer, RoundRectPath(local, [4]float64{20, 20, 20, 20}), ColorTeamCard)
	DrawVIBuffer(canvas, t.buffer)

	if ClearFace != nil && BoldFace != nil {
		pad := local.Dx() * 0.08

		roleFace := FaceOfSize(ClearFace, Clamp(local.Dx()*0.05, 11, 16))
		nameFace := FaceOfSize(BoldFace, Clamp(local.Dx()*0.09, 18, 30))
		quoteFace := FaceOfSize(ClearFace, Clamp(local.Dx()*0.05, 12, 17))

		y := pad

		op := &DrawTextOptions{}
		op.GeoM.Translate(pad, y)
		op.ColorScale.ScaleWithColor(ColorTeamRole)
		DrawText(canvas, "( "+info.Role+" )", roleFace, op)
		y += FontLineSpacing(roleFace) * 1.5

		for _, line := range []string{info.FirstName, info.LastName} {
			op = &DrawTextOptions{}
			op.GeoM.Translate(pad, y)
			op.ColorScale.ScaleWithColor(ColorTextLit)
			DrawText(canvas, line, nameFace, op)
			y += FontLineSpacing(nameFace)
		}
		y += FontLineSpacing(quoteFace)

		for _, line := range WrapText(info.Quote, quoteFace, local.Dx()-pad*2) {
			op = &DrawTextOptions{}
			op.GeoM.Translate(pad, y)
			op.ColorScale.ScaleWithColor(color.NRGBA{0xd8, 0xcc, 0xf5, 0xff})
			DrawText(canvas, line, quoteFace, op)
			y += FontLineSpacing(quoteFace)
		}
	}

	// mobile cards move with their member
	if parent != nil {
		rect = rect.Add(FPt(parent.Get("x", 0), parent.Get("y", 0)))
	}

	t.canvases[i].Draw(dst, card, rect, scroll)
}

func (t *Team) drawInitial(dst *eb.Image, i int, scroll float64) {
	if BoldFace == nil {
		return
	}

	member, initial := t.members[i], t.initials[i]
	rect := member.Rect

	face := FaceOfSize(BoldFace, rect.Dy()*0.6)
	tr := TextRect(teamMembers[i].Initial, face, 0, 0)
	letter := FRectXYWH(
		rect.Min.X+(rect.Dx()-tr.Dx())*0.5,
		rect.Min.Y+(rect.Dy()-tr.Dy())*0.5+member.Get("yPercent", 0)*0.01*rect.Dy(),
		tr.Dx(), tr.Dy(),
	)

	// members are clipped to their column, like overflow: hidden
	screen := rect.Add(FPt(0, -scroll))
	clip := image.Rect(int(screen.Min.X), int(screen.Min.Y), int(screen.Max.X+1), int(screen.Max.Y+1))
	sub, ok := dst.SubImage(clip).(*eb.Image)
	if !ok {
		return
	}

	DrawElementText(sub, initial, letter, scroll, teamMembers[i].Initial, face, ColorTeamInitial)
}

func (t *Team) Draw(dst *eb.Image, scroll float64) {
	scroll -= t.ctl.PinOffset(t.root)

	DrawFilledRect(dst, t.root.Rect.Add(FPt(0, -scroll)), ColorPageBg, false)

	for i := range t.members {
		if t.mobile {
			member := t.members[i]
			if ElementOpacity(member) <= 0 {
				continue
			}
			t.drawCard(dst, i, t.cards[i].Rect, scroll, member)
			if BoldFace != nil {
				face := FaceOfSize(BoldFace, t.initials[i].Rect.Dy()*0.3)
				clr := ColorFade(ColorTeamInitial, ElementOpacity(member))
				DrawElementText(dst, t.initials[i], t.initials[i].Rect, scroll, teamMembers[i].Initial, face, clr)
			}
		} else {
			t.drawInitial(dst, i, scroll)
		}
	}

	if !t.mobile {
		for i := range t.cards {
			t.drawCard(dst, i, t.cards[i].Rect, scroll, nil)
		}
	}
}
