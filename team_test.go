package glassfx

import "testing"

func newTestTeam(viewport FPoint) (*Team, *Page, *frameClock) {
	ticker := NewTicker()
	team := NewTeam(ticker, TeamBreakpoint)
	page := NewPage(team)
	page.Refresh(viewport)
	return team, page, &frameClock{ticker: ticker}
}

func TestTeamDesktopEntranceOnLoad(t *testing.T) {
	team, _, _ := newTestTeam(FPt(1200, 800))

	// the section starts on screen, so the entrance window is already behind
	for i, member := range team.members {
		if got := member.Get("yPercent", -1); !almostEqual(got, 0) {
			t.Errorf("member %d yPercent = %v, want 0", i, got)
		}
		if got := team.initials[i].Get("scale", -1); !almostEqual(got, 1) {
			t.Errorf("initial %d scale = %v, want 1", i, got)
		}
	}
}

func TestTeamDesktopSlide(t *testing.T) {
	team, page, clock := newTestTeam(FPt(1200, 800))

	slides := triggersNamed(team.ctl, "team.slide")
	if len(slides) != 1 {
		t.Fatalf("%d slide triggers, want 1", len(slides))
	}
	if tr := slides[0]; tr.Start() != 0 || tr.End() != 2400 || !tr.Pinned() {
		t.Errorf("slide = %v, want pinned [0, 2400]", tr)
	}
	if got := page.Height(); got != 800+2400 {
		t.Errorf("page height = %v, want %v", got, 800+2400)
	}

	steps := []struct {
		scroll float64

		xPercent [4]float64
		scale    [4]float64
	}{
		{0, [4]float64{350, 250, 150, 50}, [4]float64{0.75, 0.75, 0.75, 0.75}},
		// progress 0.2: card 0 is halfway, the others follow 0.06 apart
		{480, [4]float64{175, 162.5, 120, 47.5}, [4]float64{0.75, 0.75, 0.75, 0.75}},
		// progress 0.675: every card is in, card 0 is halfway grown
		{1620, [4]float64{0, 0, 0, 0}, [4]float64{0.875, 0.75 + 0.25*0.225/0.55, 0.75 + 0.25*0.125/0.45, 0.75 + 0.25*0.025/0.35}},
		{2400, [4]float64{0, 0, 0, 0}, [4]float64{1, 1, 1, 1}},
		{0, [4]float64{350, 250, 150, 50}, [4]float64{0.75, 0.75, 0.75, 0.75}},
	}

	for _, step := range steps {
		page.SetScroll(step.scroll)
		clock.run(10)

		for i, card := range team.cards {
			if got := card.Get("xPercent", -1); !almostEqual(got, step.xPercent[i]) {
				t.Errorf("scroll %v: card %d xPercent %v, want %v", step.scroll, i, got, step.xPercent[i])
			}
			if got := card.Get("scale", -1); !almostEqual(got, step.scale[i]) {
				t.Errorf("scroll %v: card %d scale %v, want %v", step.scroll, i, got, step.scale[i])
			}
		}
	}

	page.SetScroll(1620)
	if got := team.ctl.PinOffset(team.root); got != 1620 {
		t.Errorf("pin offset = %v, want 1620", got)
	}
}

func TestTeamBreakpointSwitch(t *testing.T) {
	team, page, clock := newTestTeam(FPt(1200, 800))
	slide := triggersNamed(team.ctl, "team.slide")[0]

	page.SetScroll(480)
	clock.run(10)

	page.Refresh(FPt(800, 800))

	if got := team.ctl.ActiveVariant(); got != "mobile" {
		t.Fatalf("variant = %q, want mobile", got)
	}
	if !slide.Killed() {
		t.Error("slide trigger survived the switch")
	}
	if got := team.ctl.PinSpacing(); got != 0 {
		t.Errorf("pin spacing = %v, want 0", got)
	}
	if n := len(triggersNamed(team.ctl, "team.member")); n != len(team.members) {
		t.Errorf("%d member triggers, want %d", n, len(team.members))
	}
	for i, card := range team.cards {
		if card.Has("xPercent") {
			t.Errorf("card %d kept xPercent %v", i, card.Get("xPercent", 0))
		}
	}

	// a resize that keeps the breakpoint still rebuilds
	members := triggersNamed(team.ctl, "team.member")
	page.Refresh(FPt(900, 800))
	if !members[0].Killed() {
		t.Error("member trigger survived a rebuild")
	}
	if got := team.ctl.ActiveVariant(); got != "mobile" {
		t.Errorf("variant = %q, want mobile", got)
	}
}
