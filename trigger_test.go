package glassfx

import (
	"slices"
	"testing"
)

func TestEdgeResolve(t *testing.T) {
	el := NewElement("el")
	el.Rect = FRectXYWH(0, 1000, 800, 500)

	tests := []struct {
		edge Edge
		want float64
	}{
		{Edge{}, 0},
		{Edge{Offset: Px(100)}, 100},
		{Edge{Target: el}, 1000},
		{Edge{Target: el, Viewport: 0.8}, 200},
		{Edge{Target: el, Viewport: 1}, 0},
		{Edge{Target: el, Offset: Percent(50), Viewport: 0.5}, 750},
		{Edge{Target: el, Offset: Vh(1)}, 2000},
	}

	for _, test := range tests {
		if got := test.edge.Resolve(1000); got != test.want {
			t.Errorf("%+v resolved to %v, want %v", test.edge, got, test.want)
		}
	}
}

func TestTriggerEndAfter(t *testing.T) {
	el := NewElement("el")
	el.Rect = FRectXYWH(0, 600, 800, 400)

	tr := NewTrigger(TriggerConfig{
		Start:    Edge{Target: el},
		EndAfter: Vh(3),
	})
	tr.Refresh(1000)

	if tr.Start() != 600 || tr.End() != 3600 {
		t.Errorf("bounds = [%v, %v], want [600, 3600]", tr.Start(), tr.End())
	}
}

func TestTriggerProgressTracksScroll(t *testing.T) {
	var updates []float64

	tr := NewTrigger(TriggerConfig{
		Start:    Edge{Offset: Px(100)},
		End:      Edge{Offset: Px(400)},
		OnUpdate: func(_ *Trigger, p float64) { updates = append(updates, p) },
	})
	tr.Refresh(800)

	steps := []struct {
		scroll float64
		want   float64
	}{
		{0, 0},
		{100, 0},
		{250, 0.5},
		{400, 1},
		{2000, 1},
	}

	for _, step := range steps {
		tr.Update(step.scroll)
		if got := tr.Progress(); got != step.want {
			t.Errorf("scroll %v: progress %v, want %v", step.scroll, got, step.want)
		}
	}

	// refresh applies 0, then 0 and 0 again are skipped, 0.5, 1, and 1 again is skipped
	want := []float64{0, 0.5, 1}
	if !slices.Equal(updates, want) {
		t.Errorf("updates = %v, want %v", updates, want)
	}
}

func TestTriggerZoneCallbacks(t *testing.T) {
	var events []string
	record := func(name string) TriggerFunc {
		return func(*Trigger) { events = append(events, name) }
	}

	tr := NewTrigger(TriggerConfig{
		Start:       Edge{Offset: Px(100)},
		End:         Edge{Offset: Px(400)},
		OnEnter:     record("enter"),
		OnLeave:     record("leave"),
		OnEnterBack: record("enterBack"),
		OnLeaveBack: record("leaveBack"),
	})
	tr.Refresh(800)

	for _, scroll := range []float64{0, 250, 300, 500, 250, 0, 1000, 0} {
		tr.Update(scroll)
	}

	want := []string{
		"enter", "leave", "enterBack", "leaveBack",
		// jumping across the whole window fires both
		"enter", "leave", "enterBack", "leaveBack",
	}
	if !slices.Equal(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}

func TestTriggerRefreshInsideWindowEnters(t *testing.T) {
	entered := 0
	tr := NewTrigger(TriggerConfig{
		Start:   Edge{Offset: Px(100)},
		End:     Edge{Offset: Px(400)},
		OnEnter: func(*Trigger) { entered++ },
	})

	// not refreshed yet, nothing can fire
	tr.Update(250)
	if entered != 0 || tr.Progress() != 0 {
		t.Fatalf("unrefreshed trigger reacted: entered %d progress %v", entered, tr.Progress())
	}

	tr.Refresh(800)
	if entered != 1 {
		t.Errorf("entered %d times, want 1", entered)
	}
	if tr.Progress() != 0.5 {
		t.Errorf("progress = %v, want 0.5", tr.Progress())
	}
}

func TestTriggerCollapsedWindow(t *testing.T) {
	tr := NewTrigger(TriggerConfig{
		Start: Edge{Offset: Px(500)},
		End:   Edge{Offset: Px(100)},
	})
	tr.Refresh(800)

	if tr.End() != tr.Start() {
		t.Fatalf("end %v should collapse onto start %v", tr.End(), tr.Start())
	}

	tr.Update(499)
	if tr.Progress() != 0 {
		t.Errorf("progress before = %v", tr.Progress())
	}
	tr.Update(500)
	if tr.Progress() != 1 {
		t.Errorf("progress at start = %v", tr.Progress())
	}
}

func TestTriggerPin(t *testing.T) {
	el := NewElement("pinned")
	el.Rect = FRectXYWH(0, 1000, 800, 800)

	tr := NewTrigger(TriggerConfig{
		Start:    Edge{Target: el},
		EndAfter: Vh(2),
		Pin:      el,
	})
	tr.Refresh(800)

	if got := tr.PinSpacing(); got != 1600 {
		t.Errorf("pin spacing = %v, want 1600", got)
	}

	offsets := []struct {
		scroll float64
		want   float64
	}{
		{0, 0},
		{1000, 0},
		{1400, 400},
		{2600, 1600},
		{5000, 1600},
	}
	for _, o := range offsets {
		tr.Update(o.scroll)
		if got := tr.PinOffset(); got != o.want {
			t.Errorf("scroll %v: pin offset %v, want %v", o.scroll, got, o.want)
		}
	}

	tr.Kill()
	if tr.PinSpacing() != 0 || tr.PinOffset() != 0 {
		t.Error("a killed trigger still pins")
	}
}

func TestTriggerScrubLags(t *testing.T) {
	tr := NewTrigger(TriggerConfig{
		Start: Edge{},
		End:   Edge{Offset: Px(1000)},
		Scrub: 1,
	})
	tr.Refresh(800)

	tr.Update(1000)
	if tr.RawProgress() != 1 {
		t.Fatalf("raw progress = %v, want 1", tr.RawProgress())
	}
	if tr.Progress() != 0 {
		t.Fatalf("scrubbed progress jumped to %v", tr.Progress())
	}

	const dt = 1.0 / 60
	tr.Tick(dt)
	first := tr.Progress()
	if first <= 0 || first >= 1 {
		t.Errorf("progress after one tick = %v, want in (0, 1)", first)
	}

	prev := first
	for range 60 * 10 {
		tr.Tick(dt)
		if tr.Progress() < prev {
			t.Fatalf("scrubbed progress went backwards: %v -> %v", prev, tr.Progress())
		}
		prev = tr.Progress()
	}

	if tr.Progress() != 1 {
		t.Errorf("progress settled at %v, want 1", tr.Progress())
	}
}

func TestTriggerKillStopsCallbacks(t *testing.T) {
	calls := 0
	tr := NewTrigger(TriggerConfig{
		Start:    Edge{},
		End:      Edge{Offset: Px(100)},
		OnUpdate: func(*Trigger, float64) { calls++ },
		OnEnter:  func(*Trigger) { calls++ },
	})
	tr.Refresh(800)
	calls = 0

	tr.Kill()
	tr.Update(50)
	tr.Tick(1)
	tr.Refresh(800)

	if calls != 0 {
		t.Errorf("%d callbacks after Kill", calls)
	}
}

func TestTriggerRefreshResetsToggles(t *testing.T) {
	forward := 0
	toggle := NewToggle("half", 0.5, func() { forward++ }, nil)

	tr := NewTrigger(TriggerConfig{
		Start:   Edge{},
		End:     Edge{Offset: Px(100)},
		Toggles: []*Toggle{toggle},
	})
	tr.Refresh(800)
	tr.Update(80)

	if forward != 1 {
		t.Fatalf("forward fired %d times, want 1", forward)
	}

	// same scroll position, new layout
	tr.Refresh(800)
	if forward != 2 {
		t.Errorf("forward fired %d times after refresh, want 2", forward)
	}
	if toggle.State() != ToggleFired {
		t.Errorf("toggle state = %v", toggle.State())
	}
}

func TestTriggerPhases(t *testing.T) {
	el := NewElement("el")
	el.Set("opacity", 0)

	tw := NewTween(el, Props{"opacity": 1}, 1, EaseLinear)

	tr := NewTrigger(TriggerConfig{
		Start:  Edge{},
		End:    Edge{Offset: Px(100)},
		Phases: PhaseTable{{Start: 0.5, End: 1, Apply: tw.Render, Backfill: true}},
	})
	tr.Refresh(800)

	tr.Update(75)
	if got := el.Get("opacity", -1); !almostEqual(got, 0.5) {
		t.Errorf("opacity = %v, want 0.5", got)
	}

	tr.Update(10)
	if got := el.Get("opacity", -1); got != 0 {
		t.Errorf("opacity scrolled back = %v, want 0", got)
	}
}

func TestTriggerScrubbedTogglesFollowScroll(t *testing.T) {
	el := NewElement("el")
	el.Set("x", 0)

	forward, reverse := 0, 0
	toggle := NewToggle("third", 0.35, func() { forward++ }, func() { reverse++ })

	var updates []float64
	tr := NewTrigger(TriggerConfig{
		Start:    Edge{},
		End:      Edge{Offset: Px(100)},
		Scrub:    1,
		Toggles:  []*Toggle{toggle},
		OnUpdate: func(_ *Trigger, p float64) { updates = append(updates, p) },
		Phases:   PhaseTable{{Start: 0, End: 1, Apply: func(p float64) { el.Set("x", p*100) }}},
	})
	tr.Refresh(800)

	tr.Update(50)
	if forward != 1 {
		t.Fatalf("toggle fired %d times on the scroll update, want 1", forward)
	}
	if !slices.Equal(updates, []float64{0, 0.5}) {
		t.Errorf("updates = %v, want [0 0.5]", updates)
	}
	if tr.Progress() != 0 || el.Get("x", -1) != 0 {
		t.Errorf("phases moved before a tick: progress %v x %v", tr.Progress(), el.Get("x", -1))
	}

	const dt = 1.0 / 60
	for range 60 * 10 {
		tr.Tick(dt)
	}
	if got := el.Get("x", -1); !almostEqual(got, 50) {
		t.Errorf("x = %v once scrub settled, want 50", got)
	}
	if len(updates) != 2 {
		t.Errorf("ticks called OnUpdate, updates = %v", updates)
	}

	tr.Update(20)
	if reverse != 1 {
		t.Errorf("reverse fired %d times on the scroll update, want 1", reverse)
	}
	if !almostEqual(el.Get("x", -1), 50) {
		t.Errorf("x = %v right after scrolling back, want it still lagging at 50", el.Get("x", -1))
	}
}
