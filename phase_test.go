package glassfx

import (
	"testing"
)

func TestPhaseTableEvaluate(t *testing.T) {
	var a, b []float64

	table := PhaseTable{
		{Start: 0, End: 0.5, Apply: func(t float64) { a = append(a, t) }},
		{Start: 0.5, End: 1, Apply: func(t float64) { b = append(b, t) }},
	}

	table.Evaluate(0.25)
	table.Evaluate(0.75)
	table.Evaluate(1)

	wantA := []float64{0.5, 1, 1}
	wantB := []float64{0.5, 1}

	if len(a) != len(wantA) || len(b) != len(wantB) {
		t.Fatalf("a = %v, b = %v, want %v and %v", a, b, wantA, wantB)
	}
	for i := range wantA {
		if a[i] != wantA[i] {
			t.Errorf("a[%d] = %v, want %v", i, a[i], wantA[i])
		}
	}
	for i := range wantB {
		if b[i] != wantB[i] {
			t.Errorf("b[%d] = %v, want %v", i, b[i], wantB[i])
		}
	}
}

func TestPhaseBackfill(t *testing.T) {
	el := NewElement("el")

	table := PhaseTable{
		{Start: 0.5, End: 1, Backfill: true, Apply: func(t float64) { el.Set("y", 100-100*t) }},
	}

	table.Evaluate(0.1)
	if got := el.Get("y", -1); got != 100 {
		t.Errorf("y before the phase = %v, want 100", got)
	}

	table.Evaluate(0.75)
	if got := el.Get("y", -1); got != 50 {
		t.Errorf("y halfway = %v, want 50", got)
	}
}

func TestPhaseTableSpan(t *testing.T) {
	table := PhaseTable{{Start: 0.2, End: 0.4}, {Start: 0.1, End: 0.3}, {Start: 0.5, End: 0.9}}
	lo, hi := table.Span()
	if lo != 0.1 || hi != 0.9 {
		t.Errorf("Span = %v, %v, want 0.1, 0.9", lo, hi)
	}
}

func TestToggleHysteresis(t *testing.T) {
	var forward, reverse int
	toggle := NewToggle("gap", 0.35, func() { forward++ }, func() { reverse++ })

	type step struct {
		progress float64
		forward  int
		reverse  int
	}

	steps := []step{
		{0.2, 0, 0},
		{0.4, 1, 0}, // crosses up
		{0.5, 1, 0}, // still above, no re-fire
		{0.36, 1, 0},
		{0.3, 1, 1}, // crosses down
		{0.1, 1, 1},
		{0.35, 2, 1}, // the threshold itself counts as reached
		{0.9, 2, 1},
	}

	for i, s := range steps {
		toggle.Feed(s.progress)
		if forward != s.forward || reverse != s.reverse {
			t.Errorf("step %d (progress %v): forward %d reverse %d, want %d %d",
				i, s.progress, forward, reverse, s.forward, s.reverse)
		}
	}

	if toggle.State() != ToggleFired {
		t.Errorf("state = %v, want fired", toggle.State())
	}
}

func TestToggleNeverFiresTwiceInARow(t *testing.T) {
	var events []string
	toggle := NewToggle("flip", 0.7,
		func() { events = append(events, "forward") },
		func() { events = append(events, "reverse") },
	)

	for _, p := range []float64{0, 0.8, 0.75, 0.9, 1, 0.6, 0.65, 0.2, 0.71, 0.69, 0.72} {
		toggle.Feed(p)
	}

	for i := 1; i < len(events); i++ {
		if events[i] == events[i-1] {
			t.Fatalf("%s fired twice in a row: %v", events[i], events)
		}
	}
	if len(events) != 5 {
		t.Errorf("events = %v, want 5 alternating transitions", events)
	}
}

func TestToggleReset(t *testing.T) {
	fired := 0
	toggle := NewToggle("t", 0.5, func() { fired++ }, func() { t.Error("reverse must not fire on reset") })

	toggle.Feed(0.6)
	toggle.Reset()
	if toggle.State() != ToggleIdle {
		t.Fatalf("state after reset = %v", toggle.State())
	}

	toggle.Feed(0.6)
	if fired != 2 {
		t.Errorf("fired %d times, want 2", fired)
	}
}
