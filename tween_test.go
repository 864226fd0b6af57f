package glassfx

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestTweenLinear(t *testing.T) {
	el := NewElement("el")
	el.Set("x", 10)

	tw := NewTween(el, Props{"x": 20}, 1, EaseLinear)

	tw.Advance(0.25)
	if got := el.Get("x", 0); !almostEqual(got, 12.5) {
		t.Errorf("x at 0.25 = %v, want 12.5", got)
	}

	if done := tw.Advance(1); !done {
		t.Error("tween not done past its duration")
	}
	if got := el.Get("x", 0); got != 20 {
		t.Errorf("x at the end = %v, want 20", got)
	}
}

func TestTweenDelay(t *testing.T) {
	el := NewElement("el")
	el.Set("x", 0)

	tw := NewTween(el, Props{"x": 10}, 1, EaseLinear)
	tw.Delay = 0.5

	tw.Advance(0.25)
	if got := el.Get("x", -1); got != 0 {
		t.Errorf("x during delay = %v, want 0", got)
	}

	tw.Advance(0.5)
	if got := el.Get("x", -1); !almostEqual(got, 2.5) {
		t.Errorf("x = %v, want 2.5", got)
	}
}

func TestTweenRepeatForever(t *testing.T) {
	el := NewElement("el")
	el.Set("shine", 0)

	tw := NewTween(el, Props{"shine": 2}, 2, EaseLinear)
	tw.Repeat = -1

	for range 100 {
		if tw.Advance(0.3) {
			t.Fatal("an endless tween finished")
		}
	}
	if v := el.Get("shine", -1); v < 0 || v > 2 {
		t.Errorf("shine = %v, out of [0, 2]", v)
	}
}

func TestTweenerOverwrite(t *testing.T) {
	el := NewElement("el")
	el.Set("x", 0)
	el.Set("y", 0)

	tweener := NewTweener()
	first := tweener.To(el, Props{"x": 100, "y": 100}, 2, EaseLinear)
	tweener.Update(0.5)

	// takes x over, first keeps y
	tweener.To(el, Props{"x": -100}, 1, EaseLinear)
	tweener.Update(0.5)

	if first.Done() {
		t.Fatal("first tween was killed but still owns y")
	}
	if _, ok := first.To["x"]; ok {
		t.Error("first tween still animates x")
	}
	if got := el.Get("y", 0); !almostEqual(got, 50) {
		t.Errorf("y = %v, want 50", got)
	}
	if got := el.Get("x", 0); !almostEqual(got, -37.5) {
		t.Errorf("x = %v, want -37.5", got)
	}
}

func TestTweenerOverwriteKeepsCallerProps(t *testing.T) {
	el := NewElement("el")
	el.Set("x", 0)

	to := Props{"x": 1}
	tweener := NewTweener()
	tweener.To(el, to, 1, nil)
	tweener.To(el, Props{"x": 2}, 1, nil)

	if _, ok := to["x"]; !ok {
		t.Error("overwriting changed the caller's map")
	}
}

func TestTweenerKillAll(t *testing.T) {
	el := NewElement("el")
	tweener := NewTweener()
	tweener.To(el, Props{"x": 1}, 1, nil)
	tweener.To(el, Props{"y": 1}, 1, nil)

	tweener.KillAll()
	if n := tweener.Active(); n != 0 {
		t.Errorf("Active = %d after KillAll", n)
	}
}

func TestStaggerDelay(t *testing.T) {
	tests := []struct {
		i, count int
		each     float64
		want     float64
	}{
		{0, 3, 0.1, 0},
		{2, 3, 0.1, 0.2},
		{0, 3, -0.1, 0.2},
		{2, 3, -0.1, 0},
	}

	for _, test := range tests {
		if got := StaggerDelay(test.i, test.count, test.each); !almostEqual(got, test.want) {
			t.Errorf("StaggerDelay(%d, %d, %v) = %v, want %v", test.i, test.count, test.each, got, test.want)
		}
	}
}

func TestTimelinePhases(t *testing.T) {
	a := NewElement("a")
	b := NewElement("b")
	a.Set("y", 100)
	b.Set("y", 100)

	tl := NewTimeline()
	tl.Add(0, NewTween(a, Props{"y": 0}, 1, EaseLinear))
	tl.Hold(1)
	tl.Add(1, NewTween(b, Props{"y": 0}, 1, EaseLinear))

	if tl.Duration() != 2 {
		t.Fatalf("duration = %v, want 2", tl.Duration())
	}

	phases := tl.Phases()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}

	phases.Evaluate(0.25)
	if got := a.Get("y", 0); !almostEqual(got, 50) {
		t.Errorf("a.y = %v, want 50", got)
	}
	if got := b.Get("y", 0); got != 100 {
		t.Errorf("b.y = %v, want 100 before its phase", got)
	}

	phases.Evaluate(1)
	if a.Get("y", -1) != 0 || b.Get("y", -1) != 0 {
		t.Errorf("end state a.y %v b.y %v, want 0 0", a.Get("y", -1), b.Get("y", -1))
	}

	// scrubbing back restores the start state
	phases.Evaluate(0)
	if a.Get("y", -1) != 100 || b.Get("y", -1) != 100 {
		t.Errorf("start state a.y %v b.y %v, want 100 100", a.Get("y", -1), b.Get("y", -1))
	}
}

func TestTimelinePlay(t *testing.T) {
	el := NewElement("el")
	el.Set("opacity", 0)

	tl := NewTimeline()
	tl.Add(0.5, NewTween(el, Props{"opacity": 1}, 0.5, EaseLinear))

	completed := 0
	tl.OnComplete = func() { completed++ }

	tl.Play()
	tl.Advance(0.25)
	if got := el.Get("opacity", -1); got != 0 {
		t.Errorf("opacity before the tween starts = %v", got)
	}

	tl.Advance(0.5)
	if got := el.Get("opacity", -1); !almostEqual(got, 0.5) {
		t.Errorf("opacity = %v, want 0.5", got)
	}

	tl.Advance(10)
	tl.Advance(10)
	if tl.Playing() || completed != 1 {
		t.Errorf("playing %v completed %d, want false 1", tl.Playing(), completed)
	}
}

func TestTimelineAppendOverlap(t *testing.T) {
	el := NewElement("el")

	tl := NewTimeline()
	tl.Add(0, NewTween(el, Props{"scale": 1.06}, 1, nil))
	tl.Hold(1.2)
	tl.Append(-0.8, NewTween(el, Props{"yPercent": -100}, 1.8, nil))

	if !almostEqual(tl.Duration(), 1.4+1.8) {
		t.Errorf("duration = %v, want %v", tl.Duration(), 1.4+1.8)
	}
}

func TestCubicBezierEase(t *testing.T) {
	ease := EaseCubicBezier(0.25, 0.1, 0.25, 1)

	if got := ease(0); math.Abs(got) > 1e-6 {
		t.Errorf("ease(0) = %v", got)
	}
	if got := ease(1); math.Abs(got-1) > 1e-6 {
		t.Errorf("ease(1) = %v", got)
	}

	prev := 0.0
	for x := 0.0; x <= 1; x += 0.05 {
		v := ease(x)
		if v < prev-1e-3 {
			t.Fatalf("ease goes down at %v: %v < %v", x, v, prev)
		}
		prev = v
	}
}

func TestPowerEases(t *testing.T) {
	eases := map[string]EaseFunc{
		"power1.in": EasePower1In, "power2.out": EasePower2Out,
		"power3.inOut": EasePower3InOut, "power4.inOut": EasePower4InOut,
	}
	for name, ease := range eases {
		if ease(0) != 0 || ease(1) != 1 {
			t.Errorf("%s: ease(0) = %v, ease(1) = %v", name, ease(0), ease(1))
		}
	}
}
