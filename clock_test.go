package glassfx

import (
	"math"
	"testing"
)

func TestContinuousClockFirstTick(t *testing.T) {
	c := NewContinuousClock(10, 1)

	fs := c.Tick(12)
	if fs.Progress != 0 {
		t.Errorf("first tick progress = %v, want 0", fs.Progress)
	}
	if fs.ElapsedSeconds != 2 {
		t.Errorf("elapsed = %v, want 2", fs.ElapsedSeconds)
	}
}

func TestContinuousClockProgress(t *testing.T) {
	c := NewContinuousClock(0, 2)

	prev := c.Tick(0).Progress
	now := 0.0

	steps := []float64{0.016, 0.016, 0.05, 0, 0.1, 0.033}
	for _, step := range steps {
		now += step
		fs := c.Tick(now)
		if fs.Progress < prev {
			t.Fatalf("progress went down: %v -> %v", prev, fs.Progress)
		}
		if fs.WaveValue < 0 || fs.WaveValue > 1 {
			t.Fatalf("wave value %v out of [0, 1]", fs.WaveValue)
		}
		prev = fs.Progress
	}

	want := 0.0
	for _, step := range steps {
		want += step * 2
	}
	if math.Abs(prev-want) > 1e-9 {
		t.Errorf("progress = %v, want %v", prev, want)
	}
}

func TestContinuousClockCapsDelta(t *testing.T) {
	const speed = 1.5

	c := NewContinuousClock(0, speed)
	c.Tick(0)

	// the tab was in the background for a minute
	fs := c.Tick(60)

	if want := MaxClockDelta * speed; math.Abs(fs.Progress-want) > 1e-12 {
		t.Errorf("progress after a long pause = %v, want %v", fs.Progress, want)
	}
	if fs.ElapsedSeconds != 60 {
		t.Errorf("elapsed = %v, want 60, elapsed doesn't depend on the cap", fs.ElapsedSeconds)
	}
}

func TestContinuousClockWave(t *testing.T) {
	c := NewContinuousClock(0, 1)
	c.Tick(0)
	fs := c.Tick(0.1)

	want := 0.5 + 0.5*math.Sin(fs.Progress*0.5)
	if fs.WaveValue != want {
		t.Errorf("wave = %v, want %v", fs.WaveValue, want)
	}
}

func TestTickerOrderAndCancel(t *testing.T) {
	ticker := NewTicker()

	var calls []string
	var second *TickHandle

	ticker.Add(func(now, dt float64) {
		calls = append(calls, "first")
		// cancelling a later callback skips it this very tick
		second.Cancel()
	})
	second = ticker.Add(func(now, dt float64) {
		calls = append(calls, "second")
	})
	ticker.Add(func(now, dt float64) {
		calls = append(calls, "third")
	})

	ticker.Tick(1)

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "third" {
		t.Errorf("calls = %v, want [first third]", calls)
	}
	if ticker.Len() != 2 {
		t.Errorf("Len = %v, want 2", ticker.Len())
	}
}

func TestTickerDelta(t *testing.T) {
	ticker := NewTicker()

	var dts []float64
	ticker.Add(func(now, dt float64) {
		dts = append(dts, dt)
	})

	ticker.Tick(5)
	ticker.Tick(5.25)
	ticker.Tick(5.0) // time going backwards never gives a negative delta

	want := []float64{0, 0.25, 0}
	for i := range want {
		if dts[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, dts[i], want[i])
		}
	}
}
