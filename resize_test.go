package glassfx

import (
	"fmt"
	"slices"
	"testing"
)

func TestDebouncer(t *testing.T) {
	d := Debouncer{Delay: 0.25}

	d.Trigger(0)
	d.Trigger(0.1)
	d.Trigger(0.2)

	if d.Ready(0.3) {
		t.Error("fired before the delay after the last event")
	}
	if !d.Ready(0.45) {
		t.Error("didn't fire after the delay")
	}
	if d.Ready(1) {
		t.Error("fired twice for one burst")
	}

	d.Trigger(2)
	d.Cancel()
	if d.Ready(10) {
		t.Error("cancelled debouncer fired")
	}
}

type resizeLog struct {
	events []string
}

type logSink struct{ log *resizeLog }

func (s logSink) SetResolution(w, h float64) {
	s.log.events = append(s.log.events, "pipeline "+fmtSize(w, h))
}

type logRefresher struct{ log *resizeLog }

func (r logRefresher) Refresh(viewport FPoint) {
	r.log.events = append(r.log.events, "refresh "+fmtSize(viewport.X, viewport.Y))
}

func fmtSize(w, h float64) string {
	return fmt.Sprintf("%.0fx%.0f", w, h)
}

func TestResizeCoordinator(t *testing.T) {
	log := new(resizeLog)

	rc := NewResizeCoordinator(0.25)
	rc.Pipeline = logSink{log}
	rc.Refreshers = []LayoutRefresher{logRefresher{log}}

	// first size goes through right away
	rc.Notify(FPt(1200, 800), 0)

	// a drag
	rc.Notify(FPt(1100, 800), 1)
	rc.Notify(FPt(1000, 800), 1.1)
	rc.Notify(FPt(900, 700), 1.2)

	if rc.Update(1.3) {
		t.Error("flushed in the middle of a drag")
	}
	if !rc.Update(1.5) {
		t.Error("didn't flush after the drag")
	}
	if rc.Update(2) {
		t.Error("flushed the same size twice")
	}

	want := []string{
		"pipeline " + fmtSize(1200, 800), "refresh " + fmtSize(1200, 800),
		"pipeline " + fmtSize(900, 700), "refresh " + fmtSize(900, 700),
	}
	if !slices.Equal(log.events, want) {
		t.Errorf("events = %v, want %v", log.events, want)
	}
	if rc.Flushes() != 2 {
		t.Errorf("flushes = %d, want 2", rc.Flushes())
	}
	if !rc.Viewport().Eq(FPt(900, 700)) {
		t.Errorf("viewport = %v", rc.Viewport())
	}
}

func TestResizeCoordinatorSameSizeIgnored(t *testing.T) {
	log := new(resizeLog)

	rc := NewResizeCoordinator(0.25)
	rc.Refreshers = []LayoutRefresher{logRefresher{log}}

	rc.Notify(FPt(800, 600), 0)
	for i := range 10 {
		rc.Notify(FPt(800, 600), f64(i))
		rc.Update(f64(i))
	}

	if rc.Flushes() != 1 {
		t.Errorf("flushes = %d, want 1", rc.Flushes())
	}
}

func TestResizeCoordinatorMeasure(t *testing.T) {
	var got FPoint
	rc := NewResizeCoordinator(0)
	rc.Pipeline = resolutionFunc(func(w, h float64) { got = FPt(w, h) })
	rc.Measure = func(viewport FPoint) FPoint { return FPt(viewport.X, viewport.Y*0.5) }

	rc.Notify(FPt(1000, 800), 0)

	if !got.Eq(FPt(1000, 400)) {
		t.Errorf("pipeline resolution = %v, want (1000, 400)", got)
	}
}

type resolutionFunc func(w, h float64)

func (f resolutionFunc) SetResolution(w, h float64) { f(w, h) }
