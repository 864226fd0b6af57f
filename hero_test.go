package glassfx

import (
	"image"
	"testing"
)

func newTestHero() (*Hero, *Pipeline, *Ticker) {
	ticker := NewTicker()
	pipeline := newPipeline(DefaultEffectParameters, FPt(800, 600), new(fakeProgram), ticker, 0)
	return NewHero(ticker, pipeline), pipeline, ticker
}

func makePipelineReady(p *Pipeline) {
	p.SetTexture(image.NewNRGBA(image.Rect(0, 0, 8, 8)), nil)
	p.Draw(nil, FPt(0, 0))
}

func TestHeroWaitsForPipelineAndPreloader(t *testing.T) {
	tests := []struct {
		name  string
		steps func(t *testing.T, h *Hero, p *Pipeline)
	}{
		{"pipeline first", func(t *testing.T, h *Hero, p *Pipeline) {
			makePipelineReady(p)
			if h.Played() {
				t.Error("played before the preloader was done")
			}
			h.SetPreloaderDone()
		}},
		{"preloader first", func(t *testing.T, h *Hero, p *Pipeline) {
			h.SetPreloaderDone()
			if h.Played() {
				t.Error("played before the pipeline was ready")
			}
			makePipelineReady(p)
		}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, p, _ := newTestHero()
			test.steps(t, h, p)
			if !h.Played() {
				t.Error("entrance never played")
			}

			// only once
			entrance := h.entrance
			h.SetPreloaderDone()
			if h.entrance != entrance {
				t.Error("entrance started twice")
			}
		})
	}
}

func TestHeroEntranceReveals(t *testing.T) {
	h, p, ticker := newTestHero()

	for _, el := range h.heading.Elements {
		if el.Get("opacity", -1) != 0 {
			t.Fatalf("%s visible before the entrance", el)
		}
	}

	makePipelineReady(p)
	h.SetPreloaderDone()

	now := 0.0
	for range 60 * 5 {
		ticker.Tick(now)
		now += 1.0 / 60
	}

	for _, el := range h.heading.Elements {
		if el.Get("opacity", -1) != 1 || el.Get("rotationY", -1) != 0 {
			t.Errorf("%s didn't finish its entrance", el)
		}
	}
}

func TestHeroDisposedNeverPlays(t *testing.T) {
	h, p, _ := newTestHero()
	h.Controller().Dispose()

	makePipelineReady(p)
	h.SetPreloaderDone()

	if h.Played() {
		t.Error("a disposed hero played its entrance")
	}
}
