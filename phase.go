package glassfx

// Phase is a slice [Start, End] of a trigger's progress.
//
// Apply gets the progress remapped to [0, 1] inside the slice. Once progress
// passed End it keeps getting 1 so the final state sticks.
type Phase struct {
	Start, End float64
	Apply      func(t float64)

	// Backfill applies Apply(0) while progress hasn't reached Start yet,
	// putting targets in their initial state.
	Backfill bool
}

func (ph Phase) Local(progress float64) float64 {
	if ph.End <= ph.Start {
		if progress >= ph.Start {
			return 1
		}
		return 0
	}
	return Normalize01(ph.Start, ph.End, progress)
}

// PhaseTable is evaluated in order, later phases win on shared properties.
type PhaseTable []Phase

func (pt PhaseTable) Evaluate(progress float64) {
	for _, ph := range pt {
		if ph.Apply == nil {
			continue
		}
		if progress >= ph.Start || ph.Backfill {
			ph.Apply(ph.Local(progress))
		}
	}
}

// Span returns the smallest Start and the largest End.
func (pt PhaseTable) Span() (float64, float64) {
	if len(pt) == 0 {
		return 0, 0
	}
	lo, hi := pt[0].Start, pt[0].End
	for _, ph := range pt[1:] {
		lo = min(lo, ph.Start)
		hi = max(hi, ph.End)
	}
	return lo, hi
}

type ToggleState int

const (
	ToggleIdle ToggleState = iota
	ToggleFired
)

func (s ToggleState) String() string {
	if s == ToggleFired {
		return "fired"
	}
	return "idle"
}

// Toggle turns a progress stream into one-shot transitions.
//
// Reaching Forward while idle fires OnForward and latches. Dropping below
// Reverse while latched fires OnReverse and unlatches. Nothing fires while
// progress moves around on the latched side.
type Toggle struct {
	Name string

	Forward float64
	Reverse float64

	OnForward func()
	OnReverse func()

	state ToggleState
}

// NewToggle makes a toggle that flips both ways at the same threshold.
func NewToggle(name string, threshold float64, onForward, onReverse func()) *Toggle {
	return &Toggle{
		Name:      name,
		Forward:   threshold,
		Reverse:   threshold,
		OnForward: onForward,
		OnReverse: onReverse,
	}
}

// Feed returns true if a transition fired.
func (t *Toggle) Feed(progress float64) bool {
	switch t.state {
	case ToggleIdle:
		if progress >= t.Forward {
			t.state = ToggleFired
			if t.OnForward != nil {
				t.OnForward()
			}
			return true
		}
	case ToggleFired:
		if progress < t.Reverse {
			t.state = ToggleIdle
			if t.OnReverse != nil {
				t.OnReverse()
			}
			return true
		}
	}
	return false
}

func (t *Toggle) State() ToggleState {
	return t.state
}

// Reset forgets the latch without firing anything.
func (t *Toggle) Reset() {
	t.state = ToggleIdle
}
