package glassfx

// DefaultResizeDebounce is how long the viewport has to stay the same size
// before layout is recomputed.
const DefaultResizeDebounce = 0.25

// Debouncer coalesces a burst of events into one, fired Delay seconds after
// the last event of the burst.
type Debouncer struct {
	Delay float64

	pending  bool
	deadline float64
}

// Trigger records an event at now, pushing the deadline back.
func (d *Debouncer) Trigger(now float64) {
	d.pending = true
	d.deadline = now + d.Delay
}

// Ready returns true once, when the deadline passed.
func (d *Debouncer) Ready(now float64) bool {
	if d.pending && now >= d.deadline {
		d.pending = false
		return true
	}
	return false
}

func (d *Debouncer) Pending() bool {
	return d.pending
}

func (d *Debouncer) Cancel() {
	d.pending = false
}

// ResolutionSink takes the size the glass effect renders at.
type ResolutionSink interface {
	SetResolution(width, height float64)
}

// LayoutRefresher recomputes layout and trigger bounds for a viewport.
type LayoutRefresher interface {
	Refresh(viewport FPoint)
}

// ResizeCoordinator pushes viewport changes, debounced, to the pipeline and
// then to everything holding scroll bounds.
//
// The pipeline is always updated before the refreshers so the next frame
// renders at the new size.
type ResizeCoordinator struct {
	Debounce Debouncer

	// Measure returns the size of the glass container for a viewport.
	// When nil the container is the whole viewport.
	Measure func(viewport FPoint) FPoint

	Pipeline   ResolutionSink
	Refreshers []LayoutRefresher

	viewport    FPoint
	pending     FPoint
	initialized bool

	flushes int
}

func NewResizeCoordinator(delay float64) *ResizeCoordinator {
	rc := new(ResizeCoordinator)
	rc.Debounce.Delay = delay
	return rc
}

// Notify reports the viewport size seen at now. The first size is applied
// right away, later changes go through the debouncer.
func (rc *ResizeCoordinator) Notify(viewport FPoint, now float64) {
	if !rc.initialized {
		rc.initialized = true
		rc.pending = viewport
		rc.flush()
		return
	}

	if viewport.Eq(rc.pending) {
		return
	}

	rc.pending = viewport
	rc.Debounce.Trigger(now)
}

// Update flushes a pending resize once the debounce delay passed.
// Returns true if it did.
func (rc *ResizeCoordinator) Update(now float64) bool {
	if rc.Debounce.Ready(now) {
		if rc.pending.Eq(rc.viewport) {
			return false
		}
		rc.flush()
		return true
	}
	return false
}

// Flush applies the pending viewport immediately.
func (rc *ResizeCoordinator) Flush() {
	rc.Debounce.Cancel()
	rc.flush()
}

func (rc *ResizeCoordinator) flush() {
	rc.viewport = rc.pending
	rc.flushes++

	container := rc.viewport
	if rc.Measure != nil {
		container = rc.Measure(rc.viewport)
	}

	if rc.Pipeline != nil {
		rc.Pipeline.SetResolution(container.X, container.Y)
	}

	for _, r := range rc.Refreshers {
		r.Refresh(rc.viewport)
	}
}

func (rc *ResizeCoordinator) Viewport() FPoint {
	return rc.viewport
}

// Flushes counts how many times the coordinator pushed a viewport.
func (rc *ResizeCoordinator) Flushes() int {
	return rc.flushes
}
