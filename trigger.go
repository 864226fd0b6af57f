package glassfx

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
)

// Length is a distance made of pixels, viewport heights and a percentage of
// the target's own height.
type Length struct {
	Px      float64
	Vh      float64
	Percent float64
}

func Px(v float64) Length      { return Length{Px: v} }
func Vh(v float64) Length      { return Length{Vh: v} }
func Percent(v float64) Length { return Length{Percent: v} }

func (l Length) IsZero() bool {
	return l == Length{}
}

func (l Length) Resolve(viewportHeight, targetHeight float64) float64 {
	return l.Px + l.Vh*viewportHeight + l.Percent*0.01*targetHeight
}

// Edge is a scroll position: the scroll offset at which the point Offset
// below Target's top lines up with the point Viewport (0 top, 1 bottom)
// of the viewport. A nil Target is the top of the page.
//
// "top 80%" is Edge{Target: el, Viewport: 0.8}.
type Edge struct {
	Target   *Element
	Offset   Length
	Viewport float64
}

func (e Edge) Resolve(viewportHeight float64) float64 {
	var top, height float64
	if e.Target != nil {
		top = e.Target.Rect.Min.Y
		height = e.Target.Rect.Dy()
	}
	return top + e.Offset.Resolve(viewportHeight, height) - e.Viewport*viewportHeight
}

type TriggerFunc func(tr *Trigger)

type TriggerConfig struct {
	Name string

	Start Edge
	End   Edge
	// when set End is ignored and the trigger ends EndAfter past Start
	EndAfter Length

	// Pin holds this element in place while the trigger is active and pushes
	// everything below it down by the trigger's length.
	Pin *Element

	// Scrub is how many seconds the progress lags behind the scroll position.
	// Zero tracks the scroll exactly.
	Scrub float64

	Phases  PhaseTable
	Toggles []*Toggle

	// OnUpdate gets the unsmoothed progress whenever it changes.
	OnUpdate func(tr *Trigger, progress float64)

	OnEnter     TriggerFunc
	OnLeave     TriggerFunc
	OnEnterBack TriggerFunc
	OnLeaveBack TriggerFunc

	OnRefresh TriggerFunc
}

type triggerZone int

const (
	zoneUnknown triggerZone = iota
	zoneBefore
	zoneActive
	zoneAfter
)

// Trigger maps a window of scroll positions to a progress in [0, 1].
// Phases get the scrubbed progress, toggles and OnUpdate the scroll progress.
type Trigger struct {
	cfg TriggerConfig

	start, end float64
	refreshed  bool

	scroll float64

	raw      float64
	progress float64
	velocity float64
	applied  bool

	spring   harmonica.Spring
	springDt float64

	zone triggerZone

	killed bool
}

func NewTrigger(cfg TriggerConfig) *Trigger {
	return &Trigger{cfg: cfg}
}

func (tr *Trigger) Name() string { return tr.cfg.Name }

func (tr *Trigger) Start() float64 { return tr.start }

func (tr *Trigger) End() float64 { return tr.end }

func (tr *Trigger) Pinned() bool { return tr.cfg.Pin != nil }

func (tr *Trigger) PinTarget() *Element { return tr.cfg.Pin }

// Progress is the (possibly smoothed) progress phases see.
func (tr *Trigger) Progress() float64 { return tr.progress }

// RawProgress follows the scroll position without lag.
func (tr *Trigger) RawProgress() float64 { return tr.raw }

func (tr *Trigger) Killed() bool { return tr.killed }

func (tr *Trigger) IsActive() bool {
	return tr.zone == zoneActive
}

func (tr *Trigger) Toggles() []*Toggle {
	return tr.cfg.Toggles
}

// Refresh recomputes the scroll window from the current layout. Toggle
// latches are reset since their state belongs to the old layout.
func (tr *Trigger) Refresh(viewportHeight float64) {
	if tr.killed {
		return
	}

	tr.start = tr.cfg.Start.Resolve(viewportHeight)
	if !tr.cfg.EndAfter.IsZero() {
		var height float64
		if tr.cfg.Start.Target != nil {
			height = tr.cfg.Start.Target.Rect.Dy()
		}
		tr.end = tr.start + tr.cfg.EndAfter.Resolve(viewportHeight, height)
	} else {
		tr.end = tr.cfg.End.Resolve(viewportHeight)
	}

	if tr.end < tr.start {
		WarnLogger.Printf("trigger %q: end %.1f before start %.1f, collapsing", tr.cfg.Name, tr.end, tr.start)
		tr.end = tr.start
	}

	for _, toggle := range tr.cfg.Toggles {
		toggle.Reset()
	}

	tr.refreshed = true
	tr.applied = false

	if tr.cfg.OnRefresh != nil {
		tr.cfg.OnRefresh(tr)
	}

	// stale smoothing state means nothing after a layout change
	tr.raw = tr.rawAt(tr.scroll)
	tr.progress = tr.raw
	tr.velocity = 0
	tr.applyPhases()
	tr.notify()

	// a trigger created below the fold still gets its enter callbacks
	if tr.zone == zoneUnknown {
		tr.zone = zoneBefore
	}
	tr.updateZone(tr.zoneAt(tr.scroll))
}

// PinSpacing is how much a pinned trigger pushes the content below it.
func (tr *Trigger) PinSpacing() float64 {
	if tr.cfg.Pin == nil || tr.killed {
		return 0
	}
	return tr.end - tr.start
}

// PinOffset is how far a pinned element has to move down from its layout
// position to look fixed at the current scroll position.
func (tr *Trigger) PinOffset() float64 {
	if tr.cfg.Pin == nil || tr.killed {
		return 0
	}
	return Clamp(tr.scroll-tr.start, 0, tr.end-tr.start)
}

func (tr *Trigger) rawAt(scroll float64) float64 {
	if tr.end <= tr.start {
		if scroll >= tr.start {
			return 1
		}
		return 0
	}
	return Clamp((scroll-tr.start)/(tr.end-tr.start), 0, 1)
}

func (tr *Trigger) zoneAt(scroll float64) triggerZone {
	if scroll < tr.start {
		return zoneBefore
	} else if scroll > tr.end {
		return zoneAfter
	}
	return zoneActive
}

// Update takes a new scroll offset.
func (tr *Trigger) Update(scroll float64) {
	if tr.killed {
		return
	}
	tr.scroll = scroll

	// bounds were never computed, wait for the next refresh
	if !tr.refreshed {
		return
	}

	raw := tr.rawAt(scroll)
	changed := raw != tr.raw
	tr.raw = raw

	tr.updateZone(tr.zoneAt(scroll))

	if tr.cfg.Scrub <= 0 {
		tr.setProgress(raw)
	}
	// toggles and OnUpdate follow the scroll, only phases are scrubbed
	if changed {
		tr.notify()
	}
}

// Tick advances scrub smoothing by dt seconds.
func (tr *Trigger) Tick(dt float64) {
	if tr.killed || !tr.refreshed || tr.cfg.Scrub <= 0 || dt <= 0 {
		return
	}

	if tr.progress == tr.raw && tr.velocity == 0 {
		return
	}

	if tr.springDt != dt {
		// critically damped, settles in roughly Scrub seconds
		tr.spring = harmonica.NewSpring(dt, 6/tr.cfg.Scrub, 1)
		tr.springDt = dt
	}

	p, v := tr.spring.Update(tr.progress, tr.velocity, tr.raw)
	if Abs(p-tr.raw) < 0.0001 && Abs(v) < 0.001 {
		p, v = tr.raw, 0
	}
	tr.velocity = v
	tr.setProgress(Clamp(p, 0, 1))
}

func (tr *Trigger) setProgress(p float64) {
	if tr.applied && p == tr.progress {
		return
	}
	tr.progress = p
	tr.applyPhases()
}

func (tr *Trigger) applyPhases() {
	if tr.killed {
		return
	}
	tr.applied = true
	tr.cfg.Phases.Evaluate(tr.progress)
}

func (tr *Trigger) notify() {
	if tr.killed {
		return
	}
	for _, toggle := range tr.cfg.Toggles {
		toggle.Feed(tr.raw)
	}
	if tr.cfg.OnUpdate != nil {
		tr.cfg.OnUpdate(tr, tr.raw)
	}
}

func (tr *Trigger) updateZone(zone triggerZone) {
	prev := tr.zone
	tr.zone = zone

	if prev == zone || prev == zoneUnknown {
		return
	}

	call := func(fn TriggerFunc) {
		if fn != nil {
			fn(tr)
		}
	}

	switch {
	case prev == zoneBefore && zone != zoneBefore:
		call(tr.cfg.OnEnter)
		if zone == zoneAfter {
			call(tr.cfg.OnLeave)
		}
	case prev == zoneAfter && zone != zoneAfter:
		call(tr.cfg.OnEnterBack)
		if zone == zoneBefore {
			call(tr.cfg.OnLeaveBack)
		}
	case prev == zoneActive && zone == zoneAfter:
		call(tr.cfg.OnLeave)
	case prev == zoneActive && zone == zoneBefore:
		call(tr.cfg.OnLeaveBack)
	}
}

// Kill stops the trigger for good. No callback runs after Kill returns.
func (tr *Trigger) Kill() {
	tr.killed = true
}

func (tr *Trigger) String() string {
	pin := ""
	if tr.cfg.Pin != nil {
		pin = " pin"
	}
	return fmt.Sprintf(
		"%s [%.0f, %.0f]%s raw %.3f progress %.3f",
		tr.cfg.Name, tr.start, tr.end, pin, tr.raw, tr.progress,
	)
}
