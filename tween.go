package glassfx

import (
	"image/color"
	"maps"
)

type Props map[string]float64

type ColorProps map[string]color.NRGBA

// Tween moves properties of one element from wherever they are when it
// first renders to To, over Duration seconds.
type Tween struct {
	Target *Element

	To       Props
	ToColors ColorProps

	Duration float64
	Delay    float64
	Ease     EaseFunc

	// Repeat < 0 loops forever
	Repeat int

	OnComplete func()

	from       Props
	fromColors ColorProps
	started    bool

	elapsed float64
	loops   int

	done   bool
	killed bool
}

func NewTween(target *Element, to Props, duration float64, ease EaseFunc) *Tween {
	return &Tween{
		Target:   target,
		To:       to,
		Duration: duration,
		Ease:     ease,
	}
}

func (tw *Tween) capture() {
	tw.from = make(Props, len(tw.To))
	for prop, to := range tw.To {
		tw.from[prop] = tw.Target.Get(prop, to)
	}
	if len(tw.ToColors) > 0 {
		tw.fromColors = make(ColorProps, len(tw.ToColors))
		for prop, to := range tw.ToColors {
			tw.fromColors[prop] = tw.Target.Color(prop, to)
		}
	}
	tw.started = true
}

// Render writes the state at normalized time t to the target.
// The first call captures the starting values.
func (tw *Tween) Render(t float64) {
	if tw.killed || tw.Target == nil {
		return
	}
	if !tw.started {
		tw.capture()
	}

	ease := tw.Ease
	if ease == nil {
		ease = DefaultEase
	}
	e := ease(Clamp(t, 0, 1))

	for prop, to := range tw.To {
		if from, ok := tw.from[prop]; ok {
			tw.Target.Set(prop, Lerp(from, to, e))
		}
	}
	for prop, to := range tw.ToColors {
		if from, ok := tw.fromColors[prop]; ok {
			tw.Target.SetColor(prop, LerpColorRGBA(from, to, e))
		}
	}
}

// Invalidate makes the next Render capture starting values again.
func (tw *Tween) Invalidate() {
	tw.started = false
}

// Advance moves the tween by dt seconds. Returns true once it finished.
func (tw *Tween) Advance(dt float64) bool {
	if tw.killed || tw.done {
		return true
	}

	if tw.Delay > 0 {
		tw.Delay -= dt
		if tw.Delay > 0 {
			return false
		}
		dt = -tw.Delay
		tw.Delay = 0
	}

	tw.elapsed += dt

	if tw.Duration <= 0 {
		tw.Render(1)
		tw.finish()
		return true
	}

	for tw.elapsed >= tw.Duration && (tw.Repeat < 0 || tw.loops < tw.Repeat) {
		tw.elapsed -= tw.Duration
		tw.loops++
	}

	t := tw.elapsed / tw.Duration
	tw.Render(t)

	if t >= 1 {
		tw.finish()
		return true
	}
	return false
}

func (tw *Tween) finish() {
	tw.done = true
	if tw.OnComplete != nil {
		tw.OnComplete()
	}
}

func (tw *Tween) Kill() {
	tw.killed = true
}

func (tw *Tween) Done() bool {
	return tw.done || tw.killed
}

// drop removes props from the tween, killing it once nothing is left.
func (tw *Tween) drop(props Props, colors ColorProps) {
	for prop := range props {
		delete(tw.To, prop)
	}
	for prop := range colors {
		delete(tw.ToColors, prop)
	}
	if len(tw.To) == 0 && len(tw.ToColors) == 0 {
		tw.killed = true
	}
}

// Tweener runs autonomous tweens. Adding a tween takes over the properties it
// animates from tweens already running on the same element.
type Tweener struct {
	tweens []*Tween
}

func NewTweener() *Tweener {
	return new(Tweener)
}

func (tr *Tweener) Add(tw *Tween) *Tween {
	// props get dropped from running tweens, don't touch the caller's maps
	tw.To = maps.Clone(tw.To)
	tw.ToColors = maps.Clone(tw.ToColors)

	for _, other := range tr.tweens {
		if other.Target == tw.Target && !other.Done() {
			other.drop(tw.To, tw.ToColors)
		}
	}
	tr.tweens = append(tr.tweens, tw)
	return tw
}

func (tr *Tweener) To(target *Element, to Props, duration float64, ease EaseFunc) *Tween {
	return tr.Add(NewTween(target, to, duration, ease))
}

// StaggerTo starts one tween per target, target i delayed by i*each.
// A negative each staggers from the last target.
func (tr *Tweener) StaggerTo(
	targets []*Element,
	to func(i int) Props,
	duration float64,
	ease EaseFunc,
	each float64,
) []*Tween {
	tweens := make([]*Tween, 0, len(targets))
	for i, target := range targets {
		if target == nil {
			continue
		}
		tw := NewTween(target, to(i), duration, ease)
		tw.Delay = StaggerDelay(i, len(targets), each)
		tweens = append(tweens, tr.Add(tw))
	}
	return tweens
}

func StaggerDelay(i, count int, each float64) float64 {
	if each < 0 {
		return f64(count-1-i) * -each
	}
	return f64(i) * each
}

func (tr *Tweener) Update(dt float64) {
	alive := tr.tweens[:0]
	for _, tw := range tr.tweens {
		if !tw.Advance(dt) {
			alive = append(alive, tw)
		}
	}
	clear(tr.tweens[len(alive):])
	tr.tweens = alive
}

func (tr *Tweener) KillTweensOf(targets ...*Element) {
	for _, tw := range tr.tweens {
		for _, target := range targets {
			if tw.Target == target {
				tw.Kill()
			}
		}
	}
}

func (tr *Tweener) KillAll() {
	for _, tw := range tr.tweens {
		tw.Kill()
	}
	clear(tr.tweens)
	tr.tweens = tr.tweens[:0]
}

func (tr *Tweener) Active() int {
	n := 0
	for _, tw := range tr.tweens {
		if !tw.Done() {
			n++
		}
	}
	return n
}

type timelineEntry struct {
	At    float64
	Tween *Tween
}

// Timeline places tweens at fixed positions. It can play on its own or be
// turned into a PhaseTable and scrubbed by a trigger.
type Timeline struct {
	OnComplete func()

	entries  []timelineEntry
	duration float64

	phases PhaseTable

	time     float64
	playing  bool
	complete bool
}

func NewTimeline() *Timeline {
	return new(Timeline)
}

// Add places tw at absolute time at. The tween's Delay is folded into at.
func (tl *Timeline) Add(at float64, tw *Tween) *Timeline {
	at += tw.Delay
	tw.Delay = 0
	tl.entries = append(tl.entries, timelineEntry{At: at, Tween: tw})
	tl.duration = max(tl.duration, at+tw.Duration)
	tl.phases = nil
	return tl
}

// Append places tw at the current end of the timeline plus offset.
// Negative offsets overlap the previous tween.
func (tl *Timeline) Append(offset float64, tw *Tween) *Timeline {
	return tl.Add(max(tl.duration+offset, 0), tw)
}

// AddStagger adds one tween per target starting at at, spaced by each.
func (tl *Timeline) AddStagger(
	at float64,
	targets []*Element,
	to func(i int) Props,
	duration float64,
	ease EaseFunc,
	each float64,
) *Timeline {
	for i, target := range targets {
		if target == nil {
			continue
		}
		tw := NewTween(target, to(i), duration, ease)
		tl.Add(at+StaggerDelay(i, len(targets), each), tw)
	}
	return tl
}

// Hold extends the timeline by d seconds of nothing.
func (tl *Timeline) Hold(d float64) *Timeline {
	tl.duration += d
	tl.phases = nil
	return tl
}

func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// Phases returns the timeline as a progress table. The first tween touching
// an element property is backfilled so it shows its start state.
func (tl *Timeline) Phases() PhaseTable {
	if tl.phases != nil {
		return tl.phases
	}

	type key struct {
		el   *Element
		prop string
	}
	seen := make(map[key]bool)

	table := make(PhaseTable, 0, len(tl.entries))

	for _, entry := range tl.entries {
		tw := entry.Tween

		backfill := false
		for prop := range tw.To {
			k := key{tw.Target, prop}
			if !seen[k] {
				backfill = true
				seen[k] = true
			}
		}
		for prop := range tw.ToColors {
			k := key{tw.Target, "color:" + prop}
			if !seen[k] {
				backfill = true
				seen[k] = true
			}
		}

		start, end := 0.0, 1.0
		if tl.duration > 0 {
			start = entry.At / tl.duration
			end = (entry.At + tw.Duration) / tl.duration
		}

		table = append(table, Phase{
			Start:    start,
			End:      end,
			Apply:    tw.Render,
			Backfill: backfill,
		})
	}

	tl.phases = table
	return table
}

// Seek renders the timeline at time t.
func (tl *Timeline) Seek(t float64) {
	tl.time = Clamp(t, 0, tl.duration)
	if tl.duration <= 0 {
		tl.Phases().Evaluate(1)
		return
	}
	tl.Phases().Evaluate(tl.time / tl.duration)
}

func (tl *Timeline) Play() {
	tl.playing = true
}

func (tl *Timeline) Pause() {
	tl.playing = false
}

func (tl *Timeline) Playing() bool {
	return tl.playing
}

func (tl *Timeline) Time() float64 {
	return tl.time
}

// Advance moves a playing timeline forward by dt seconds.
func (tl *Timeline) Advance(dt float64) {
	if !tl.playing {
		return
	}
	tl.Seek(tl.time + dt)
	if tl.time >= tl.duration {
		tl.playing = false
		if !tl.complete {
			tl.complete = true
			if tl.OnComplete != nil {
				tl.OnComplete()
			}
		}
	}
}

// Kill stops the timeline and all of its tweens.
func (tl *Timeline) Kill() {
	tl.playing = false
	for _, entry := range tl.entries {
		entry.Tween.Kill()
	}
}
