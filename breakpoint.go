package glassfx

import (
	"slices"
)

// Variant is one breakpoint configuration of a section.
//
// Activate builds everything through scope so it can all be torn down
// together. Deactivate undoes anything the scope doesn't know about.
type Variant interface {
	Activate(scope *Scope)
	Deactivate()
}

// Scope owns the triggers, tweens and timelines made by one active variant,
// plus the elements it wrote to.
type Scope struct {
	tweener *Tweener

	triggers  []*Trigger
	tweens    []*Tween
	timelines []*Timeline
	elements  []*Element

	killed bool
}

func NewScope(tweener *Tweener) *Scope {
	return &Scope{tweener: tweener}
}

func (s *Scope) Tweener() *Tweener {
	return s.tweener
}

func (s *Scope) NewTrigger(cfg TriggerConfig) *Trigger {
	tr := NewTrigger(cfg)
	if s.killed {
		tr.Kill()
		return tr
	}
	s.triggers = append(s.triggers, tr)
	if cfg.Pin != nil {
		s.Track(cfg.Pin)
	}
	return tr
}

func (s *Scope) Triggers() []*Trigger {
	return s.triggers
}

// Track marks elements so Kill reverts them.
func (s *Scope) Track(elements ...*Element) {
	for _, el := range elements {
		if el == nil {
			continue
		}
		found := false
		for _, e := range s.elements {
			if e == el {
				found = true
				break
			}
		}
		if !found {
			s.elements = append(s.elements, el)
		}
	}
}

// Set writes props right away.
func (s *Scope) Set(el *Element, props Props) {
	if el == nil {
		return
	}
	s.Track(el)
	for prop, v := range props {
		el.Set(prop, v)
	}
}

func (s *Scope) SetColors(el *Element, colors ColorProps) {
	if el == nil {
		return
	}
	s.Track(el)
	for prop, c := range colors {
		el.SetColor(prop, c)
	}
}

func (s *Scope) Add(tw *Tween) *Tween {
	s.Track(tw.Target)
	if s.killed {
		tw.Kill()
		return tw
	}
	s.tweens = slices.DeleteFunc(s.tweens, (*Tween).Done)
	s.tweens = append(s.tweens, tw)
	return s.tweener.Add(tw)
}

func (s *Scope) To(el *Element, to Props, duration float64, ease EaseFunc) *Tween {
	return s.Add(NewTween(el, to, duration, ease))
}

func (s *Scope) StaggerTo(
	targets []*Element,
	to func(i int) Props,
	duration float64,
	ease EaseFunc,
	each float64,
) {
	for i, target := range targets {
		if target == nil {
			continue
		}
		tw := NewTween(target, to(i), duration, ease)
		tw.Delay = StaggerDelay(i, len(targets), each)
		s.Add(tw)
	}
}

// Timeline registers tl so Kill stops it. It also tracks the targets of its tweens.
func (s *Scope) Timeline(tl *Timeline) *Timeline {
	for _, entry := range tl.entries {
		s.Track(entry.Tween.Target)
	}
	if s.killed {
		tl.Kill()
		return tl
	}
	s.timelines = append(s.timelines, tl)
	return tl
}

func (s *Scope) Timelines() []*Timeline {
	return s.timelines
}

// Kill stops everything the scope made and reverts every element it touched.
func (s *Scope) Kill() {
	s.killed = true

	for _, tr := range s.triggers {
		tr.Kill()
	}
	for _, tw := range s.tweens {
		tw.Kill()
	}
	for _, tl := range s.timelines {
		tl.Kill()
	}
	for _, el := range s.elements {
		el.Revert()
	}

	s.triggers = nil
	s.tweens = nil
	s.timelines = nil
	s.elements = nil
}

func (s *Scope) Killed() bool {
	return s.killed
}

type variantEntry struct {
	name    string
	match   func(width float64) bool
	variant Variant
}

// BreakpointSwitch keeps exactly one variant alive, picked by viewport width.
type BreakpointSwitch struct {
	OnSwitch func(from, to string)

	entries []variantEntry
	current int

	tweener *Tweener
	scope   *Scope
}

func NewBreakpointSwitch(tweener *Tweener) *BreakpointSwitch {
	return &BreakpointSwitch{
		tweener: tweener,
		current: -1,
	}
}

// Add registers a variant. The first one whose match returns true wins.
func (b *BreakpointSwitch) Add(name string, match func(width float64) bool, v Variant) {
	b.entries = append(b.entries, variantEntry{name, match, v})
}

// MinWidth matches widths of at least w.
func MinWidth(w float64) func(float64) bool {
	return func(width float64) bool { return width >= w }
}

// Below matches widths under w, the complement of MinWidth(w).
func Below(w float64) func(float64) bool {
	return func(width float64) bool { return width < w }
}

// MaxWidth matches widths of at most w.
func MaxWidth(w float64) func(float64) bool {
	return func(width float64) bool { return width <= w }
}

// Update picks the variant for width. When it differs from the live one, the
// old one is fully torn down before the new one is activated.
// Returns true if the variant changed.
func (b *BreakpointSwitch) Update(width float64) bool {
	next := -1
	for i, entry := range b.entries {
		if entry.match(width) {
			next = i
			break
		}
	}

	if next == b.current {
		return false
	}

	from := b.Active()
	b.teardown()

	b.current = next
	if next >= 0 {
		b.scope = NewScope(b.tweener)
		b.entries[next].variant.Activate(b.scope)
	}

	if b.OnSwitch != nil {
		b.OnSwitch(from, b.Active())
	}

	return true
}

func (b *BreakpointSwitch) teardown() {
	if b.current >= 0 {
		b.entries[b.current].variant.Deactivate()
	}
	if b.scope != nil {
		b.scope.Kill()
		b.scope = nil
	}
	b.current = -1
}

// Active returns the name of the live variant or "" when none matches.
func (b *BreakpointSwitch) Active() string {
	if b.current < 0 {
		return ""
	}
	return b.entries[b.current].name
}

func (b *BreakpointSwitch) Scope() *Scope {
	return b.scope
}

func (b *BreakpointSwitch) Triggers() []*Trigger {
	if b.scope == nil {
		return nil
	}
	return b.scope.Triggers()
}

// Rebuild tears down the live variant and activates it again from scratch.
func (b *BreakpointSwitch) Rebuild(width float64) {
	b.teardown()
	b.Update(width)
}

func (b *BreakpointSwitch) Dispose() {
	b.teardown()
}

// VariantFuncs adapts plain functions to Variant.
type VariantFuncs struct {
	OnActivate   func(scope *Scope)
	OnDeactivate func()
}

func (v VariantFuncs) Activate(scope *Scope) {
	if v.OnActivate != nil {
		v.OnActivate(scope)
	}
}

func (v VariantFuncs) Deactivate() {
	if v.OnDeactivate != nil {
		v.OnDeactivate()
	}
}
