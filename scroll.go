package glassfx

import (
	"slices"
	"time"
)

// ScrollSource is where scroll driven animations read the scroll position from.
type ScrollSource interface {
	Offset() float64
	ViewportHeight() float64
	// Subscribe calls fn whenever the offset changes.
	Subscribe(fn func(offset float64)) (unsubscribe func())
}

type scrollSub struct {
	fn func(offset float64)
}

// SmoothScroller eases the scroll offset toward a target moved by wheel,
// keys and touch drags.
type SmoothScroller struct {
	Duration        float64
	WheelMultiplier float64
	Ease            EaseFunc

	offset float64
	target float64

	from      float64
	elapsed   float64
	animating bool

	viewportHeight float64
	contentHeight  float64

	subs []*scrollSub
}

func NewSmoothScroller(duration, wheelMultiplier float64) *SmoothScroller {
	return &SmoothScroller{
		Duration:        duration,
		WheelMultiplier: wheelMultiplier,
		Ease:            EaseExpoScroll,
	}
}

func (s *SmoothScroller) Offset() float64 {
	return s.offset
}

func (s *SmoothScroller) Target() float64 {
	return s.target
}

func (s *SmoothScroller) ViewportHeight() float64 {
	return s.viewportHeight
}

func (s *SmoothScroller) MaxOffset() float64 {
	return max(s.contentHeight-s.viewportHeight, 0)
}

func (s *SmoothScroller) Animating() bool {
	return s.animating
}

func (s *SmoothScroller) Subscribe(fn func(offset float64)) func() {
	sub := &scrollSub{fn: fn}
	s.subs = append(s.subs, sub)
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(other *scrollSub) bool {
			return other == sub
		})
	}
}

func (s *SmoothScroller) notify() {
	// subscribers may unsubscribe while being notified
	subs := slices.Clone(s.subs)
	for _, sub := range subs {
		sub.fn(s.offset)
	}
}

// SetBounds updates viewport and content height, pulling the offset back in
// range if the page got shorter.
func (s *SmoothScroller) SetBounds(viewportHeight, contentHeight float64) {
	s.viewportHeight = viewportHeight
	s.contentHeight = contentHeight

	s.target = Clamp(s.target, 0, s.MaxOffset())
	if s.offset > s.MaxOffset() {
		s.JumpTo(s.MaxOffset())
	}
}

func (s *SmoothScroller) ScrollBy(delta float64) {
	s.ScrollTo(s.target + delta)
}

// ScrollTo starts easing toward offset, clamped to the page.
func (s *SmoothScroller) ScrollTo(offset float64) {
	offset = Clamp(offset, 0, s.MaxOffset())
	if offset == s.target && s.animating {
		return
	}
	s.target = offset
	s.from = s.offset
	s.elapsed = 0
	s.animating = s.offset != s.target
}

// JumpTo moves to offset right away.
func (s *SmoothScroller) JumpTo(offset float64) {
	offset = Clamp(offset, 0, s.MaxOffset())
	s.target = offset
	s.animating = false

	if s.offset != offset {
		s.offset = offset
		s.notify()
	}
}

func (s *SmoothScroller) Tick(now, dt float64) {
	if !s.animating {
		return
	}

	s.elapsed += dt

	prev := s.offset

	t := 1.0
	if s.Duration > 0 {
		t = Clamp(s.elapsed/s.Duration, 0, 1)
	}

	s.offset = Lerp(s.from, s.target, s.Ease(t))
	if t >= 1 {
		s.offset = s.target
		s.animating = false
	}

	if s.offset != prev {
		s.notify()
	}
}

// HandleInput reads wheel, keyboard and touch input of this update.
func (s *SmoothScroller) HandleInput() {
	const (
		lineStep   = 40
		firstRate  = time.Millisecond * 300
		repeatRate = time.Millisecond * 50
	)

	if wheel := WheelY(); wheel != 0 {
		s.ScrollBy(wheel * lineStep * s.WheelMultiplier)
	}

	if HandleKeyRepeat(firstRate, repeatRate, ScrollDownKey) {
		s.ScrollBy(lineStep * 2)
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollUpKey) {
		s.ScrollBy(-lineStep * 2)
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollPageDownKey) ||
		HandleKeyRepeat(firstRate, repeatRate, ScrollSpaceKey) {
		s.ScrollBy(s.viewportHeight * 0.9)
	}
	if HandleKeyRepeat(firstRate, repeatRate, ScrollPageUpKey) {
		s.ScrollBy(-s.viewportHeight * 0.9)
	}
	if IsKeyJustPressed(ScrollHomeKey) {
		s.ScrollTo(0)
	}
	if IsKeyJustPressed(ScrollEndKey) {
		s.ScrollTo(s.MaxOffset())
	}

	// touch follows the finger
	if drag := TheInputManager.TouchDragY; drag != 0 {
		s.JumpTo(s.offset - drag)
	}
}
