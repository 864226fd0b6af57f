package glassfx

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// Section is one block of the page.
type Section interface {
	Controller() *Controller

	// Layout places the section's elements for viewport with the section's
	// top at top and returns its height, pin spacing not included.
	Layout(top float64, viewport FPoint) float64

	Draw(dst *eb.Image, scroll float64)
}

// Controller owns everything that animates one section: its tweens, its
// breakpoint variants and their triggers, and a frame callback.
type Controller struct {
	Name string

	// RebuildOnResize recreates the live variant on every refresh,
	// not only when the breakpoint changes.
	RebuildOnResize bool

	tweener *Tweener
	sw      *BreakpointSwitch

	// things that live as long as the section, whatever the breakpoint
	base *Scope

	tickHook *TickHandle

	scroll   float64
	disposed bool
}

func NewController(name string, ticker *Ticker) *Controller {
	c := &Controller{Name: name}

	c.tweener = NewTweener()
	c.sw = NewBreakpointSwitch(c.tweener)
	c.base = NewScope(c.tweener)

	c.sw.OnSwitch = func(from, to string) {
		InfoLogger.Printf("%s: variant %q -> %q", c.Name, from, to)
	}

	c.tickHook = ticker.Add(c.tick)

	return c
}

func (c *Controller) Tweener() *Tweener {
	return c.tweener
}

// Base is the scope for animations that outlive breakpoint switches.
func (c *Controller) Base() *Scope {
	return c.base
}

func (c *Controller) AddVariant(name string, match func(width float64) bool, v Variant) {
	c.sw.Add(name, match, v)
}

// Always registers v as the only variant.
func (c *Controller) Always(v Variant) {
	c.sw.Add("default", func(float64) bool { return true }, v)
}

func (c *Controller) ActiveVariant() string {
	return c.sw.Active()
}

func (c *Controller) Triggers() []*Trigger {
	return c.sw.Triggers()
}

func (c *Controller) tick(now, dt float64) {
	if c.disposed {
		return
	}

	for _, tr := range c.Triggers() {
		tr.Tick(dt)
	}

	for _, tl := range c.base.Timelines() {
		tl.Advance(dt)
	}
	if scope := c.sw.Scope(); scope != nil {
		for _, tl := range scope.Timelines() {
			tl.Advance(dt)
		}
	}

	c.tweener.Update(dt)
}

// SetBreakpoint picks the variant for width. Returns true if it changed.
func (c *Controller) SetBreakpoint(width float64) bool {
	if c.disposed {
		return false
	}
	if c.RebuildOnResize {
		c.sw.Rebuild(width)
		return true
	}
	return c.sw.Update(width)
}

// Refresh recomputes the bounds of every live trigger.
func (c *Controller) Refresh(viewportHeight float64) {
	if c.disposed {
		return
	}
	for _, tr := range c.Triggers() {
		// new triggers haven't seen a scroll position yet
		tr.Update(c.scroll)
		tr.Refresh(viewportHeight)
	}
}

func (c *Controller) ScrollUpdate(scroll float64) {
	if c.disposed {
		return
	}
	c.scroll = scroll
	for _, tr := range c.Triggers() {
		tr.Update(scroll)
	}
}

// PinSpacing is the extra height pinned triggers add after the section.
func (c *Controller) PinSpacing() float64 {
	spacing := 0.0
	for _, tr := range c.Triggers() {
		spacing += tr.PinSpacing()
	}
	return spacing
}

// PinOffset is how far el is pushed down to stay pinned.
func (c *Controller) PinOffset(el *Element) float64 {
	offset := 0.0
	for _, tr := range c.Triggers() {
		if tr.PinTarget() == el {
			offset += tr.PinOffset()
		}
	}
	return offset
}

// Dispose kills every trigger, tween and timeline and cancels the frame callback.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true

	c.tickHook.Cancel()
	c.sw.Dispose()
	c.base.Kill()
	c.tweener.KillAll()
}

func (c *Controller) Disposed() bool {
	return c.disposed
}

func (c *Controller) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)", c.Name, c.ActiveVariant())
	for _, tr := range c.Triggers() {
		fmt.Fprintf(&b, "\n  %s", tr)
	}
	return b.String()
}

// Page stacks sections top to bottom and keeps their triggers in sync with
// layout and scroll.
type Page struct {
	Sections []Section

	viewport FPoint
	height   float64
	scroll   float64

	tops []float64
}

func NewPage(sections ...Section) *Page {
	return &Page{Sections: sections}
}

// Refresh lays out every section for viewport and recomputes trigger bounds
// in page order, so pin spacing of earlier sections moves later ones.
func (p *Page) Refresh(viewport FPoint) {
	p.viewport = viewport
	p.tops = p.tops[:0]

	top := 0.0
	for _, s := range p.Sections {
		ctl := s.Controller()

		ctl.SetBreakpoint(viewport.X)

		p.tops = append(p.tops, top)
		h := s.Layout(top, viewport)
		ctl.Refresh(viewport.Y)

		top += h + ctl.PinSpacing()
	}

	p.height = top
}

func (p *Page) SetScroll(scroll float64) {
	p.scroll = scroll
	for _, s := range p.Sections {
		s.Controller().ScrollUpdate(scroll)
	}
}

func (p *Page) Scroll() float64 {
	return p.scroll
}

func (p *Page) Height() float64 {
	return p.height
}

func (p *Page) Viewport() FPoint {
	return p.viewport
}

// SectionTop returns where section i starts after the last refresh.
func (p *Page) SectionTop(i int) float64 {
	if i < 0 || i >= len(p.tops) {
		return 0
	}
	return p.tops[i]
}

func (p *Page) Draw(dst *eb.Image) {
	for _, s := range p.Sections {
		s.Draw(dst, p.scroll)
	}
}

func (p *Page) Dispose() {
	for _, s := range p.Sections {
		s.Controller().Dispose()
	}
}

func (p *Page) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scroll %.1f / %.1f", p.scroll, p.height)
	for _, s := range p.Sections {
		b.WriteString("\n")
		b.WriteString(s.Controller().Dump())
	}
	return b.String()
}
