package glassfx

import (
	"fmt"
	"image/color"
	"slices"
	"strings"
)

// Element is something on the page that animations write to.
//
// Properties are plain named floats ("y", "opacity", "rotationY", ...) and
// named colors. Each property remembers its value from before the first
// write so Revert can put the element back the way layout left it.
type Element struct {
	Name string

	// Rect is the layout rect in page coordinates, set by the page layout.
	Rect FRectangle

	values map[string]float64
	colors map[string]color.NRGBA

	origValues map[string]float64
	origColors map[string]color.NRGBA

	// properties that didn't exist before first write
	newValues map[string]bool
	newColors map[string]bool
}

func NewElement(name string) *Element {
	e := &Element{Name: name}
	e.values = make(map[string]float64)
	e.colors = make(map[string]color.NRGBA)
	e.origValues = make(map[string]float64)
	e.origColors = make(map[string]color.NRGBA)
	e.newValues = make(map[string]bool)
	e.newColors = make(map[string]bool)
	return e
}

// SetDefault sets a value as part of the element's base state.
// Revert goes back to it.
func (e *Element) SetDefault(prop string, v float64) {
	e.values[prop] = v
	delete(e.origValues, prop)
	delete(e.newValues, prop)
}

func (e *Element) SetDefaultColor(prop string, c color.NRGBA) {
	e.colors[prop] = c
	delete(e.origColors, prop)
	delete(e.newColors, prop)
}

func (e *Element) Set(prop string, v float64) {
	if old, ok := e.values[prop]; ok {
		if _, saved := e.origValues[prop]; !saved && !e.newValues[prop] {
			e.origValues[prop] = old
		}
	} else {
		e.newValues[prop] = true
	}
	e.values[prop] = v
}

// Get returns the value of prop, or fallback when it was never set.
func (e *Element) Get(prop string, fallback float64) float64 {
	if v, ok := e.values[prop]; ok {
		return v
	}
	return fallback
}

func (e *Element) Has(prop string) bool {
	_, ok := e.values[prop]
	return ok
}

func (e *Element) SetColor(prop string, c color.NRGBA) {
	if old, ok := e.colors[prop]; ok {
		if _, saved := e.origColors[prop]; !saved && !e.newColors[prop] {
			e.origColors[prop] = old
		}
	} else {
		e.newColors[prop] = true
	}
	e.colors[prop] = c
}

func (e *Element) Color(prop string, fallback color.NRGBA) color.NRGBA {
	if c, ok := e.colors[prop]; ok {
		return c
	}
	return fallback
}

// Revert undoes every write since the last SetDefault.
func (e *Element) Revert() {
	for prop, v := range e.origValues {
		e.values[prop] = v
	}
	for prop := range e.newValues {
		delete(e.values, prop)
	}
	for prop, c := range e.origColors {
		e.colors[prop] = c
	}
	for prop := range e.newColors {
		delete(e.colors, prop)
	}

	clear(e.origValues)
	clear(e.newValues)
	clear(e.origColors)
	clear(e.newColors)
}

// String dumps the element state, sorted by property name.
func (e *Element) String() string {
	var b strings.Builder

	b.WriteString(e.Name)
	b.WriteString(" {")

	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s:%.3f", k, e.values[k])
	}

	keys = keys[:0]
	for k := range e.colors {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s:%s", k, ColorToString(e.colors[k]))
	}

	b.WriteString(" }")
	return b.String()
}
