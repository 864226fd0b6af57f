package glassfx

import (
	"image/color"
	"testing"
)

func TestElementRevert(t *testing.T) {
	el := NewElement("card")
	el.SetDefault("opacity", 1)
	el.SetDefaultColor("bg", color.NRGBA{255, 0, 0, 255})

	el.Set("opacity", 0.2)
	el.Set("opacity", 0.4)
	el.Set("x", 30)
	el.SetColor("bg", color.NRGBA{0, 0, 255, 255})

	el.Revert()

	if got := el.Get("opacity", -1); got != 1 {
		t.Errorf("opacity = %v, want 1", got)
	}
	if el.Has("x") {
		t.Error("x was never part of the base state but survived Revert")
	}
	if got := el.Color("bg", color.NRGBA{}); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("bg = %v", got)
	}

	// a second revert has nothing to undo
	el.Set("opacity", 0)
	el.Revert()
	el.Revert()
	if got := el.Get("opacity", -1); got != 1 {
		t.Errorf("opacity after double revert = %v, want 1", got)
	}
}

func TestElementString(t *testing.T) {
	el := NewElement("el")
	el.Set("y", 2)
	el.Set("x", 1)

	if got, want := el.String(), "el { x:1.000 y:2.000 }"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSplitTextWords(t *testing.T) {
	st := NewSplitText("h", "creativity, precision,  results")

	if len(st.Words) != 3 {
		t.Fatalf("%d words, want 3", len(st.Words))
	}
	if len(st.Chars) != len("creativity,precision,results") {
		t.Errorf("%d chars, whitespace should get none", len(st.Chars))
	}
	if len(st.Elements) != len(st.Chars) {
		t.Errorf("%d elements for %d chars", len(st.Elements), len(st.Chars))
	}

	word := st.WordElements(1)
	if len(word) != len("precision,") {
		t.Errorf("second word has %d elements", len(word))
	}
	if word[0] != st.Elements[len("creativity,")] {
		t.Error("second word doesn't start after the first")
	}
}
