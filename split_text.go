package glassfx

import (
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SplitText is a text with one element per character, so characters can be
// animated one by one. Whitespace gets no element.
type SplitText struct {
	Chars    []string
	Elements []*Element

	// Words[i] holds the indices of the characters of word i
	Words [][]int

	// LinePerWord puts every word on its own line
	LinePerWord bool

	face *ebt.GoTextFace
}

func NewSplitText(name, text string) *SplitText {
	st := new(SplitText)

	for _, word := range strings.Fields(text) {
		var indices []int
		for _, r := range word {
			indices = append(indices, len(st.Chars))
			st.Chars = append(st.Chars, string(r))
			st.Elements = append(st.Elements, NewElement(name+".char"))
		}
		st.Words = append(st.Words, indices)
	}

	return st
}

// WordElements returns the character elements of word i.
func (st *SplitText) WordElements(i int) []*Element {
	els := make([]*Element, 0, len(st.Words[i]))
	for _, ci := range st.Words[i] {
		els = append(els, st.Elements[ci])
	}
	return els
}

// Layout wraps the words into lines no wider than maxWidth starting at x, y
// and returns the height it took.
func (st *SplitText) Layout(face *ebt.GoTextFace, x, y, maxWidth float64) float64 {
	st.face = face

	lineHeight := FontLineSpacing(face)
	spaceW := ebt.Advance(" ", face)

	penX, penY := x, y
	lineStart := true

	for _, word := range st.Words {
		wordW := 0.0
		for _, ci := range word {
			wordW += ebt.Advance(st.Chars[ci], face)
		}

		if !lineStart && (st.LinePerWord || penX+wordW > x+maxWidth) {
			penX = x
			penY += lineHeight
			lineStart = true
		}
		if !lineStart {
			penX += spaceW
		}

		for _, ci := range word {
			adv := ebt.Advance(st.Chars[ci], face)
			st.Elements[ci].Rect = FRectXYWH(penX, penY, adv, lineHeight)
			penX += adv
		}
		lineStart = false
	}

	if len(st.Words) == 0 {
		return 0
	}
	return penY + lineHeight - y
}

// Draw draws each character with its "color" property, or clr if it has none.
func (st *SplitText) Draw(dst *eb.Image, scroll float64, clr color.NRGBA) {
	if st.face == nil {
		return
	}
	for i, el := range st.Elements {
		DrawElementText(dst, el, el.Rect, scroll, st.Chars[i], st.face, el.Color("color", clr))
	}
}

// WrapText breaks str into lines no wider than maxWidth.
func WrapText(str string, face *ebt.GoTextFace, maxWidth float64) []string {
	var lines []string
	var line strings.Builder

	spaceW := ebt.Advance(" ", face)
	lineW := 0.0

	for _, word := range strings.Fields(str) {
		wordW := ebt.Advance(word, face)
		if line.Len() > 0 && lineW+spaceW+wordW > maxWidth {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if line.Len() > 0 {
			line.WriteString(" ")
			lineW += spaceW
		}
		line.WriteString(word)
		lineW += wordW
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}

	return lines
}
