package glassfx

import (
	"bytes"
	"image"
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebt "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	ClearFace *ebt.GoTextFace
	BoldFace  *ebt.GoTextFace
)

var WhiteImage *eb.Image

func init() {
	whiteImg := image.NewNRGBA(RectWH(3, 3))
	for x := range 3 {
		for y := range 3 {
			whiteImg.Set(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	wholeWhiteImage := eb.NewImageFromImage(whiteImg)
	WhiteImage = wholeWhiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*eb.Image)
}

func LoadAssets() {
	// load fonts
	{
		faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			ErrLogger.Fatalf("failed to load font : %v", err)
		}

		ClearFace = &ebt.GoTextFace{
			Source: faceSource,
			Size:   64,
		}
	}
	{
		faceSource, err := ebt.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			ErrLogger.Fatalf("failed to load font : %v", err)
		}

		BoldFace = &ebt.GoTextFace{
			Source: faceSource,
			Size:   64,
		}
	}
}

// FaceOfSize returns a copy of face scaled to size.
func FaceOfSize(face *ebt.GoTextFace, size float64) *ebt.GoTextFace {
	f := *face
	f.Size = size
	return &f
}

// PlaceholderTexture stands in for a texture that failed to load: a dark
// vertical gradient in the page's colors.
func PlaceholderTexture() image.Image {
	const w, h = 64, 64

	top := color.NRGBA{14, 5, 25, 255}
	bottom := color.NRGBA{60, 36, 94, 255}

	img := image.NewNRGBA(RectWH(w, h))
	for y := range h {
		c := LerpColorRGBA(top, bottom, f64(y)/(h-1))
		for x := range w {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
