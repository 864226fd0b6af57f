package glassfx

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

// ImageFromEbImage copies img's pixels back from the GPU.
func ImageFromEbImage(img *eb.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	img.ReadPixels(out.Pix)
	return out
}

// ScreenshotName returns a png file name for t that isn't taken in dir yet.
func ScreenshotName(dir string, t time.Time) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(entries))
	for _, entry := range entries {
		taken[entry.Name()] = true
	}

	timeStr := t.Format("0102150405")

	filename := fmt.Sprintf("glassfx-%s.png", timeStr)
	for counter := 2; taken[filename]; counter++ {
		filename = fmt.Sprintf("glassfx-%s-(%d).png", timeStr, counter)
	}

	return filename, nil
}

// TakeScreenshot saves img as a png in dir and returns the file path.
func TakeScreenshot(img *eb.Image, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	filename, err := ScreenshotName(dir, time.Now())
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(dir, filename)

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, ImageFromEbImage(img)); err != nil {
		return "", err
	}

	if err := os.WriteFile(fullPath, buffer.Bytes(), 0o644); err != nil {
		return "", err
	}

	return fullPath, nil
}
