package glassfx

import (
	"github.com/go-gl/mathgl/mgl64"
)

// CoverScale returns the scale that makes an image of textureSize fill
// resolution completely while keeping its aspect ratio.
func CoverScale(resolution, textureSize mgl64.Vec2) float64 {
	return max(resolution.X()/textureSize.X(), resolution.Y()/textureSize.Y())
}

// CoverUV maps a viewport uv in [0, 1]^2 to a texture uv, as if the texture
// was scaled to cover the viewport, centered and cropped.
//
// When textureSize is below one pixel on either axis (texture isn't loaded yet)
// uv is returned as is.
func CoverUV(uv, resolution, textureSize mgl64.Vec2) mgl64.Vec2 {
	if textureSize.X() < 1 || textureSize.Y() < 1 {
		return uv
	}

	scale := CoverScale(resolution, textureSize)

	scaledSize := textureSize.Mul(scale)
	offset := resolution.Sub(scaledSize).Mul(0.5)

	pixel := mgl64.Vec2{uv.X() * resolution.X(), uv.Y() * resolution.Y()}
	pixel = pixel.Sub(offset)

	return mgl64.Vec2{pixel.X() / scaledSize.X(), pixel.Y() / scaledSize.Y()}
}

// ClampUV clamps each component to [0, 1].
func ClampUV(uv mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{
		mgl64.Clamp(uv.X(), 0, 1),
		mgl64.Clamp(uv.Y(), 0, 1),
	}
}
