//go:build ignore

//kage:unit pixels

package main

// Uniform variables.
var Resolution vec2
var TextureSize vec2

var ParallaxStrength float
var DistortionMultiplier float
var GlassStrength float
var StripesFrequency float
var GlassSmoothness float
var EdgePadding float
var AnimationSpeed float

var Time float
var Progress float

func coverUV(uv vec2) vec2 {
	if TextureSize.x < 1 || TextureSize.y < 1 {
		return uv
	}

	s := Resolution / TextureSize
	scale := max(s.x, s.y)

	scaledSize := TextureSize * scale
	offset := (Resolution - scaledSize) * 0.5

	return (uv*Resolution - offset) / scaledSize
}

func displacement(x float, numStripes float, strength float) float {
	modulus := 1.0 / numStripes
	return mod(x, modulus) * strength
}

func fractalGlass(x float, glassStrength float) float {
	d := 0.0
	for i := -5; i <= 5; i++ {
		d += displacement(x+float(i)*GlassSmoothness, StripesFrequency, glassStrength)
	}
	d = d / 11.0
	return x + d
}

func smoothEdge(x float, padding float) float {
	if x < padding {
		return smoothstep(0.0, padding, x)
	} else if x > 1.0-padding {
		return smoothstep(0.0, padding, 1.0-x)
	}
	return 1.0
}

// bilinear sample, at is in texture pixels
func sampleLinear(at vec2) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()

	p := clamp(at, vec2(0.5), size-vec2(0.5)) - vec2(0.5)
	base := floor(p)
	f := p - base

	next := min(base+vec2(1), size-vec2(1))

	c00 := imageSrc0UnsafeAt(origin + vec2(base.x, base.y) + vec2(0.5))
	c10 := imageSrc0UnsafeAt(origin + vec2(next.x, base.y) + vec2(0.5))
	c01 := imageSrc0UnsafeAt(origin + vec2(base.x, next.y) + vec2(0.5))
	c11 := imageSrc0UnsafeAt(origin + vec2(next.x, next.y) + vec2(0.5))

	return mix(mix(c00, c10, f.x), mix(c01, c11, f.x), f.y)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := (dstPos.xy - imageDstOrigin()) / Resolution

	pulse := 0.5 + 0.5*sin(Time*0.5)

	originalX := uv.x
	edgeFactor := smoothEdge(originalX, EdgePadding)

	glassStrength := GlassStrength * (0.8 + 0.2*pulse)
	distortedX := fractalGlass(originalX, glassStrength)

	uv.x = mix(originalX, distortedX, edgeFactor)
	distortionFactor := uv.x - originalX

	// always left to right
	parallax := Progress * ParallaxStrength * (1.0 + abs(distortionFactor)*DistortionMultiplier)
	uv.x += parallax * edgeFactor

	uv.x += Time * 0.00005
	uv.y += sin(Time*0.3+uv.x*3.0) * 0.0005

	texUV := clamp(coverUV(uv), vec2(0), vec2(1))

	return sampleLinear(texUV * imageSrc0Size())
}
