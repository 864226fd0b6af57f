package glassfx

import (
	"fmt"
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type PipelineState int

const (
	PipelineUninitialized PipelineState = iota
	PipelineAwaitingTexture
	PipelineReady
	PipelineDisposed
)

func (s PipelineState) String() string {
	switch s {
	case PipelineUninitialized:
		return "uninitialized"
	case PipelineAwaitingTexture:
		return "awaiting-texture"
	case PipelineReady:
		return "ready"
	case PipelineDisposed:
		return "disposed"
	}
	return fmt.Sprintf("PipelineState(%d)", int(s))
}

// GPUProgram is the GPU side of the pipeline: program, quad and texture.
type GPUProgram interface {
	SetTexture(img image.Image)
	Draw(dst *eb.Image, at FPoint, u *Uniforms)
	Dispose()
}

type textureResult struct {
	img image.Image
	err error
}

// Pipeline draws the glass effect over a source image once per frame.
//
// It starts out waiting for its texture and draws nothing until the texture
// arrives. Ready flips once, after the first frame drawn with a texture.
type Pipeline struct {
	uniforms Uniforms

	clock   *ContinuousClock
	program GPUProgram

	state PipelineState

	loadCh chan textureResult

	ready    bool
	onReady  []func()
	tickHook *TickHandle
}

// NewPipeline compiles the glass program and registers the pipeline's frame
// callback on ticker. now is the timestamp time is measured from.
func NewPipeline(
	params EffectParameters,
	resolution FPoint,
	ticker *Ticker,
	now float64,
) (*Pipeline, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("effect parameters: %w", err)
	}

	shader, err := CompileGlassShader()
	if err != nil {
		return nil, err
	}

	return newPipeline(params, resolution, NewKageProgram(shader), ticker, now), nil
}

func newPipeline(
	params EffectParameters,
	resolution FPoint,
	program GPUProgram,
	ticker *Ticker,
	now float64,
) *Pipeline {
	p := new(Pipeline)

	p.state = PipelineUninitialized

	p.uniforms.Params = params
	p.uniforms.Resolution = resolution
	p.uniforms.TextureSize = FPt(1, 1)

	p.clock = NewContinuousClock(now, params.AnimationSpeed)
	p.program = program

	p.tickHook = ticker.Add(p.tick)

	p.state = PipelineAwaitingTexture

	return p
}

// LoadTexture runs load off the frame loop. The result is picked up by the
// next tick, after which the pipeline is ready. A failed load still makes the
// pipeline ready, with a placeholder texture.
func (p *Pipeline) LoadTexture(load func() (image.Image, error)) {
	if p.state != PipelineAwaitingTexture || p.loadCh != nil {
		return
	}

	ch := make(chan textureResult, 1)
	p.loadCh = ch

	go func() {
		img, err := load()
		ch <- textureResult{img: img, err: err}
	}()
}

// SetTexture hands the texture over directly, bypassing LoadTexture.
func (p *Pipeline) SetTexture(img image.Image, err error) {
	if p.state != PipelineAwaitingTexture {
		return
	}
	p.loadCh = nil
	p.onTexture(textureResult{img: img, err: err})
}

func (p *Pipeline) pollTexture() {
	if p.loadCh == nil {
		return
	}

	select {
	case res := <-p.loadCh:
		p.loadCh = nil
		p.onTexture(res)
	default:
		// not yet
	}
}

func (p *Pipeline) onTexture(res textureResult) {
	if p.state == PipelineDisposed {
		return
	}

	img := res.img
	if res.err != nil || img == nil {
		if res.err != nil {
			ErrLogger.Printf("failed to load texture, using placeholder: %v", res.err)
		} else {
			ErrLogger.Print("texture loader returned no image, using placeholder")
		}
		img = PlaceholderTexture()
	}

	size := img.Bounds().Size()

	p.program.SetTexture(img)
	p.uniforms.TextureSize = FPt(f64(size.X), f64(size.Y))

	p.state = PipelineReady
	InfoLogger.Printf("glass pipeline texture loaded %dx%d", size.X, size.Y)
}

func (p *Pipeline) tick(now, dt float64) {
	if p.state == PipelineDisposed {
		return
	}

	p.pollTexture()

	fs := p.clock.Tick(now)
	p.uniforms.Time = fs.ElapsedSeconds
	p.uniforms.Progress = fs.WaveValue
}

// SetResolution only touches the resolution uniform.
func (p *Pipeline) SetResolution(width, height float64) {
	if p.state == PipelineDisposed {
		return
	}
	p.uniforms.Resolution = FPt(width, height)
}

// Draw renders the effect with its top left corner at at.
// It does nothing until the texture is in.
func (p *Pipeline) Draw(dst *eb.Image, at FPoint) {
	if p.state != PipelineReady {
		return
	}

	p.program.Draw(dst, at, &p.uniforms)

	if !p.ready {
		p.ready = true
		InfoLogger.Print("glass pipeline ready")
		for _, fn := range p.onReady {
			fn()
		}
		p.onReady = nil
	}
}

// Ready reports whether a frame with a real texture was drawn.
func (p *Pipeline) Ready() bool {
	return p.ready
}

// OnReady calls fn once when the pipeline becomes ready.
// If it already is, fn is called right away.
func (p *Pipeline) OnReady(fn func()) {
	if p.ready {
		fn()
		return
	}
	p.onReady = append(p.onReady, fn)
}

func (p *Pipeline) State() PipelineState {
	return p.state
}

// Uniforms returns a copy of the current uniforms.
func (p *Pipeline) Uniforms() Uniforms {
	return p.uniforms
}

// ReplaceShader swaps the compiled program, used by hot reload.
func (p *Pipeline) ReplaceShader(shader *eb.Shader) {
	if kp, ok := p.program.(*KageProgram); ok && p.state != PipelineDisposed {
		kp.SetShader(shader)
	}
}

// Dispose cancels the frame callback and frees the GPU program, quad and
// texture. A texture load still in flight is dropped when it lands.
func (p *Pipeline) Dispose() {
	if p.state == PipelineDisposed {
		return
	}
	p.state = PipelineDisposed

	p.tickHook.Cancel()
	p.loadCh = nil
	p.onReady = nil

	p.program.Dispose()
}

// KageProgram draws the glass shader on a full viewport quad into its own canvas.
type KageProgram struct {
	shader  *eb.Shader
	texture *eb.Image
	canvas  *eb.Image

	vertices [4]eb.Vertex
	indices  [6]uint16
}

func NewKageProgram(shader *eb.Shader) *KageProgram {
	kp := &KageProgram{shader: shader}

	kp.indices = [6]uint16{0, 1, 2, 1, 3, 2}
	for i := range kp.vertices {
		kp.vertices[i].ColorR = 1
		kp.vertices[i].ColorG = 1
		kp.vertices[i].ColorB = 1
		kp.vertices[i].ColorA = 1
	}

	return kp
}

func (kp *KageProgram) SetShader(shader *eb.Shader) {
	if kp.shader != nil {
		kp.shader.Deallocate()
	}
	kp.shader = shader
}

func (kp *KageProgram) SetTexture(img image.Image) {
	if kp.texture != nil {
		kp.texture.Deallocate()
	}
	kp.texture = eb.NewImageFromImage(img)
}

// updateQuad spans the quad over the w x h canvas and the whole texture.
func (kp *KageProgram) updateQuad(w, h float64) {
	texW, texH := ImageSizeF(kp.texture)

	corners := [4]FPoint{FPt(0, 0), FPt(1, 0), FPt(0, 1), FPt(1, 1)}
	for i, c := range corners {
		kp.vertices[i].DstX = f32(c.X * w)
		kp.vertices[i].DstY = f32(c.Y * h)
		kp.vertices[i].SrcX = f32(c.X * texW)
		kp.vertices[i].SrcY = f32(c.Y * texH)
	}
}

func (kp *KageProgram) Draw(dst *eb.Image, at FPoint, u *Uniforms) {
	if kp.shader == nil || kp.texture == nil {
		return
	}

	w, h := int(u.Resolution.X+0.5), int(u.Resolution.Y+0.5)
	if w < 1 || h < 1 {
		return
	}

	if kp.canvas == nil || kp.canvas.Bounds().Dx() != w || kp.canvas.Bounds().Dy() != h {
		if kp.canvas != nil {
			kp.canvas.Deallocate()
		}
		kp.canvas = eb.NewImage(w, h)
	}

	kp.updateQuad(f64(w), f64(h))

	kp.canvas.Clear()

	op := &DrawTrianglesShaderOptions{}
	op.Uniforms = u.ShaderUniforms()
	op.Images[0] = kp.texture

	DrawTrianglesShader(kp.canvas, kp.vertices[:], kp.indices[:], kp.shader, op)

	imgOp := &DrawImageOptions{}
	imgOp.GeoM.Translate(at.X, at.Y)
	DrawImage(dst, kp.canvas, imgOp)
}

func (kp *KageProgram) Dispose() {
	if kp.shader != nil {
		kp.shader.Deallocate()
		kp.shader = nil
	}
	if kp.texture != nil {
		kp.texture.Deallocate()
		kp.texture = nil
	}
	if kp.canvas != nil {
		kp.canvas.Deallocate()
		kp.canvas = nil
	}
}
