package glassfx

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strconv"
	"sync/atomic"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

// PreloadConcurrency is how many assets load at once.
const PreloadConcurrency = 4

// PreloadSettleDelay is how long after the last asset IsLoaded turns true.
const PreloadSettleDelay = 0.5

func DecodeImageFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

type preloadAsset struct {
	path string

	// written once before done is closed
	img image.Image
	err error

	done chan struct{}
}

// Preloader loads a list of images in the background and reports how far
// along it is. A failed asset still counts as loaded.
type Preloader struct {
	// Load defaults to DecodeImageFile
	Load func(path string) (image.Image, error)

	assets []*preloadAsset
	byPath map[string]*preloadAsset

	loaded atomic.Int32

	cancel  context.CancelFunc
	started bool

	allLoadedAt float64
	isLoaded    bool
	onLoaded    []func()
}

func NewPreloader(paths []string) *Preloader {
	p := &Preloader{
		Load:        DecodeImageFile,
		byPath:      make(map[string]*preloadAsset),
		allLoadedAt: -1,
	}

	for _, path := range paths {
		if _, ok := p.byPath[path]; ok {
			continue
		}
		a := &preloadAsset{path: path, done: make(chan struct{})}
		p.assets = append(p.assets, a)
		p.byPath[path] = a
	}

	return p
}

// Start begins loading. Calling it again does nothing.
func (p *Preloader) Start(ctx context.Context) {
	if p.started {
		return
	}
	p.started = true

	ctx, p.cancel = context.WithCancel(ctx)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(PreloadConcurrency)

	load := p.Load

	go func() {
		for _, a := range p.assets {
			g.Go(func() error {
				defer close(a.done)
				defer p.loaded.Add(1)

				if err := gctx.Err(); err != nil {
					a.err = err
					return nil
				}

				a.img, a.err = load(a.path)
				if a.err != nil {
					WarnLogger.Printf("failed to preload %s: %v", a.path, a.err)
				}
				// failures don't stop the others
				return nil
			})
		}
		g.Wait()
	}()
}

func (p *Preloader) Total() int {
	return len(p.assets)
}

func (p *Preloader) Loaded() int {
	return int(p.loaded.Load())
}

// Percent is the share of loaded assets, rounded, 0 to 100.
func (p *Preloader) Percent() int {
	total := p.Total()
	if total == 0 {
		return 100
	}
	return int(math.Round(f64(p.Loaded()) / f64(total) * 100))
}

// Update turns IsLoaded on once every asset is in and the settle delay passed.
func (p *Preloader) Update(now float64) {
	if p.isLoaded {
		return
	}

	if p.allLoadedAt < 0 {
		if p.Loaded() < p.Total() {
			return
		}
		p.allLoadedAt = now
	}

	if now-p.allLoadedAt >= PreloadSettleDelay {
		p.isLoaded = true
		InfoLogger.Printf("preloaded %d assets", p.Total())

		for _, fn := range p.onLoaded {
			fn()
		}
		p.onLoaded = nil
	}
}

func (p *Preloader) IsLoaded() bool {
	return p.isLoaded
}

// OnLoaded calls fn once IsLoaded turns true, right away if it already is.
func (p *Preloader) OnLoaded(fn func()) {
	if p.isLoaded {
		fn()
		return
	}
	p.onLoaded = append(p.onLoaded, fn)
}

// Await blocks until path finished loading.
func (p *Preloader) Await(ctx context.Context, path string) (image.Image, error) {
	a, ok := p.byPath[path]
	if !ok {
		return nil, fmt.Errorf("%s is not preloaded", path)
	}

	select {
	case <-a.done:
		return a.img, a.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Image returns path's image if it already loaded successfully.
func (p *Preloader) Image(path string) (image.Image, bool) {
	a, ok := p.byPath[path]
	if !ok {
		return nil, false
	}

	select {
	case <-a.done:
		return a.img, a.err == nil && a.img != nil
	default:
		return nil, false
	}
}

// Dispose cancels loads that haven't started.
func (p *Preloader) Dispose() {
	if p.cancel != nil {
		p.cancel()
	}
}

// PreloaderOverlay covers the page with a loading counter until the
// preloader is done, then slides away.
type PreloaderOverlay struct {
	preloader *Preloader

	scope    *Scope
	tickHook *TickHandle

	overlay *Element
	counter *Element

	percent  int
	exiting  bool
	hidden   bool
	exit     *Timeline
	onHidden []func()
}

func NewPreloaderOverlay(ticker *Ticker, preloader *Preloader) *PreloaderOverlay {
	po := new(PreloaderOverlay)

	po.preloader = preloader
	po.scope = NewScope(NewTweener())

	po.overlay = NewElement("preloader")
	po.counter = NewElement("preloader.counter")

	po.scope.Set(po.overlay, Props{"yPercent": 0})
	po.scope.Set(po.counter, Props{"opacity": 0, "scale": 0.9, "count": 0})
	po.scope.To(po.counter, Props{"opacity": 1, "scale": 1}, 1.8, EasePower3Out)

	po.tickHook = ticker.Add(po.tick)

	return po
}

func (po *PreloaderOverlay) tick(now, dt float64) {
	if po.hidden {
		return
	}

	if percent := po.preloader.Percent(); percent != po.percent {
		po.percent = percent
		po.scope.To(po.counter, Props{"count": f64(percent)}, 3.2, EasePower2Out)
	}

	if !po.exiting && po.preloader.IsLoaded() {
		po.exiting = true

		tl := NewTimeline()
		tl.Add(0, NewTween(po.counter, Props{"scale": 1.06}, 1, EasePower2InOut))
		tl.Hold(1.2)
		tl.Append(-0.8, NewTween(po.overlay, Props{"yPercent": -100}, 1.8, EasePower4InOut))
		tl.OnComplete = po.hide

		po.exit = po.scope.Timeline(tl)
		po.exit.Play()
	}

	if po.exit != nil {
		po.exit.Advance(dt)
	}
	po.scope.Tweener().Update(dt)
}

func (po *PreloaderOverlay) hide() {
	po.hidden = true
	InfoLogger.Print("preloader overlay hidden")

	for _, fn := range po.onHidden {
		fn()
	}
	po.onHidden = nil
}

// Hidden reports whether the overlay finished sliding away.
func (po *PreloaderOverlay) Hidden() bool {
	return po.hidden
}

// OnHidden calls fn once the overlay is gone, right away if it already is.
func (po *PreloaderOverlay) OnHidden(fn func()) {
	if po.hidden {
		fn()
		return
	}
	po.onHidden = append(po.onHidden, fn)
}

// Count is the number the counter shows right now.
func (po *PreloaderOverlay) Count() int {
	return int(math.Round(po.counter.Get("count", 0)))
}

func (po *PreloaderOverlay) Draw(dst *eb.Image) {
	if po.hidden {
		return
	}

	w, h := ImageSizeF(dst)
	rect := FRectWH(w, h).Add(FPt(0, po.overlay.Get("yPercent", 0)*0.01*h))
	if rect.Max.Y <= 0 {
		return
	}

	DrawFilledRect(dst, rect, ColorPageBg, false)

	if BoldFace == nil {
		return
	}

	str := strconv.Itoa(po.Count())
	face := FaceOfSize(BoldFace, Clamp(w*0.12, 64, 200))
	tr := TextRect(str, face, 0, 0)

	textRect := CenterFRectangle(tr, w*0.5, rect.Min.Y+h*0.5)
	DrawElementText(dst, po.counter, textRect, 0, str, face, ColorTextLit)
}

// Dispose stops the overlay's animations and cancels its frame callback.
func (po *PreloaderOverlay) Dispose() {
	po.tickHook.Cancel()
	po.scope.Kill()
}
