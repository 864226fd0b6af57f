package glassfx

import (
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

type App struct {
	Config    Config
	HotReload bool

	ticker   *Ticker
	scroller *SmoothScroller

	preloader *Preloader
	overlay   *PreloaderOverlay

	pipeline *Pipeline

	page     *Page
	hero     *Hero
	services *Services
	navbar   *Navbar

	coordinator *ResizeCoordinator

	frameStats          *FrameStats
	lastUpdate          time.Time
	screenshotRequested bool

	unsubscribe func()
	cancel      context.CancelFunc
}

func NewApp(config Config, hotReload bool) (*App, error) {
	a := new(App)

	a.Config = config
	a.HotReload = hotReload

	var ctx context.Context
	ctx, a.cancel = context.WithCancel(context.Background())

	a.ticker = NewTicker()
	a.frameStats = NewFrameStats(120)

	// scroll goes first so triggers see this frame's offset
	a.scroller = NewSmoothScroller(config.Scroll.Duration, config.Scroll.WheelMultiplier)
	a.ticker.Add(a.scroller.Tick)

	a.preloader = NewPreloader(config.PreloadPaths())
	a.preloader.Start(ctx)

	pipeline, err := NewPipeline(config.Effect, FPt(1, 1), a.ticker, GlobalTimerSeconds())
	if err != nil {
		a.cancel()
		return nil, err
	}
	a.pipeline = pipeline

	heroPath := config.Hero
	a.pipeline.LoadTexture(func() (image.Image, error) {
		return a.preloader.Await(ctx, heroPath)
	})

	a.hero = NewHero(a.ticker, a.pipeline)
	a.services = NewServices(a.ticker, config.Breakpoints.Sections)
	a.navbar = NewNavbar(a.ticker, config.Breakpoints.Navbar)

	a.page = NewPage(
		a.hero,
		NewTextSection(a.ticker),
		a.services,
		NewTeamHeading(a.ticker),
		NewTeam(a.ticker, config.Breakpoints.Sections),
		// drawn over everything
		a.navbar,
	)

	a.overlay = NewPreloaderOverlay(a.ticker, a.preloader)
	a.overlay.OnHidden(a.hero.SetPreloaderDone)

	a.preloader.OnLoaded(a.useLoadedImages)

	a.unsubscribe = a.scroller.Subscribe(a.page.SetScroll)

	a.coordinator = NewResizeCoordinator(config.ResizeDebounce)
	a.coordinator.Pipeline = a.pipeline
	a.coordinator.Measure = func(viewport FPoint) FPoint {
		// the hero fills the viewport
		return viewport
	}
	a.coordinator.Refreshers = []LayoutRefresher{a}

	return a, nil
}

func (a *App) useLoadedImages() {
	for i, path := range a.Config.Cards {
		if img, ok := a.preloader.Image(path); ok {
			a.services.SetCardImage(i, eb.NewImageFromImage(img))
		}
	}
	if img, ok := a.preloader.Image(a.Config.Logo); ok {
		a.navbar.SetLogo(eb.NewImageFromImage(img))
	}
}

// Refresh lays the page out again for viewport and fixes up the scroll range.
func (a *App) Refresh(viewport FPoint) {
	a.page.Refresh(viewport)
	a.scroller.SetBounds(viewport.Y, a.page.Height())
	a.page.SetScroll(a.scroller.Offset())

	InfoLogger.Printf("layout %.0fx%.0f, page height %.0f", viewport.X, viewport.Y, a.page.Height())
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()
	now := GlobalTimerSeconds()
	if !a.lastUpdate.IsZero() {
		a.frameStats.Record(time.Since(a.lastUpdate))
	}
	a.lastUpdate = time.Now()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	eb.SetWindowTitle("glassfx FPS: " + fpsStr + " TPS: " + tpsStr)

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrintf("frame", "avg %v worst %v", a.frameStats.Average(), a.frameStats.Worst())

	UpdateInput()

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		TheDebugPrintManager.Show = !TheDebugPrintManager.Show
	}

	if a.HotReload && IsKeyJustPressed(ReloadShaderKey) {
		if shader, err := LoadGlassShaderFromDisk(); err != nil {
			ErrLogger.Printf("failed to reload shader: %v", err)
		} else {
			a.pipeline.ReplaceShader(shader)
			InfoLogger.Print("reloaded glass shader")
		}
	}

	if IsKeyJustPressed(CopyStateKey) {
		ClipboardWriteText(a.Dump())
	}

	if IsKeyJustPressed(ScreenshotKey) {
		a.screenshotRequested = true
	}

	// ==========================
	// frame
	// ==========================
	// the page can't be scrolled under the preloader
	if a.overlay.Hidden() {
		a.scroller.HandleInput()
	}

	a.coordinator.Update(now)
	a.preloader.Update(now)

	a.ticker.Tick(now)

	a.debugPrintState()

	return nil
}

func (a *App) debugPrintState() {
	DebugPrintf("scroll", "%.1f / %.1f", a.scroller.Offset(), a.scroller.MaxOffset())
	DebugPrint("pipeline", a.pipeline.State())
	DebugPrintf("preload", "%d%% (%d/%d)", a.preloader.Percent(), a.preloader.Loaded(), a.preloader.Total())

	u := a.pipeline.Uniforms()
	DebugPrintf("glass", "time %.2f progress %.3f", u.Time, u.Progress)

	for _, s := range a.page.Sections {
		ctl := s.Controller()

		var b strings.Builder
		b.WriteString(ctl.ActiveVariant())
		for _, tr := range ctl.Triggers() {
			fmt.Fprintf(&b, " %.2f", tr.Progress())
		}
		DebugPuts(ctl.Name, b.String())
	}
}

func (a *App) Draw(dst *eb.Image) {
	dst.Fill(ColorPageBg)

	a.page.Draw(dst)
	a.overlay.Draw(dst)

	if a.screenshotRequested {
		a.screenshotRequested = false
		if path, err := TakeScreenshot(dst, a.Config.ScreenshotDir); err != nil {
			ErrLogger.Printf("failed to take screenshot: %v", err)
		} else {
			InfoLogger.Printf("saved screenshot %s", path)
		}
	}

	DrawDebugMsgs(dst)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.coordinator.Notify(FPt(f64(outsideWidth), f64(outsideHeight)), GlobalTimerSeconds())
	return outsideWidth, outsideHeight
}

// Dump describes the pipeline and every section's triggers.
func (a *App) Dump() string {
	var b strings.Builder

	fmt.Fprintf(&b, "pipeline %s\n", a.pipeline.State())
	fmt.Fprintf(&b, "viewport %.0fx%.0f\n", a.coordinator.Viewport().X, a.coordinator.Viewport().Y)
	b.WriteString(a.page.Dump())
	b.WriteString("\n")
	b.WriteString(DebugDump())

	return b.String()
}

// Dispose tears everything down. Safe to call more than once.
func (a *App) Dispose() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}

	a.page.Dispose()
	a.pipeline.Dispose()
	a.overlay.Dispose()
	a.preloader.Dispose()
	a.cancel()
}
