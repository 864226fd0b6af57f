package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"

	eb "github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"glassfx"
)

var (
	FlagConfig    string
	FlagHero      string
	FlagHotReload bool
	FlagPProf     bool
)

func init() {
	flag.StringVar(&FlagConfig, "config", "glassfx.yaml", "path to the yaml config")
	flag.StringVar(&FlagHero, "hero", "", "image behind the glass, overrides the config")
	flag.BoolVar(&FlagHotReload, "hot", false, "enable shader hot reloading")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			glassfx.InfoLogger.Print("initializing pprof")
			glassfx.InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	config, err := glassfx.LoadConfig(FlagConfig)
	if err != nil {
		glassfx.ErrLogger.Printf("failed to load config, using defaults: %v", err)
	}
	if FlagHero != "" {
		config.Hero = FlagHero
	}

	glassfx.InitClipboardManager()
	glassfx.LoadAssets()
	glassfx.InitInputManager()

	app, err := glassfx.NewApp(config, FlagHotReload)
	if err != nil {
		glassfx.ErrLogger.Fatalf("failed to start: %v", err)
	}
	defer app.Dispose()

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(1280, 800)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("glassfx")

	if err := eb.RunGame(app); err != nil {
		glassfx.ErrLogger.Fatalf("%v", err)
	}
}
