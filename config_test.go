package glassfx

import (
	"path/filepath"
	"slices"
	"testing"
)

func TestParseConfigKeepsDefaults(t *testing.T) {
	config, err := ParseConfig([]byte(`
effect:
  stripesFrequency: 30
breakpoints:
  navbar: 900
`))
	if err != nil {
		t.Fatal(err)
	}

	if config.Effect.StripesFrequency != 30 {
		t.Errorf("stripesFrequency = %v, want 30", config.Effect.StripesFrequency)
	}
	if config.Effect.GlassStrength != DefaultEffectParameters.GlassStrength {
		t.Errorf("glassStrength = %v, want the default", config.Effect.GlassStrength)
	}
	if config.Breakpoints.Navbar != 900 || config.Breakpoints.Sections != ServicesBreakpoint {
		t.Errorf("breakpoints = %+v", config.Breakpoints)
	}
	if config.Hero != DefaultConfig().Hero {
		t.Errorf("hero = %q", config.Hero)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	inputs := []string{
		"effect: [1, 2",
		"effect:\n  edgePadding: 0.9\n",
		"scroll:\n  duration: 0\n",
		"breakpoints:\n  sections: -1\n",
	}

	for _, input := range inputs {
		if _, err := ParseConfig([]byte(input)); err == nil {
			t.Errorf("%q: expected an error", input)
		}
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if config.Effect != DefaultEffectParameters {
		t.Errorf("effect = %+v, want defaults", config.Effect)
	}

	if _, err := LoadConfig(""); err != nil {
		t.Errorf("empty path: %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glassfx.yaml")

	config := DefaultConfig()
	config.Hero = "hero.jpg"
	config.Preload = []string{"extra.png"}
	config.Effect.ParallaxStrength = 0.25

	if err := SaveConfig(path, config); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Hero != "hero.jpg" || loaded.Effect.ParallaxStrength != 0.25 {
		t.Errorf("loaded %+v", loaded)
	}

	paths := loaded.PreloadPaths()
	if paths[0] != "hero.jpg" || !slices.Contains(paths, "extra.png") {
		t.Errorf("preload paths = %v", paths)
	}
}
