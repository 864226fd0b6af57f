package glassfx

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"glassfx/misc"
)

type ScrollConfig struct {
	// seconds the offset takes to catch up with the target
	Duration        float64 `yaml:"duration"`
	WheelMultiplier float64 `yaml:"wheelMultiplier"`
}

type BreakpointConfig struct {
	Navbar   float64 `yaml:"navbar"`
	Sections float64 `yaml:"sections"`
}

// Config is everything that can be changed without rebuilding.
type Config struct {
	Effect EffectParameters `yaml:"effect"`

	// Hero is the image behind the glass
	Hero string `yaml:"hero"`
	// Logo is drawn in the navbar, the name is written out when empty
	Logo string `yaml:"logo"`
	// Cards are the pictures on the front of the service cards
	Cards []string `yaml:"cards"`
	// Preload lists extra images the preloader waits for
	Preload []string `yaml:"preload"`

	Breakpoints BreakpointConfig `yaml:"breakpoints"`

	// ResizeDebounce is in seconds
	ResizeDebounce float64 `yaml:"resizeDebounce"`

	Scroll ScrollConfig `yaml:"scroll"`

	// ScreenshotDir is where the screenshot key saves frames
	ScreenshotDir string `yaml:"screenshotDir"`
}

func DefaultConfig() Config {
	return Config{
		Effect: DefaultEffectParameters,
		Hero:   "assets/hero.png",
		Logo:   "assets/logo.webp",
		Cards: []string{
			"assets/service/part-1.png",
			"assets/service/part-2.png",
			"assets/service/part-3.png",
		},
		Breakpoints: BreakpointConfig{
			Navbar:   NavbarBreakpoint,
			Sections: ServicesBreakpoint,
		},
		ResizeDebounce: DefaultResizeDebounce,
		Scroll: ScrollConfig{
			Duration:        1.2,
			WheelMultiplier: 1,
		},
		ScreenshotDir: "screenshots",
	}
}

// PreloadPaths is every image the preloader loads, hero first.
func (c Config) PreloadPaths() []string {
	var paths []string
	add := func(path string) {
		if path != "" {
			paths = append(paths, path)
		}
	}

	add(c.Hero)
	add(c.Logo)
	for _, path := range c.Cards {
		add(path)
	}
	for _, path := range c.Preload {
		add(path)
	}

	return paths
}

func (c Config) Validate() error {
	var errs []error

	if err := c.Effect.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("effect: %w", err))
	}
	if c.Breakpoints.Navbar <= 0 || c.Breakpoints.Sections <= 0 {
		errs = append(errs, fmt.Errorf("breakpoints must be positive"))
	}
	if c.ResizeDebounce < 0 {
		errs = append(errs, fmt.Errorf("resizeDebounce must not be negative, got %v", c.ResizeDebounce))
	}
	if c.Scroll.Duration <= 0 {
		errs = append(errs, fmt.Errorf("scroll duration must be positive, got %v", c.Scroll.Duration))
	}

	return errors.Join(errs...)
}

// ParseConfig reads yaml over the defaults, so missing keys keep their
// default value.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// LoadConfig reads the config file at path.
// No path or no file gives the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	exists, err := misc.CheckFileExists(path)
	if err != nil {
		return DefaultConfig(), err
	}
	if !exists {
		WarnLogger.Printf("config %s doesn't exist, using defaults", path)
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config: %w", err)
	}

	return ParseConfig(data)
}

// SaveConfig writes config to path as yaml.
func SaveConfig(path string, config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
