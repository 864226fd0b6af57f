package glassfx

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	ReloadShaderKey eb.Key = eb.KeyF5
	CopyStateKey    eb.Key = eb.KeyF6
	ScreenshotKey   eb.Key = eb.KeyF7

	ScrollUpKey       eb.Key = eb.KeyArrowUp
	ScrollDownKey     eb.Key = eb.KeyArrowDown
	ScrollPageUpKey   eb.Key = eb.KeyPageUp
	ScrollPageDownKey eb.Key = eb.KeyPageDown
	ScrollHomeKey     eb.Key = eb.KeyHome
	ScrollEndKey      eb.Key = eb.KeyEnd
	ScrollSpaceKey    eb.Key = eb.KeySpace
)
