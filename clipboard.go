//go:build !js && (windows || cgo)

package glassfx

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	InfoLogger.Print("initializing clipboard")
	cm := &TheClipboardManager
	err := clipboard.Init()
	if err != nil {
		ErrLogger.Printf("failed to initialize clipboard: %v", err)
	}
	cm.Initialized = err == nil
}

func ClipboardWriteText(str string) {
	cm := &TheClipboardManager
	if cm.Initialized {
		clipboard.Write(clipboard.FmtText, []byte(str))
	}
}
