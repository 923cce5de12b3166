package main

import (
	"os"
	"runtime"

	"github.com/gen2brain/beeep"
)

// notifyDesktop shows a desktop notification, best-effort and non-fatal.
// It surfaces config reload failures that would otherwise only reach the
// log while the window has focus.
func notifyDesktop(title, body string) {
	if body == "" || isWASM {
		return
	}
	// Skip on headless Linux without DISPLAY; beeep would error.
	if runtime.GOOS == "linux" && (os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "") {
		return
	}
	_ = beeep.Notify(title, body, "")
}
