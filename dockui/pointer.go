package dockui

import (
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	isWasm       = runtime.GOOS == "js" && runtime.GOARCH == "wasm"
	wheelLimiter = rate.NewLimiter(rate.Every(125*time.Millisecond), 1)
)

// PointerPosition returns the current pointer position in screen units.
// If a touch is active, the first touch is used; otherwise the mouse cursor
// position is returned.
func PointerPosition() r2.Vec {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		x, y := ebiten.TouchPosition(ids[0])
		return r2.Vec{X: float64(x), Y: float64(y)}
	}
	x, y := ebiten.CursorPosition()
	return r2.Vec{X: float64(x), Y: float64(y)}
}

// pointerButtons is one frame of primary pointer state. Touch wins over the
// mouse; a second finger makes the pointer multi and never pressed.
type pointerButtons struct {
	pressed, justPressed, multi bool
}

func readPointerButtons() pointerButtons {
	touches := len(ebiten.AppendTouchIDs(nil))
	switch {
	case touches > 1:
		return pointerButtons{multi: true}
	case touches == 1:
		return pointerButtons{
			pressed:     true,
			justPressed: len(inpututil.AppendJustPressedTouchIDs(nil)) > 0,
		}
	}
	return pointerButtons{
		pressed:     ebiten.IsMouseButtonPressed(ebiten.MouseButton0),
		justPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0),
	}
}

// PointerPressed reports whether the primary pointer is currently pressed.
func PointerPressed() bool { return readPointerButtons().pressed }

// pointerWheel returns the vertical wheel delta.
func pointerWheel() float64 {
	_, wy := ebiten.Wheel()
	if isWasm && wy != 0 {
		if !wheelLimiter.Allow() {
			return 0
		}
		// Browsers report wildly different deltas; clamp for a consistent feel.
		if wy > 0 {
			wy = 3
		} else {
			wy = -3
		}
	}
	return wy
}
