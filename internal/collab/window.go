// Package collab holds the plug-in seams the core ECS runtime is deliberately
// silent about: windowing, timing, rendering and asset loading. None of
// this is reachable from the ecs package itself; a demo wires it in the
// same way any other third-party plugin would.
package collab

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskforge/ecsframe/internal/core/ecs"
)

// Window records the size and title WindowPlugin applied to the OS window.
// It is plain data; WindowPlugin is what actually talks to ebiten.
type Window struct {
	Title  string
	Width  int
	Height int
}

// InputManager exposes the subset of ebiten's input polling a gameplay
// system needs as a resource. It is a plain struct that calls ebiten on
// every query, and KeyHeld takes an ebiten.Key, so callers still name
// ebiten types.
type InputManager struct{}

// KeyHeld reports whether the given ebiten key is currently held down.
func (InputManager) KeyHeld(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

// CursorPosition returns the mouse cursor position in window pixels.
func (InputManager) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// WindowPlugin installs the Window and InputManager resources and applies
// Window's size/title to the real OS window immediately. It has no Deps: it
// is meant to be the first collaborator plugin added.
func WindowPlugin(title string, width, height int) ecs.Plugin {
	return ecs.Plugin{
		Title:       "collab.Window",
		Description: "window sizing/title and input polling resources",
		Plug: func(w *ecs.World) {
			win := Window{Title: title, Width: width, Height: height}
			ecs.SetResource(w, win)
			ecs.SetResource(w, InputManager{})
			ebiten.SetWindowSize(width, height)
			ebiten.SetWindowTitle(title)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		},
	}
}
