package main

import (
	"fmt"
)

type windowHandle uintptr

// band is a z-order band a window can be moved into.
type band int

const (
	bandNoTopmost band = iota
	bandTopmost
)

func (b band) String() string {
	switch b {
	case bandTopmost:
		return "topmost"
	case bandNoTopmost:
		return "notopmost"
	}
	return fmt.Sprintf("band(%d)", int(b))
}

// windowSystem is the platform window manager.
type windowSystem interface {
	// ConsoleWindow returns the console window of the calling process, or 0.
	ConsoleWindow() windowHandle
	// SetZOrder moves h into b without moving, resizing or hiding it.
	SetZOrder(h windowHandle, b band) error
}

// zOrderError is a z-order change rejected by the window manager.
type zOrderError struct {
	Handle windowHandle
	Band   band
	Err    error
}

func (e *zOrderError) Error() string {
	return fmt.Sprintf("hWnd %X -> %v: %v", uintptr(e.Handle), e.Band, e.Err)
}

func (e *zOrderError) Unwrap() error {
	return e.Err
}
