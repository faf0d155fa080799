//go:build !windows

package main

import (
	"runtime"

	"github.com/pkg/errors"
)

var errNoWindowSystem = errors.New("no console window manager on " + runtime.GOOS)

type nullWindowSystem struct{}

func newWindowSystem() windowSystem {
	return nullWindowSystem{}
}

func (nullWindowSystem) ConsoleWindow() windowHandle {
	return 0
}

func (nullWindowSystem) SetZOrder(h windowHandle, b band) error {
	return &zOrderError{Handle: h, Band: b, Err: errNoWindowSystem}
}
