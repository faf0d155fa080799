//go:build windows

package main

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	getConsoleWindow = kernel32.NewProc("GetConsoleWindow")

	user32       = windows.NewLazySystemDLL("user32.dll")
	setWindowPos = user32.NewProc("SetWindowPos")
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpShowWindow = 0x0040

	hwndTopmost   = ^uintptr(0) // -1
	hwndNoTopmost = ^uintptr(1) // -2
)

type win32 struct{}

func newWindowSystem() windowSystem {
	return win32{}
}

func (win32) ConsoleWindow() windowHandle {
	if getConsoleWindow.Find() != nil {
		return 0
	}
	hwnd, _, _ := getConsoleWindow.Call()
	return windowHandle(hwnd)
}

func (win32) SetZOrder(h windowHandle, b band) error {
	if err := setWindowPos.Find(); err != nil {
		return &zOrderError{Handle: h, Band: b, Err: errors.Wrap(err, "USER32.SetWindowPos")}
	}

	hwndInsertAfter := hwndNoTopmost
	if b == bandTopmost {
		hwndInsertAfter = hwndTopmost
	}

	ok, _, lastErr := setWindowPos.Call(
		uintptr(h),
		hwndInsertAfter,
		0,
		0,
		0,
		0,
		swpNoMove|swpNoSize|swpShowWindow)
	if ok == 0 {
		return &zOrderError{Handle: h, Band: b, Err: errors.Wrap(lastErr, "USER32.SetWindowPos returned FALSE")}
	}

	return nil
}
