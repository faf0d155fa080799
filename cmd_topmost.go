package main

import (
	"fmt"
	"io"

	"github.com/shu-go/nmfmt"
	"github.com/shu-go/rog"
)

// console toggles the topmost state of the console window of this process.
type console struct {
	ws     windowSystem
	stdout io.Writer
	stderr io.Writer

	logger    func(v ...interface{})
	ancestors func() []procEntry
}

func newConsole(ws windowSystem, stdout, stderr io.Writer) *console {
	return &console{
		ws:        ws,
		stdout:    stdout,
		stderr:    stderr,
		logger:    rog.New(stderr, "", rog.LstdFlags).Print,
		ancestors: ancestors,
	}
}

func (c *console) topmost(enabled bool) error {
	hwnd := c.ws.ConsoleWindow()

	b := bandNoTopmost
	if enabled {
		b = bandTopmost
	}

	err := c.ws.SetZOrder(hwnd, b)
	c.report(enabled, hwnd, err)

	return err
}

func (c *console) report(enabled bool, hwnd windowHandle, err error) {
	if err != nil {
		fmt.Fprintf(c.stderr, "Error! hWnd %X\n", uintptr(hwnd))
		c.diagnose(hwnd, err)
		return
	}

	if enabled {
		fmt.Fprintln(c.stdout, "Window is topmost!")
	} else {
		fmt.Fprintln(c.stdout, "Window is not topmost!")
	}
}

func (c *console) diagnose(hwnd windowHandle, err error) {
	if c.logger == nil {
		return
	}

	var chain []procEntry
	if c.ancestors != nil {
		chain = c.ancestors()
	}

	c.logger(nmfmt.Sprintf("SetWindowPos failed  hwnd=$hwnd  err=$err  process=$chain",
		nmfmt.M{
			"hwnd":  fmt.Sprintf("%X", uintptr(hwnd)),
			"err":   err.Error(),
			"chain": formatChain(chain),
		}))
}
