//go:build !windows

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullWindowSystem(t *testing.T) {
	ws := newWindowSystem()

	hwnd := ws.ConsoleWindow()
	require.Equal(t, windowHandle(0), hwnd)

	err := ws.SetZOrder(hwnd, bandTopmost)
	require.ErrorIs(t, err, errNoWindowSystem)

	var zerr *zOrderError
	require.True(t, errors.As(err, &zerr))
	require.Equal(t, bandTopmost, zerr.Band)
	require.Contains(t, zerr.Error(), "hWnd 0 -> topmost")
}
