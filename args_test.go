package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var recognizedArgs = map[string]bool{
	"-o": true, "-off": true, "--off": true,
	"-h": true, "--help": true, "/?": true,
}

func TestClassify(t *testing.T) {
	tests := []struct {
		args   []string
		action action
		arg    string
	}{
		{nil, actionOn, ""},
		{[]string{"-o"}, actionOff, ""},
		{[]string{"-off"}, actionOff, ""},
		{[]string{"--off"}, actionOff, ""},
		{[]string{"-h"}, actionHelp, ""},
		{[]string{"--help"}, actionHelp, ""},
		{[]string{"/?"}, actionHelp, ""},
		{[]string{"-O"}, actionUnknown, "-O"},
		{[]string{"off"}, actionUnknown, "off"},
		{[]string{""}, actionUnknown, ""},
		{[]string{"--off", "--off"}, actionHelp, ""},
		{[]string{"x", "y", "z"}, actionHelp, ""},
	}

	for _, tt := range tests {
		a, arg := classify(tt.args)
		require.Equal(t, tt.action, a, "args %q", tt.args)
		require.Equal(t, tt.arg, arg, "args %q", tt.args)
	}
}

func TestClassify_UnknownSingleArg(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Filter(func(s string) bool { return !recognizedArgs[s] }).Draw(rt, "arg")

		a, arg := classify([]string{s})
		require.Equal(rt, actionUnknown, a)
		require.Equal(rt, s, arg)
	})
}

func TestClassify_ManyArgsIsHelp(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		args := rapid.SliceOfN(rapid.String(), 2, 8).Draw(rt, "args")

		a, _ := classify(args)
		require.Equal(rt, actionHelp, a)
	})
}

func TestGliArgs(t *testing.T) {
	require.Empty(t, gliArgs(actionOn))
	require.Equal(t, []string{"--off"}, gliArgs(actionOff))
}
