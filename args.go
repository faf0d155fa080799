package main

const exitUnknownArgument = 20

const helpText = `QTopmost v1.0 (c) 2022 Sensei (aka 'Q')
Make console window topmost on/off.

Usage:
QTopmost [-h|--help|/?] [-o|-off|--off]
Examples:
QTopmost
QTopmost --off
`

type action int

const (
	actionOn action = iota
	actionOff
	actionHelp
	actionUnknown
)

// classify maps the arguments (without the program name) to what should be done.
// For actionUnknown the offending argument is returned too.
func classify(args []string) (action, string) {
	switch len(args) {
	case 0:
		return actionOn, ""
	case 1:
		// handled below
	default:
		return actionHelp, ""
	}

	switch arg := args[0]; arg {
	case "-o", "-off", "--off":
		return actionOff, ""
	case "-h", "--help", "/?":
		return actionHelp, ""
	default:
		return actionUnknown, arg
	}
}

// gliArgs turns an on/off action into the canonical options of the app.
// The program name is not included.
func gliArgs(a action) []string {
	if a == actionOff {
		return []string{"--off"}
	}
	return nil
}
