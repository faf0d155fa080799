package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shu-go/gli/v2"
)

// Version is app version
var Version string

func init() {
	if Version == "" {
		Version = "dev-" + time.Now().Format("20060102")
	}
}

const exitInternalError = 1

type globalCmd struct {
	Off bool `cli:"off,o" help:"put the console window back to normal stacking"`

	console *console
}

func (c globalCmd) Run() error {
	return c.console.topmost(!c.Off)
}

func runApp(con *console, args []string) error {
	app := gli.NewWith(&globalCmd{console: con})
	app.Name = "qtopmost"
	app.Desc = "Make console window topmost on/off."
	app.Version = Version
	app.Usage = `qtopmost [-h|--help|/?] [-o|-off|--off]`
	app.Copyright = "(C) 2022 Sensei (aka 'Q')"
	// errors are written by run
	app.SuppressErrorOutput = true
	return app.Run(args)
}

// run executes the command line args (including the program name) and
// returns the process exit code.
func run(args []string, ws windowSystem, stdout, stderr io.Writer) int {
	if len(args) > 0 {
		args = args[1:]
	}

	a, arg := classify(args)
	switch a {
	case actionHelp:
		fmt.Fprint(stdout, helpText)
		return 0
	case actionUnknown:
		fmt.Fprintf(stderr, "Unknown argument %s\n", arg)
		return exitUnknownArgument
	}

	err := runApp(newConsole(ws, stdout, stderr), gliArgs(a))
	if err != nil {
		var zerr *zOrderError
		if errors.As(err, &zerr) {
			// already reported; a failed window call does not change the exit code
			return 0
		}
		fmt.Fprintf(stderr, "qtopmost: %v\n", err)
		return exitInternalError
	}

	return 0
}

func main() {
	os.Exit(run(os.Args, newWindowSystem(), os.Stdout, os.Stderr))
}
