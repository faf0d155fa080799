package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"
)

const maxAncestors = 16

type procEntry struct {
	PID        int
	Executable string
}

func (p procEntry) String() string {
	return fmt.Sprintf("%s(%d)", p.Executable, p.PID)
}

// ancestors lists the calling process followed by its parents, nearest first.
func ancestors() []procEntry {
	var an []procEntry

	curr := os.Getpid()
	for len(an) < maxAncestors && curr > 0 {
		p, err := ps.FindProcess(curr)
		if p == nil || err != nil {
			break
		}

		an = append(an, procEntry{PID: p.Pid(), Executable: p.Executable()})

		if p.PPid() == curr {
			break
		}
		curr = p.PPid()
	}

	return an
}

func formatChain(an []procEntry) string {
	if len(an) == 0 {
		return "?"
	}

	names := make([]string, 0, len(an))
	for _, p := range an {
		names = append(names, p.String())
	}
	return strings.Join(names, " <- ")
}
