package main

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Reports whether w is an interactive terminal, which is the only
// place where clearing the screen makes sense.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
