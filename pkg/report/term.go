package report

import (
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Color selects the status label color. It aliases the terminal library's
// color type, so any pterm foreground color can be passed to Status.
type Color = pterm.Color

// Status label colors.
const (
	Red     = pterm.FgRed
	Green   = pterm.FgGreen
	Yellow  = pterm.FgYellow
	Blue    = pterm.FgBlue
	Magenta = pterm.FgMagenta
	Cyan    = pterm.FgCyan
	White   = pterm.FgWhite
)

// Output streams. Status lines go to stdout, error reports to stderr.
// Variables so tests can capture output.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Terminal probes are cached for the life of the process.
var (
	stdoutIsTerminal = sync.OnceValue(func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
	stderrIsTerminal = sync.OnceValue(func() bool {
		return term.IsTerminal(int(os.Stderr.Fd()))
	})
)

// styledFor reports whether w should receive colored output. Only the
// process's own stdout and stderr can be terminals; any other writer
// (pipe, buffer, file) renders plain.
func styledFor(w io.Writer) bool {
	switch w {
	case os.Stdout:
		return stdoutIsTerminal()
	case os.Stderr:
		return stderrIsTerminal()
	}
	return false
}
