package report

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/recount-go/recount/pkg/recount"
)

// statusWidth is the column the status label is right-aligned to.
const statusWidth = 12

// Status prints a status line to stdout: a right-aligned label, bold and
// colored when stdout is a terminal, then the message.
func Status(label, message string, c Color) {
	writeStatus(stdout, label, message, c, styledFor(stdout))
}

// Err prints a short error report to stderr: the chain's outermost message
// under a bold "error" title, then any help attached at the outermost
// position after one blank line.
func Err(err error) {
	if err == nil {
		return
	}
	writeErr(stderr, err, styledFor(stderr))
}

// ErrFull prints the whole story to stderr: the outermost message, one
// "cause" line per remaining chain link, and every help entry in the
// chain, the deepest attachment first, each entry preceded by a blank
// line.
func ErrFull(err error) {
	if err == nil {
		return
	}
	writeErrFull(stderr, err, styledFor(stderr))
}

func writeStatus(w io.Writer, label, message string, c Color, styled bool) {
	padded := fmt.Sprintf("%*s", statusWidth, label)
	if styled {
		padded = pterm.NewStyle(c, pterm.Bold).Sprint(padded)
	}
	fmt.Fprintf(w, "%s %s\n", padded, message)
}

func writeErr(w io.Writer, err error, styled bool) {
	writeTitle(w, err.Error(), styled)
	if entries := recount.Help(err); len(entries) > 0 {
		fmt.Fprintln(w)
		for _, entry := range entries {
			fmt.Fprintln(w, entry)
		}
	}
}

func writeErrFull(w io.Writer, err error, styled bool) {
	writeTitle(w, err.Error(), styled)
	chain := recount.Chain(err)
	if len(chain) > 1 {
		label := "cause"
		if styled {
			label = pterm.NewStyle(pterm.FgRed).Sprint(label)
		}
		for _, link := range chain[1:] {
			fmt.Fprintf(w, "%s: %s\n", label, link.Error())
		}
	}
	for _, entry := range recount.AllHelp(err) {
		fmt.Fprintf(w, "\n%s\n", entry)
	}
}

func writeTitle(w io.Writer, message string, styled bool) {
	title, colon := "error", ":"
	if styled {
		title = pterm.NewStyle(pterm.FgRed, pterm.Bold).Sprint(title)
		colon = pterm.NewStyle(pterm.FgWhite, pterm.Bold).Sprint(colon)
	}
	fmt.Fprintf(w, "%s%s %s\n", title, colon, message)
}
