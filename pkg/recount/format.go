package recount

import (
	"fmt"
	"io"
	"strings"
)

// Format implements fmt.Formatter. %v and %s print the outermost message
// only; %+v prints the numbered chain followed by any help entries.
func (e *Error) Format(s fmt.State, verb rune) {
	if e == nil {
		io.WriteString(s, "<nil>")
		return
	}
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, formatChain(e))
			return
		}
		io.WriteString(s, e.Error())
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// formatChain renders the full debug view: one numbered line per chain
// link, outermost first, then one "help:" line per entry in report order.
func formatChain(e *Error) string {
	var b strings.Builder
	for i, link := range Chain(e) {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d: %s", i, link.Error())
	}
	for _, h := range AllHelp(e) {
		fmt.Fprintf(&b, "\nhelp: %s", h)
	}
	return b.String()
}
