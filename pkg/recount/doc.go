// Package recount builds narratable error chains for command line tools.
//
// An error chain is a singly linked sequence of display links: each Wrap
// call adds one link of context over the cause it received, and the chain's
// Error() message is always the outermost context alone. The full story
// stays reachable:
//   - Chain flattens a chain into its links, outermost first
//   - RootCause returns the deepest link
//   - errors.Is and errors.As keep working across every link, including
//     links wrapped from sentinel or catalog error values via WrapErr
//   - %+v formats the numbered chain with its help entries
//
// Help text rides along with the chain. AddHelp attaches advice at the
// current outermost position; wrapping afterwards pushes the advice deeper,
// so rendered output leads with the most specific hint. All wrap and help
// functions pass nil through untouched and the lazy variants (WrapWith,
// AddHelpWith) never invoke their producer on a nil error, so call sites
// pay nothing on the success path.
//
// Values are immutable once built: AddHelp copies the link it extends.
// Chains may therefore be shared freely between goroutines.
//
// Example usage:
//
//	cfg, err := readConfig(path)
//	if err != nil {
//		err = recount.Wrap(err, "cannot load config")
//		return recount.AddHelp(err, "see https://example.com/docs/config")
//	}
package recount
