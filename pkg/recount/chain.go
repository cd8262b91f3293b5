package recount

// maxLinks bounds traversal so self-referential Unwrap chains stay finite.
const maxLinks = 64

// Chain flattens err into its sequence of display links, outermost context
// first, root cause last. Carrier links holding only help text are not part
// of the sequence. Traversal follows Unwrap() error and takes the first
// branch of multi-error wrappers.
func Chain(err error) []error {
	var out []error
	for err != nil && len(out) < maxLinks {
		if e, ok := err.(*Error); ok {
			if e == nil {
				break
			}
			if e.face == nil {
				err = e.cause
				continue
			}
			out = append(out, e)
			err = e.cause
			continue
		}
		out = append(out, err)
		err = unwrapNext(err)
	}
	return out
}

// RootCause returns the deepest link of the chain: the error every context
// link was wrapped around.
func RootCause(err error) error {
	chain := Chain(err)
	if len(chain) == 0 {
		return err
	}
	return chain[len(chain)-1]
}

// Help returns the help entries attached at the outermost position of err,
// oldest first. Entries attached before earlier wraps are not included; use
// AllHelp for those.
func Help(err error) []string {
	if e, ok := err.(*Error); ok {
		return e.Help()
	}
	return nil
}

// AllHelp returns every help entry in the chain. Entries of the deepest
// link come first and each link's own entries keep their attachment order,
// so the most specific advice leads.
func AllHelp(err error) []string {
	var groups [][]string
	for n := 0; err != nil && n < maxLinks; n++ {
		if e, ok := err.(*Error); ok {
			if e == nil {
				break
			}
			if len(e.help) > 0 {
				groups = append(groups, e.help)
			}
			err = e.cause
			continue
		}
		err = unwrapNext(err)
	}
	var out []string
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}
	return out
}

// unwrapNext returns the next link after err, following the single-error
// Unwrap convention and the first branch of multi-error wrappers.
func unwrapNext(err error) error {
	switch next := err.(type) {
	case interface{ Unwrap() error }:
		return next.Unwrap()
	case interface{ Unwrap() []error }:
		if all := next.Unwrap(); len(all) > 0 {
			return all[0]
		}
	}
	return nil
}
