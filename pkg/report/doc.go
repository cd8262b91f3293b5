// Package report prints status lines and error reports for command line
// tools, in the style of build tools that narrate their progress.
//
// Status writes a right-aligned, bold, colored label followed by a message
// to stdout:
//
//	     Created binary (application) `spacetime` package
//	      Adding dependency `serde`
//
// Err and ErrFull write error reports to stderr. Err shows only the
// outermost message with its immediate help; ErrFull unrolls the whole
// chain, one "cause" line per link, followed by every help entry, the most
// specific advice first:
//
//	error: invalid configuration
//	cause: cannot load config
//	cause: file not found
//
//	see https://example.com/docs/config
//
// Reporting never fails and never terminates the process: write errors are
// discarded, and callers pick the exit code themselves (clierr.ExitCode
// pairs well). Color is applied only when the target stream is a terminal;
// pipes and redirected output stay plain. Err and ErrFull accept any error
// value, wrapped by this module or not.
package report
