// Package clierr provides a closed catalog of command line errors mapped to
// sysexits exit codes.
//
// Each catalog entry pairs a Kind (the failure category) with a short
// display message and a stable exit code from the sysexits convention:
//   - Usage (64): incorrect usage
//   - DataErr (65): invalid input data
//   - NoInput (66): input file not found
//   - NoUser (67): user not found
//   - NoHost (68): host not found
//   - Unavailable (69): service unavailable
//   - Software (70): internal software error, the default
//   - OSErr (71): operating system error
//   - OSFile (72): system file not found
//   - CantCreate (73): cannot create file
//   - IOErr (74): cannot read or write a file
//   - TempFail (75): temporary failure
//   - Protocol (76): protocol not possible
//   - NoPerm (77): permission denied
//   - Config (78): invalid configuration
//
// Entries are immutable values: cheap to copy, comparable, and safe to share
// between goroutines. Bare entries exist as package variables (ErrConfig,
// ErrUsage, ...); constructors such as ReadFile and UserNotFound build
// entries that carry a subject in their message.
//
// Example usage:
//
//	err := doWork()
//	if err != nil {
//		err = fmt.Errorf("%w: %w", clierr.ErrConfig, err)
//	}
//	os.Exit(clierr.ExitCode(err))
//
// ExitCode walks the error chain and returns the code of the first catalog
// entry it finds, or ExitSoftware when the chain holds none.
package clierr
