package clierr

import "errors"

// Exit codes from the sysexits convention. Every catalog kind maps onto one
// of these; embedding applications pass the resolved code to os.Exit.
const (
	// ExitOK indicates success.
	ExitOK = 0

	// ExitUsage indicates incorrect command line usage.
	ExitUsage = 64

	// ExitDataErr indicates incorrect input data.
	ExitDataErr = 65

	// ExitNoInput indicates an input file that is missing or unreadable.
	ExitNoInput = 66

	// ExitNoUser indicates an unknown user.
	ExitNoUser = 67

	// ExitNoHost indicates an unknown host.
	ExitNoHost = 68

	// ExitUnavailable indicates an unavailable service.
	ExitUnavailable = 69

	// ExitSoftware indicates an internal software error.
	ExitSoftware = 70

	// ExitOSErr indicates an operating system failure.
	ExitOSErr = 71

	// ExitOSFile indicates a system file that is missing or unusable.
	ExitOSFile = 72

	// ExitCantCreat indicates an output file that cannot be created.
	ExitCantCreat = 73

	// ExitIOErr indicates a failed read or write.
	ExitIOErr = 74

	// ExitTempFail indicates a temporary failure; the caller may retry.
	ExitTempFail = 75

	// ExitProtocol indicates a remote protocol violation.
	ExitProtocol = 76

	// ExitNoPerm indicates insufficient permission.
	ExitNoPerm = 77

	// ExitConfig indicates invalid configuration.
	ExitConfig = 78
)

// ExitCode resolves the process exit code for err.
//
// The first catalog entry found while walking the chain from the outermost
// link decides the code, so the most recent categorization wins. Chains
// without a catalog entry resolve to ExitSoftware. A nil err resolves to
// ExitOK.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var e Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitSoftware
}
