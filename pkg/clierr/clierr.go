package clierr

import "fmt"

// Kind identifies a category of command line failure. The set is closed:
// every kind maps to exactly one sysexits exit code and one display phrase.
type Kind uint8

const (
	// Software is an internal software error. It is the zero value and the
	// fallback category for errors outside the catalog.
	Software Kind = iota
	// Usage is incorrect command line usage.
	Usage
	// DataErr is invalid input data.
	DataErr
	// NoInput is a missing or unreadable input file.
	NoInput
	// NoUser is an unknown user.
	NoUser
	// NoHost is an unknown host.
	NoHost
	// Unavailable is an unavailable service.
	Unavailable
	// OSErr is an operating system failure.
	OSErr
	// OSFile is a missing or unusable system file.
	OSFile
	// CantCreate is an output file that cannot be created.
	CantCreate
	// IOErr is a failed file read or write.
	IOErr
	// TempFail is a temporary failure worth retrying.
	TempFail
	// Protocol is a remote protocol violation.
	Protocol
	// NoPerm is insufficient permission for an operation.
	NoPerm
	// Config is invalid configuration.
	Config
)

type kindSpec struct {
	phrase string
	code   int
}

var kindSpecs = map[Kind]kindSpec{
	Software:    {"software error", ExitSoftware},
	Usage:       {"incorrect usage", ExitUsage},
	DataErr:     {"invalid input data", ExitDataErr},
	NoInput:     {"input file not found", ExitNoInput},
	NoUser:      {"user not found", ExitNoUser},
	NoHost:      {"host not found", ExitNoHost},
	Unavailable: {"service unavailable", ExitUnavailable},
	OSErr:       {"operating system error", ExitOSErr},
	OSFile:      {"system file not found", ExitOSFile},
	CantCreate:  {"cannot create file", ExitCantCreat},
	IOErr:       {"input/output error", ExitIOErr},
	TempFail:    {"temporary failure", ExitTempFail},
	Protocol:    {"protocol not possible", ExitProtocol},
	NoPerm:      {"permission denied", ExitNoPerm},
	Config:      {"invalid configuration", ExitConfig},
}

// String returns the display phrase for the kind.
// Unknown kinds fall back to the Software phrase.
func (k Kind) String() string {
	if spec, ok := kindSpecs[k]; ok {
		return spec.phrase
	}
	return kindSpecs[Software].phrase
}

// ExitCode returns the sysexits code for the kind.
// Unknown kinds fall back to ExitSoftware.
func (k Kind) ExitCode() int {
	if spec, ok := kindSpecs[k]; ok {
		return spec.code
	}
	return ExitSoftware
}

// Error is a catalog entry: an immutable, comparable error value pairing a
// kind with a display message. The zero value is a bare software error.
type Error struct {
	kind Kind
	msg  string
}

// New returns the bare catalog entry for k.
func New(k Kind) Error {
	return Error{kind: k}
}

// Newf returns an entry of kind k with a custom display message. The kind
// set stays closed; only the message is free-form.
func Newf(k Kind, format string, args ...any) Error {
	return Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Bare entries for every kind, for wrapping and errors.Is matching.
var (
	ErrSoftware    = New(Software)
	ErrUsage       = New(Usage)
	ErrDataErr     = New(DataErr)
	ErrNoInput     = New(NoInput)
	ErrNoUser      = New(NoUser)
	ErrNoHost      = New(NoHost)
	ErrUnavailable = New(Unavailable)
	ErrOSErr       = New(OSErr)
	ErrOSFile      = New(OSFile)
	ErrCantCreate  = New(CantCreate)
	ErrIOErr       = New(IOErr)
	ErrTempFail    = New(TempFail)
	ErrProtocol    = New(Protocol)
	ErrNoPerm      = New(NoPerm)
	ErrConfig      = New(Config)
)

// CreateFile reports that path cannot be created.
func CreateFile(path string) Error {
	return Error{kind: CantCreate, msg: "cannot create file: " + path}
}

// ReadFile reports a failed read of path.
func ReadFile(path string) Error {
	return Error{kind: IOErr, msg: "cannot read file: " + path}
}

// WriteFile reports a failed write to path.
func WriteFile(path string) Error {
	return Error{kind: IOErr, msg: "cannot write to file: " + path}
}

// InputFileNotFound reports a missing input file.
func InputFileNotFound(path string) Error {
	return Error{kind: NoInput, msg: "file not found: " + path}
}

// OSFileNotFound reports a missing system file.
func OSFileNotFound(path string) Error {
	return Error{kind: OSFile, msg: "system file not found: " + path}
}

// UserNotFound reports an unknown user.
func UserNotFound(user string) Error {
	return Error{kind: NoUser, msg: "user not found: " + user}
}

// HostNotFound reports an unknown host.
func HostNotFound(host string) Error {
	return Error{kind: NoHost, msg: "host not found: " + host}
}

// OperationPermission reports an operation the caller may not perform.
func OperationPermission(op string) Error {
	return Error{kind: NoPerm, msg: "no permission for operation: " + op}
}

// ResourceNotFound reports a missing resource.
func ResourceNotFound(resource string) Error {
	return Error{kind: DataErr, msg: "resource not found: " + resource}
}

// Kind returns the catalog category.
func (e Error) Kind() Kind {
	return e.kind
}

// ExitCode returns the sysexits code for the entry's kind.
func (e Error) ExitCode() int {
	return e.kind.ExitCode()
}

// Error implements the error interface with the entry's display message.
func (e Error) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.kind.String()
}

// Is matches catalog entries by kind. A bare target matches any entry of
// the same kind, so errors.Is(err, clierr.ErrIOErr) holds for entries built
// by ReadFile and WriteFile as well.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	if t.kind != e.kind {
		return false
	}
	return t.msg == "" || t.msg == e.msg
}
