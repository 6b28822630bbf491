package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseLoad      Phase = "load"      // engine creation
	PhaseDecode    Phase = "decode"    // bytes to Command
	PhaseEncode    Phase = "encode"    // Command to bytes
	PhaseSubmit    Phase = "submit"    // command dispatch
	PhaseShutdown  Phase = "shutdown"  // engine destruction
	PhaseEngine    Phase = "engine"    // inside an engine implementation
	PhaseTransport Phase = "transport" // socket framing
	PhaseConfig    Phase = "config"    // settings and environment
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData    Kind = "invalid_data"
	KindTruncated      Kind = "truncated"
	KindTooLarge       Kind = "too_large"
	KindNotFound       Kind = "not_found"
	KindStaleHandle    Kind = "stale_handle"
	KindUnknownHandle  Kind = "unknown_handle"
	KindClosed         Kind = "closed"
	KindInitialization Kind = "initialization"
	KindTrap           Kind = "trap"
	KindUnsupported    Kind = "unsupported"
	KindInvalidInput   Kind = "invalid_input"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Truncated creates an error for input that ends inside a field
func Truncated(phase Phase, path []string, want, have int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTruncated,
		Path:   path,
		Detail: fmt.Sprintf("need %d bytes, have %d", want, have),
	}
}

// TooLarge creates an error for a frame or field exceeding its limit
func TooLarge(phase Phase, size, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTooLarge,
		Detail: fmt.Sprintf("size %d exceeds limit %d", size, limit),
		Value:  size,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Initialization creates an engine initialization error for a config string
func Initialization(config string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInitialization,
		Detail: fmt.Sprintf("initialize engine from %q", config),
		Cause:  cause,
		Value:  config,
	}
}

// StaleHandle creates an error for a handle whose engine was already destroyed
func StaleHandle(phase Phase, handle uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindStaleHandle,
		Detail: fmt.Sprintf("handle %#x refers to a destroyed engine", handle),
		Value:  handle,
	}
}

// UnknownHandle creates an error for a handle that was never issued
func UnknownHandle(phase Phase, handle uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownHandle,
		Detail: fmt.Sprintf("handle %#x was not issued by this registry", handle),
		Value:  handle,
	}
}

// Trap creates an error for a fault raised by a guest engine
func Trap(export string, cause error) *Error {
	return &Error{
		Phase:  PhaseEngine,
		Kind:   KindTrap,
		Detail: fmt.Sprintf("call %s", export),
		Cause:  cause,
	}
}

// ParseFailed creates a configuration parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
