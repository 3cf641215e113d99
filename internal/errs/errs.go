// Package errs implements the tagged error taxonomy and the stable
// exit-code mapping that is the only ABI between this binary and its host
// (spec §3, §4.6, §7). Every public surface in this module returns one of
// the types defined here rather than a bare stdlib error, so that the
// dispatcher can always recover an exit code from a terminal error.
package errs

import "fmt"

// ExitCode is the process exit status reported to the host.
type ExitCode int

// The fixed set of exit codes (§4.6). This mapping is the stable ABI; it
// must never be renumbered.
const (
	ExitSuccess      ExitCode = 0
	ExitGeneralError ExitCode = 1
	ExitBlocking     ExitCode = 2
	ExitConfig       ExitCode = 3
	ExitSecurity     ExitCode = 4
	ExitTimeout      ExitCode = 124
	ExitInternal     ExitCode = 99
)

// Kind identifies one of the thirteen error families from §3 (Context is
// a separate wrapper type, not a Kind).
type Kind int

const (
	KindInvalidInput Kind = iota
	KindJSON
	KindIO
	KindTimeout
	KindResourceLimit
	KindSecurity
	KindPathValidation
	KindConfig
	KindSession
	KindFileSystem
	KindGit
	KindBlocking
	KindAnyhow
)

// SecurityKind distinguishes the variants of a Security error.
type SecurityKind int

const (
	SecurityPathTraversal SecurityKind = iota
	SecuritySuspiciousCommand
	SecurityPolicyViolation
	SecurityUnauthorized
)

// PathValidationKind distinguishes the variants of a PathValidation error.
type PathValidationKind int

const (
	PathTraversal PathValidationKind = iota
	PathOutsideWorkspace
	PathBlockedPath
	PathCanonicalizationFailed
	PathInvalidWorkspace
	PathInvalidComponent
)

// Error is the concrete typed error value. Only the optional fields
// grouped under its Kind below are populated (kinds without a group carry
// none); Message always carries operator
// context safe to log (never attacker-controlled raw input for
// security-flavored kinds — see §7 propagation policy).
type Error struct {
	Kind    Kind
	Message string

	// Timeout
	Operation string
	TimeoutMS int64

	// ResourceLimit
	Resource string
	Limit    int64
	Actual   int64

	// Security
	SecurityKind SecurityKind

	// PathValidation
	PathKind PathValidationKind
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("maos error (kind=%d)", e.Kind)
}

// ExitCode maps e's Kind to the stable exit code (§4.6).
func (e *Error) ExitCode() ExitCode {
	switch e.Kind {
	case KindBlocking:
		return ExitBlocking
	case KindConfig:
		return ExitConfig
	case KindSecurity, KindPathValidation:
		return ExitSecurity
	case KindTimeout:
		return ExitTimeout
	case KindAnyhow:
		return ExitInternal
	default:
		// InvalidInput, JSON, IO, Session, FileSystem, Git map to
		// GeneralError explicitly (§4.6); ResourceLimit is absent from
		// the table and falls to the same default.
		return ExitGeneralError
	}
}

// Context wraps an inner error with an operational breadcrumb while
// transparently preserving the inner error's exit-code mapping (§3, §8:
// "for any pair (error e, context c): exit_code(with_context(e, c)) =
// exit_code(e)").
type Context struct {
	message string
	source  error
}

// WithContext wraps err with an additional human-readable breadcrumb.
func WithContext(err error, message string) error {
	return &Context{message: message, source: err}
}

func (c *Context) Error() string {
	return fmt.Sprintf("%s: %v", c.message, c.source)
}

func (c *Context) Unwrap() error { return c.source }

// ExitCode delegates to the innermost typed error's mapping, walking any
// chain of Context wrappers.
func (c *Context) ExitCode() ExitCode {
	return ExitCodeOf(c.source)
}

// coder is implemented by any error that knows its own exit code.
type coder interface {
	ExitCode() ExitCode
}

// ExitCodeOf walks err's Context chain to the innermost typed error and
// returns its mapped exit code. A nil err maps to ExitSuccess. An error
// that implements no known typing maps to ExitInternal (Anyhow / any
// non-typed wrapped error, per §4.6).
func ExitCodeOf(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}
	for {
		if c, ok := err.(coder); ok {
			return c.ExitCode()
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ExitInternal
		}
		inner := unwrapper.Unwrap()
		if inner == nil {
			return ExitInternal
		}
		err = inner
	}
}

// Constructors mirroring the reference implementation's error/utils.rs
// helpers — one function per common error shape, keeping messages
// consistent and, for security-flavored kinds, free of attacker-controlled
// input (§7).

// InvalidInput builds a KindInvalidInput error.
func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

// JSONError builds a KindJSON error.
func JSONError(message string) *Error {
	return &Error{Kind: KindJSON, Message: message}
}

// IOError builds a KindIO error.
func IOError(message string) *Error {
	return &Error{Kind: KindIO, Message: message}
}

// TimeoutError builds a KindTimeout error naming the expired budget.
func TimeoutError(operation string, timeoutMS int64) *Error {
	return &Error{
		Kind:      KindTimeout,
		Message:   fmt.Sprintf("operation %q exceeded its %dms budget", operation, timeoutMS),
		Operation: operation,
		TimeoutMS: timeoutMS,
	}
}

// ResourceLimitError builds a KindResourceLimit error.
func ResourceLimitError(resource string, limit, actual int64) *Error {
	return &Error{
		Kind:     KindResourceLimit,
		Message:  fmt.Sprintf("resource %q exceeded its limit", resource),
		Resource: resource,
		Limit:    limit,
		Actual:   actual,
	}
}

// securityViolationMessage is the generic, non-disclosing summary used for
// every security-flavored error (§7: "a generic 'security violation
// detected' summary with category is emitted").
func securityViolationMessage(category string) string {
	return fmt.Sprintf("security violation detected: %s", category)
}

// PathTraversalSecurityError builds a Security{PathTraversal} error.
func PathTraversalSecurityError() *Error {
	return &Error{Kind: KindSecurity, SecurityKind: SecurityPathTraversal, Message: securityViolationMessage("path traversal")}
}

// SuspiciousCommandError builds a Security{SuspiciousCommand} error.
func SuspiciousCommandError() *Error {
	return &Error{Kind: KindSecurity, SecurityKind: SecuritySuspiciousCommand, Message: securityViolationMessage("suspicious command")}
}

// PolicyViolationError builds a Security{PolicyViolation} error.
func PolicyViolationError() *Error {
	return &Error{Kind: KindSecurity, SecurityKind: SecurityPolicyViolation, Message: securityViolationMessage("policy violation")}
}

// UnauthorizedError builds a Security{Unauthorized} error.
func UnauthorizedError() *Error {
	return &Error{Kind: KindSecurity, SecurityKind: SecurityUnauthorized, Message: securityViolationMessage("unauthorized")}
}

// PathValidationError builds a PathValidation error of the given kind.
func PathValidationError(kind PathValidationKind) *Error {
	return &Error{Kind: KindPathValidation, PathKind: kind, Message: securityViolationMessage("path validation")}
}

// ConfigError builds a KindConfig error.
func ConfigError(message string) *Error {
	return &Error{Kind: KindConfig, Message: message}
}

// SessionError builds a KindSession error.
func SessionError(message string) *Error {
	return &Error{Kind: KindSession, Message: message}
}

// FileSystemError builds a KindFileSystem error.
func FileSystemError(message string) *Error {
	return &Error{Kind: KindFileSystem, Message: message}
}

// BlockingError builds a KindBlocking error — the contract by which the
// host aborts a tool invocation (§7).
func BlockingError(message string) *Error {
	return &Error{Kind: KindBlocking, Message: message}
}

// AnyhowError wraps an arbitrary non-typed error as KindAnyhow.
func AnyhowError(err error) *Error {
	return &Error{Kind: KindAnyhow, Message: err.Error()}
}
