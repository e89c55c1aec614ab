package auth

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure for the top-level exit-code
// mapping. Internal components return these; only the command layer
// ever terminates the process.
type Kind int

const (
	// KindConfiguration covers missing or malformed application
	// identity, a missing redirect URI, and any failure an operator
	// must fix before retrying.
	KindConfiguration Kind = iota + 1

	// KindCapability means the stored token is well-formed but has no
	// refresh token, so it cannot sustain unattended operation. The
	// operator must re-authorize with consent forcing.
	KindCapability

	// KindExchange means the authorization-code exchange failed. Fatal:
	// the operator just supplied the code, so the failure is
	// immediately actionable.
	KindExchange

	// KindRefresh means a refresh of a well-formed token failed. The
	// outcome is undetermined rather than fatal: the credential file
	// itself was valid, so a later retry may succeed without
	// re-authorization.
	KindRefresh
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindCapability:
		return "capability"
	case KindExchange:
		return "exchange"
	case KindRefresh:
		return "refresh"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a classified resolution failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *Error) Unwrap() error { return e.Err }

// Exit codes forming the observable process contract. Anything the
// kinds below don't cover exits with ExitFatal.
const (
	ExitOK           = 0
	ExitFatal        = 1
	ExitCapability   = 2
	ExitExchange     = 3
	ExitUndetermined = 4
)

// ExitCode maps a resolution error to the process exit code. A refresh
// failure gets a distinct code so callers can tell "retry later" from
// "fix your configuration".
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var resErr *Error
	if !errors.As(err, &resErr) {
		return ExitFatal
	}
	switch resErr.Kind {
	case KindCapability:
		return ExitCapability
	case KindExchange:
		return ExitExchange
	case KindRefresh:
		return ExitUndetermined
	default:
		return ExitFatal
	}
}
