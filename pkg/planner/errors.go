package planner

import "fmt"

// ErrorKind classifies the non-fatal diagnostics the engine can report
// (§7). None of these stop the search driver; they are reported through an
// ErrorSink so a caller can still obtain partial results or diagnostics.
type ErrorKind int

const (
	// TypingViolation: :typing requested but a schema parameter lacks a
	// declared type, or a problem object lacks a type while :typing is
	// requested. The affected schema contributes no ground actions.
	TypingViolation ErrorKind = iota
	// UnknownBinding: an effect references a parameter absent from the
	// ground action's binding. Diagnostic only; indicates a malformed
	// schema upstream of this engine.
	UnknownBinding
	// EmptyUniverse: grounding was invoked with no objects. Applicable
	// actions is empty and search terminates with zero solutions.
	EmptyUniverse
	// InvalidHeuristic: A* was invoked with a nil/non-callable heuristic.
	// Rejected before search begins.
	InvalidHeuristic
)

// String names the error kind for logging and test assertions.
func (k ErrorKind) String() string {
	switch k {
	case TypingViolation:
		return "typing violation"
	case UnknownBinding:
		return "unknown binding"
	case EmptyUniverse:
		return "empty universe"
	case InvalidHeuristic:
		return "invalid heuristic"
	default:
		return "unknown error kind"
	}
}

// PlannerError is the typed diagnostic value the engine reports through an
// ErrorSink. It implements error so callers that do want Go-idiomatic error
// handling (errors.Is/As against a returned PlannerError) can use it
// normally; the engine itself never returns it as a stop-the-world error
// from the search driver.
type PlannerError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/As.
func (e *PlannerError) Unwrap() error { return e.Cause }

// NewPlannerError constructs a PlannerError of the given kind.
func NewPlannerError(kind ErrorKind, message string, cause error) *PlannerError {
	return &PlannerError{Kind: kind, Message: message, Cause: cause}
}

// ErrorSink receives non-fatal diagnostics as the engine encounters them.
// A nil sink silently discards diagnostics; this is the default used by
// Load when no sink is supplied.
type ErrorSink func(*PlannerError)

// report sends err to sink if sink is non-nil, a small helper so call sites
// read as a single statement instead of a nil-check-and-call pair.
func report(sink ErrorSink, kind ErrorKind, message string, cause error) {
	if sink == nil {
		return
	}
	sink(NewPlannerError(kind, message, cause))
}
