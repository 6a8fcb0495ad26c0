package planner

import (
	"errors"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	cases := map[ErrorKind]string{
		TypingViolation:  "typing violation",
		UnknownBinding:   "unknown binding",
		EmptyUniverse:    "empty universe",
		InvalidHeuristic: "invalid heuristic",
		ErrorKind(99):    "unknown error kind",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestPlannerErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := NewPlannerError(UnknownBinding, "bad binding", cause)

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is should see through Unwrap to the cause")
	}
	if err.Error() == "" {
		t.Fatal("Error() should produce a non-empty message")
	}
}

func TestReportNilSinkIsNoop(t *testing.T) {
	// Must not panic.
	report(nil, TypingViolation, "ignored", nil)
}

func TestReportDeliversToSink(t *testing.T) {
	var got *PlannerError
	report(func(e *PlannerError) { got = e }, EmptyUniverse, "no objects", nil)

	if got == nil || got.Kind != EmptyUniverse {
		t.Fatalf("expected an EmptyUniverse diagnostic, got %+v", got)
	}
}
