package serror

import (
	"errors"
	"fmt"
)

// Kind classifies an error from the decision core.
type Kind uint8

const (
	// KindInvalidArgument marks a programmer-contract violation such as a
	// negative prediction duration or non-finite state values. Fatal to the
	// call, never to the process.
	KindInvalidArgument Kind = iota
	// KindPredictionUnavailable marks the expected case where no viable
	// intercept or landing point exists within the lookahead horizon.
	KindPredictionUnavailable
	// KindBudgetExceeded marks a tick whose computation ran past the driver's
	// time budget and was truncated.
	KindBudgetExceeded
)

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "invalid argument"
	case KindPredictionUnavailable:
		return "prediction unavailable"
	case KindBudgetExceeded:
		return "budget exceeded"
	}
	return "unknown"
}

type StrafeError struct {
	Kind Kind
	Msg  string
}

func New(kind Kind, format string, args ...interface{}) *StrafeError {
	return &StrafeError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *StrafeError) Error() string {
	return e.Kind.String() + ": " + e.Msg
}

// Is lets errors.Is match any StrafeError of the same kind.
func (e *StrafeError) Is(target error) bool {
	var other *StrafeError
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

// IsKind reports whether err is a StrafeError of the given kind.
func IsKind(err error, kind Kind) bool {
	var se *StrafeError
	return errors.As(err, &se) && se.Kind == kind
}
