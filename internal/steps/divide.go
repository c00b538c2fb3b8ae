package steps

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"
)

// Fixed messages written by the guarded division step.
const (
	DivideByZeroMessage = "Error: Division by zero is not allowed."
	ValueErrorPrefix    = "Value error:"
	OtherErrorPrefix    = "An unexpected error occurred:"
	CompletedMessage    = "Execution completed."
)

// ErrDivideByZero is returned when the divisor is zero.
var ErrDivideByZero = errors.New("division by zero")

// ValueError reports an operand that is not a valid value for the operation.
// Divide never returns it; the classification branch exists but is inert.
type ValueError struct {
	Message string
}

// Error implements the error interface for ValueError.
func (e *ValueError) Error() string {
	return e.Message
}

// Kind classifies the outcome of a guarded operation.
type Kind int

// Failure kinds, in classification priority order after KindNone.
const (
	KindNone Kind = iota
	KindDivideByZero
	KindValueError
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDivideByZero:
		return "divide_by_zero"
	case KindValueError:
		return "value_error"
	case KindOther:
		return "other"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the tagged result of a guarded operation: either a value with
// KindNone, or a failure kind carrying the error that caused it.
type Outcome struct {
	Value float64
	Kind  Kind
	Err   error
}

// Failed reports whether the operation ended in any failure kind.
func (o Outcome) Failed() bool {
	return o.Kind != KindNone
}

// Message returns the failure description, or "" on success.
func (o Outcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Divide performs true division of numerator by denominator.
func Divide(numerator, denominator int) (float64, error) {
	if denominator == 0 {
		return 0, ErrDivideByZero
	}
	return float64(numerator) / float64(denominator), nil
}

// Classify maps err onto exactly one Kind. Division by zero is checked first,
// then ValueError; anything else falls through to KindOther.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	if errors.Is(err, ErrDivideByZero) {
		return KindDivideByZero
	}

	var valueErr *ValueError
	if errors.As(err, &valueErr) {
		return KindValueError
	}

	return KindOther
}

// Guard runs op and converts its result into an Outcome. Panics raised by op
// are recovered and classified like returned errors.
func Guard(op func() (float64, error)) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := panicError(r)
			out = Outcome{Kind: Classify(err), Err: err}
		}
	}()

	v, err := op()
	if err != nil {
		return Outcome{Kind: Classify(err), Err: err}
	}
	return Outcome{Value: v, Kind: KindNone}
}

func panicError(r any) error {
	err, ok := r.(error)
	if !ok {
		return fmt.Errorf("%v", r)
	}

	// integer division panics with a runtime.Error rather than a sentinel
	var rtErr runtime.Error
	if errors.As(err, &rtErr) && strings.Contains(rtErr.Error(), "divide by zero") {
		return fmt.Errorf("%w: %v", ErrDivideByZero, rtErr)
	}
	return err
}

// Report returns the line to print for o. Success has no line.
func Report(o Outcome) (string, bool) {
	switch o.Kind {
	case KindNone:
		return "", false
	case KindDivideByZero:
		return DivideByZeroMessage, true
	case KindValueError:
		return ValueErrorPrefix + " " + o.Message(), true
	default:
		return OtherErrorPrefix + " " + o.Message(), true
	}
}

// DivideStep runs the guarded division and writes its report line, if any.
// CompletedMessage is written exactly once on every return path.
func DivideStep(w io.Writer, numerator, denominator int) (Outcome, error) {
	return GuardedStep(w, func() (float64, error) {
		return Divide(numerator, denominator)
	})
}

// GuardedStep is DivideStep for an arbitrary operation.
func GuardedStep(w io.Writer, op func() (float64, error)) (out Outcome, err error) {
	defer func() {
		if _, werr := fmt.Fprintln(w, CompletedMessage); werr != nil && err == nil {
			err = fmt.Errorf("failed to write completion message: %w", werr)
		}
	}()

	out = Guard(op)
	if line, ok := Report(out); ok {
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return out, fmt.Errorf("failed to write %s report: %w", out.Kind, werr)
		}
	}
	return out, nil
}
