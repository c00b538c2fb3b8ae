package steps

import (
	"context"
	"io"
	"log/slog"

	apperrors "github.com/zorak1103/basics/internal/errors"
	"github.com/zorak1103/basics/internal/logging"
)

// Program holds the operands for one full pass of the three steps.
type Program struct {
	X           int
	Y           int
	Names       []string
	Numerator   int
	Denominator int
}

// DefaultProgram returns the built-in operands.
func DefaultProgram() Program {
	return Program{
		X:           1,
		Y:           2,
		Names:       []string{"Alice", "Bob"},
		Numerator:   10,
		Denominator: 0,
	}
}

// Runner executes a Program top to bottom.
type Runner struct {
	program Program
	logger  *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards log output.
func NewRunner(program Program, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{program: program, logger: logger}
}

// Run writes the output of every step to w in order: sum, one greeting per
// name, then the guarded division. Division failures are reported in the
// output, not returned; only write failures and cancellation produce an error.
func (r *Runner) Run(ctx context.Context, w io.Writer) error {
	p := r.program

	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Debug("running step", "step", "sum", "x", p.X, "y", p.Y)
	if _, err := Sum(w, p.X, p.Y); err != nil {
		return &apperrors.StepError{Step: "sum", Err: err}
	}

	for _, name := range p.Names {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Debug("running step", "step", "greet", "name", name)
		if err := Greet(w, name); err != nil {
			return &apperrors.StepError{Step: "greet", Err: err}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Debug("running step", "step", "divide", "numerator", p.Numerator, "denominator", p.Denominator)
	out, err := DivideStep(w, p.Numerator, p.Denominator)
	if err != nil {
		return &apperrors.StepError{Step: "divide", Err: err}
	}
	if out.Failed() {
		r.logger.Info("guarded division failed", "kind", out.Kind.String(), "error", out.Err)
	} else {
		r.logger.Debug("guarded division succeeded", "value", out.Value)
	}

	return nil
}
