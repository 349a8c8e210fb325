package harness

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/emergency-response/internal/logger"
)

var (
	// ErrMismatch is wrapped by checks whose observed values differ from expectations.
	ErrMismatch = errors.New("unexpected value")
	// ErrChecksFailed is returned by Run when at least one check failed.
	ErrChecksFailed = errors.New("checks failed")
)

// Summary counts the outcome of a run.
type Summary struct {
	Passed int
	Failed int
}

// Run executes the built-in battery and writes one line per check to out.
func Run(ctx context.Context, out io.Writer) (Summary, error) {
	return RunChecks(ctx, out, Checks())
}

// RunChecks executes checks in order and writes one line per check to out.
// A panicking check counts as a failure.
func RunChecks(ctx context.Context, out io.Writer, checks []Check) (Summary, error) {
	ctx = logger.WithName(ctx, "harness")

	var summary Summary

	for _, check := range checks {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("check %q: %w", check.Name, err)
		}

		err := runCheck(check)
		if err != nil {
			summary.Failed++

			logger.WarnKV(ctx, "Check failed", "check", check.Name, "error", err)
			_, _ = fmt.Fprintf(out, "FAIL  %s: %v\n", check.Name, err)

			continue
		}

		summary.Passed++

		logger.DebugKV(ctx, "Check passed", "check", check.Name)
		_, _ = fmt.Fprintf(out, "PASS  %s\n", check.Name)
	}

	_, _ = fmt.Fprintf(out, "\n%d passed, %d failed\n", summary.Passed, summary.Failed)

	logger.Infof(ctx, "Battery finished: %d passed, %d failed", summary.Passed, summary.Failed)

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%w: %d of %d", ErrChecksFailed, summary.Failed, len(checks))
	}

	return summary, nil
}

// runCheck turns a panic inside a check into an error.
func runCheck(check Check) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return check.Run()
}
