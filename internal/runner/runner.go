// Package runner drives a two-part puzzle Solver and prints its answers in the
// "Parsing / PART 1 / PART 2" report format with optional microsecond timings.
package runner

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Solver is a two-part puzzle over line input.
type Solver interface {
	Parse(lines []string) error
	Part1() (string, error)
	Part2() (string, error)
}

// Runner prints the report for one Solver run to Out.
type Runner struct {
	Out    io.Writer
	Logger *zerolog.Logger
	// Timing adds "time: <n>us" lines after each stage.
	Timing bool
}

// Run parses lines and prints both answers. The first failing stage aborts the run.
func (r *Runner) Run(s Solver, lines []string) error {
	log := r.logger()

	r.printf("Parsing...\n")
	start := time.Now()
	if err := s.Parse(lines); err != nil {
		return fmt.Errorf("runner: parse: %w", err)
	}
	elapsed := time.Since(start)
	log.Debug().Int("lines", len(lines)).Dur("elapsed", elapsed).Msg("parsed input")
	if r.Timing {
		r.printf("Parsing time: %dus\n", elapsed.Microseconds())
	}
	r.printf("\n")

	if err := r.part(1, s.Part1, log); err != nil {
		return err
	}
	r.printf("\n")

	return r.part(2, s.Part2, log)
}

func (r *Runner) part(n int, solve func() (string, error), log *zerolog.Logger) error {
	r.printf("*********** PART %d ***********\n", n)
	start := time.Now()
	answer, err := solve()
	if err != nil {
		return fmt.Errorf("runner: part %d: %w", n, err)
	}
	elapsed := time.Since(start)
	log.Debug().Int("part", n).Str("answer", answer).Dur("elapsed", elapsed).Msg("solved")
	r.printf("Part %d answer: %s\n", n, answer)
	if r.Timing {
		r.printf("Part %d time: %dus\n", n, elapsed.Microseconds())
	}

	return nil
}

func (r *Runner) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) logger() *zerolog.Logger {
	if r.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}

	return r.Logger
}
