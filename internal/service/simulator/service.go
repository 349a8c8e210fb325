package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/oshokin/emergency-response/internal/config"
	"github.com/oshokin/emergency-response/internal/domain/emergency"
	"github.com/oshokin/emergency-response/internal/logger"
)

// Options controls a simulation run.
type Options struct {
	// ConfigPath specifies the path to the scenario YAML file.
	ConfigPath string
	// Rounds overrides the scenario's rounds when positive; negative is rejected.
	Rounds int
	// Format selects the report format: text or json.
	Format Format
	// LogLevel overrides the scenario's log level when set.
	LogLevel string
}

// ErrNoOptions is returned when Run is called without options.
var ErrNoOptions = errors.New("options must be provided")

// Run loads the scenario, activates the emergency and writes a report to out.
func Run(ctx context.Context, opts *Options, out io.Writer) error {
	if opts == nil {
		return ErrNoOptions
	}

	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}

	if opts.Rounds < 0 {
		return fmt.Errorf("%w: %d", config.ErrNegativeRounds, opts.Rounds)
	}

	if opts.Rounds > 0 {
		cfg.Rounds = opts.Rounds
	}

	// The CLI level wins over the scenario's own level.
	levelName := cfg.LogLevel
	if opts.LogLevel != "" {
		levelName = opts.LogLevel
	}

	level, ok := logger.ParseLogLevel(levelName)
	if !ok {
		return fmt.Errorf("%w: %q", config.ErrInvalidLogLevel, levelName)
	}

	ctx = logger.ToContext(ctx, logger.FromContext(ctx).WithOptions(logger.WithLevel(level)))
	ctx = logger.WithName(ctx, "simulator")
	ctx = logger.WithKV(ctx, "scenario", cfg.Name)

	report, err := Simulate(ctx, cfg)
	if err != nil {
		logger.ErrorKV(ctx, "Simulation aborted", "error", err)

		return err
	}

	if err = Render(out, report, format); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	return nil
}

// Simulate builds the emergency described by cfg and runs cfg.Rounds passes.
// It stops early if ctx is canceled.
func Simulate(ctx context.Context, cfg *config.Config) (*Report, error) {
	e, err := cfg.BuildEmergency()
	if err != nil {
		return nil, fmt.Errorf("build emergency: %w", err)
	}

	report := &Report{
		Name:    cfg.Name,
		Plan:    e.Plan(),
		Initial: e.Severity(),
	}

	logger.InfoKV(ctx, "Simulation started", "rounds", cfg.Rounds, "plan", report.Plan)

	for round := 1; round <= cfg.Rounds; round++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		e.Activate()

		snapshot := e.Severity()
		report.Rounds = append(report.Rounds, snapshot)

		logSeverity(ctx, round, snapshot)
	}

	report.Final = e.Severity()

	logger.InfoKV(ctx, "Simulation finished", "rounds", e.Rounds())

	return report, nil
}

// logSeverity writes one activation pass at debug level.
func logSeverity(ctx context.Context, round int, s emergency.Severity) {
	logger.DebugKV(
		ctx,
		"Activation pass",
		"round", round,
		"health", s.Health,
		"panic", s.Panic,
		"fire_damage", s.FireDamage,
		"flood_damage", s.FloodDamage,
		"injury_level", s.InjuryLevel,
	)
}
