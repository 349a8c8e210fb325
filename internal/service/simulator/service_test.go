package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/emergency-response/internal/config"
	"github.com/oshokin/emergency-response/internal/logger"
)

const delta = 1e-9

// writeScenario saves the reference scenario with a delayed rescue team and returns its path.
func writeScenario(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, config.Save(path, &config.Config{
		Name:   "warehouse",
		Rounds: 2,
		Severity: config.Severity{
			Health:      70,
			Panic:       40,
			FireDamage:  60,
			FloodDamage: 50,
			InjuryLevel: 30,
		},
		Plan: []config.Action{
			{Kind: "firefighters", Count: 5},
			{Kind: "medics", Count: 3},
			{Kind: "rescue_team", Count: 2, Delay: 2},
		},
	}))

	return path
}

// TestSimulate checks per-round snapshots, including the delayed rescue team.
func TestSimulate(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeScenario(t))
	require.NoError(t, err)

	report, err := Simulate(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Rounds, 2)

	first := report.Rounds[0]
	require.InDelta(t, 30.0, first.FireDamage, delta)
	require.InDelta(t, 50.0, first.FloodDamage, 0)
	require.InDelta(t, 30.0, first.Panic, delta)

	final := report.Final
	require.InDelta(t, 15.0, final.FireDamage, delta)
	require.InDelta(t, 40.0, final.FloodDamage, delta)
	require.InDelta(t, 18.0, final.Panic, delta)
	require.InDelta(t, 190.0, final.Health, delta)
	require.InDelta(t, 4.8, final.InjuryLevel, delta)

	require.InDelta(t, 60.0, report.Initial.FireDamage, 0)
}

// TestSimulate_Canceled verifies a canceled context stops the run.
func TestSimulate_Canceled(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(writeScenario(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Simulate(ctx, cfg)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_Text renders the table and honours the rounds override.
func TestRun_Text(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: writeScenario(t),
		Rounds:     3,
		LogLevel:   "off",
	}, &out)
	require.NoError(t, err)

	text := out.String()
	require.Contains(t, text, "scenario: warehouse")
	require.Contains(t, text, "plan: firefighters(5), medics(3), delayed(2) rescue_team(2)")
	require.Contains(t, text, "round")
	// Initial row plus three passes.
	require.Contains(t, text, "60.00")
	require.Contains(t, text, "7.50")
}

// TestRun_JSON decodes the JSON report.
func TestRun_JSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: writeScenario(t),
		Format:     FormatJSON,
		LogLevel:   "off",
	}, &out)
	require.NoError(t, err)

	var doc struct {
		Name   string               `json:"name"`
		Plan   []string             `json:"plan"`
		Rounds []map[string]float64 `json:"rounds"`
		Final  map[string]float64   `json:"final"`
	}

	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Equal(t, "warehouse", doc.Name)
	require.Len(t, doc.Plan, 3)
	require.Len(t, doc.Rounds, 2)
	require.InDelta(t, 15.0, doc.Final["fire_damage"], delta)
	require.InDelta(t, 40.0, doc.Final["flood_damage"], delta)
}

// TestRun_LogsEveryPass checks debug entries are emitted per activation pass.
func TestRun_LogsEveryPass(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	var out bytes.Buffer

	require.NoError(t, Run(ctx, &Options{
		ConfigPath: writeScenario(t),
		LogLevel:   "debug",
	}, &out))

	passes := logs.FilterMessage("Activation pass").All()
	require.Len(t, passes, 2)
	require.Equal(t, "simulator", passes[0].LoggerName)
	require.Equal(t, "warehouse", passes[0].ContextMap()["scenario"])
}

// TestRun_Errors covers the rejection paths.
func TestRun_Errors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	require.ErrorIs(t, Run(context.Background(), nil, &out), ErrNoOptions)

	err := Run(context.Background(), &Options{ConfigPath: writeScenario(t), Format: "xml"}, &out)
	require.ErrorIs(t, err, ErrUnknownFormat)

	err = Run(context.Background(), &Options{ConfigPath: writeScenario(t), LogLevel: "loud"}, &out)
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)

	err = Run(context.Background(), &Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")}, &out)
	require.Error(t, err)
	require.Empty(t, out.String())
}

// TestRun_RejectsNegativeRounds ensures a negative override is an error, not a silent fallback.
func TestRun_RejectsNegativeRounds(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := Run(context.Background(), &Options{
		ConfigPath: writeScenario(t),
		Rounds:     -5,
		LogLevel:   "off",
	}, &out)
	require.ErrorIs(t, err, config.ErrNegativeRounds)
	require.Empty(t, out.String())
}

// TestRun_LogsAbortedSimulation checks an interrupted run is logged at error level.
func TestRun_LogsAbortedSimulation(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx, cancel := context.WithCancel(logger.ToContext(context.Background(), zap.New(core).Sugar()))
	cancel()

	var out bytes.Buffer

	err := Run(ctx, &Options{
		ConfigPath: writeScenario(t),
		LogLevel:   "error",
	}, &out)
	require.ErrorIs(t, err, context.Canceled)

	aborted := logs.FilterMessage("Simulation aborted").All()
	require.Len(t, aborted, 1)
	require.Equal(t, zapcore.ErrorLevel, aborted[0].Level)
	require.Empty(t, out.String())
}
