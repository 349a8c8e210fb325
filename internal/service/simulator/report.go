package simulator

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/emergency-response/internal/domain/emergency"
)

// Format is a report output format.
type Format string

const (
	// FormatText renders an aligned table.
	FormatText Format = "text"
	// FormatJSON renders a JSON document.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned for an unsupported report format.
var ErrUnknownFormat = errors.New("unknown report format")

// ParseFormat converts user input to a Format. Empty input means text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Report is the outcome of a simulation run.
type Report struct {
	// Name is the scenario name.
	Name string
	// Plan holds the response descriptions in order.
	Plan []string
	// Initial is the severity before the first pass.
	Initial emergency.Severity
	// Rounds holds the severity after each pass.
	Rounds []emergency.Severity
	// Final is the severity after the last pass.
	Final emergency.Severity
}

// Render writes the report to w in the given format.
func Render(w io.Writer, r *Report, format Format) error {
	switch format {
	case FormatText, "":
		return renderText(w, r)
	case FormatJSON:
		return renderJSON(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// renderText prints one row per pass, round 0 being the initial severity.
func renderText(w io.Writer, r *Report) error {
	if _, err := fmt.Fprintf(w, "scenario: %s\nplan: %s\n\n", r.Name, strings.Join(r.Plan, ", ")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	_, _ = fmt.Fprintln(tw, "round\thealth\tpanic\tfire\tflood\tinjury\t")

	rows := append([]emergency.Severity{r.Initial}, r.Rounds...)
	for i, s := range rows {
		_, _ = fmt.Fprintf(
			tw,
			"%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			i, s.Health, s.Panic, s.FireDamage, s.FloodDamage, s.InjuryLevel,
		)
	}

	return tw.Flush()
}

// renderJSON encodes the report through structpb so the output matches protojson conventions.
func renderJSON(w io.Writer, r *Report) error {
	plan := make([]any, 0, len(r.Plan))
	for _, p := range r.Plan {
		plan = append(plan, p)
	}

	rounds := make([]any, 0, len(r.Rounds))
	for _, s := range r.Rounds {
		rounds = append(rounds, severityMap(s))
	}

	doc, err := structpb.NewStruct(map[string]any{
		"name":    r.Name,
		"plan":    plan,
		"initial": severityMap(r.Initial),
		"rounds":  rounds,
		"final":   severityMap(r.Final),
	})
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

func severityMap(s emergency.Severity) map[string]any {
	return map[string]any{
		"health":       s.Health,
		"panic":        s.Panic,
		"fire_damage":  s.FireDamage,
		"flood_damage": s.FloodDamage,
		"injury_level": s.InjuryLevel,
	}
}
