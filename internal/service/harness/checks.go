package harness

import (
	"fmt"
	"math"

	"github.com/oshokin/emergency-response/internal/domain/emergency"
)

// tolerance absorbs floating point error in the worked examples.
const tolerance = 1e-9

// Check is a single named scenario.
type Check struct {
	// Name identifies the check in the output.
	Name string
	// Run returns nil when the scenario behaves as expected.
	Run func() error
}

// reference is the initial severity shared by most checks.
func reference() emergency.Severity {
	return emergency.Severity{
		Health:      70,
		Panic:       40,
		FireDamage:  60,
		FloodDamage: 50,
		InjuryLevel: 30,
	}
}

// expect compares a field against the wanted value.
func expect(field string, got, want float64) error {
	if math.Abs(got-want) > tolerance {
		return fmt.Errorf("%w: %s = %v, want %v", ErrMismatch, field, got, want)
	}

	return nil
}

// expectAll returns the first failing comparison.
func expectAll(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// Checks returns the built-in battery in execution order.
func Checks() []Check {
	return []Check{
		{Name: "initial values round-trip", Run: checkRoundTrip},
		{Name: "zero resources are a no-op", Run: checkZeroIdentity},
		{Name: "effect fraction is monotonic and capped", Run: checkMonotonic},
		{Name: "firefighters(5)", Run: checkFirefighters},
		{Name: "medics(3)", Run: checkMedics},
		{Name: "rescue_team(2)", Run: checkRescueTeam},
		{Name: "delayed(2) firefighters(5)", Run: checkDelayed},
		{Name: "saturated responses clear damage", Run: checkSaturation},
		{Name: "activation compounds", Run: checkCompounding},
	}
}

func checkRoundTrip() error {
	want := reference()
	e := emergency.New(want, emergency.Firefighters{Units: 5}, emergency.Medics{Staff: 3})

	if got := e.Severity(); got != want {
		return fmt.Errorf("%w: severity %+v, want %+v", ErrMismatch, got, want)
	}

	return nil
}

func checkZeroIdentity() error {
	for _, r := range []emergency.Response{
		emergency.Firefighters{},
		emergency.Medics{},
		emergency.RescueTeam{},
	} {
		e := emergency.New(reference(), r)
		e.Activate()

		if got := e.Severity(); got != reference() {
			return fmt.Errorf("%w: %s changed severity to %+v", ErrMismatch, r, got)
		}
	}

	return nil
}

func checkMonotonic() error {
	for _, rate := range []float64{emergency.FirefighterRate, emergency.MedicRate, emergency.RescueBoatRate} {
		previous := 0.0

		for count := 0; count <= 30; count++ {
			effect := emergency.EffectFraction(count, rate)
			if effect < previous || effect < 0 || effect > 1 {
				return fmt.Errorf("%w: effect(%d, %v) = %v after %v", ErrMismatch, count, rate, effect, previous)
			}

			previous = effect
		}
	}

	return nil
}

func checkFirefighters() error {
	e := emergency.New(reference(), emergency.Firefighters{Units: 5})
	e.Activate()

	return expectAll(
		expect("fire_damage", e.FireDamage(), 30),
		expect("panic", e.Panic(), 30),
	)
}

func checkMedics() error {
	e := emergency.New(reference(), emergency.Medics{Staff: 3})
	e.Activate()

	return expectAll(
		expect("health", e.Health(), 130),
		expect("injury_level", e.InjuryLevel(), 12),
	)
}

func checkRescueTeam() error {
	e := emergency.New(reference(), emergency.RescueTeam{Boats: 2})
	e.Activate()

	return expectAll(
		expect("flood_damage", e.FloodDamage(), 40),
		expect("panic", e.Panic(), 32),
	)
}

func checkDelayed() error {
	e := emergency.New(reference(), emergency.NewDelayed(emergency.Firefighters{Units: 5}, 2))

	e.Activate()

	if err := expect("fire_damage after pass 1", e.FireDamage(), 60); err != nil {
		return err
	}

	e.Activate()

	if e.FireDamage() >= 60 {
		return fmt.Errorf("%w: fire_damage after pass 2 = %v, want < 60", ErrMismatch, e.FireDamage())
	}

	return nil
}

func checkSaturation() error {
	for _, count := range []int{20, 40} {
		e := emergency.New(reference(), emergency.Firefighters{Units: count}, emergency.RescueTeam{Boats: count})
		e.Activate()

		if err := expectAll(
			expect("fire_damage", e.FireDamage(), 0),
			expect("flood_damage", e.FloodDamage(), 0),
		); err != nil {
			return err
		}
	}

	return nil
}

func checkCompounding() error {
	e := emergency.New(reference(), emergency.Firefighters{Units: 5})

	e.Activate()
	e.Activate()

	return expect("fire_damage after two passes", e.FireDamage(), 15)
}
