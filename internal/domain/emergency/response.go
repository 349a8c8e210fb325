package emergency

import "fmt"

// Response is a unit of behavior applied to an emergency on every activation pass.
type Response interface {
	// Respond mutates the emergency's severity in place.
	Respond(e *Emergency)
	// String describes the response for diagnostics.
	String() string
}

const (
	// FirefighterRate is the effect fraction contributed by one fire unit.
	FirefighterRate = 0.1
	// MedicRate is the effect fraction contributed by one medic.
	MedicRate = 0.2
	// RescueBoatRate is the effect fraction contributed by one rescue boat.
	RescueBoatRate = 0.1

	// healthBoostScale converts a medic effect fraction into health points.
	healthBoostScale = 100
)

// EffectFraction returns count*rate clamped to [0, 1].
// More resources never make things worse, and negative counts are a no-op.
func EffectFraction(count int, rate float64) float64 {
	return min(max(float64(count)*rate, 0), 1)
}

// Firefighters reduce fire damage and calm the crowd a little.
type Firefighters struct {
	// Units is the number of fire units on scene.
	Units int
}

// Respond implements Response.
func (f Firefighters) Respond(e *Emergency) {
	effect := EffectFraction(f.Units, FirefighterRate)

	e.SetFireDamage(e.FireDamage() * (1 - effect))
	e.SetPanic(e.Panic() * (1 - effect/2))
}

func (f Firefighters) String() string {
	return fmt.Sprintf("firefighters(%d)", f.Units)
}

// Medics treat injuries and restore health.
type Medics struct {
	// Staff is the number of medics on scene.
	Staff int
}

// Respond implements Response.
func (m Medics) Respond(e *Emergency) {
	effect := EffectFraction(m.Staff, MedicRate)

	e.SetInjuryLevel(e.InjuryLevel() * (1 - effect))
	e.SetHealth(e.Health() + effect*healthBoostScale)
}

func (m Medics) String() string {
	return fmt.Sprintf("medics(%d)", m.Staff)
}

// RescueTeam reduces flood damage and panic.
type RescueTeam struct {
	// Boats is the number of rescue boats on scene.
	Boats int
}

// Respond implements Response.
func (r RescueTeam) Respond(e *Emergency) {
	effect := EffectFraction(r.Boats, RescueBoatRate)

	e.SetFloodDamage(e.FloodDamage() * (1 - effect))
	e.SetPanic(e.Panic() * (1 - effect))
}

func (r RescueTeam) String() string {
	return fmt.Sprintf("rescue_team(%d)", r.Boats)
}
