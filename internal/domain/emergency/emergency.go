package emergency

// Severity is the condition of an emergency at a point in time.
type Severity struct {
	// Health of the affected population; grows as medics work.
	Health float64
	// Panic level; reduced by firefighters and rescue teams.
	Panic float64
	// FireDamage is reduced by firefighters.
	FireDamage float64
	// FloodDamage is reduced by rescue teams.
	FloodDamage float64
	// InjuryLevel is reduced by medics.
	InjuryLevel float64
}

// noCopy is caught by go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Emergency owns the severity state and the response plan applied to it.
// It must not be copied after creation.
type Emergency struct {
	noCopy noCopy //nolint:unused // Detected by go vet copylocks.

	// severity is mutated in place by every activation pass.
	severity Severity
	// plan is fixed at construction and never reordered.
	plan []Response
	// rounds counts completed activation passes.
	rounds int
}

// New creates an emergency with the given initial severity.
// The plan is copied, so the caller cannot reorder it afterwards.
func New(severity Severity, plan ...Response) *Emergency {
	owned := make([]Response, 0, len(plan))

	for _, r := range plan {
		if r != nil {
			owned = append(owned, r)
		}
	}

	return &Emergency{
		severity: severity,
		plan:     owned,
	}
}

// Activate runs one activation pass over the plan.
// State carries over between calls; nothing is reset.
func (e *Emergency) Activate() {
	for _, r := range e.plan {
		r.Respond(e)
	}

	e.rounds++
}

// Rounds returns the number of completed activation passes.
func (e *Emergency) Rounds() int {
	return e.rounds
}

// Plan returns the descriptions of the response plan in order.
func (e *Emergency) Plan() []string {
	result := make([]string, 0, len(e.plan))
	for _, r := range e.plan {
		result = append(result, r.String())
	}

	return result
}

// Severity returns a snapshot of the current severity.
func (e *Emergency) Severity() Severity {
	return e.severity
}

// Health returns the current health score.
func (e *Emergency) Health() float64 { return e.severity.Health }

// SetHealth overwrites the health score.
func (e *Emergency) SetHealth(v float64) { e.severity.Health = v }

// Panic returns the current panic level.
func (e *Emergency) Panic() float64 { return e.severity.Panic }

// SetPanic overwrites the panic level.
func (e *Emergency) SetPanic(v float64) { e.severity.Panic = v }

// FireDamage returns the current fire damage.
func (e *Emergency) FireDamage() float64 { return e.severity.FireDamage }

// SetFireDamage overwrites the fire damage.
func (e *Emergency) SetFireDamage(v float64) { e.severity.FireDamage = v }

// FloodDamage returns the current flood damage.
func (e *Emergency) FloodDamage() float64 { return e.severity.FloodDamage }

// SetFloodDamage overwrites the flood damage.
func (e *Emergency) SetFloodDamage(v float64) { e.severity.FloodDamage = v }

// InjuryLevel returns the current injury level.
func (e *Emergency) InjuryLevel() float64 { return e.severity.InjuryLevel }

// SetInjuryLevel overwrites the injury level.
func (e *Emergency) SetInjuryLevel(v float64) { e.severity.InjuryLevel = v }
