package emergency

import "fmt"

// Delayed holds back the wrapped response until it has been invoked
// Rounds times. From then on every call is forwarded.
type Delayed struct {
	// inner is the response being delayed; owned exclusively.
	inner Response
	// rounds is the invocation count at which inner starts firing.
	rounds int
	// calls counts invocations until the response is armed.
	calls int
}

// NewDelayed wraps inner so that it fires from the rounds-th invocation on.
// A threshold of zero or one fires on the first invocation.
func NewDelayed(inner Response, rounds int) *Delayed {
	return &Delayed{
		inner:  inner,
		rounds: rounds,
	}
}

// Armed reports whether the wrapped response is being forwarded.
func (d *Delayed) Armed() bool {
	return d.calls >= d.rounds
}

// Respond counts the call, then forwards it once armed.
func (d *Delayed) Respond(e *Emergency) {
	// Stop counting once armed; the state never goes back to dormant.
	if !d.Armed() {
		d.calls++
	}

	if !d.Armed() || d.inner == nil {
		return
	}

	d.inner.Respond(e)
}

func (d *Delayed) String() string {
	return fmt.Sprintf("delayed(%d) %v", d.rounds, d.inner)
}
