package emergency

import (
	"errors"
	"fmt"
	"strings"
)

// ActionKind names a concrete response type in scenario files.
type ActionKind string

const (
	// KindFirefighters builds Firefighters.
	KindFirefighters ActionKind = "firefighters"
	// KindMedics builds Medics.
	KindMedics ActionKind = "medics"
	// KindRescueTeam builds RescueTeam.
	KindRescueTeam ActionKind = "rescue_team"
)

var (
	// ErrUnknownActionKind is returned for an action name with no matching response.
	ErrUnknownActionKind = errors.New("unknown action kind")
	// ErrNegativeResources is returned when a resource count or delay is negative.
	ErrNegativeResources = errors.New("resource count must not be negative")
)

// ParseActionKind converts user input to an ActionKind.
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case KindFirefighters, KindMedics, KindRescueTeam:
		return kind, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownActionKind, s)
	}
}

// NewResponse builds the response for kind with the given resource count.
// A positive delay wraps it in Delayed.
func NewResponse(kind ActionKind, count, delay int) (Response, error) {
	if count < 0 || delay < 0 {
		return nil, fmt.Errorf("%w: %s count=%d delay=%d", ErrNegativeResources, kind, count, delay)
	}

	var response Response

	switch kind {
	case KindFirefighters:
		response = Firefighters{Units: count}
	case KindMedics:
		response = Medics{Staff: count}
	case KindRescueTeam:
		response = RescueTeam{Boats: count}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActionKind, kind)
	}

	if delay > 0 {
		return NewDelayed(response, delay), nil
	}

	return response, nil
}
