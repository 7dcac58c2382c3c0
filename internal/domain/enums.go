package domain

import (
	"fmt"
	"strings"
)

type SessionStatus string

const (
	SessionDraft     SessionStatus = "draft"
	SessionCompleted SessionStatus = "completed"
)

// SetKind is the phase of a logged set. Sets of one exercise are always
// ordered ramp-up, top set, back-off.
type SetKind string

const (
	SetRampUp  SetKind = "ramp_up"
	SetTopSet  SetKind = "top_set"
	SetBackOff SetKind = "back_off"
)

// AllSetKinds lists the kinds in their canonical order.
var AllSetKinds = []SetKind{SetRampUp, SetTopSet, SetBackOff}

// Rank returns the position of the kind within an exercise's set sequence.
func (k SetKind) Rank() int {
	switch k {
	case SetRampUp:
		return 0
	case SetTopSet:
		return 1
	case SetBackOff:
		return 2
	default:
		return -1
	}
}

// Label is the short human form used in tables.
func (k SetKind) Label() string {
	switch k {
	case SetRampUp:
		return "Ramp-up"
	case SetTopSet:
		return "Top set"
	case SetBackOff:
		return "Back-off"
	default:
		return string(k)
	}
}

func (k SetKind) Valid() bool {
	return k.Rank() >= 0
}

// ParseSetKind accepts the canonical value plus the common CLI spellings
// ("rampup", "ramp-up", "top", "backoff", ...).
func ParseSetKind(s string) (SetKind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	switch norm {
	case "rampup", "ramp", "warmup", "r":
		return SetRampUp, nil
	case "topset", "top", "t":
		return SetTopSet, nil
	case "backoff", "back", "b":
		return SetBackOff, nil
	}
	return "", fmt.Errorf("unknown set kind %q (want ramp-up, top or back-off)", s)
}

// SetField names a numeric field of a SetEntry that the user can edit.
type SetField string

const (
	FieldWeight        SetField = "weight"
	FieldReps          SetField = "reps"
	FieldEffortReserve SetField = "effort"
)

// ParseSetField accepts "weight"/"w", "reps"/"r" and "effort"/"rir"/"e".
func ParseSetField(s string) (SetField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "weight", "w", "kg":
		return FieldWeight, nil
	case "reps", "r":
		return FieldReps, nil
	case "effort", "rir", "e", "effort_reserve":
		return FieldEffortReserve, nil
	}
	return "", fmt.Errorf("unknown set field %q (want weight, reps or effort)", s)
}
