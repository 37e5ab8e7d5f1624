package entity

// Constraints is the process-wide scheduling policy: business hours,
// slot granularity, and whether same-doctor appointments may overlap.
// It is a singleton with no history; replacement is the only mutation.
type Constraints struct {
	StartHour    int  `json:"startHour" validate:"gte=0,lte=24"`
	EndHour      int  `json:"endHour" validate:"gte=0,lte=24,gtfield=StartHour"`
	SlotMinutes  int  `json:"slotMinutes" validate:"gt=0"`
	AllowOverlap bool `json:"allowOverlap"`
}

// DefaultConstraints returns the policy in effect before any replacement
func DefaultConstraints() Constraints {
	return Constraints{
		StartHour:    8,
		EndHour:      20,
		SlotMinutes:  30,
		AllowOverlap: false,
	}
}

// SlotsPerDay returns how many booking slots fit inside business hours
func (c Constraints) SlotsPerDay() int {
	if c.SlotMinutes <= 0 || c.EndHour <= c.StartHour {
		return 0
	}
	return (c.EndHour - c.StartHour) * 60 / c.SlotMinutes
}
