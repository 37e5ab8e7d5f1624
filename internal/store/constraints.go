package store

import (
	"errors"
	"fmt"

	"clinic-ops-client/internal/domain/entity"
)

// ErrInvalidConstraints is returned when a replacement policy is
// structurally invalid. Business-level validation belongs to the caller;
// this check only keeps the singleton from becoming unusable.
var ErrInvalidConstraints = errors.New("invalid scheduling constraints")

// Constraints returns the current scheduling policy
func (s *Store) Constraints() entity.Constraints {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.constraints
}

// SetConstraints atomically swaps the policy singleton
func (s *Store) SetConstraints(next entity.Constraints) error {
	if next.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slotMinutes must be positive", ErrInvalidConstraints)
	}
	if next.StartHour < 0 || next.EndHour > 24 || next.StartHour >= next.EndHour {
		return fmt.Errorf("%w: business hours must satisfy 0 <= startHour < endHour <= 24", ErrInvalidConstraints)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.constraints = next
	return nil
}
