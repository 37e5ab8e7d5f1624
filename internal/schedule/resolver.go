// Package schedule decides whether a proposed appointment write may
// proceed. The check here is the fast local tier of a two-tier optimistic
// scheme: the remote authority repeats it authoritatively on write, since
// another client may have booked the same doctor concurrently.
package schedule

import (
	"errors"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/pkg/apierr"
)

// ErrInvalidInterval rejects appointments whose start is not strictly
// before their end.
var ErrInvalidInterval = errors.New("appointment start must be before end")

// Resolver consults the constraints singleton and the doctor's existing
// bookings. It reads policy, never writes it.
type Resolver struct {
	store *store.Store
}

func NewResolver(s *store.Store) *Resolver {
	return &Resolver{store: s}
}

// Check returns nil when the proposed appointment may be sent to the
// remote authority, ErrInvalidInterval for a malformed interval, or a
// ConflictError when it overlaps an existing booking of the same doctor.
// For updates the proposal's own prior version is excluded by id.
//
// No remote call has been made when Check rejects: a local conflict
// fails fast and saves the round trip.
func (r *Resolver) Check(proposed entity.Appointment) error {
	if !proposed.Start.Before(proposed.End) {
		return ErrInvalidInterval
	}

	if r.store.Constraints().AllowOverlap {
		return nil
	}

	for _, existing := range r.store.AppointmentsForDoctor(proposed.DoctorID, proposed.ID) {
		if existing.Overlaps(proposed) {
			return apierr.NewConflict()
		}
	}
	return nil
}
