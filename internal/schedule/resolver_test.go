package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/pkg/apierr"
)

func booking(id, doctorID string, startHour, endHour int) entity.Appointment {
	day := time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC)
	return entity.Appointment{
		ID:        id,
		DoctorID:  doctorID,
		PatientID: "p1",
		Title:     "Checkup",
		Start:     day.Add(time.Duration(startHour) * time.Hour),
		End:       day.Add(time.Duration(endHour) * time.Hour),
	}
}

func newResolver(t *testing.T, existing ...entity.Appointment) (*Resolver, *store.Store) {
	t.Helper()
	s := store.New(entity.DefaultConstraints())
	s.ReplaceAll(store.Collections{Appointments: existing})
	return NewResolver(s), s
}

func TestResolver_Check_NoConflict(t *testing.T) {
	r, _ := newResolver(t, booking("a1", "d1", 9, 10))

	assert.NoError(t, r.Check(booking("", "d1", 10, 11)))
	assert.NoError(t, r.Check(booking("", "d1", 8, 9)))
}

func TestResolver_Check_Overlap(t *testing.T) {
	r, _ := newResolver(t, booking("a1", "d1", 9, 10))

	err := r.Check(booking("", "d1", 9, 11))
	require.Error(t, err)
	assert.True(t, apierr.IsConflict(err))
	assert.Equal(t, apierr.ReasonOverlap, apierr.ConflictReason(err))
}

func TestResolver_Check_OtherDoctorUnaffected(t *testing.T) {
	r, _ := newResolver(t, booking("a1", "d1", 9, 10))

	assert.NoError(t, r.Check(booking("", "d2", 9, 10)))
}

func TestResolver_Check_ExcludesOwnPriorVersion(t *testing.T) {
	r, _ := newResolver(t, booking("a1", "d1", 9, 10), booking("a2", "d1", 11, 12))

	// Rescheduling a1 within its own old slot is fine.
	assert.NoError(t, r.Check(booking("a1", "d1", 9, 11)))

	// But not into a2's slot.
	err := r.Check(booking("a1", "d1", 11, 12))
	assert.True(t, apierr.IsConflict(err))
}

func TestResolver_Check_AllowOverlapBypasses(t *testing.T) {
	r, s := newResolver(t, booking("a1", "d1", 9, 10))

	require.NoError(t, s.SetConstraints(entity.Constraints{
		StartHour:    8,
		EndHour:      20,
		SlotMinutes:  30,
		AllowOverlap: true,
	}))

	assert.NoError(t, r.Check(booking("", "d1", 9, 10)))
}

func TestResolver_Check_InvalidInterval(t *testing.T) {
	r, _ := newResolver(t)

	assert.ErrorIs(t, r.Check(booking("", "d1", 10, 9)), ErrInvalidInterval)
	assert.ErrorIs(t, r.Check(booking("", "d1", 10, 10)), ErrInvalidInterval)
}
