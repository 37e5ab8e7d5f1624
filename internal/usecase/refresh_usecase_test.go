package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/store"
)

func TestRefreshUsecase_LoadsAllCollections(t *testing.T) {
	f := newFixture(t)
	u := NewRefreshUsecase(f.store, f.remote, f.log)

	f.authority.Seed("units", entity.Unit{ID: "u1", Name: "Downtown Clinic", Kind: entity.UnitKindClinic})
	f.authority.Seed("doctors", entity.Doctor{ID: "d1", Name: "Alice Chen", UnitID: "u1"})
	f.authority.Seed("patients", entity.Patient{ID: "p1", DoctorID: "d1", Name: "Pat One"})
	f.authority.Seed("receptionists", entity.Receptionist{ID: "r1", Name: "Front Desk", UnitID: "u1", Address: "1 Main St", Phone: "555-0100"})
	f.authority.Seed("specialties", entity.Specialty{ID: "sp1", Name: "Cardiology"})
	f.authority.Seed("templates", entity.SpecialtyTemplate{ID: "t1", SpecialtyID: "sp1"})
	f.authority.Seed("visits", entity.VisitEntry{ID: "v1", DoctorID: "d1", PatientID: "p1", Date: "2026-02-01"})

	require.NoError(t, u.Refresh(context.Background()))

	assert.Len(t, f.store.Units(), 1)
	assert.Len(t, f.store.Doctors(), 1)
	assert.Len(t, f.store.Patients(), 1)
	assert.Len(t, f.store.Receptionists(), 1)
	assert.Len(t, f.store.Specialties(), 1)
	assert.Len(t, f.store.Templates(), 1)
	assert.Len(t, f.store.Visits(), 1)
	assert.Empty(t, f.store.Appointments())
	assert.False(t, u.Loading())
}

func TestRefreshUsecase_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	u := NewRefreshUsecase(f.store, f.remote, f.log)

	f.store.ReplaceAll(store.Collections{
		Units: []entity.Unit{{ID: "u-old", Name: "Old Clinic", Kind: entity.UnitKindClinic}},
	})
	before := f.store.Snapshot()

	f.authority.Seed("units", entity.Unit{ID: "u-new", Name: "New Clinic", Kind: entity.UnitKindClinic})
	f.authority.FailWith("visits", http.StatusInternalServerError, "boom")

	err := u.Refresh(context.Background())
	require.Error(t, err)

	// The seven successful fetches must not leak into the store.
	assert.Equal(t, before, f.store.Snapshot())
	assert.False(t, u.Loading())
}

func TestRefreshUsecase_SupersededRefreshDiscarded(t *testing.T) {
	f := newFixture(t)
	u := NewRefreshUsecase(f.store, f.remote, f.log)

	f.authority.Seed("units", entity.Unit{ID: "u-stale", Name: "Stale Clinic", Kind: entity.UnitKindClinic})
	release := f.authority.Hold("units")

	first := make(chan error, 1)
	go func() { first <- u.Refresh(context.Background()) }()

	// Wait until the first refresh has all eight fetches issued, with
	// the units one parked on the hold.
	require.Eventually(t, func() bool {
		return len(f.authority.Requests()) == 8
	}, 5*time.Second, 5*time.Millisecond)

	// A refresh issued later completes first.
	f.authority.Seed("units", entity.Unit{ID: "u-new", Name: "New Clinic", Kind: entity.UnitKindClinic})
	require.NoError(t, u.Refresh(context.Background()))

	release()
	require.NoError(t, <-first)

	// Issuance order wins over completion order.
	units := f.store.Units()
	require.Len(t, units, 1)
	assert.Equal(t, "u-new", units[0].ID)
	assert.False(t, u.Loading())
}

func TestRefreshUsecase_ReplacesStaleState(t *testing.T) {
	f := newFixture(t)
	u := NewRefreshUsecase(f.store, f.remote, f.log)

	f.store.ReplaceAll(store.Collections{
		Units:   []entity.Unit{{ID: "u-old", Name: "Old Clinic", Kind: entity.UnitKindClinic}},
		Doctors: []entity.Doctor{{ID: "d-old", Name: "Old Doctor", UnitID: "u-old"}},
	})
	f.authority.Seed("units", entity.Unit{ID: "u-new", Name: "New Clinic", Kind: entity.UnitKindClinic})

	require.NoError(t, u.Refresh(context.Background()))

	units := f.store.Units()
	require.Len(t, units, 1)
	assert.Equal(t, "u-new", units[0].ID)
	assert.Empty(t, f.store.Doctors(), "collections absent remotely are cleared, not merged")
}
