package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-ops-client/cmd/bootstrap"
	"clinic-ops-client/config"
	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/infrastructure/remote/remotetest"
	"clinic-ops-client/internal/infrastructure/session"
	"clinic-ops-client/internal/schedule"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/internal/usecase"
	"clinic-ops-client/pkg/validator"
)

func newTestApp(t *testing.T) (*bootstrap.App, *remotetest.Authority) {
	t.Helper()

	authority := remotetest.Start(t)

	log := logrus.New()
	log.SetOutput(io.Discard)

	sessions, err := session.Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessions.Close() })

	remoteClient := remote.NewClient(config.RemoteConfig{
		BaseURL: authority.URL(),
		Timeout: 5 * time.Second,
	}, log)
	entityStore := store.New(entity.DefaultConstraints())
	resolver := schedule.NewResolver(entityStore)
	customValidator := validator.NewValidator()

	app := &bootstrap.App{
		Log:       log,
		Sessions:  sessions,
		Remote:    remoteClient,
		Store:     entityStore,
		Resolver:  resolver,
		Validator: customValidator,

		Auth:          usecase.NewAuthUsecase(sessions, remoteClient, log, customValidator),
		Units:         usecase.NewUnitUsecase(entityStore, remoteClient, log, customValidator),
		Doctors:       usecase.NewDoctorUsecase(entityStore, remoteClient, log, customValidator, false),
		Patients:      usecase.NewPatientUsecase(entityStore, remoteClient, log, customValidator, false),
		Receptionists: usecase.NewReceptionistUsecase(entityStore, remoteClient, log, customValidator, false),
		Specialties:   usecase.NewSpecialtyUsecase(entityStore, remoteClient, log, customValidator, false),
		Visits:        usecase.NewVisitUsecase(entityStore, remoteClient, log, customValidator, false),
		Appointments:  usecase.NewAppointmentUsecase(entityStore, remoteClient, resolver, log, customValidator, false),
		Constraints:   usecase.NewConstraintsUsecase(entityStore, log, customValidator),
		Refresh:       usecase.NewRefreshUsecase(entityStore, remoteClient, log),
	}
	return app, authority
}

func run(t *testing.T, app *bootstrap.App, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := NewRootCommand(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func loginAs(t *testing.T, app *bootstrap.App, authority *remotetest.Authority, body map[string]interface{}) {
	t.Helper()

	authority.RespondToLogin(body)
	_, err := run(t, app, "login", "--email", "someone@clinic.test", "--password", "secret")
	require.NoError(t, err)
}

func TestCommands_RequireLogin(t *testing.T) {
	app, _ := newTestApp(t)

	_, err := run(t, app, "units", "list")
	assert.ErrorIs(t, err, errLoginRequired)
}

func TestCommands_AdminDirectory(t *testing.T) {
	app, authority := newTestApp(t)
	loginAs(t, app, authority, map[string]interface{}{"token": "tok-1", "role": "admin"})

	out, err := run(t, app, "units", "add", `{"name":"Downtown Clinic","type":"clinic"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)
	assert.Len(t, app.Store.Units(), 1)

	out, err = run(t, app, "units", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Downtown Clinic")
}

func TestCommands_RoleForbidden(t *testing.T) {
	app, authority := newTestApp(t)
	loginAs(t, app, authority, map[string]interface{}{"token": "tok-1", "role": "doctor", "doctorId": "d1"})

	_, err := run(t, app, "units", "list")
	assert.ErrorIs(t, err, errForbidden)

	_, err = run(t, app, "appointments", "add",
		`{"doctorId":"d1","patientId":"p1","title":"Checkup","start":"2026-03-09T09:00:00Z","end":"2026-03-09T10:00:00Z"}`)
	assert.ErrorIs(t, err, errForbidden)

	_, err = run(t, app, "appointments", "remove", "a1")
	assert.ErrorIs(t, err, errForbidden)
}

func TestCommands_DoctorReadsOwnSchedule(t *testing.T) {
	app, authority := newTestApp(t)
	loginAs(t, app, authority, map[string]interface{}{"token": "tok-1", "role": "doctor", "doctorId": "d1"})

	day := time.Date(2026, time.March, 9, 9, 0, 0, 0, time.UTC)
	app.Store.AddAppointment(entity.Appointment{
		ID: "a1", DoctorID: "d1", PatientID: "p1", Title: "Own Checkup",
		Start: day, End: day.Add(time.Hour),
	})
	app.Store.AddAppointment(entity.Appointment{
		ID: "a2", DoctorID: "d2", PatientID: "p2", Title: "Colleague Consult",
		Start: day, End: day.Add(time.Hour),
	})

	out, err := run(t, app, "appointments", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Own Checkup")
	assert.NotContains(t, out, "Colleague Consult")
}

func TestCommands_PatientEditorFlag(t *testing.T) {
	app, authority := newTestApp(t)
	loginAs(t, app, authority, map[string]interface{}{"token": "tok-1", "role": "doctor", "doctorId": "d1"})

	app.Store.AddDoctor(entity.Doctor{ID: "d1", Name: "Alice Chen", UnitID: "u1"})
	_, err := run(t, app, "patients", "list")
	assert.ErrorIs(t, err, errForbidden)

	app.Store.ReplaceDoctor(entity.Doctor{ID: "d1", Name: "Alice Chen", UnitID: "u1", CanEditPatients: true})
	out, err := run(t, app, "patients", "list")
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)
}

func TestCommands_ConflictRendersInline(t *testing.T) {
	app, authority := newTestApp(t)
	loginAs(t, app, authority, map[string]interface{}{"token": "tok-1", "role": "receptionist", "receptionistId": "r1"})

	_, err := run(t, app, "appointments", "add",
		`{"doctorId":"d1","patientId":"p1","title":"Checkup","start":"2026-03-09T09:00:00Z","end":"2026-03-09T10:00:00Z"}`)
	require.NoError(t, err)

	// The overlapping second booking is a rendered outcome, not a
	// command failure.
	out, err := run(t, app, "appointments", "add",
		`{"doctorId":"d1","patientId":"p2","title":"Consult","start":"2026-03-09T09:30:00Z","end":"2026-03-09T10:30:00Z"}`)
	require.NoError(t, err)
	assert.Contains(t, out, "scheduling conflict")
	assert.Len(t, app.Store.Appointments(), 1)
}

func TestCommands_ConstraintsReplace(t *testing.T) {
	app, authority := newTestApp(t)
	loginAs(t, app, authority, map[string]interface{}{"token": "tok-1", "role": "admin"})

	out, err := run(t, app, "constraints", "replace", `{"startHour":9,"endHour":17,"slotMinutes":15,"allowOverlap":true}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"success": true`)

	got := app.Constraints.Current(context.Background())
	assert.Equal(t, 9, got.StartHour)
	assert.True(t, got.AllowOverlap)
}
