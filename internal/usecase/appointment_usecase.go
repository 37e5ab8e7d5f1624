package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/schedule"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/pkg/validator"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentUsecase is the only synchronizer path that consults the
// conflict resolver before calling out. A local conflict rejects without
// a round trip; a remote 409 (another client wrote first) comes back as
// the same ConflictError, so callers see one conflict outcome either way.
type AppointmentUsecase interface {
	Add(ctx context.Context, appointment entity.Appointment) (entity.Appointment, error)
	Update(ctx context.Context, appointment entity.Appointment) (entity.Appointment, error)
	Remove(ctx context.Context, id string) error
}

type appointmentUsecase struct {
	store    *store.Store
	remote   *remote.Client
	resolver *schedule.Resolver
	log      *logrus.Logger
	validate *validator.CustomValidator
	strict   bool
}

func NewAppointmentUsecase(
	s *store.Store,
	r *remote.Client,
	resolver *schedule.Resolver,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	strict bool,
) AppointmentUsecase {
	return &appointmentUsecase{
		store:    s,
		remote:   r,
		resolver: resolver,
		log:      log,
		validate: validate,
		strict:   strict,
	}
}

func (u *appointmentUsecase) checkRefs(appointment entity.Appointment) error {
	if !u.strict {
		return nil
	}
	if _, ok := u.store.DoctorByID(appointment.DoctorID); !ok {
		return ErrUnknownDoctor
	}
	patient, ok := u.store.PatientByID(appointment.PatientID)
	if !ok {
		return ErrPatientNotFound
	}
	if patient.DoctorID != appointment.DoctorID {
		return ErrPatientNotOwned
	}
	return nil
}

func (u *appointmentUsecase) Add(ctx context.Context, appointment entity.Appointment) (entity.Appointment, error) {
	if err := u.validate.Validate(&appointment); err != nil {
		return entity.Appointment{}, err
	}
	if err := u.checkRefs(appointment); err != nil {
		return entity.Appointment{}, err
	}
	if appointment.ID == "" {
		appointment.ID = uuid.NewString()
	}

	if err := u.resolver.Check(appointment); err != nil {
		return entity.Appointment{}, err
	}

	created, err := u.remote.CreateAppointment(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to create appointment for doctor %s: %v", appointment.DoctorID, err)
		return entity.Appointment{}, fmt.Errorf("create appointment: %w", err)
	}

	u.store.AddAppointment(created)
	u.log.Infof("Appointment created: id=%s, doctor=%s, start=%s", created.ID, created.DoctorID, created.Start)
	return created, nil
}

func (u *appointmentUsecase) Update(ctx context.Context, appointment entity.Appointment) (entity.Appointment, error) {
	if _, ok := u.store.AppointmentByID(appointment.ID); !ok {
		return entity.Appointment{}, ErrAppointmentNotFound
	}
	if err := u.validate.Validate(&appointment); err != nil {
		return entity.Appointment{}, err
	}
	if err := u.checkRefs(appointment); err != nil {
		return entity.Appointment{}, err
	}

	// Check excludes the appointment's own prior version by id.
	if err := u.resolver.Check(appointment); err != nil {
		return entity.Appointment{}, err
	}

	updated, err := u.remote.UpdateAppointment(ctx, appointment)
	if err != nil {
		u.log.Warnf("Failed to update appointment %s: %v", appointment.ID, err)
		return entity.Appointment{}, fmt.Errorf("update appointment: %w", err)
	}

	u.store.ReplaceAppointment(updated)
	return updated, nil
}

func (u *appointmentUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeleteAppointment(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment %s: %v", id, err)
		return fmt.Errorf("delete appointment: %w", err)
	}

	u.store.RemoveAppointment(id)
	return nil
}
