package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/infrastructure/remote"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/pkg/validator"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrUnknownDoctor   = errors.New("referenced doctor does not exist")
)

type PatientUsecase interface {
	Add(ctx context.Context, patient entity.Patient) (entity.Patient, error)
	Update(ctx context.Context, patient entity.Patient) (entity.Patient, error)
	Remove(ctx context.Context, id string) error
}

type patientUsecase struct {
	store    *store.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator
	strict   bool
}

func NewPatientUsecase(s *store.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator, strict bool) PatientUsecase {
	return &patientUsecase{
		store:    s,
		remote:   r,
		log:      log,
		validate: validate,
		strict:   strict,
	}
}

func (u *patientUsecase) checkRefs(patient entity.Patient) error {
	if !u.strict {
		return nil
	}
	if _, ok := u.store.DoctorByID(patient.DoctorID); !ok {
		return ErrUnknownDoctor
	}
	return nil
}

func (u *patientUsecase) Add(ctx context.Context, patient entity.Patient) (entity.Patient, error) {
	if err := u.validate.Validate(&patient); err != nil {
		return entity.Patient{}, err
	}
	if err := u.checkRefs(patient); err != nil {
		return entity.Patient{}, err
	}
	if patient.ID == "" {
		patient.ID = uuid.NewString()
	}

	created, err := u.remote.CreatePatient(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to create patient %q: %v", patient.Name, err)
		return entity.Patient{}, fmt.Errorf("create patient: %w", err)
	}

	u.store.AddPatient(created)
	u.log.Infof("Patient created: id=%s, doctor=%s", created.ID, created.DoctorID)
	return created, nil
}

func (u *patientUsecase) Update(ctx context.Context, patient entity.Patient) (entity.Patient, error) {
	if _, ok := u.store.PatientByID(patient.ID); !ok {
		return entity.Patient{}, ErrPatientNotFound
	}
	if err := u.validate.Validate(&patient); err != nil {
		return entity.Patient{}, err
	}
	if err := u.checkRefs(patient); err != nil {
		return entity.Patient{}, err
	}

	updated, err := u.remote.UpdatePatient(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to update patient %s: %v", patient.ID, err)
		return entity.Patient{}, fmt.Errorf("update patient: %w", err)
	}

	u.store.ReplacePatient(updated)
	return updated, nil
}

func (u *patientUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeletePatient(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient %s: %v", id, err)
		return fmt.Errorf("delete patient: %w", err)
	}

	u.store.RemovePatient(id)
	u.log.Infof("Patient removed with cascade: id=%s", id)
	return nil
}
