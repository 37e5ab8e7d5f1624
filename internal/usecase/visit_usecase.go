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
	ErrVisitNotFound   = errors.New("visit entry not found")
	ErrPatientNotOwned = errors.New("patient does not belong to this doctor")
)

type VisitUsecase interface {
	Add(ctx context.Context, visit entity.VisitEntry) (entity.VisitEntry, error)
	Update(ctx context.Context, visit entity.VisitEntry) (entity.VisitEntry, error)
	Remove(ctx context.Context, id string) error
}

type visitUsecase struct {
	store    *store.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator
	strict   bool
}

func NewVisitUsecase(s *store.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator, strict bool) VisitUsecase {
	return &visitUsecase{
		store:    s,
		remote:   r,
		log:      log,
		validate: validate,
		strict:   strict,
	}
}

// checkRefs validates doctor and patient references when strict mode is
// on. The template reference is deliberately never checked: a visit may
// legitimately point at a template that has since been deleted.
func (u *visitUsecase) checkRefs(visit entity.VisitEntry) error {
	if !u.strict {
		return nil
	}
	if _, ok := u.store.DoctorByID(visit.DoctorID); !ok {
		return ErrUnknownDoctor
	}
	patient, ok := u.store.PatientByID(visit.PatientID)
	if !ok {
		return ErrPatientNotFound
	}
	if patient.DoctorID != visit.DoctorID {
		return ErrPatientNotOwned
	}
	return nil
}

func (u *visitUsecase) Add(ctx context.Context, visit entity.VisitEntry) (entity.VisitEntry, error) {
	if err := u.validate.Validate(&visit); err != nil {
		return entity.VisitEntry{}, err
	}
	if err := u.checkRefs(visit); err != nil {
		return entity.VisitEntry{}, err
	}
	if visit.ID == "" {
		visit.ID = uuid.NewString()
	}

	created, err := u.remote.CreateVisit(ctx, visit)
	if err != nil {
		u.log.Warnf("Failed to create visit for patient %s: %v", visit.PatientID, err)
		return entity.VisitEntry{}, fmt.Errorf("create visit: %w", err)
	}

	u.store.AddVisit(created)
	u.log.Infof("Visit recorded: id=%s, patient=%s", created.ID, created.PatientID)
	return created, nil
}

func (u *visitUsecase) Update(ctx context.Context, visit entity.VisitEntry) (entity.VisitEntry, error) {
	if _, ok := u.store.VisitByID(visit.ID); !ok {
		return entity.VisitEntry{}, ErrVisitNotFound
	}
	if err := u.validate.Validate(&visit); err != nil {
		return entity.VisitEntry{}, err
	}
	if err := u.checkRefs(visit); err != nil {
		return entity.VisitEntry{}, err
	}

	updated, err := u.remote.UpdateVisit(ctx, visit)
	if err != nil {
		u.log.Warnf("Failed to update visit %s: %v", visit.ID, err)
		return entity.VisitEntry{}, fmt.Errorf("update visit: %w", err)
	}

	u.store.ReplaceVisit(updated)
	return updated, nil
}

func (u *visitUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeleteVisit(ctx, id); err != nil {
		u.log.Warnf("Failed to delete visit %s: %v", id, err)
		return fmt.Errorf("delete visit: %w", err)
	}

	u.store.RemoveVisit(id)
	return nil
}
