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
	ErrDoctorNotFound   = errors.New("doctor not found")
	ErrUnknownUnit      = errors.New("referenced unit does not exist")
	ErrUnknownSpecialty = errors.New("referenced specialty does not exist")
)

type DoctorUsecase interface {
	Add(ctx context.Context, doctor entity.Doctor) (entity.Doctor, error)
	Update(ctx context.Context, doctor entity.Doctor) (entity.Doctor, error)
	Remove(ctx context.Context, id string) error
}

type doctorUsecase struct {
	store    *store.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator
	strict   bool
}

func NewDoctorUsecase(s *store.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator, strict bool) DoctorUsecase {
	return &doctorUsecase{
		store:    s,
		remote:   r,
		log:      log,
		validate: validate,
		strict:   strict,
	}
}

// checkRefs is the optional referential-integrity rule: off by default,
// matching the permissive behavior of the original client.
func (u *doctorUsecase) checkRefs(doctor entity.Doctor) error {
	if !u.strict {
		return nil
	}
	if _, ok := u.store.UnitByID(doctor.UnitID); !ok {
		return ErrUnknownUnit
	}
	if doctor.SpecialtyID != "" {
		if _, ok := u.store.SpecialtyByID(doctor.SpecialtyID); !ok {
			return ErrUnknownSpecialty
		}
	}
	return nil
}

func (u *doctorUsecase) Add(ctx context.Context, doctor entity.Doctor) (entity.Doctor, error) {
	if err := u.validate.Validate(&doctor); err != nil {
		return entity.Doctor{}, err
	}
	if err := u.checkRefs(doctor); err != nil {
		return entity.Doctor{}, err
	}
	if doctor.ID == "" {
		doctor.ID = uuid.NewString()
	}

	created, err := u.remote.CreateDoctor(ctx, doctor)
	if err != nil {
		u.log.Warnf("Failed to create doctor %q: %v", doctor.Name, err)
		return entity.Doctor{}, fmt.Errorf("create doctor: %w", err)
	}

	u.store.AddDoctor(created)
	u.log.Infof("Doctor created: id=%s, unit=%s", created.ID, created.UnitID)
	return created, nil
}

func (u *doctorUsecase) Update(ctx context.Context, doctor entity.Doctor) (entity.Doctor, error) {
	if _, ok := u.store.DoctorByID(doctor.ID); !ok {
		return entity.Doctor{}, ErrDoctorNotFound
	}
	if err := u.validate.Validate(&doctor); err != nil {
		return entity.Doctor{}, err
	}
	if err := u.checkRefs(doctor); err != nil {
		return entity.Doctor{}, err
	}

	updated, err := u.remote.UpdateDoctor(ctx, doctor)
	if err != nil {
		u.log.Warnf("Failed to update doctor %s: %v", doctor.ID, err)
		return entity.Doctor{}, fmt.Errorf("update doctor: %w", err)
	}

	u.store.ReplaceDoctor(updated)
	return updated, nil
}

func (u *doctorUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeleteDoctor(ctx, id); err != nil {
		u.log.Warnf("Failed to delete doctor %s: %v", id, err)
		return fmt.Errorf("delete doctor: %w", err)
	}

	u.store.RemoveDoctor(id)
	u.log.Infof("Doctor removed with cascade: id=%s", id)
	return nil
}
