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

var ErrReceptionistNotFound = errors.New("receptionist not found")

type ReceptionistUsecase interface {
	Add(ctx context.Context, receptionist entity.Receptionist) (entity.Receptionist, error)
	Update(ctx context.Context, receptionist entity.Receptionist) (entity.Receptionist, error)
	Remove(ctx context.Context, id string) error
}

type receptionistUsecase struct {
	store    *store.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator
	strict   bool
}

func NewReceptionistUsecase(s *store.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator, strict bool) ReceptionistUsecase {
	return &receptionistUsecase{
		store:    s,
		remote:   r,
		log:      log,
		validate: validate,
		strict:   strict,
	}
}

func (u *receptionistUsecase) checkRefs(receptionist entity.Receptionist) error {
	if !u.strict {
		return nil
	}
	if _, ok := u.store.UnitByID(receptionist.UnitID); !ok {
		return ErrUnknownUnit
	}
	return nil
}

func (u *receptionistUsecase) Add(ctx context.Context, receptionist entity.Receptionist) (entity.Receptionist, error) {
	if err := u.validate.Validate(&receptionist); err != nil {
		return entity.Receptionist{}, err
	}
	if err := u.checkRefs(receptionist); err != nil {
		return entity.Receptionist{}, err
	}
	if receptionist.ID == "" {
		receptionist.ID = uuid.NewString()
	}

	created, err := u.remote.CreateReceptionist(ctx, receptionist)
	if err != nil {
		u.log.Warnf("Failed to create receptionist %q: %v", receptionist.Name, err)
		return entity.Receptionist{}, fmt.Errorf("create receptionist: %w", err)
	}

	u.store.AddReceptionist(created)
	u.log.Infof("Receptionist created: id=%s, unit=%s", created.ID, created.UnitID)
	return created, nil
}

func (u *receptionistUsecase) Update(ctx context.Context, receptionist entity.Receptionist) (entity.Receptionist, error) {
	if _, ok := u.store.ReceptionistByID(receptionist.ID); !ok {
		return entity.Receptionist{}, ErrReceptionistNotFound
	}
	if err := u.validate.Validate(&receptionist); err != nil {
		return entity.Receptionist{}, err
	}
	if err := u.checkRefs(receptionist); err != nil {
		return entity.Receptionist{}, err
	}

	updated, err := u.remote.UpdateReceptionist(ctx, receptionist)
	if err != nil {
		u.log.Warnf("Failed to update receptionist %s: %v", receptionist.ID, err)
		return entity.Receptionist{}, fmt.Errorf("update receptionist: %w", err)
	}

	u.store.ReplaceReceptionist(updated)
	return updated, nil
}

func (u *receptionistUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeleteReceptionist(ctx, id); err != nil {
		u.log.Warnf("Failed to delete receptionist %s: %v", id, err)
		return fmt.Errorf("delete receptionist: %w", err)
	}

	u.store.RemoveReceptionist(id)
	return nil
}
