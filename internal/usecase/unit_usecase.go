// Package usecase implements the confirmed-write synchronizer: every
// mutating intent is sequenced as remote call first, local apply second.
// The entity store is never touched speculatively, so a failed call
// leaves every collection exactly as it was.
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

var ErrUnitNotFound = errors.New("unit not found")

type UnitUsecase interface {
	Add(ctx context.Context, unit entity.Unit) (entity.Unit, error)
	Update(ctx context.Context, unit entity.Unit) (entity.Unit, error)
	Remove(ctx context.Context, id string) error
}

type unitUsecase struct {
	store    *store.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator
}

func NewUnitUsecase(s *store.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator) UnitUsecase {
	return &unitUsecase{
		store:    s,
		remote:   r,
		log:      log,
		validate: validate,
	}
}

func (u *unitUsecase) Add(ctx context.Context, unit entity.Unit) (entity.Unit, error) {
	if err := u.validate.Validate(&unit); err != nil {
		return entity.Unit{}, err
	}
	if unit.ID == "" {
		unit.ID = uuid.NewString()
	}

	created, err := u.remote.CreateUnit(ctx, unit)
	if err != nil {
		u.log.Warnf("Failed to create unit %q: %v", unit.Name, err)
		return entity.Unit{}, fmt.Errorf("create unit: %w", err)
	}

	u.store.AddUnit(created)
	u.log.Infof("Unit created: id=%s, name=%s", created.ID, created.Name)
	return created, nil
}

func (u *unitUsecase) Update(ctx context.Context, unit entity.Unit) (entity.Unit, error) {
	if _, ok := u.store.UnitByID(unit.ID); !ok {
		return entity.Unit{}, ErrUnitNotFound
	}
	if err := u.validate.Validate(&unit); err != nil {
		return entity.Unit{}, err
	}

	updated, err := u.remote.UpdateUnit(ctx, unit)
	if err != nil {
		u.log.Warnf("Failed to update unit %s: %v", unit.ID, err)
		return entity.Unit{}, fmt.Errorf("update unit: %w", err)
	}

	u.store.ReplaceUnit(updated)
	return updated, nil
}

func (u *unitUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeleteUnit(ctx, id); err != nil {
		u.log.Warnf("Failed to delete unit %s: %v", id, err)
		return fmt.Errorf("delete unit: %w", err)
	}

	u.store.RemoveUnit(id)
	u.log.Infof("Unit removed with cascade: id=%s", id)
	return nil
}
