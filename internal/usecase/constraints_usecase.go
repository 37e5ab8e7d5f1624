package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"clinic-ops-client/internal/domain/entity"
	"clinic-ops-client/internal/store"
	"clinic-ops-client/pkg/validator"
)

// ConstraintsUsecase fronts the constraints singleton. Replacement is
// purely local: the scheduling policy is client-side configuration, not
// a record the remote authority owns.
type ConstraintsUsecase interface {
	Current(ctx context.Context) entity.Constraints
	Replace(ctx context.Context, next entity.Constraints) error
}

type constraintsUsecase struct {
	store    *store.Store
	log      *logrus.Logger
	validate *validator.CustomValidator
}

func NewConstraintsUsecase(s *store.Store, log *logrus.Logger, validate *validator.CustomValidator) ConstraintsUsecase {
	return &constraintsUsecase{
		store:    s,
		log:      log,
		validate: validate,
	}
}

func (u *constraintsUsecase) Current(ctx context.Context) entity.Constraints {
	return u.store.Constraints()
}

func (u *constraintsUsecase) Replace(ctx context.Context, next entity.Constraints) error {
	if err := u.validate.Validate(&next); err != nil {
		return err
	}
	if err := u.store.SetConstraints(next); err != nil {
		return err
	}

	u.log.Infof("Scheduling constraints replaced: hours=%d-%d, slot=%dm, allowOverlap=%t",
		next.StartHour, next.EndHour, next.SlotMinutes, next.AllowOverlap)
	return nil
}
