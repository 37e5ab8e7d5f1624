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
	ErrSpecialtyNotFound = errors.New("specialty not found")
	ErrTemplateNotFound  = errors.New("specialty template not found")
)

// SpecialtyUsecase manages the specialty catalog and the consultation
// form templates hanging off it.
type SpecialtyUsecase interface {
	Add(ctx context.Context, specialty entity.Specialty) (entity.Specialty, error)
	Update(ctx context.Context, specialty entity.Specialty) (entity.Specialty, error)
	Remove(ctx context.Context, id string) error

	AddTemplate(ctx context.Context, template entity.SpecialtyTemplate) (entity.SpecialtyTemplate, error)
	UpdateTemplate(ctx context.Context, template entity.SpecialtyTemplate) (entity.SpecialtyTemplate, error)
	RemoveTemplate(ctx context.Context, id string) error
}

type specialtyUsecase struct {
	store    *store.Store
	remote   *remote.Client
	log      *logrus.Logger
	validate *validator.CustomValidator
	strict   bool
}

func NewSpecialtyUsecase(s *store.Store, r *remote.Client, log *logrus.Logger, validate *validator.CustomValidator, strict bool) SpecialtyUsecase {
	return &specialtyUsecase{
		store:    s,
		remote:   r,
		log:      log,
		validate: validate,
		strict:   strict,
	}
}

func (u *specialtyUsecase) Add(ctx context.Context, specialty entity.Specialty) (entity.Specialty, error) {
	if err := u.validate.Validate(&specialty); err != nil {
		return entity.Specialty{}, err
	}
	if specialty.ID == "" {
		specialty.ID = uuid.NewString()
	}

	created, err := u.remote.CreateSpecialty(ctx, specialty)
	if err != nil {
		u.log.Warnf("Failed to create specialty %q: %v", specialty.Name, err)
		return entity.Specialty{}, fmt.Errorf("create specialty: %w", err)
	}

	u.store.AddSpecialty(created)
	return created, nil
}

func (u *specialtyUsecase) Update(ctx context.Context, specialty entity.Specialty) (entity.Specialty, error) {
	if _, ok := u.store.SpecialtyByID(specialty.ID); !ok {
		return entity.Specialty{}, ErrSpecialtyNotFound
	}
	if err := u.validate.Validate(&specialty); err != nil {
		return entity.Specialty{}, err
	}

	updated, err := u.remote.UpdateSpecialty(ctx, specialty)
	if err != nil {
		u.log.Warnf("Failed to update specialty %s: %v", specialty.ID, err)
		return entity.Specialty{}, fmt.Errorf("update specialty: %w", err)
	}

	u.store.ReplaceSpecialty(updated)
	return updated, nil
}

// Remove deletes the specialty and cascades to its templates. Visit
// entries keep their template ids even when those now dangle.
func (u *specialtyUsecase) Remove(ctx context.Context, id string) error {
	if err := u.remote.DeleteSpecialty(ctx, id); err != nil {
		u.log.Warnf("Failed to delete specialty %s: %v", id, err)
		return fmt.Errorf("delete specialty: %w", err)
	}

	u.store.RemoveSpecialty(id)
	u.log.Infof("Specialty removed with its templates: id=%s", id)
	return nil
}

func (u *specialtyUsecase) AddTemplate(ctx context.Context, template entity.SpecialtyTemplate) (entity.SpecialtyTemplate, error) {
	if err := u.validate.Validate(&template); err != nil {
		return entity.SpecialtyTemplate{}, err
	}
	if u.strict {
		if _, ok := u.store.SpecialtyByID(template.SpecialtyID); !ok {
			return entity.SpecialtyTemplate{}, ErrUnknownSpecialty
		}
	}
	if template.ID == "" {
		template.ID = uuid.NewString()
	}

	created, err := u.remote.CreateTemplate(ctx, template)
	if err != nil {
		u.log.Warnf("Failed to create template for specialty %s: %v", template.SpecialtyID, err)
		return entity.SpecialtyTemplate{}, fmt.Errorf("create template: %w", err)
	}

	u.store.AddTemplate(created)
	return created, nil
}

func (u *specialtyUsecase) UpdateTemplate(ctx context.Context, template entity.SpecialtyTemplate) (entity.SpecialtyTemplate, error) {
	if _, ok := u.store.TemplateByID(template.ID); !ok {
		return entity.SpecialtyTemplate{}, ErrTemplateNotFound
	}
	if err := u.validate.Validate(&template); err != nil {
		return entity.SpecialtyTemplate{}, err
	}

	updated, err := u.remote.UpdateTemplate(ctx, template)
	if err != nil {
		u.log.Warnf("Failed to update template %s: %v", template.ID, err)
		return entity.SpecialtyTemplate{}, fmt.Errorf("update template: %w", err)
	}

	u.store.ReplaceTemplate(updated)
	return updated, nil
}

func (u *specialtyUsecase) RemoveTemplate(ctx context.Context, id string) error {
	if err := u.remote.DeleteTemplate(ctx, id); err != nil {
		u.log.Warnf("Failed to delete template %s: %v", id, err)
		return fmt.Errorf("delete template: %w", err)
	}

	u.store.RemoveTemplate(id)
	return nil
}
