package commands

import (
	"context"

	"agendapay/internal/domain/work"
	"agendapay/internal/infra"
	"agendapay/internal/infra/postgres"
	"agendapay/internal/pkg/errs"
	"agendapay/internal/pkg/money"

	"github.com/google/uuid"
)

type CreateWorkInput struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Price       money.Money
}

type WorkCommands interface {
	CreateWork(ctx context.Context, input CreateWorkInput) (*work.Work, error)
	UpdateWork(ctx context.Context, id uuid.UUID, patch work.Patch) (*work.Work, error)
	DeleteWork(ctx context.Context, id uuid.UUID) error
}

type workUseCaseImpl struct {
	works WorkRepository
	db    postgres.Pool
}

func NewWorkUseCase(works WorkRepository, db postgres.Pool) WorkCommands {
	return &workUseCaseImpl{works: works, db: db}
}

func (u *workUseCaseImpl) CreateWork(ctx context.Context, input CreateWorkInput) (*work.Work, error) {
	entity, err := work.NewWork(input.UserID, input.Name, input.Description, input.Price)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.works.Create(ctx, u.db, entity); err != nil {
		return nil, errs.Wrap(err, "failed to create work")
	}
	return entity, nil
}

func (u *workUseCaseImpl) UpdateWork(ctx context.Context, id uuid.UUID, patch work.Patch) (*work.Work, error) {
	entity, err := u.works.FindByID(ctx, u.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, errs.Wrap(err, "failed to resolve work")
	}

	if err := entity.Update(patch); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := u.works.Update(ctx, u.db, entity); err != nil {
		return nil, errs.Wrap(err, "failed to update work")
	}
	return entity, nil
}

func (u *workUseCaseImpl) DeleteWork(ctx context.Context, id uuid.UUID) error {
	if err := u.works.Delete(ctx, u.db, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrWorkNotFound
		}
		return errs.Wrap(err, "failed to delete work")
	}
	return nil
}
