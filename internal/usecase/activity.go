package usecase

import (
	"context"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

type ActivityUsecase struct {
	repo ActivityRepository
}

func NewActivityUsecase(repo ActivityRepository) *ActivityUsecase {
	return &ActivityUsecase{repo: repo}
}

func (uc *ActivityUsecase) Create(ctx context.Context, act domain.Activity) (domain.Activity, error) {
	if act.Type == "" {
		act.Type = domain.ActivityTask
	}
	act.ID = relata.NewID()
	return uc.repo.Create(ctx, act)
}

func (uc *ActivityUsecase) Get(ctx context.Context, id, owner string) (domain.Activity, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *ActivityUsecase) List(ctx context.Context, owner string, filter domain.ActivityFilter) ([]domain.Activity, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

func (uc *ActivityUsecase) Update(ctx context.Context, input domain.Activity) (domain.Activity, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Activity{}, err
	}

	current.Type = input.Type
	current.Subject = input.Subject
	current.Notes = input.Notes
	current.Due = input.Due
	current.Done = input.Done
	current.ContactID = input.ContactID
	current.OpportunityID = input.OpportunityID

	return uc.repo.Save(ctx, current)
}

func (uc *ActivityUsecase) Delete(ctx context.Context, id, owner string) error {
	if _, err := uc.repo.FindOne(ctx, id, owner); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id, owner)
}
