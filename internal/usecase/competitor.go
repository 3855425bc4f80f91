package usecase

import (
	"context"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

type CompetitorUsecase struct {
	repo CompetitorRepository
}

func NewCompetitorUsecase(repo CompetitorRepository) *CompetitorUsecase {
	return &CompetitorUsecase{repo: repo}
}

func (uc *CompetitorUsecase) Create(ctx context.Context, comp domain.Competitor) (domain.Competitor, error) {
	comp.ID = relata.NewID()
	return uc.repo.Create(ctx, comp)
}

func (uc *CompetitorUsecase) Get(ctx context.Context, id, owner string) (domain.Competitor, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *CompetitorUsecase) List(ctx context.Context, owner string, filter domain.CompetitorFilter) ([]domain.Competitor, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

func (uc *CompetitorUsecase) Update(ctx context.Context, input domain.Competitor) (domain.Competitor, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Competitor{}, err
	}

	current.Name = input.Name
	current.Website = input.Website
	current.Strengths = input.Strengths
	current.Weaknesses = input.Weaknesses
	current.Notes = input.Notes

	return uc.repo.Save(ctx, current)
}

func (uc *CompetitorUsecase) Delete(ctx context.Context, id, owner string) error {
	if _, err := uc.repo.FindOne(ctx, id, owner); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id, owner)
}
