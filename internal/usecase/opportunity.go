package usecase

import (
	"context"
	"fmt"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

type OpportunityUsecase struct {
	repo OpportunityRepository
}

func NewOpportunityUsecase(repo OpportunityRepository) *OpportunityUsecase {
	return &OpportunityUsecase{repo: repo}
}

func (uc *OpportunityUsecase) Create(ctx context.Context, opp domain.Opportunity) (domain.Opportunity, error) {
	if opp.Stage == "" {
		opp.Stage = domain.StageProspecting
	}
	if !domain.ValidStage(opp.Stage) {
		return domain.Opportunity{}, fmt.Errorf("unknown stage: %s", opp.Stage)
	}
	opp.ID = relata.NewID()
	return uc.repo.Create(ctx, opp)
}

func (uc *OpportunityUsecase) Get(ctx context.Context, id, owner string) (domain.Opportunity, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *OpportunityUsecase) List(ctx context.Context, owner string, filter domain.OpportunityFilter) ([]domain.Opportunity, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

func (uc *OpportunityUsecase) Update(ctx context.Context, input domain.Opportunity) (domain.Opportunity, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Opportunity{}, err
	}
	if !domain.ValidStage(input.Stage) {
		return domain.Opportunity{}, fmt.Errorf("unknown stage: %s", input.Stage)
	}

	current.Name = input.Name
	current.Stage = input.Stage
	current.Amount = input.Amount
	current.Probability = input.Probability
	current.CloseDate = input.CloseDate
	current.ContactID = input.ContactID
	current.CompanyID = input.CompanyID
	current.Notes = input.Notes

	return uc.repo.Save(ctx, current)
}

func (uc *OpportunityUsecase) Delete(ctx context.Context, id, owner string) error {
	if _, err := uc.repo.FindOne(ctx, id, owner); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id, owner)
}
