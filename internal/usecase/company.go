package usecase

import (
	"context"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

type CompanyUsecase struct {
	repo     CompanyRepository
	contacts ContactRepository
}

func NewCompanyUsecase(repo CompanyRepository, contacts ContactRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: repo, contacts: contacts}
}

func (uc *CompanyUsecase) Create(ctx context.Context, company domain.Company) (domain.Company, error) {
	company.ID = relata.NewID()
	company.Contacts = []string{}
	return uc.repo.Create(ctx, company)
}

func (uc *CompanyUsecase) Get(ctx context.Context, id, owner string) (domain.Company, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *CompanyUsecase) List(ctx context.Context, owner string, filter domain.CompanyFilter) ([]domain.Company, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

// Update applies scalar fields only. The member set is replaced exclusively
// through the relationship usecase.
func (uc *CompanyUsecase) Update(ctx context.Context, input domain.Company) (domain.Company, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Company{}, err
	}

	current.Name = input.Name
	current.Website = input.Website
	current.Industry = input.Industry
	current.Phone = input.Phone
	current.Address = input.Address
	current.Notes = input.Notes

	return uc.repo.Save(ctx, current)
}

// Delete clears the back-reference of every member before removing the
// company, so no contact keeps a dangling company id.
func (uc *CompanyUsecase) Delete(ctx context.Context, id, owner string) error {
	company, err := uc.repo.FindOne(ctx, id, owner)
	if err != nil {
		return err
	}
	if len(company.Contacts) > 0 {
		if _, err := uc.contacts.ClearCompany(ctx, company.Contacts, owner); err != nil {
			return err
		}
	}
	return uc.repo.Delete(ctx, id, owner)
}
