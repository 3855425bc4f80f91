package usecase

import (
	"context"
	"fmt"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

type LeadUsecase struct {
	repo     LeadRepository
	contacts ContactRepository
}

func NewLeadUsecase(repo LeadRepository, contacts ContactRepository) *LeadUsecase {
	return &LeadUsecase{repo: repo, contacts: contacts}
}

func (uc *LeadUsecase) Create(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	if lead.Status == "" {
		lead.Status = domain.LeadStatusNew
	}
	lead.ID = relata.NewID()
	return uc.repo.Create(ctx, lead)
}

func (uc *LeadUsecase) Get(ctx context.Context, id, owner string) (domain.Lead, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *LeadUsecase) List(ctx context.Context, owner string, filter domain.LeadFilter) ([]domain.Lead, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

func (uc *LeadUsecase) Update(ctx context.Context, input domain.Lead) (domain.Lead, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Lead{}, err
	}

	current.Name = input.Name
	current.Email = input.Email
	current.Phone = input.Phone
	current.Source = input.Source
	current.Status = input.Status
	current.Notes = input.Notes

	return uc.repo.Save(ctx, current)
}

func (uc *LeadUsecase) Delete(ctx context.Context, id, owner string) error {
	if _, err := uc.repo.FindOne(ctx, id, owner); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id, owner)
}

// Convert turns a lead into a contact. The lead is marked converted and keeps
// a pointer to the created contact; converting twice is rejected.
func (uc *LeadUsecase) Convert(ctx context.Context, id, owner string) (domain.Contact, domain.Lead, error) {
	lead, err := uc.repo.FindOne(ctx, id, owner)
	if err != nil {
		return domain.Contact{}, domain.Lead{}, err
	}
	if lead.Status == domain.LeadStatusConverted {
		return domain.Contact{}, domain.Lead{}, fmt.Errorf("lead %s is already converted", lead.ID)
	}

	first, last := splitName(lead.Name)
	contact, err := uc.contacts.Create(ctx, domain.Contact{
		ID:        relata.NewID(),
		Owner:     owner,
		FirstName: first,
		LastName:  last,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Source:    lead.Source,
		Notes:     lead.Notes,
	})
	if err != nil {
		return domain.Contact{}, domain.Lead{}, err
	}

	lead.Status = domain.LeadStatusConverted
	lead.ConvertedContactID = &contact.ID
	lead, err = uc.repo.Save(ctx, lead)
	if err != nil {
		return domain.Contact{}, domain.Lead{}, err
	}

	return contact, lead, nil
}

func splitName(full string) (string, string) {
	for i := 0; i < len(full); i++ {
		if full[i] == ' ' {
			return full[:i], full[i+1:]
		}
	}
	return full, ""
}
