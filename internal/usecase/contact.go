package usecase

import (
	"context"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

// ContactUsecase covers contact CRUD. Company references are never written
// directly here; any company change is routed through the relationship
// usecase so the member set on the company side stays in sync.
type ContactUsecase struct {
	repo         ContactRepository
	relationship *RelationshipUsecase
}

func NewContactUsecase(repo ContactRepository, relationship *RelationshipUsecase) *ContactUsecase {
	return &ContactUsecase{repo: repo, relationship: relationship}
}

func (uc *ContactUsecase) Create(ctx context.Context, contact domain.Contact) (domain.Contact, error) {
	requested := contact.CompanyID
	contact.ID = relata.NewID()
	contact.CompanyID = nil

	created, err := uc.repo.Create(ctx, contact)
	if err != nil {
		return domain.Contact{}, err
	}
	if requested == nil {
		return created, nil
	}

	linked, _, err := uc.relationship.Link(ctx, created.ID, *requested, contact.Owner)
	if err != nil {
		return domain.Contact{}, err
	}
	return linked, nil
}

func (uc *ContactUsecase) Get(ctx context.Context, id, owner string) (domain.Contact, error) {
	return uc.repo.FindOne(ctx, id, owner)
}

func (uc *ContactUsecase) List(ctx context.Context, owner string, filter domain.ContactFilter) ([]domain.Contact, int64, error) {
	return uc.repo.List(ctx, owner, filter)
}

// Update applies the scalar fields of input to the stored contact. The
// company reference is preserved from the stored value and, when input asks
// for a different company, changed through a reassign afterwards.
func (uc *ContactUsecase) Update(ctx context.Context, input domain.Contact) (domain.Contact, error) {
	current, err := uc.repo.FindOne(ctx, input.ID, input.Owner)
	if err != nil {
		return domain.Contact{}, err
	}

	current.FirstName = input.FirstName
	current.LastName = input.LastName
	current.Email = input.Email
	current.Phone = input.Phone
	current.Title = input.Title
	current.Source = input.Source
	current.Notes = input.Notes

	saved, err := uc.repo.Save(ctx, current)
	if err != nil {
		return domain.Contact{}, err
	}
	if saved.SameCompany(input.CompanyID) {
		return saved, nil
	}

	reassigned, _, err := uc.relationship.ReassignContactCompany(ctx, saved.ID, input.CompanyID, input.Owner)
	if err != nil {
		return domain.Contact{}, err
	}
	return reassigned, nil
}

// Delete detaches the contact from its company first so the member set never
// keeps a reference to a deleted contact.
func (uc *ContactUsecase) Delete(ctx context.Context, id, owner string) error {
	contact, err := uc.repo.FindOne(ctx, id, owner)
	if err != nil {
		return err
	}
	if contact.CompanyID != nil {
		if _, _, err := uc.relationship.Unlink(ctx, id, *contact.CompanyID, owner); err != nil {
			return err
		}
	}
	return uc.repo.Delete(ctx, id, owner)
}
