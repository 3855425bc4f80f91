package usecase

import (
	"context"

	"github.com/pkg/errors"

	"github.com/relatahq/relata"
	"github.com/relatahq/relata/internal/domain"
)

// RelationshipUsecase keeps the two-sided reference between a Contact and a
// Company consistent. The store offers no multi-document transaction, so each
// operation issues its writes sequentially in a fixed order: the contact-side
// write always precedes the company-side write (member replacement persists
// the company first, then bulk-updates the contacts). A crash between the two
// writes leaves a well-defined partial state that a blind retry of the same
// call converges from, because every operation is idempotent.
//
// Precondition failures abort before any mutation. Persistence failures are
// surfaced to the caller unretried.
type RelationshipUsecase struct {
	contacts  ContactRepository
	companies CompanyRepository
}

func NewRelationshipUsecase(contacts ContactRepository, companies CompanyRepository) *RelationshipUsecase {
	return &RelationshipUsecase{
		contacts:  contacts,
		companies: companies,
	}
}

// Link points the contact at the company and adds the contact to the
// company's member set. Idempotent: a second call with the same arguments
// re-saves the contact with the same value and skips the member append.
func (uc *RelationshipUsecase) Link(ctx context.Context, contactID, companyID, owner string) (domain.Contact, domain.Company, error) {
	contact, err := uc.contacts.FindOne(ctx, contactID, owner)
	if err != nil {
		return domain.Contact{}, domain.Company{}, err
	}
	company, err := uc.companies.FindOne(ctx, companyID, owner)
	if err != nil {
		return domain.Contact{}, domain.Company{}, err
	}

	contact.CompanyID = &company.ID
	contact, err = uc.contacts.Save(ctx, contact)
	if err != nil {
		return domain.Contact{}, domain.Company{}, errors.Wrap(err, "relationship: saving contact side of link")
	}

	if !company.HasContact(contact.ID) {
		company.AddContact(contact.ID)
		company, err = uc.companies.Save(ctx, company)
		if err != nil {
			return domain.Contact{}, domain.Company{}, errors.Wrap(err, "relationship: saving company side of link")
		}
	}

	return contact, company, nil
}

// Unlink clears the contact's company reference and removes the contact from
// the company's member set, in that order.
func (uc *RelationshipUsecase) Unlink(ctx context.Context, contactID, companyID, owner string) (domain.Contact, domain.Company, error) {
	contact, err := uc.contacts.FindOne(ctx, contactID, owner)
	if err != nil {
		return domain.Contact{}, domain.Company{}, err
	}
	company, err := uc.companies.FindOne(ctx, companyID, owner)
	if err != nil {
		return domain.Contact{}, domain.Company{}, err
	}

	contact.CompanyID = nil
	contact, err = uc.contacts.Save(ctx, contact)
	if err != nil {
		return domain.Contact{}, domain.Company{}, errors.Wrap(err, "relationship: saving contact side of unlink")
	}

	if company.HasContact(contact.ID) {
		company.RemoveContact(contact.ID)
		company, err = uc.companies.Save(ctx, company)
		if err != nil {
			return domain.Contact{}, domain.Company{}, errors.Wrap(err, "relationship: saving company side of unlink")
		}
	}

	return contact, company, nil
}

// ReplaceCompanyMembers swaps the company's member set for exactly the given
// contact ids. Every id must resolve under the owner, otherwise the call
// fails with domain.ValidationMismatchError before anything is written.
// Contacts dropped from the set lose their back-reference, contacts added
// gain it, contacts present in both are untouched.
func (uc *RelationshipUsecase) ReplaceCompanyMembers(ctx context.Context, companyID string, contactIDs []string, owner string) (domain.Company, error) {
	company, err := uc.companies.FindOne(ctx, companyID, owner)
	if err != nil {
		return domain.Company{}, err
	}

	newIDs := relata.Dedupe(contactIDs)
	resolved, err := uc.contacts.FindMany(ctx, newIDs, owner)
	if err != nil {
		return domain.Company{}, errors.Wrap(err, "relationship: resolving replacement members")
	}
	if len(resolved) != len(newIDs) {
		return domain.Company{}, domain.ValidationMismatchError{Requested: len(newIDs), Resolved: len(resolved)}
	}

	previous := company.Contacts
	company.Contacts = newIDs
	company, err = uc.companies.Save(ctx, company)
	if err != nil {
		return domain.Company{}, errors.Wrap(err, "relationship: saving replaced member set")
	}

	if len(newIDs) > 0 {
		if _, err := uc.contacts.SetCompany(ctx, newIDs, owner, company.ID); err != nil {
			return domain.Company{}, errors.Wrap(err, "relationship: assigning back-references")
		}
	}
	removed := relata.Difference(previous, newIDs)
	if len(removed) > 0 {
		if _, err := uc.contacts.ClearCompany(ctx, removed, owner); err != nil {
			return domain.Company{}, errors.Wrap(err, "relationship: clearing dropped back-references")
		}
	}

	return company, nil
}

// ReassignContactCompany moves the contact to the given company, detaching it
// from its current one first. A nil companyID detaches the contact; if it has
// no company either, the call is a pure no-op. The operation composes Unlink
// and Link so the contact-before-company write order holds at every step and
// a failure after the unlink leaves the contact cleanly detached rather than
// pointing at a stale company.
func (uc *RelationshipUsecase) ReassignContactCompany(ctx context.Context, contactID string, companyID *string, owner string) (domain.Contact, *domain.Company, error) {
	contact, err := uc.contacts.FindOne(ctx, contactID, owner)
	if err != nil {
		return domain.Contact{}, nil, err
	}

	if companyID == nil {
		if contact.CompanyID == nil {
			return contact, nil, nil
		}
		detached, _, err := uc.Unlink(ctx, contactID, *contact.CompanyID, owner)
		if err != nil {
			return domain.Contact{}, nil, err
		}
		return detached, nil, nil
	}

	if _, err := uc.companies.FindOne(ctx, *companyID, owner); err != nil {
		return domain.Contact{}, nil, err
	}

	if contact.CompanyID != nil && !contact.SameCompany(companyID) {
		if _, _, err := uc.Unlink(ctx, contactID, *contact.CompanyID, owner); err != nil {
			return domain.Contact{}, nil, err
		}
	}

	linked, company, err := uc.Link(ctx, contactID, *companyID, owner)
	if err != nil {
		return domain.Contact{}, nil, err
	}
	return linked, &company, nil
}
