package usecase

import (
	"context"
	"testing"

	"github.com/relatahq/relata/internal/domain"
)

type memLeadRepo struct {
	byID map[string]domain.Lead
}

func newMemLeadRepo(leads ...domain.Lead) *memLeadRepo {
	m := &memLeadRepo{byID: map[string]domain.Lead{}}
	for _, l := range leads {
		m.byID[l.ID] = l
	}
	return m
}

func (m *memLeadRepo) Create(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	m.byID[l.ID] = l
	return l, nil
}

func (m *memLeadRepo) FindOne(ctx context.Context, id, owner string) (domain.Lead, error) {
	l, ok := m.byID[id]
	if !ok || l.Owner != owner {
		return domain.Lead{}, domain.NotFoundError{Kind: domain.KindLead, ID: id}
	}
	return l, nil
}

func (m *memLeadRepo) List(ctx context.Context, owner string, filter domain.LeadFilter) ([]domain.Lead, int64, error) {
	var out []domain.Lead
	for _, l := range m.byID {
		if l.Owner == owner {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memLeadRepo) Save(ctx context.Context, l domain.Lead) (domain.Lead, error) {
	m.byID[l.ID] = l
	return l, nil
}

func (m *memLeadRepo) Delete(ctx context.Context, id, owner string) error {
	delete(m.byID, id)
	return nil
}

func TestLeadConvertCreatesContact(t *testing.T) {
	leads := newMemLeadRepo(domain.Lead{
		ID:     "l1",
		Owner:  "u1",
		Name:   "Grace Hopper",
		Email:  "grace@example.com",
		Status: domain.LeadStatusQualified,
	})
	contacts := newMemContactRepo()
	uc := NewLeadUsecase(leads, contacts)

	contact, lead, err := uc.Convert(context.Background(), "l1", "u1")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if contact.FirstName != "Grace" || contact.LastName != "Hopper" {
		t.Fatalf("expected name split, got %q %q", contact.FirstName, contact.LastName)
	}
	if contact.Email != "grace@example.com" {
		t.Fatalf("expected email carried over")
	}
	if lead.Status != domain.LeadStatusConverted {
		t.Fatalf("expected lead marked converted, got %s", lead.Status)
	}
	if lead.ConvertedContactID == nil || *lead.ConvertedContactID != contact.ID {
		t.Fatalf("expected lead to reference the created contact")
	}
}

func TestLeadConvertTwiceFails(t *testing.T) {
	leads := newMemLeadRepo(domain.Lead{ID: "l1", Owner: "u1", Name: "Solo", Status: domain.LeadStatusNew})
	uc := NewLeadUsecase(leads, newMemContactRepo())

	if _, _, err := uc.Convert(context.Background(), "l1", "u1"); err != nil {
		t.Fatalf("first convert failed: %v", err)
	}
	if _, _, err := uc.Convert(context.Background(), "l1", "u1"); err == nil {
		t.Fatalf("expected second convert to fail")
	}
}

func TestLeadConvertCrossOwnerIsNotFound(t *testing.T) {
	leads := newMemLeadRepo(domain.Lead{ID: "l1", Owner: "u1", Name: "Hidden"})
	uc := NewLeadUsecase(leads, newMemContactRepo())

	if _, _, err := uc.Convert(context.Background(), "l1", "u2"); err == nil {
		t.Fatalf("expected not found for foreign owner")
	}
}
