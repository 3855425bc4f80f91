package usecase

import (
	"context"
	"testing"

	"github.com/relatahq/relata/internal/domain"
)

func TestContactCreateWithCompanyLinksBothSides(t *testing.T) {
	contacts := newMemContactRepo()
	companies := newMemCompanyRepo(domain.Company{ID: "a", Owner: "u1"})
	uc := NewContactUsecase(contacts, NewRelationshipUsecase(contacts, companies))

	created, err := uc.Create(context.Background(), domain.Contact{
		Owner:     "u1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		CompanyID: strptr("a"),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.CompanyID == nil || *created.CompanyID != "a" {
		t.Fatalf("expected created contact linked to a")
	}
	if !companies.byID["a"].HasContact(created.ID) {
		t.Fatalf("expected member set to contain the new contact")
	}
}

func TestContactUpdateKeepsCompanyWhenUnchanged(t *testing.T) {
	contacts := newMemContactRepo(domain.Contact{ID: "c1", Owner: "u1", FirstName: "Ada", CompanyID: strptr("a")})
	companies := newMemCompanyRepo(domain.Company{ID: "a", Owner: "u1", Contacts: []string{"c1"}})
	uc := NewContactUsecase(contacts, NewRelationshipUsecase(contacts, companies))

	updated, err := uc.Update(context.Background(), domain.Contact{
		ID:        "c1",
		Owner:     "u1",
		FirstName: "Augusta",
		CompanyID: strptr("a"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Augusta" {
		t.Fatalf("expected scalar update applied")
	}
	if updated.CompanyID == nil || *updated.CompanyID != "a" {
		t.Fatalf("expected company reference preserved")
	}
}

func TestContactUpdateMovesCompanyThroughRelationship(t *testing.T) {
	contacts := newMemContactRepo(domain.Contact{ID: "c1", Owner: "u1", CompanyID: strptr("a")})
	companies := newMemCompanyRepo(
		domain.Company{ID: "a", Owner: "u1", Contacts: []string{"c1"}},
		domain.Company{ID: "b", Owner: "u1"},
	)
	uc := NewContactUsecase(contacts, NewRelationshipUsecase(contacts, companies))

	updated, err := uc.Update(context.Background(), domain.Contact{
		ID:        "c1",
		Owner:     "u1",
		CompanyID: strptr("b"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.CompanyID == nil || *updated.CompanyID != "b" {
		t.Fatalf("expected contact moved to b")
	}
	if companies.byID["a"].HasContact("c1") {
		t.Fatalf("expected c1 removed from a")
	}
	if !companies.byID["b"].HasContact("c1") {
		t.Fatalf("expected c1 added to b")
	}
}

func TestContactDeleteDetachesFromCompany(t *testing.T) {
	contacts := newMemContactRepo(domain.Contact{ID: "c1", Owner: "u1", CompanyID: strptr("a")})
	companies := newMemCompanyRepo(domain.Company{ID: "a", Owner: "u1", Contacts: []string{"c1"}})
	uc := NewContactUsecase(contacts, NewRelationshipUsecase(contacts, companies))

	if err := uc.Delete(context.Background(), "c1", "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := contacts.byID["c1"]; ok {
		t.Fatalf("expected contact removed")
	}
	if companies.byID["a"].HasContact("c1") {
		t.Fatalf("expected member set cleaned up")
	}
}

func TestCompanyDeleteClearsBackReferences(t *testing.T) {
	contacts := newMemContactRepo(
		domain.Contact{ID: "c1", Owner: "u1", CompanyID: strptr("a")},
		domain.Contact{ID: "c2", Owner: "u1", CompanyID: strptr("a")},
	)
	companies := newMemCompanyRepo(domain.Company{ID: "a", Owner: "u1", Contacts: []string{"c1", "c2"}})
	uc := NewCompanyUsecase(companies, contacts)

	if err := uc.Delete(context.Background(), "a", "u1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if contacts.byID["c1"].CompanyID != nil || contacts.byID["c2"].CompanyID != nil {
		t.Fatalf("expected back-references cleared")
	}
	if _, ok := companies.byID["a"]; ok {
		t.Fatalf("expected company removed")
	}
}
