package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/relatahq/relata/internal/domain"
	"github.com/relatahq/relata/internal/present/rest/middleware"
	"github.com/relatahq/relata/internal/service"
	"github.com/relatahq/relata/internal/token"
	"github.com/relatahq/relata/internal/usecase"
)

// --- mocks ---

type mockUserRepo struct {
	users map[string]domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return domain.User{}, domain.ConflictError{Kind: domain.KindUser}
		}
	}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Kind: domain.KindUser, ID: email}
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Kind: domain.KindUser, ID: id}
	}
	return u, nil
}

type mockContactRepo struct {
	byID map[string]domain.Contact
}

func (m *mockContactRepo) Create(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	m.byID[c.ID] = c
	return c, nil
}

func (m *mockContactRepo) FindOne(ctx context.Context, id, owner string) (domain.Contact, error) {
	c, ok := m.byID[id]
	if !ok || c.Owner != owner {
		return domain.Contact{}, domain.NotFoundError{Kind: domain.KindContact, ID: id}
	}
	return c, nil
}

func (m *mockContactRepo) FindMany(ctx context.Context, ids []string, owner string) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, id := range ids {
		if c, ok := m.byID[id]; ok && c.Owner == owner {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockContactRepo) List(ctx context.Context, owner string, filter domain.ContactFilter) ([]domain.Contact, int64, error) {
	var out []domain.Contact
	for _, c := range m.byID {
		if c.Owner == owner {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockContactRepo) Save(ctx context.Context, c domain.Contact) (domain.Contact, error) {
	m.byID[c.ID] = c
	return c, nil
}

func (m *mockContactRepo) Delete(ctx context.Context, id, owner string) error {
	delete(m.byID, id)
	return nil
}

func (m *mockContactRepo) SetCompany(ctx context.Context, ids []string, owner, companyID string) (int64, error) {
	var n int64
	for _, id := range ids {
		if c, ok := m.byID[id]; ok && c.Owner == owner {
			cid := companyID
			c.CompanyID = &cid
			m.byID[id] = c
			n++
		}
	}
	return n, nil
}

func (m *mockContactRepo) ClearCompany(ctx context.Context, ids []string, owner string) (int64, error) {
	var n int64
	for _, id := range ids {
		if c, ok := m.byID[id]; ok && c.Owner == owner {
			c.CompanyID = nil
			m.byID[id] = c
			n++
		}
	}
	return n, nil
}

type mockCompanyRepo struct {
	byID map[string]domain.Company
}

func (m *mockCompanyRepo) Create(ctx context.Context, c domain.Company) (domain.Company, error) {
	m.byID[c.ID] = c
	return c, nil
}

func (m *mockCompanyRepo) FindOne(ctx context.Context, id, owner string) (domain.Company, error) {
	c, ok := m.byID[id]
	if !ok || c.Owner != owner {
		return domain.Company{}, domain.NotFoundError{Kind: domain.KindCompany, ID: id}
	}
	return c, nil
}

func (m *mockCompanyRepo) List(ctx context.Context, owner string, filter domain.CompanyFilter) ([]domain.Company, int64, error) {
	var out []domain.Company
	for _, c := range m.byID {
		if c.Owner == owner {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockCompanyRepo) Save(ctx context.Context, c domain.Company) (domain.Company, error) {
	m.byID[c.ID] = c
	return c, nil
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id, owner string) error {
	delete(m.byID, id)
	return nil
}

// --- fixture ---

type fixture struct {
	e         *echo.Echo
	token     string
	contacts  *mockContactRepo
	companies *mockCompanyRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	users := &mockUserRepo{users: map[string]domain.User{
		"user1": {ID: "user1", Email: "a@example.com"},
	}}
	contactRepo := &mockContactRepo{byID: map[string]domain.Contact{}}
	companyRepo := &mockCompanyRepo{byID: map[string]domain.Company{}}

	tokenService := token.New("test-secret", "relata", time.Hour)
	authService := service.NewAuthService(users, tokenService)

	relationship := usecase.NewRelationshipUsecase(contactRepo, companyRepo)
	contacts := usecase.NewContactUsecase(contactRepo, relationship)
	companies := usecase.NewCompanyUsecase(companyRepo, contactRepo)

	h := NewHandler(
		authService, nil, relationship, contacts, companies,
		nil, nil, nil, nil, nil, nil, nil,
	)

	e := echo.New()
	h.RegisterRoutes(e, middleware.NewAuthMiddleware(authService))

	signed, err := tokenService.Create("user1")
	if err != nil {
		t.Fatalf("creating token: %v", err)
	}

	return &fixture{e: e, token: signed, contacts: contactRepo, companies: companyRepo}
}

func (f *fixture) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+f.token)
	res := httptest.NewRecorder()
	f.e.ServeHTTP(res, req)
	return res
}

// doPublic issues a request without a bearer token.
func (f *fixture) doPublic(method, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	f.e.ServeHTTP(res, req)
	return res
}

// --- tests ---

func TestRegisterDuplicateEmailIsConflict(t *testing.T) {
	f := newFixture(t)

	body := map[string]any{"email": "new@example.com", "password": "hunter2", "name": "New"}
	if res := f.doPublic(http.MethodPost, "/api/v1/auth/register", body); res.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201 got %d: %s", res.Code, res.Body.String())
	}
	if res := f.doPublic(http.MethodPost, "/api/v1/auth/register", body); res.Code != http.StatusConflict {
		t.Fatalf("second register: expected 409 got %d: %s", res.Code, res.Body.String())
	}
}

func TestRegisterMissingPasswordIsBadRequest(t *testing.T) {
	f := newFixture(t)

	res := f.doPublic(http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email": "new@example.com",
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", res.Code, res.Body.String())
	}
}

func TestContactCreateRequiresAuth(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	res := httptest.NewRecorder()
	f.e.ServeHTTP(res, req)

	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.Code)
	}
}

func TestContactCreateSetsOwnerFromToken(t *testing.T) {
	f := newFixture(t)

	res := f.do(http.MethodPost, "/api/v1/contacts", map[string]any{
		"firstName": "Ada",
		"lastName":  "Lovelace",
		"owner":     "someone-else",
	})
	if res.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", res.Code, res.Body.String())
	}

	var created domain.Contact
	if err := json.Unmarshal(res.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if created.Owner != "user1" {
		t.Fatalf("expected owner from token, got %q", created.Owner)
	}
	if _, ok := f.contacts.byID[created.ID]; !ok {
		t.Fatalf("contact was not persisted")
	}
}

func TestReassignCompanyEndpoint(t *testing.T) {
	f := newFixture(t)
	f.contacts.byID["c1"] = domain.Contact{ID: "c1", Owner: "user1", FirstName: "Ada"}
	f.companies.byID["co1"] = domain.Company{ID: "co1", Owner: "user1", Name: "Acme"}

	res := f.do(http.MethodPut, "/api/v1/contacts/c1/company", map[string]any{
		"companyId": "co1",
	})
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", res.Code, res.Body.String())
	}

	contact := f.contacts.byID["c1"]
	if contact.CompanyID == nil || *contact.CompanyID != "co1" {
		t.Fatalf("contact side not updated: %+v", contact)
	}
	if !f.companies.byID["co1"].HasContact("c1") {
		t.Fatalf("company side not updated: %+v", f.companies.byID["co1"])
	}
}

func TestReassignCompanyUnknownCompanyIs404(t *testing.T) {
	f := newFixture(t)
	f.contacts.byID["c1"] = domain.Contact{ID: "c1", Owner: "user1"}

	res := f.do(http.MethodPut, "/api/v1/contacts/c1/company", map[string]any{
		"companyId": "missing",
	})
	if res.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d: %s", res.Code, res.Body.String())
	}
	if f.contacts.byID["c1"].CompanyID != nil {
		t.Fatalf("contact mutated on failed reassign")
	}
}

func TestReplaceMembersRejectsMissingBody(t *testing.T) {
	f := newFixture(t)
	f.companies.byID["co1"] = domain.Company{ID: "co1", Owner: "user1"}

	res := f.do(http.MethodPut, "/api/v1/companies/co1/contacts", map[string]any{})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", res.Code, res.Body.String())
	}
}

func TestReplaceMembersUnresolvedIdIs400(t *testing.T) {
	f := newFixture(t)
	f.companies.byID["co1"] = domain.Company{ID: "co1", Owner: "user1"}
	f.contacts.byID["c1"] = domain.Contact{ID: "c1", Owner: "user1"}

	res := f.do(http.MethodPut, "/api/v1/companies/co1/contacts", map[string]any{
		"contactIds": []string{"c1", "ghost"},
	})
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", res.Code, res.Body.String())
	}
	if f.contacts.byID["c1"].CompanyID != nil {
		t.Fatalf("contact mutated on failed replace")
	}
}

func TestCompanyLinkAndUnlinkContact(t *testing.T) {
	f := newFixture(t)
	f.contacts.byID["c1"] = domain.Contact{ID: "c1", Owner: "user1"}
	f.companies.byID["co1"] = domain.Company{ID: "co1", Owner: "user1"}

	res := f.do(http.MethodPost, "/api/v1/companies/co1/contacts/c1", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("link: expected 200 got %d: %s", res.Code, res.Body.String())
	}
	if !f.companies.byID["co1"].HasContact("c1") {
		t.Fatalf("link did not add member")
	}

	res = f.do(http.MethodDelete, "/api/v1/companies/co1/contacts/c1", nil)
	if res.Code != http.StatusOK {
		t.Fatalf("unlink: expected 200 got %d: %s", res.Code, res.Body.String())
	}
	if f.companies.byID["co1"].HasContact("c1") {
		t.Fatalf("unlink did not remove member")
	}
	if f.contacts.byID["c1"].CompanyID != nil {
		t.Fatalf("unlink did not clear contact side")
	}
}
